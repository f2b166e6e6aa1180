// Package schema resolves arbitrary CSV headers onto the canonical record
// shapes. Exports from different tools name their columns freely
// ("Name", "full_name", "First Name" + "Last Name", ...); a fixed synonym
// table maps them, case-insensitively and whitespace-trimmed, onto one of
// two target schemas: contact imports and attendee lists.
package schema

import (
	"strings"

	"github.com/okian/rolodex/internal/domain/model"
)

// Field names a canonical column in one of the target schemas.
type Field string

// Canonical fields.
const (
	FieldFullName    Field = "full_name"
	FieldFirstName   Field = "first_name"
	FieldLastName    Field = "last_name"
	FieldCompany     Field = "company"
	FieldTitle       Field = "title"
	FieldEmail       Field = "email"
	FieldLinkedinURL Field = "linkedin_url"
)

// contactSynonyms maps recognized contact-import headers (lowercased,
// trimmed) to canonical fields.
var contactSynonyms = map[string]Field{
	"full_name":       FieldFullName,
	"full name":       FieldFullName,
	"name":            FieldFullName,
	"first name":      FieldFirstName,
	"firstname":       FieldFirstName,
	"given name":      FieldFirstName,
	"last name":       FieldLastName,
	"lastname":        FieldLastName,
	"surname":         FieldLastName,
	"family name":     FieldLastName,
	"company":         FieldCompany,
	"current company": FieldCompany,
	"organization":    FieldCompany,
	"title":           FieldTitle,
	"position":        FieldTitle,
	"job title":       FieldTitle,
	"email":           FieldEmail,
	"email address":   FieldEmail,
	"url":             FieldLinkedinURL,
	"linkedin url":    FieldLinkedinURL,
	"profile url":     FieldLinkedinURL,
}

// attendeeSynonyms maps recognized attendee-list headers to canonical
// fields. Attendee lists reuse FieldFullName for the person column.
var attendeeSynonyms = map[string]Field{
	"name":          FieldFullName,
	"full name":     FieldFullName,
	"full_name":     FieldFullName,
	"company":       FieldCompany,
	"organization":  FieldCompany,
	"org":           FieldCompany,
	"employer":      FieldCompany,
	"email":         FieldEmail,
	"email address": FieldEmail,
}

// Mapping is the resolved header layout: canonical field -> column index.
type Mapping map[Field]int

// resolve scans the headers against a synonym table. When two headers map
// to the same field the later column wins, matching the original import
// behavior.
func resolve(headers []string, synonyms map[string]Field) Mapping {
	m := make(Mapping)
	for i, h := range headers {
		if f, ok := synonyms[strings.ToLower(strings.TrimSpace(h))]; ok {
			m[f] = i
		}
	}
	return m
}

// value returns the trimmed cell for a canonical field, or "" when the
// field is unmapped or the row is short. Optional fields therefore default
// to the empty string, never to an absent value.
func (m Mapping) value(row []string, f Field) string {
	i, ok := m[f]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// ResolveContact resolves headers for the contact-import schema. A direct
// name column is required unless both a first-name and a last-name column
// are present, in which case the full name is synthesized per row.
func ResolveContact(headers []string) (Mapping, error) {
	m := resolve(headers, contactSynonyms)
	if _, ok := m[FieldFullName]; ok {
		return m, nil
	}
	_, hasFirst := m[FieldFirstName]
	_, hasLast := m[FieldLastName]
	if hasFirst && hasLast {
		return m, nil
	}
	return nil, &Error{Missing: "a 'Name'/'full_name' column, or 'First Name' + 'Last Name' columns"}
}

// ResolveAttendee resolves headers for the attendee-match schema. Only a
// name column is required; company and email are optional.
func ResolveAttendee(headers []string) (Mapping, error) {
	m := resolve(headers, attendeeSynonyms)
	if _, ok := m[FieldFullName]; !ok {
		return nil, &Error{Missing: "a 'name' or 'full name' column"}
	}
	return m, nil
}

// MapContacts converts raw rows into contact records using the contact
// schema. First and last names are always derived from the resolved full
// name (last token is the last name). Rows whose resolved full name is
// empty are kept here and skipped at ingestion time.
func MapContacts(headers []string, rows [][]string) ([]model.Contact, error) {
	m, err := ResolveContact(headers)
	if err != nil {
		return nil, err
	}
	_, direct := m[FieldFullName]

	contacts := make([]model.Contact, 0, len(rows))
	for _, row := range rows {
		fullName := m.value(row, FieldFullName)
		if !direct {
			fullName = strings.TrimSpace(m.value(row, FieldFirstName) + " " + m.value(row, FieldLastName))
		}
		first, last := model.SplitName(fullName)
		contacts = append(contacts, model.Contact{
			FullName:    fullName,
			FirstName:   first,
			LastName:    last,
			Company:     m.value(row, FieldCompany),
			Title:       m.value(row, FieldTitle),
			Email:       m.value(row, FieldEmail),
			LinkedinURL: m.value(row, FieldLinkedinURL),
		})
	}
	return contacts, nil
}

// MapAttendees converts raw rows into attendee records using the attendee
// schema. Missing optional columns yield empty strings for every row.
func MapAttendees(headers []string, rows [][]string) ([]model.Attendee, error) {
	m, err := ResolveAttendee(headers)
	if err != nil {
		return nil, err
	}

	attendees := make([]model.Attendee, 0, len(rows))
	for _, row := range rows {
		attendees = append(attendees, model.Attendee{
			Name:    m.value(row, FieldFullName),
			Company: m.value(row, FieldCompany),
			Email:   m.value(row, FieldEmail),
		})
	}
	return attendees, nil
}
