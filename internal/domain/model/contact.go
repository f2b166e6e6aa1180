// Package model holds the record shapes shared across the service:
// persisted contacts, ephemeral attendees, and match rows.
package model

import (
	"strconv"
	"strings"
)

// Contact is one row of the persisted contact directory. The (Owner, Source)
// pair partitions the table; re-ingesting a partition replaces all of its rows.
type Contact struct {
	ID          uint   `gorm:"column:id;primaryKey;autoIncrement"`
	FullName    string `gorm:"column:full_name;not null"`
	FirstName   string `gorm:"column:first_name"`
	LastName    string `gorm:"column:last_name"`
	Company     string `gorm:"column:company"`
	Title       string `gorm:"column:title"`
	Email       string `gorm:"column:email"`
	LinkedinURL string `gorm:"column:linkedin_url"`
	Source      string `gorm:"column:source;index:idx_owner_source"`
	Owner       string `gorm:"column:owner;index:idx_owner_source"`
}

// TableName pins the gorm table name.
func (Contact) TableName() string { return "contacts" }

// Attendee is one row of an uploaded attendee list. It is never persisted;
// its only identity is its position in the input file.
type Attendee struct {
	Name    string
	Company string
	Email   string
}

// Match joins an attendee with the best-scoring contact. Attendees that do
// not clear the threshold produce no Match at all.
type Match struct {
	AttendeeName    string `json:"attendee_name"`
	AttendeeCompany string `json:"attendee_company"`
	AttendeeEmail   string `json:"attendee_email"`
	ContactName     string `json:"contact_name"`
	ContactCompany  string `json:"contact_company"`
	ContactTitle    string `json:"contact_title"`
	ContactOwner    string `json:"contact_owner"`
	ContactSource   string `json:"contact_source"`
	ContactEmail    string `json:"contact_email"`
	Score           int    `json:"match_score"`
}

// MatchColumns is the fixed column order of the result table. Renderers and
// the CSV export must not reorder it.
var MatchColumns = []string{
	"attendee_name",
	"attendee_company",
	"attendee_email",
	"contact_name",
	"contact_company",
	"contact_title",
	"contact_owner",
	"contact_source",
	"contact_email",
	"match_score",
}

// Row returns the match as a string slice in MatchColumns order.
func (m Match) Row() []string {
	return []string{
		m.AttendeeName,
		m.AttendeeCompany,
		m.AttendeeEmail,
		m.ContactName,
		m.ContactCompany,
		m.ContactTitle,
		m.ContactOwner,
		m.ContactSource,
		m.ContactEmail,
		strconv.Itoa(m.Score),
	}
}

// SplitName derives first and last name from a full name: the last
// whitespace token is the last name, the remainder the first name.
// Single-token names become a first name with an empty last name.
func SplitName(fullName string) (first, last string) {
	parts := strings.Fields(fullName)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return strings.Join(parts[:len(parts)-1], " "), parts[len(parts)-1]
	}
}
