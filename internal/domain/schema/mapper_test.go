package schema_test

import (
	"errors"
	"testing"

	"github.com/okian/rolodex/internal/domain/schema"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMapContacts(t *testing.T) {
	Convey("Given a contact CSV with a direct name column", t, func() {
		headers := []string{"Name", "Company", "Title", "Email", "LinkedIn URL"}
		rows := [][]string{
			{"Jane Doe", "Acme Corp", "CTO", "jdoe@acme.test", "https://linkedin.test/janedoe"},
			{" Mary Jane Watson ", "Globex", "", "", ""},
		}

		Convey("When mapped", func() {
			contacts, err := schema.MapContacts(headers, rows)

			Convey("Then all canonical fields are filled", func() {
				So(err, ShouldBeNil)
				So(contacts, ShouldHaveLength, 2)
				So(contacts[0].FullName, ShouldEqual, "Jane Doe")
				So(contacts[0].FirstName, ShouldEqual, "Jane")
				So(contacts[0].LastName, ShouldEqual, "Doe")
				So(contacts[0].Company, ShouldEqual, "Acme Corp")
				So(contacts[0].Title, ShouldEqual, "CTO")
				So(contacts[0].Email, ShouldEqual, "jdoe@acme.test")
				So(contacts[0].LinkedinURL, ShouldEqual, "https://linkedin.test/janedoe")
			})

			Convey("And multi-word names split on the last token", func() {
				So(err, ShouldBeNil)
				So(contacts[1].FullName, ShouldEqual, "Mary Jane Watson")
				So(contacts[1].FirstName, ShouldEqual, "Mary Jane")
				So(contacts[1].LastName, ShouldEqual, "Watson")
			})

			Convey("And missing optional fields default to empty strings", func() {
				So(err, ShouldBeNil)
				So(contacts[1].Title, ShouldEqual, "")
				So(contacts[1].Email, ShouldEqual, "")
				So(contacts[1].LinkedinURL, ShouldEqual, "")
			})
		})
	})

	Convey("Given a contact CSV with first and last name columns only", t, func() {
		headers := []string{"First Name", "Last Name", "Current Company"}
		rows := [][]string{
			{"Jane", "Doe", "Acme Corp"},
			{"  ", "", "Hollow Inc"},
		}

		Convey("When mapped", func() {
			contacts, err := schema.MapContacts(headers, rows)

			Convey("Then the full name is synthesized from first+last", func() {
				So(err, ShouldBeNil)
				So(contacts, ShouldHaveLength, 2)
				So(contacts[0].FullName, ShouldEqual, "Jane Doe")
				So(contacts[0].Company, ShouldEqual, "Acme Corp")
			})

			Convey("And an all-blank name row resolves to an empty full name", func() {
				So(err, ShouldBeNil)
				So(contacts[1].FullName, ShouldEqual, "")
			})
		})
	})

	Convey("Given headers with case and whitespace variance", t, func() {
		headers := []string{"  FULL_NAME ", " organization", "JOB TITLE"}
		rows := [][]string{{"Jane Doe", "Acme Corp", "CTO"}}

		Convey("When mapped", func() {
			contacts, err := schema.MapContacts(headers, rows)

			Convey("Then aliases resolve case-insensitively after trimming", func() {
				So(err, ShouldBeNil)
				So(contacts[0].FullName, ShouldEqual, "Jane Doe")
				So(contacts[0].Company, ShouldEqual, "Acme Corp")
				So(contacts[0].Title, ShouldEqual, "CTO")
			})
		})
	})

	Convey("Given a contact CSV with no resolvable name columns", t, func() {
		headers := []string{"Company", "Email", "First Name"}
		rows := [][]string{{"Acme Corp", "x@y.test", "Jane"}}

		Convey("When mapped", func() {
			contacts, err := schema.MapContacts(headers, rows)

			Convey("Then a schema error names the missing requirement", func() {
				So(contacts, ShouldBeNil)
				So(errors.Is(err, schema.ErrSchema), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "full_name")
			})
		})
	})
}

func TestMapAttendees(t *testing.T) {
	Convey("Given an attendee CSV with only a Full Name column", t, func() {
		headers := []string{"Full Name"}
		rows := [][]string{{"Jane Doe"}, {"John Smith"}}

		Convey("When mapped", func() {
			attendees, err := schema.MapAttendees(headers, rows)

			Convey("Then names resolve and company/email are empty, never an error", func() {
				So(err, ShouldBeNil)
				So(attendees, ShouldHaveLength, 2)
				So(attendees[0].Name, ShouldEqual, "Jane Doe")
				So(attendees[0].Company, ShouldEqual, "")
				So(attendees[0].Email, ShouldEqual, "")
				So(attendees[1].Company, ShouldEqual, "")
			})
		})
	})

	Convey("Given an attendee CSV with org and email aliases", t, func() {
		headers := []string{"name", "Org", "Email Address"}
		rows := [][]string{{"Jane Doe", "Acme Corp", "jane@conf.test"}}

		Convey("When mapped", func() {
			attendees, err := schema.MapAttendees(headers, rows)

			Convey("Then every alias resolves", func() {
				So(err, ShouldBeNil)
				So(attendees[0].Name, ShouldEqual, "Jane Doe")
				So(attendees[0].Company, ShouldEqual, "Acme Corp")
				So(attendees[0].Email, ShouldEqual, "jane@conf.test")
			})
		})
	})

	Convey("Given an attendee CSV with short rows", t, func() {
		headers := []string{"Name", "Company", "Email"}
		rows := [][]string{{"Jane Doe"}}

		Convey("When mapped", func() {
			attendees, err := schema.MapAttendees(headers, rows)

			Convey("Then missing cells read as empty strings", func() {
				So(err, ShouldBeNil)
				So(attendees[0].Name, ShouldEqual, "Jane Doe")
				So(attendees[0].Company, ShouldEqual, "")
			})
		})
	})

	Convey("Given an attendee CSV without a name column", t, func() {
		headers := []string{"Company", "Email"}

		Convey("When mapped", func() {
			attendees, err := schema.MapAttendees(headers, nil)

			Convey("Then a schema error is returned", func() {
				So(attendees, ShouldBeNil)
				So(errors.Is(err, schema.ErrSchema), ShouldBeTrue)
			})
		})
	})
}
