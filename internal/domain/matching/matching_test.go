package matching_test

import (
	"context"
	"errors"
	"testing"

	"github.com/okian/rolodex/internal/domain/matching"
	"github.com/okian/rolodex/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestEngine_Match(t *testing.T) {
	ctx := context.Background()

	Convey("Given a directory with one contact", t, func() {
		engine := matching.New()
		contacts := []model.Contact{
			{FullName: "Jane Doe", Company: "Acme Corp", Title: "CTO", Owner: "Ava", Source: "LinkedIn", Email: "jdoe@acme.test"},
		}

		Convey("When an attendee matches exactly at threshold 85", func() {
			attendees := []model.Attendee{{Name: "Jane Doe", Company: "Acme Corp", Email: "jane@conf.test"}}
			matches, err := engine.Match(ctx, attendees, contacts, 85)

			Convey("Then one match with score 100 is emitted", func() {
				So(err, ShouldBeNil)
				So(matches, ShouldHaveLength, 1)
				So(matches[0].Score, ShouldEqual, 100)
				So(matches[0].AttendeeName, ShouldEqual, "Jane Doe")
				So(matches[0].ContactName, ShouldEqual, "Jane Doe")
				So(matches[0].ContactOwner, ShouldEqual, "Ava")
				So(matches[0].ContactSource, ShouldEqual, "LinkedIn")
				So(matches[0].ContactTitle, ShouldEqual, "CTO")
				So(matches[0].AttendeeEmail, ShouldEqual, "jane@conf.test")
			})
		})

		Convey("When word order differs between attendee and contact", func() {
			attendees := []model.Attendee{{Name: "Doe Jane", Company: "Acme Corp"}}
			matches, err := engine.Match(ctx, attendees, contacts, 85)

			Convey("Then the token-sort metric still scores 100", func() {
				So(err, ShouldBeNil)
				So(matches, ShouldHaveLength, 1)
				So(matches[0].Score, ShouldEqual, 100)
			})
		})

		Convey("When a near-miss attendee is matched at threshold 90", func() {
			attendees := []model.Attendee{{Name: "Jon Doe", Company: "Acme Co"}}
			matches, err := engine.Match(ctx, attendees, contacts, 90)

			Convey("Then no row is emitted", func() {
				So(err, ShouldBeNil)
				So(matches, ShouldBeEmpty)
			})
		})

		Convey("When an attendee has neither name nor company", func() {
			attendees := []model.Attendee{{Name: "  ", Company: ""}, {Name: "Jane Doe", Company: "Acme Corp"}}
			matches, err := engine.Match(ctx, attendees, contacts, 85)

			Convey("Then the empty-key attendee is skipped without error", func() {
				So(err, ShouldBeNil)
				So(matches, ShouldHaveLength, 1)
				So(matches[0].AttendeeName, ShouldEqual, "Jane Doe")
			})
		})
	})

	Convey("Given an empty contact directory", t, func() {
		engine := matching.New()

		Convey("When any attendee list is matched", func() {
			attendees := []model.Attendee{{Name: "Jane Doe", Company: "Acme Corp"}}
			matches, err := engine.Match(ctx, attendees, nil, 85)

			Convey("Then ErrEmptyStore is returned", func() {
				So(matches, ShouldBeNil)
				So(errors.Is(err, matching.ErrEmptyStore), ShouldBeTrue)
			})
		})
	})

	Convey("Given a fixed scorer", t, func() {
		score := 0
		engine := matching.New(matching.WithScorer(func(a, b string) int { return score }))
		contacts := []model.Contact{{FullName: "Jane Doe", Company: "Acme Corp"}}
		attendees := []model.Attendee{{Name: "Someone", Company: "Somewhere"}}

		Convey("When the score equals the threshold exactly", func() {
			score = 85
			matches, err := engine.Match(ctx, attendees, contacts, 85)

			Convey("Then the boundary is inclusive", func() {
				So(err, ShouldBeNil)
				So(matches, ShouldHaveLength, 1)
				So(matches[0].Score, ShouldEqual, 85)
			})
		})

		Convey("When the score is one below the threshold", func() {
			score = 84
			matches, err := engine.Match(ctx, attendees, contacts, 85)

			Convey("Then no row is emitted", func() {
				So(err, ShouldBeNil)
				So(matches, ShouldBeEmpty)
			})
		})
	})

	Convey("Given two contacts normalizing to the same key", t, func() {
		engine := matching.New()
		contacts := []model.Contact{
			{FullName: "Jane Doe", Company: "Acme Corp", Owner: "Ava"},
			{FullName: "Jane Doe", Company: "Acme Corp", Owner: "Ben"},
		}

		Convey("When an attendee ties against both", func() {
			attendees := []model.Attendee{{Name: "Jane Doe", Company: "Acme Corp"}}
			matches, err := engine.Match(ctx, attendees, contacts, 85)

			Convey("Then the first contact in iteration order wins", func() {
				So(err, ShouldBeNil)
				So(matches, ShouldHaveLength, 1)
				So(matches[0].ContactOwner, ShouldEqual, "Ava")
			})
		})
	})

	Convey("Given several attendees in a fixed order", t, func() {
		engine := matching.New()
		contacts := []model.Contact{
			{FullName: "Jane Doe", Company: "Acme Corp"},
			{FullName: "John Smith", Company: "Globex"},
		}
		attendees := []model.Attendee{
			{Name: "John Smith", Company: "Globex"},
			{Name: "Nobody At All", Company: "Initech"},
			{Name: "Jane Doe", Company: "Acme Corp"},
		}

		Convey("When matched", func() {
			matches, err := engine.Match(ctx, attendees, contacts, 85)

			Convey("Then output follows attendee input order, skipping non-matches", func() {
				So(err, ShouldBeNil)
				So(matches, ShouldHaveLength, 2)
				So(matches[0].AttendeeName, ShouldEqual, "John Smith")
				So(matches[1].AttendeeName, ShouldEqual, "Jane Doe")
			})
		})
	})
}
