package model

import "testing"

func TestSplitName(t *testing.T) {
	cases := []struct {
		in    string
		first string
		last  string
	}{
		{"", "", ""},
		{"Cher", "Cher", ""},
		{"Jane Doe", "Jane", "Doe"},
		{"Mary Jane Watson", "Mary Jane", "Watson"},
		{"  Jane   Doe  ", "Jane", "Doe"},
	}
	for _, c := range cases {
		first, last := SplitName(c.in)
		if first != c.first || last != c.last {
			t.Errorf("SplitName(%q) = (%q, %q), want (%q, %q)", c.in, first, last, c.first, c.last)
		}
	}
}

func TestMatchRow_FollowsColumnOrder(t *testing.T) {
	m := Match{
		AttendeeName:    "Jane Doe",
		AttendeeCompany: "Acme Corp",
		AttendeeEmail:   "jane@acme.test",
		ContactName:     "Jane Doe",
		ContactCompany:  "Acme Corp",
		ContactTitle:    "CTO",
		ContactOwner:    "Ava",
		ContactSource:   "LinkedIn",
		ContactEmail:    "jdoe@acme.test",
		Score:           100,
	}
	row := m.Row()
	if len(row) != len(MatchColumns) {
		t.Fatalf("row has %d cells, want %d", len(row), len(MatchColumns))
	}
	want := []string{
		"Jane Doe", "Acme Corp", "jane@acme.test",
		"Jane Doe", "Acme Corp", "CTO", "Ava", "LinkedIn", "jdoe@acme.test",
		"100",
	}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("row[%d] (%s) = %q, want %q", i, MatchColumns[i], row[i], want[i])
		}
	}
}
