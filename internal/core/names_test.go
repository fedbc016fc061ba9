package core

import "testing"

func TestDefaultNamePredicates(t *testing.T) {
	cases := []struct {
		name string
		ok   bool
	}{
		{"family", true},
		{"_private", true},
		{"a1", true},
		{"1abc", false},
		{"has-dash", false},
		{"has space", false},
		{"", false},
	}
	for _, c := range cases {
		if got := DefaultNamePredicates.IsValidName(c.name); got != c.ok {
			t.Errorf("IsValidName(%q) = %v, want %v", c.name, got, c.ok)
		}
		if got := DefaultNamePredicates.IsValidAlias(c.name); got != c.ok {
			t.Errorf("IsValidAlias(%q) = %v, want %v", c.name, got, c.ok)
		}
	}
}
