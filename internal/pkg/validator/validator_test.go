package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"pruning", false},
		{" tank 4 ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2024-01-15", "2023-12-31", "2024-02-29"}
	invalid := []string{"2024-13-01", "2024-02-30", "15-01-2024", "2024/01/15", "", "yesterday"}
	for _, d := range valid {
		if _, ok := IsValidDate(d); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		input string
		ok    bool
	}{
		{"300", true},
		{"300.50", true},
		{" 0.01 ", true},
		{"-25", true},
		{"", false},
		{"abc", false},
		{"12,50", false},
	}
	for _, c := range cases {
		_, ok := ParseAmount(c.input)
		if ok != c.ok {
			t.Errorf("ParseAmount(%q) ok = %v, want %v", c.input, ok, c.ok)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"full_day", "half_day", "absent"}
	if !IsInSlice("half_day", slice) {
		t.Error("IsInSlice(half_day) = false, want true")
	}
	if IsInSlice("not_set", slice) {
		t.Error("IsInSlice(not_set) = true, want false")
	}
}
