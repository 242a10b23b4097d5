package widgets

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func fruitDropdown(required bool) *Dropdown {
	return NewDropdown(DropdownConfig{
		Name:        "fruit",
		Placeholder: "Select fruit",
		Required:    required,
		Options: []Option{
			{Label: "Apple", Value: "A"},
			{Label: "Banana", Value: "B"},
			{Label: "Cherry", Value: "C"},
		},
	})
}

func TestNewDropdown_InitialState(t *testing.T) {
	d := fruitDropdown(true)

	if d.IsOpen() {
		t.Fatalf("new dropdown should be closed")
	}
	if d.Value() != "" {
		t.Fatalf("expected empty value, got %q", d.Value())
	}
	if d.Label() != "Select fruit" {
		t.Fatalf("expected placeholder label, got %q", d.Label())
	}
	if !d.IsRequiredAndEmpty() {
		t.Fatalf("required dropdown without selection should be empty")
	}
}

func TestSelectionChanged_DocumentOrder(t *testing.T) {
	d := fruitDropdown(false)

	d.SetChecked("C", true)
	d.SetChecked("A", true)

	if diff := cmp.Diff([]string{"A", "C"}, d.Selected()); diff != "" {
		t.Fatalf("selection mismatch (-want +got):\n%s", diff)
	}
	if d.Value() != "A, C" || d.Label() != "A, C" {
		t.Fatalf("value/label not joined in menu order: value=%q label=%q", d.Value(), d.Label())
	}

	d.SetChecked("A", false)
	d.SetChecked("C", false)
	if d.Value() != "" || d.Label() != "Select fruit" {
		t.Fatalf("expected placeholder after unchecking all: value=%q label=%q", d.Value(), d.Label())
	}
}

func TestSetChecked_UnknownValue(t *testing.T) {
	d := fruitDropdown(false)
	if d.SetChecked("Z", true) {
		t.Fatalf("unknown value should not match a checkbox")
	}
	if d.Value() != "" {
		t.Fatalf("unknown value must not change the selection, got %q", d.Value())
	}
}

func TestSetSelection_ValueEqualsCheckedJoin(t *testing.T) {
	d := fruitDropdown(false)

	cases := [][]string{
		{"A", "B"},
		{"B", "A"},
		{"C"},
		{},
		{"A", "B", "C", "Z"},
	}
	for _, values := range cases {
		d.SetSelection(values)

		var want []string
		for i, opt := range d.Options() {
			if d.Checked()[i] {
				want = append(want, opt.Value)
			}
		}
		got := d.Selected()
		if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("selection for %v mismatch (-want +got):\n%s", values, diff)
		}
	}

	d.SetSelection([]string{"B", "A"})
	if d.Value() != "A, B" {
		t.Fatalf("expected menu order, got %q", d.Value())
	}
}

func TestReset_DefaultSelection(t *testing.T) {
	d := fruitDropdown(true)
	d.SetSelection([]string{"A", "C"})
	d.Open()

	d.Reset("B")
	if d.Value() != "B" || d.Label() != "B" {
		t.Fatalf("expected default selection, got value=%q label=%q", d.Value(), d.Label())
	}
	if !d.IsOpen() {
		t.Fatalf("reset must not change open state")
	}

	d.Reset("missing")
	if d.Value() != "" || d.Label() != "Select fruit" {
		t.Fatalf("unknown default should clear to placeholder, got value=%q label=%q", d.Value(), d.Label())
	}
}

func TestCloseKeepsSelection(t *testing.T) {
	d := fruitDropdown(false)
	d.Open()
	d.SetChecked("B", true)
	d.Close()

	if d.IsOpen() {
		t.Fatalf("expected closed dropdown")
	}
	if d.Value() != "B" {
		t.Fatalf("close must not alter the selection, got %q", d.Value())
	}
}

func TestZeroOptionsAlwaysEmpty(t *testing.T) {
	d := NewDropdown(DropdownConfig{Name: "empty", Placeholder: "None", Required: true})
	d.SetSelection([]string{"anything"})
	d.Reset("anything")

	if d.Value() != "" || d.Label() != "None" || !d.IsRequiredAndEmpty() {
		t.Fatalf("zero-option dropdown should stay empty: value=%q label=%q", d.Value(), d.Label())
	}
}

func TestInput_WhitespaceIsEmpty(t *testing.T) {
	in := NewInput(InputConfig{Name: "product", Required: true})
	in.SetValue(" \t\n ")
	if !in.IsRequiredAndEmpty() {
		t.Fatalf("whitespace-only value should count as empty")
	}
	in.SetValue(" x ")
	if in.IsRequiredAndEmpty() {
		t.Fatalf("non-blank value should satisfy the requirement")
	}
	if in.Value() != " x " {
		t.Fatalf("value must be stored verbatim, got %q", in.Value())
	}
}
