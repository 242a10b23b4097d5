package widgets

import "strings"

// ValueSeparator joins the selections of a dropdown into its hidden value and
// its toggle label.
const ValueSeparator = ", "

// Option is a single checkbox inside a dropdown menu.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// DropdownConfig declares a dropdown before it is registered.
type DropdownConfig struct {
	Name        string
	Label       string
	Placeholder string
	Required    bool
	Options     []Option
}

// Dropdown is a multi-select control presented as a toggle button over a
// checkbox menu. The checked set, the toggle label and the hidden value are
// kept in sync by SelectionChanged; nothing else writes the selection.
//
// A Dropdown is not safe for concurrent use.
type Dropdown struct {
	name        string
	label       string
	placeholder string
	required    bool
	options     []Option
	checked     []bool

	open     bool
	selected []string
	toggle   string
	hidden   string

	registry *Registry
}

// NewDropdown builds a dropdown from its declaration and resets it so the
// initial state is deterministic: nothing checked, placeholder label, empty
// value.
func NewDropdown(cfg DropdownConfig) *Dropdown {
	options := make([]Option, len(cfg.Options))
	copy(options, cfg.Options)
	d := &Dropdown{
		name:        strings.TrimSpace(cfg.Name),
		label:       cfg.Label,
		placeholder: cfg.Placeholder,
		required:    cfg.Required,
		options:     options,
		checked:     make([]bool, len(options)),
	}
	d.Reset("")
	return d
}

// Name returns the stable key of the dropdown.
func (d *Dropdown) Name() string { return d.name }

// Caption returns the field caption shown next to the toggle.
func (d *Dropdown) Caption() string { return d.label }

// Placeholder returns the label shown while nothing is selected.
func (d *Dropdown) Placeholder() string { return d.placeholder }

// Required reports whether an empty selection fails validation.
func (d *Dropdown) Required() bool { return d.required }

// Options returns a copy of the menu options in document order.
func (d *Dropdown) Options() []Option {
	out := make([]Option, len(d.options))
	copy(out, d.options)
	return out
}

// Checked returns a copy of the checkbox states, aligned with Options.
func (d *Dropdown) Checked() []bool {
	out := make([]bool, len(d.checked))
	copy(out, d.checked)
	return out
}

// IsOpen reports whether the menu is showing.
func (d *Dropdown) IsOpen() bool { return d.open }

// Selected returns the selected values in menu order.
func (d *Dropdown) Selected() []string {
	return append([]string(nil), d.selected...)
}

// Label returns the text on the toggle button.
func (d *Dropdown) Label() string { return d.toggle }

// Value returns the hidden, serialised value: the selections joined with
// ValueSeparator, or an empty string.
func (d *Dropdown) Value() string { return d.hidden }

// IsRequiredAndEmpty reports whether the dropdown is required and has no
// selection.
func (d *Dropdown) IsRequiredAndEmpty() bool {
	return d.required && len(d.selected) == 0
}

// HasOption reports whether value belongs to one of the menu options.
func (d *Dropdown) HasOption(value string) bool {
	return d.optionIndex(value) >= 0
}

// Open shows the menu after asking the registry to close every other
// dropdown. Opening an open dropdown does nothing.
func (d *Dropdown) Open() {
	if d.open {
		return
	}
	if d.registry != nil {
		d.registry.CloseAllExcept(d)
	}
	d.open = true
}

// Close hides the menu. The selection is untouched.
func (d *Dropdown) Close() {
	d.open = false
}

// Toggle closes an open dropdown, or closes the others and opens this one.
func (d *Dropdown) Toggle() {
	if d.open {
		d.Close()
		return
	}
	d.Open()
}

// SetChecked flips every checkbox holding value and fires SelectionChanged.
// It reports whether any checkbox matched.
func (d *Dropdown) SetChecked(value string, checked bool) bool {
	matched := false
	for i, opt := range d.options {
		if opt.Value == value {
			d.checked[i] = checked
			matched = true
		}
	}
	if matched {
		d.SelectionChanged()
	}
	return matched
}

// SetSelection checks exactly the checkboxes whose value is listed and fires
// SelectionChanged. Values that are not options are ignored.
func (d *Dropdown) SetSelection(values []string) {
	want := make(map[string]struct{}, len(values))
	for _, v := range values {
		want[v] = struct{}{}
	}
	for i, opt := range d.options {
		_, ok := want[opt.Value]
		d.checked[i] = ok
	}
	d.SelectionChanged()
}

// SelectionChanged recomputes the selection from the checkbox states in
// document order, then the toggle label and the hidden value.
func (d *Dropdown) SelectionChanged() {
	selected := make([]string, 0, len(d.options))
	for i, opt := range d.options {
		if d.checked[i] {
			selected = append(selected, opt.Value)
		}
	}
	d.selected = selected
	d.hidden = strings.Join(selected, ValueSeparator)
	if d.hidden != "" {
		d.toggle = d.hidden
	} else {
		d.toggle = d.placeholder
	}
}

// Reset unchecks every option. When defaultSelection names an option value
// the first checkbox holding it is checked and becomes the label and value;
// otherwise the label falls back to the placeholder and the value is empty.
// An empty defaultSelection means no default. Open state is untouched.
func (d *Dropdown) Reset(defaultSelection string) {
	for i := range d.checked {
		d.checked[i] = false
	}
	if defaultSelection != "" {
		if idx := d.optionIndex(defaultSelection); idx >= 0 {
			d.checked[idx] = true
		}
	}
	d.SelectionChanged()
}

func (d *Dropdown) optionIndex(value string) int {
	for i, opt := range d.options {
		if opt.Value == value {
			return i
		}
	}
	return -1
}
