package widgets

import "strings"

// InputConfig declares a plain text input.
type InputConfig struct {
	Name        string
	Label       string
	Placeholder string
	Required    bool
}

// Input is a plain single-line text field. Values are stored verbatim.
type Input struct {
	name        string
	label       string
	placeholder string
	required    bool
	value       string
}

// NewInput builds an empty input from its declaration.
func NewInput(cfg InputConfig) *Input {
	return &Input{
		name:        strings.TrimSpace(cfg.Name),
		label:       cfg.Label,
		placeholder: cfg.Placeholder,
		required:    cfg.Required,
	}
}

func (i *Input) Name() string        { return i.name }
func (i *Input) Caption() string     { return i.label }
func (i *Input) Placeholder() string { return i.placeholder }
func (i *Input) Required() bool      { return i.required }
func (i *Input) Value() string       { return i.value }

// SetValue stores value as typed, whatever its length.
func (i *Input) SetValue(value string) {
	i.value = value
}

// Clear empties the input.
func (i *Input) Clear() {
	i.value = ""
}

// IsRequiredAndEmpty reports whether the input is required and holds only
// whitespace.
func (i *Input) IsRequiredAndEmpty() bool {
	return i.required && strings.TrimSpace(i.value) == ""
}
