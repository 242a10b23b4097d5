package sheet

// Sheet describes one data-entry form.
type Sheet struct {
	ID       string    `json:"id" yaml:"id" toml:"id"`
	Title    string    `json:"title" yaml:"title" toml:"title"`
	Sections []Section `json:"sections" yaml:"sections" toml:"sections"`
	Widgets  []Widget  `json:"widgets" yaml:"widgets" toml:"widgets"`
	Inputs   []Input   `json:"inputs" yaml:"inputs" toml:"inputs"`
	Source   string    `json:"-" yaml:"-" toml:"-"`
}

// Section groups fields into a card on the sheet.
type Section struct {
	ID    string `json:"id" yaml:"id" toml:"id"`
	Title string `json:"title" yaml:"title" toml:"title"`
}

// Widget declares a multi-select dropdown.
type Widget struct {
	Name        string   `json:"name" yaml:"name" toml:"name"`
	Section     string   `json:"section,omitempty" yaml:"section,omitempty" toml:"section,omitempty"`
	Label       string   `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
	Placeholder string   `json:"placeholder,omitempty" yaml:"placeholder,omitempty" toml:"placeholder,omitempty"`
	Required    bool     `json:"required,omitempty" yaml:"required,omitempty" toml:"required,omitempty"`
	Options     []Option `json:"options" yaml:"options" toml:"options"`
}

// Option is one checkbox of a dropdown menu. When Value is empty the label is
// used as the value.
type Option struct {
	Label string `json:"label" yaml:"label" toml:"label"`
	Value string `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
}

// Input declares a plain text input.
type Input struct {
	Name        string `json:"name" yaml:"name" toml:"name"`
	Section     string `json:"section,omitempty" yaml:"section,omitempty" toml:"section,omitempty"`
	Label       string `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty" toml:"placeholder,omitempty"`
	Required    bool   `json:"required,omitempty" yaml:"required,omitempty" toml:"required,omitempty"`
}

// Widget returns the dropdown declared under name.
func (s Sheet) Widget(name string) (Widget, bool) {
	for _, w := range s.Widgets {
		if w.Name == name {
			return w, true
		}
	}
	return Widget{}, false
}

// Input returns the text input declared under name.
func (s Sheet) Input(name string) (Input, bool) {
	for _, in := range s.Inputs {
		if in.Name == name {
			return in, true
		}
	}
	return Input{}, false
}
