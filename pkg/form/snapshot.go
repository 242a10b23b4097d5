package form

import (
	"github.com/goliatone/go-formsheet/pkg/status"
	"github.com/goliatone/go-formsheet/pkg/widgets"
)

// Snapshot is a read-only view of the controller used by hosts to draw the
// sheet.
type Snapshot struct {
	SheetID  string
	Title    string
	Sections []SectionView
	Status   status.Message
}

// SectionView groups the fields of one section in declaration order. Fields
// without a section land in a trailing view with an empty ID.
type SectionView struct {
	ID        string
	Title     string
	Dropdowns []DropdownView
	Inputs    []InputView
}

// DropdownView mirrors one dropdown.
type DropdownView struct {
	Name        string
	Caption     string
	Placeholder string
	Label       string
	Value       string
	Required    bool
	Open        bool
	Invalid     bool
	Options     []OptionView
}

// OptionView mirrors one checkbox.
type OptionView struct {
	Label   string
	Value   string
	Checked bool
}

// InputView mirrors one text input.
type InputView struct {
	Name        string
	Caption     string
	Placeholder string
	Value       string
	Required    bool
	Invalid     bool
}

// Dropdown returns the named dropdown view.
func (s Snapshot) Dropdown(name string) (DropdownView, bool) {
	for _, sec := range s.Sections {
		for _, d := range sec.Dropdowns {
			if d.Name == name {
				return d, true
			}
		}
	}
	return DropdownView{}, false
}

// Input returns the named input view.
func (s Snapshot) Input(name string) (InputView, bool) {
	for _, sec := range s.Sections {
		for _, in := range sec.Inputs {
			if in.Name == name {
				return in, true
			}
		}
	}
	return InputView{}, false
}

// Snapshot captures the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		SheetID: c.sheet.ID,
		Title:   c.sheet.Title,
		Status:  c.slot.Current(),
	}

	index := make(map[string]int, len(c.sheet.Sections))
	for _, sec := range c.sheet.Sections {
		index[sec.ID] = len(snap.Sections)
		snap.Sections = append(snap.Sections, SectionView{ID: sec.ID, Title: sec.Title})
	}
	section := func(id string) *SectionView {
		pos, ok := index[id]
		if !ok {
			index[id] = len(snap.Sections)
			snap.Sections = append(snap.Sections, SectionView{ID: id})
			pos = index[id]
		}
		return &snap.Sections[pos]
	}

	for _, w := range c.sheet.Widgets {
		d, ok := c.registry.Get(w.Name)
		if !ok {
			continue
		}
		sec := section(w.Section)
		sec.Dropdowns = append(sec.Dropdowns, c.dropdownView(d))
	}
	for _, decl := range c.sheet.Inputs {
		in, ok := c.byName[decl.Name]
		if !ok {
			continue
		}
		sec := section(decl.Section)
		sec.Inputs = append(sec.Inputs, InputView{
			Name:        in.Name(),
			Caption:     in.Caption(),
			Placeholder: in.Placeholder(),
			Value:       in.Value(),
			Required:    in.Required(),
			Invalid:     c.engine.Marked(in.Name()),
		})
	}
	return snap
}

func (c *Controller) dropdownView(d *widgets.Dropdown) DropdownView {
	checked := d.Checked()
	opts := d.Options()
	view := DropdownView{
		Name:        d.Name(),
		Caption:     d.Caption(),
		Placeholder: d.Placeholder(),
		Label:       d.Label(),
		Value:       d.Value(),
		Required:    d.Required(),
		Open:        d.IsOpen(),
		Invalid:     c.engine.WrapperMarked(d.Name()),
		Options:     make([]OptionView, len(opts)),
	}
	for i, opt := range opts {
		view.Options[i] = OptionView{Label: opt.Label, Value: opt.Value, Checked: checked[i]}
	}
	return view
}
