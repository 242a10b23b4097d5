package widgets

import (
	"errors"
	"fmt"
)

// Well-known dropdown names with reset defaults.
const (
	DropdownSheetType = "sheetType"
	DropdownLayout    = "layout"

	// LayoutDefault is checked on the layout dropdown after a reset.
	LayoutDefault = "4 Per Row"
)

var (
	// ErrNilDropdown is returned when registering a nil dropdown.
	ErrNilDropdown = errors.New("widgets: dropdown is nil")
	// ErrEmptyName is returned when registering a dropdown without a name.
	ErrEmptyName = errors.New("widgets: dropdown name is required")
)

// ClickPart identifies which part of the page a click landed on.
type ClickPart string

const (
	// ClickOutside is any click that is not on a dropdown.
	ClickOutside ClickPart = "outside"
	// ClickToggle is a click on a dropdown's toggle button.
	ClickToggle ClickPart = "toggle"
	// ClickMenu is a click inside a dropdown's open menu.
	ClickMenu ClickPart = "menu"
)

// Click describes a pointer event routed through the registry.
type Click struct {
	Part     ClickPart
	Dropdown string
}

// Outside returns a click that landed outside every dropdown.
func Outside() Click { return Click{Part: ClickOutside} }

// ToggleClick returns a click on the named dropdown's toggle button.
func ToggleClick(name string) Click { return Click{Part: ClickToggle, Dropdown: name} }

// MenuClick returns a click inside the named dropdown's menu.
func MenuClick(name string) Click { return Click{Part: ClickMenu, Dropdown: name} }

// Registry owns every dropdown of a sheet and keeps at most one of them open.
// Dropdowns are kept in registration order.
//
// A Registry is not safe for concurrent use; callers serialise access.
type Registry struct {
	dropdowns []*Dropdown
	byName    map[string]*Dropdown
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Dropdown)}
}

// Register adds a dropdown and binds it to the registry so Open can enforce
// exclusivity. Duplicate names are rejected.
func (r *Registry) Register(d *Dropdown) error {
	if d == nil {
		return ErrNilDropdown
	}
	if d.name == "" {
		return ErrEmptyName
	}
	if _, exists := r.byName[d.name]; exists {
		return fmt.Errorf("widgets: dropdown %q already registered", d.name)
	}
	d.registry = r
	r.dropdowns = append(r.dropdowns, d)
	r.byName[d.name] = d
	if d.open {
		r.CloseAllExcept(d)
	}
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(d *Dropdown) {
	if err := r.Register(d); err != nil {
		panic(err)
	}
}

// Get returns the dropdown registered under name.
func (r *Registry) Get(name string) (*Dropdown, bool) {
	if r == nil {
		return nil, false
	}
	d, ok := r.byName[name]
	return d, ok
}

// All returns the dropdowns in registration order.
func (r *Registry) All() []*Dropdown {
	if r == nil {
		return nil
	}
	return append([]*Dropdown(nil), r.dropdowns...)
}

// Len reports how many dropdowns are registered.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.dropdowns)
}

// Open returns the open dropdown, if any.
func (r *Registry) Open() (*Dropdown, bool) {
	if r == nil {
		return nil, false
	}
	for _, d := range r.dropdowns {
		if d.open {
			return d, true
		}
	}
	return nil, false
}

// CloseAllExcept closes every dropdown other than except. A nil except closes
// them all. Closing a closed dropdown is a no-op.
func (r *Registry) CloseAllExcept(except *Dropdown) {
	if r == nil {
		return
	}
	for _, d := range r.dropdowns {
		if d != except {
			d.Close()
		}
	}
}

// HandleClick routes a click. Toggle clicks toggle their dropdown; clicks in
// a dropdown's own menu leave open state alone; anything else, including a
// click naming an unknown dropdown, closes every dropdown.
func (r *Registry) HandleClick(click Click) {
	if r == nil {
		return
	}
	d, known := r.byName[click.Dropdown]
	switch {
	case click.Part == ClickToggle && known:
		d.Toggle()
	case click.Part == ClickMenu && known:
	default:
		r.CloseAllExcept(nil)
	}
}

// DefaultSelection returns the option a dropdown is reset to: the first
// declared option for the sheet type, LayoutDefault for the layout when it is
// offered, and nothing for every other dropdown.
func DefaultSelection(d *Dropdown) string {
	if d == nil {
		return ""
	}
	switch d.name {
	case DropdownSheetType:
		if len(d.options) > 0 {
			return d.options[0].Value
		}
	case DropdownLayout:
		if d.HasOption(LayoutDefault) {
			return LayoutDefault
		}
	}
	return ""
}
