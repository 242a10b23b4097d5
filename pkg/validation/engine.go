package validation

import (
	"github.com/goliatone/go-formsheet/pkg/status"
	"github.com/goliatone/go-formsheet/pkg/widgets"
)

// RequiredMessage is written to the status slot when a pass fails.
const RequiredMessage = "Please complete all required fields before saving."

// Field is anything the engine can check. Both *widgets.Input and
// *widgets.Dropdown satisfy it.
type Field interface {
	Name() string
	Required() bool
	IsRequiredAndEmpty() bool
}

// Marker annotates a field that failed the last pass. Wrapper is set for
// dropdowns so the toggle border can render the error state too.
type Marker struct {
	Field   bool `json:"field"`
	Wrapper bool `json:"wrapper"`
}

// Engine validates required fields in declaration order.
type Engine struct {
	fields  []Field
	slot    *status.Slot
	markers map[string]Marker
	invalid []string
}

// New constructs an engine over fields, reporting failures to slot. Nil
// fields are skipped.
func New(slot *status.Slot, fields ...Field) *Engine {
	e := &Engine{
		slot:    slot,
		markers: make(map[string]Marker),
	}
	for _, f := range fields {
		if f == nil {
			continue
		}
		e.fields = append(e.fields, f)
	}
	return e
}

// Clear removes every marker.
func (e *Engine) Clear() {
	if e == nil {
		return
	}
	if len(e.markers) > 0 {
		e.markers = make(map[string]Marker)
	}
	e.invalid = nil
}

// Validate clears the markers, marks every required field that is empty and
// reports whether none was. A failed pass writes RequiredMessage to the
// status slot at error level; a successful pass leaves the slot alone.
func (e *Engine) Validate() bool {
	if e == nil {
		return true
	}
	e.Clear()

	for _, f := range e.fields {
		if !f.Required() || !f.IsRequiredAndEmpty() {
			continue
		}
		marker := Marker{Field: true}
		if _, ok := f.(*widgets.Dropdown); ok {
			marker.Wrapper = true
		}
		e.markers[f.Name()] = marker
		e.invalid = append(e.invalid, f.Name())
	}

	if len(e.invalid) == 0 {
		return true
	}
	e.slot.Set(RequiredMessage, status.LevelError)
	return false
}

// Marked reports whether the named field carries a marker.
func (e *Engine) Marked(name string) bool {
	if e == nil {
		return false
	}
	return e.markers[name].Field
}

// WrapperMarked reports whether the named dropdown's wrapper carries a
// marker.
func (e *Engine) WrapperMarked(name string) bool {
	if e == nil {
		return false
	}
	return e.markers[name].Wrapper
}

// Markers returns a copy of the current markers keyed by field name.
func (e *Engine) Markers() map[string]Marker {
	if e == nil || len(e.markers) == 0 {
		return nil
	}
	out := make(map[string]Marker, len(e.markers))
	for k, v := range e.markers {
		out[k] = v
	}
	return out
}

// Invalid returns the names marked by the last pass, in declaration order.
func (e *Engine) Invalid() []string {
	if e == nil {
		return nil
	}
	return append([]string(nil), e.invalid...)
}
