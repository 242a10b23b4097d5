package validation_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formsheet/pkg/status"
	"github.com/goliatone/go-formsheet/pkg/validation"
	"github.com/goliatone/go-formsheet/pkg/widgets"
)

type fixture struct {
	slot     *status.Slot
	engine   *validation.Engine
	product  *widgets.Input
	notes    *widgets.Input
	layout   *widgets.Dropdown
	location *widgets.Dropdown
}

func newFixture() fixture {
	f := fixture{slot: status.NewSlot()}
	f.product = widgets.NewInput(widgets.InputConfig{Name: "product", Required: true})
	f.notes = widgets.NewInput(widgets.InputConfig{Name: "notes"})
	f.layout = widgets.NewDropdown(widgets.DropdownConfig{
		Name:     widgets.DropdownLayout,
		Required: true,
		Options:  []widgets.Option{{Value: "2 Per Row"}, {Value: widgets.LayoutDefault}},
	})
	f.location = widgets.NewDropdown(widgets.DropdownConfig{
		Name:    "location",
		Options: []widgets.Option{{Value: "North"}},
	})
	f.engine = validation.New(f.slot, f.product, f.notes, f.layout, f.location, nil)
	return f
}

func TestValidate_LayoutRequiredScenario(t *testing.T) {
	f := newFixture()
	f.product.SetValue("Slurry")

	if f.engine.Validate() {
		t.Fatalf("expected validation to fail with empty layout")
	}
	if !f.engine.Marked(widgets.DropdownLayout) || !f.engine.WrapperMarked(widgets.DropdownLayout) {
		t.Fatalf("layout field and wrapper should carry the marker")
	}
	if f.engine.Marked("product") {
		t.Fatalf("filled input must not be marked")
	}

	want := status.Message{Text: validation.RequiredMessage, Level: status.LevelError}
	if diff := cmp.Diff(want, f.slot.Current()); diff != "" {
		t.Fatalf("status mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_WhitespaceInputIsEmpty(t *testing.T) {
	f := newFixture()
	f.product.SetValue("   ")
	f.layout.SetChecked(widgets.LayoutDefault, true)

	if f.engine.Validate() {
		t.Fatalf("whitespace-only required input should fail")
	}
	if diff := cmp.Diff([]string{"product"}, f.engine.Invalid()); diff != "" {
		t.Fatalf("invalid fields mismatch (-want +got):\n%s", diff)
	}
	if f.engine.WrapperMarked("product") {
		t.Fatalf("plain inputs have no wrapper marker")
	}
}

func TestValidate_SuccessLeavesStatus(t *testing.T) {
	f := newFixture()
	f.product.SetValue("Slurry")
	f.layout.SetChecked("2 Per Row", true)
	f.slot.Set("previous", status.LevelInfo)

	if !f.engine.Validate() {
		t.Fatalf("expected validation to pass, invalid=%v", f.engine.Invalid())
	}
	if f.slot.Current().Text != "previous" {
		t.Fatalf("successful pass must not touch status, got %+v", f.slot.Current())
	}
}

func TestValidate_ClearsStaleMarkers(t *testing.T) {
	f := newFixture()
	if f.engine.Validate() {
		t.Fatalf("expected failure")
	}
	f.product.SetValue("Slurry")
	f.layout.SetChecked(widgets.LayoutDefault, true)

	if !f.engine.Validate() {
		t.Fatalf("expected success on second pass")
	}
	if f.engine.Markers() != nil {
		t.Fatalf("markers from a previous pass must be cleared, got %v", f.engine.Markers())
	}
}

func TestClear_Idempotent(t *testing.T) {
	f := newFixture()
	f.engine.Validate()

	f.engine.Clear()
	once := f.engine.Markers()
	f.engine.Clear()
	twice := f.engine.Markers()

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("clear twice differs from once (-once +twice):\n%s", diff)
	}
	if len(f.engine.Invalid()) != 0 {
		t.Fatalf("expected no invalid fields after clear")
	}
}
