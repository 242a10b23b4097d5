package form

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-formsheet/pkg/payload"
	"github.com/goliatone/go-formsheet/pkg/sheet"
	"github.com/goliatone/go-formsheet/pkg/status"
	"github.com/goliatone/go-formsheet/pkg/validation"
	"github.com/goliatone/go-formsheet/pkg/widgets"
)

var fixedID = uuid.MustParse("6f1c2d3e-4b5a-4c6d-8e7f-901a2b3c4d5e")

type recordingConsumer struct {
	subs []Submission
	err  error
}

func (r *recordingConsumer) Consume(_ context.Context, sub Submission) error {
	r.subs = append(r.subs, sub)
	return r.err
}

func newController(t *testing.T, options ...Option) *Controller {
	t.Helper()
	options = append([]Option{WithIDGenerator(func() uuid.UUID { return fixedID })}, options...)
	c, err := New(sheet.Default(), options...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func fillRequired(t *testing.T, c *Controller) {
	t.Helper()
	for name, value := range map[string]string{
		"equipmentId": "AG-101",
		"product":     "Caustic soda",
	} {
		if !c.SetInput(name, value) {
			t.Fatalf("SetInput(%q) reported unknown field", name)
		}
	}
}

func TestNewAppliesResetDefaults(t *testing.T) {
	c := newController(t)

	got := map[string]string{}
	for _, name := range []string{"sheetType", "company", "location", "layout", "equipmentType"} {
		v, ok := c.DropdownValue(name)
		if !ok {
			t.Fatalf("dropdown %q missing", name)
		}
		got[name] = v
	}
	want := map[string]string{
		"sheetType":     "Agitator Data Sheet",
		"company":       "",
		"location":      "",
		"layout":        widgets.LayoutDefault,
		"equipmentType": "",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("reset values mismatch (-want +got):\n%s", diff)
	}

	snap := c.Snapshot()
	if !snap.Status.Empty() {
		t.Fatalf("expected empty status, got %+v", snap.Status)
	}
	company, ok := snap.Dropdown("company")
	if !ok {
		t.Fatalf("company view missing")
	}
	if company.Label != "Select company" {
		t.Fatalf("expected placeholder label, got %q", company.Label)
	}
}

func TestNewRejectsDuplicateNames(t *testing.T) {
	decl := sheet.Sheet{
		ID:      "dup",
		Widgets: []sheet.Widget{{Name: "product", Options: []sheet.Option{{Label: "A"}}}},
		Inputs:  []sheet.Input{{Name: "product"}},
	}
	if _, err := New(decl); err == nil {
		t.Fatalf("expected duplicate name error")
	}
}

func TestMustNew(t *testing.T) {
	if c := MustNew(sheet.Default()); c.Sheet().ID != sheet.Default().ID {
		t.Fatalf("expected default sheet, got %q", c.Sheet().ID)
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for a sheet without id")
		}
	}()
	MustNew(sheet.Sheet{})
}

func TestSaveRejectsMissingRequiredFields(t *testing.T) {
	consumer := &recordingConsumer{}
	c := newController(t, WithConsumer(consumer))
	c.SetSelection("sheetType", nil)

	sub, ok, err := c.Save(context.Background())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if ok {
		t.Fatalf("expected save to be rejected")
	}
	if sub != (Submission{}) {
		t.Fatalf("expected zero submission, got %+v", sub)
	}
	if len(consumer.subs) != 0 {
		t.Fatalf("consumer should not be called, got %d submissions", len(consumer.subs))
	}

	wantStatus := status.Message{Text: validation.RequiredMessage, Level: status.LevelError}
	if diff := cmp.Diff(wantStatus, c.Status()); diff != "" {
		t.Fatalf("status mismatch (-want +got):\n%s", diff)
	}

	snap := c.Snapshot()
	sheetType, _ := snap.Dropdown("sheetType")
	if !sheetType.Invalid {
		t.Fatalf("sheetType wrapper should be marked")
	}
	layout, _ := snap.Dropdown("layout")
	if layout.Invalid {
		t.Fatalf("layout has its default and should not be marked")
	}
	for _, name := range []string{"equipmentId", "product"} {
		in, _ := snap.Input(name)
		if !in.Invalid {
			t.Fatalf("input %q should be marked", name)
		}
	}
	department, _ := snap.Input("department")
	if department.Invalid {
		t.Fatalf("optional input should never be marked")
	}
}

func TestSaveWhitespaceOnlyInputIsEmpty(t *testing.T) {
	c := newController(t)
	fillRequired(t, c)
	c.SetInput("product", " \t ")

	if _, ok, _ := c.Save(context.Background()); ok {
		t.Fatalf("whitespace-only product must fail validation")
	}
	snap := c.Snapshot()
	product, _ := snap.Input("product")
	if !product.Invalid || product.Value != " \t " {
		t.Fatalf("unexpected product view %+v", product)
	}
}

func TestSaveHandsPayloadToConsumer(t *testing.T) {
	consumer := &recordingConsumer{}
	c := newController(t, WithConsumer(consumer))
	fillRequired(t, c)
	c.Check("company", "Contoso Process", true)
	c.Check("location", "Plant B", true)
	c.Check("location", "Plant A", true)
	c.SetInput("viscosityMin", "1.5")
	c.SetInput("sgNormal", "1.02")

	sub, ok, err := c.Save(context.Background())
	if err != nil || !ok {
		t.Fatalf("expected save to succeed, err %v status %+v", err, c.Status())
	}
	if sub.ID != fixedID {
		t.Fatalf("expected fixed id, got %s", sub.ID)
	}

	want := payload.Payload{
		SheetType: "Agitator Data Sheet",
		Company:   "Contoso Process",
		Location:  "Plant A, Plant B",
		Layout:    widgets.LayoutDefault,
		Application: payload.Application{
			EquipmentID: "AG-101",
		},
		Process: payload.Process{
			Product:          "Caustic soda",
			DynamicViscosity: payload.Range{Min: "1.5"},
			SpecificGravity:  payload.Range{Normal: "1.02"},
		},
	}
	if diff := cmp.Diff(want, sub.Payload); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
	if len(consumer.subs) != 1 {
		t.Fatalf("expected one submission, got %d", len(consumer.subs))
	}

	wantStatus := status.Message{Text: MessageSaved, Level: status.LevelInfo}
	if diff := cmp.Diff(wantStatus, c.Status()); diff != "" {
		t.Fatalf("status mismatch (-want +got):\n%s", diff)
	}

	// Save never resets the sheet.
	if v, _ := c.InputValue("equipmentId"); v != "AG-101" {
		t.Fatalf("save should keep values, got %q", v)
	}
}

func TestSaveReportsConsumerFailure(t *testing.T) {
	queueFull := errors.New("queue full")
	consumer := &recordingConsumer{err: queueFull}
	c := newController(t, WithConsumer(consumer))
	fillRequired(t, c)

	sub, ok, err := c.Save(context.Background())
	if !errors.Is(err, queueFull) {
		t.Fatalf("expected consumer error, got %v", err)
	}
	if ok {
		t.Fatalf("expected failure when consumer errors")
	}
	if sub.ID != fixedID {
		t.Fatalf("submission should still be returned, got %+v", sub)
	}
	wantStatus := status.Message{Text: MessageSaveError, Level: status.LevelError}
	if diff := cmp.Diff(wantStatus, c.Status()); diff != "" {
		t.Fatalf("status mismatch (-want +got):\n%s", diff)
	}
}

func TestEquipmentTypeKeyOverride(t *testing.T) {
	c := newController(t, WithBuilderOptions(payload.WithEquipmentTypeKey("equipmentType")))
	c.Check("equipmentType", "Static Mixer", true)

	if got := c.Build().Application.EquipmentType; got != "Static Mixer" {
		t.Fatalf("expected dropdown value through override, got %q", got)
	}

	plain := newController(t)
	plain.Check("equipmentType", "Static Mixer", true)
	if got := plain.Build().Application.EquipmentType; got != "" {
		t.Fatalf("default mapping should read empty, got %q", got)
	}
}

func TestNewAndCancelRestoreDefaults(t *testing.T) {
	cases := []struct {
		name    string
		act     func(*Controller)
		message string
	}{
		{name: "new", act: (*Controller).New, message: MessageNew},
		{name: "cancel", act: (*Controller).Cancel, message: MessageCancelled},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newController(t)
			c.SetSelection("sheetType", []string{"Pump Data Sheet", "Tank Data Sheet"})
			c.SetSelection("layout", nil)
			c.Check("company", "Fabrikam Water", true)
			c.SetInput("department", "Utilities")
			c.Toggle("location")
			c.Validate()

			tc.act(c)

			if v, _ := c.DropdownValue("sheetType"); v != "Agitator Data Sheet" {
				t.Fatalf("sheetType not restored, got %q", v)
			}
			if v, _ := c.DropdownValue("layout"); v != widgets.LayoutDefault {
				t.Fatalf("layout not restored, got %q", v)
			}
			if v, _ := c.DropdownValue("company"); v != "" {
				t.Fatalf("company not cleared, got %q", v)
			}
			if v, _ := c.InputValue("department"); v != "" {
				t.Fatalf("department not cleared, got %q", v)
			}

			snap := c.Snapshot()
			for _, sec := range snap.Sections {
				for _, d := range sec.Dropdowns {
					if d.Invalid {
						t.Fatalf("dropdown %q still marked", d.Name)
					}
				}
				for _, in := range sec.Inputs {
					if in.Invalid {
						t.Fatalf("input %q still marked", in.Name)
					}
				}
			}
			location, _ := snap.Dropdown("location")
			if !location.Open {
				t.Fatalf("reset must not change open state")
			}

			want := status.Message{Text: tc.message, Level: status.LevelInfo}
			if diff := cmp.Diff(want, snap.Status); diff != "" {
				t.Fatalf("status mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResetAllClearsStatus(t *testing.T) {
	c := newController(t)
	c.Validate()
	if c.Status().Level != status.LevelError {
		t.Fatalf("expected error status before reset")
	}
	c.ResetAll()
	if !c.Status().Empty() {
		t.Fatalf("expected empty status, got %+v", c.Status())
	}
}

func TestToggleKeepsOneDropdownOpen(t *testing.T) {
	c := newController(t)

	if !c.Toggle("company") {
		t.Fatalf("company should be known")
	}
	c.Toggle("location")
	c.Click(widgets.MenuClick("location"))

	snap := c.Snapshot()
	var open []string
	for _, sec := range snap.Sections {
		for _, d := range sec.Dropdowns {
			if d.Open {
				open = append(open, d.Name)
			}
		}
	}
	if diff := cmp.Diff([]string{"location"}, open); diff != "" {
		t.Fatalf("open dropdowns mismatch (-want +got):\n%s", diff)
	}

	c.Click(widgets.Outside())
	if d, _ := c.Snapshot().Dropdown("location"); d.Open {
		t.Fatalf("outside click should close location")
	}
}

func TestUnknownNamesAreIgnored(t *testing.T) {
	c := newController(t)
	c.Toggle("company")

	if c.Toggle("missing") {
		t.Fatalf("unknown toggle should report false")
	}
	if d, _ := c.Snapshot().Dropdown("company"); d.Open {
		t.Fatalf("click on unknown toggle closes every dropdown")
	}
	if c.Check("missing", "x", true) {
		t.Fatalf("unknown dropdown should report false")
	}
	if c.Check("company", "Unknown Co", true) {
		t.Fatalf("unknown option should report false")
	}
	if c.SetSelection("missing", []string{"x"}) {
		t.Fatalf("unknown dropdown should report false")
	}
	if c.SetInput("missing", "x") {
		t.Fatalf("unknown input should report false")
	}
	if _, ok := c.InputValue("missing"); ok {
		t.Fatalf("unknown input value should report false")
	}
}

func TestLongValuesAreKeptVerbatim(t *testing.T) {
	c := newController(t)
	long := strings.Repeat("x", 10_000) + "  "
	c.SetInput("constituents", long)

	if got := c.Build().Process.ChemicalMakeup.Constituents; got != long {
		t.Fatalf("value altered: len %d want %d", len(got), len(long))
	}
}

func TestStatusDisplayReceivesMessages(t *testing.T) {
	var seen []status.Message
	c := newController(t, WithStatusDisplay(status.DisplayFunc(func(msg status.Message) {
		seen = append(seen, msg)
	})))
	seen = nil

	c.Validate()
	c.Cancel()

	want := []status.Message{
		{Text: validation.RequiredMessage, Level: status.LevelError},
		{},
		{Text: MessageCancelled, Level: status.LevelInfo},
	}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Fatalf("displayed messages mismatch (-want +got):\n%s", diff)
	}
}

func TestLogConsumerWritesPayload(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	c := newController(t, WithLogger(zap.New(core)))
	fillRequired(t, c)

	if _, ok, err := c.Save(context.Background()); err != nil || !ok {
		t.Fatalf("expected save to succeed, err %v", err)
	}

	entries := logs.FilterMessage("Form payload (simulated save). No data is persisted.").All()
	if len(entries) != 1 {
		t.Fatalf("expected one payload log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["submission_id"] != fixedID.String() {
		t.Fatalf("unexpected submission id %v", fields["submission_id"])
	}
	values, ok := fields["payload"].(map[string]any)
	if !ok {
		t.Fatalf("payload field has type %T", fields["payload"])
	}
	if values["sheetType"] != "Agitator Data Sheet" {
		t.Fatalf("unexpected sheetType %v", values["sheetType"])
	}
}

func TestSnapshotGroupsBySection(t *testing.T) {
	decl := sheet.Sheet{
		ID:       "mini",
		Sections: []sheet.Section{{ID: "a", Title: "A"}},
		Widgets: []sheet.Widget{
			{Name: "kind", Section: "a", Options: []sheet.Option{{Label: "One"}, {Label: "Two"}}},
		},
		Inputs: []sheet.Input{
			{Name: "note"},
			{Name: "title", Section: "a", Required: true},
		},
	}
	c, err := New(decl)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	snap := c.Snapshot()
	var got []string
	for _, sec := range snap.Sections {
		names := []string{"[" + sec.ID + "]"}
		for _, d := range sec.Dropdowns {
			names = append(names, d.Name)
		}
		for _, in := range sec.Inputs {
			names = append(names, in.Name)
		}
		got = append(got, strings.Join(names, " "))
	}
	want := []string{"[a] kind title", "[] note"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sections mismatch (-want +got):\n%s", diff)
	}
	kind, _ := snap.Dropdown("kind")
	if kind.Options[0].Value != "One" {
		t.Fatalf("option value should default to label, got %q", kind.Options[0].Value)
	}
}
