package form

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goliatone/go-formsheet/pkg/payload"
	"github.com/goliatone/go-formsheet/pkg/sheet"
	"github.com/goliatone/go-formsheet/pkg/status"
	"github.com/goliatone/go-formsheet/pkg/validation"
	"github.com/goliatone/go-formsheet/pkg/widgets"
)

// Controller owns every widget and field of one sheet. All exported methods
// are safe for concurrent use; each runs to completion before the next one
// starts.
type Controller struct {
	mu sync.Mutex

	sheet    sheet.Sheet
	registry *widgets.Registry
	inputs   []*widgets.Input
	byName   map[string]*widgets.Input
	engine   *validation.Engine
	slot     *status.Slot
	builder  *payload.Builder
	consumer Consumer
	logger   *zap.Logger
	newID    func() uuid.UUID

	builderOptions []payload.Option
}

// New builds a controller from decl and runs the initial ResetAll.
func New(decl sheet.Sheet, options ...Option) (*Controller, error) {
	decl = sheet.Normalize(decl)
	if err := decl.Validate(); err != nil {
		return nil, fmt.Errorf("form: invalid sheet: %w", err)
	}

	c := &Controller{
		sheet:    decl,
		registry: widgets.NewRegistry(),
		byName:   make(map[string]*widgets.Input, len(decl.Inputs)),
		slot:     status.NewSlot(),
		logger:   zap.NewNop(),
		newID:    uuid.New,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.consumer == nil {
		c.consumer = LogConsumer{Logger: c.logger}
	}
	c.builder = payload.NewBuilder(c.builderOptions...)

	fields := make([]validation.Field, 0, len(decl.Widgets)+len(decl.Inputs))
	for _, w := range decl.Widgets {
		d := widgets.NewDropdown(dropdownConfig(w))
		if err := c.registry.Register(d); err != nil {
			return nil, fmt.Errorf("form: %w", err)
		}
		fields = append(fields, d)
	}
	for _, in := range decl.Inputs {
		input := widgets.NewInput(widgets.InputConfig{
			Name:        in.Name,
			Label:       in.Label,
			Placeholder: in.Placeholder,
			Required:    in.Required,
		})
		c.inputs = append(c.inputs, input)
		c.byName[input.Name()] = input
		fields = append(fields, input)
	}
	c.engine = validation.New(c.slot, fields...)

	c.resetAll()
	c.logger.Debug("form controller ready",
		zap.String("sheet", decl.ID),
		zap.Int("dropdowns", c.registry.Len()),
		zap.Int("inputs", len(c.inputs)),
	)
	return c, nil
}

// MustNew panics when New fails. Useful with the embedded default sheet.
func MustNew(decl sheet.Sheet, options ...Option) *Controller {
	c, err := New(decl, options...)
	if err != nil {
		panic(err)
	}
	return c
}

func dropdownConfig(w sheet.Widget) widgets.DropdownConfig {
	options := make([]widgets.Option, len(w.Options))
	for i, opt := range w.Options {
		options[i] = widgets.Option{Label: opt.Label, Value: opt.Value}
	}
	return widgets.DropdownConfig{
		Name:        w.Name,
		Label:       w.Label,
		Placeholder: w.Placeholder,
		Required:    w.Required,
		Options:     options,
	}
}

// Sheet returns the normalised declaration the controller was built from.
func (c *Controller) Sheet() sheet.Sheet {
	return c.sheet
}

// Click routes a pointer event through the dropdown registry.
func (c *Controller) Click(click widgets.Click) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.registry.HandleClick(click)
	c.logger.Debug("click", zap.String("part", string(click.Part)), zap.String("dropdown", click.Dropdown))
}

// Toggle clicks the named dropdown's toggle button. It reports false, and
// closes every dropdown like any other stray click, when the name is unknown.
func (c *Controller) Toggle(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.registry.Get(name)
	c.registry.HandleClick(widgets.ToggleClick(name))
	return ok
}

// Check sets one checkbox of the named dropdown. Unknown dropdowns or values
// are skipped and reported as false.
func (c *Controller) Check(name, value string, checked bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	d, ok := c.registry.Get(name)
	if !ok {
		return false
	}
	return d.SetChecked(value, checked)
}

// SetSelection checks exactly values on the named dropdown.
func (c *Controller) SetSelection(name string, values []string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	d, ok := c.registry.Get(name)
	if !ok {
		return false
	}
	d.SetSelection(values)
	return true
}

// SetInput stores value in the named text input.
func (c *Controller) SetInput(name, value string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	in, ok := c.byName[name]
	if !ok {
		return false
	}
	in.SetValue(value)
	return true
}

// DropdownValue returns the hidden value of the named dropdown.
func (c *Controller) DropdownValue(name string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.source().DropdownValue(name)
}

// InputValue returns the value of the named text input.
func (c *Controller) InputValue(name string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.source().InputValue(name)
}

// Status returns the current status message.
func (c *Controller) Status() status.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.slot.Current()
}

// Validate runs a validation pass.
func (c *Controller) Validate() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Validate()
}

// ClearValidation removes every validity marker.
func (c *Controller) ClearValidation() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.engine.Clear()
}

// Build snapshots the current values without validating.
func (c *Controller) Build() payload.Payload {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.builder.Build(c.source())
}

// Save validates the sheet and, when it is valid, hands a new submission to
// the consumer. An invalid sheet builds nothing and leaves the error status
// written by validation. A consumer failure is reported through the status
// slot and returned; the submission is still returned with it.
func (c *Controller) Save(ctx context.Context) (Submission, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.engine.Validate() {
		c.logger.Info("save rejected", zap.Strings("invalid", c.engine.Invalid()))
		return Submission{}, false, nil
	}

	sub := Submission{
		ID:      c.newID(),
		Payload: c.builder.Build(c.source()),
	}
	if err := c.consumer.Consume(ctx, sub); err != nil {
		c.logger.Error("save consumer failed", zap.String("submission_id", sub.ID.String()), zap.Error(err))
		c.slot.Set(MessageSaveError, status.LevelError)
		return sub, false, fmt.Errorf("form: consume submission: %w", err)
	}

	c.slot.Set(MessageSaved, status.LevelInfo)
	return sub, true, nil
}

// New resets the sheet for a fresh entry.
func (c *Controller) New() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.resetAll()
	c.slot.Set(MessageNew, status.LevelInfo)
	c.logger.Debug("form cleared for new entry")
}

// Cancel discards the current edits.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.resetAll()
	c.slot.Set(MessageCancelled, status.LevelInfo)
	c.logger.Debug("form edits cancelled")
}

// ResetAll restores every widget and input to its default state and clears
// validation and status.
func (c *Controller) ResetAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetAll()
}

func (c *Controller) resetAll() {
	c.engine.Clear()
	c.slot.Clear()
	for _, in := range c.inputs {
		in.Clear()
	}
	for _, d := range c.registry.All() {
		d.Reset(widgets.DefaultSelection(d))
	}
}

func (c *Controller) source() controllerSource {
	return controllerSource{c: c}
}

// controllerSource reads values without locking; callers hold c.mu.
type controllerSource struct {
	c *Controller
}

func (s controllerSource) DropdownValue(name string) (string, bool) {
	d, ok := s.c.registry.Get(name)
	if !ok {
		return "", false
	}
	return d.Value(), true
}

func (s controllerSource) InputValue(name string) (string, bool) {
	in, ok := s.c.byName[name]
	if !ok {
		return "", false
	}
	return in.Value(), true
}
