package tui

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"go.uber.org/zap"

	"github.com/goliatone/go-formsheet/pkg/form"
	"github.com/goliatone/go-formsheet/pkg/payload"
	"github.com/goliatone/go-formsheet/pkg/status"
	"github.com/goliatone/go-formsheet/pkg/widgets"
)

// Session drives a form controller from a terminal. Every prompt maps onto
// one controller handler so the sheet behaves the same as in a browser.
type Session struct {
	controller *form.Controller
	driver     PromptDriver
	format     payload.Format
	theme      Theme
	logger     *zap.Logger
	pageSize   int

	// baseline holds the field values after the last reset or save.
	baseline map[string]string
}

// New constructs a session with defaults (survey driver, pretty output).
func New(controller *form.Controller, options ...Option) (*Session, error) {
	if controller == nil {
		return nil, ErrNilController
	}

	s := &Session{
		controller: controller,
		format:     payload.FormatPretty,
		logger:     zap.NewNop(),
		pageSize:   15,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(nil)
	}
	return s, nil
}

// Run shows the main menu until the user quits. New, Cancel and Quit ask for
// confirmation when entries changed since the last reset or save. It returns
// ErrAborted when the user interrupts a prompt.
func (s *Session) Run(ctx context.Context) error {
	if ctx == nil {
		return errors.New("tui: context is required")
	}

	s.markClean()
	cursor := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		snap := s.controller.Snapshot()
		entries := buildMenu(snap)
		if cursor >= len(entries) {
			cursor = 0
		}
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      snap.Title,
			Options:      menuLabels(entries),
			DefaultIndex: cursor,
			PageSize:     s.pageSize,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(entries) {
			s.logger.Warn("menu selection out of range", zap.Int("index", idx))
			continue
		}
		cursor = idx

		before := snap.Status
		picked := entries[idx]
		if picked.kind >= entryNew && s.dirty() {
			discard, err := s.confirmDiscard(ctx, picked)
			if err != nil {
				return err
			}
			if !discard {
				continue
			}
		}
		quit, err := s.apply(ctx, picked)
		if err != nil {
			return err
		}
		if quit {
			s.logger.Debug("session finished")
			return nil
		}

		after := s.controller.Status()
		if after.Empty() {
			continue
		}
		if after != before || picked.kind >= entrySave {
			if err := s.showStatus(ctx, after); err != nil {
				return err
			}
		}
	}
}

func (s *Session) apply(ctx context.Context, e entry) (bool, error) {
	switch e.kind {
	case entryDropdown:
		return false, s.editDropdown(ctx, e.name)
	case entryInput:
		return false, s.editInput(ctx, e.name)
	case entrySave:
		return false, s.save(ctx)
	case entryNew:
		s.controller.New()
		s.markClean()
	case entryCancel:
		s.controller.Cancel()
		s.markClean()
	case entryQuit:
		return true, nil
	}
	return false, nil
}

func (s *Session) editDropdown(ctx context.Context, name string) error {
	view, ok := s.controller.Snapshot().Dropdown(name)
	if !ok {
		return nil
	}
	if !view.Open {
		s.controller.Toggle(name)
	}
	// Leaving the menu is a click elsewhere on the page.
	defer s.controller.Click(widgets.Outside())

	options := make([]string, len(view.Options))
	var defaults []int
	for i, opt := range view.Options {
		options[i] = opt.Label
		if opt.Checked {
			defaults = append(defaults, i)
		}
	}

	caption := view.Caption
	if caption == "" {
		caption = view.Name
	}
	picked, err := s.driver.MultiSelect(ctx, SelectConfig{
		Message:  caption,
		Options:  options,
		Defaults: defaults,
		Help:     view.Placeholder,
		PageSize: s.pageSize,
	})
	if err != nil {
		return err
	}

	values := make([]string, 0, len(picked))
	for _, idx := range picked {
		if idx >= 0 && idx < len(view.Options) {
			values = append(values, view.Options[idx].Value)
		}
	}
	s.controller.SetSelection(name, values)
	s.logger.Debug("dropdown edited", zap.String("dropdown", name), zap.Strings("values", values))
	return nil
}

func (s *Session) editInput(ctx context.Context, name string) error {
	view, ok := s.controller.Snapshot().Input(name)
	if !ok {
		return nil
	}
	caption := view.Caption
	if caption == "" {
		caption = view.Name
	}
	value, err := s.driver.Input(ctx, InputConfig{
		Message: caption,
		Default: view.Value,
		Help:    view.Placeholder,
	})
	if err != nil {
		return err
	}
	s.controller.SetInput(name, value)
	return nil
}

func (s *Session) save(ctx context.Context) error {
	sub, ok, err := s.controller.Save(ctx)
	if err != nil {
		// The controller already reported the failure through the status
		// slot; the session keeps running.
		s.logger.Warn("save failed", zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}
	s.markClean()
	out, err := payload.Encode(sub.Payload, s.format)
	if err != nil {
		return fmt.Errorf("tui: encode payload: %w", err)
	}
	return s.driver.Info(ctx, string(out))
}

// confirmDiscard asks before an action throws away edits made since the last
// reset or save.
func (s *Session) confirmDiscard(ctx context.Context, e entry) (bool, error) {
	message := "Discard unsaved entries?"
	if e.kind == entryQuit {
		message = "Quit without saving?"
	}
	ok, err := s.driver.Confirm(ctx, ConfirmConfig{
		Message: message,
		Help:    "Entries changed since the last save are lost.",
	})
	if err != nil {
		return false, err
	}
	if !ok {
		s.logger.Debug("discard declined", zap.String("action", e.label))
	}
	return ok, nil
}

func (s *Session) markClean() {
	s.baseline = fieldValues(s.controller.Snapshot())
}

func (s *Session) dirty() bool {
	return !maps.Equal(s.baseline, fieldValues(s.controller.Snapshot()))
}

func fieldValues(snap form.Snapshot) map[string]string {
	out := make(map[string]string)
	for _, sec := range snap.Sections {
		for _, d := range sec.Dropdowns {
			out[d.Name] = d.Value
		}
		for _, in := range sec.Inputs {
			out[in.Name] = in.Value
		}
	}
	return out
}

func (s *Session) showStatus(ctx context.Context, msg status.Message) error {
	prefix := s.theme.InfoPrefix
	if msg.Level == status.LevelError {
		prefix = s.theme.ErrorPrefix
	}
	return s.driver.Info(ctx, prefix+msg.Text)
}
