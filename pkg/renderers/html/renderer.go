// Package html renders a form snapshot into the sheet markup served to
// browsers. Class names follow the stylesheet contract: dropdown wrappers are
// "multi-dropdown" with "open" and "field-error" modifiers and carry the
// dropdown name in data-name, the toggle button is "multi-dropdown-toggle"
// with its placeholder in data-placeholder, the checkbox list is
// "multi-dropdown-menu", and the status bar carries its level as a class.
package html

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formsheet/pkg/form"
	"github.com/goliatone/go-formsheet/pkg/status"
)

// Class names shared with the stylesheet.
const (
	ClassDropdown   = "multi-dropdown"
	ClassToggle     = "multi-dropdown-toggle"
	ClassMenu       = "multi-dropdown-menu"
	ClassOpen       = "open"
	ClassFieldError = "field-error"
	ClassRequired   = "required-field"
)

// Option configures the renderer before construction.
type Option func(*config)

type config struct {
	templates fs.FS
	name      string
}

// WithFS loads templates from files instead of the embedded bundle.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templates = files
		}
	}
}

// WithTemplate selects the template rendered for a snapshot.
func WithTemplate(name string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			cfg.name = trimmed
		}
	}
}

// Renderer turns snapshots into HTML using a pongo2 template set.
type Renderer struct {
	mu sync.Mutex

	templateSet *pongo2.TemplateSet
	name        string
	template    *pongo2.Template
}

// New constructs a renderer over the embedded templates.
func New(options ...Option) (*Renderer, error) {
	cfg := &config{
		templates: TemplatesFS(),
		name:      DefaultTemplate,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	return &Renderer{
		templateSet: pongo2.NewSet("formsheet", pongo2.NewFSLoader(cfg.templates)),
		name:        cfg.name,
	}, nil
}

// ContentType reports the media type produced by Render.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render returns the markup for snap.
func (r *Renderer) Render(snap form.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.RenderTo(&buf, snap); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderTo writes the markup for snap to w.
func (r *Renderer) RenderTo(w io.Writer, snap form.Snapshot) error {
	if r == nil || r.templateSet == nil {
		return errors.New("html: renderer is nil")
	}
	tmpl, err := r.loadTemplate()
	if err != nil {
		return err
	}
	if err := tmpl.ExecuteWriter(snapshotContext(snap), w); err != nil {
		return fmt.Errorf("html: execute template %q: %w", r.name, err)
	}
	return nil
}

func (r *Renderer) loadTemplate() (*pongo2.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.template != nil {
		return r.template, nil
	}
	tmpl, err := r.templateSet.FromFile(r.name)
	if err != nil {
		return nil, fmt.Errorf("html: load template %q: %w", r.name, err)
	}
	r.template = tmpl
	return tmpl, nil
}

func snapshotContext(snap form.Snapshot) pongo2.Context {
	sections := make([]map[string]any, 0, len(snap.Sections))
	for _, sec := range snap.Sections {
		dropdowns := make([]map[string]any, 0, len(sec.Dropdowns))
		for _, d := range sec.Dropdowns {
			dropdowns = append(dropdowns, dropdownContext(d))
		}
		inputs := make([]map[string]any, 0, len(sec.Inputs))
		for _, in := range sec.Inputs {
			inputs = append(inputs, map[string]any{
				"name":        in.Name,
				"caption":     captionOrName(in.Caption, in.Name),
				"placeholder": in.Placeholder,
				"value":       in.Value,
				"field_class": fieldClass(in.Required, in.Invalid),
			})
		}
		sections = append(sections, map[string]any{
			"id":        sec.ID,
			"title":     sec.Title,
			"dropdowns": dropdowns,
			"inputs":    inputs,
		})
	}

	return pongo2.Context{
		"sheet": map[string]any{
			"id":    snap.SheetID,
			"title": snap.Title,
		},
		"sections": sections,
		"status": map[string]any{
			"text":  snap.Status.Text,
			"class": statusClass(snap.Status.Level),
		},
	}
}

func dropdownContext(d form.DropdownView) map[string]any {
	options := make([]map[string]any, len(d.Options))
	for i, opt := range d.Options {
		options[i] = map[string]any{
			"label":   opt.Label,
			"value":   opt.Value,
			"checked": opt.Checked,
		}
	}

	classes := []string{ClassDropdown}
	if d.Open {
		classes = append(classes, ClassOpen)
	}
	if d.Invalid {
		classes = append(classes, ClassFieldError)
	}
	return map[string]any{
		"name":          d.Name,
		"caption":       captionOrName(d.Caption, d.Name),
		"placeholder":   d.Placeholder,
		"label":         d.Label,
		"value":         d.Value,
		"open":          d.Open,
		"wrapper_class": strings.Join(classes, " "),
		"toggle_class":  ClassToggle,
		"menu_class":    ClassMenu,
		"field_class":   fieldClass(d.Required, d.Invalid),
		"options":       options,
	}
}

func fieldClass(required, invalid bool) string {
	classes := []string{"form-control"}
	if required {
		classes = append(classes, ClassRequired)
	}
	if invalid {
		classes = append(classes, ClassFieldError)
	}
	return strings.Join(classes, " ")
}

func statusClass(level status.Level) string {
	if level == status.LevelNone {
		return "status-bar"
	}
	return "status-bar " + string(level)
}

func captionOrName(caption, name string) string {
	if caption == "" {
		return name
	}
	return caption
}
