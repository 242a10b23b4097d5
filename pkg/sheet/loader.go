package sheet

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyID is returned when a sheet declares no id.
	ErrEmptyID = errors.New("sheet: id is required")
	// ErrNotFound is returned by Store.Sheet for unknown ids.
	ErrNotFound = errors.New("sheet: not found")
)

// Store keeps the parsed sheets keyed by id. It is safe for concurrent
// readers when treated as immutable after construction.
type Store struct {
	sheets map[string]Sheet
}

// LoadFS walks fsys and parses every JSON, YAML or TOML sheet document. When
// fsys is nil or holds no documents the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{sheets: make(map[string]Sheet)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSheetFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("sheet: read %s: %w", path, err)
		}
		doc, err := Parse(data, path)
		if err != nil {
			return err
		}
		if _, exists := store.sheets[doc.ID]; exists {
			return fmt.Errorf("sheet: duplicate sheet %q (file %s)", doc.ID, path)
		}
		store.sheets[doc.ID] = doc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// LoadFile parses a single sheet document from disk.
func LoadFile(path string) (Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Sheet{}, fmt.Errorf("sheet: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes a sheet document, normalises it and validates it. TOML is
// selected by a .toml source extension; everything else is tried as JSON and
// then YAML.
func Parse(data []byte, source string) (Sheet, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Sheet{}, fmt.Errorf("sheet: file %s is empty", source)
	}

	var doc Sheet
	switch {
	case strings.EqualFold(filepath.Ext(source), ".toml"):
		if err := toml.Unmarshal(data, &doc); err != nil {
			return Sheet{}, fmt.Errorf("sheet: parse %s: %w", source, err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			doc = Sheet{}
			if yamlErr := yaml.Unmarshal(data, &doc); yamlErr != nil {
				return Sheet{}, fmt.Errorf("sheet: parse %s: invalid JSON or YAML: %w", source, yamlErr)
			}
		}
	}

	doc = Normalize(doc)
	doc.Source = source
	if err := doc.Validate(); err != nil {
		return Sheet{}, fmt.Errorf("sheet: %s: %w", source, err)
	}
	return doc, nil
}

// Sheet returns the sheet registered under id.
func (s *Store) Sheet(id string) (Sheet, error) {
	if s == nil {
		return Sheet{}, ErrNotFound
	}
	doc, ok := s.sheets[strings.TrimSpace(id)]
	if !ok {
		return Sheet{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return doc, nil
}

// IDs lists the loaded sheet ids in sorted order.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.sheets))
	for id := range s.sheets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Empty reports whether the store holds any sheet.
func (s *Store) Empty() bool {
	return s == nil || len(s.sheets) == 0
}

// Normalize trims identifiers, strips markup from captions and fills option
// values from labels.
func Normalize(doc Sheet) Sheet {
	out := doc
	out.ID = strings.TrimSpace(doc.ID)
	out.Title = sanitizeText(doc.Title)

	out.Sections = make([]Section, len(doc.Sections))
	for i, sec := range doc.Sections {
		out.Sections[i] = Section{
			ID:    strings.TrimSpace(sec.ID),
			Title: sanitizeText(sec.Title),
		}
	}

	out.Widgets = make([]Widget, len(doc.Widgets))
	for i, w := range doc.Widgets {
		nw := w
		nw.Name = strings.TrimSpace(w.Name)
		nw.Section = strings.TrimSpace(w.Section)
		nw.Label = sanitizeText(w.Label)
		nw.Placeholder = sanitizeText(w.Placeholder)
		nw.Options = make([]Option, len(w.Options))
		for j, opt := range w.Options {
			label := sanitizeText(opt.Label)
			value := strings.TrimSpace(opt.Value)
			if value == "" {
				value = label
			}
			nw.Options[j] = Option{Label: label, Value: value}
		}
		out.Widgets[i] = nw
	}

	out.Inputs = make([]Input, len(doc.Inputs))
	for i, in := range doc.Inputs {
		ni := in
		ni.Name = strings.TrimSpace(in.Name)
		ni.Section = strings.TrimSpace(in.Section)
		ni.Label = sanitizeText(in.Label)
		ni.Placeholder = sanitizeText(in.Placeholder)
		out.Inputs[i] = ni
	}
	return out
}

// Validate checks the sheet has an id and that every widget and input has a
// unique, non-empty name. Sections referenced by fields must be declared when
// any section is declared.
func (s Sheet) Validate() error {
	if s.ID == "" {
		return ErrEmptyID
	}

	sections := make(map[string]struct{}, len(s.Sections))
	for _, sec := range s.Sections {
		if sec.ID == "" {
			return errors.New("section id is required")
		}
		if _, exists := sections[sec.ID]; exists {
			return fmt.Errorf("duplicate section %q", sec.ID)
		}
		sections[sec.ID] = struct{}{}
	}
	checkSection := func(kind, name, section string) error {
		if len(sections) == 0 || section == "" {
			return nil
		}
		if _, ok := sections[section]; !ok {
			return fmt.Errorf("%s %q references unknown section %q", kind, name, section)
		}
		return nil
	}

	names := make(map[string]struct{}, len(s.Widgets)+len(s.Inputs))
	for idx, w := range s.Widgets {
		if w.Name == "" {
			return fmt.Errorf("widget at index %d has an empty name", idx)
		}
		if _, exists := names[w.Name]; exists {
			return fmt.Errorf("duplicate field name %q", w.Name)
		}
		names[w.Name] = struct{}{}
		if err := checkSection("widget", w.Name, w.Section); err != nil {
			return err
		}
	}
	for idx, in := range s.Inputs {
		if in.Name == "" {
			return fmt.Errorf("input at index %d has an empty name", idx)
		}
		if _, exists := names[in.Name]; exists {
			return fmt.Errorf("duplicate field name %q", in.Name)
		}
		names[in.Name] = struct{}{}
		if err := checkSection("input", in.Name, in.Section); err != nil {
			return err
		}
	}
	return nil
}

func isSheetFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml", ".toml":
		return true
	default:
		return false
	}
}
