package formsheet

import (
	"fmt"
	"os"
	"strings"

	"github.com/goliatone/go-formsheet/pkg/form"
	"github.com/goliatone/go-formsheet/pkg/renderers/html"
	"github.com/goliatone/go-formsheet/pkg/sheet"
)

// Request selects a sheet declaration. An empty Path uses the embedded
// sheets; a directory is walked for declaration files; anything else is read
// as a single declaration.
type Request struct {
	Path string
	ID   string
}

// LoadSheet resolves the declaration described by req.
func LoadSheet(req Request) (sheet.Sheet, error) {
	path := strings.TrimSpace(req.Path)
	id := strings.TrimSpace(req.ID)

	if path != "" {
		info, err := os.Stat(path)
		if err != nil {
			return sheet.Sheet{}, fmt.Errorf("formsheet: stat %q: %w", path, err)
		}
		if !info.IsDir() {
			doc, err := sheet.LoadFile(path)
			if err != nil {
				return sheet.Sheet{}, err
			}
			if id != "" && doc.ID != id {
				return sheet.Sheet{}, fmt.Errorf("formsheet: %q declares sheet %q, not %q: %w", path, doc.ID, id, sheet.ErrNotFound)
			}
			return doc, nil
		}
	}

	fsys := sheet.EmbeddedFS()
	if path != "" {
		fsys = os.DirFS(path)
	}
	store, err := sheet.LoadFS(fsys)
	if err != nil {
		return sheet.Sheet{}, err
	}
	if id == "" {
		ids := store.IDs()
		if len(ids) != 1 {
			return sheet.Sheet{}, fmt.Errorf("formsheet: %d sheets found, an id is required", len(ids))
		}
		id = ids[0]
	}
	return store.Sheet(id)
}

// NewController loads the requested sheet and builds a controller for it.
func NewController(req Request, options ...form.Option) (*form.Controller, error) {
	doc, err := LoadSheet(req)
	if err != nil {
		return nil, err
	}
	return form.New(doc, options...)
}

// RenderHTML renders the controller's current state with the embedded
// templates. It is the simplest entry point for callers that just want HTML
// output.
func RenderHTML(c *form.Controller, options ...html.Option) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("formsheet: controller is nil")
	}
	r, err := html.New(options...)
	if err != nil {
		return nil, err
	}
	return r.Render(c.Snapshot())
}
