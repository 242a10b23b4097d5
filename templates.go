package formsheet

import (
	"io/fs"

	"github.com/goliatone/go-formsheet/pkg/renderers/html"
	"github.com/goliatone/go-formsheet/pkg/sheet"
)

// EmbeddedTemplates exposes the built-in HTML templates so callers can reuse
// or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}

// EmbeddedSheets exposes the bundled sheet declarations.
func EmbeddedSheets() fs.FS {
	return sheet.EmbeddedFS()
}
