package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// DefaultTemplate is the template rendered when none is configured.
const DefaultTemplate = "sheet.tpl"

// TemplatesFS exposes the embedded template bundle so callers can extend or
// override it.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		// Should never happen, but fall back to raw FS so templates remain usable.
		return embeddedTemplates
	}
	return sub
}
