package sheet

import (
	"embed"
	"io/fs"
)

// DefaultID is the id of the embedded equipment data sheet.
const DefaultID = "equipment-data-sheet"

//go:embed sheets/*
var embeddedSheets embed.FS

// EmbeddedFS returns the bundled sheet documents. Callers may pass it to
// LoadFS.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedSheets, "sheets")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}

// Default returns the embedded equipment data sheet.
func Default() Sheet {
	store, err := LoadFS(EmbeddedFS())
	if err != nil {
		panic(err)
	}
	doc, err := store.Sheet(DefaultID)
	if err != nil {
		panic(err)
	}
	return doc
}
