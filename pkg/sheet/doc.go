// Package sheet loads declarative descriptions of data-entry sheets: their
// sections, multi-select dropdowns with ordered options, and plain text
// inputs. Declarations are read from JSON, YAML or TOML documents, or from the
// embedded equipment data sheet returned by Default. A declaration is only a
// description; package form turns it into live widgets.
package sheet
