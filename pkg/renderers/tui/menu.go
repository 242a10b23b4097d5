package tui

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formsheet/pkg/form"
)

type entryKind int

const (
	entryDropdown entryKind = iota
	entryInput
	entrySave
	entryNew
	entryCancel
	entryQuit
)

// entry is one row of the main menu.
type entry struct {
	kind  entryKind
	name  string
	label string
}

const (
	labelSave   = "Save"
	labelNew    = "New"
	labelCancel = "Cancel"
	labelQuit   = "Quit"
)

// buildMenu lists every field of the snapshot in section order followed by
// the sheet actions.
func buildMenu(snap form.Snapshot) []entry {
	var out []entry
	for _, sec := range snap.Sections {
		for _, d := range sec.Dropdowns {
			out = append(out, entry{
				kind:  entryDropdown,
				name:  d.Name,
				label: fieldLabel(sec.Title, d.Caption, d.Name, d.Label, d.Required, d.Invalid),
			})
		}
		for _, in := range sec.Inputs {
			value := in.Value
			if value == "" {
				value = "-"
			}
			out = append(out, entry{
				kind:  entryInput,
				name:  in.Name,
				label: fieldLabel(sec.Title, in.Caption, in.Name, value, in.Required, in.Invalid),
			})
		}
	}
	return append(out,
		entry{kind: entrySave, label: labelSave},
		entry{kind: entryNew, label: labelNew},
		entry{kind: entryCancel, label: labelCancel},
		entry{kind: entryQuit, label: labelQuit},
	)
}

func fieldLabel(section, caption, name, value string, required, invalid bool) string {
	if caption == "" {
		caption = name
	}
	var b strings.Builder
	switch {
	case invalid:
		b.WriteString("! ")
	case required:
		b.WriteString("* ")
	default:
		b.WriteString("  ")
	}
	if section != "" {
		fmt.Fprintf(&b, "%s / ", section)
	}
	fmt.Fprintf(&b, "%s: %s", caption, value)
	return b.String()
}

func menuLabels(entries []entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.label
	}
	return out
}
