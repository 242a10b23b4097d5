// Package widgets implements the interactive controls of a data sheet: the
// multi-select Dropdown, the plain text Input and the Registry that keeps at
// most one dropdown open at a time. Widgets are plain state; they do not know
// how they are drawn. Hosts route clicks through Registry.HandleClick and
// checkbox changes through Dropdown.SetChecked.
package widgets
