// Package validation checks the required fields of a sheet and keeps the
// per-field validity markers hosts use to draw error states.
package validation
