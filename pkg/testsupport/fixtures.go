package testsupport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formsheet/pkg/form"
	"github.com/goliatone/go-formsheet/pkg/sheet"
)

// MustLoadSheet reads a declaration fixture. Testing helpers fail the test on
// error to keep contract tests concise.
func MustLoadSheet(t *testing.T, path string) sheet.Sheet {
	t.Helper()

	doc, err := LoadSheet(path)
	if err != nil {
		t.Fatalf("load sheet: %v", err)
	}
	return doc
}

// LoadSheet returns a declaration without requiring testing.T, allowing
// callers to wire fixtures in setup functions.
func LoadSheet(path string) (sheet.Sheet, error) {
	if path == "" {
		return sheet.Sheet{}, errors.New("testsupport: sheet path is required")
	}
	doc, err := sheet.LoadFile(path)
	if err != nil {
		return sheet.Sheet{}, fmt.Errorf("testsupport: load sheet: %w", err)
	}
	return doc, nil
}

// NewController builds a controller over decl.
func NewController(t *testing.T, decl sheet.Sheet, options ...form.Option) *form.Controller {
	t.Helper()

	c, err := form.New(decl, options...)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	return c
}

// DefaultController builds a controller over the embedded equipment sheet.
func DefaultController(t *testing.T, options ...form.Option) *form.Controller {
	t.Helper()
	return NewController(t, sheet.Default(), options...)
}

// FillRequired types values into the required inputs of the embedded sheet.
func FillRequired(t *testing.T, c *form.Controller) {
	t.Helper()

	for _, name := range []string{"equipmentId", "product"} {
		if !c.SetInput(name, name+"-value") {
			t.Fatalf("input %q not declared", name)
		}
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
