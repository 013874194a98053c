// Package layout ships the default board document.
package layout

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/alexanderramin/projboard/internal/dom"
)

//go:embed index.html
var defaultHTML string

// Default returns the embedded layout markup.
func Default() string { return defaultHTML }

// Load parses the layout at path, or the embedded layout when path is empty.
func Load(path string) (*dom.Document, error) {
	if path == "" {
		return dom.ParseString(defaultHTML)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening layout: %w", err)
	}
	defer f.Close()
	return dom.Parse(f)
}
