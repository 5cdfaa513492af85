// Package viewer opens generated reports in an external application.
package viewer

import (
	"fmt"
	"io"

	"github.com/pkg/browser"
)

// Opener opens a file for the user to look at.
type Opener interface {
	Open(path string) error
}

// Browser opens files with the platform default handler (xdg-open, open,
// or rundll32). Output of the launched command goes to Stdout and Stderr.
type Browser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (b Browser) Open(path string) error {
	if b.Stdout != nil {
		browser.Stdout = b.Stdout
	}
	if b.Stderr != nil {
		browser.Stderr = b.Stderr
	}
	if err := browser.OpenFile(path); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	return nil
}

// Noop never opens anything.
type Noop struct{}

func (Noop) Open(string) error { return nil }
