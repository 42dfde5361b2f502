// Package source fetches the raw sheet payloads behind the catalogue.
package source

import (
	"context"
	"io"
)

// Source defines how catview reads a named sheet from the data provider
type Source interface {
	// Open returns the CSV payload of the named sheet. Callers close it.
	Open(ctx context.Context, sheet string) (io.ReadCloser, error)

	// Describe returns a short human-readable location for logs and errors
	Describe() string
}
