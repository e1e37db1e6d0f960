// Package extract downloads agenda documents and extracts their text for
// summarization.
package extract

import (
	"context"
	"errors"
)

// Sentinel errors for extraction.
var (
	// ErrNoText indicates the document parsed but yielded no usable text
	// (typically a scanned image PDF).
	ErrNoText = errors.New("document contains no extractable text")

	// ErrDownload indicates the source document could not be fetched.
	ErrDownload = errors.New("document download failed")
)

// Result is the outcome of one extraction.
type Result struct {
	Success   bool
	Text      string
	PageCount int
	Error     string
}

// Extractor turns raw document bytes into text. Implementations run on a
// bounded worker pool so CPU-heavy parsing cannot stall the I/O loops.
type Extractor interface {
	ExtractFromBytes(ctx context.Context, data []byte) (*Result, error)
}
