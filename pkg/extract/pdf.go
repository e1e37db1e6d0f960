package extract

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
	"golang.org/x/sync/semaphore"

	"github.com/Engagic/engagic-sub004/pkg/metrics"
)

// PDFExtractor extracts plain text from PDF bytes. Parsing is CPU-bound, so
// concurrent extractions are capped by a weighted semaphore.
type PDFExtractor struct {
	sem     *semaphore.Weighted
	timeout time.Duration
	sink    metrics.Sink
}

// NewPDFExtractor builds an extractor with the given parallelism cap and
// per-document timeout. sink may be nil (metrics disabled).
func NewPDFExtractor(maxParallel int, timeout time.Duration, sink metrics.Sink) *PDFExtractor {
	if maxParallel < 1 {
		maxParallel = 1
	}
	if sink == nil {
		sink = metrics.Noop{}
	}
	return &PDFExtractor{
		sem:     semaphore.NewWeighted(int64(maxParallel)),
		timeout: timeout,
		sink:    sink,
	}
}

// ExtractFromBytes parses the PDF and returns its text and page count.
// The per-document timeout covers both the semaphore wait and the parse.
func (e *PDFExtractor) ExtractFromBytes(ctx context.Context, data []byte) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	if err := e.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("waiting for extraction slot: %w", err)
	}
	defer e.sem.Release(1)

	type parsed struct {
		result *Result
		err    error
	}
	done := make(chan parsed, 1)
	go func() {
		r, err := parsePDF(data)
		done <- parsed{r, err}
	}()

	select {
	case <-ctx.Done():
		// The parse goroutine leaks until it finishes; the library offers no
		// cancellation hook. The semaphore slot was already released above,
		// which bounds how many can pile up.
		e.sink.RecordExtraction(false, 0)
		return nil, fmt.Errorf("pdf extraction timed out: %w", ctx.Err())
	case p := <-done:
		if p.err != nil {
			e.sink.RecordExtraction(false, 0)
			return nil, p.err
		}
		e.sink.RecordExtraction(p.result.Success, p.result.PageCount)
		return p.result, nil
	}
}

// parsePDF walks every page and concatenates its text.
func parsePDF(data []byte) (result *Result, err error) {
	defer func() {
		// The parser panics on some malformed cross-reference tables.
		if r := recover(); r != nil {
			slog.Warn("PDF parser panicked", "panic", r)
			result = nil
			err = fmt.Errorf("pdf parser panicked: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}

	pageCount := reader.NumPage()
	var sb strings.Builder
	for i := 1; i <= pageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			slog.Debug("Failed to extract page text", "page", i, "error", err)
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return &Result{
			Success:   false,
			PageCount: pageCount,
			Error:     ErrNoText.Error(),
		}, nil
	}

	return &Result{
		Success:   true,
		Text:      text,
		PageCount: pageCount,
	}, nil
}
