package extract

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const maxDocumentBytes = 200 << 20

// Downloader fetches agenda documents. It reuses one pooled client for all
// packet downloads; vendor politeness does not apply to document hosts.
type Downloader struct {
	client *http.Client
}

// NewDownloader builds a downloader with the given total timeout.
func NewDownloader(timeout time.Duration) *Downloader {
	return &Downloader{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 5,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Fetch downloads the document at url.
func (d *Downloader) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request for %s: %v", ErrDownload, url, err)
	}
	req.Header.Set("User-Agent", "engagic/1.0 (civic agenda indexer)")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDownload, url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned %d", ErrDownload, url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrDownload, url, err)
	}
	return data, nil
}
