package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/Engagic/engagic-sub004/pkg/config"
)

const (
	maxIdleConnsPerVendor = 20
	maxIdleConnsPerHost   = 5
	sessionRecycleAfter   = 100 // requests
	maxResponseBytes      = 50 << 20
)

// Session is the shared per-vendor HTTP client. One session serves all cities
// on a vendor; the underlying transport is recycled after ~100 requests to
// avoid long-lived stale connections to vendor load balancers.
type Session struct {
	vendor  string
	setting config.VendorSetting

	mu       sync.Mutex
	client   *http.Client
	requests int
}

// NewSession builds a pooled HTTP session for a vendor.
func NewSession(vendor string, setting config.VendorSetting) *Session {
	s := &Session{vendor: vendor, setting: setting}
	s.client = s.newClient()
	return s
}

func (s *Session) newClient() *http.Client {
	return &http.Client{
		Timeout: s.setting.RequestTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: s.setting.ConnectTimeout,
			}).DialContext,
			MaxIdleConns:        maxIdleConnsPerVendor,
			MaxIdleConnsPerHost: maxIdleConnsPerHost,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// httpClient returns the current client, recycling the transport if the
// session has served enough requests.
func (s *Session) httpClient() *http.Client {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests++
	if s.requests > sessionRecycleAfter {
		if tr, ok := s.client.Transport.(*http.Transport); ok {
			tr.CloseIdleConnections()
		}
		s.client = s.newClient()
		s.requests = 1
		slog.Debug("Recycled vendor HTTP session", "vendor", s.vendor)
	}
	return s.client
}

// Get performs a GET and returns the body. Non-2xx statuses are ErrVendorRequest.
func (s *Session) Get(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", "engagic/1.0 (civic agenda indexer)")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := s.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrVendorRequest, url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %d", ErrVendorRequest, url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrVendorRequest, url, err)
	}
	return body, nil
}

// GetJSON performs a GET and decodes the JSON response into target.
func (s *Session) GetJSON(ctx context.Context, url string, headers map[string]string, target interface{}) error {
	body, err := s.Get(ctx, url, headers)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("%w: %s returned malformed JSON: %v", ErrVendorRequest, url, err)
	}
	return nil
}

// Close releases idle connections.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tr, ok := s.client.Transport.(*http.Transport); ok {
		tr.CloseIdleConnections()
	}
}
