package extract

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFromBytesRejectsGarbage(t *testing.T) {
	e := NewPDFExtractor(1, 5*time.Second, nil)

	_, err := e.ExtractFromBytes(context.Background(), []byte("not a pdf at all"))
	assert.Error(t, err)
}

func TestExtractHonorsTimeout(t *testing.T) {
	e := NewPDFExtractor(1, time.Nanosecond, nil)

	_, err := e.ExtractFromBytes(context.Background(), []byte("%PDF-1.4"))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDownloaderFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "engagic")
		_, _ = w.Write([]byte("%PDF-1.4 fake packet"))
	}))
	defer srv.Close()

	d := NewDownloader(5 * time.Second)
	data, err := d.Fetch(context.Background(), srv.URL+"/packet.pdf")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake packet", string(data))
}

func TestDownloaderFetchNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	d := NewDownloader(5 * time.Second)
	_, err := d.Fetch(context.Background(), srv.URL+"/gone.pdf")
	assert.ErrorIs(t, err, ErrDownload)
}
