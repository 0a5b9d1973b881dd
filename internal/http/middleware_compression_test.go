package httpx

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compressed(contentType, body string) http.Handler {
	return Compression(CompressionConfig{Logger: discardLogger()})(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if contentType != "" {
				w.Header().Set("Content-Type", contentType)
			}
			_, _ = io.WriteString(w, body)
		}),
	)
}

func TestCompression_GzipsHTML(t *testing.T) {
	body := strings.Repeat("<tr><td>N/A</td></tr>", 50)
	r := httptest.NewRequest(http.MethodGet, "/shoes", nil)
	r.Header.Set("Accept-Encoding", "gzip, deflate")
	w := httptest.NewRecorder()
	compressed("text/html; charset=utf-8", body).ServeHTTP(w, r)

	require.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
	assert.Contains(t, w.Header().Values("Vary"), "Accept-Encoding")
	zr, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	plain, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, body, string(plain))
}

func TestCompression_SkipsPNG(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/charts/download.png", nil)
	r.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	compressed("image/png", "\x89PNG").ServeHTTP(w, r)
	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Equal(t, "\x89PNG", w.Body.String())
}

func TestCompression_SkipsClientsWithoutGzip(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	compressed("text/html", "<p>hi</p>").ServeHTTP(w, r)
	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Equal(t, "<p>hi</p>", w.Body.String())
}

func TestAcceptsGzip(t *testing.T) {
	tests := map[string]bool{
		"":                  false,
		"gzip":              true,
		"br, gzip;q=0.8":    true,
		"gzip;q=0":          false,
		"deflate, identity": false,
		"GZIP":              true,
	}
	for header, want := range tests {
		assert.Equal(t, want, acceptsGzip(header), header)
	}
}
