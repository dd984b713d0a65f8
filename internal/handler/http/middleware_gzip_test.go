package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Helpers ----

// gzipped compresses s the way a client would compress a request body.
func gzipped(t *testing.T, s string) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

// gunzipped decompresses a response body recorded by httptest.
func gunzipped(t *testing.T, body *bytes.Buffer) string {
	t.Helper()

	zr, err := gzip.NewReader(body)
	require.NoError(t, err)
	defer zr.Close()

	plain, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(plain)
}

// echoHandler reads the request body and writes it back, the shape most
// todo endpoints follow (decode JSON in, encode JSON out).
var echoHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer r.Body.Close()

	w.WriteHeader(http.StatusOK)
	w.Write(body)
})

// ---- Tests ----

func TestGZip_CompressesResponseWhenAccepted(t *testing.T) {
	const payload = `{"todos":[{"text":"купить хлеб","completed":false}]}`

	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(payload))
	}))

	tests := []struct {
		name           string
		acceptEncoding string
		wantGzip       bool
	}{
		{name: "plain gzip", acceptEncoding: "gzip", wantGzip: true},
		{name: "gzip among alternatives", acceptEncoding: "deflate, gzip, br", wantGzip: true},
		{name: "gzip with quality value", acceptEncoding: "gzip;q=0.8, identity;q=0.5", wantGzip: true},
		{name: "no accept-encoding", acceptEncoding: "", wantGzip: false},
		{name: "other encodings only", acceptEncoding: "br", wantGzip: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/todos", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			if tt.wantGzip {
				assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
				assert.Equal(t, payload, gunzipped(t, rec.Body))
			} else {
				assert.NotEqual(t, "gzip", rec.Header().Get("Content-Encoding"))
				assert.Equal(t, payload, rec.Body.String())
			}
		})
	}
}

func TestGZip_DecompressesRequestBody(t *testing.T) {
	const payload = `{"text":"полить цветы"}`

	var seenBody string
	var seenContentEncoding string
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		defer r.Body.Close()

		seenBody = string(body)
		seenContentEncoding = r.Header.Get("Content-Encoding")
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/todos", gzipped(t, payload))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, payload, seenBody, "handler must see the decompressed body")
	assert.Empty(t, seenContentEncoding, "Content-Encoding must be stripped before the handler")
}

func TestGZip_MalformedGzipBodyRejectedBeforeHandler(t *testing.T) {
	handlerCalled := false
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
	}))

	// Claims gzip, carries plain JSON.
	req := httptest.NewRequest(http.MethodPost, "/todos",
		strings.NewReader(`{"text":"не сжато"}`))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, handlerCalled, "handler must not run on a malformed body")
}

func TestGZip_FullRoundTrip(t *testing.T) {
	const payload = `{"text":"записаться к врачу","completed":true}`

	handler := withGZip(echoHandler)

	req := httptest.NewRequest(http.MethodPost, "/todos", gzipped(t, payload))
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Equal(t, payload, gunzipped(t, rec.Body))
}

func TestGZip_PooledWritersSurviveReuse(t *testing.T) {
	handler := withGZip(echoHandler)

	// Несколько запросов подряд: пулы должны отдавать корректно сброшенные
	// writer'ы и reader'ы.
	for i := 0; i < 8; i++ {
		payload := `{"text":"задача номер ` + string(rune('0'+i)) + `"}`

		req := httptest.NewRequest(http.MethodPost, "/todos", gzipped(t, payload))
		req.Header.Set("Content-Encoding", "gzip")
		req.Header.Set("Accept-Encoding", "gzip")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
		assert.Equal(t, payload, gunzipped(t, rec.Body), "request %d", i)
	}
}

func TestGZip_StatusCodePreserved(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"todo not found"}`))
	}))

	req := httptest.NewRequest(http.MethodGet, "/todos/unknown", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Equal(t, `{"error":"todo not found"}`, gunzipped(t, rec.Body))
}

func TestPooledGzipBody_DoubleCloseIsSafe(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.ReadAll(r.Body)
		require.NoError(t, r.Body.Close())
		require.NoError(t, r.Body.Close(), "second Close must be a no-op")
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/todos", gzipped(t, `{"text":"x"}`))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
