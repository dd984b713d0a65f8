package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Gzip writers and readers are pooled: allocating a gzip.Writer per request
// is measurably expensive, and both types support Reset for reuse.
var (
	gzipWriters = sync.Pool{
		New: func() any { return gzip.NewWriter(io.Discard) },
	}
	gzipReaders = sync.Pool{
		New: func() any { return new(gzip.Reader) },
	}
)

// withGZip transparently handles gzip on both directions of a request.
//
// A request body sent with Content-Encoding: gzip is decompressed before the
// handler sees it; the header is stripped so downstream decoding treats the
// body as plain JSON. A body that claims gzip but fails the header check is
// rejected with HTTP 400 before any handler runs.
//
// The response is compressed only when the client advertises gzip in
// Accept-Encoding. Handlers stay unaware of the negotiation: they write
// through the usual [http.ResponseWriter] and the middleware finishes the
// stream after they return.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			body, ok := decompressedBody(w, r)
			if !ok {
				return
			}
			r.Body = body
			r.Header.Del("Content-Encoding")
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zw := gzipWriters.Get().(*gzip.Writer)
		zw.Reset(w)

		next.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, zw: zw}, r)

		zw.Close()
		gzipWriters.Put(zw)
	})
}

// decompressedBody wraps the request body in a pooled gzip reader. On a
// malformed gzip stream it writes the 400 response itself and reports false.
func decompressedBody(w http.ResponseWriter, r *http.Request) (io.ReadCloser, bool) {
	zr := gzipReaders.Get().(*gzip.Reader)
	if err := zr.Reset(r.Body); err != nil {
		gzipReaders.Put(zr)
		http.Error(w, "malformed gzip request body", http.StatusBadRequest)
		return nil, false
	}

	return &pooledGzipBody{zr: zr}, true
}

// pooledGzipBody is the ReadCloser handed to handlers in place of a gzipped
// request body. Close returns the underlying reader to the pool, so it must
// be called at most once per wrapper.
type pooledGzipBody struct {
	zr *gzip.Reader
}

func (b *pooledGzipBody) Read(p []byte) (int, error) {
	return b.zr.Read(p)
}

func (b *pooledGzipBody) Close() error {
	if b.zr == nil {
		return nil
	}
	err := b.zr.Close()
	gzipReaders.Put(b.zr)
	b.zr = nil
	return err
}

// gzipResponseWriter funnels handler writes through the pooled gzip writer
// while headers keep going to the real ResponseWriter.
type gzipResponseWriter struct {
	http.ResponseWriter
	zw *gzip.Writer
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	w.Header().Set("Content-Encoding", "gzip")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(p []byte) (int, error) {
	return w.zw.Write(p)
}
