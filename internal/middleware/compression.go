// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// MinCompressSize is the smallest response body that gets gzipped.
const MinCompressSize = 1024

// gzipWriterPool pools gzip writers to reduce allocations
var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(io.Discard)
	},
}

// gzipResponseWriter buffers the first MinCompressSize bytes and only
// switches to gzip once the body is known to be large enough.
type gzipResponseWriter struct {
	http.ResponseWriter
	status  int
	buf     bytes.Buffer
	gz      *gzip.Writer
	decided bool
}

func (w *gzipResponseWriter) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	if w.decided {
		if w.gz != nil {
			return w.gz.Write(b)
		}
		return w.ResponseWriter.Write(b)
	}

	w.buf.Write(b)
	if w.buf.Len() < MinCompressSize {
		return len(b), nil
	}
	if err := w.start(true); err != nil {
		return 0, err
	}
	return len(b), nil
}

// start commits the response headers and flushes the buffered prefix.
func (w *gzipResponseWriter) start(compress bool) error {
	w.decided = true
	h := w.ResponseWriter.Header()
	if compress && h.Get("Content-Encoding") == "" {
		gz := gzipWriterPool.Get().(*gzip.Writer) //nolint:errcheck // pool only holds *gzip.Writer
		gz.Reset(w.ResponseWriter)
		w.gz = gz
		h.Set("Content-Encoding", "gzip")
		h.Del("Content-Length")
	}
	h.Add("Vary", "Accept-Encoding")

	if w.status == 0 {
		w.status = http.StatusOK
	}
	w.ResponseWriter.WriteHeader(w.status)

	if w.buf.Len() == 0 {
		return nil
	}
	var err error
	if w.gz != nil {
		_, err = w.gz.Write(w.buf.Bytes())
	} else {
		_, err = w.ResponseWriter.Write(w.buf.Bytes())
	}
	w.buf.Reset()
	return err
}

// close finishes a response that never reached the threshold or flushes
// the gzip stream.
func (w *gzipResponseWriter) close() {
	if !w.decided {
		_ = w.start(false) // response already committed by the handler's return
		return
	}
	if w.gz != nil {
		_ = w.gz.Close()
		gzipWriterPool.Put(w.gz)
		w.gz = nil
	}
}

// Compression middleware gzips responses of at least MinCompressSize bytes
// for clients that accept it. Smaller bodies are sent as is.
func Compression(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead || !acceptsGzip(r.Header.Get("Accept-Encoding")) {
			next(w, r)
			return
		}

		gzw := &gzipResponseWriter{ResponseWriter: w}
		defer gzw.close()
		next(gzw, r)
	}
}

func acceptsGzip(header string) bool {
	for _, part := range strings.Split(header, ",") {
		coding, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if !strings.EqualFold(strings.TrimSpace(coding), "gzip") {
			continue
		}
		return strings.ReplaceAll(strings.TrimSpace(params), " ", "") != "q=0"
	}
	return false
}
