// Copyright 2017 Felipe A. Cavani. All rights reserved.
// Use of this source code is governed by the Apache License 2.0
// license that can be found in the LICENSE file.

// Package responsewriter provides a http.ResponseWriter that holds the
// entire response in memory until it is replayed to the real writer.
package responsewriter

import (
	"bytes"
	"net/http"

	"github.com/fcavani/e"
	log "github.com/fcavani/slog"
)

// ResponseWriter buffers the status code, the headers and the body of one
// response. It belongs to a single request, don't share it between
// goroutines.
type ResponseWriter struct {
	header http.Header
	buf    bytes.Buffer
	code   int
}

// NewResponseWriter creates a empty buffered response.
func NewResponseWriter() *ResponseWriter {
	return &ResponseWriter{
		header: make(http.Header),
	}
}

// Header returns the buffered header map.
func (rw *ResponseWriter) Header() http.Header {
	return rw.header
}

// Write appends p to the buffered body. Chunks accumulate in arrival order.
func (rw *ResponseWriter) Write(p []byte) (int, error) {
	return rw.buf.Write(p)
}

// WriteHeader stores the status code for later replay.
func (rw *ResponseWriter) WriteHeader(code int) {
	rw.code = code
}

// ResponseCode returns the stored status code, zero if the handler never
// called WriteHeader.
func (rw *ResponseWriter) ResponseCode() int {
	return rw.code
}

// Len returns the buffered body length in bytes.
func (rw *ResponseWriter) Len() int {
	return rw.buf.Len()
}

// Bytes returns the buffered body. The slice is only valid until the next
// Write or Read.
func (rw *ResponseWriter) Bytes() []byte {
	return rw.buf.Bytes()
}

// Read drains the buffered body.
func (rw *ResponseWriter) Read(p []byte) (int, error) {
	return rw.buf.Read(p)
}

// Copy replays headers, status code and body to w. A zero status code is
// left to the real writer, that will send 200 on the first body write.
func (rw *ResponseWriter) Copy(w http.ResponseWriter) error {
	header := w.Header()
	for k, vals := range rw.header {
		for _, v := range vals {
			header.Add(k, v)
		}
	}
	if rw.code != 0 {
		w.WriteHeader(rw.code)
	}
	_, err := w.Write(rw.buf.Bytes())
	if err != nil {
		return e.Forward(err)
	}
	return nil
}

// HandlerFunc is a handler that receives the buffered writer directly.
type HandlerFunc func(w *ResponseWriter, r *http.Request)

// Handler runs f against a fresh buffer and replays the result to the
// client.
func Handler(f HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rw := NewResponseWriter()
		f(rw, r)
		err := rw.Copy(w)
		if err != nil {
			log.Tag("responsewriter").Error("Can't copy the buffer: ", err)
		}
	}
}
