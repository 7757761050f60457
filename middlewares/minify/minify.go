// Copyright 2017 Felipe A. Cavani. All rights reserved.
// Use of this source code is governed by the Apache License 2.0
// license that can be found in the LICENSE file.

// Package minify rewrites html responses through the minifier before they
// reach the client. Everything else passes through byte identical.
package minify

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/fcavani/e"
	log "github.com/fcavani/slog"

	"github.com/tim-connect/htmlmin/errhandler"
	"github.com/tim-connect/htmlmin/responsewriter"
)

// HTMLMediaType is the marker searched for in the Content-Type header. The
// test is a case sensitive substring match, a charset parameter after the
// media type doesn't matter.
const HTMLMediaType = "text/html"

// HTMLMinifier rewrites one complete html document. minifier.Minifier is
// the implementation used in production.
type HTMLMinifier interface {
	HTML(buf []byte) ([]byte, error)
}

// Minify handler buffers the whole downstream response and, when it
// carries html, replaces the body with the minified form. The status code
// and the headers are replayed as the handler produced them, only
// Content-Length is recomputed for a rewritten body. A nil minifier
// disables the middleware and the handler chain runs untouched.
func Minify(mn HTMLMinifier, f http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if mn == nil {
			f(w, r)
			return
		}

		resp := responsewriter.NewResponseWriter()
		f(resp, r)

		if !IsHTML(resp.Header()) {
			err := resp.Copy(w)
			if err != nil {
				errhandler.ErrHandler(w, http.StatusInternalServerError, e.Forward(err))
			}
			return
		}

		buf, err := mn.HTML(resp.Bytes())
		if err != nil {
			errhandler.ErrHandler(w, http.StatusInternalServerError, e.Forward(err))
			return
		}

		header := w.Header()
		for k, vals := range resp.Header() {
			for _, v := range vals {
				header.Add(k, v)
			}
		}
		if header.Get("Content-Length") != "" {
			header.Set("Content-Length", strconv.Itoa(len(buf)))
		}
		if code := resp.ResponseCode(); code != 0 {
			w.WriteHeader(code)
		}
		_, err = w.Write(buf)
		if err != nil {
			log.Tag("minify").Error("Can't write the body: ", err)
		}
	}
}

// IsHTML reports if the headers announce a html payload. Exactly one
// Content-Type value containing the html marker counts, a missing or
// multi valued header is not html and the body passes through.
func IsHTML(h http.Header) bool {
	vals := h.Values("Content-Type")
	if len(vals) != 1 {
		return false
	}
	return strings.Contains(vals[0], HTMLMediaType)
}
