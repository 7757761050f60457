// Copyright 2017 Felipe A. Cavani. All rights reserved.
// Use of this source code is governed by the Apache License 2.0
// license that can be found in the LICENSE file.

package minify

import (
	"bytes"
	"io"
	"io/ioutil"
	"net/http"
	"strconv"

	"github.com/fcavani/e"
)

// ErrBodyRead is the error pushed when the downstream body can't be
// drained to the end.
const ErrBodyRead = "failed to read response body"

// Transport is a http.RoundTripper that minifies html response bodies.
// It suits proxies and clients, the places where the response body is a
// stream coming from another server.
type Transport struct {
	// Minifier rewrites the html payloads. Nil disables the rewrite and
	// responses flow through buffered but untouched.
	Minifier HTMLMinifier
	// Base performs the request. Nil means http.DefaultTransport.
	Base http.RoundTripper
}

// RoundTrip forwards the request once to the base transport and rewrites
// the response. An error from the base transport propagates untouched. A
// body read or minification failure produces a fresh plain text 500
// response, the original headers are discarded.
func (t *Transport) RoundTrip(r *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	resp, err := base.RoundTrip(r)
	if err != nil {
		return nil, err
	}

	buf, err := drain(resp.Body)
	if err != nil {
		return errorResponse(r, e.Forward(err)), nil
	}

	if t.Minifier != nil && IsHTML(resp.Header) {
		min, err := t.Minifier.HTML(buf)
		if err != nil {
			return errorResponse(r, e.Forward(err)), nil
		}
		if resp.Header.Get("Content-Length") != "" {
			resp.Header.Set("Content-Length", strconv.Itoa(len(min)))
		}
		resp.ContentLength = int64(len(min))
		buf = min
	}

	resp.Body = ioutil.NopCloser(bytes.NewReader(buf))
	return resp, nil
}

func drain(body io.ReadCloser) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	defer body.Close()
	buf, err := ioutil.ReadAll(body)
	if err != nil {
		return nil, e.Push(err, ErrBodyRead)
	}
	return buf, nil
}

// errorResponse builds a complete response from scratch, nothing of the
// failed response survives into it.
func errorResponse(r *http.Request, err error) *http.Response {
	body := err.Error()
	header := make(http.Header)
	header.Set("Content-Type", "text/plain; charset=utf-8")
	header.Set("Content-Length", strconv.Itoa(len(body)))
	return &http.Response{
		Status:        "500 " + http.StatusText(http.StatusInternalServerError),
		StatusCode:    http.StatusInternalServerError,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          ioutil.NopCloser(bytes.NewReader([]byte(body))),
		ContentLength: int64(len(body)),
		Request:       r,
	}
}
