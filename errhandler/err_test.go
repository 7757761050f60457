// Copyright 2017 Felipe A. Cavani. All rights reserved.
// Use of this source code is governed by the Apache License 2.0
// license that can be found in the LICENSE file.

package errhandler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/tim-connect/htmlmin/responsewriter"
)

func TestErrHandler(t *testing.T) {
	rw := responsewriter.NewResponseWriter()
	ErrHandler(rw, http.StatusInternalServerError, errors.New("this is a error"))
	if rw.ResponseCode() != http.StatusInternalServerError {
		t.Fatal("wrong error code")
	}
	if rw.Header().Get("Content-Type") != "text/plain; charset=utf-8" {
		t.Fatal("wrong content-type", rw.Header().Get("Content-Type"))
	}
	if string(rw.Bytes()) != "this is a error" {
		t.Fatal("wrong body", string(rw.Bytes()))
	}
}

func TestErrHandlerNil(t *testing.T) {
	rw := responsewriter.NewResponseWriter()
	ErrHandler(rw, http.StatusInternalServerError, nil)
	if rw.ResponseCode() != 0 {
		t.Fatal("wrote a response for a nil error")
	}
	if rw.Len() != 0 {
		t.Fatal("body not empty")
	}
}
