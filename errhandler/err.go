// Copyright 2017 Felipe A. Cavani. All rights reserved.
// Use of this source code is governed by the Apache License 2.0
// license that can be found in the LICENSE file.

// Package errhandler turns errors into complete plain text responses.
package errhandler

import (
	"net/http"

	"github.com/fcavani/e"
	log "github.com/fcavani/slog"
)

// ErrHandler writes err to the client as a plain text diagnostic with the
// given status code. The response replaces whatever the handler produced,
// nothing else is written after it.
func ErrHandler(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}
	log.Tag("error", "handlers").DebugLevel().Println(e.Trace(e.Forward(err)))
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, er := w.Write([]byte(err.Error()))
	if er != nil {
		log.Tag("error", "handlers").Error(er)
	}
}
