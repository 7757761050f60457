// Copyright 2017 Felipe A. Cavani. All rights reserved.
// Use of this source code is governed by the Apache License 2.0
// license that can be found in the LICENSE file.

// Package hsts adds the Strict-Transport-Security field to the response
// header.
package hsts

import (
	"net/http"
	"strconv"
	"time"
)

// DefaultMaxAge is two years, the value the preload list requires.
// https://hstspreload.org/
const DefaultMaxAge = 2 * 365 * 24 * time.Hour

// HSTS instructs the browser to only come back over https for maxAge. A
// zero maxAge means DefaultMaxAge.
func HSTS(maxAge time.Duration, f http.HandlerFunc) http.HandlerFunc {
	if maxAge == 0 {
		maxAge = DefaultMaxAge
	}
	value := "max-age=" + strconv.FormatInt(int64(maxAge.Seconds()), 10) + "; includeSubDomains; preload"
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Strict-Transport-Security", value)
		f(w, r)
	}
}
