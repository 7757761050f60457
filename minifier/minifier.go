// Copyright 2017 Felipe A. Cavani. All rights reserved.
// Use of this source code is governed by the Apache License 2.0
// license that can be found in the LICENSE file.

// Package minifier wraps the tdewolff minify library behind a fixed
// profile built once at startup.
package minifier

import (
	"github.com/fcavani/e"
	"github.com/tdewolff/minify"
	"github.com/tdewolff/minify/css"
	"github.com/tdewolff/minify/html"
	"github.com/tdewolff/minify/js"
)

// Config holds the flags of the minification profile. New reads the value
// once, changing it afterwards doesn't affect a built Minifier.
type Config struct {
	// MinifyCSS minifies the content of style tags and style attributes.
	MinifyCSS bool
	// MinifyJS minifies the content of script tags.
	MinifyJS bool
	// KeepComments preserves conditional comments. Ordinary comments are
	// always dropped.
	KeepComments bool
	// KeepWhitespace preserves the whitespace between tags instead of
	// collapsing it.
	KeepWhitespace bool
	// KeepDocumentTags preserves html, head and body even when they could
	// be omitted.
	KeepDocumentTags bool
	// KeepDefaultAttrVals preserves attribute values that equal their
	// defaults.
	KeepDefaultAttrVals bool
	// KeepEndTags preserves optional end tags like </li> and </td>.
	KeepEndTags bool
}

// DefaultConfig is the profile used when no other is given: embedded css
// and js minified, comments and redundant whitespace dropped.
func DefaultConfig() *Config {
	return &Config{
		MinifyCSS: true,
		MinifyJS:  true,
	}
}

// Minifier shrinks html documents. It is safe for concurrent use.
type Minifier struct {
	m *minify.M
}

// New builds a minifier for cfg. A nil cfg means DefaultConfig.
func New(cfg *Config) *Minifier {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	m := minify.New()
	m.Add("text/html", &html.Minifier{
		KeepConditionalComments: cfg.KeepComments,
		KeepDefaultAttrVals:     cfg.KeepDefaultAttrVals,
		KeepDocumentTags:        cfg.KeepDocumentTags,
		KeepEndTags:             cfg.KeepEndTags,
		KeepWhitespace:          cfg.KeepWhitespace,
	})
	if cfg.MinifyCSS {
		m.AddFunc("text/css", css.Minify)
	}
	if cfg.MinifyJS {
		m.AddFunc("text/javascript", js.Minify)
		m.AddFunc("application/javascript", js.Minify)
	}
	return &Minifier{
		m: m,
	}
}

// ErrMinifyPanic is the error pushed over a recovered panic.
const ErrMinifyPanic = "minifier panicked"

// HTML minifies one complete html document. A failure inside the library
// comes back as an error, it never escapes as a panic. An empty document
// minifies to an empty document.
func (mn *Minifier) HTML(buf []byte) ([]byte, error) {
	return safeBytes(mn.m, "text/html", buf)
}

func safeBytes(m *minify.M, mediatype string, buf []byte) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = e.Push(e.New("%v", r), ErrMinifyPanic)
		}
	}()
	out, err = m.Bytes(mediatype, buf)
	if err != nil {
		return nil, e.Forward(err)
	}
	return out, nil
}
