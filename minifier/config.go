// Copyright 2017 Felipe A. Cavani. All rights reserved.
// Use of this source code is governed by the Apache License 2.0
// license that can be found in the LICENSE file.

package minifier

import (
	"github.com/spf13/viper"
)

// ConfigFromViper reads the minification profile from v. Keys live under
// the minify section, missing keys keep the default profile values.
func ConfigFromViper(v *viper.Viper) *Config {
	cfg := DefaultConfig()
	if v == nil {
		return cfg
	}
	v.SetDefault("minify.css", cfg.MinifyCSS)
	v.SetDefault("minify.js", cfg.MinifyJS)
	v.SetDefault("minify.keep-comments", cfg.KeepComments)
	v.SetDefault("minify.keep-whitespace", cfg.KeepWhitespace)
	v.SetDefault("minify.keep-document-tags", cfg.KeepDocumentTags)
	v.SetDefault("minify.keep-default-attrvals", cfg.KeepDefaultAttrVals)
	v.SetDefault("minify.keep-end-tags", cfg.KeepEndTags)
	cfg.MinifyCSS = v.GetBool("minify.css")
	cfg.MinifyJS = v.GetBool("minify.js")
	cfg.KeepComments = v.GetBool("minify.keep-comments")
	cfg.KeepWhitespace = v.GetBool("minify.keep-whitespace")
	cfg.KeepDocumentTags = v.GetBool("minify.keep-document-tags")
	cfg.KeepDefaultAttrVals = v.GetBool("minify.keep-default-attrvals")
	cfg.KeepEndTags = v.GetBool("minify.keep-end-tags")
	return cfg
}
