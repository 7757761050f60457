// Copyright 2017 Felipe A. Cavani. All rights reserved.
// Use of this source code is governed by the Apache License 2.0
// license that can be found in the LICENSE file.

package compress

import (
	"compress/flate"
	"compress/gzip"
	"compress/lzw"
	"io/ioutil"
	"net/http"
	"testing"

	"github.com/tim-connect/htmlmin/responsewriter"
)

func TestCompress(t *testing.T) {
	tests := []struct {
		accept      string
		contentType string
		encoding    string
	}{
		{"identity", "image/jpg", "identity"},
		{"identity", "", "identity"},
		{"", "text/html", "identity"},
		{"gzip", "text/html", "gzip"},
		{"compress", "text/html", "compress"},
		{"deflate", "application/json", "deflate"},
		{"gzip;q=1.0, identity", "text/html", "gzip"},
		{"bogomogo", "text/html", ""},
	}
	for i, test := range tests {
		r, err := http.NewRequest("GET", "http://localhost", nil)
		if err != nil {
			t.Fatal(err)
		}
		if test.accept != "" {
			r.Header.Add("Accept-Encoding", test.accept)
		}
		w := responsewriter.NewResponseWriter()
		Compress(func(w http.ResponseWriter, r *http.Request) {
			if test.contentType != "" {
				w.Header().Add("Content-Type", test.contentType)
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("oi"))
		})(w, r)
		var buf []byte
		switch ce := w.Header().Get("Content-Encoding"); ce {
		case "identity":
			buf = w.Bytes()
		case "gzip":
			gr, err := gzip.NewReader(w)
			if err != nil {
				t.Fatal(i, err)
			}
			buf, err = ioutil.ReadAll(gr)
			if err != nil {
				t.Fatal(i, err)
			}
			gr.Close()
		case "compress":
			lr := lzw.NewReader(w, lzw.LSB, 8)
			buf, err = ioutil.ReadAll(lr)
			if err != nil {
				t.Fatal(i, err)
			}
			lr.Close()
		case "deflate":
			fr := flate.NewReader(w)
			buf, err = ioutil.ReadAll(fr)
			if err != nil {
				t.Fatal(i, err)
			}
			fr.Close()
		default:
			if test.encoding == "" {
				if w.ResponseCode() != http.StatusInternalServerError {
					t.Fatal(i, "wrong response code", w.ResponseCode())
				}
				continue
			}
			t.Fatal(i, "invalid content-encoding", ce)
		}
		if ce := w.Header().Get("Content-Encoding"); ce != test.encoding {
			t.Fatal(i, "wrong encoding", ce)
		}
		if string(buf) != "oi" {
			t.Fatal(i, "invalid response", string(buf))
		}
	}
}

func TestEncoding(t *testing.T) {
	tests := []struct {
		accept string
		want   string
	}{
		{"", "identity"},
		{"gzip", "gzip"},
		{"gzip, deflate", "gzip"},
		{"deflate;q=0.5, gzip;q=1.0", "deflate"},
		{"*", "gzip"},
		{"br", ""},
		{"br, gzip", "gzip"},
	}
	for i, test := range tests {
		r, err := http.NewRequest("GET", "http://localhost", nil)
		if err != nil {
			t.Fatal(err)
		}
		if test.accept != "" {
			r.Header.Add("Accept-Encoding", test.accept)
		}
		if enc := encoding(r); enc != test.want {
			t.Fatal(i, "wrong encoding", enc)
		}
	}
}

func TestDoCompress(t *testing.T) {
	tests := []struct {
		contentType string
		want        bool
	}{
		{"", false},
		{"text/html", true},
		{"text/html; charset=utf-8", true},
		{"application/json", true},
		{"image/jpg", false},
		{"image/bmp", true},
		{"bogus", false},
	}
	for i, test := range tests {
		h := make(http.Header)
		if test.contentType != "" {
			h.Add("Content-Type", test.contentType)
		}
		if doCompress(h) != test.want {
			t.Fatal(i, "wrong answer for", test.contentType)
		}
	}
}
