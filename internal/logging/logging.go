// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging builds the program's logr.Logger on top of one of
// several structured logging backends.
//
// Verbosity follows logr: V(0) is info and V(1) is debug. Each backend
// maps those onto its own levels.
package logging

import (
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"golang.org/x/xerrors"
)

// Backends lists the supported backend names.
var Backends = []string{"zap", "logrus", "zerolog", "gokit"}

// New returns a logger writing to w through the named backend. level is
// "info" or "debug". The returned flush function writes out anything
// the backend buffers; call it before exiting.
func New(backend, level string, w io.Writer) (logr.Logger, func(), error) {
	var v int
	switch level {
	case "", "info":
		v = 0
	case "debug":
		v = 1
	default:
		return logr.Discard(), func() {}, xerrors.Errorf("logging: unknown level %q", level)
	}

	switch backend {
	case "", "zap":
		s := newZapSink(w, v)
		return logr.New(s), func() { _ = s.l.Sync() }, nil
	case "logrus":
		return logr.New(newLogrusSink(w, v)), func() {}, nil
	case "zerolog":
		return logr.New(newZerologSink(w, v)), func() {}, nil
	case "gokit":
		return logr.New(newGokitSink(w, v)), func() {}, nil
	}
	return logr.Discard(), func() {}, xerrors.Errorf("logging: unknown backend %q", backend)
}

// pairs returns keysAndValues as key/value pairs with string keys.
// A dangling key gets a placeholder value.
func pairs(keysAndValues []interface{}) ([]string, []interface{}) {
	n := (len(keysAndValues) + 1) / 2
	keys := make([]string, 0, n)
	vals := make([]interface{}, 0, n)
	for i := 0; i < len(keysAndValues); i += 2 {
		k, ok := keysAndValues[i].(string)
		if !ok {
			k = fmt.Sprint(keysAndValues[i])
		}
		var v interface{} = "(MISSING)"
		if i+1 < len(keysAndValues) {
			v = keysAndValues[i+1]
		}
		keys = append(keys, k)
		vals = append(vals, v)
	}
	return keys, vals
}

// fieldMap returns keysAndValues as a map.
func fieldMap(keysAndValues []interface{}) map[string]interface{} {
	keys, vals := pairs(keysAndValues)
	m := make(map[string]interface{}, len(keys))
	for i, k := range keys {
		m[k] = vals[i]
	}
	return m
}

// keyvals returns keysAndValues as an even-length list with string keys.
func keyvals(keysAndValues []interface{}) []interface{} {
	keys, vals := pairs(keysAndValues)
	kv := make([]interface{}, 0, 2*len(keys))
	for i, k := range keys {
		kv = append(kv, k, vals[i])
	}
	return kv
}

func joinName(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}
