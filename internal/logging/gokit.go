// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"io"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/go-logr/logr"
)

// gokitSink writes logfmt lines through a go-kit logger. go-kit has no
// level filtering of its own here; v is the highest verbosity written.
type gokitSink struct {
	l    log.Logger
	v    int
	name string
}

var _ logr.LogSink = (*gokitSink)(nil)

func newGokitSink(w io.Writer, v int) *gokitSink {
	l := log.NewLogfmtLogger(log.NewSyncWriter(w))
	l = log.With(l, "ts", log.DefaultTimestampUTC)
	return &gokitSink{l: l, v: v}
}

func (s *gokitSink) Init(logr.RuntimeInfo) {}

func (s *gokitSink) Enabled(lvl int) bool { return lvl <= s.v }

func (s *gokitSink) Info(lvl int, msg string, keysAndValues ...interface{}) {
	if !s.Enabled(lvl) {
		return
	}
	l := level.Info(s.l)
	if lvl > 0 {
		l = level.Debug(s.l)
	}
	_ = l.Log(s.line(msg, nil, keysAndValues)...)
}

func (s *gokitSink) Error(err error, msg string, keysAndValues ...interface{}) {
	_ = level.Error(s.l).Log(s.line(msg, err, keysAndValues)...)
}

func (s *gokitSink) line(msg string, err error, keysAndValues []interface{}) []interface{} {
	kv := make([]interface{}, 0, 6+len(keysAndValues))
	if s.name != "" {
		kv = append(kv, "logger", s.name)
	}
	kv = append(kv, "msg", msg)
	if err != nil {
		kv = append(kv, "err", err)
	}
	return append(kv, keyvals(keysAndValues)...)
}

func (s *gokitSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	return &gokitSink{l: log.With(s.l, keyvals(keysAndValues)...), v: s.v, name: s.name}
}

func (s *gokitSink) WithName(name string) logr.LogSink {
	return &gokitSink{l: s.l, v: s.v, name: joinName(s.name, name)}
}
