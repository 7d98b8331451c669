// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/rs/zerolog"
)

type zerologSink struct {
	l    zerolog.Logger
	name string
}

var _ logr.LogSink = (*zerologSink)(nil)

func newZerologSink(w io.Writer, v int) *zerologSink {
	l := zerolog.New(w).With().Timestamp().Logger().Level(zerologLevel(v))
	return &zerologSink{l: l}
}

func zerologLevel(v int) zerolog.Level {
	switch {
	case v <= 0:
		return zerolog.InfoLevel
	case v == 1:
		return zerolog.DebugLevel
	}
	return zerolog.TraceLevel
}

func (s *zerologSink) Init(logr.RuntimeInfo) {}

func (s *zerologSink) Enabled(level int) bool {
	return s.l.GetLevel() <= zerologLevel(level)
}

func (s *zerologSink) Info(level int, msg string, keysAndValues ...interface{}) {
	s.l.WithLevel(zerologLevel(level)).Fields(fieldMap(keysAndValues)).Msg(msg)
}

func (s *zerologSink) Error(err error, msg string, keysAndValues ...interface{}) {
	s.l.Error().Err(err).Fields(fieldMap(keysAndValues)).Msg(msg)
}

func (s *zerologSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	return &zerologSink{
		l:    s.l.With().Fields(fieldMap(keysAndValues)).Logger(),
		name: s.name,
	}
}

func (s *zerologSink) WithName(name string) logr.LogSink {
	n := joinName(s.name, name)
	return &zerologSink{l: s.l.With().Str("logger", n).Logger(), name: n}
}
