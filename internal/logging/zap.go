// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"io"

	"github.com/go-logr/logr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// zapSink is a logr.LogSink writing JSON through zap. logr verbosity v
// is zap level -v, so V(1) is zap's DebugLevel.
type zapSink struct {
	l *zap.Logger
}

var _ logr.LogSink = (*zapSink)(nil)

func newZapSink(w io.Writer, v int) *zapSink {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(ec),
		zapcore.AddSync(w),
		zapcore.Level(-v),
	)
	return &zapSink{l: zap.New(core)}
}

func (s *zapSink) Init(logr.RuntimeInfo) {}

func (s *zapSink) Enabled(level int) bool {
	return s.l.Core().Enabled(zapcore.Level(-level))
}

func (s *zapSink) Info(level int, msg string, keysAndValues ...interface{}) {
	if ce := s.l.Check(zapcore.Level(-level), msg); ce != nil {
		ce.Write(zapFields(keysAndValues)...)
	}
}

func (s *zapSink) Error(err error, msg string, keysAndValues ...interface{}) {
	s.l.Error(msg, append(zapFields(keysAndValues), zap.Error(err))...)
}

func (s *zapSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	return &zapSink{l: s.l.With(zapFields(keysAndValues)...)}
}

func (s *zapSink) WithName(name string) logr.LogSink {
	return &zapSink{l: s.l.Named(name)}
}

func zapFields(keysAndValues []interface{}) []zap.Field {
	keys, vals := pairs(keysAndValues)
	fs := make([]zap.Field, len(keys))
	for i, k := range keys {
		fs[i] = zap.Any(k, vals[i])
	}
	return fs
}
