// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/sirupsen/logrus"
)

type logrusSink struct {
	e    *logrus.Entry
	name string
}

var _ logr.LogSink = (*logrusSink)(nil)

func newLogrusSink(w io.Writer, v int) *logrusSink {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		DisableColors: true,
	})
	l.SetLevel(logrusLevel(v))
	return &logrusSink{e: logrus.NewEntry(l)}
}

func logrusLevel(v int) logrus.Level {
	switch {
	case v <= 0:
		return logrus.InfoLevel
	case v == 1:
		return logrus.DebugLevel
	}
	return logrus.TraceLevel
}

func (s *logrusSink) Init(logr.RuntimeInfo) {}

func (s *logrusSink) Enabled(level int) bool {
	return s.e.Logger.IsLevelEnabled(logrusLevel(level))
}

func (s *logrusSink) Info(level int, msg string, keysAndValues ...interface{}) {
	s.e.WithFields(logrus.Fields(fieldMap(keysAndValues))).Log(logrusLevel(level), msg)
}

func (s *logrusSink) Error(err error, msg string, keysAndValues ...interface{}) {
	s.e.WithError(err).WithFields(logrus.Fields(fieldMap(keysAndValues))).Error(msg)
}

func (s *logrusSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	return &logrusSink{
		e:    s.e.WithFields(logrus.Fields(fieldMap(keysAndValues))),
		name: s.name,
	}
}

func (s *logrusSink) WithName(name string) logr.LogSink {
	n := joinName(s.name, name)
	return &logrusSink{e: s.e.WithField("logger", n), name: n}
}
