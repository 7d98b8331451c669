// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app runs the demo: one window whose client area shows a grey
// disc, regenerated whenever the window is resized and repainted on
// every pass of a busy event loop.
package app // import "gdiexample/app"

import (
	"image"
	"runtime"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/xerrors"

	"gdiexample/screen"
)

// Process exit codes.
const (
	ExitOK            = 0
	ExitRegisterClass = 1
	ExitCreateWindow  = 2
	// ExitConfig is returned by the command when its configuration is invalid.
	ExitConfig = 3
)

// Options configure Run.
type Options struct {
	Class string
	Title string
	Pos   image.Point
	Size  image.Point

	// Processor is the preferred processor of the UI thread, if the
	// driver supports pinning.
	Processor int

	Log            logr.Logger
	TracerProvider trace.TracerProvider
}

// Run registers the window class, creates the window and pumps its
// events until the window is closed. It returns a process exit code.
//
// Run locks the calling goroutine to its OS thread for its duration:
// every window is bound to the thread that created it.
func Run(drv screen.Driver, opts *Options) int {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	log := opts.Log
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	tp := opts.TracerProvider
	if tp == nil {
		tp = trace.NewNoopTracerProvider()
	}

	if p, ok := drv.(screen.ProcessorPinner); ok {
		if err := p.PinProcessor(opts.Processor); err != nil {
			// Only a hint.
			log.V(1).Info("pin processor", "processor", opts.Processor, "error", err.Error())
		}
	}

	h := newHandler(drv, opts.Size, log.WithName("handler"), tp.Tracer("gdiexample/app"))
	defer h.release()

	class, err := drv.Register(opts.Class, h)
	if err != nil {
		log.Error(err, "register window class", "class", opts.Class)
		return exitCode(err, ExitRegisterClass)
	}
	defer class.Release()

	w, err := class.NewWindow(&screen.WindowOptions{
		Title: opts.Title,
		Pos:   opts.Pos,
		Size:  opts.Size,
	})
	if err != nil {
		log.Error(err, "create window", "title", opts.Title)
		return exitCode(err, ExitCreateWindow)
	}
	defer w.Release()

	log.Info("window created", "class", opts.Class, "width", opts.Size.X, "height", opts.Size.Y)
	loop(w, log)
	log.Info("quit")
	return ExitOK
}

// loop alternates between draining the window's events and forcing a
// full repaint until the quit signal arrives.
func loop(w screen.Window, log logr.Logger) {
	for {
		quit, err := w.Pump()
		if err != nil {
			log.Error(err, "pump")
		}
		if quit {
			return
		}
		// TODO: stop redrawing while the window is minimized.
		if err := w.Redraw(); err != nil {
			log.Error(err, "redraw")
		}
	}
}

// exitCode maps a startup error to its exit code. Errors that wrap
// neither sentinel map to def.
func exitCode(err error, def int) int {
	switch {
	case xerrors.Is(err, screen.ErrRegisterClass):
		return ExitRegisterClass
	case xerrors.Is(err, screen.ErrCreateWindow):
		return ExitCreateWindow
	}
	return def
}
