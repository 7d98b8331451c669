// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package screen defines the platform surface the demo is written
// against: window classes, windows, device-independent bitmaps and the
// drawing contexts that copy bitmaps onto windows.
//
// A Driver implements this surface for one platform. Every method must
// be called from the single OS thread that registered the class, and
// every event is delivered to the Handler on that same thread, so none
// of the types here are safe for concurrent use.
//
// Events delivered to a Handler are values of these types:
//
//   - lifecycle.Event crossing on lifecycle.StageAlive: the window was created.
//   - lifecycle.Event crossing off lifecycle.StageAlive: the user asked to close it.
//   - size.Event: the client area changed size.
//   - paint.Event: the client area needs painting; call Window.Paint.
//   - EraseEvent: the background is about to be erased.
//
// The lifecycle, size and paint types are those of golang.org/x/mobile/event.
package screen // import "gdiexample/screen"

import (
	"image"

	"golang.org/x/xerrors"
)

// Driver is a platform's windowing and graphics subsystem.
type Driver interface {
	// Register registers a window class whose windows deliver their
	// events to h. Errors wrap ErrRegisterClass.
	Register(class string, h Handler) (Class, error)

	// NewBitmap allocates a size.X×size.Y, 32 bits per pixel, top-down
	// bitmap. Its pixel storage is owned by the driver.
	NewBitmap(size image.Point) (Bitmap, error)
}

// Class is a registered window class.
type Class interface {
	// NewWindow creates a window of this class. The creation event is
	// delivered before NewWindow returns. Errors wrap ErrCreateWindow.
	NewWindow(opts *WindowOptions) (Window, error)

	// Release unregisters the class. Its windows must already be released.
	Release()
}

// WindowOptions are the creation parameters of a window.
type WindowOptions struct {
	Title string
	Pos   image.Point
	// Size is the requested window size. Whether it includes the frame
	// depends on the driver: Win32 counts the frame, X11 windows have
	// none, so there it is the client area.
	Size image.Point
}

// Window is a top-level, resizable, visible window.
type Window interface {
	// Pump dispatches every pending event to the window's Handler
	// without blocking. It reports whether the quit signal posted by
	// Quit was reached.
	Pump() (quit bool, err error)

	// Redraw invalidates the whole client area and paints it before
	// returning.
	Redraw() error

	// Paint brackets one paint cycle: f receives a Canvas onto the
	// client area that is valid until f returns. Paint may only be
	// called while handling a paint.Event. If the cycle cannot be
	// started, f is not called and the error wraps ErrNoPaint.
	Paint(f func(Canvas) error) error

	// Quit posts the quit signal. Events already queued are still
	// dispatched before Pump reports it.
	Quit()

	// Release destroys the window.
	Release()
}

// Bitmap is a device-independent bitmap.
type Bitmap interface {
	// Size returns the bitmap's width and height in pixels.
	Size() image.Point

	// Pix returns the bitmap's pixel storage: Size().X*Size().Y pixels,
	// top-down, four bytes each in blue, green, red, alpha order.
	// The slice is invalid after Release.
	Pix() []byte

	// Release frees the bitmap.
	Release()
}

// Canvas is a drawing context onto a window, valid for one paint cycle.
type Canvas interface {
	// Copy copies the sr part of src so that sr.Min lands on dp,
	// replacing the destination pixels.
	Copy(dp image.Point, src Bitmap, sr image.Rectangle) error
}

// Handler receives a window's events.
type Handler interface {
	// Handle reports whether e was consumed. Events that are not
	// consumed get the platform's default handling.
	Handle(w Window, e interface{}) bool
}

// HandlerFunc adapts a function to a Handler.
type HandlerFunc func(w Window, e interface{}) bool

func (f HandlerFunc) Handle(w Window, e interface{}) bool { return f(w, e) }

// EraseEvent is delivered before the platform erases the client area's
// background. Consuming it suppresses the erase.
type EraseEvent struct{}

// ProcessorPinner is implemented by drivers that can bind the calling
// OS thread to a preferred processor.
type ProcessorPinner interface {
	PinProcessor(n int) error
}

var (
	ErrRegisterClass = xerrors.New("window class registration failed")
	ErrCreateWindow  = xerrors.New("window creation failed")
	ErrNoPaint       = xerrors.New("paint cycle not started")
)
