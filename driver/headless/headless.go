// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package headless provides a driver whose windows and bitmaps live in
// memory. It follows the Win32 message ordering: creation, then the
// initial size, then erase-before-paint on every redraw.
package headless // import "gdiexample/driver/headless"

import (
	"image"

	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/geom"
	"golang.org/x/xerrors"

	"gdiexample/circle"
	"gdiexample/internal/msgqueue"
	"gdiexample/screen"
)

// Driver is an in-memory screen.Driver. The zero value is ready to use.
type Driver struct {
	// FailRegister and FailCreate make Register and Class.NewWindow fail.
	FailRegister bool
	FailCreate   bool

	// FailBitmaps is the number of upcoming NewBitmap calls that fail.
	FailBitmaps int

	// FailPaints is the number of upcoming Window.Paint calls whose
	// paint cycle cannot be started.
	FailPaints int

	// FrameLimit, if positive, makes a window ask to be closed once it
	// has been redrawn that many times.
	FrameLimit int

	// Snapshot, if non-nil, is called with the client area of each
	// window as it is released.
	Snapshot func(image.Image) error

	// Border is subtracted from the window size to give the client area.
	Border image.Point

	allocated int
	live      int
	windows   []*Window
	pinned    int
	snapErr   error
}

// Allocated returns the number of bitmaps allocated so far.
func (d *Driver) Allocated() int { return d.allocated }

// Live returns the number of bitmaps allocated and not yet released.
func (d *Driver) Live() int { return d.live }

// Windows returns every window created so far, released or not.
func (d *Driver) Windows() []*Window { return d.windows }

// SnapshotErr returns the first error returned by Snapshot.
func (d *Driver) SnapshotErr() error { return d.snapErr }

// Pinned returns the processor passed to the last PinProcessor call.
func (d *Driver) Pinned() int { return d.pinned }

func (d *Driver) PinProcessor(n int) error {
	d.pinned = n
	return nil
}

func (d *Driver) Register(name string, h screen.Handler) (screen.Class, error) {
	if d.FailRegister {
		return nil, xerrors.Errorf("headless: register %q: %w", name, screen.ErrRegisterClass)
	}
	return &class{d: d, name: name, handler: h}, nil
}

func (d *Driver) NewBitmap(sz image.Point) (screen.Bitmap, error) {
	if d.FailBitmaps > 0 {
		d.FailBitmaps--
		return nil, xerrors.Errorf("headless: bitmap %v: out of memory", sz)
	}
	if sz.X <= 0 || sz.Y <= 0 {
		return nil, xerrors.Errorf("headless: bitmap %v: empty size", sz)
	}
	d.allocated++
	d.live++
	return &bitmap{d: d, size: sz, pix: make([]byte, circle.Len(sz.X, sz.Y))}, nil
}

type bitmap struct {
	d    *Driver
	size image.Point
	pix  []byte
}

func (b *bitmap) Size() image.Point { return b.size }
func (b *bitmap) Pix() []byte       { return b.pix }

func (b *bitmap) Release() {
	if b.pix == nil {
		return
	}
	b.pix = nil
	b.d.live--
}

type class struct {
	d        *Driver
	name     string
	handler  screen.Handler
	released bool
}

func (c *class) NewWindow(opts *screen.WindowOptions) (screen.Window, error) {
	if c.released {
		return nil, xerrors.Errorf("headless: class %q released: %w", c.name, screen.ErrCreateWindow)
	}
	if c.d.FailCreate {
		return nil, xerrors.Errorf("headless: window %q: %w", opts.Title, screen.ErrCreateWindow)
	}
	w := &Window{
		c:      c,
		opts:   *opts,
		events: msgqueue.Make(),
	}
	c.d.windows = append(c.d.windows, w)

	w.dispatch(lifecycle.Event{From: lifecycle.StageDead, To: lifecycle.StageAlive})
	w.resize(opts.Size.Sub(c.d.Border))
	return w, nil
}

func (c *class) Release() { c.released = true }

// Window is an in-memory window.
type Window struct {
	c    *class
	opts screen.WindowOptions

	events   msgqueue.Queue
	client   image.Point
	surface  []byte
	painting bool
	frames    int
	erased    int
	unpainted int
	released  bool
}

// Options returns the options the window was created with.
func (w *Window) Options() screen.WindowOptions { return w.opts }

// Send queues e for delivery on the next Pump, as the platform would.
// Sending a size.Event also resizes the client area.
func (w *Window) Send(e interface{}) { w.events.Send(e) }

// Close queues a close request.
func (w *Window) Close() {
	w.Send(lifecycle.Event{From: lifecycle.StageAlive, To: lifecycle.StageDead})
}

// Frames returns the number of completed redraws.
func (w *Window) Frames() int { return w.frames }

// Erased returns the number of times the default background erase ran.
func (w *Window) Erased() int { return w.erased }

// Unpainted returns the number of paint events left to default handling.
func (w *Window) Unpainted() int { return w.unpainted }

// Released reports whether the window has been destroyed.
func (w *Window) Released() bool { return w.released }

// Client returns the size of the client area.
func (w *Window) Client() image.Point { return w.client }

// Surface returns the client area's current pixels.
func (w *Window) Surface() *circle.Image {
	return circle.NewImage(w.surface, w.client.X, w.client.Y)
}

func (w *Window) Pump() (bool, error) {
	for {
		e, ok := w.events.Peek()
		if !ok {
			return false, nil
		}
		if _, ok := e.(msgqueue.Quit); ok {
			return true, nil
		}
		if w.released {
			continue
		}
		if e, ok := e.(size.Event); ok {
			w.resize(image.Point{e.WidthPx, e.HeightPx})
			continue
		}
		w.dispatch(e)
	}
}

func (w *Window) Redraw() error {
	if w.released {
		return xerrors.New("headless: redraw of released window")
	}
	if !w.c.handler.Handle(w, screen.EraseEvent{}) {
		for i := range w.surface {
			w.surface[i] = 0
		}
		w.erased++
	}
	w.painting = true
	if !w.c.handler.Handle(w, paint.Event{}) {
		w.unpainted++
	}
	w.painting = false
	w.frames++
	if l := w.c.d.FrameLimit; l > 0 && w.frames == l {
		w.Close()
	}
	return nil
}

func (w *Window) Paint(f func(screen.Canvas) error) error {
	if !w.painting {
		return xerrors.Errorf("headless: Paint called outside a paint cycle: %w", screen.ErrNoPaint)
	}
	if w.c.d.FailPaints > 0 {
		w.c.d.FailPaints--
		return xerrors.Errorf("headless: begin paint: %w", screen.ErrNoPaint)
	}
	return f(canvas{w})
}

func (w *Window) Quit() { w.events.Quit() }

func (w *Window) Release() {
	if w.released {
		return
	}
	if snap := w.c.d.Snapshot; snap != nil {
		if err := snap(w.Surface()); err != nil && w.c.d.snapErr == nil {
			w.c.d.snapErr = err
		}
	}
	w.released = true
	w.events.Release()
}

func (w *Window) dispatch(e interface{}) {
	if w.c.handler.Handle(w, e) {
		return
	}
	// Default handling.
	if e, ok := e.(lifecycle.Event); ok && e.Crosses(lifecycle.StageAlive) == lifecycle.CrossOff {
		w.Release()
	}
}

func (w *Window) resize(client image.Point) {
	if client.X < 0 {
		client.X = 0
	}
	if client.Y < 0 {
		client.Y = 0
	}
	w.client = client
	w.surface = make([]byte, circle.Len(client.X, client.Y))
	w.dispatch(size.Event{
		WidthPx:     client.X,
		HeightPx:    client.Y,
		WidthPt:     geom.Pt(client.X),
		HeightPt:    geom.Pt(client.Y),
		PixelsPerPt: 1,
	})
}

type canvas struct {
	w *Window
}

func (c canvas) Copy(dp image.Point, src screen.Bitmap, sr image.Rectangle) error {
	pix := src.Pix()
	if pix == nil {
		return xerrors.New("headless: copy from released bitmap")
	}
	ss := src.Size()
	sr = sr.Intersect(image.Rectangle{Max: ss})
	dr := sr.Add(dp.Sub(sr.Min)).Intersect(image.Rectangle{Max: c.w.client})
	sr = image.Rectangle{Min: sr.Min.Add(dr.Min.Sub(dp)), Max: sr.Min.Add(dr.Max.Sub(dp))}
	if dr.Empty() {
		return nil
	}
	n := dr.Dx() * circle.BytesPerPixel
	for y := 0; y < dr.Dy(); y++ {
		so := ((sr.Min.Y+y)*ss.X + sr.Min.X) * circle.BytesPerPixel
		do := ((dr.Min.Y+y)*c.w.client.X + dr.Min.X) * circle.BytesPerPixel
		copy(c.w.surface[do:do+n], pix[so:so+n])
	}
	return nil
}
