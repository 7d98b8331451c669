// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows
// +build !windows

package x11driver

import (
	"image"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/geom"
	"golang.org/x/xerrors"

	"gdiexample/internal/msgqueue"
	"gdiexample/screen"
)

type class struct {
	d        *Driver
	name     string
	handler  screen.Handler
	released bool
}

func (c *class) NewWindow(opts *screen.WindowOptions) (screen.Window, error) {
	if c.released {
		return nil, xerrors.Errorf("x11driver: class %q released: %w", c.name, screen.ErrCreateWindow)
	}
	w, err := c.newWindow(opts)
	if err != nil {
		return nil, xerrors.Errorf("x11driver: window %q: %v: %w", opts.Title, err, screen.ErrCreateWindow)
	}
	w.dispatch(lifecycle.Event{From: lifecycle.StageDead, To: lifecycle.StageAlive})
	w.resize(opts.Size)
	return w, nil
}

func (c *class) newWindow(opts *screen.WindowOptions) (*window, error) {
	d := c.d
	xw, err := xproto.NewWindowId(d.xc)
	if err != nil {
		return nil, err
	}
	xg, err := xproto.NewGcontextId(d.xc)
	if err != nil {
		return nil, err
	}
	err = xproto.CreateWindowChecked(d.xc, d.xsi.RootDepth, xw, d.xsi.Root,
		int16(opts.Pos.X), int16(opts.Pos.Y), uint16(opts.Size.X), uint16(opts.Size.Y), 0,
		xproto.WindowClassInputOutput, d.xsi.RootVisual,
		xproto.CwBackPixmap|xproto.CwEventMask,
		[]uint32{
			xproto.BackPixmapNone,
			xproto.EventMaskExposure | xproto.EventMaskStructureNotify,
		},
	).Check()
	if err != nil {
		return nil, err
	}
	if err := xproto.CreateGCChecked(d.xc, xg, xproto.Drawable(xw), 0, nil).Check(); err != nil {
		xproto.DestroyWindow(d.xc, xw)
		return nil, err
	}

	xproto.ChangeProperty(d.xc, xproto.PropModeReplace, xw,
		xproto.AtomWmName, xproto.AtomString, 8, uint32(len(opts.Title)), []byte(opts.Title))
	protocols := make([]byte, 4)
	xgb.Put32(protocols, uint32(d.atomWMDeleteWindow))
	xproto.ChangeProperty(d.xc, xproto.PropModeReplace, xw,
		d.atomWMProtocols, xproto.AtomAtom, 32, 1, protocols)
	xproto.MapWindow(d.xc, xw)

	return &window{
		c:      c,
		xw:     xw,
		xg:     xg,
		events: msgqueue.Make(),
	}, nil
}

// Release closes the display connection.
func (c *class) Release() {
	if c.released {
		return
	}
	c.released = true
	c.d.close()
}

type window struct {
	c  *class
	xw xproto.Window
	xg xproto.Gcontext

	// events holds translated X events and the quit signal, in order.
	events   msgqueue.Queue
	client   image.Point
	painting bool
	released bool
}

func (w *window) Pump() (bool, error) {
	var firstErr error
	xc := w.c.d.xc
	for xc != nil {
		ev, xerr := xc.PollForEvent()
		if ev == nil && xerr == nil {
			break
		}
		if xerr != nil {
			if firstErr == nil {
				firstErr = xerrors.Errorf("x11driver: %v", xerr)
			}
			continue
		}
		w.translate(ev)
	}

	for {
		e, ok := w.events.Peek()
		if !ok {
			return false, firstErr
		}
		if _, ok := e.(msgqueue.Quit); ok {
			return true, firstErr
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

func (w *window) translate(ev xgb.Event) {
	switch ev := ev.(type) {
	case xproto.ExposeEvent:
		if ev.Window == w.xw && ev.Count == 0 {
			w.events.Send(paint.Event{External: true})
		}
	case xproto.ConfigureNotifyEvent:
		if ev.Window == w.xw {
			w.events.Send(size.Event{WidthPx: int(ev.Width), HeightPx: int(ev.Height)})
		}
	case xproto.ClientMessageEvent:
		if ev.Window != w.xw || ev.Format != 32 {
			return
		}
		if xproto.Atom(ev.Data.Data32[0]) == w.c.d.atomWMDeleteWindow {
			w.events.Send(lifecycle.Event{From: lifecycle.StageAlive, To: lifecycle.StageDead})
		}
	}
}

func (w *window) Redraw() error {
	if w.released {
		return xerrors.New("x11driver: redraw of released window")
	}
	w.dispatch(paint.Event{})
	return nil
}

func (w *window) Paint(f func(screen.Canvas) error) error {
	if !w.painting {
		return xerrors.Errorf("x11driver: Paint called outside a paint cycle: %w", screen.ErrNoPaint)
	}
	return f(canvas{w})
}

func (w *window) Quit() { w.events.Quit() }

func (w *window) Release() {
	if w.released {
		return
	}
	w.released = true
	if xc := w.c.d.xc; xc != nil {
		xproto.FreeGC(xc, w.xg)
		xproto.DestroyWindow(xc, w.xw)
	}
}

func (w *window) dispatch(e interface{}) {
	if _, ok := e.(paint.Event); ok {
		w.painting = true
		defer func() { w.painting = false }()
	}
	if w.c.handler.Handle(w, e) {
		return
	}
	// Default handling.
	if e, ok := e.(lifecycle.Event); ok && e.Crosses(lifecycle.StageAlive) == lifecycle.CrossOff {
		w.Release()
	}
}

// resize delivers a size.Event if the client area changed.
func (w *window) resize(client image.Point) {
	if client == w.client {
		return
	}
	w.client = client
	w.dispatch(size.Event{
		WidthPx:     client.X,
		HeightPx:    client.Y,
		WidthPt:     geom.Pt(client.X),
		HeightPt:    geom.Pt(client.Y),
		PixelsPerPt: 1,
	})
}

type canvas struct {
	w *window
}

func (c canvas) Copy(dp image.Point, src screen.Bitmap, sr image.Rectangle) error {
	pix := src.Pix()
	if pix == nil {
		return xerrors.New("x11driver: copy from released bitmap")
	}
	ss := src.Size()
	sr = sr.Intersect(image.Rectangle{Max: ss})
	if sr.Empty() {
		return nil
	}
	d := c.w.c.d
	rows := chunkRows(sr.Dx(), d.maxReq)
	if rows == 0 {
		return xerrors.Errorf("x11driver: %d pixel row exceeds the maximum request length", sr.Dx())
	}

	rowLen := sr.Dx() * 4
	buf := make([]byte, 0, rows*rowLen)
	for y := sr.Min.Y; y < sr.Max.Y; y += rows {
		n := rows
		if y+n > sr.Max.Y {
			n = sr.Max.Y - y
		}
		buf = buf[:0]
		for i := 0; i < n; i++ {
			o := ((y+i)*ss.X + sr.Min.X) * 4
			buf = append(buf, pix[o:o+rowLen]...)
		}
		xproto.PutImage(d.xc, xproto.ImageFormatZPixmap, xproto.Drawable(c.w.xw), c.w.xg,
			uint16(sr.Dx()), uint16(n),
			int16(dp.X), int16(dp.Y+y-sr.Min.Y),
			0, d.xsi.RootDepth, buf)
	}
	return nil
}
