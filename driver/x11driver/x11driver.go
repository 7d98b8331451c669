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
	"golang.org/x/xerrors"

	"gdiexample/circle"
	"gdiexample/screen"
)

// Driver is the X11 screen.Driver. The zero value is ready to use; the
// display connection is made by Register.
type Driver struct {
	// Display is the display to connect to. If empty, $DISPLAY is used.
	Display string

	xc     *xgb.Conn
	xsi    *xproto.ScreenInfo
	maxReq uint16

	atomWMProtocols    xproto.Atom
	atomWMDeleteWindow xproto.Atom
}

var (
	_ screen.Driver          = (*Driver)(nil)
	_ screen.ProcessorPinner = (*Driver)(nil)
)

// New returns a driver for the default display.
func New() *Driver { return &Driver{} }

// PinProcessor restricts the calling thread to processor n.
func (d *Driver) PinProcessor(n int) error {
	return pinProcessor(n)
}

func (d *Driver) Register(name string, h screen.Handler) (screen.Class, error) {
	if err := d.connect(); err != nil {
		return nil, xerrors.Errorf("x11driver: class %q: %v: %w", name, err, screen.ErrRegisterClass)
	}
	return &class{d: d, name: name, handler: h}, nil
}

func (d *Driver) connect() error {
	if d.xc != nil {
		return nil
	}
	xc, err := xgb.NewConnDisplay(d.Display)
	if err != nil {
		return err
	}
	setup := xproto.Setup(xc)
	d.xsi = setup.DefaultScreen(xc)
	d.maxReq = setup.MaximumRequestLength
	if d.atomWMProtocols, err = internAtom(xc, "WM_PROTOCOLS"); err != nil {
		xc.Close()
		return err
	}
	if d.atomWMDeleteWindow, err = internAtom(xc, "WM_DELETE_WINDOW"); err != nil {
		xc.Close()
		return err
	}
	d.xc = xc
	return nil
}

func (d *Driver) close() {
	if d.xc == nil {
		return
	}
	d.xc.Close()
	d.xc = nil
}

func internAtom(xc *xgb.Conn, name string) (xproto.Atom, error) {
	r, err := xproto.InternAtom(xc, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, xerrors.Errorf("intern %s: %w", name, err)
	}
	if r == nil {
		return 0, xerrors.Errorf("intern %s: no reply", name)
	}
	return r.Atom, nil
}

// NewBitmap allocates a bitmap in client memory.
func (d *Driver) NewBitmap(size image.Point) (screen.Bitmap, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, xerrors.Errorf("x11driver: bitmap %v: empty size", size)
	}
	return &bitmap{size: size, pix: make([]byte, circle.Len(size.X, size.Y))}, nil
}

type bitmap struct {
	size image.Point
	pix  []byte
}

func (b *bitmap) Size() image.Point { return b.size }
func (b *bitmap) Pix() []byte       { return b.pix }
func (b *bitmap) Release()          { b.pix = nil }
