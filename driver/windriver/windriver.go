// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows
// +build windows

package windriver

import (
	"image"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/xerrors"

	"gdiexample/circle"
	"gdiexample/screen"
)

// Driver is the Win32/GDI screen.Driver.
type Driver struct {
	hInstance windows.Handle
	hCursor   windows.Handle
}

var (
	_ screen.Driver          = (*Driver)(nil)
	_ screen.ProcessorPinner = (*Driver)(nil)
)

// New returns a driver for the current process's module.
func New() (*Driver, error) {
	hInstance, err := getModuleHandle()
	if err != nil {
		return nil, xerrors.Errorf("windriver: %w", err)
	}
	hCursor, err := loadCursor(_IDC_ARROW)
	if err != nil {
		return nil, xerrors.Errorf("windriver: %w", err)
	}
	return &Driver{hInstance: hInstance, hCursor: hCursor}, nil
}

// PinProcessor sets the ideal processor of the calling thread.
func (d *Driver) PinProcessor(n int) error {
	return setThreadIdealProcessor(uint32(n))
}

func (d *Driver) Register(name string, h screen.Handler) (screen.Class, error) {
	wcname, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, xerrors.Errorf("windriver: class %q: %v: %w", name, err, screen.ErrRegisterClass)
	}
	c := &class{
		d:       d,
		name:    name,
		wcname:  wcname,
		handler: h,
		windows: make(map[windows.Handle]*window),
	}
	wc := wndClassEx{
		LpfnWndProc:   windows.NewCallback(c.wndProc),
		HInstance:     d.hInstance,
		HCursor:       d.hCursor,
		HbrBackground: _COLOR_BACKGROUND,
		LpszClassName: wcname,
	}
	wc.CbSize = uint32(unsafe.Sizeof(wc))
	if _, err := registerClassEx(&wc); err != nil {
		return nil, xerrors.Errorf("windriver: class %q: %v: %w", name, err, screen.ErrRegisterClass)
	}
	return c, nil
}

func (d *Driver) NewBitmap(size image.Point) (screen.Bitmap, error) {
	h, bits, err := mkbitmap(int32(size.X), int32(size.Y))
	if err != nil {
		return nil, xerrors.Errorf("windriver: bitmap %dx%d: %w", size.X, size.Y, err)
	}
	return &bitmap{
		h:    h,
		size: size,
		pix:  unsafe.Slice(bits, circle.Len(size.X, size.Y)),
	}, nil
}
