// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows
// +build windows

package windriver

import (
	"golang.org/x/sys/windows"
	"golang.org/x/xerrors"

	"gdiexample/screen"
)

type class struct {
	d       *Driver
	name    string
	wcname  *uint16
	handler screen.Handler

	windows map[windows.Handle]*window
	// creating is the window whose CreateWindowEx call is in progress.
	creating *window
	released bool
}

func (c *class) NewWindow(opts *screen.WindowOptions) (screen.Window, error) {
	if c.released {
		return nil, xerrors.Errorf("windriver: class %q released: %w", c.name, screen.ErrCreateWindow)
	}
	title, err := windows.UTF16PtrFromString(opts.Title)
	if err != nil {
		return nil, xerrors.Errorf("windriver: window %q: %v: %w", opts.Title, err, screen.ErrCreateWindow)
	}

	w := &window{c: c}
	c.creating = w
	hwnd, err := createWindowEx(0,
		c.wcname,
		title,
		_WS_OVERLAPPEDWINDOW|_WS_VISIBLE,
		int32(opts.Pos.X), int32(opts.Pos.Y),
		int32(opts.Size.X), int32(opts.Size.Y),
		0, 0, c.d.hInstance, 0)
	c.creating = nil
	if err != nil {
		if w.hwnd != 0 {
			delete(c.windows, w.hwnd)
		}
		return nil, xerrors.Errorf("windriver: window %q: %v: %w", opts.Title, err, screen.ErrCreateWindow)
	}
	w.hwnd = hwnd
	c.windows[hwnd] = w
	return w, nil
}

func (c *class) Release() {
	if c.released {
		return
	}
	c.released = true
	// Fails while windows of the class still exist; the process is
	// about to exit in that case.
	unregisterClass(c.wcname, c.d.hInstance)
}

func (c *class) wndProc(hwnd windows.Handle, msg uint32, wParam, lParam uintptr) uintptr {
	w := c.windows[hwnd]
	if w == nil {
		if w = c.creating; w == nil {
			return defWindowProc(hwnd, msg, wParam, lParam)
		}
		w.hwnd = hwnd
		c.windows[hwnd] = w
	}

	if msg == _WM_DESTROY {
		delete(c.windows, hwnd)
		w.hwnd = 0
		return 0
	}
	e := translate(msg, lParam)
	if e == nil {
		return defWindowProc(hwnd, msg, wParam, lParam)
	}
	w.painting = msg == _WM_PAINT
	consumed := c.handler.Handle(w, e)
	w.painting = false
	if r, def := result(msg, consumed); !def {
		return r
	}
	return defWindowProc(hwnd, msg, wParam, lParam)
}

type window struct {
	c        *class
	hwnd     windows.Handle
	painting bool
	paintErr error
}

func (w *window) Pump() (bool, error) {
	var m msg
	for peekMessage(&m, 0, 0, 0, _PM_REMOVE) {
		if m.Message == _WM_QUIT {
			return true, nil
		}
		translateMessage(&m)
		dispatchMessage(&m)
	}
	return false, nil
}

func (w *window) Redraw() error {
	if w.hwnd == 0 {
		return xerrors.New("windriver: redraw of destroyed window")
	}
	var r rect
	if err := getClientRect(w.hwnd, &r); err != nil {
		return xerrors.Errorf("windriver: %w", err)
	}
	if err := invalidateRect(w.hwnd, &r, true); err != nil {
		return xerrors.Errorf("windriver: %w", err)
	}
	if err := updateWindow(w.hwnd); err != nil {
		return xerrors.Errorf("windriver: %w", err)
	}
	err := w.paintErr
	w.paintErr = nil
	return err
}

func (w *window) Paint(f func(screen.Canvas) error) error {
	if !w.painting {
		return xerrors.Errorf("windriver: Paint called outside a paint cycle: %w", screen.ErrNoPaint)
	}
	var ps paintStruct
	dc, err := beginPaint(w.hwnd, &ps)
	if err != nil {
		return xerrors.Errorf("windriver: %v: %w", err, screen.ErrNoPaint)
	}
	defer endPaint(w.hwnd, &ps)
	if err := f(canvas{dc: dc}); err != nil {
		if w.paintErr == nil {
			w.paintErr = err
		}
		return err
	}
	return nil
}

func (w *window) Quit() { postQuitMessage(0) }

func (w *window) Release() {
	if w.hwnd == 0 {
		return
	}
	// WM_DESTROY clears hwnd.
	destroyWindow(w.hwnd)
}
