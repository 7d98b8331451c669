// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package windriver

import (
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/geom"

	"gdiexample/screen"
)

const (
	_WM_CREATE     = 0x0001
	_WM_DESTROY    = 0x0002
	_WM_SIZE       = 0x0005
	_WM_PAINT      = 0x000F
	_WM_CLOSE      = 0x0010
	_WM_QUIT       = 0x0012
	_WM_ERASEBKGND = 0x0014
)

// translate returns the event a window message delivers to the
// handler, or nil if it delivers none.
func translate(msg uint32, lParam uintptr) interface{} {
	switch msg {
	case _WM_CREATE:
		return lifecycle.Event{From: lifecycle.StageDead, To: lifecycle.StageAlive}
	case _WM_CLOSE:
		return lifecycle.Event{From: lifecycle.StageAlive, To: lifecycle.StageDead}
	case _WM_SIZE:
		width, height := int(lParam&0xffff), int(lParam>>16&0xffff)
		return size.Event{
			WidthPx:     width,
			HeightPx:    height,
			WidthPt:     geom.Pt(width),
			HeightPt:    geom.Pt(height),
			PixelsPerPt: 1,
		}
	case _WM_ERASEBKGND:
		return screen.EraseEvent{}
	case _WM_PAINT:
		return paint.Event{}
	}
	return nil
}

// result returns the window procedure's return value for msg once the
// handler has seen its event. If def is true the message goes on to
// DefWindowProc instead.
func result(msg uint32, consumed bool) (r uintptr, def bool) {
	switch {
	case msg == _WM_CREATE:
		return 0, false
	case !consumed:
		return 0, true
	case msg == _WM_ERASEBKGND:
		// Nonzero: the background counts as erased.
		return 1, false
	}
	return 0, false
}
