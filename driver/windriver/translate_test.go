// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package windriver

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"gdiexample/screen"
)

func TestTranslate(t *testing.T) {
	testCases := []struct {
		name   string
		msg    uint32
		lParam uintptr
		want   interface{}
	}{
		{"create", _WM_CREATE, 0, lifecycle.Event{From: lifecycle.StageDead, To: lifecycle.StageAlive}},
		{"close", _WM_CLOSE, 0, lifecycle.Event{From: lifecycle.StageAlive, To: lifecycle.StageDead}},
		{"size", _WM_SIZE, 300<<16 | 400, size.Event{WidthPx: 400, HeightPx: 300, WidthPt: 400, HeightPt: 300, PixelsPerPt: 1}},
		{"size max", _WM_SIZE, 0xffff<<16 | 0xffff, size.Event{WidthPx: 0xffff, HeightPx: 0xffff, WidthPt: 0xffff, HeightPt: 0xffff, PixelsPerPt: 1}},
		{"minimized", _WM_SIZE, 0, size.Event{PixelsPerPt: 1}},
		{"erase", _WM_ERASEBKGND, 0, screen.EraseEvent{}},
		{"paint", _WM_PAINT, 0, paint.Event{}},
		{"destroy", _WM_DESTROY, 0, nil},
		{"quit", _WM_QUIT, 0, nil},
		{"mousemove", 0x0200, 0x00100010, nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := translate(tc.msg, tc.lParam)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("translate(%#x, %#x) (-want +got):\n%s", tc.msg, tc.lParam, diff)
			}
		})
	}
}

func TestResult(t *testing.T) {
	testCases := []struct {
		name     string
		msg      uint32
		consumed bool
		wantR    uintptr
		wantDef  bool
	}{
		{"create", _WM_CREATE, true, 0, false},
		{"create unconsumed", _WM_CREATE, false, 0, false},
		// DefWindowProc would destroy the window.
		{"close", _WM_CLOSE, true, 0, false},
		{"close unconsumed", _WM_CLOSE, false, 0, true},
		{"erase", _WM_ERASEBKGND, true, 1, false},
		{"erase unconsumed", _WM_ERASEBKGND, false, 0, true},
		{"size", _WM_SIZE, true, 0, false},
		{"paint", _WM_PAINT, true, 0, false},
		// DefWindowProc validates the update region.
		{"paint unconsumed", _WM_PAINT, false, 0, true},
	}
	for _, tc := range testCases {
		r, def := result(tc.msg, tc.consumed)
		if r != tc.wantR || def != tc.wantDef {
			t.Errorf("%s: result(%#x, %v) = %d, %v; want %d, %v", tc.name, tc.msg, tc.consumed, r, def, tc.wantR, tc.wantDef)
		}
	}
}
