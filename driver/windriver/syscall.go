// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows
// +build windows

package windriver

import (
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/xerrors"
)

type point struct {
	X, Y int32
}

type rect struct {
	Left, Top, Right, Bottom int32
}

type msg struct {
	Hwnd     windows.Handle
	Message  uint32
	Wparam   uintptr
	Lparam   uintptr
	Time     uint32
	Pt       point
	LPrivate uint32
}

type wndClassEx struct {
	CbSize        uint32
	Style         uint32
	LpfnWndProc   uintptr
	CbClsExtra    int32
	CbWndExtra    int32
	HInstance     windows.Handle
	HIcon         windows.Handle
	HCursor       windows.Handle
	HbrBackground windows.Handle
	LpszMenuName  *uint16
	LpszClassName *uint16
	HIconSm       windows.Handle
}

type paintStruct struct {
	Hdc         windows.Handle
	FErase      int32
	RcPaint     rect
	FRestore    int32
	FIncUpdate  int32
	RgbReserved [32]byte
}

type bitmapInfoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

type rgbQuad struct {
	Blue, Green, Red, Reserved byte
}

type bitmapInfo struct {
	Header bitmapInfoHeader
	Colors [1]rgbQuad
}

const (
	_WS_OVERLAPPED       = 0x00000000
	_WS_CAPTION          = 0x00C00000
	_WS_SYSMENU          = 0x00080000
	_WS_THICKFRAME       = 0x00040000
	_WS_MINIMIZEBOX      = 0x00020000
	_WS_MAXIMIZEBOX      = 0x00010000
	_WS_VISIBLE          = 0x10000000
	_WS_OVERLAPPEDWINDOW = _WS_OVERLAPPED | _WS_CAPTION | _WS_SYSMENU | _WS_THICKFRAME |
		_WS_MINIMIZEBOX | _WS_MAXIMIZEBOX

	_PM_REMOVE = 0x0001

	_COLOR_BACKGROUND = 1
	_IDC_ARROW        = 32512

	_BI_RGB         = 0
	_DIB_RGB_COLORS = 0
	_SRCCOPY        = 0x00CC0020

	// The pseudo handle GetCurrentThread returns.
	_currentThread = ^uintptr(1)
)

var (
	kernel32                 = windows.NewLazySystemDLL("kernel32.dll")
	_GetModuleHandleW        = kernel32.NewProc("GetModuleHandleW")
	_SetThreadIdealProcessor = kernel32.NewProc("SetThreadIdealProcessor")

	user32            = windows.NewLazySystemDLL("user32.dll")
	_BeginPaint       = user32.NewProc("BeginPaint")
	_CreateWindowEx   = user32.NewProc("CreateWindowExW")
	_DefWindowProc    = user32.NewProc("DefWindowProcW")
	_DestroyWindow    = user32.NewProc("DestroyWindow")
	_DispatchMessage  = user32.NewProc("DispatchMessageW")
	_EndPaint         = user32.NewProc("EndPaint")
	_GetClientRect    = user32.NewProc("GetClientRect")
	_InvalidateRect   = user32.NewProc("InvalidateRect")
	_LoadCursor       = user32.NewProc("LoadCursorW")
	_PeekMessage      = user32.NewProc("PeekMessageW")
	_PostQuitMessage  = user32.NewProc("PostQuitMessage")
	_RegisterClassExW = user32.NewProc("RegisterClassExW")
	_TranslateMessage = user32.NewProc("TranslateMessage")
	_UnregisterClass  = user32.NewProc("UnregisterClassW")
	_UpdateWindow     = user32.NewProc("UpdateWindow")

	gdi32               = windows.NewLazySystemDLL("gdi32.dll")
	_BitBlt             = gdi32.NewProc("BitBlt")
	_CreateCompatibleDC = gdi32.NewProc("CreateCompatibleDC")
	_CreateDIBSection   = gdi32.NewProc("CreateDIBSection")
	_DeleteDC           = gdi32.NewProc("DeleteDC")
	_DeleteObject       = gdi32.NewProc("DeleteObject")
	_SelectObject       = gdi32.NewProc("SelectObject")
)

func getModuleHandle() (windows.Handle, error) {
	h, _, err := _GetModuleHandleW.Call(0)
	if h == 0 {
		return 0, xerrors.Errorf("GetModuleHandleW: %w", err)
	}
	return windows.Handle(h), nil
}

func setThreadIdealProcessor(n uint32) error {
	r, _, err := _SetThreadIdealProcessor.Call(_currentThread, uintptr(n))
	if uint32(r) == 0xFFFFFFFF {
		return xerrors.Errorf("SetThreadIdealProcessor(%d): %w", n, err)
	}
	return nil
}

func beginPaint(hwnd windows.Handle, ps *paintStruct) (windows.Handle, error) {
	hdc, _, err := _BeginPaint.Call(uintptr(hwnd), uintptr(unsafe.Pointer(ps)))
	if hdc == 0 {
		return 0, xerrors.Errorf("BeginPaint: %w", err)
	}
	return windows.Handle(hdc), nil
}

func createWindowEx(dwExStyle uint32, lpClassName, lpWindowName *uint16, dwStyle uint32, x, y, w, h int32, hWndParent, hMenu, hInstance windows.Handle, lpParam uintptr) (windows.Handle, error) {
	hwnd, _, err := _CreateWindowEx.Call(
		uintptr(dwExStyle),
		uintptr(unsafe.Pointer(lpClassName)),
		uintptr(unsafe.Pointer(lpWindowName)),
		uintptr(dwStyle),
		uintptr(x), uintptr(y),
		uintptr(w), uintptr(h),
		uintptr(hWndParent),
		uintptr(hMenu),
		uintptr(hInstance),
		lpParam)
	if hwnd == 0 {
		return 0, xerrors.Errorf("CreateWindowExW: %w", err)
	}
	return windows.Handle(hwnd), nil
}

func defWindowProc(hwnd windows.Handle, msg uint32, wparam, lparam uintptr) uintptr {
	r, _, _ := _DefWindowProc.Call(uintptr(hwnd), uintptr(msg), wparam, lparam)
	return r
}

func destroyWindow(hwnd windows.Handle) error {
	r, _, err := _DestroyWindow.Call(uintptr(hwnd))
	if r == 0 {
		return xerrors.Errorf("DestroyWindow: %w", err)
	}
	return nil
}

func dispatchMessage(m *msg) {
	_DispatchMessage.Call(uintptr(unsafe.Pointer(m)))
}

func endPaint(hwnd windows.Handle, ps *paintStruct) {
	_EndPaint.Call(uintptr(hwnd), uintptr(unsafe.Pointer(ps)))
}

func getClientRect(hwnd windows.Handle, r *rect) error {
	ok, _, err := _GetClientRect.Call(uintptr(hwnd), uintptr(unsafe.Pointer(r)))
	if ok == 0 {
		return xerrors.Errorf("GetClientRect: %w", err)
	}
	return nil
}

func invalidateRect(hwnd windows.Handle, r *rect, erase bool) error {
	var e uintptr
	if erase {
		e = 1
	}
	ok, _, err := _InvalidateRect.Call(uintptr(hwnd), uintptr(unsafe.Pointer(r)), e)
	if ok == 0 {
		return xerrors.Errorf("InvalidateRect: %w", err)
	}
	return nil
}

func loadCursor(curID uint16) (windows.Handle, error) {
	h, _, err := _LoadCursor.Call(0, uintptr(curID))
	if h == 0 {
		return 0, xerrors.Errorf("LoadCursorW: %w", err)
	}
	return windows.Handle(h), nil
}

func peekMessage(m *msg, hwnd windows.Handle, wMsgFilterMin, wMsgFilterMax, wRemoveMsg uint32) bool {
	r, _, _ := _PeekMessage.Call(uintptr(unsafe.Pointer(m)), uintptr(hwnd), uintptr(wMsgFilterMin), uintptr(wMsgFilterMax), uintptr(wRemoveMsg))
	return r != 0
}

func postQuitMessage(exitCode uintptr) {
	_PostQuitMessage.Call(exitCode)
}

func registerClassEx(cls *wndClassEx) (uint16, error) {
	a, _, err := _RegisterClassExW.Call(uintptr(unsafe.Pointer(cls)))
	if a == 0 {
		return 0, xerrors.Errorf("RegisterClassExW: %w", err)
	}
	return uint16(a), nil
}

func translateMessage(m *msg) {
	_TranslateMessage.Call(uintptr(unsafe.Pointer(m)))
}

func unregisterClass(name *uint16, hInst windows.Handle) error {
	r, _, err := _UnregisterClass.Call(uintptr(unsafe.Pointer(name)), uintptr(hInst))
	if r == 0 {
		return xerrors.Errorf("UnregisterClassW: %w", err)
	}
	return nil
}

func updateWindow(hwnd windows.Handle) error {
	r, _, err := _UpdateWindow.Call(uintptr(hwnd))
	if r == 0 {
		return xerrors.Errorf("UpdateWindow: %w", err)
	}
	return nil
}

func bitBlt(hdcDest windows.Handle, xDest, yDest, w, h int32, hdcSrc windows.Handle, xSrc, ySrc int32, rop uint32) error {
	r, _, err := _BitBlt.Call(uintptr(hdcDest), uintptr(xDest), uintptr(yDest), uintptr(w), uintptr(h),
		uintptr(hdcSrc), uintptr(xSrc), uintptr(ySrc), uintptr(rop))
	if r == 0 {
		return xerrors.Errorf("BitBlt: %w", err)
	}
	return nil
}

func createCompatibleDC(hdc windows.Handle) (windows.Handle, error) {
	r, _, err := _CreateCompatibleDC.Call(uintptr(hdc))
	if r == 0 {
		return 0, xerrors.Errorf("CreateCompatibleDC: %w", err)
	}
	return windows.Handle(r), nil
}

func createDIBSection(hdc windows.Handle, bmi *bitmapInfo, usage uint32, bits **byte, section windows.Handle, offset uint32) (windows.Handle, error) {
	r, _, err := _CreateDIBSection.Call(uintptr(hdc), uintptr(unsafe.Pointer(bmi)), uintptr(usage),
		uintptr(unsafe.Pointer(bits)), uintptr(section), uintptr(offset))
	if r == 0 {
		return 0, xerrors.Errorf("CreateDIBSection: %w", err)
	}
	return windows.Handle(r), nil
}

func deleteDC(hdc windows.Handle) error {
	r, _, err := _DeleteDC.Call(uintptr(hdc))
	if r == 0 {
		return xerrors.Errorf("DeleteDC: %w", err)
	}
	return nil
}

func deleteObject(h windows.Handle) error {
	r, _, err := _DeleteObject.Call(uintptr(h))
	if r == 0 {
		return xerrors.Errorf("DeleteObject: %w", err)
	}
	return nil
}

func selectObject(hdc, h windows.Handle) (windows.Handle, error) {
	r, _, err := _SelectObject.Call(uintptr(hdc), uintptr(h))
	if r == 0 {
		return 0, xerrors.Errorf("SelectObject: %w", err)
	}
	return windows.Handle(r), nil
}
