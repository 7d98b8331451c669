// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package windriver provides the Windows driver: Win32 windows and GDI
// device-independent bitmaps.
package windriver // import "gdiexample/driver/windriver"

/*
Implementation Details

A window belongs to the thread that created it, and its window
procedure only ever runs on that thread, during DispatchMessage or
during a SendMessage-style call such as CreateWindowEx or UpdateWindow
made from that thread. The caller of Register must therefore keep its
goroutine locked to one OS thread for as long as the class is in use.

Each registered class owns one window procedure created with
windows.NewCallback. The procedure finds its Go window in the class's
window map. The map entry is made on the first message a new window
receives, which arrives inside CreateWindowEx before it returns the
HWND: the window under construction is parked on the class until then.

Messages become events:

	WM_CREATE      lifecycle.Event{From: StageDead, To: StageAlive}
	WM_CLOSE       lifecycle.Event{From: StageAlive, To: StageDead}
	WM_SIZE        size.Event (client width and height from lParam)
	WM_PAINT       paint.Event; Window.Paint brackets BeginPaint/EndPaint
	WM_ERASEBKGND  screen.EraseEvent

An event the handler does not consume falls through to DefWindowProc.

Bitmaps are DIB sections: 32 bits per pixel, BI_RGB, negative height
for top-down rows. GDI owns their pixel memory, which stays valid until
DeleteObject. Canvas.Copy selects the bitmap into a memory DC
compatible with the paint DC and BitBlts it with SRCCOPY.
*/
