// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package x11driver provides the X11 driver, built on the pure Go X
// protocol bindings of github.com/BurntSushi/xgb.
//
// Bitmaps live in client memory and are uploaded with PutImage in
// ZPixmap format, which on a little-endian 24 or 32 bit TrueColor visual
// has the same blue, green, red, pad byte order as a Win32 DIB. Windows
// are created with no background pixmap, so the server never clears
// them and no screen.EraseEvent is ever delivered.
package x11driver // import "gdiexample/driver/x11driver"
