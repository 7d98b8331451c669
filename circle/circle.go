// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package circle generates the demo bitmap: a grey disc centred in an
// otherwise transparent black field.
//
// Buffers are laid out top-down, row-major, four bytes per pixel in
// blue, green, red, alpha order. That is the layout of a 32 bits per
// pixel BI_RGB device-independent bitmap, and also of a ZPixmap on a
// little-endian 24 or 32 bit TrueColor X11 visual.
package circle // import "gdiexample/circle"

import "fmt"

// BytesPerPixel is the size of one pixel in a buffer.
const BytesPerPixel = 4

// Fill is the pixel written for points on the disc, in buffer byte order.
var Fill = [BytesPerPixel]byte{64, 64, 64, 0}

// Len returns the length in bytes of a w×h buffer.
func Len(w, h int) int {
	return w * h * BytesPerPixel
}

// Radius returns the disc's centre and radius for a w×h buffer.
// All three values use integer division.
func Radius(w, h int) (cx, cy, r int) {
	cx, cy = w/2, h/2
	r = cx
	if cy < r {
		r = cy
	}
	return cx, cy, r
}

// Contains reports whether pixel (x, y) of a w×h buffer lies on the disc.
// Points exactly on the rim are on the disc.
func Contains(w, h, x, y int) bool {
	cx, cy, r := Radius(w, h)
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}

// Draw writes the disc into pix, a w×h buffer. Every byte of pix is
// written, so the result does not depend on its previous contents.
//
// Draw panics if len(pix) is not Len(w, h).
func Draw(pix []byte, w, h int) {
	if n := Len(w, h); len(pix) != n {
		panic(fmt.Sprintf("circle: buffer is %d bytes, want %d for %dx%d", len(pix), n, w, h))
	}
	cx, cy, r := Radius(w, h)
	r2 := r * r
	i := 0
	for y := 0; y < h; y++ {
		dy2 := (y - cy) * (y - cy)
		for x := 0; x < w; x++ {
			p := pix[i : i+BytesPerPixel : i+BytesPerPixel]
			if (x-cx)*(x-cx)+dy2 <= r2 {
				p[0], p[1], p[2], p[3] = Fill[0], Fill[1], Fill[2], Fill[3]
			} else {
				p[0], p[1], p[2], p[3] = 0, 0, 0, 0
			}
			i += BytesPerPixel
		}
	}
}

// New allocates a w×h buffer and draws the disc into it.
func New(w, h int) []byte {
	pix := make([]byte, Len(w, h))
	Draw(pix, w, h)
	return pix
}
