// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package circle

import (
	"image"
	"image/color"
)

// Image is an image.Image view of a pixel buffer in blue, green, red,
// alpha byte order. The alpha byte is ignored, as it is by BitBlt on a
// BI_RGB bitmap, so every pixel reads back opaque.
type Image struct {
	Pix    []byte
	Stride int
	Rect   image.Rectangle
}

// NewImage returns an Image over pix, a w×h buffer. pix is not copied.
func NewImage(pix []byte, w, h int) *Image {
	return &Image{
		Pix:    pix,
		Stride: w * BytesPerPixel,
		Rect:   image.Rect(0, 0, w, h),
	}
}

func (m *Image) ColorModel() color.Model { return color.RGBAModel }

func (m *Image) Bounds() image.Rectangle { return m.Rect }

func (m *Image) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(m.Rect)) {
		return color.RGBA{}
	}
	i := m.PixOffset(x, y)
	s := m.Pix[i : i+BytesPerPixel : i+BytesPerPixel]
	return color.RGBA{R: s[2], G: s[1], B: s[0], A: 0xff}
}

// PixOffset returns the index of the first byte of pixel (x, y).
func (m *Image) PixOffset(x, y int) int {
	return (y-m.Rect.Min.Y)*m.Stride + (x-m.Rect.Min.X)*BytesPerPixel
}

// Opaque reports true: the alpha byte is never consulted.
func (m *Image) Opaque() bool { return true }
