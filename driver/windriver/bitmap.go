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

	"gdiexample/screen"
)

func mkbitmap(dx, dy int32) (windows.Handle, *byte, error) {
	var bi bitmapInfo
	bi.Header.Size = uint32(unsafe.Sizeof(bi.Header))
	bi.Header.Width = dx
	bi.Header.Height = -dy // negative height to force top-down drawing
	bi.Header.Planes = 1
	bi.Header.BitCount = 32
	bi.Header.Compression = _BI_RGB
	bi.Header.SizeImage = uint32(dx * dy * 4)

	var ppvBits *byte
	bitmap, err := createDIBSection(0, &bi, _DIB_RGB_COLORS, &ppvBits, 0, 0)
	if err != nil {
		return 0, nil, err
	}
	return bitmap, ppvBits, nil
}

type bitmap struct {
	h    windows.Handle
	size image.Point
	pix  []byte
}

func (b *bitmap) Size() image.Point { return b.size }
func (b *bitmap) Pix() []byte       { return b.pix }

func (b *bitmap) Release() {
	if b.h == 0 {
		return
	}
	deleteObject(b.h)
	b.h = 0
	b.pix = nil
}

// canvas draws onto the DC of one BeginPaint/EndPaint cycle.
type canvas struct {
	dc windows.Handle
}

func (c canvas) Copy(dp image.Point, src screen.Bitmap, sr image.Rectangle) error {
	b, ok := src.(*bitmap)
	if !ok {
		return xerrors.Errorf("windriver: cannot copy from %T", src)
	}
	if b.h == 0 {
		return xerrors.New("windriver: copy from released bitmap")
	}
	return blit(c.dc, point{int32(dp.X), int32(dp.Y)}, b.h, &rect{
		Left:   int32(sr.Min.X),
		Top:    int32(sr.Min.Y),
		Right:  int32(sr.Max.X),
		Bottom: int32(sr.Max.Y),
	})
}

// blit copies sr of bitmap to dp on dc through a temporary memory DC,
// which is released before blit returns.
func blit(dc windows.Handle, dp point, bitmap windows.Handle, sr *rect) error {
	compatibleDC, err := createCompatibleDC(dc)
	if err != nil {
		return err
	}
	prevBitmap, err := selectObject(compatibleDC, bitmap)
	if err != nil {
		deleteDC(compatibleDC)
		return err
	}

	dx, dy := sr.Right-sr.Left, sr.Bottom-sr.Top
	bbErr := bitBlt(dc, dp.X, dp.Y, dx, dy, compatibleDC, sr.Left, sr.Top, _SRCCOPY)
	_, soErr := selectObject(compatibleDC, prevBitmap)
	ddcErr := deleteDC(compatibleDC)
	if bbErr != nil {
		return bbErr
	}
	if soErr != nil {
		return soErr
	}
	return ddcErr
}
