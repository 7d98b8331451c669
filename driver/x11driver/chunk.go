// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package x11driver

// putImageHeader is the size in bytes of a PutImage request without its data.
const putImageHeader = 24

// chunkRows returns how many rows of a width-pixel, 4 byte per pixel
// image fit in one PutImage request, given the server's maximum request
// length in 4-byte units. It returns 0 if not even one row fits.
func chunkRows(width int, maxRequestLength uint16) int {
	if width <= 0 {
		return 0
	}
	data := int(maxRequestLength)*4 - putImageHeader
	if data <= 0 {
		return 0
	}
	return data / (width * 4)
}
