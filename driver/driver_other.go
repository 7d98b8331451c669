// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows
// +build !windows

package driver

import (
	"gdiexample/driver/x11driver"
	"gdiexample/screen"
)

func native() (screen.Driver, error) { return x11driver.New(), nil }
