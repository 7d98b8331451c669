// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"gdiexample/driver/windriver"
	"gdiexample/screen"
)

func native() (screen.Driver, error) { return windriver.New() }
