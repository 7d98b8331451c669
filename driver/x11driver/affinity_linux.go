// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package x11driver

import (
	"golang.org/x/sys/unix"
	"golang.org/x/xerrors"
)

func pinProcessor(n int) error {
	var set unix.CPUSet
	set.Set(n)
	// Pid 0 is the calling thread.
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return xerrors.Errorf("x11driver: pin to processor %d: %w", n, err)
	}
	return nil
}
