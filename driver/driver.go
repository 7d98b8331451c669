// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver selects the screen.Driver named by the configuration.
package driver // import "gdiexample/driver"

import (
	"image"
	"os"

	"golang.org/x/image/bmp"
	"golang.org/x/xerrors"

	"gdiexample/driver/headless"
	"gdiexample/internal/config"
	"gdiexample/screen"
)

// New returns the driver cfg.Driver names: "auto" is the platform's
// native driver.
func New(cfg config.Config) (screen.Driver, error) {
	switch cfg.Driver {
	case "auto":
		return native()
	case "headless":
		d := &headless.Driver{FrameLimit: cfg.Frames}
		if cfg.Snapshot != "" {
			path := cfg.Snapshot
			d.Snapshot = func(m image.Image) error { return WriteBMP(path, m) }
		}
		return d, nil
	}
	return nil, xerrors.Errorf("driver: unknown driver %q", cfg.Driver)
}

// WriteBMP writes m to the named file as a BMP image.
func WriteBMP(path string, m image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return xerrors.Errorf("driver: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = xerrors.Errorf("driver: %w", cerr)
		}
	}()
	if err := bmp.Encode(f, m); err != nil {
		return xerrors.Errorf("driver: encode %s: %w", path, err)
	}
	return nil
}
