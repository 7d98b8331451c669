// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"gdiexample/circle"
	"gdiexample/driver/headless"
	"gdiexample/internal/config"
)

func TestHeadless(t *testing.T) {
	cfg := config.Default()
	cfg.Driver = "headless"
	cfg.Frames = 5
	d, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	h, ok := d.(*headless.Driver)
	if !ok {
		t.Fatalf("New returned %T, want *headless.Driver", d)
	}
	if h.FrameLimit != 5 {
		t.Errorf("FrameLimit = %d, want 5", h.FrameLimit)
	}
	if h.Snapshot != nil {
		t.Error("Snapshot set without a snapshot path")
	}
}

func TestUnknownDriver(t *testing.T) {
	cfg := config.Default()
	cfg.Driver = "wayland"
	if _, err := New(cfg); err == nil {
		t.Error("New with an unknown driver succeeded")
	}
}

func TestSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.bmp")
	cfg := config.Default()
	cfg.Driver = "headless"
	cfg.Snapshot = path
	d, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	const w, h = 20, 10
	if err := d.(*headless.Driver).Snapshot(circle.NewImage(circle.New(w, h), w, h)); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	m, err := bmp.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if got := m.Bounds(); got != image.Rect(0, 0, w, h) {
		t.Fatalf("bounds = %v, want %v", got, image.Rect(0, 0, w, h))
	}
	grey := color.RGBA{64, 64, 64, 255}
	black := color.RGBA{0, 0, 0, 255}
	for _, tc := range []struct {
		x, y int
		want color.RGBA
	}{
		{w / 2, h / 2, grey},
		{0, 0, black},
		{w - 1, h - 1, black},
	} {
		if got := color.RGBAModel.Convert(m.At(tc.x, tc.y)); got != tc.want {
			t.Errorf("pixel (%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}
