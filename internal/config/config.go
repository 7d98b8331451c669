// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the program's settings. The defaults reproduce
// the fixed window of the demo; environment variables prefixed with
// GDIEXAMPLE_ override them. Command-line arguments are not consulted.
package config

import (
	"image"
	"strconv"
	"strings"

	"golang.org/x/xerrors"
)

// Prefix is the prefix of every environment variable read by FromEnv.
const Prefix = "GDIEXAMPLE_"

// Config is the program's configuration.
type Config struct {
	Class string
	Title string
	Pos   image.Point
	Size  image.Point

	// Processor is the preferred processor of the UI thread.
	Processor int

	// Driver is "auto" for the platform's native driver, or "headless".
	Driver string
	// Frames, when positive, closes a headless window after that many frames.
	Frames int
	// Snapshot, when set, is the path of a BMP file receiving the
	// headless window's last frame.
	Snapshot string

	// Log is the logging backend: zap, logrus, zerolog or gokit.
	Log string
	// LogLevel is info or debug.
	LogLevel string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Class:     "GDIExample",
		Title:     "GDI Example",
		Pos:       image.Pt(200, 300),
		Size:      image.Pt(800, 600),
		Processor: 0,
		Driver:    "auto",
		Log:       "zap",
		LogLevel:  "info",
	}
}

var (
	drivers   = []string{"auto", "headless"}
	backends  = []string{"zap", "logrus", "zerolog", "gokit"}
	logLevels = []string{"info", "debug"}
)

// FromEnv returns the default configuration with the overrides found
// through lookup, which has the signature of os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	c := Default()
	var err error
	str := func(name string, dst *string, allowed []string) {
		v, ok := lookup(Prefix + name)
		if !ok || err != nil {
			return
		}
		v = strings.ToLower(strings.TrimSpace(v))
		if allowed != nil && !contains(allowed, v) {
			err = xerrors.Errorf("config: %s%s=%q: want one of %s", Prefix, name, v, strings.Join(allowed, ", "))
			return
		}
		*dst = v
	}
	num := func(name string, dst *int) {
		v, ok := lookup(Prefix + name)
		if !ok || err != nil {
			return
		}
		n, perr := strconv.Atoi(strings.TrimSpace(v))
		if perr != nil || n < 0 {
			err = xerrors.Errorf("config: %s%s=%q: want a non-negative integer", Prefix, name, v)
			return
		}
		*dst = n
	}

	str("DRIVER", &c.Driver, drivers)
	str("LOG", &c.Log, backends)
	str("LOG_LEVEL", &c.LogLevel, logLevels)
	num("PROCESSOR", &c.Processor)
	num("FRAMES", &c.Frames)
	if v, ok := lookup(Prefix + "SNAPSHOT"); ok && err == nil {
		c.Snapshot = v
	}
	if err != nil {
		return Config{}, err
	}
	if (c.Frames > 0 || c.Snapshot != "") && c.Driver != "headless" {
		return Config{}, xerrors.Errorf("config: %sFRAMES and %sSNAPSHOT need %sDRIVER=headless", Prefix, Prefix, Prefix)
	}
	return c, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
