// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Gdiexample opens an 800×600 window showing a grey disc that is
// regenerated to fit the window whenever it is resized.
//
// Usage:
//
//	gdiexample
//
// It takes no arguments. These environment variables adjust it:
//
//	GDIEXAMPLE_DRIVER     auto (default) or headless
//	GDIEXAMPLE_LOG        zap (default), logrus, zerolog or gokit
//	GDIEXAMPLE_LOG_LEVEL  info (default) or debug
//	GDIEXAMPLE_PROCESSOR  preferred processor of the UI thread (default 0)
//	GDIEXAMPLE_FRAMES     headless only: close after this many frames
//	GDIEXAMPLE_SNAPSHOT   headless only: write the last frame to this BMP file
//
// The exit status is 0 after the window is closed, 1 if the window
// class cannot be registered, 2 if the window cannot be created and 3
// if the environment is invalid.
package main

import (
	"fmt"
	"os"

	"gdiexample/app"
	"gdiexample/driver"
	"gdiexample/driver/headless"
	"gdiexample/internal/config"
	"gdiexample/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.FromEnv(os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gdiexample: %v\n", err)
		return app.ExitConfig
	}
	log, flush, err := logging.New(cfg.Log, cfg.LogLevel, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gdiexample: %v\n", err)
		return app.ExitConfig
	}
	defer flush()

	drv, err := driver.New(cfg)
	if err != nil {
		log.Error(err, "driver", "driver", cfg.Driver)
		return app.ExitRegisterClass
	}
	code := app.Run(drv, &app.Options{
		Class:     cfg.Class,
		Title:     cfg.Title,
		Pos:       cfg.Pos,
		Size:      cfg.Size,
		Processor: cfg.Processor,
		Log:       log.WithValues("driver", cfg.Driver),
	})
	if h, ok := drv.(*headless.Driver); ok && h.SnapshotErr() != nil {
		log.Error(h.SnapshotErr(), "snapshot", "path", cfg.Snapshot)
	}
	return code
}
