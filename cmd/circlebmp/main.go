// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Circlebmp writes the gdiexample disc for a given client size as a BMP
// file.
//
// Usage:
//
//	circlebmp [-w width] [-h height] [-o file.bmp]
//
// Without -o the image is written to standard output.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/image/bmp"

	"gdiexample/circle"
	"gdiexample/driver"
)

var (
	width  = flag.Int("w", 800, "image `width` in pixels")
	height = flag.Int("h", 600, "image `height` in pixels")
	output = flag.String("o", "", "output `file` (default standard output)")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: circlebmp [-w width] [-h height] [-o file.bmp]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("circlebmp: ")

	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 0 || *width <= 0 || *height <= 0 {
		usage()
	}

	m := circle.NewImage(circle.New(*width, *height), *width, *height)
	if *output != "" {
		if err := driver.WriteBMP(*output, m); err != nil {
			log.Fatal(err)
		}
		return
	}
	w := bufio.NewWriter(os.Stdout)
	if err := bmp.Encode(w, m); err != nil {
		log.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		log.Fatal(err)
	}
}
