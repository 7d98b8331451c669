// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"image"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/google/go-cmp/cmp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"gdiexample/circle"
	"gdiexample/driver/headless"
	"gdiexample/screen"
)

func newTestWindow(t *testing.T, drv *headless.Driver, log logr.Logger, tracer trace.Tracer) (*handler, *headless.Window) {
	t.Helper()
	h := newHandler(drv, image.Pt(800, 600), log, tracer)
	c, err := drv.Register("test", h)
	if err != nil {
		t.Fatal(err)
	}
	w, err := c.NewWindow(&screen.WindowOptions{Title: "test", Size: image.Pt(800, 600)})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		w.Release()
		c.Release()
		h.release()
	})
	return h, w.(*headless.Window)
}

func noopTracer() trace.Tracer {
	return trace.NewNoopTracerProvider().Tracer("test")
}

func sizeEvent(w, h int) size.Event {
	return size.Event{WidthPx: w, HeightPx: h, PixelsPerPt: 1}
}

func pump(t *testing.T, w *headless.Window) bool {
	t.Helper()
	quit, err := w.Pump()
	if err != nil {
		t.Fatalf("Pump: %v", err)
	}
	return quit
}

func redraw(t *testing.T, w *headless.Window) {
	t.Helper()
	if err := w.Redraw(); err != nil {
		t.Fatalf("Redraw: %v", err)
	}
}

func TestCreateAllocatesInitialBitmap(t *testing.T) {
	drv := &headless.Driver{}
	h, _ := newTestWindow(t, drv, logr.Discard(), noopTracer())

	if h.bitmap == nil {
		t.Fatal("no bitmap after create")
	}
	if got, want := h.bitmap.Size(), image.Pt(800, 600); got != want {
		t.Errorf("bitmap size = %v, want %v", got, want)
	}
	if diff := cmp.Diff(circle.New(800, 600), h.bitmap.Pix()); diff != "" {
		t.Errorf("bitmap pixels differ (-want +got):\n%s", diff)
	}
	// The creation size event has flagged a regeneration.
	if !h.resize {
		t.Error("resize flag not set by the initial size event")
	}
}

func TestEraseIsSuppressed(t *testing.T) {
	drv := &headless.Driver{}
	_, w := newTestWindow(t, drv, logr.Discard(), noopTracer())

	redraw(t, w)
	redraw(t, w)
	if n := w.Erased(); n != 0 {
		t.Errorf("background erased %d times, want 0", n)
	}
}

func TestResize(t *testing.T) {
	drv := &headless.Driver{}
	h, w := newTestWindow(t, drv, logr.Discard(), noopTracer())
	redraw(t, w)

	w.Send(sizeEvent(400, 300))
	pump(t, w)

	if got, want := h.dims, image.Pt(400, 300); got != want {
		t.Errorf("dims = %v, want %v", got, want)
	}
	if !h.resize {
		t.Error("resize flag not set")
	}
	if got := h.bitmap.Size(); got != image.Pt(800, 600) {
		t.Errorf("bitmap reallocated on size event: size %v", got)
	}

	redraw(t, w)

	if h.resize {
		t.Error("resize flag still set after paint")
	}
	if got, want := len(h.bitmap.Pix()), 400*300*4; got != want {
		t.Errorf("len(pix) = %d, want %d", got, want)
	}
	cx, cy, r := circle.Radius(400, 300)
	if cx != 200 || cy != 150 || r != 150 {
		t.Errorf("circle at (%d,%d) r=%d, want (200,150) r=150", cx, cy, r)
	}
	if diff := cmp.Diff(circle.New(400, 300), w.Surface().Pix); diff != "" {
		t.Errorf("window surface differs (-want +got):\n%s", diff)
	}
	if n := drv.Live(); n != 1 {
		t.Errorf("%d live bitmaps, want 1", n)
	}
}

func TestPaintWithoutResizeReusesBitmap(t *testing.T) {
	drv := &headless.Driver{}
	h, w := newTestWindow(t, drv, logr.Discard(), noopTracer())
	redraw(t, w)
	b := h.bitmap
	n := drv.Allocated()

	for i := 0; i < 5; i++ {
		redraw(t, w)
	}
	if h.bitmap != b {
		t.Error("bitmap replaced without a resize")
	}
	if got := drv.Allocated(); got != n {
		t.Errorf("allocated %d bitmaps, want %d", got, n)
	}
}

func TestRepeatedResizeReleasesOldBitmaps(t *testing.T) {
	drv := &headless.Driver{}
	_, w := newTestWindow(t, drv, logr.Discard(), noopTracer())

	for i := 1; i <= 10; i++ {
		w.Send(sizeEvent(10*i, 20*i))
		pump(t, w)
		redraw(t, w)
	}
	if n := drv.Live(); n != 1 {
		t.Errorf("%d live bitmaps, want 1", n)
	}
}

func TestAllocationRetry(t *testing.T) {
	var logs strings.Builder
	log := funcr.New(func(prefix, args string) {
		logs.WriteString(args)
		logs.WriteString("\n")
	}, funcr.Options{})

	drv := &headless.Driver{}
	h, w := newTestWindow(t, drv, log, noopTracer())
	redraw(t, w)

	w.Send(sizeEvent(40, 30))
	pump(t, w)
	drv.FailBitmaps = 1
	redraw(t, w)

	if h.resize {
		t.Error("resize flag still set after a successful retry")
	}
	if got := h.bitmap.Size(); got != image.Pt(40, 30) {
		t.Errorf("bitmap size = %v, want 40x30", got)
	}
	if !strings.Contains(logs.String(), "retrying") {
		t.Errorf("retry not logged; logs:\n%s", logs.String())
	}
}

func TestAllocationFailureSkipsFrame(t *testing.T) {
	var logs strings.Builder
	log := funcr.New(func(prefix, args string) {
		logs.WriteString(args)
		logs.WriteString("\n")
	}, funcr.Options{})

	drv := &headless.Driver{}
	h, w := newTestWindow(t, drv, log, noopTracer())
	redraw(t, w)
	old := h.bitmap

	w.Send(sizeEvent(40, 30))
	pump(t, w)
	drv.FailBitmaps = 2
	if h.Handle(w, paint.Event{}) {
		t.Error("paint consumed although the bitmap could not be allocated")
	}
	if h.bitmap != old {
		t.Error("current bitmap replaced after a failed allocation")
	}
	if !h.resize {
		t.Error("resize flag cleared after a failed allocation")
	}
	if !strings.Contains(logs.String(), "skipping frame") {
		t.Errorf("skipped frame not logged; logs:\n%s", logs.String())
	}

	// The next paint tries again.
	redraw(t, w)
	if got := h.bitmap.Size(); got != image.Pt(40, 30) {
		t.Errorf("bitmap size = %v, want 40x30", got)
	}
	if n := drv.Live(); n != 1 {
		t.Errorf("%d live bitmaps, want 1", n)
	}
}

func TestInitialAllocationFailure(t *testing.T) {
	drv := &headless.Driver{FailBitmaps: 2}
	h, w := newTestWindow(t, drv, logr.Discard(), noopTracer())

	if h.bitmap != nil {
		t.Fatal("bitmap installed although allocation failed")
	}
	redraw(t, w)
	if h.bitmap == nil {
		t.Fatal("first paint did not allocate the bitmap")
	}
	if diff := cmp.Diff(circle.New(800, 600), w.Surface().Pix); diff != "" {
		t.Errorf("window surface differs (-want +got):\n%s", diff)
	}
}

func TestEmptyClientAreaIsNotPainted(t *testing.T) {
	drv := &headless.Driver{}
	h, w := newTestWindow(t, drv, logr.Discard(), noopTracer())
	redraw(t, w)
	n := drv.Allocated()

	w.Send(sizeEvent(0, 0))
	pump(t, w)
	if h.Handle(w, paint.Event{}) {
		t.Error("paint of an empty client area consumed")
	}
	if got := drv.Allocated(); got != n {
		t.Errorf("allocated %d bitmaps, want %d", got, n)
	}
}

func TestPaintNotStartedIsLeftToPlatform(t *testing.T) {
	drv := &headless.Driver{}
	h, w := newTestWindow(t, drv, logr.Discard(), noopTracer())
	redraw(t, w)
	b := h.bitmap

	drv.FailPaints = 1
	redraw(t, w)
	if n := w.Unpainted(); n != 1 {
		t.Errorf("%d paints left to default handling, want 1", n)
	}
	if h.bitmap != b {
		t.Error("bitmap replaced by a failed paint")
	}

	redraw(t, w)
	if n := w.Unpainted(); n != 1 {
		t.Errorf("%d paints left to default handling after recovery, want 1", n)
	}
	if diff := cmp.Diff(circle.New(800, 600), w.Surface().Pix); diff != "" {
		t.Errorf("window surface differs (-want +got):\n%s", diff)
	}
}

func TestCloseQuitsAfterQueuedEvents(t *testing.T) {
	drv := &headless.Driver{}
	h, w := newTestWindow(t, drv, logr.Discard(), noopTracer())

	w.Send(sizeEvent(100, 50))
	w.Close()
	w.Send(sizeEvent(30, 20))

	if !pump(t, w) {
		t.Fatal("Pump did not report quit after a close")
	}
	if got, want := h.dims, image.Pt(30, 20); got != want {
		t.Errorf("dims = %v, want %v: events queued before the quit were dropped", got, want)
	}
	if w.Released() {
		t.Error("window destroyed by close; the handler should only quit")
	}
}

func TestUnknownEventsAreNotConsumed(t *testing.T) {
	drv := &headless.Driver{}
	h, w := newTestWindow(t, drv, logr.Discard(), noopTracer())
	dims, resize, b := h.dims, h.resize, h.bitmap

	for _, e := range []interface{}{"key", 42, struct{}{}} {
		if h.Handle(w, e) {
			t.Errorf("Handle(%v) consumed", e)
		}
	}
	if h.dims != dims || h.resize != resize || h.bitmap != b {
		t.Error("unknown event changed handler state")
	}
}

func TestRegenerateSpan(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	drv := &headless.Driver{}
	_, w := newTestWindow(t, drv, logr.Discard(), tp.Tracer("test"))
	w.Send(sizeEvent(400, 300))
	pump(t, w)
	redraw(t, w)

	var got []image.Point
	for _, s := range sr.Ended() {
		if s.Name() != "bitmap.regenerate" {
			continue
		}
		var p image.Point
		for _, kv := range s.Attributes() {
			switch kv.Key {
			case "width":
				p.X = int(kv.Value.AsInt64())
			case "height":
				p.Y = int(kv.Value.AsInt64())
			}
		}
		got = append(got, p)
	}
	want := []image.Point{{800, 600}, {400, 300}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("regenerate spans (-want +got):\n%s", diff)
	}
}
