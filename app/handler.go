// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"context"
	"image"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/xerrors"

	"gdiexample/circle"
	"gdiexample/screen"
)

// handler is the window's event handler. It owns the current bitmap
// for its whole lifetime; release frees it.
type handler struct {
	drv    screen.Driver
	log    logr.Logger
	tracer trace.Tracer

	// dims is the client area size from the latest size event.
	dims image.Point
	// resize is set by a size event and cleared once a bitmap of dims
	// has been installed.
	resize bool
	// bitmap is always either nil or sized to dims as they were when
	// resize was last cleared.
	bitmap screen.Bitmap
}

func newHandler(drv screen.Driver, dims image.Point, log logr.Logger, tracer trace.Tracer) *handler {
	return &handler{
		drv:    drv,
		log:    log,
		tracer: tracer,
		dims:   dims,
	}
}

func (h *handler) Handle(w screen.Window, e interface{}) bool {
	switch e := e.(type) {
	case screen.EraseEvent:
		// The paint covers the whole client area.
		return true

	case lifecycle.Event:
		switch e.Crosses(lifecycle.StageAlive) {
		case lifecycle.CrossOn:
			h.create()
			return true
		case lifecycle.CrossOff:
			h.log.V(1).Info("close requested")
			w.Quit()
			return true
		}

	case size.Event:
		h.dims = image.Point{e.WidthPx, e.HeightPx}
		h.resize = true
		return true

	case paint.Event:
		return h.paint(w)
	}
	return false
}

func (h *handler) create() {
	if err := h.regenerate(); err != nil {
		// Leave resize set so the first paint tries again.
		h.resize = true
		h.log.Error(err, "initial bitmap", "width", h.dims.X, "height", h.dims.Y)
	}
}

// paint blits the current bitmap, regenerating it first if the window
// was resized. It reports false when there is nothing to show, leaving
// the paint to the platform's default handling.
func (h *handler) paint(w screen.Window) bool {
	if h.dims.X <= 0 || h.dims.Y <= 0 {
		return false
	}
	if h.resize || h.bitmap == nil {
		if err := h.regenerate(); err != nil {
			h.log.Error(err, "skipping frame", "width", h.dims.X, "height", h.dims.Y)
			return false
		}
	}
	b := h.bitmap
	err := w.Paint(func(c screen.Canvas) error {
		return c.Copy(image.Point{}, b, image.Rectangle{Max: b.Size()})
	})
	if err != nil {
		h.log.Error(err, "blit")
		// The platform validates what was never painted.
		return !xerrors.Is(err, screen.ErrNoPaint)
	}
	return true
}

// regenerate replaces the current bitmap with a fresh one of dims,
// retrying the allocation once. On failure the current bitmap is kept.
func (h *handler) regenerate() error {
	ctx, span := h.tracer.Start(context.Background(), "bitmap.regenerate",
		trace.WithAttributes(
			attribute.Int("width", h.dims.X),
			attribute.Int("height", h.dims.Y),
		))
	defer span.End()

	b, err := h.newBitmap(ctx, h.dims)
	if err != nil {
		h.log.Error(err, "bitmap allocation failed, retrying")
		span.AddEvent("retry")
		b, err = h.newBitmap(ctx, h.dims)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "allocation failed")
		return err
	}
	if h.bitmap != nil {
		h.bitmap.Release()
	}
	h.bitmap = b
	h.resize = false
	h.log.V(1).Info("bitmap regenerated", "width", h.dims.X, "height", h.dims.Y)
	return nil
}

// newBitmap allocates a bitmap of sz and draws the circle into it.
func (h *handler) newBitmap(ctx context.Context, sz image.Point) (screen.Bitmap, error) {
	_, span := h.tracer.Start(ctx, "bitmap.new")
	defer span.End()

	b, err := h.drv.NewBitmap(sz)
	if err != nil {
		return nil, xerrors.Errorf("new bitmap %dx%d: %w", sz.X, sz.Y, err)
	}
	circle.Draw(b.Pix(), sz.X, sz.Y)
	return b, nil
}

func (h *handler) release() {
	if h.bitmap != nil {
		h.bitmap.Release()
		h.bitmap = nil
	}
}
