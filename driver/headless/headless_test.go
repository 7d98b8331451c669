// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package headless

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"gdiexample/screen"
)

// recorder records the types of the events it sees and consumes none.
type recorder struct {
	events []string
}

func (r *recorder) Handle(w screen.Window, e interface{}) bool {
	switch e := e.(type) {
	case lifecycle.Event:
		switch e.Crosses(lifecycle.StageAlive) {
		case lifecycle.CrossOn:
			r.events = append(r.events, "create")
		case lifecycle.CrossOff:
			r.events = append(r.events, "close")
		}
	case size.Event:
		r.events = append(r.events, "size")
	case paint.Event:
		r.events = append(r.events, "paint")
	case screen.EraseEvent:
		r.events = append(r.events, "erase")
	default:
		r.events = append(r.events, "other")
	}
	return false
}

func newWindow(t *testing.T, d *Driver, h screen.Handler) *Window {
	t.Helper()
	c, err := d.Register("test", h)
	if err != nil {
		t.Fatal(err)
	}
	w, err := c.NewWindow(&screen.WindowOptions{Title: "test", Size: image.Pt(4, 2)})
	if err != nil {
		t.Fatal(err)
	}
	return w.(*Window)
}

func TestMessageOrder(t *testing.T) {
	r := new(recorder)
	w := newWindow(t, &Driver{}, r)
	if err := w.Redraw(); err != nil {
		t.Fatal(err)
	}
	w.Send(struct{}{})
	w.Close()
	if quit, err := w.Pump(); quit || err != nil {
		t.Fatalf("Pump = %v, %v; want false, nil", quit, err)
	}
	want := []string{"create", "size", "erase", "paint", "other", "close"}
	if diff := cmp.Diff(want, r.events); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
	if w.Erased() != 1 {
		t.Errorf("Erased = %d, want 1", w.Erased())
	}
	if !w.Released() {
		t.Error("unhandled close did not release the window")
	}
	if err := w.Redraw(); err == nil {
		t.Error("Redraw of a released window succeeded")
	}
}

func TestQuitAfterQueuedEvents(t *testing.T) {
	r := new(recorder)
	w := newWindow(t, &Driver{}, r)
	r.events = nil
	w.Send(struct{}{})
	w.Quit()
	w.Send(struct{}{})
	if quit, _ := w.Pump(); !quit {
		t.Fatal("Pump did not report quit")
	}
	if diff := cmp.Diff([]string{"other"}, r.events); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
}

func TestPaintOutsideCycle(t *testing.T) {
	w := newWindow(t, &Driver{}, new(recorder))
	if err := w.Paint(func(screen.Canvas) error { return nil }); err == nil {
		t.Error("Paint outside a paint cycle succeeded")
	}
}

func TestCopyClips(t *testing.T) {
	d := &Driver{}
	var copyErr error
	var src screen.Bitmap
	h := screen.HandlerFunc(func(w screen.Window, e interface{}) bool {
		if _, ok := e.(paint.Event); !ok {
			return false
		}
		copyErr = w.Paint(func(c screen.Canvas) error {
			return c.Copy(image.Pt(2, 1), src, image.Rect(0, 0, 3, 3))
		})
		return true
	})
	w := newWindow(t, d, h)

	b, err := d.NewBitmap(image.Pt(3, 3))
	if err != nil {
		t.Fatal(err)
	}
	pix := b.Pix()
	for i := range pix {
		pix[i] = byte(i)
	}
	src = b
	if err := w.Redraw(); err != nil {
		t.Fatal(err)
	}
	if copyErr != nil {
		t.Fatal(copyErr)
	}

	// Only source pixels (0, 0) and (1, 0) land inside the 4×2 client
	// area, at (2, 1) and (3, 1).
	want := make([]byte, 4*2*4)
	copy(want[(1*4+2)*4:], pix[0:8])
	if diff := cmp.Diff(want, w.Surface().Pix); diff != "" {
		t.Errorf("surface (-want +got):\n%s", diff)
	}
}

func TestBitmaps(t *testing.T) {
	d := &Driver{FailBitmaps: 1}
	if _, err := d.NewBitmap(image.Pt(1, 1)); err == nil {
		t.Error("NewBitmap succeeded with FailBitmaps set")
	}
	if _, err := d.NewBitmap(image.Pt(0, 5)); err == nil {
		t.Error("NewBitmap of an empty size succeeded")
	}
	b, err := d.NewBitmap(image.Pt(2, 3))
	if err != nil {
		t.Fatal(err)
	}
	if got := len(b.Pix()); got != 24 {
		t.Errorf("len(Pix) = %d, want 24", got)
	}
	if d.Allocated() != 1 || d.Live() != 1 {
		t.Errorf("Allocated, Live = %d, %d; want 1, 1", d.Allocated(), d.Live())
	}
	b.Release()
	b.Release()
	if d.Live() != 0 {
		t.Errorf("Live = %d after Release, want 0", d.Live())
	}
}
