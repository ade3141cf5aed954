package scene

import (
	"image/color"
	"testing"
)

func TestRingEvictsOldest(t *testing.T) {
	r := NewRing(40)
	for i := 0; i < 45; i++ {
		r.Push(Circle{Radius: float64(i)})
	}
	if r.Len() != 40 {
		t.Fatalf("Len() = %d, want 40", r.Len())
	}
	for i := 0; i < r.Len(); i++ {
		if got, want := r.At(i).Radius, float64(44-i); got != want {
			t.Errorf("At(%d).Radius = %v, want %v", i, got, want)
		}
	}
	// Radii 0..4 are gone.
	if oldest := r.At(39).Radius; oldest != 5 {
		t.Errorf("oldest radius = %v, want 5", oldest)
	}
}

func TestRingPartial(t *testing.T) {
	r := NewRing(4)
	if r.Len() != 0 || r.Cap() != 4 {
		t.Fatalf("new ring: Len %d Cap %d", r.Len(), r.Cap())
	}
	red := color.RGBA{R: 255, A: 255}
	r.Push(Circle{Radius: 1})
	r.Push(Circle{Radius: 2, Colour: red})
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}
	if got := r.At(0); got.Radius != 2 || got.Colour != red {
		t.Errorf("At(0) = %+v, want newest", got)
	}
	if got := r.At(1).Radius; got != 1 {
		t.Errorf("At(1).Radius = %v, want 1", got)
	}
}

func TestRingAtOutOfRange(t *testing.T) {
	r := NewRing(2)
	r.Push(Circle{})
	defer func() {
		if recover() == nil {
			t.Error("At(1) on a one-element ring did not panic")
		}
	}()
	r.At(1)
}
