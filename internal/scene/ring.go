package scene

import "image/color"

type Circle struct {
	Radius float64
	Colour color.RGBA
}

// Ring is a fixed-capacity history of circles, newest first. Pushing onto a
// full ring drops the oldest circle.
type Ring struct {
	items []Circle
	head  int
	n     int
}

func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		panic("scene: ring capacity must be positive")
	}
	return &Ring{items: make([]Circle, capacity)}
}

// Push makes c the newest circle.
func (r *Ring) Push(c Circle) {
	r.head = (r.head - 1 + len(r.items)) % len(r.items)
	r.items[r.head] = c
	if r.n < len(r.items) {
		r.n++
	}
}

func (r *Ring) Len() int { return r.n }

func (r *Ring) Cap() int { return len(r.items) }

// At returns the circle at age i, 0 being the newest.
func (r *Ring) At(i int) Circle {
	if i < 0 || i >= r.n {
		panic("scene: ring index out of range")
	}
	return r.items[(r.head+i)%len(r.items)]
}
