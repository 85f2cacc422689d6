package game

// Scroll holds the offsets of the two stacked ground tiles. Each tile spans
// the playfield height; together they cover it while moving down.
type Scroll struct {
	A, B float64
}

// NewScroll places the second tile directly above the first.
func NewScroll(height float64) Scroll {
	return Scroll{A: 0, B: -height}
}

// Advance moves both tiles down by speed, wrapping a tile back above the
// playfield once it has scrolled off the bottom.
func (s *Scroll) Advance(speed, height float64) {
	s.A += speed
	s.B += speed
	if s.A >= height {
		s.A = -height
	}
	if s.B >= height {
		s.B = -height
	}
}
