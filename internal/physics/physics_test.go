package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectOverlaps(t *testing.T) {
	base := Rect{X: 100, Y: 100, W: 50, H: 50}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", base, true},
		{"contained", Rect{X: 110, Y: 110, W: 5, H: 10}, true},
		{"partial corner", Rect{X: 140, Y: 140, W: 20, H: 20}, true},
		{"touching right edge", Rect{X: 150, Y: 100, W: 10, H: 10}, false},
		{"touching bottom edge", Rect{X: 100, Y: 150, W: 10, H: 10}, false},
		{"touching left edge", Rect{X: 90, Y: 100, W: 10, H: 10}, false},
		{"left of", Rect{X: 0, Y: 100, W: 50, H: 50}, false},
		{"above", Rect{X: 100, Y: 0, W: 50, H: 50}, false},
		{"x overlap only", Rect{X: 120, Y: 300, W: 5, H: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base), "overlap must be symmetric")
		})
	}
}

func TestRectCenter(t *testing.T) {
	x, y := Rect{X: 100, Y: 78, W: 50, H: 50}.Center()
	assert.Equal(t, 125.0, x)
	assert.Equal(t, 103.0, y)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 10.0, Clamp(-500, 10, 420))
	assert.Equal(t, 420.0, Clamp(9000, 10, 420))
	assert.Equal(t, 42.0, Clamp(42, 10, 420))
	assert.Equal(t, 10.0, Clamp(5, 10, 0))
}
