package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCenteredBox(t *testing.T) {
	b := CenteredBox(Vec(0, 15), 20, 10)

	assert.Equal(t, BoundingBox{Top: 10, Right: 10, Bottom: 20, Left: -10}, b)
	assert.Equal(t, float32(20), b.Width())
	assert.Equal(t, float32(10), b.Height())
	assert.Equal(t, Vec(0, 15), b.Center())
}

func TestBoundingBox_Intersects(t *testing.T) {
	base := BoundingBox{Top: 0, Right: 10, Bottom: 10, Left: 0}

	tests := []struct {
		name  string
		other BoundingBox
		want  bool
	}{
		{"overlapping", BoundingBox{Top: 5, Right: 15, Bottom: 15, Left: 5}, true},
		{"contained", BoundingBox{Top: 2, Right: 8, Bottom: 8, Left: 2}, true},
		{"touching right edge", BoundingBox{Top: 0, Right: 20, Bottom: 10, Left: 10}, false},
		{"touching left edge", BoundingBox{Top: 0, Right: 0, Bottom: 10, Left: -10}, false},
		{"touching bottom edge", BoundingBox{Top: 10, Right: 10, Bottom: 20, Left: 0}, false},
		{"touching top edge", BoundingBox{Top: -10, Right: 10, Bottom: 0, Left: 0}, false},
		{"separated", BoundingBox{Top: 30, Right: 40, Bottom: 40, Left: 30}, false},
		{"sub-unit overlap", BoundingBox{Top: 9.5, Right: 10, Bottom: 20, Left: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Intersects(tt.other))
			assert.Equal(t, tt.want, tt.other.Intersects(base), "intersection must be symmetric")
		})
	}
}

func TestBoundingBox_Contains(t *testing.T) {
	b := BoundingBox{Top: 0, Right: 10, Bottom: 10, Left: 0}

	assert.True(t, b.Contains(Vec(5, 5)))
	assert.False(t, b.Contains(Vec(0, 5)), "edges are exclusive")
	assert.False(t, b.Contains(Vec(5, 10)), "edges are exclusive")
	assert.False(t, b.Contains(Vec(5, 50)), "Y extent is checked")

	// Legacy horizontal-only check
	assert.True(t, b.ContainsX(Vec(5, 50)))
	assert.False(t, b.ContainsX(Vec(11, 5)))
}

func TestBoundingBox_Translate(t *testing.T) {
	b := BoundingBox{Top: 0, Right: 10, Bottom: 10, Left: 0}
	got := b.Translate(Vec(1, -2))

	assert.Equal(t, BoundingBox{Top: -2, Right: 11, Bottom: 8, Left: 1}, got)
}

func TestBoundingBox_Corners(t *testing.T) {
	b := BoundingBox{Top: 1, Right: 4, Bottom: 3, Left: 2}
	c := b.Corners()

	assert.Equal(t, Vec(2, 1), c[0])
	assert.Equal(t, Vec(4, 1), c[1])
	assert.Equal(t, Vec(4, 3), c[2])
	assert.Equal(t, Vec(2, 3), c[3])
}

func TestBoundingBox_Expand(t *testing.T) {
	b := BoundingBox{Top: 0, Right: 10, Bottom: 10, Left: 0}.Expand(2)
	assert.Equal(t, BoundingBox{Top: -2, Right: 12, Bottom: 12, Left: -2}, b)
}
