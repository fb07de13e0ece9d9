package geom

import (
	"math"
	"testing"
)

func TestVec2Ops(t *testing.T) {
	a := V(3, 4)
	b := V(-1, 2)

	if got := a.Add(b); got != V(2, 6) {
		t.Errorf("Add: expected (2,6), got %v", got)
	}
	if got := a.Sub(b); got != V(4, 2) {
		t.Errorf("Sub: expected (4,2), got %v", got)
	}
	if got := a.Scale(2); got != V(6, 8) {
		t.Errorf("Scale: expected (6,8), got %v", got)
	}
	if got := a.Length(); got != 5 {
		t.Errorf("Length: expected 5, got %f", got)
	}
	if got := V(0, 0).Distance(a); got != 5 {
		t.Errorf("Distance: expected 5, got %f", got)
	}
}

func TestRectEdges(t *testing.T) {
	r := R(10, 20, 100, 50)
	if r.Right() != 110 {
		t.Errorf("Right: expected 110, got %f", r.Right())
	}
	if r.Bottom() != 70 {
		t.Errorf("Bottom: expected 70, got %f", r.Bottom())
	}
}

func TestRectContains(t *testing.T) {
	r := R(0, 0, 10, 10)
	tests := []struct {
		p    Vec2
		want bool
	}{
		{V(0, 0), true},
		{V(5, 5), true},
		{V(9.999, 9.999), true},
		{V(10, 5), false}, // right edge exclusive
		{V(5, 10), false},
		{V(-0.1, 5), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v): expected %v, got %v", tt.p, tt.want, got)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		x, min, max, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.x, tt.min, tt.max); got != tt.want {
			t.Errorf("Clamp(%f, %f, %f): expected %f, got %f", tt.x, tt.min, tt.max, tt.want, got)
		}
	}
}

func TestLengthZero(t *testing.T) {
	if got := V(0, 0).Length(); got != 0 || math.IsNaN(got) {
		t.Errorf("zero vector length: expected 0, got %f", got)
	}
}
