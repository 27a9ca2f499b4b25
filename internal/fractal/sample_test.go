package fractal

import (
	"math"
	"testing"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name   string
		cr, ci float64
		want   int
	}{
		{"origin never escapes", 0, 0, MaxIterations},
		{"main cardioid", -0.5, 0, MaxIterations},
		{"period two bulb", -1.0, 0, MaxIterations},
		{"far outside", 3, 3, 1},
		{"real axis at one", 1, 0, 2},
		{"lands on radius", 2, 0, 1},
	}

	for _, tt := range tests {
		got := Escape(tt.cr, tt.ci)
		if got != tt.want {
			t.Errorf("%s: Escape(%v, %v) = %d, want %d", tt.name, tt.cr, tt.ci, got, tt.want)
		}
	}
}

func TestSampleOriginCorner(t *testing.T) {
	g := Sample(DefaultViewport())

	if g.Width != LargeWidth || g.Height != LargeHeight {
		t.Fatalf("expected %dx%d grid, got %dx%d", LargeWidth, LargeHeight, g.Width, g.Height)
	}

	n := g.At(0, 0)
	if n != Escape(-2.0, -1.5) {
		t.Errorf("cell (0,0) = %d, want escape of (-2,-1.5) = %d", n, Escape(-2.0, -1.5))
	}
	if n >= 5 {
		t.Errorf("expected corner to diverge within 5 iterations, got %d", n)
	}
}

func TestSampleBounds(t *testing.T) {
	viewports := []Viewport{
		DefaultViewport(),
		{XMin: -0.8, XMax: -0.7, YMin: 0.05, YMax: 0.15},
		{XMin: -10, XMax: 10, YMin: -10, YMax: 10},
		{XMin: -0.001, XMax: 0.001, YMin: -0.001, YMax: 0.001},
	}

	for _, v := range viewports {
		g := Sample(v)
		for i, n := range g.Counts {
			if n < 0 || n > MaxIterations {
				t.Fatalf("viewport %+v: cell %d = %d out of range", v, i, n)
			}
		}
	}
}

func TestSampleIntoReusesGrid(t *testing.T) {
	g := NewGrid(LargeWidth, LargeHeight)
	out := SampleInto(g, DefaultViewport())
	if out != g {
		t.Error("expected SampleInto to return the grid it was given")
	}

	fresh := Sample(DefaultViewport())
	for i := range fresh.Counts {
		if fresh.Counts[i] != g.Counts[i] {
			t.Fatalf("cell %d differs: %d vs %d", i, fresh.Counts[i], g.Counts[i])
		}
	}
}

func TestGridStats(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 0, 0)
	g.Set(0, 1, MaxIterations)
	g.Set(1, 0, 50)
	g.Set(1, 1, MaxIterations)

	if math.Abs(g.Mean()-62.5) > 1e-9 {
		t.Errorf("expected mean 62.5, got %f", g.Mean())
	}
	if math.Abs(g.InsideRatio()-0.5) > 1e-9 {
		t.Errorf("expected inside ratio 0.5, got %f", g.InsideRatio())
	}

	empty := &Grid{}
	if empty.Mean() != 0 || empty.InsideRatio() != 0 {
		t.Error("expected zero stats for empty grid")
	}
}

func TestViewportIsValid(t *testing.T) {
	tests := []struct {
		name string
		v    Viewport
		want bool
	}{
		{"default", DefaultViewport(), true},
		{"inverted x", Viewport{XMin: 1, XMax: -1, YMin: -1, YMax: 1}, false},
		{"flat y", Viewport{XMin: -1, XMax: 1, YMin: 0, YMax: 0}, false},
		{"nan", Viewport{XMin: math.NaN(), XMax: 1, YMin: -1, YMax: 1}, false},
		{"inf", Viewport{XMin: -1, XMax: math.Inf(1), YMin: -1, YMax: 1}, false},
	}

	for _, tt := range tests {
		if got := tt.v.IsValid(); got != tt.want {
			t.Errorf("%s: IsValid() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
