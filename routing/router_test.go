package routing

import (
	"math"
	"testing"

	"drafter/geometry"
)

func TestCalculateSides(t *testing.T) {
	tests := []struct {
		name     string
		src, dst geometry.Rect
		stub     float64
		wantSrc  geometry.Side
		wantDst  geometry.Side
	}{
		{
			name:    "target clearly below",
			src:     geometry.NewRect(0, 0, 100, 50),
			dst:     geometry.NewRect(0, 100, 100, 150),
			stub:    10,
			wantSrc: geometry.SideBottom,
			wantDst: geometry.SideTop,
		},
		{
			name:    "target clearly above",
			src:     geometry.NewRect(0, 100, 100, 150),
			dst:     geometry.NewRect(0, 0, 100, 50),
			stub:    10,
			wantSrc: geometry.SideTop,
			wantDst: geometry.SideBottom,
		},
		{
			name:    "target clearly right",
			src:     geometry.NewRect(0, 0, 50, 50),
			dst:     geometry.NewRect(200, 0, 250, 50),
			stub:    10,
			wantSrc: geometry.SideRight,
			wantDst: geometry.SideLeft,
		},
		{
			name:    "target clearly left",
			src:     geometry.NewRect(200, 0, 250, 50),
			dst:     geometry.NewRect(0, 0, 50, 50),
			stub:    10,
			wantSrc: geometry.SideLeft,
			wantDst: geometry.SideRight,
		},
		{
			name:    "below beats right when both clear",
			src:     geometry.NewRect(0, 0, 50, 50),
			dst:     geometry.NewRect(200, 200, 250, 250),
			stub:    10,
			wantSrc: geometry.SideBottom,
			wantDst: geometry.SideTop,
		},
		{
			name:    "overlapping falls back to larger x delta",
			src:     geometry.NewRect(0, 0, 100, 100),
			dst:     geometry.NewRect(60, 10, 160, 110),
			stub:    10,
			wantSrc: geometry.SideRight,
			wantDst: geometry.SideLeft,
		},
		{
			name:    "overlapping falls back to larger y delta",
			src:     geometry.NewRect(0, 0, 100, 100),
			dst:     geometry.NewRect(10, 60, 110, 160),
			stub:    10,
			wantSrc: geometry.SideBottom,
			wantDst: geometry.SideTop,
		},
		{
			name:    "coincident rectangles default to horizontal",
			src:     geometry.NewRect(0, 0, 100, 100),
			dst:     geometry.NewRect(0, 0, 100, 100),
			stub:    10,
			wantSrc: geometry.SideRight,
			wantDst: geometry.SideLeft,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotSrc, gotDst := CalculateSides(tt.src, tt.dst, tt.stub)
			if gotSrc != tt.wantSrc || gotDst != tt.wantDst {
				t.Errorf("CalculateSides = (%v, %v), want (%v, %v)",
					gotSrc, gotDst, tt.wantSrc, tt.wantDst)
			}
		})
	}
}

func TestSidePoint(t *testing.T) {
	r := geometry.NewRect(0, 0, 100, 50)

	tests := []struct {
		name   string
		side   geometry.Side
		offset float64
		want   geometry.Point
	}{
		{"top midpoint", geometry.SideTop, 0, geometry.Point{X: 50, Y: 0}},
		{"bottom midpoint", geometry.SideBottom, 0, geometry.Point{X: 50, Y: 50}},
		{"left midpoint", geometry.SideLeft, 0, geometry.Point{X: 0, Y: 25}},
		{"right midpoint", geometry.SideRight, 0, geometry.Point{X: 100, Y: 25}},
		{"top shifted", geometry.SideTop, 10, geometry.Point{X: 60, Y: 0}},
		{"left shifted", geometry.SideLeft, -5, geometry.Point{X: 0, Y: 20}},
		{"none is center", geometry.SideNone, 0, geometry.Point{X: 50, Y: 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SidePoint(r, tt.side, tt.offset); got != tt.want {
				t.Errorf("SidePoint(%v, %v) = %v, want %v", tt.side, tt.offset, got, tt.want)
			}
		})
	}
}

func TestStubPoint(t *testing.T) {
	p := geometry.Point{X: 50, Y: 50}

	tests := []struct {
		side geometry.Side
		want geometry.Point
	}{
		{geometry.SideTop, geometry.Point{X: 50, Y: 40}},
		{geometry.SideBottom, geometry.Point{X: 50, Y: 60}},
		{geometry.SideLeft, geometry.Point{X: 40, Y: 50}},
		{geometry.SideRight, geometry.Point{X: 60, Y: 50}},
		{geometry.SideNone, geometry.Point{X: 50, Y: 50}},
	}

	for _, tt := range tests {
		if got := StubPoint(p, tt.side, 10); got != tt.want {
			t.Errorf("StubPoint(%v) = %v, want %v", tt.side, got, tt.want)
		}
	}
}

func TestRouteDirect(t *testing.T) {
	r := NewRouter()
	src := geometry.NewRect(0, 0, 100, 50)
	dst := geometry.NewRect(0, 100, 100, 150)

	path := r.Route(Direct, src, dst, geometry.SideBottom, geometry.SideTop, 0, 0)

	if len(path.Segments) != 1 {
		t.Fatalf("Direct path has %d segments, want 1", len(path.Segments))
	}
	s := path.Segments[0]
	if s.From != (geometry.Point{X: 50, Y: 50}) || s.To != (geometry.Point{X: 50, Y: 100}) {
		t.Errorf("Direct segment %v -> %v, want {50 50} -> {50 100}", s.From, s.To)
	}
}

func TestRouteLShape(t *testing.T) {
	r := NewRouter()

	t.Run("horizontal exit takes corner x from target", func(t *testing.T) {
		src := geometry.NewRect(0, 0, 50, 50)
		dst := geometry.NewRect(150, 150, 200, 200)
		path := r.Route(LShape, src, dst, geometry.SideRight, geometry.SideTop, 0, 0)

		if len(path.Segments) != 2 {
			t.Fatalf("got %d segments, want 2", len(path.Segments))
		}
		corner := path.Segments[0].To
		want := geometry.Point{X: 175, Y: 25} // target's x, source's y
		if corner != want {
			t.Errorf("corner = %v, want %v", corner, want)
		}
	})

	t.Run("vertical exit keeps corner x from source", func(t *testing.T) {
		src := geometry.NewRect(0, 0, 50, 50)
		dst := geometry.NewRect(150, 150, 200, 200)
		path := r.Route(LShape, src, dst, geometry.SideBottom, geometry.SideLeft, 0, 0)

		if len(path.Segments) != 2 {
			t.Fatalf("got %d segments, want 2", len(path.Segments))
		}
		corner := path.Segments[0].To
		want := geometry.Point{X: 25, Y: 175} // source's x, target's y
		if corner != want {
			t.Errorf("corner = %v, want %v", corner, want)
		}
	})

	t.Run("aligned endpoints collapse to one segment", func(t *testing.T) {
		src := geometry.NewRect(0, 0, 50, 50)
		dst := geometry.NewRect(0, 150, 50, 200)
		path := r.Route(LShape, src, dst, geometry.SideBottom, geometry.SideTop, 0, 0)

		if len(path.Segments) != 1 {
			t.Errorf("got %d segments, want 1 for aligned endpoints", len(path.Segments))
		}
	})
}

func TestRouteSShape(t *testing.T) {
	r := NewRouter()
	src := geometry.NewRect(0, 0, 50, 50)
	dst := geometry.NewRect(100, 200, 150, 250)

	path := r.Route(SShape, src, dst, geometry.SideBottom, geometry.SideTop, 0, 0)

	if len(path.Segments) != 3 {
		t.Fatalf("S-shape has %d segments, want 3", len(path.Segments))
	}

	// Stub out, run, stub in.
	if got, want := path.Segments[0].From, (geometry.Point{X: 25, Y: 50}); got != want {
		t.Errorf("start = %v, want %v", got, want)
	}
	if got, want := path.Segments[0].To, (geometry.Point{X: 25, Y: 70}); got != want {
		t.Errorf("source stub = %v, want %v", got, want)
	}
	if got, want := path.Segments[2].From, (geometry.Point{X: 125, Y: 180}); got != want {
		t.Errorf("target stub = %v, want %v", got, want)
	}
	if got, want := path.Segments[2].To, (geometry.Point{X: 125, Y: 200}); got != want {
		t.Errorf("end = %v, want %v", got, want)
	}
}

func TestRouteUShape(t *testing.T) {
	r := NewRouter()
	src := geometry.NewRect(0, 0, 50, 50)
	dst := geometry.NewRect(0, 100, 50, 150)

	path := r.Route(UShape, src, dst, geometry.SideRight, geometry.SideLeft, 0, 0)

	if len(path.Segments) != 5 {
		t.Fatalf("U-shape has %d segments, want 5", len(path.Segments))
	}

	// Both endpoints attach on the exit side regardless of the target side
	// passed in.
	start := path.Segments[0].From
	end := path.Segments[4].To
	if start != (geometry.Point{X: 50, Y: 25}) {
		t.Errorf("start = %v, want {50 25}", start)
	}
	if end != (geometry.Point{X: 50, Y: 125}) {
		t.Errorf("end = %v, want {50 125}", end)
	}

	// Bulge reaches 2*StubLength past the outermost side point.
	maxX := 0.0
	for _, s := range path.Segments {
		maxX = math.Max(maxX, math.Max(s.From.X, s.To.X))
	}
	if want := 50 + 2*r.StubLength; maxX != want {
		t.Errorf("bulge x = %v, want %v", maxX, want)
	}
}

func TestRouteArc(t *testing.T) {
	r := NewRouter()
	src := geometry.NewRect(0, 0, 50, 50)
	dst := geometry.NewRect(200, 0, 250, 50)

	path := r.Route(Arc, src, dst, geometry.SideRight, geometry.SideLeft, 0, 0)

	if len(path.Segments) != 1 {
		t.Fatalf("arc has %d segments, want 1", len(path.Segments))
	}
	curve := path.Segments[0]
	if curve.Kind != Curve {
		t.Fatal("arc segment is not a curve")
	}
	if curve.From != (geometry.Point{X: 50, Y: 25}) || curve.To != (geometry.Point{X: 200, Y: 25}) {
		t.Errorf("curve endpoints %v -> %v, want {50 25} -> {200 25}", curve.From, curve.To)
	}

	// Control point sits at the chord midpoint, offset perpendicular by
	// max(0.3*chord, 30) = 45 here.
	chord := curve.From.Distance(curve.To)
	wantOffset := math.Max(0.3*chord, 30)
	mid := geometry.Point{X: 125, Y: 25}
	gotOffset := curve.Control.Distance(mid)
	if math.Abs(gotOffset-wantOffset) > 1e-9 {
		t.Errorf("control offset = %v, want %v", gotOffset, wantOffset)
	}

	// Flattening for hit-testing: 8 uniform-parameter pieces.
	flat := path.Flattened()
	if len(flat) != 8 {
		t.Fatalf("flattening has %d segments, want 8", len(flat))
	}
	if flat[0].From != curve.From || flat[7].To != curve.To {
		t.Error("flattening endpoints do not match the curve")
	}
}

func TestRouteArcShortChordMinimumBulge(t *testing.T) {
	r := NewRouter()
	src := geometry.NewRect(0, 0, 20, 20)
	dst := geometry.NewRect(30, 0, 50, 20)

	path := r.Route(Arc, src, dst, geometry.SideRight, geometry.SideLeft, 0, 0)
	curve := path.Segments[0]

	mid := geometry.Point{
		X: (curve.From.X + curve.To.X) / 2,
		Y: (curve.From.Y + curve.To.Y) / 2,
	}
	if got := curve.Control.Distance(mid); math.Abs(got-30) > 1e-9 {
		t.Errorf("short chord control offset = %v, want minimum 30", got)
	}
}

func TestRouteArcDegenerateChord(t *testing.T) {
	r := NewRouter()
	src := geometry.NewRect(0, 0, 50, 50)

	// Same rect and side: zero-length chord must not produce NaN.
	path := r.Route(Arc, src, src, geometry.SideRight, geometry.SideRight, 0, 0)
	for _, s := range path.Flattened() {
		for _, p := range []geometry.Point{s.From, s.To} {
			if math.IsNaN(p.X) || math.IsNaN(p.Y) {
				t.Fatalf("degenerate arc produced NaN point %v", p)
			}
		}
	}
}

func TestOrthogonalAutoWithoutObstaclesIsSShape(t *testing.T) {
	r := NewRouter()
	src := geometry.NewRect(0, 0, 50, 50)
	dst := geometry.NewRect(100, 200, 150, 250)

	auto := r.RouteAvoiding(OrthogonalAuto, nil, src, dst, geometry.SideBottom, geometry.SideTop, 0, 0)
	plain := r.Route(SShape, src, dst, geometry.SideBottom, geometry.SideTop, 0, 0)

	if len(auto.Segments) != len(plain.Segments) {
		t.Fatalf("segment counts differ: %d vs %d", len(auto.Segments), len(plain.Segments))
	}
	for i := range auto.Segments {
		if auto.Segments[i] != plain.Segments[i] {
			t.Errorf("segment %d differs: %v vs %v", i, auto.Segments[i], plain.Segments[i])
		}
	}
}
