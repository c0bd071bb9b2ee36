package epicycle

import (
	"math/rand/v2"
	"testing"
)

func TestMakePolygon(t *testing.T) {
	p, err := MakePolygon(6, 0, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 7 {
		t.Fatalf("got %d commands, want 7", p.Len())
	}
	diff(t, p.Start(), p.End())
	assertNear(t, Pt(0, -1), p.Start(), 1e-12)

	for from, cmd := range p.Steps() {
		if cmd.Kind == MoveToKind {
			continue
		}
		if cmd.Kind != LineToKind {
			t.Errorf("unexpected %s", cmd.Kind)
		}
		// Sides of a hexagon are as long as its radius.
		if d := from.Distance(cmd.End(from)); d < 1-1e-12 || d > 1+1e-12 {
			t.Errorf("side from %v has length %g", from, d)
		}
	}
}

func TestMakePolygonSkip(t *testing.T) {
	pentagon, err := MakePolygon(5, 0, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	star, err := MakePolygon(5, 1, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	verts := []Point{pentagon.Start()}
	for i := 1; i < 5; i++ {
		verts = append(verts, pentagon.At(i).P0)
	}
	// A pentagram visits every second vertex.
	for i := range 6 {
		diff(t, verts[(2*i)%5], star.At(i).P0)
	}
}

func TestMakePolygonRepeats(t *testing.T) {
	hexagon, _ := MakePolygon(6, 0, 0, nil)
	p, err := MakePolygon(6, 1, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 7 {
		t.Fatalf("got %d commands, want 7", p.Len())
	}
	// The triangle 0, 2, 4 is drawn twice.
	for i, v := range []int{0, 2, 4, 0, 2, 4, 0} {
		diff(t, hexagon.At(v).P0, p.At(i).P0)
	}
}

func TestMakePolygonRandomness(t *testing.T) {
	const randomness = 0.3
	a, err := MakePolygon(12, 0, randomness, rand.New(rand.NewPCG(1, 2)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := MakePolygon(12, 0, randomness, rand.New(rand.NewPCG(1, 2)))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, a.String(), b.String())

	regular, _ := MakePolygon(12, 0, 0, nil)
	if a.String() == regular.String() {
		t.Error("randomness had no effect")
	}
	for cmd := range a.Commands() {
		if d := cmd.P0.Distance(Pt(0, 0)); d < 1-randomness || d > 1+randomness {
			t.Errorf("vertex %v is %g away from the center", cmd.P0, d)
		}
	}
	diff(t, a.Start(), a.End())
}

func TestMakePolygonErrors(t *testing.T) {
	if _, err := MakePolygon(2, 0, 0, nil); err == nil {
		t.Error("2-sided polygon was accepted")
	}
	if _, err := MakePolygon(5, -1, 0, nil); err == nil {
		t.Error("negative skip was accepted")
	}
}
