package dungeon

import (
	"math/rand"
	"testing"

	"github.com/tokendelve/excavator/pkg/errors"
)

func TestScatterAddsDistinctCellsInsideBounds(t *testing.T) {
	set := make(PointSet)
	set.Add(Point{0, 0})
	b := Bounds{MinX: -2, MaxX: 2, MinY: -2, MaxY: 2}

	rng := rand.New(rand.NewSource(1))
	if err := Scatter(rng, set, b, 10); err != nil {
		t.Fatalf("Scatter() error = %v", err)
	}

	if len(set) != 11 {
		t.Errorf("set size = %d, want 11", len(set))
	}
	for p := range set {
		if !b.Contains(p) {
			t.Errorf("scattered cell %v outside bounds %+v", p, b)
		}
	}
}

func TestScatterDeterministicWithSameSeed(t *testing.T) {
	b := Bounds{MinX: 0, MaxX: 9, MinY: 0, MaxY: 9}

	first := make(PointSet)
	second := make(PointSet)
	if err := Scatter(rand.New(rand.NewSource(42)), first, b, 20); err != nil {
		t.Fatalf("Scatter() error = %v", err)
	}
	if err := Scatter(rand.New(rand.NewSource(42)), second, b, 20); err != nil {
		t.Fatalf("Scatter() error = %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("set sizes differ: %d vs %d", len(first), len(second))
	}
	for p := range first {
		if !second.Has(p) {
			t.Errorf("cell %v missing from second run", p)
		}
	}
}

func TestScatterCapacityExceeded(t *testing.T) {
	set := make(PointSet)
	set.Add(Point{0, 0})
	b := Bounds{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1} // 4 cells, 1 occupied

	err := Scatter(rand.New(rand.NewSource(1)), set, b, 4)
	if !errors.Is(err, errors.ErrCodeScatterCapacity) {
		t.Fatalf("Scatter() error = %v, want SCATTER_CAPACITY_EXCEEDED", err)
	}

	// Exactly filling the remaining capacity is fine.
	if err := Scatter(rand.New(rand.NewSource(1)), set, b, 3); err != nil {
		t.Errorf("Scatter() at capacity error = %v", err)
	}
	if len(set) != 4 {
		t.Errorf("set size = %d, want 4", len(set))
	}
}

func TestScatterZeroCountIsNoop(t *testing.T) {
	set := make(PointSet)
	if err := Scatter(rand.New(rand.NewSource(1)), set, Bounds{}, 0); err != nil {
		t.Fatalf("Scatter() error = %v", err)
	}
	if len(set) != 0 {
		t.Errorf("set size = %d, want 0", len(set))
	}
}

func TestScatterCountsCellsOutsideBoundsSeparately(t *testing.T) {
	// A pre-existing cell outside the box must not consume box capacity.
	set := make(PointSet)
	set.Add(Point{100, 100})
	b := Bounds{MinX: 0, MaxX: 1, MinY: 0, MaxY: 0} // 2 cells, none occupied

	if err := Scatter(rand.New(rand.NewSource(1)), set, b, 2); err != nil {
		t.Fatalf("Scatter() error = %v", err)
	}
	if len(set) != 3 {
		t.Errorf("set size = %d, want 3", len(set))
	}
}
