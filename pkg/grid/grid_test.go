package grid

import (
	"reflect"
	"testing"

	"github.com/tokendelve/excavator/pkg/dungeon"
)

func points(ps ...dungeon.Point) dungeon.PointSet {
	set := make(dungeon.PointSet)
	for _, p := range ps {
		set.Add(p)
	}
	return set
}

func TestExtent(t *testing.T) {
	set := points(dungeon.Point{X: -2, Y: 3}, dungeon.Point{X: 4, Y: -1}, dungeon.Point{X: 0, Y: 0})
	want := dungeon.Bounds{MinX: -2, MaxX: 4, MinY: -1, MaxY: 3}
	if got := Extent(set); got != want {
		t.Errorf("Extent() = %+v, want %+v", got, want)
	}

	if got := Extent(nil); got != (dungeon.Bounds{}) {
		t.Errorf("Extent(nil) = %+v, want zero box", got)
	}
}

func TestRowsTopDown(t *testing.T) {
	set := points(
		dungeon.Point{X: 0, Y: 0},
		dungeon.Point{X: 1, Y: 0},
		dungeon.Point{X: 2, Y: 2},
	)
	g := New(set, Extent(set))

	want := []string{
		"@@O", // y = 2
		"@@@", // y = 1
		"OO@", // y = 0
	}
	if got := g.Rows(); !reflect.DeepEqual(got, want) {
		t.Errorf("Rows() = %q, want %q", got, want)
	}
}

func TestNewDropsCellsOutsideBounds(t *testing.T) {
	set := points(dungeon.Point{X: 0, Y: 0}, dungeon.Point{X: 50, Y: 50})
	b := dungeon.Bounds{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1}
	g := New(set, b)

	if !g.Excavated(0, 0) {
		t.Error("cell inside bounds lost")
	}
	if g.Excavated(50, 50) {
		t.Error("cell outside bounds retained")
	}
}
