package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tokendelve/excavator/pkg/dungeon"
)

func exploreDungeon() *dungeon.Dungeon {
	set := make(dungeon.PointSet)
	for x := 0; x < 10; x++ {
		for y := 0; y < 6; y++ {
			set.Add(dungeon.Point{X: x, Y: y})
		}
	}
	return &dungeon.Dungeon{
		Token:     "nft10iiii",
		RoomCount: 2,
		Centers:   []dungeon.Point{{X: 1, Y: 1}, {X: 8, Y: 4}},
		Sizes:     []int{2, 2},
		Shapes:    []byte("ii"),
		Type:      "Ice Cavern",
		Level:     1,
		Excavated: set,
	}
}

func TestExploreModelViewShowsHeader(t *testing.T) {
	m := newExploreModel(exploreDungeon())
	view := m.View()

	for _, want := range []string{"nft10iiii", "Ice Cavern", "2 rooms"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestExploreModelPanClamps(t *testing.T) {
	m := newExploreModel(exploreDungeon())

	// Panning left of the origin stays at the origin.
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(exploreModel)
	if m.offsetX != 0 {
		t.Errorf("offsetX = %d, want 0", m.offsetX)
	}

	// Panning far right clamps to the last column.
	for i := 0; i < 100; i++ {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
		m = updated.(exploreModel)
	}
	if m.offsetX != 9 {
		t.Errorf("offsetX = %d, want 9", m.offsetX)
	}

	// "g" jumps back to the origin.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	m = updated.(exploreModel)
	if m.offsetX != 0 || m.offsetY != 0 {
		t.Errorf("offsets = (%d, %d), want origin", m.offsetX, m.offsetY)
	}
}

func TestExploreModelQuits(t *testing.T) {
	m := newExploreModel(exploreDungeon())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}
