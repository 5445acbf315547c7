package dungeon

import (
	"math/rand"

	"github.com/tokendelve/excavator/pkg/errors"
)

// Scatter adds n distinct extra cells to set, drawn uniformly from b by
// rejection sampling. Cells already in set do not count toward n.
//
// The box capacity is checked up front: when b cannot hold n additional
// distinct cells beyond the ones already occupying it, Scatter fails with
// SCATTER_CAPACITY_EXCEEDED instead of looping forever.
func Scatter(rng *rand.Rand, set PointSet, b Bounds, n int) error {
	if n <= 0 {
		return nil
	}

	inside := 0
	for p := range set {
		if b.Contains(p) {
			inside++
		}
	}
	if free := b.Cells() - inside; n > free {
		return errors.New(errors.ErrCodeScatterCapacity,
			"bounding box has %d free cells, %d requested", free, n)
	}

	target := len(set) + n
	for len(set) < target {
		set.Add(Point{
			X: b.MinX + rng.Intn(b.Width()),
			Y: b.MinY + rng.Intn(b.Height()),
		})
	}
	return nil
}
