// Package store persists generation run records so past tokens can be listed
// and re-rendered. The backing store is MongoDB; records are small summaries,
// not full cell grids (artifacts live in the cache, the grid is recomputable
// from token and seed).
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tokendelve/excavator/pkg/dungeon"
)

// Record summarizes one generation run.
type Record struct {
	ID        string    `bson:"_id" json:"id"`
	Token     string    `bson:"token" json:"token"`
	Seed      uint64    `bson:"seed" json:"seed"`
	RoomCount int       `bson:"room_count" json:"room_count"`
	CellCount int       `bson:"cell_count" json:"cell_count"`
	Area      int       `bson:"area" json:"area"`
	Type      string    `bson:"type" json:"type"`
	Level     int       `bson:"level" json:"level"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// NewRecord builds a Record from a generated dungeon.
func NewRecord(d *dungeon.Dungeon, seed uint64) Record {
	return Record{
		ID:        uuid.NewString(),
		Token:     d.Token,
		Seed:      seed,
		RoomCount: d.RoomCount,
		CellCount: len(d.Excavated),
		Area:      d.Area,
		Type:      d.Type,
		Level:     d.Level,
		CreatedAt: time.Now().UTC(),
	}
}

// Store is the persistence interface for run records.
type Store interface {
	// Save inserts a record.
	Save(ctx context.Context, rec Record) error

	// Latest returns the most recent record for a token.
	// Returns a NOT_FOUND error when the token was never generated.
	Latest(ctx context.Context, token string) (*Record, error)

	// List returns the most recent records, newest first.
	List(ctx context.Context, limit int) ([]Record, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}
