// Package slotdata stores the slot data generated for each player of a
// seed so clients can fetch it after generation.
package slotdata

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=slotdatamock github.com/KirkDiggler/aus-world/internal/repositories/slotdata Repository

// Record is the slot data for one player of one seed
type Record struct {
	SeedName   string         `json:"seed_name"`
	Player     int            `json:"player"`
	PlayerName string         `json:"player_name"`
	Game       string         `json:"game"`
	Data       map[string]any `json:"data"`
	CreatedAt  time.Time      `json:"created_at"`
}

// Repository persists slot data records
type Repository interface {
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// SaveInput creates or replaces a record
type SaveInput struct {
	Record *Record
}

// SaveOutput returns the stored record with its timestamp set
type SaveOutput struct {
	Record *Record
}

// GetInput identifies one record
type GetInput struct {
	SeedName string
	Player   int
}

// GetOutput holds the found record
type GetOutput struct {
	Record *Record
}

// ListInput selects every record of a seed
type ListInput struct {
	SeedName string
}

// ListOutput holds records ordered by player
type ListOutput struct {
	Records []*Record
}

// DeleteInput selects every record of a seed for removal
type DeleteInput struct {
	SeedName string
}

// DeleteOutput reports how many records were removed
type DeleteOutput struct {
	Deleted int
}
