package slotdata

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/aus-world/internal/errors"
	"github.com/KirkDiggler/aus-world/internal/pkg/clock"
)

// InMemoryRepository implements Repository with a map
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]map[int]*Record
}

// NewInMemory creates an empty in-memory repository. A nil clock uses the
// system clock.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock: c,
		store: make(map[string]map[int]*Record),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Save stores a copy of the record
func (r *InMemoryRepository) Save(_ context.Context, input *SaveInput) (*SaveOutput, error) {
	record, err := prepare(input, r.clock)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	seed, ok := r.store[record.SeedName]
	if !ok {
		seed = make(map[int]*Record)
		r.store[record.SeedName] = seed
	}
	seed[record.Player] = record

	return &SaveOutput{Record: copyRecord(record)}, nil
}

// Get returns a copy of one record
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateKey(input.SeedName, input.Player); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.store[input.SeedName][input.Player]
	if !ok {
		return nil, errors.NotFoundf("no slot data for player %d of seed %q", input.Player, input.SeedName).
			WithMeta("seed_name", input.SeedName).
			WithMeta("player", input.Player)
	}
	return &GetOutput{Record: copyRecord(record)}, nil
}

// List returns copies of every record of a seed ordered by player
func (r *InMemoryRepository) List(_ context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil || input.SeedName == "" {
		return nil, errors.InvalidArgument("seed name is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*Record, 0, len(r.store[input.SeedName]))
	for _, record := range r.store[input.SeedName] {
		records = append(records, copyRecord(record))
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Player < records[j].Player })

	return &ListOutput{Records: records}, nil
}

// Delete removes every record of a seed
func (r *InMemoryRepository) Delete(_ context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.SeedName == "" {
		return nil, errors.InvalidArgument("seed name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.store[input.SeedName])
	delete(r.store, input.SeedName)
	return &DeleteOutput{Deleted: n}, nil
}

func copyRecord(in *Record) *Record {
	out := *in
	out.Data = make(map[string]any, len(in.Data))
	for k, v := range in.Data {
		out.Data[k] = v
	}
	return &out
}
