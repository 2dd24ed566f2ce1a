package generation

import (
	"github.com/KirkDiggler/aus-world/internal/entities"
	"github.com/KirkDiggler/aus-world/internal/options"
	"github.com/KirkDiggler/aus-world/internal/repositories/slotdata"
	"github.com/KirkDiggler/aus-world/internal/world"
)

// GenerateInput lists the players of one seed in slot order
type GenerateInput struct {
	Players []*options.Player
	// SeedName is generated when empty
	SeedName string
}

// GenerateOutput summarises a finished generation
type GenerateOutput struct {
	SeedName string
	Slots    []*Slot
	// Pool is every player's items, filler included, in slot order
	Pool []*entities.Item
}

// Slot is the result for one player
type Slot struct {
	Player      int
	PlayerName  string
	Items       int
	Locations   int
	FillerAdded int
	SlotData    map[string]any
	Generation  *world.GenerationData
	// OutputPath is set when an output directory is configured
	OutputPath string
}

// GetSlotDataInput identifies one player of one seed
type GetSlotDataInput struct {
	SeedName string
	Player   int
}

// GetSlotDataOutput holds the stored slot data
type GetSlotDataOutput struct {
	Record *slotdata.Record
}

// ListSlotsInput selects a seed
type ListSlotsInput struct {
	SeedName string
}

// ListSlotsOutput holds every stored slot of a seed
type ListSlotsOutput struct {
	Records []*slotdata.Record
}
