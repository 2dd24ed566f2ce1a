// Package entities provides the per-player runtime objects a world creates
// during generation.
package entities

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/aus-world/internal/entities/aus"
)

// EntityTypeItem is the toolkit entity type for item instances
const EntityTypeItem = "item"

// Item is one concrete item owned by a player. Every copy in a pool is a
// distinct instance even when name and code repeat.
type Item struct {
	Name           string             `json:"name"`
	Classification aus.Classification `json:"classification"`
	Code           int64              `json:"code"`
	Player         int                `json:"player"`
}

// NewItem builds an item instance from its table entry
func NewItem(name string, data aus.ItemData, player int) *Item {
	return &Item{
		Name:           name,
		Classification: data.Classification,
		Code:           data.Code,
		Player:         player,
	}
}

// GetID returns the item identity scoped by player
func (i *Item) GetID() string {
	return fmt.Sprintf("%d:%d", i.Player, i.Code)
}

// GetType returns the entity type for rpg-toolkit
func (i *Item) GetType() string {
	return EntityTypeItem
}

// IsProgression reports whether the item can unlock logic
func (i *Item) IsProgression() bool {
	return i.Classification == aus.Progression
}

// Compile-time check that Item implements core.Entity
var _ core.Entity = (*Item)(nil)
