// Package regions holds a player's region graph: regions, the locations
// inside them and the entrances between them.
package regions

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/aus-world/internal/entities"
	"github.com/KirkDiggler/aus-world/internal/errors"
	"github.com/KirkDiggler/aus-world/internal/rules"
)

// EntityTypeLocation is the toolkit entity type for locations
const EntityTypeLocation = "location"

// Region is a named node of the graph, scoped to one player
type Region struct {
	Name      string
	Player    int
	Locations []*Location
	Exits     []*Entrance
}

// Entrance is a named, directed edge. Target is nil until the graph is built.
type Entrance struct {
	Name   string
	Player int
	Parent *Region
	Target *Region
	Rule   rules.Rule
}

// Location is a check inside a region
type Location struct {
	Name   string
	ID     int64
	Player int
	Parent *Region
	Rule   rules.Rule

	Item   *entities.Item
	Locked bool
}

// GetID returns the location identity scoped by player
func (l *Location) GetID() string {
	return fmt.Sprintf("%d:%d", l.Player, l.ID)
}

// GetType returns the entity type for rpg-toolkit
func (l *Location) GetType() string {
	return EntityTypeLocation
}

// PlaceLockedItem puts item on the location permanently. The fill step
// never moves a locked item.
func (l *Location) PlaceLockedItem(item *entities.Item) error {
	if item == nil {
		return errors.InvalidArgument("item is required")
	}
	if l.Item != nil {
		return errors.FailedPreconditionf("location %q already holds %q", l.Name, l.Item.Name)
	}
	if item.Player != l.Player {
		return errors.InvalidArgumentf("item for player %d cannot be locked into player %d's %q",
			item.Player, l.Player, l.Name)
	}

	l.Item = item
	l.Locked = true
	return nil
}

// Compile-time check that Location implements core.Entity
var _ core.Entity = (*Location)(nil)
