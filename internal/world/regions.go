package world

import (
	"log/slog"

	"github.com/KirkDiggler/aus-world/internal/entities/aus"
	"github.com/KirkDiggler/aus-world/internal/errors"
	"github.com/KirkDiggler/aus-world/internal/regions"
)

// CreateRegions builds this player's region graph: every region with its
// option-filtered locations, every exit wired, and the victory item
// locked onto the victory location.
func (w *World) CreateRegions() (*regions.Graph, error) {
	b := regions.NewBuilder(w.player)
	for _, def := range aus.Regions() {
		b.AddRegion(def.Name, def.Exits)
	}

	table := LocationTable(w.opts)
	for _, name := range sortedByID(table) {
		data := table[name]
		b.AddLocation(data.Region, name, data.ID)
	}

	for _, link := range aus.Links() {
		b.Connect(link.Region, link.Exit, link.Target)
	}

	g, err := b.Build()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build regions for player %d", w.player)
	}

	victory, err := g.Location(aus.Victory)
	if err != nil {
		return nil, err
	}
	item, err := w.CreateItem(aus.Victory)
	if err != nil {
		return nil, err
	}
	if err := victory.PlaceLockedItem(item); err != nil {
		return nil, errors.Wrap(err, "failed to lock victory item")
	}

	slog.Debug("created regions",
		"player", w.player,
		"regions", len(g.Regions()),
		"locations", len(g.Locations()))
	return g, nil
}
