// Package world is the An Untitled Story world: it answers the host's
// extension points for a single player.
package world

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/aus-world/internal/entities"
	"github.com/KirkDiggler/aus-world/internal/entities/aus"
	"github.com/KirkDiggler/aus-world/internal/errors"
	"github.com/KirkDiggler/aus-world/internal/options"
)

// Config holds what a World needs for one player
type Config struct {
	Player     int
	PlayerName string
	SeedName   string
	// Options defaults to options.Default when nil
	Options *options.Options
	// Roller defaults to dice.DefaultRoller when nil
	Roller dice.Roller
}

// Validate ensures the config describes a real player slot
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Player < 1 {
		vb.Fieldf("Player", "must be at least 1, got %d", c.Player)
	}
	errors.ValidateRequired("PlayerName", c.PlayerName, vb)

	return vb.Build()
}

// tablesValid checks the static item and location tables once per process
var tablesValid = sync.OnceValue(aus.ValidateTables)

// World holds one player's options and answers the host's calls for them
type World struct {
	player     int
	playerName string
	seedName   string
	opts       *options.Options
	roller     dice.Roller
}

// New creates a World for the configured player
func New(cfg *Config) (*World, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	if err := tablesValid(); err != nil {
		return nil, errors.Wrap(err, "invalid world tables")
	}

	opts := cfg.Options
	if opts == nil {
		opts = options.Default()
	}
	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	return &World{
		player:     cfg.Player,
		playerName: cfg.PlayerName,
		seedName:   cfg.SeedName,
		opts:       opts,
		roller:     roller,
	}, nil
}

// Player returns the player id this world belongs to
func (w *World) Player() int { return w.player }

// PlayerName returns the player's display name
func (w *World) PlayerName() string { return w.playerName }

// Options returns the resolved options
func (w *World) Options() *options.Options { return w.opts }

// LocationTable composes the location tables for opts. A nil opts means
// every optional table is included. New rejects tables that collide, so
// the plain merge here never overwrites an entry.
func LocationTable(opts *options.Options) map[string]aus.LocationData {
	table := aus.BaseLocations()
	if opts == nil || opts.ArcadeMode != options.ArcadeOff {
		for name, data := range aus.ArcadeLocations() {
			table[name] = data
		}
	}
	for name, data := range aus.FinalClimbLocations() {
		table[name] = data
	}
	return table
}

// ItemNameToID maps every item name to its code
func ItemNameToID() map[string]int64 {
	out := make(map[string]int64)
	for name, data := range aus.Items() {
		out[name] = data.Code
	}
	return out
}

// LocationNameToID maps every possible location name to its id
func LocationNameToID() map[string]int64 {
	out := make(map[string]int64)
	for name, data := range LocationTable(nil) {
		out[name] = data.ID
	}
	return out
}

// CreateItems returns this player's contribution to the item pool. The
// victory item is never part of it; CreateRegions locks it in place.
func (w *World) CreateItems() []*entities.Item {
	var pool []*entities.Item
	for _, name := range aus.ItemNames() {
		if name == aus.Victory {
			continue
		}
		data, _ := aus.Item(name)
		for i := 0; i < aus.PoolCount(name); i++ {
			pool = append(pool, entities.NewItem(name, data, w.player))
		}
	}

	if w.opts.ArcadeMode != options.ArcadeOff {
		heart, _ := aus.Item(aus.ItemHeart)
		for i := 0; i < aus.ArcadeHearts; i++ {
			pool = append(pool, entities.NewItem(aus.ItemHeart, heart, w.player))
		}
	}

	slog.Debug("created item pool",
		"player", w.player,
		"items", len(pool),
		"arcade_mode", w.opts.ArcadeMode.String())
	return pool
}

// CreateItem builds a single item by name
func (w *World) CreateItem(name string) (*entities.Item, error) {
	data, ok := aus.Item(name)
	if !ok {
		return nil, errors.UnknownItem(name, aus.ItemNames()).WithMeta("player", w.player)
	}
	return entities.NewItem(name, data, w.player), nil
}

// FillerItemName picks a filler item, weighted by aus.FillerItems
func (w *World) FillerItemName() (string, error) {
	total := 0
	for _, f := range aus.FillerItems {
		total += f.Weight
	}

	roll, err := w.roller.Roll(total)
	if err != nil {
		return "", errors.Wrap(err, "failed to roll filler item")
	}

	for _, f := range aus.FillerItems {
		roll -= f.Weight
		if roll <= 0 {
			return f.Name, nil
		}
	}
	return aus.FillerItems[len(aus.FillerItems)-1].Name, nil
}

// FillSlotData returns the values the game client reads at connect time.
// Toggles are sent as 0/1, except DeathLink which is a boolean.
func (w *World) FillSlotData() map[string]any {
	data := make(map[string]any)
	for _, v := range w.opts.Values() {
		if v.Key == options.KeyDeathLink {
			continue
		}
		data[v.Key] = v.Value
	}
	data[SlotDataDeathLink] = w.opts.DeathLink
	return data
}

// SlotDataDeathLink is the slot data key for death link
const SlotDataDeathLink = "DeathLink"

// SlotDataKeys returns the slot data keys in a stable order
func SlotDataKeys() []string {
	keys := make([]string, 0)
	for _, d := range options.Schema() {
		if d.Key != options.KeyDeathLink {
			keys = append(keys, d.Key)
		}
	}
	keys = append(keys, SlotDataDeathLink)
	return keys
}

// GenerationData is the per-slot data written into the output file
type GenerationData struct {
	WorldSeed  uint32 `json:"world_seed"`
	SeedName   string `json:"seed_name"`
	PlayerName string `json:"player_name"`
	PlayerID   int    `json:"player_id"`
}

// GenerationData draws a 32 bit world seed from the roller and returns it
// with the slot identity
func (w *World) GenerationData() (*GenerationData, error) {
	const half = 1 << 16

	parts, err := w.roller.RollN(2, half)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll world seed")
	}
	if len(parts) != 2 {
		return nil, errors.Internalf("roller returned %d values, want 2", len(parts))
	}

	seed := uint32(parts[0]-1)<<16 | uint32(parts[1]-1)
	return &GenerationData{
		WorldSeed:  seed,
		SeedName:   w.seedName,
		PlayerName: w.playerName,
		PlayerID:   w.player,
	}, nil
}

func sortedByID(table map[string]aus.LocationData) []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return table[names[i]].ID < table[names[j]].ID })
	return names
}
