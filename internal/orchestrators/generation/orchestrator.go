// Package generation runs the host's call order for every player of a
// seed and stores the results
package generation

//go:generate mockgen -destination=mock/mock_service.go -package=generationmock github.com/KirkDiggler/aus-world/internal/orchestrators/generation Service

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/aus-world/internal/entities"
	"github.com/KirkDiggler/aus-world/internal/entities/aus"
	"github.com/KirkDiggler/aus-world/internal/errors"
	"github.com/KirkDiggler/aus-world/internal/options"
	"github.com/KirkDiggler/aus-world/internal/output"
	"github.com/KirkDiggler/aus-world/internal/pkg/idgen"
	"github.com/KirkDiggler/aus-world/internal/regions"
	"github.com/KirkDiggler/aus-world/internal/repositories/slotdata"
	"github.com/KirkDiggler/aus-world/internal/world"
)

// Service generates seeds and serves their slot data
type Service interface {
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
	GetSlotData(ctx context.Context, input *GetSlotDataInput) (*GetSlotDataOutput, error)
	ListSlots(ctx context.Context, input *ListSlotsInput) (*ListSlotsOutput, error)
}

// Config holds the dependencies for the generation orchestrator
type Config struct {
	SlotDataRepo slotdata.Repository
	IDGenerator  idgen.Generator
	// Roller defaults to dice.DefaultRoller
	Roller dice.Roller
	// OutputDir receives one slot file per player when set
	OutputDir string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SlotDataRepo == nil {
		vb.RequiredField("SlotDataRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	slotDataRepo slotdata.Repository
	idGen        idgen.Generator
	roller       dice.Roller
	outputDir    string
}

// NewOrchestrator creates a generation orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	return &orchestrator{
		slotDataRepo: cfg.SlotDataRepo,
		idGen:        cfg.IDGenerator,
		roller:       roller,
		outputDir:    cfg.OutputDir,
	}, nil
}

// Generate builds every player's world in slot order. Each player's item
// share is padded with filler until it matches their unfilled locations.
// A failure removes the slot data and files already stored for the seed.
func (o *orchestrator) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if err := validateGenerate(input); err != nil {
		return nil, err
	}

	seedName := input.SeedName
	if seedName == "" {
		seedName = o.idGen.Generate()
	}

	slog.Info("Generation requested",
		"seed_name", seedName,
		"players", len(input.Players))

	out := &GenerateOutput{SeedName: seedName}
	stored := false
	var written []string
	for i, p := range input.Players {
		slot, items, file, err := o.generateSlot(ctx, seedName, i+1, p)
		if err == nil {
			var saved bool
			saved, err = o.storeSlot(ctx, seedName, slot, file)
			stored = stored || saved
		}
		if slot != nil && slot.OutputPath != "" {
			written = append(written, slot.OutputPath)
		}
		if err != nil {
			if stored {
				o.rollback(ctx, seedName, written)
			}
			return nil, errors.Wrapf(err, "failed to generate player %d (%s)", i+1, p.Name)
		}
		out.Slots = append(out.Slots, slot)
		out.Pool = append(out.Pool, items...)
	}

	slog.Info("Generation finished",
		"seed_name", seedName,
		"players", len(out.Slots),
		"pool", len(out.Pool))
	return out, nil
}

func (o *orchestrator) generateSlot(ctx context.Context, seedName string, player int, p *options.Player) (*Slot, []*entities.Item, *output.Slot, error) {
	w, err := world.New(&world.Config{
		Player:     player,
		PlayerName: p.Name,
		SeedName:   seedName,
		Options:    p.Options,
		Roller:     o.roller,
	})
	if err != nil {
		return nil, nil, nil, err
	}

	items := w.CreateItems()
	g, err := w.CreateRegions()
	if err != nil {
		return nil, nil, nil, err
	}
	if err := w.SetRules(g); err != nil {
		return nil, nil, nil, err
	}

	unfilled := len(g.UnfilledLocations())
	if len(items) > unfilled {
		return nil, nil, nil, errors.FailedPreconditionf("%d items do not fit in %d locations", len(items), unfilled).
			WithMeta("player", player)
	}

	filler := 0
	for len(items) < unfilled {
		name, err := w.FillerItemName()
		if err != nil {
			return nil, nil, nil, err
		}
		item, err := w.CreateItem(name)
		if err != nil {
			return nil, nil, nil, err
		}
		items = append(items, item)
		filler++
	}

	gen, err := w.GenerationData()
	if err != nil {
		return nil, nil, nil, err
	}

	data := w.FillSlotData()
	slot := &Slot{
		Player:      player,
		PlayerName:  p.Name,
		Items:       len(items),
		Locations:   len(g.Locations()),
		FillerAdded: filler,
		SlotData:    data,
		Generation:  gen,
	}

	slog.DebugContext(ctx, "generated slot",
		"seed_name", seedName,
		"player", player,
		"items", slot.Items,
		"filler", filler)
	return slot, items, slotFile(gen, data, g), nil
}

// storeSlot saves the slot data and, when configured, writes the slot file.
// It reports whether the record was saved; slot.OutputPath is set before
// the file is created.
func (o *orchestrator) storeSlot(ctx context.Context, seedName string, slot *Slot, file *output.Slot) (bool, error) {
	saved, err := o.slotDataRepo.Save(ctx, &slotdata.SaveInput{
		Record: &slotdata.Record{
			SeedName:   seedName,
			Player:     slot.Player,
			PlayerName: slot.PlayerName,
			Game:       aus.Game,
			Data:       slot.SlotData,
		},
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to store slot data")
	}
	slot.SlotData = saved.Record.Data

	if o.outputDir == "" {
		return true, nil
	}
	path := filepath.Join(o.outputDir, output.FileName(seedName, slot.Player, slot.PlayerName))
	slot.OutputPath = path
	return true, output.WriteFile(path, file)
}

// rollback removes what an aborted generation stored. Failures are logged
// so the original error reaches the caller.
func (o *orchestrator) rollback(ctx context.Context, seedName string, paths []string) {
	if _, err := o.slotDataRepo.Delete(ctx, &slotdata.DeleteInput{SeedName: seedName}); err != nil {
		slog.ErrorContext(ctx, "failed to remove slot data of aborted seed",
			"seed_name", seedName,
			"error", err)
	}
	for _, path := range paths {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			slog.ErrorContext(ctx, "failed to remove slot file of aborted seed",
				"path", path,
				"error", err)
		}
	}
}

func slotFile(gen *world.GenerationData, data map[string]any, g *regions.Graph) *output.Slot {
	locations := make(map[string]int64)
	var locked []output.Placement
	for _, loc := range g.Locations() {
		locations[loc.Name] = loc.ID
		if loc.Locked && loc.Item != nil {
			locked = append(locked, output.Placement{
				Location: loc.Name,
				Item:     loc.Item.Name,
				Player:   loc.Item.Player,
			})
		}
	}
	return &output.Slot{
		Generation: gen,
		SlotData:   data,
		Locations:  locations,
		Locked:     locked,
	}
}

// GetSlotData returns the stored slot data for one player
func (o *orchestrator) GetSlotData(ctx context.Context, input *GetSlotDataInput) (*GetSlotDataOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.slotDataRepo.Get(ctx, &slotdata.GetInput{
		SeedName: input.SeedName,
		Player:   input.Player,
	})
	if err != nil {
		return nil, err
	}
	return &GetSlotDataOutput{Record: out.Record}, nil
}

// ListSlots returns every stored slot of a seed
func (o *orchestrator) ListSlots(ctx context.Context, input *ListSlotsInput) (*ListSlotsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.slotDataRepo.List(ctx, &slotdata.ListInput{SeedName: input.SeedName})
	if err != nil {
		return nil, err
	}
	if len(out.Records) == 0 {
		return nil, errors.NotFoundf("no slots stored for seed %q", input.SeedName)
	}
	return &ListSlotsOutput{Records: out.Records}, nil
}

func validateGenerate(input *GenerateInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}
	if len(input.Players) == 0 {
		return errors.InvalidArgument("at least one player is required")
	}

	vb := errors.NewValidationBuilder()
	seen := make(map[string]int)
	for i, p := range input.Players {
		if p == nil || strings.TrimSpace(p.Name) == "" {
			vb.RequiredField(playerField(i))
			continue
		}
		key := strings.ToLower(p.Name)
		if first, dup := seen[key]; dup {
			vb.FieldError(playerField(i), errors.AlreadyExistsf("player name %q is also used by player %d", p.Name, first))
			continue
		}
		seen[key] = i + 1
	}
	return vb.Build()
}

func playerField(i int) string {
	return "players[" + strconv.Itoa(i) + "]"
}
