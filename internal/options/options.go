// Package options declares the player options for An Untitled Story and
// resolves raw player documents into a typed Options value.
package options

import (
	"sort"

	"github.com/KirkDiggler/aus-world/internal/errors"
)

// Option keys as they appear in player files and slot data
const (
	KeyGoldOrbsRequired     = "gold_orbs_required"
	KeyDifficulty           = "difficulty"
	KeyArcadeMode           = "arcade_mode"
	KeyEasyRainbowDive      = "easy_rainbowdive"
	KeyDisableHeartBarriers = "disable_heart_barriers"
	KeyGhostSpawnRate       = "ghost_spawn_rate"
	KeySpecialBossMusic     = "special_boss_music"
	KeyHardLogic            = "hard_logic"
	KeyDeathLink            = "death_link"
)

// Difficulty is the in-game difficulty setting
type Difficulty int

const (
	DifficultySimple Difficulty = iota
	DifficultyRegular
	DifficultyDifficult
	DifficultyMasterful
	DifficultyInsanity
)

// ArcadeMode controls the three SkyTown arcade machines
type ArcadeMode int

const (
	// ArcadeOff disables the machines and their checks
	ArcadeOff ArcadeMode = iota
	// ArcadePurchaseOnly grants the check on purchase
	ArcadePurchaseOnly
	// ArcadeMustWin requires purchase and a high score
	ArcadeMustWin
)

var definitions = []Definition{
	{
		Key:         KeyGoldOrbsRequired,
		DisplayName: "Gold Orb Requirement",
		Description: "How many gold orbs are required for BlackCastle, and thus, to goal.",
		Kind:        KindRange,
		Min:         0,
		Max:         10,
		Default:     7,
	},
	{
		Key:         KeyDifficulty,
		DisplayName: "Difficulty",
		Description: "The difficulty the game will be set to. Insanity is Masterful with one hit kills.",
		Kind:        KindNamedRange,
		Min:         0,
		Max:         4,
		Default:     int(DifficultyRegular),
		Names: []Name{
			{Name: "simple", Value: int(DifficultySimple)},
			{Name: "regular", Value: int(DifficultyRegular)},
			{Name: "difficult", Value: int(DifficultyDifficult)},
			{Name: "masterful", Value: int(DifficultyMasterful)},
			{Name: "insanity", Value: int(DifficultyInsanity)},
		},
	},
	{
		Key:         KeyArcadeMode,
		DisplayName: "Arcade Behaviour",
		Description: "Behaviour of the three arcade machines in SkyTown. off removes them and 3 hearts, " +
			"purchase_only grants the check on purchase, must_win also requires the high score.",
		Kind:    KindChoice,
		Min:     int(ArcadeOff),
		Max:     int(ArcadeMustWin),
		Default: int(ArcadePurchaseOnly),
		Names: []Name{
			{Name: "off", Value: int(ArcadeOff)},
			{Name: "purchase_only", Value: int(ArcadePurchaseOnly)},
			{Name: "must_win", Value: int(ArcadeMustWin)},
		},
	},
	{
		Key:         KeyEasyRainbowDive,
		DisplayName: "Easy RainbowDive",
		Description: "Reduces the points required for each RainbowDive prize.",
		Kind:        KindToggle,
		Max:         1,
	},
	{
		Key:         KeyDisableHeartBarriers,
		DisplayName: "Disable All Heart Barriers",
		Description: "Removes heart barriers, so their checks no longer need to be reached without taking damage.",
		Kind:        KindToggle,
		Max:         1,
	},
	{
		Key:         KeyGhostSpawnRate,
		DisplayName: "Ghost Spawn Chance (Percentage)",
		Description: "Percentage chance of ghosts spawning per room. Ghosts appear after the first gold orb.",
		Kind:        KindRange,
		Min:         0,
		Max:         100,
		Default:     5,
	},
	{
		Key:         KeySpecialBossMusic,
		DisplayName: "Special Boss Music (Percentage)",
		Description: "Percentage chance of the insanity boss music on non-unique bosses. Cosmetic only.",
		Kind:        KindRange,
		Min:         0,
		Max:         100,
		Default:     0,
	},
	{
		Key:         KeyHardLogic,
		DisplayName: "Enable Unintuitive and Unintended Logic",
		Description: "Adds precise, unintended or unintuitive jumps into logic. Never requires damage boosting.",
		Kind:        KindToggle,
		Max:         1,
	},
	{
		Key:         KeyDeathLink,
		DisplayName: "Death Link",
		Description: "When you die, everyone with death link on dies. When they die, you die.",
		Kind:        KindToggle,
		Max:         1,
	},
}

// Options is a resolved, in-domain set of player options
type Options struct {
	GoldOrbsRequired     int
	Difficulty           Difficulty
	ArcadeMode           ArcadeMode
	EasyRainbowDive      bool
	DisableHeartBarriers bool
	GhostSpawnRate       int
	SpecialBossMusic     int
	HardLogic            bool
	DeathLink            bool
}

// Value is one entry of an Options snapshot
type Value struct {
	Key   string
	Value int
}

// Schema returns the option definitions in declaration order
func Schema() []Definition {
	out := make([]Definition, len(definitions))
	for i, d := range definitions {
		d.Names = append([]Name(nil), d.Names...)
		out[i] = d
	}
	return out
}

// Lookup returns the definition for key
func Lookup(key string) (Definition, bool) {
	for _, d := range definitions {
		if d.Key == key {
			return d, true
		}
	}
	return Definition{}, false
}

// Default returns the options a player gets when they set nothing
func Default() *Options {
	opts, _ := Resolve(nil)
	return opts
}

// Resolve builds Options from a raw key/value document. Missing keys take
// their defaults and unknown keys are rejected. Every failing key is
// reported; the error code comes from the first failure.
func Resolve(raw map[string]any) (*Options, error) {
	vb := errors.NewValidationBuilder()

	unknown := make([]string, 0)
	for key := range raw {
		if _, ok := Lookup(key); !ok {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		vb.FieldError(key, errors.InvalidArgumentf("unknown option %q", key))
	}

	values := make(map[string]int, len(definitions))
	for _, d := range definitions {
		v, err := d.Resolve(raw[d.Key])
		if err != nil {
			vb.FieldError(d.Key, err)
			continue
		}
		values[d.Key] = v
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &Options{
		GoldOrbsRequired:     values[KeyGoldOrbsRequired],
		Difficulty:           Difficulty(values[KeyDifficulty]),
		ArcadeMode:           ArcadeMode(values[KeyArcadeMode]),
		EasyRainbowDive:      values[KeyEasyRainbowDive] == 1,
		DisableHeartBarriers: values[KeyDisableHeartBarriers] == 1,
		GhostSpawnRate:       values[KeyGhostSpawnRate],
		SpecialBossMusic:     values[KeySpecialBossMusic],
		HardLogic:            values[KeyHardLogic] == 1,
		DeathLink:            values[KeyDeathLink] == 1,
	}, nil
}

// Values returns every option as an integer, in declaration order.
// Passing the snapshot back through Resolve yields equal Options.
func (o *Options) Values() []Value {
	return []Value{
		{Key: KeyGoldOrbsRequired, Value: o.GoldOrbsRequired},
		{Key: KeyDifficulty, Value: int(o.Difficulty)},
		{Key: KeyArcadeMode, Value: int(o.ArcadeMode)},
		{Key: KeyEasyRainbowDive, Value: boolInt(o.EasyRainbowDive)},
		{Key: KeyDisableHeartBarriers, Value: boolInt(o.DisableHeartBarriers)},
		{Key: KeyGhostSpawnRate, Value: o.GhostSpawnRate},
		{Key: KeySpecialBossMusic, Value: o.SpecialBossMusic},
		{Key: KeyHardLogic, Value: boolInt(o.HardLogic)},
		{Key: KeyDeathLink, Value: boolInt(o.DeathLink)},
	}
}

// Map returns Values keyed by option key
func (o *Options) Map() map[string]any {
	out := make(map[string]any, len(definitions))
	for _, v := range o.Values() {
		out[v.Key] = v.Value
	}
	return out
}

// Name returns the special name for a named range or choice value, or ""
func (d Definition) Name(value int) string {
	for _, n := range d.Names {
		if n.Value == value {
			return n.Name
		}
	}
	return ""
}

// String returns the choice name of the arcade mode
func (a ArcadeMode) String() string {
	d, _ := Lookup(KeyArcadeMode)
	return d.Name(int(a))
}

// String returns the special name of the difficulty
func (d Difficulty) String() string {
	def, _ := Lookup(KeyDifficulty)
	return def.Name(int(d))
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
