package world

import (
	"log/slog"
	"sort"

	"github.com/KirkDiggler/aus-world/internal/entities/aus"
	"github.com/KirkDiggler/aus-world/internal/errors"
	"github.com/KirkDiggler/aus-world/internal/options"
	"github.com/KirkDiggler/aus-world/internal/regions"
	"github.com/KirkDiggler/aus-world/internal/rules"
)

// logic is the rule set for one player's options. Entrances and locations
// not listed are always accessible.
type logic struct {
	entrances map[string]rules.Rule
	locations map[string]rules.Rule
}

func newLogic(opts *options.Options) *logic {
	has := rules.Has
	hard := func(r rules.Rule) rules.Rule {
		return rules.And(rules.Option(options.KeyHardLogic, opts.HardLogic), r)
	}
	heartBarrier := func(r rules.Rule) rules.Rule {
		return rules.Or(rules.Option(options.KeyDisableHeartBarriers, opts.DisableHeartBarriers), r)
	}
	arcade := func(item string) rules.Rule {
		if opts.ArcadeMode == options.ArcadeMustWin {
			return has(item)
		}
		return rules.True()
	}
	orbs := rules.HasCount(aus.ItemGoldOrb, opts.GoldOrbsRequired)

	return &logic{
		entrances: map[string]rules.Rule{
			"BlancLand -> SkyTown":      has(aus.ItemWallJump),
			"BlancLand -> MountSide":    has(aus.ItemWallJump),
			"SkyTown -> BirdTown":       rules.Or(has(aus.ItemHighJump), hard(has(aus.ItemWallJump))),
			"MountSide -> DeepDive":     has(aus.ItemHighJump),
			"MountSide -> SkySands":     has(aus.ItemFlutter),
			"BirdTown -> Farfall":       has(aus.ItemHighJump),
			"BirdTown -> FireCage":      has(aus.ItemIceBall),
			"DeepDive -> DarkGrotto":    has(aus.ItemDive),
			"Farfall -> StoneCastle":    has(aus.ItemFlutter),
			"StoneCastle -> TheCurtain": has(aus.ItemSmash),
			"DarkGrotto -> Undertomb":   has(aus.ItemNightVision),
			"TheCurtain -> BlackCastle": rules.And(orbs, has(aus.ItemDoubleJump)),
			"BlackCastle -> FinalClimb": rules.HasAll(aus.ItemSuperBubble, aus.ItemFloat),
		},
		locations: map[string]rules.Rule{
			"BlancLand - Cliff Heart Barrier":  heartBarrier(has(aus.ItemHighJump)),
			"SkyTown - Rooftop Heart":          rules.Or(has(aus.ItemDoubleJump), hard(has(aus.ItemHighJump))),
			"SkyTown - RainbowDive Prize 2":    rules.Or(rules.Option(options.KeyEasyRainbowDive, opts.EasyRainbowDive), has(aus.ItemFlutter)),
			"MountSide - Summit Crystals":      has(aus.ItemFlutter),
			"MountSide - Hidden Heart Barrier": heartBarrier(has(aus.ItemFlutter)),
			"BirdTown - Belltower Crystals":    rules.Or(has(aus.ItemDoubleJump), hard(has(aus.ItemFlutter))),
			"DeepDive - Sunken Heart":          has(aus.ItemDive),
			"DeepDive - Trench Gold Orb":       has(aus.ItemDive),
			"DeepDive - Kelp Crystals":         has(aus.ItemDive),
			"DeepDive - Bubble Cavern Flower":  rules.HasAll(aus.ItemDive, aus.ItemSuperBubble),
			"FireCage - Magma Crystals":        has(aus.ItemFireBall),
			"Farfall - Heart Barrier Cache":    heartBarrier(has(aus.ItemDoubleJump)),
			"StoneCastle - Library Flower":     has(aus.ItemFireBall),
			"DarkGrotto - Pit Crystals":        has(aus.ItemNightVision),
			"DarkGrotto - Heart Barrier Cache": heartBarrier(has(aus.ItemFloat)),
			"SkySands - Mirage Crystals":       has(aus.ItemNightVision),
			"Undertomb - Bone Crystals":        has(aus.ItemSmash),
			"TheCurtain - Upper Shrine":        has(aus.ItemDoubleJump),
			"BlackCastle - Throne":             has(aus.ItemSmash),
			"Arcade - JumpBox High Score":      arcade(aus.ItemDoubleJump),
			"Arcade - Bubble Pop High Score":   arcade(aus.ItemSuperBubble),
			"Arcade - Sky Racer High Score":    arcade(aus.ItemFlutter),
			aus.Victory:                        orbs,
		},
	}
}

// SetRules attaches access rules to the entrances and locations of g.
// Locations that exist in the full table but were left out by the options
// are skipped; any other name missing from g is an error.
func (w *World) SetRules(g *regions.Graph) error {
	if g == nil {
		return errors.InvalidArgument("graph is required")
	}
	if g.Player != w.player {
		return errors.InvalidArgumentf("graph belongs to player %d, not %d", g.Player, w.player)
	}

	l := newLogic(w.opts)
	all := LocationNameToID()

	for _, name := range sortedKeys(l.entrances) {
		e, err := g.Entrance(name)
		if err != nil {
			return errors.Wrapf(err, "failed to set rule on entrance %q", name)
		}
		e.Rule = l.entrances[name]
	}

	skipped := 0
	for _, name := range sortedKeys(l.locations) {
		loc, err := g.Location(name)
		if err != nil {
			if _, known := all[name]; known {
				skipped++
				continue
			}
			return errors.UnknownLocation(name, g.LocationNames()).WithMeta("player", w.player)
		}
		loc.Rule = l.locations[name]
	}

	slog.Debug("set rules",
		"player", w.player,
		"entrance_rules", len(l.entrances),
		"location_rules", len(l.locations)-skipped,
		"hard_logic", w.opts.HardLogic)
	return nil
}

func sortedKeys(m map[string]rules.Rule) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
