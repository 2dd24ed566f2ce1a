package world_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/aus-world/internal/entities/aus"
	"github.com/KirkDiggler/aus-world/internal/errors"
	"github.com/KirkDiggler/aus-world/internal/options"
	"github.com/KirkDiggler/aus-world/internal/regions"
	"github.com/KirkDiggler/aus-world/internal/rules"
	"github.com/KirkDiggler/aus-world/internal/world"
)

// sequenceRoller returns its values in order, then repeats the last one
type sequenceRoller struct {
	values []int
	sizes  []int
}

func (r *sequenceRoller) next() int {
	v := r.values[0]
	if len(r.values) > 1 {
		r.values = r.values[1:]
	}
	return v
}

func (r *sequenceRoller) Roll(size int) (int, error) {
	r.sizes = append(r.sizes, size)
	return r.next(), nil
}

func (r *sequenceRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = r.next()
	}
	r.sizes = append(r.sizes, size)
	return out, nil
}

type WorldTestSuite struct {
	suite.Suite
	roller *sequenceRoller
}

func TestWorldSuite(t *testing.T) {
	suite.Run(t, new(WorldTestSuite))
}

func (s *WorldTestSuite) SetupTest() {
	s.roller = &sequenceRoller{values: []int{1}}
}

func (s *WorldTestSuite) newWorld(raw map[string]any) *world.World {
	opts, err := options.Resolve(raw)
	s.Require().NoError(err)

	w, err := world.New(&world.Config{
		Player:     1,
		PlayerName: "Egg",
		SeedName:   "seed-1",
		Options:    opts,
		Roller:     s.roller,
	})
	s.Require().NoError(err)
	return w
}

// build runs the host call order up to rules
func (s *WorldTestSuite) build(w *world.World) *regions.Graph {
	g, err := w.CreateRegions()
	s.Require().NoError(err)
	s.Require().NoError(w.SetRules(g))
	return g
}

func (s *WorldTestSuite) TestConfigValidate() {
	testCases := []struct {
		name string
		cfg  *world.Config
	}{
		{name: "nil config", cfg: nil},
		{name: "player zero", cfg: &world.Config{Player: 0, PlayerName: "Egg"}},
		{name: "missing name", cfg: &world.Config{Player: 1, PlayerName: "  "}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			w, err := world.New(tc.cfg)
			s.Nil(w)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *WorldTestSuite) TestNew_Defaults() {
	w, err := world.New(&world.Config{Player: 2, PlayerName: "Egg"})
	s.Require().NoError(err)
	s.Equal(options.Default(), w.Options())
	s.Equal(2, w.Player())
}

func (s *WorldTestSuite) TestLocationTable() {
	off := options.Default()
	off.ArcadeMode = options.ArcadeOff

	testCases := []struct {
		name       string
		opts       *options.Options
		withArcade bool
	}{
		{name: "nil includes everything", opts: nil, withArcade: true},
		{name: "purchase only", opts: options.Default(), withArcade: true},
		{name: "arcade off", opts: off, withArcade: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			table := world.LocationTable(tc.opts)

			expected := len(aus.BaseLocations()) + len(aus.FinalClimbLocations())
			if tc.withArcade {
				expected += len(aus.ArcadeLocations())
			}
			s.Len(table, expected)

			_, ok := table["Arcade - JumpBox High Score"]
			s.Equal(tc.withArcade, ok)
			s.Contains(table, aus.Victory)
		})
	}
}

func (s *WorldTestSuite) TestNameToIDMaps() {
	items := world.ItemNameToID()
	s.Equal(aus.BaseID, items[aus.ItemWallJump])
	s.Len(items, len(aus.Items()))

	locs := world.LocationNameToID()
	s.Len(locs, len(world.LocationTable(nil)))
	s.Equal(aus.BaseID+100, locs["Arcade - JumpBox High Score"])
}

func (s *WorldTestSuite) TestCreateItems_MatchesLocations() {
	testCases := []struct {
		name   string
		arcade string
		items  int
	}{
		{name: "arcade off", arcade: "off", items: 64},
		{name: "purchase only", arcade: "purchase_only", items: 67},
		{name: "must win", arcade: "must_win", items: 67},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			w := s.newWorld(map[string]any{options.KeyArcadeMode: tc.arcade})

			pool := w.CreateItems()
			s.Len(pool, tc.items)

			g, err := w.CreateRegions()
			s.Require().NoError(err)
			s.Len(g.UnfilledLocations(), len(pool))
		})
	}
}

func (s *WorldTestSuite) TestCreateItems_Contents() {
	w := s.newWorld(nil)
	pool := w.CreateItems()

	counts := make(map[string]int)
	for _, item := range pool {
		s.Equal(1, item.Player)
		s.NotEqual(aus.Victory, item.Name)
		counts[item.Name]++
	}

	s.Equal(10, counts[aus.ItemGoldOrb])
	s.Equal(22+aus.ArcadeHearts, counts[aus.ItemHeart])
	s.Equal(1, counts[aus.ItemWallJump])
	s.Equal(6, counts[aus.ItemCrystals10])

	again := w.CreateItems()
	s.NotSame(pool[0], again[0])
}

func (s *WorldTestSuite) TestCreateRegions_LocksVictory() {
	w := s.newWorld(nil)
	g, err := w.CreateRegions()
	s.Require().NoError(err)

	victory, err := g.Location(aus.Victory)
	s.Require().NoError(err)
	s.True(victory.Locked)
	s.Require().NotNil(victory.Item)
	s.Equal(aus.Victory, victory.Item.Name)
	s.Equal(1, victory.Item.Player)
	s.Equal(aus.RegionFinalClimb, victory.Parent.Name)
}

func (s *WorldTestSuite) TestCreateRegions_ArcadeOffKeepsRegion() {
	w := s.newWorld(map[string]any{options.KeyArcadeMode: "off"})
	g := s.build(w)

	arcade, err := g.Region(aus.RegionArcade)
	s.Require().NoError(err)
	s.Empty(arcade.Locations)

	_, err = g.Location("Arcade - Sky Racer High Score")
	s.True(errors.IsNotFound(err))
}

func (s *WorldTestSuite) TestSetRules_RejectsOtherPlayer() {
	w := s.newWorld(nil)
	other, err := world.New(&world.Config{Player: 2, PlayerName: "Bird"})
	s.Require().NoError(err)

	g, err := other.CreateRegions()
	s.Require().NoError(err)
	s.True(errors.IsInvalidArgument(w.SetRules(g)))
	s.True(errors.IsInvalidArgument(w.SetRules(nil)))
}

func (s *WorldTestSuite) TestVictoryThreshold() {
	optionSets := []map[string]any{
		{options.KeyGoldOrbsRequired: 7},
		{options.KeyGoldOrbsRequired: 7, options.KeyHardLogic: true, options.KeyArcadeMode: "must_win"},
		{options.KeyGoldOrbsRequired: 7, options.KeyDisableHeartBarriers: true, options.KeyDifficulty: "insanity"},
	}

	for _, raw := range optionSets {
		g := s.build(s.newWorld(raw))
		victory, err := g.Location(aus.Victory)
		s.Require().NoError(err)

		s.False(victory.Rule.Evaluate(rules.Inventory{aus.ItemGoldOrb: 6}))
		s.True(victory.Rule.Evaluate(rules.Inventory{aus.ItemGoldOrb: 7}))
	}
}

func (s *WorldTestSuite) TestVictoryThreshold_Zero() {
	g := s.build(s.newWorld(map[string]any{options.KeyGoldOrbsRequired: 0}))
	victory, err := g.Location(aus.Victory)
	s.Require().NoError(err)
	s.True(victory.Rule.Evaluate(rules.Inventory{}))
}

func (s *WorldTestSuite) TestFullInventoryReachesEverything() {
	optionSets := []map[string]any{
		nil,
		{options.KeyArcadeMode: "off"},
		{options.KeyArcadeMode: "must_win", options.KeyGoldOrbsRequired: 10},
		{options.KeyHardLogic: true, options.KeyEasyRainbowDive: true, options.KeyDisableHeartBarriers: true},
	}

	for _, raw := range optionSets {
		w := s.newWorld(raw)
		g := s.build(w)

		inv := rules.Inventory{}
		for _, item := range w.CreateItems() {
			inv.Add(item.Name, 1)
		}

		_, locs := sweep(g, inv)
		s.Len(locs, len(g.Locations()), "options %v", raw)
	}
}

func (s *WorldTestSuite) TestEmptyInventory() {
	g := s.build(s.newWorld(nil))

	regionsReached, locs := sweep(g, rules.Inventory{})
	s.ElementsMatch([]string{aus.RegionMenu, aus.RegionBlancLand}, regionsReached)
	s.Len(locs, 4)
	s.NotContains(locs, "BlancLand - Cliff Heart Barrier")
}

func (s *WorldTestSuite) TestHardLogic() {
	inv := rules.Inventory{aus.ItemWallJump: 1}

	normal, _ := sweep(s.build(s.newWorld(nil)), inv)
	s.NotContains(normal, aus.RegionBirdTown)

	hard, _ := sweep(s.build(s.newWorld(map[string]any{options.KeyHardLogic: true})), inv)
	s.Contains(hard, aus.RegionBirdTown)
}

func (s *WorldTestSuite) TestHeartBarriers() {
	inv := rules.Inventory{}

	_, normal := sweep(s.build(s.newWorld(nil)), inv)
	s.NotContains(normal, "BlancLand - Cliff Heart Barrier")

	_, disabled := sweep(s.build(s.newWorld(map[string]any{options.KeyDisableHeartBarriers: true})), inv)
	s.Contains(disabled, "BlancLand - Cliff Heart Barrier")
}

func (s *WorldTestSuite) TestArcadeMustWin() {
	inv := rules.Inventory{aus.ItemWallJump: 1}

	_, purchase := sweep(s.build(s.newWorld(nil)), inv)
	s.Contains(purchase, "Arcade - JumpBox High Score")

	_, mustWin := sweep(s.build(s.newWorld(map[string]any{options.KeyArcadeMode: "must_win"})), inv)
	s.NotContains(mustWin, "Arcade - JumpBox High Score")
}

func (s *WorldTestSuite) TestFillSlotData() {
	w := s.newWorld(map[string]any{
		options.KeyGoldOrbsRequired: 3,
		options.KeyArcadeMode:       "must_win",
		options.KeyHardLogic:        true,
		options.KeyDeathLink:        true,
	})

	data := w.FillSlotData()
	s.Len(data, len(world.SlotDataKeys()))
	for _, key := range world.SlotDataKeys() {
		s.Contains(data, key)
	}

	s.Equal(3, data["gold_orbs_required"])
	s.Equal(2, data["arcade_mode"])
	s.Equal(1, data["hard_logic"])
	s.Equal(0, data["easy_rainbowdive"])
	s.Equal(true, data["DeathLink"])
	s.NotContains(data, options.KeyDeathLink)
}

func (s *WorldTestSuite) TestCreateItem() {
	w := s.newWorld(nil)

	item, err := w.CreateItem(aus.ItemDive)
	s.Require().NoError(err)
	s.Equal(aus.BaseID+5, item.Code)
	s.Equal(1, item.Player)
	s.True(item.IsProgression())

	_, err = w.CreateItem("Dvie")
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Contains(errors.GetMeta(err)["suggestions"], aus.ItemDive)
}

func (s *WorldTestSuite) TestFillerItemName() {
	testCases := []struct {
		roll     int
		expected string
	}{
		{roll: 1, expected: aus.ItemCrystals10},
		{roll: 2, expected: aus.ItemCrystals25},
		{roll: 3, expected: aus.ItemCrystals35},
	}

	for _, tc := range testCases {
		s.Run(tc.expected, func() {
			s.roller = &sequenceRoller{values: []int{tc.roll}}
			name, err := s.newWorld(nil).FillerItemName()
			s.Require().NoError(err)
			s.Equal(tc.expected, name)
			s.Equal([]int{3}, s.roller.sizes)
		})
	}
}

func (s *WorldTestSuite) TestGenerationData() {
	s.roller = &sequenceRoller{values: []int{2, 65536}}
	data, err := s.newWorld(nil).GenerationData()
	s.Require().NoError(err)

	s.Equal(uint32(1<<16|0xFFFF), data.WorldSeed)
	s.Equal("seed-1", data.SeedName)
	s.Equal("Egg", data.PlayerName)
	s.Equal(1, data.PlayerID)
}
