package aus

import "sort"

// Classification drives fill priority. Values match the host's flag bits.
type Classification int

const (
	Filler      Classification = 0
	Progression Classification = 1
	Useful      Classification = 2
	Trap        Classification = 4
)

// String returns the lower-case name of the classification
func (c Classification) String() string {
	switch c {
	case Filler:
		return "filler"
	case Progression:
		return "progression"
	case Useful:
		return "useful"
	case Trap:
		return "trap"
	default:
		return "unknown"
	}
}

// ItemData describes one entry of the item table
type ItemData struct {
	Code           int64
	Classification Classification
}

var itemTable = map[string]ItemData{
	ItemWallJump:    {Code: BaseID + 0, Classification: Progression},
	ItemHighJump:    {Code: BaseID + 1, Classification: Progression},
	ItemDoubleJump:  {Code: BaseID + 2, Classification: Progression},
	ItemFlutter:     {Code: BaseID + 3, Classification: Progression},
	ItemSmash:       {Code: BaseID + 4, Classification: Progression},
	ItemDive:        {Code: BaseID + 5, Classification: Progression},
	ItemSuperBubble: {Code: BaseID + 6, Classification: Progression},
	ItemNightVision: {Code: BaseID + 7, Classification: Progression},
	ItemFireBall:    {Code: BaseID + 8, Classification: Progression},
	ItemIceBall:     {Code: BaseID + 9, Classification: Progression},
	ItemFloat:       {Code: BaseID + 10, Classification: Progression},

	ItemGoldOrb:    {Code: BaseID + 20, Classification: Progression},
	ItemHeart:      {Code: BaseID + 21, Classification: Useful},
	ItemFlower:     {Code: BaseID + 22, Classification: Filler},
	ItemCrystals10: {Code: BaseID + 23, Classification: Filler},
	ItemCrystals25: {Code: BaseID + 24, Classification: Filler},
	ItemCrystals35: {Code: BaseID + 25, Classification: Filler},

	Victory: {Code: BaseID + 99, Classification: Progression},
}

// poolCounts overrides how many copies of an item the pool receives.
// Items not listed get one copy. Heart is three short of the vanilla
// count; arcade mode puts those three back.
var poolCounts = map[string]int{
	ItemGoldOrb:    10,
	ItemHeart:      22,
	ItemFlower:     8,
	ItemCrystals10: 6,
	ItemCrystals25: 4,
	ItemCrystals35: 3,
}

// ArcadeHearts is the number of extra hearts added when arcade mode is on
const ArcadeHearts = 3

// Item returns the table entry for name
func Item(name string) (ItemData, bool) {
	data, ok := itemTable[name]
	return data, ok
}

// Items returns a copy of the item table
func Items() map[string]ItemData {
	out := make(map[string]ItemData, len(itemTable))
	for name, data := range itemTable {
		out[name] = data
	}
	return out
}

// ItemNames returns every item name in code order
func ItemNames() []string {
	names := make([]string, 0, len(itemTable))
	for name := range itemTable {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return itemTable[names[i]].Code < itemTable[names[j]].Code
	})
	return names
}

// PoolCount returns how many copies of name belong in the base pool
func PoolCount(name string) int {
	if n, ok := poolCounts[name]; ok {
		return n
	}
	return 1
}

// FillerWeight is one weighted entry of the filler pick
type FillerWeight struct {
	Name   string
	Weight int
}

// FillerItems are the items the host may use to pad the pool
var FillerItems = []FillerWeight{
	{Name: ItemCrystals10, Weight: 1},
	{Name: ItemCrystals25, Weight: 1},
	{Name: ItemCrystals35, Weight: 1},
}
