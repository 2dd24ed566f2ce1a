package aus

// LocationData describes one entry of a location table
type LocationData struct {
	ID     int64
	Region string
}

// Location tables are split by the option that includes them. Ids are
// grouped per table: base from BaseID+1, arcade from BaseID+100, final
// climb from BaseID+200.
var baseLocationTable = map[string]LocationData{
	"BlancLand - Starting Ledge Heart": {ID: BaseID + 1, Region: RegionBlancLand},
	"BlancLand - Waterfall Crystals":   {ID: BaseID + 2, Region: RegionBlancLand},
	"BlancLand - Treetop Flower":       {ID: BaseID + 3, Region: RegionBlancLand},
	"BlancLand - Cave Shrine":          {ID: BaseID + 4, Region: RegionBlancLand},
	"BlancLand - Cliff Heart Barrier":  {ID: BaseID + 5, Region: RegionBlancLand},

	"SkyTown - Shop Item 1":         {ID: BaseID + 6, Region: RegionSkyTown},
	"SkyTown - Shop Item 2":         {ID: BaseID + 7, Region: RegionSkyTown},
	"SkyTown - Shop Item 3":         {ID: BaseID + 8, Region: RegionSkyTown},
	"SkyTown - Rooftop Heart":       {ID: BaseID + 9, Region: RegionSkyTown},
	"SkyTown - Well Crystals":       {ID: BaseID + 10, Region: RegionSkyTown},
	"SkyTown - RainbowDive Prize 1": {ID: BaseID + 11, Region: RegionSkyTown},
	"SkyTown - RainbowDive Prize 2": {ID: BaseID + 12, Region: RegionSkyTown},

	"MountSide - Ledge Heart":          {ID: BaseID + 13, Region: RegionMountSide},
	"MountSide - Gold Orb":             {ID: BaseID + 14, Region: RegionMountSide},
	"MountSide - Cave Flower":          {ID: BaseID + 15, Region: RegionMountSide},
	"MountSide - Summit Crystals":      {ID: BaseID + 16, Region: RegionMountSide},
	"MountSide - Shrine":               {ID: BaseID + 17, Region: RegionMountSide},
	"MountSide - Hidden Heart Barrier": {ID: BaseID + 18, Region: RegionMountSide},

	"BirdTown - Nest Heart":         {ID: BaseID + 19, Region: RegionBirdTown},
	"BirdTown - Chief's Gift":       {ID: BaseID + 20, Region: RegionBirdTown},
	"BirdTown - Gold Orb":           {ID: BaseID + 21, Region: RegionBirdTown},
	"BirdTown - Belltower Crystals": {ID: BaseID + 22, Region: RegionBirdTown},
	"BirdTown - Flower Garden":      {ID: BaseID + 23, Region: RegionBirdTown},

	"DeepDive - Sunken Heart":         {ID: BaseID + 24, Region: RegionDeepDive},
	"DeepDive - Trench Gold Orb":      {ID: BaseID + 25, Region: RegionDeepDive},
	"DeepDive - Shrine":               {ID: BaseID + 26, Region: RegionDeepDive},
	"DeepDive - Kelp Crystals":        {ID: BaseID + 27, Region: RegionDeepDive},
	"DeepDive - Bubble Cavern Flower": {ID: BaseID + 28, Region: RegionDeepDive},

	"FireCage - Furnace Heart":  {ID: BaseID + 29, Region: RegionFireCage},
	"FireCage - Shrine":         {ID: BaseID + 30, Region: RegionFireCage},
	"FireCage - Gold Orb":       {ID: BaseID + 31, Region: RegionFireCage},
	"FireCage - Magma Crystals": {ID: BaseID + 32, Region: RegionFireCage},

	"Farfall - Shrine":              {ID: BaseID + 33, Region: RegionFarfall},
	"Farfall - Falls Heart":         {ID: BaseID + 34, Region: RegionFarfall},
	"Farfall - Gold Orb":            {ID: BaseID + 35, Region: RegionFarfall},
	"Farfall - Ledge Crystals":      {ID: BaseID + 36, Region: RegionFarfall},
	"Farfall - Heart Barrier Cache": {ID: BaseID + 37, Region: RegionFarfall},

	"StoneCastle - Shrine":               {ID: BaseID + 38, Region: RegionStoneCastle},
	"StoneCastle - Throne Room Gold Orb": {ID: BaseID + 39, Region: RegionStoneCastle},
	"StoneCastle - Dungeon Heart":        {ID: BaseID + 40, Region: RegionStoneCastle},
	"StoneCastle - Rampart Crystals":     {ID: BaseID + 41, Region: RegionStoneCastle},
	"StoneCastle - Library Flower":       {ID: BaseID + 42, Region: RegionStoneCastle},

	"DarkGrotto - Shrine":              {ID: BaseID + 43, Region: RegionDarkGrotto},
	"DarkGrotto - Glowworm Heart":      {ID: BaseID + 44, Region: RegionDarkGrotto},
	"DarkGrotto - Gold Orb":            {ID: BaseID + 45, Region: RegionDarkGrotto},
	"DarkGrotto - Pit Crystals":        {ID: BaseID + 46, Region: RegionDarkGrotto},
	"DarkGrotto - Heart Barrier Cache": {ID: BaseID + 47, Region: RegionDarkGrotto},

	"SkySands - Shrine":          {ID: BaseID + 48, Region: RegionSkySands},
	"SkySands - Dune Heart":      {ID: BaseID + 49, Region: RegionSkySands},
	"SkySands - Gold Orb":        {ID: BaseID + 50, Region: RegionSkySands},
	"SkySands - Oasis Flower":    {ID: BaseID + 51, Region: RegionSkySands},
	"SkySands - Mirage Crystals": {ID: BaseID + 52, Region: RegionSkySands},

	"Undertomb - Shrine":        {ID: BaseID + 53, Region: RegionUndertomb},
	"Undertomb - Crypt Heart":   {ID: BaseID + 54, Region: RegionUndertomb},
	"Undertomb - Gold Orb":      {ID: BaseID + 55, Region: RegionUndertomb},
	"Undertomb - Bone Crystals": {ID: BaseID + 56, Region: RegionUndertomb},

	"TheCurtain - Lower Shrine":  {ID: BaseID + 57, Region: RegionTheCurtain},
	"TheCurtain - Gold Orb":      {ID: BaseID + 58, Region: RegionTheCurtain},
	"TheCurtain - Curtain Heart": {ID: BaseID + 59, Region: RegionTheCurtain},
	"TheCurtain - Upper Shrine":  {ID: BaseID + 60, Region: RegionTheCurtain},
}

var arcadeLocationTable = map[string]LocationData{
	"Arcade - JumpBox High Score":    {ID: BaseID + 100, Region: RegionArcade},
	"Arcade - Bubble Pop High Score": {ID: BaseID + 101, Region: RegionArcade},
	"Arcade - Sky Racer High Score":  {ID: BaseID + 102, Region: RegionArcade},
}

var finalClimbLocationTable = map[string]LocationData{
	"BlackCastle - Gate Cache": {ID: BaseID + 200, Region: RegionBlackCastle},
	"BlackCastle - Throne":     {ID: BaseID + 201, Region: RegionBlackCastle},
	"FinalClimb - First Ledge": {ID: BaseID + 202, Region: RegionFinalClimb},
	"FinalClimb - Wind Tunnel": {ID: BaseID + 203, Region: RegionFinalClimb},
	Victory:                    {ID: BaseID + 204, Region: RegionFinalClimb},
}

// BaseLocations returns a copy of the always-included location table
func BaseLocations() map[string]LocationData {
	return copyLocations(baseLocationTable)
}

// ArcadeLocations returns a copy of the arcade-only location table
func ArcadeLocations() map[string]LocationData {
	return copyLocations(arcadeLocationTable)
}

// FinalClimbLocations returns a copy of the end-game location table
func FinalClimbLocations() map[string]LocationData {
	return copyLocations(finalClimbLocationTable)
}

func copyLocations(src map[string]LocationData) map[string]LocationData {
	out := make(map[string]LocationData, len(src))
	for name, data := range src {
		out[name] = data
	}
	return out
}
