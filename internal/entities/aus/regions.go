package aus

// RegionDef declares a region and the names of its outgoing exits
type RegionDef struct {
	Name  string
	Exits []string
}

// Link wires one named exit of Region to Target
type Link struct {
	Region string
	Exit   string
	Target string
}

var regionDefs = []RegionDef{
	{Name: RegionMenu, Exits: []string{"New Game"}},
	{Name: RegionBlancLand, Exits: []string{"BlancLand -> SkyTown", "BlancLand -> MountSide"}},
	{Name: RegionSkyTown, Exits: []string{"SkyTown -> BlancLand", "SkyTown -> Arcade", "SkyTown -> BirdTown"}},
	{Name: RegionArcade, Exits: []string{"Arcade -> SkyTown"}},
	{Name: RegionMountSide, Exits: []string{"MountSide -> BlancLand", "MountSide -> DeepDive", "MountSide -> SkySands"}},
	{Name: RegionBirdTown, Exits: []string{"BirdTown -> SkyTown", "BirdTown -> Farfall", "BirdTown -> FireCage"}},
	{Name: RegionDeepDive, Exits: []string{"DeepDive -> MountSide", "DeepDive -> DarkGrotto"}},
	{Name: RegionFireCage, Exits: []string{"FireCage -> BirdTown"}},
	{Name: RegionFarfall, Exits: []string{"Farfall -> BirdTown", "Farfall -> StoneCastle"}},
	{Name: RegionStoneCastle, Exits: []string{"StoneCastle -> Farfall", "StoneCastle -> TheCurtain"}},
	{Name: RegionDarkGrotto, Exits: []string{"DarkGrotto -> DeepDive", "DarkGrotto -> Undertomb"}},
	{Name: RegionSkySands, Exits: []string{"SkySands -> MountSide"}},
	{Name: RegionUndertomb, Exits: []string{"Undertomb -> DarkGrotto"}},
	{Name: RegionTheCurtain, Exits: []string{"TheCurtain -> StoneCastle", "TheCurtain -> BlackCastle"}},
	{Name: RegionBlackCastle, Exits: []string{"BlackCastle -> FinalClimb"}},
	{Name: RegionFinalClimb},
}

// links is the edge list for the region graph. Exit names are matched
// exactly against the names declared in regionDefs.
var links = []Link{
	{Region: RegionMenu, Exit: "New Game", Target: RegionBlancLand},

	{Region: RegionBlancLand, Exit: "BlancLand -> SkyTown", Target: RegionSkyTown},
	{Region: RegionBlancLand, Exit: "BlancLand -> MountSide", Target: RegionMountSide},

	{Region: RegionSkyTown, Exit: "SkyTown -> BlancLand", Target: RegionBlancLand},
	{Region: RegionSkyTown, Exit: "SkyTown -> Arcade", Target: RegionArcade},
	{Region: RegionSkyTown, Exit: "SkyTown -> BirdTown", Target: RegionBirdTown},
	{Region: RegionArcade, Exit: "Arcade -> SkyTown", Target: RegionSkyTown},

	{Region: RegionMountSide, Exit: "MountSide -> BlancLand", Target: RegionBlancLand},
	{Region: RegionMountSide, Exit: "MountSide -> DeepDive", Target: RegionDeepDive},
	{Region: RegionMountSide, Exit: "MountSide -> SkySands", Target: RegionSkySands},

	{Region: RegionBirdTown, Exit: "BirdTown -> SkyTown", Target: RegionSkyTown},
	{Region: RegionBirdTown, Exit: "BirdTown -> Farfall", Target: RegionFarfall},
	{Region: RegionBirdTown, Exit: "BirdTown -> FireCage", Target: RegionFireCage},

	{Region: RegionDeepDive, Exit: "DeepDive -> MountSide", Target: RegionMountSide},
	{Region: RegionDeepDive, Exit: "DeepDive -> DarkGrotto", Target: RegionDarkGrotto},
	{Region: RegionFireCage, Exit: "FireCage -> BirdTown", Target: RegionBirdTown},
	{Region: RegionFarfall, Exit: "Farfall -> BirdTown", Target: RegionBirdTown},
	{Region: RegionFarfall, Exit: "Farfall -> StoneCastle", Target: RegionStoneCastle},
	{Region: RegionStoneCastle, Exit: "StoneCastle -> Farfall", Target: RegionFarfall},
	{Region: RegionStoneCastle, Exit: "StoneCastle -> TheCurtain", Target: RegionTheCurtain},
	{Region: RegionDarkGrotto, Exit: "DarkGrotto -> DeepDive", Target: RegionDeepDive},
	{Region: RegionDarkGrotto, Exit: "DarkGrotto -> Undertomb", Target: RegionUndertomb},
	{Region: RegionSkySands, Exit: "SkySands -> MountSide", Target: RegionMountSide},
	{Region: RegionUndertomb, Exit: "Undertomb -> DarkGrotto", Target: RegionDarkGrotto},

	{Region: RegionTheCurtain, Exit: "TheCurtain -> StoneCastle", Target: RegionStoneCastle},
	{Region: RegionTheCurtain, Exit: "TheCurtain -> BlackCastle", Target: RegionBlackCastle},
	{Region: RegionBlackCastle, Exit: "BlackCastle -> FinalClimb", Target: RegionFinalClimb},
}

// StartRegion is where every player begins
const StartRegion = RegionMenu

// Regions returns the region declarations in creation order
func Regions() []RegionDef {
	out := make([]RegionDef, len(regionDefs))
	for i, def := range regionDefs {
		out[i] = RegionDef{Name: def.Name, Exits: append([]string(nil), def.Exits...)}
	}
	return out
}

// Links returns the exit-to-region wiring
func Links() []Link {
	return append([]Link(nil), links...)
}
