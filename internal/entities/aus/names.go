// Package aus holds the static tables for An Untitled Story: item and
// location names, their stable numeric ids, pool sizes and the region map.
package aus

// Game is the name the host registers this world under
const Game = "An Untitled Story"

// BaseID offsets every item code and location id. It must never change:
// seeds and save files reference the absolute numbers.
const BaseID int64 = 72000

// Tutorial metadata surfaced by the host's web front end
const (
	TutorialTitle       = "Multiworld Setup Guide"
	TutorialDescription = "A guide to setting up the An Untitled Story randomizer for Archipelago."
	TutorialLanguage    = "English"
	TutorialFile        = "setup_en.md"
	TutorialLink        = "setup/en"
)

// TutorialAuthors credits the setup guide
var TutorialAuthors = []string{"ThatOneGuy27"}

// Ability items
const (
	ItemWallJump    = "Wall Jump"
	ItemHighJump    = "High Jump"
	ItemDoubleJump  = "Double Jump"
	ItemFlutter     = "Flutter"
	ItemSmash       = "Smash"
	ItemDive        = "Dive"
	ItemSuperBubble = "Super Bubble"
	ItemNightVision = "Night Vision"
	ItemFireBall    = "Fire Ball"
	ItemIceBall     = "Ice Ball"
	ItemFloat       = "Float"
)

// Collectibles and filler
const (
	ItemGoldOrb    = "Gold Orb"
	ItemHeart      = "Heart"
	ItemFlower     = "Flower"
	ItemCrystals10 = "10 Crystals"
	ItemCrystals25 = "25 Crystals"
	ItemCrystals35 = "35 Crystals"
)

// Victory is both the goal item and the name of the location it is locked to
const Victory = "Victory"

// Region names
const (
	RegionMenu        = "Menu"
	RegionBlancLand   = "BlancLand"
	RegionSkyTown     = "SkyTown"
	RegionArcade      = "Arcade"
	RegionMountSide   = "MountSide"
	RegionBirdTown    = "BirdTown"
	RegionDeepDive    = "DeepDive"
	RegionFireCage    = "FireCage"
	RegionFarfall     = "Farfall"
	RegionStoneCastle = "StoneCastle"
	RegionDarkGrotto  = "DarkGrotto"
	RegionSkySands    = "SkySands"
	RegionUndertomb   = "Undertomb"
	RegionTheCurtain  = "TheCurtain"
	RegionBlackCastle = "BlackCastle"
	RegionFinalClimb  = "FinalClimb"
)
