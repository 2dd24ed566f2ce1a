package regions_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/aus-world/internal/entities"
	"github.com/KirkDiggler/aus-world/internal/entities/aus"
	"github.com/KirkDiggler/aus-world/internal/errors"
	"github.com/KirkDiggler/aus-world/internal/regions"
)

type BuilderTestSuite struct {
	suite.Suite
}

func TestBuilderSuite(t *testing.T) {
	suite.Run(t, new(BuilderTestSuite))
}

func (s *BuilderTestSuite) TestBuild_ForwardReference() {
	g, err := regions.NewBuilder(1).
		AddRegion("Menu", []string{"New Game"}).
		Connect("Menu", "New Game", "Town").
		AddRegion("Town", nil).
		AddLocation("Town", "Town - Chest", 10).
		Build()
	s.Require().NoError(err)

	exit, err := g.Entrance("New Game")
	s.Require().NoError(err)
	s.Equal("Town", exit.Target.Name)
	s.Equal("Menu", exit.Parent.Name)

	loc, err := g.Location("Town - Chest")
	s.Require().NoError(err)
	s.Equal("Town", loc.Parent.Name)
	s.Equal(1, loc.Player)
	s.Equal("1:10", loc.GetID())
	s.Equal(regions.EntityTypeLocation, loc.GetType())
}

func (s *BuilderTestSuite) TestBuild_Failures() {
	testCases := []struct {
		name     string
		build    func() *regions.Builder
		expected errors.Code
	}{
		{
			name: "dangling exit",
			build: func() *regions.Builder {
				return regions.NewBuilder(1).AddRegion("Menu", []string{"New Game"})
			},
			expected: errors.CodeFailedPrecondition,
		},
		{
			name: "unknown target",
			build: func() *regions.Builder {
				return regions.NewBuilder(1).
					AddRegion("Menu", []string{"New Game"}).
					Connect("Menu", "New Game", "Nowhere")
			},
			expected: errors.CodeNotFound,
		},
		{
			name: "unknown exit",
			build: func() *regions.Builder {
				return regions.NewBuilder(1).
					AddRegion("Menu", nil).
					AddRegion("Town", nil).
					Connect("Menu", "Secret Door", "Town")
			},
			expected: errors.CodeNotFound,
		},
		{
			name: "exit connected twice",
			build: func() *regions.Builder {
				return regions.NewBuilder(1).
					AddRegion("Menu", []string{"New Game"}).
					AddRegion("Town", nil).
					Connect("Menu", "New Game", "Town").
					Connect("Menu", "New Game", "Menu")
			},
			expected: errors.CodeAlreadyExists,
		},
		{
			name: "duplicate region",
			build: func() *regions.Builder {
				return regions.NewBuilder(1).AddRegion("Menu", nil).AddRegion("Menu", nil)
			},
			expected: errors.CodeAlreadyExists,
		},
		{
			name: "location in undeclared region",
			build: func() *regions.Builder {
				return regions.NewBuilder(1).AddLocation("Menu", "Menu - Chest", 1)
			},
			expected: errors.CodeNotFound,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			g, err := tc.build().Build()
			s.Nil(g)
			s.Require().Error(err)
			s.Equal(tc.expected, errors.GetCode(err))
		})
	}
}

func (s *BuilderTestSuite) TestBuild_StaticMap() {
	b := regions.NewBuilder(3)
	for _, def := range aus.Regions() {
		b.AddRegion(def.Name, def.Exits)
	}
	for _, link := range aus.Links() {
		b.Connect(link.Region, link.Exit, link.Target)
	}

	g, err := b.Build()
	s.Require().NoError(err)
	s.Len(g.Regions(), len(aus.Regions()))
	s.Equal(aus.StartRegion, g.Regions()[0].Name)
	for _, e := range g.Entrances() {
		s.NotNil(e.Target, e.Name)
	}
}

type GraphTestSuite struct {
	suite.Suite
	graph *regions.Graph
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphTestSuite))
}

func (s *GraphTestSuite) SetupTest() {
	g, err := regions.NewBuilder(2).
		AddRegion("Menu", []string{"New Game"}).
		AddRegion("Town", nil).
		AddLocation("Town", "Town - Well", 12).
		AddLocation("Town", "Town - Chest", 11).
		Connect("Menu", "New Game", "Town").
		Build()
	s.Require().NoError(err)
	s.graph = g
}

func (s *GraphTestSuite) TestLocationsOrderedByID() {
	locs := s.graph.Locations()
	s.Require().Len(locs, 2)
	s.Equal("Town - Chest", locs[0].Name)
	s.Equal("Town - Well", locs[1].Name)

	town, err := s.graph.Region("Town")
	s.Require().NoError(err)
	s.Equal(int64(11), town.Locations[0].ID)
}

func (s *GraphTestSuite) TestLookupMisses() {
	_, err := s.graph.Region("Castle")
	s.True(errors.IsNotFound(err))

	_, err = s.graph.Entrance("Back Door")
	s.True(errors.IsNotFound(err))

	_, err = s.graph.Location("Town - Wel")
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal([]string{"Town - Well"}, errors.GetMeta(err)["suggestions"])
	s.Equal(2, errors.GetMeta(err)["player"])
}

func (s *GraphTestSuite) TestLookupMissSuggestions() {
	testCases := []struct {
		name     string
		location string
		expected []string
	}{
		{
			name:     "one typo suggests the closest name only",
			location: "Town - Wel",
			expected: []string{"Town - Well"},
		},
		{
			name:     "unrelated name with a shared prefix has no suggestion",
			location: "Town - Gate",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.graph.Location(tc.location)
			s.Require().Error(err)
			s.True(errors.IsNotFound(err))

			suggestions, _ := errors.GetMeta(err)["suggestions"].([]string)
			s.Equal(tc.expected, suggestions)
		})
	}
}

func (s *GraphTestSuite) TestPlaceLockedItem() {
	loc, err := s.graph.Location("Town - Chest")
	s.Require().NoError(err)

	s.Error(loc.PlaceLockedItem(nil))

	other := entities.NewItem(aus.Victory, aus.ItemData{Code: aus.BaseID + 99}, 5)
	s.True(errors.IsInvalidArgument(loc.PlaceLockedItem(other)))

	item := entities.NewItem(aus.Victory, aus.ItemData{Code: aus.BaseID + 99}, 2)
	s.Require().NoError(loc.PlaceLockedItem(item))
	s.True(loc.Locked)
	s.Same(item, loc.Item)

	s.True(errors.IsFailedPrecondition(loc.PlaceLockedItem(item)))
	s.Len(s.graph.UnfilledLocations(), 1)
}
