package regions

import (
	"sort"

	"github.com/KirkDiggler/aus-world/internal/errors"
)

// Graph is a built, fully connected region graph for one player
type Graph struct {
	Player int

	regions   map[string]*Region
	order     []string
	locations map[string]*Location
	entrances map[string]*Entrance
}

// Region returns the named region
func (g *Graph) Region(name string) (*Region, error) {
	if r, ok := g.regions[name]; ok {
		return r, nil
	}
	return nil, errors.NotFoundf("unknown region %q", name).WithMeta("player", g.Player)
}

// Location returns the named location
func (g *Graph) Location(name string) (*Location, error) {
	if l, ok := g.locations[name]; ok {
		return l, nil
	}
	return nil, errors.UnknownLocation(name, g.LocationNames()).WithMeta("player", g.Player)
}

// Entrance returns the named entrance
func (g *Graph) Entrance(name string) (*Entrance, error) {
	if e, ok := g.entrances[name]; ok {
		return e, nil
	}
	return nil, errors.NotFoundf("unknown entrance %q", name).WithMeta("player", g.Player)
}

// Regions returns the regions in declaration order
func (g *Graph) Regions() []*Region {
	out := make([]*Region, len(g.order))
	for i, name := range g.order {
		out[i] = g.regions[name]
	}
	return out
}

// Locations returns every location ordered by id
func (g *Graph) Locations() []*Location {
	out := make([]*Location, 0, len(g.locations))
	for _, l := range g.locations {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// LocationNames returns every location name, sorted
func (g *Graph) LocationNames() []string {
	names := make([]string, 0, len(g.locations))
	for name := range g.locations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entrances returns every entrance ordered by name
func (g *Graph) Entrances() []*Entrance {
	out := make([]*Entrance, 0, len(g.entrances))
	for _, e := range g.entrances {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// UnfilledLocations returns locations that do not yet hold an item
func (g *Graph) UnfilledLocations() []*Location {
	var out []*Location
	for _, l := range g.Locations() {
		if l.Item == nil {
			out = append(out, l)
		}
	}
	return out
}
