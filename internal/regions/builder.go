package regions

import (
	"sort"

	"github.com/KirkDiggler/aus-world/internal/errors"
)

type connection struct {
	from string
	exit string
	to   string
}

// Builder assembles a Graph in two phases. AddRegion and AddLocation
// declare nodes; Connect records edges by name. Names are resolved only in
// Build, so an edge may point at a region declared after it.
type Builder struct {
	player  int
	regions map[string]*Region
	order   []string
	edges   []connection
	vb      *errors.ValidationBuilder
}

// NewBuilder starts an empty graph for player
func NewBuilder(player int) *Builder {
	return &Builder{
		player:  player,
		regions: make(map[string]*Region),
		vb:      errors.NewValidationBuilder(),
	}
}

// AddRegion declares a region and its exit names
func (b *Builder) AddRegion(name string, exits []string) *Builder {
	if name == "" {
		b.vb.RequiredField("region")
		return b
	}
	if _, ok := b.regions[name]; ok {
		b.vb.FieldError(name, errors.AlreadyExistsf("region %q declared twice", name))
		return b
	}

	region := &Region{Name: name, Player: b.player}
	for _, exit := range exits {
		region.Exits = append(region.Exits, &Entrance{
			Name:   exit,
			Player: b.player,
			Parent: region,
		})
	}

	b.regions[name] = region
	b.order = append(b.order, name)
	return b
}

// AddLocation declares a location inside an already declared region
func (b *Builder) AddLocation(region, name string, id int64) *Builder {
	parent, ok := b.regions[region]
	if !ok {
		b.vb.FieldError(name, errors.NotFoundf("location %q is in undeclared region %q", name, region))
		return b
	}

	parent.Locations = append(parent.Locations, &Location{
		Name:   name,
		ID:     id,
		Player: b.player,
		Parent: parent,
	})
	return b
}

// Connect records that exit of region from leads to region to
func (b *Builder) Connect(from, exit, to string) *Builder {
	b.edges = append(b.edges, connection{from: from, exit: exit, to: to})
	return b
}

// Build resolves every connection and returns the graph. It fails when a
// connection names an unknown region or exit, when an exit is connected
// twice, when any declared exit is left dangling, or when two locations or
// entrances share a name.
func (b *Builder) Build() (*Graph, error) {
	for _, edge := range b.edges {
		b.resolve(edge)
	}

	g := &Graph{
		Player:    b.player,
		regions:   b.regions,
		order:     b.order,
		locations: make(map[string]*Location),
		entrances: make(map[string]*Entrance),
	}

	for _, name := range b.order {
		region := b.regions[name]
		for _, exit := range region.Exits {
			if exit.Target == nil {
				b.vb.FieldError(exit.Name, errors.FailedPreconditionf("exit %q of %q is not connected", exit.Name, name))
			}
			if _, dup := g.entrances[exit.Name]; dup {
				b.vb.FieldError(exit.Name, errors.AlreadyExistsf("entrance %q declared twice", exit.Name))
			}
			g.entrances[exit.Name] = exit
		}
		for _, loc := range region.Locations {
			if _, dup := g.locations[loc.Name]; dup {
				b.vb.FieldError(loc.Name, errors.AlreadyExistsf("location %q declared twice", loc.Name))
			}
			g.locations[loc.Name] = loc
		}
	}

	if err := b.vb.Build(); err != nil {
		return nil, errors.Wrap(err, "invalid region graph")
	}

	for _, region := range g.regions {
		sort.Slice(region.Locations, func(i, j int) bool {
			return region.Locations[i].ID < region.Locations[j].ID
		})
	}
	return g, nil
}

func (b *Builder) resolve(edge connection) {
	from, ok := b.regions[edge.from]
	if !ok {
		b.vb.FieldError(edge.exit, errors.NotFoundf("connection from undeclared region %q", edge.from))
		return
	}
	to, ok := b.regions[edge.to]
	if !ok {
		b.vb.FieldError(edge.exit, errors.NotFoundf("exit %q leads to undeclared region %q", edge.exit, edge.to))
		return
	}

	for _, exit := range from.Exits {
		if exit.Name != edge.exit {
			continue
		}
		if exit.Target != nil {
			b.vb.FieldError(edge.exit, errors.AlreadyExistsf("exit %q is already connected to %q", edge.exit, exit.Target.Name))
			return
		}
		exit.Target = to
		return
	}

	b.vb.FieldError(edge.exit, errors.NotFoundf("region %q has no exit %q", edge.from, edge.exit))
}
