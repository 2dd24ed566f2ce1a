package world_test

import (
	"github.com/KirkDiggler/aus-world/internal/entities/aus"
	"github.com/KirkDiggler/aus-world/internal/regions"
	"github.com/KirkDiggler/aus-world/internal/rules"
)

// sweep walks g from the start region holding a fixed inventory and
// returns the names of reachable regions and accessible locations
func sweep(g *regions.Graph, inv rules.Inventory) ([]string, []string) {
	start, err := g.Region(aus.StartRegion)
	if err != nil {
		return nil, nil
	}

	seen := map[string]bool{start.Name: true}
	queue := []*regions.Region{start}
	var reached, locs []string

	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]
		reached = append(reached, r.Name)

		for _, loc := range r.Locations {
			if loc.Rule.Evaluate(inv) {
				locs = append(locs, loc.Name)
			}
		}
		for _, exit := range r.Exits {
			if exit.Target == nil || seen[exit.Target.Name] || !exit.Rule.Evaluate(inv) {
				continue
			}
			seen[exit.Target.Name] = true
			queue = append(queue, exit.Target)
		}
	}
	return reached, locs
}
