package campus

import (
	"sort"

	"github.com/katalvlaran/campusmap/dijkstra"
)

// Reach is one location reachable within a walking budget.
type Reach struct {
	Location string  `json:"location"`
	Meters   float64 `json:"meters"`
	Minutes  float64 `json:"minutes"`
}

// WithinWalk lists the locations reachable from start in at most maxMinutes,
// ordered by distance and then by name. start itself is not listed.
// An unknown start or a negative budget yields an empty slice.
func (c *Graph) WithinWalk(start string, maxMinutes float64, opts ...RouteOption) []Reach {
	rc := buildRouteConfig(opts)
	out := []Reach{}

	maxMeters := maxMinutes * rc.speed
	if !(maxMeters >= 0) || !c.g.HasVertex(start) {
		return out
	}

	res, err := dijkstra.Dijkstra(c.g, dijkstra.Source(start), dijkstra.WithMaxDistance(maxMeters))
	if err != nil {
		return out
	}

	for loc, d := range res.Dist {
		if loc == start {
			continue
		}
		out = append(out, Reach{
			Location: loc,
			Meters:   d,
			Minutes:  EstimateWalkingTime(d, rc.speed),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Meters != out[j].Meters {
			return out[i].Meters < out[j].Meters
		}
		return out[i].Location < out[j].Location
	})

	return out
}
