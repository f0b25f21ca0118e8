package campus

import (
	"github.com/katalvlaran/campusmap/dijkstra"
)

// Route is the result of a shortest-path query.
//
// Found discriminates the two outcomes. When Found is false the remaining
// fields still carry the fallback values callers have always seen: an empty
// Path, Meters == UnknownDistance and Minutes derived from UnknownDistance.
type Route struct {
	Path    []string `json:"path"`
	Meters  float64  `json:"meters"`
	Minutes float64  `json:"minutes"`
	Found   bool     `json:"found"`
}

// unreachable builds the Route returned when no path exists.
func unreachable(speed float64) Route {
	return Route{
		Path:    []string{},
		Meters:  UnknownDistance,
		Minutes: EstimateWalkingTime(UnknownDistance, speed),
	}
}

// ShortestPath finds the minimum-distance walking route from start to end.
//
// Steps:
//  1. Either endpoint unknown → unreachable Route.
//  2. Dijkstra from start with end as target; the search stops once end is finalized.
//  3. end in another component → unreachable Route.
//
// ShortestPath(x, x) for a known x is Route{Path: [x], Found: true} with zero
// distance and time.
func (c *Graph) ShortestPath(start, end string, opts ...RouteOption) Route {
	rc := buildRouteConfig(opts)

	if !c.g.HasVertex(start) || !c.g.HasVertex(end) {
		return unreachable(rc.speed)
	}

	res, err := dijkstra.Dijkstra(c.g, dijkstra.Source(start), dijkstra.Target(end))
	if err != nil {
		// ErrNoPath, or an endpoint vanished between the check and the search.
		return unreachable(rc.speed)
	}

	return Route{
		Path:    res.Path,
		Meters:  res.Distance,
		Minutes: EstimateWalkingTime(res.Distance, rc.speed),
		Found:   true,
	}
}
