package campus

// Itinerary is a walk through an ordered list of stops, such as the rooms of
// consecutive classes in one day.
type Itinerary struct {
	Stops    []string `json:"stops"`
	Legs     []Route  `json:"legs"`
	Meters   float64  `json:"meters"`
	Minutes  float64  `json:"minutes"`
	Complete bool     `json:"complete"` // false if any leg was unreachable
}

// Itinerary routes each consecutive pair of stops with ShortestPath and sums
// the legs. An unreachable leg contributes UnknownDistance and clears Complete.
// Repeating a stop is a zero-cost leg, known location or not.
// Fewer than two stops produce an empty, complete itinerary.
func (c *Graph) Itinerary(stops []string, opts ...RouteOption) Itinerary {
	rc := buildRouteConfig(opts)

	it := Itinerary{
		Stops:    append([]string(nil), stops...),
		Legs:     []Route{},
		Complete: true,
	}
	for i := 1; i < len(stops); i++ {
		from, to := stops[i-1], stops[i]

		var leg Route
		if from == to {
			leg = Route{Path: []string{from}, Found: true}
		} else {
			leg = c.ShortestPath(from, to, opts...)
		}
		if !leg.Found {
			it.Complete = false
		}
		it.Legs = append(it.Legs, leg)
		it.Meters += leg.Meters
	}
	it.Minutes = EstimateWalkingTime(it.Meters, rc.speed)

	return it
}
