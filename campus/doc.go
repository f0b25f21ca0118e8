// Package campus models a campus map: named locations (rooms, buildings)
// joined by symmetric walking distances in meters.
//
// It answers two kinds of question:
//
//   - Distance(a, b): the direct edge between two locations, 0 for a == b,
//     UnknownDistance when the two are not directly connected.
//   - ShortestPath(a, b): the shortest walking route via Dijkstra, with an
//     estimated time at DefaultWalkingSpeed (or WithSpeed).
//
// Absence is a value, not an error. An unknown location or a disconnected
// pair yields a Route with Found == false, an empty Path, Meters ==
// UnknownDistance and the matching time estimate, so reachable and unreachable
// results can be handled uniformly.
//
// A Graph is an explicit value: build one with New or NewSeeded and pass it
// to whoever needs it. Queries may run concurrently; AddEdge takes an
// exclusive lock.
//
//	g := campus.NewSeeded()
//	r := g.ShortestPath("Room 120", "Dining Hall")
//	fmt.Println(r.Path, r.Meters, r.Minutes) // [Room 120 Dining Hall] 600 7.5
package campus
