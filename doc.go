// Package campusmap is an in-memory campus walking map: named locations,
// symmetric walking distances, and shortest routes with time estimates.
//
// Layout:
//
//	core/      thread-safe symmetric weighted adjacency store
//	dijkstra/  single-source / single-target Dijkstra over core.Graph
//	campus/    the campus map: direct distances, routes, itineraries, reachability
//	config/    environment configuration and slog setup
//	httpapi/   gin HTTP surface
//	mcptools/  Model Context Protocol tools over stdio
//	cmd/       the campusmap binary (serve | mcp)
//
// Quick ASCII example (the seeded campus):
//
//	[Room 120]──450──[Library]──300──[Dining Hall]
//	     └───────────────600───────────────┘
//
// The direct 600 m edge beats the 750 m detour through the Library.
//
//	go run ./cmd/campusmap serve
package campusmap
