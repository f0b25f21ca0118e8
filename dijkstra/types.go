// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path search on a core.Graph.
//
// Options:
//
//	– Source:      ID of the starting location (must be present in the graph).
//	– Target:      optional ID of the destination; the search stops once it is finalized.
//	– MaxDistance: optional cap; locations farther than this are never finalized.
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrVertexNotFound if the source or target does not exist in the graph.
//	– ErrNoPath         if the target cannot be reached from the source.
//	– ErrBadMaxDistance if MaxDistance < 0 (raised as a panic by WithMaxDistance).
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or target location does not
	// exist in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNoPath indicates that the target is in a different connected component
	// than the source.
	ErrNoPath = errors.New("dijkstra: no path between source and target")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting location ID.
// Target      – destination location ID; HasTarget reports whether one was set.
// MaxDistance – vertices whose distance exceeds this are not finalized.
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	Source      string  // The ID of the source location
	Target      string  // The ID of the target location (valid if HasTarget)
	HasTarget   bool    // Whether a single target was requested
	MaxDistance float64 // Maximum distance to explore
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting location.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// Target restricts the search to a single destination and enables early exit.
func Target(id string) Option {
	return func(o *Options) {
		o.Target = id
		o.HasTarget = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized for the given source.
//
// Defaults:
//   - HasTarget:   false (full single-source search).
//   - MaxDistance: +Inf (explore all reachable locations).
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		MaxDistance: math.Inf(1),
	}
}

// Result is the outcome of a Dijkstra run.
//
// Dist holds the finalized distance of every settled location.
// When a Target was requested, Path lists the locations from Source to Target
// (inclusive) and Distance is Dist[Target]. Otherwise Path is nil and Distance is 0.
type Result struct {
	Path     []string
	Distance float64
	Dist     map[string]float64
}
