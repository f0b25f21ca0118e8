package mcptools

import (
	"context"
	"fmt"
	"math"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/katalvlaran/campusmap/campus"
)

// DistanceArgs are the arguments of the distance tool.
type DistanceArgs struct {
	From string `json:"from" jsonschema:"First location name, matched exactly"`
	To   string `json:"to" jsonschema:"Second location name, matched exactly"`
}

// ShortestPathArgs are the arguments of the shortest_path tool.
type ShortestPathArgs struct {
	From  string  `json:"from" jsonschema:"Start location name"`
	To    string  `json:"to" jsonschema:"Destination location name"`
	Speed float64 `json:"speed,omitempty" jsonschema:"Walking speed in meters per minute; server default when omitted"`
}

// ListLocationsArgs is the empty argument set of the list_locations tool.
type ListLocationsArgs struct{}

// NeighborsArgs are the arguments of the neighbors tool.
type NeighborsArgs struct {
	Location string `json:"location" jsonschema:"Location whose direct neighbors are listed"`
}

// AddEdgeArgs are the arguments of the add_edge tool.
type AddEdgeArgs struct {
	From   string  `json:"from" jsonschema:"First endpoint"`
	To     string  `json:"to" jsonschema:"Second endpoint"`
	Meters float64 `json:"meters" jsonschema:"Walking distance in meters, must be non-negative"`
}

// ItineraryArgs are the arguments of the itinerary tool.
type ItineraryArgs struct {
	Stops []string `json:"stops" jsonschema:"Ordered list of locations to visit"`
	Speed float64  `json:"speed,omitempty" jsonschema:"Walking speed in meters per minute; server default when omitted"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "distance",
		Description: "Returns the direct walking distance in meters between two locations (no multi-hop search)",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args DistanceArgs) (*mcp.CallToolResult, any, error) {
		return s.distance(args), nil, nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "shortest_path",
		Description: "Finds the shortest walking route between two locations and estimates the walking time",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args ShortestPathArgs) (*mcp.CallToolResult, any, error) {
		return s.shortestPath(args), nil, nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_locations",
		Description: "Lists every location that has at least one recorded edge",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args ListLocationsArgs) (*mcp.CallToolResult, any, error) {
		return jsonResult(map[string]any{"locations": s.graph.Locations()}), nil, nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "neighbors",
		Description: "Lists the direct neighbors of a location with their distances in meters",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args NeighborsArgs) (*mcp.CallToolResult, any, error) {
		return jsonResult(map[string]any{
			"location":  args.Location,
			"neighbors": s.graph.Neighbors(args.Location),
		}), nil, nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_edge",
		Description: "Records or overwrites the walking distance between two locations in both directions",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args AddEdgeArgs) (*mcp.CallToolResult, any, error) {
		return s.addEdge(args), nil, nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "itinerary",
		Description: "Walks an ordered list of stops and sums the shortest route of every leg",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args ItineraryArgs) (*mcp.CallToolResult, any, error) {
		return s.itinerary(args), nil, nil
	})
}

func (s *Server) distance(args DistanceArgs) *mcp.CallToolResult {
	return jsonResult(map[string]any{
		"from":   args.From,
		"to":     args.To,
		"meters": s.graph.Distance(args.From, args.To),
		"known":  args.From == args.To || s.graph.HasEdge(args.From, args.To),
	})
}

func (s *Server) shortestPath(args ShortestPathArgs) *mcp.CallToolResult {
	speed, err := s.resolveSpeed(args.Speed)
	if err != nil {
		return errorResult(err.Error())
	}
	return jsonResult(s.graph.ShortestPath(args.From, args.To, campus.WithSpeed(speed)))
}

func (s *Server) addEdge(args AddEdgeArgs) *mcp.CallToolResult {
	if err := s.graph.AddEdge(args.From, args.To, args.Meters); err != nil {
		return errorResult(fmt.Sprintf("add edge failed: %v", err))
	}
	s.logger.Info("edge stored", "from", args.From, "to", args.To, "meters", args.Meters)
	return textResult(fmt.Sprintf("stored %s - %s: %g m", args.From, args.To, args.Meters))
}

func (s *Server) itinerary(args ItineraryArgs) *mcp.CallToolResult {
	speed, err := s.resolveSpeed(args.Speed)
	if err != nil {
		return errorResult(err.Error())
	}
	return jsonResult(s.graph.Itinerary(args.Stops, campus.WithSpeed(speed)))
}

// resolveSpeed maps an omitted speed to the server default and rejects
// values that would make time estimates meaningless.
func (s *Server) resolveSpeed(speed float64) (float64, error) {
	if speed == 0 {
		return s.speed, nil
	}
	if !validSpeed(speed) {
		return 0, fmt.Errorf("speed must be a positive number, got %v", speed)
	}
	return speed, nil
}

func validSpeed(s float64) bool {
	return s > 0 && !math.IsInf(s, 0) && !math.IsNaN(s)
}
