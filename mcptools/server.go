// Package mcptools exposes a campus.Graph as Model Context Protocol tools.
package mcptools

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/katalvlaran/campusmap/campus"
)

// Server binds a campus map to an MCP server.
type Server struct {
	graph     *campus.Graph
	logger    *slog.Logger
	speed     float64
	mcpServer *mcp.Server
}

// New creates the MCP server and registers every campus tool and resource.
// A speed that is not a finite positive number falls back to campus.DefaultWalkingSpeed.
func New(g *campus.Graph, logger *slog.Logger, version string, speed float64) *Server {
	if !validSpeed(speed) {
		speed = campus.DefaultWalkingSpeed
	}
	s := &Server{
		graph:  g,
		logger: logger,
		speed:  speed,
		mcpServer: mcp.NewServer(&mcp.Implementation{
			Name:    "campusmap",
			Version: version,
		}, nil),
	}
	s.registerTools()
	s.registerResources()

	return s
}

// MCP returns the underlying SDK server, e.g. to connect custom transports.
func (s *Server) MCP() *mcp.Server {
	return s.mcpServer
}

// Run serves over stdin/stdout until ctx is done or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("mcp server listening on stdio")
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         locationsURI,
		Name:        "Campus Locations",
		Description: "Every location on the campus map with its direct neighbors",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		body := make(map[string]map[string]float64)
		for _, loc := range s.graph.Locations() {
			body[loc] = s.graph.Neighbors(loc)
		}
		data, err := json.MarshalIndent(body, "", "  ")
		if err != nil {
			return nil, err
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      locationsURI,
					MIMEType: "application/json",
					Text:     string(data),
				},
			},
		}, nil
	})
}

const locationsURI = "campus://locations"

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("encode result: " + err.Error())
	}
	return textResult(string(data))
}
