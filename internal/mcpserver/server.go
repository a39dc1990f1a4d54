// Package mcpserver wires the weather lookup and activity recommendations
// into an MCP server so any MCP-capable AI tool can call them over stdio.
// This is a composition root: concrete services come in, tools get
// registered, no business logic lives here.
package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jmbarreiro1/mcp-weather/internal/recommend"
	"github.com/jmbarreiro1/mcp-weather/internal/version"
	"github.com/jmbarreiro1/mcp-weather/internal/weather"
)

// New creates the MCP server with the get_weather and recommend_activity
// tools registered.
func New(service *weather.Service, engine *recommend.Engine, defaultLanguage string) *server.MCPServer {
	s := server.NewMCPServer(
		"mcp-weather",
		version.GetBuildInfo().Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	weatherTool := &getWeatherTool{service: service}
	s.AddTool(weatherTool.Definition(), weatherTool.Handle)

	activityTool := &recommendActivityTool{engine: engine, defaultLanguage: defaultLanguage}
	s.AddTool(activityTool.Definition(), activityTool.Handle)

	return s
}

func serverInstructions() string {
	return strings.TrimSpace(`
Weather assistant tools. To answer a weather question, call get_weather with
the city name, then pass its output to recommend_activity to suggest
activities matching the conditions.
`)
}

// --- get_weather ---

type getWeatherTool struct {
	service *weather.Service
}

func (t *getWeatherTool) Definition() mcp.Tool {
	return mcp.NewTool("get_weather",
		mcp.WithDescription(
			"Get the current weather in a city: condition, temperature, "+
				"real feel, humidity and wind. The input should be the city "+
				"name only, e.g. 'Madrid'.",
		),
		mcp.WithString("city",
			mcp.Required(),
			mcp.Description("City name to look up"),
		),
	)
}

func (t *getWeatherTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	city := strings.TrimSpace(req.GetString("city", ""))
	if city == "" {
		return mcp.NewToolResultError("'city' is required"), nil
	}

	report, err := t.service.Current(ctx, city)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("weather lookup failed: %v", err)), nil
	}
	return mcp.NewToolResultText(report.Format()), nil
}

// --- recommend_activity ---

type recommendActivityTool struct {
	engine          *recommend.Engine
	defaultLanguage string
}

func (t *recommendActivityTool) Definition() mcp.Tool {
	return mcp.NewTool("recommend_activity",
		mcp.WithDescription(
			"Get activity recommendations based on current weather "+
				"conditions. The input should be the weather description "+
				"obtained from get_weather, e.g. 'sunny, 25°C'.",
		),
		mcp.WithString("weather",
			mcp.Required(),
			mcp.Description("Weather description to base recommendations on"),
		),
		mcp.WithString("language",
			mcp.Description("Target language code, e.g. 'es-es' (recommendations are produced in English)"),
		),
	)
}

func (t *recommendActivityTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	weatherText := strings.TrimSpace(req.GetString("weather", ""))
	if weatherText == "" {
		return mcp.NewToolResultError("'weather' is required"), nil
	}
	language := req.GetString("language", t.defaultLanguage)
	return mcp.NewToolResultText(t.engine.Recommend(weatherText, language)), nil
}
