// The mcp binary exposes the weather assistant as an MCP server over stdio,
// so MCP-capable AI tools (Claude Code, Cursor, and friends) can call
// get_weather and recommend_activity directly.
//
// Usage:
//
//	mcp-weather            # start the stdio server
//	mcp-weather --version  # print build info
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/jmbarreiro1/mcp-weather/internal/config"
	"github.com/jmbarreiro1/mcp-weather/internal/mcpserver"
	"github.com/jmbarreiro1/mcp-weather/internal/recommend"
	"github.com/jmbarreiro1/mcp-weather/internal/version"
	"github.com/jmbarreiro1/mcp-weather/internal/weather"
)

func main() {
	// MCP owns stdout; everything else goes to stderr.
	log.SetOutput(os.Stderr)

	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Printf("mcp-weather v%s\n", version.GetBuildInfo().Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	resolver := weather.NewResolver(cfg.Resolver)
	service := weather.NewService(
		weather.NewAccuWeather(cfg.AccuWeatherKey, cfg.DefaultLanguage, resolver),
		weather.NewOpenMeteo(resolver),
	)
	engine := recommend.NewEngineWithConfig(cfg.Recommend)

	s := mcpserver.New(service, engine, cfg.DefaultLanguage)
	return server.ServeStdio(s)
}
