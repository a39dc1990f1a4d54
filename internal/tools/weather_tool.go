package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmbarreiro1/mcp-weather/internal/weather"
)

// WeatherService is the slice of the weather service the tool needs; tests
// substitute a fake.
type WeatherService interface {
	Current(ctx context.Context, city string) (*weather.Report, error)
}

// WeatherTool exposes the current-conditions lookup to the LLM.
type WeatherTool struct {
	service WeatherService
}

var _ ToolExecutor = (*WeatherTool)(nil)

func NewWeatherTool(service WeatherService) *WeatherTool {
	return &WeatherTool{service: service}
}

func (wt *WeatherTool) Definition() Tool {
	return NewFunctionTool(
		"get_weather",
		"Get the current weather conditions for a city. Input is the city name only, for example 'Madrid' or 'New York'.",
		JSONSchema{
			Type: "object",
			Properties: map[string]*JSONSchema{
				"city": {
					Type:        "string",
					Description: "The city to look up, e.g. 'Barcelona' or 'San Francisco'.",
				},
			},
			Required: []string{"city"},
		},
	)
}

func (wt *WeatherTool) Execute(ctx context.Context, arguments string) (string, error) {
	var args struct {
		City string `json:"city"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return "", fmt.Errorf("invalid arguments for weather tool: %w", err)
	}

	report, err := wt.service.Current(ctx, args.City)
	if err != nil {
		// Lookup problems go back to the model as text so it can tell the
		// user what went wrong instead of the whole turn failing.
		var lookupErr *weather.LookupError
		if errors.Is(err, weather.ErrEmptyCity) {
			return "Please provide a city name.", nil
		}
		if errors.As(err, &lookupErr) {
			return fmt.Sprintf("Could not find weather for %q. Please check the city name.", lookupErr.City), nil
		}
		return "", fmt.Errorf("weather lookup failed: %w", err)
	}
	return report.Format(), nil
}
