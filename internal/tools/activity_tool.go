package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmbarreiro1/mcp-weather/internal/recommend"
)

// ActivityTool exposes the rule-based activity recommendations to the LLM.
// The model first calls get_weather, then passes the resulting description
// here.
type ActivityTool struct {
	engine *recommend.Engine
}

var _ ToolExecutor = (*ActivityTool)(nil)

func NewActivityTool(engine *recommend.Engine) *ActivityTool {
	return &ActivityTool{engine: engine}
}

func (at *ActivityTool) Definition() Tool {
	return NewFunctionTool(
		"recommend_activity",
		"Get activity recommendations based on current weather conditions. Input is the weather description obtained from get_weather.",
		JSONSchema{
			Type: "object",
			Properties: map[string]*JSONSchema{
				"weather": {
					Type:        "string",
					Description: "The weather description, e.g. 'sunny, 25°C' or the full get_weather output.",
				},
				"language": {
					Type:        "string",
					Description: "Optional target language code such as 'es-es'. Recommendations are produced in English with a note when another language is requested.",
				},
			},
			Required: []string{"weather"},
		},
	)
}

func (at *ActivityTool) Execute(_ context.Context, arguments string) (string, error) {
	var args struct {
		Weather  string `json:"weather"`
		Language string `json:"language"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return "", fmt.Errorf("invalid arguments for activity tool: %w", err)
	}
	return at.engine.Recommend(args.Weather, args.Language), nil
}
