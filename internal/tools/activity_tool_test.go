package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmbarreiro1/mcp-weather/internal/recommend"
)

func TestActivityToolDefinition(t *testing.T) {
	tool := NewActivityTool(recommend.NewEngine())
	def := tool.Definition()

	assert.Equal(t, "recommend_activity", def.Function.Name)
	assert.Contains(t, def.Function.Parameters.Properties, "weather")
	assert.Contains(t, def.Function.Parameters.Properties, "language")
	assert.Equal(t, []string{"weather"}, def.Function.Parameters.Required)
}

func TestActivityToolExecute(t *testing.T) {
	tool := NewActivityTool(recommend.NewEngine())

	out, err := tool.Execute(context.Background(), `{"weather":"Sunny, Temperature: 25°C"}`)
	require.NoError(t, err)
	assert.Contains(t, out, "Great day to enjoy outdoors!")
}

func TestActivityToolLanguageNote(t *testing.T) {
	tool := NewActivityTool(recommend.NewEngine())

	out, err := tool.Execute(context.Background(), `{"weather":"Rainy","language":"es-es"}`)
	require.NoError(t, err)
	assert.Contains(t, out, "(Recommendations in English)")
}

func TestActivityToolBadArguments(t *testing.T) {
	tool := NewActivityTool(recommend.NewEngine())
	_, err := tool.Execute(context.Background(), `{`)
	require.Error(t, err)
}
