package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmbarreiro1/mcp-weather/internal/tools"
)

func TestNewGeminiClientRequiresKey(t *testing.T) {
	_, err := NewGeminiClient("", "gemini-1.5-flash")
	require.Error(t, err)
}

func TestGeminiRequestModelIsolation(t *testing.T) {
	c, err := NewGeminiClient("test-key", "gemini-1.5-flash")
	require.NoError(t, err)

	temp := float32(0.2)
	first := c.requestModel(
		&GenerationConfig{Temperature: &temp, MaxTokens: 128},
		[]tools.Tool{tools.NewFunctionTool("get_weather", "weather lookup", tools.JSONSchema{Type: "object"})},
	)
	second := c.requestModel(&GenerationConfig{}, nil)

	// Each request gets its own model; settings must not leak across calls.
	assert.NotSame(t, first, second)

	require.NotNil(t, first.Temperature)
	assert.InDelta(t, 0.2, float64(*first.Temperature), 1e-6)
	require.NotNil(t, first.MaxOutputTokens)
	assert.EqualValues(t, 128, *first.MaxOutputTokens)
	assert.Len(t, first.Tools, 1)

	assert.Nil(t, second.Temperature)
	assert.Nil(t, second.Tools)
	require.NotNil(t, second.MaxOutputTokens)
	assert.EqualValues(t, 4096, *second.MaxOutputTokens)
}
