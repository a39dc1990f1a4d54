package recommend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func report(condition string, temp string) string {
	return "=== Current Conditions in Madrid ===\n" +
		"• Condition: " + condition + "\n" +
		"• Temperature: " + temp + "°C\n" +
		"• Real Feel: 25°C\n" +
		"• Humidity: 40%\n" +
		"• Wind: 10 km/h"
}

func TestRecommendSunnyTiers(t *testing.T) {
	e := NewEngine()

	hot := e.Recommend(report("Sunny", "35"), "en-us")
	assert.Contains(t, hot, "Great day to enjoy outdoors!")
	assert.Contains(t, hot, "sunscreen")

	warm := e.Recommend(report("Sunny", "25"), "en-us")
	assert.Contains(t, warm, "picnic")

	cool := e.Recommend(report("Clear sky", "12"), "en-us")
	assert.Contains(t, cool, "botanical garden")
}

func TestRecommendSunnyWithoutTemperature(t *testing.T) {
	e := NewEngine()

	// Tiered categories need a temperature; only the intro survives.
	got := e.Recommend("sunny day in Madrid", "en-us")
	assert.Equal(t, "Great day to enjoy outdoors!", got)
}

func TestRecommendFlatCategories(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		condition string
		want      string
	}{
		{"Overcast", "museums"},
		{"Rain", "Movie or series marathon"},
		{"Drizzle", "Movie or series marathon"},
		{"Snow", "snowman"},
		{"Thunderstorm", "safe place"},
	}
	for _, tt := range tests {
		got := e.Recommend(report(tt.condition, "15"), "en-us")
		assert.Contains(t, got, tt.want, "condition %s", tt.condition)
	}
}

func TestRecommendCategoryOrder(t *testing.T) {
	e := NewEngine()

	// "sunny" is checked before "cloudy", so mixed descriptions take the
	// sunny branch.
	got := e.Recommend(report("Sunny with some clouds", "22"), "en-us")
	assert.Contains(t, got, "Great day to enjoy outdoors!")
}

func TestRecommendTemperatureOnlyFallback(t *testing.T) {
	e := NewEngine()

	hot := e.Recommend(report("Hazy", "29"), "en-us")
	assert.Contains(t, hot, "Hot day, stay hydrated")

	cold := e.Recommend(report("Hazy", "5"), "en-us")
	assert.Contains(t, cold, "Dress warmly")

	mild := e.Recommend(report("Hazy", "18"), "en-us")
	assert.Contains(t, mild, "No specific recommendations")
}

func TestRecommendEmptyInput(t *testing.T) {
	e := NewEngine()
	got := e.Recommend("   ", "en-us")
	assert.Contains(t, got, "Weather information not available")
}

func TestRecommendLanguageNote(t *testing.T) {
	e := NewEngine()

	spanish := e.Recommend(report("Rain", "15"), "es-es")
	assert.True(t, strings.HasSuffix(spanish, "(Recommendations in English)"))

	english := e.Recommend(report("Rain", "15"), "en-us")
	assert.NotContains(t, english, "(Recommendations in English)")
}

func TestNewEngineWithConfigOverlay(t *testing.T) {
	threshold := 20.0
	e := NewEngineWithConfig(Config{HotAboveC: &threshold})

	// 22°C is now above the custom hot threshold.
	got := e.Recommend(report("Hazy", "22"), "en-us")
	assert.Contains(t, got, "Hot day, stay hydrated")

	// Categories were not overridden and still work.
	got = e.Recommend(report("Rain", "22"), "en-us")
	assert.Contains(t, got, "Movie or series marathon")
}

func TestExtractTemperature(t *testing.T) {
	value, ok := ExtractTemperature(report("Sunny", "25.5"))
	require.True(t, ok)
	assert.InDelta(t, 25.5, value, 0.001)

	_, ok = ExtractTemperature("no temperature line here")
	assert.False(t, ok)

	_, ok = ExtractTemperature("• Temperature: N/A°C")
	assert.False(t, ok)

	// Negative values parse too.
	value, ok = ExtractTemperature("• Temperature: -3°C")
	require.True(t, ok)
	assert.InDelta(t, -3, value, 0.001)
}
