package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolverClean(t *testing.T) {
	r := NewResolver(ResolverConfig{})

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain city", "Madrid", "Madrid"},
		{"surrounding whitespace", "  Madrid  ", "Madrid"},
		{"quoted", `"Madrid"`, "Madrid"},
		{"key=value prefix", "city=Madrid", "Madrid"},
		{"english question", "what is the weather in New York", "New York"},
		{"spanish question", "tiempo Barcelona", "Barcelona"},
		{"all stop words keeps last", "what is the weather", "weather"},
		{"multi word city", "weather in San Francisco", "San Francisco"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Clean(tt.input))
		})
	}
}

func TestResolverCleanExtraStopWords(t *testing.T) {
	r := NewResolver(ResolverConfig{ExtraStopWords: []string{"por", "favor"}})
	assert.Equal(t, "Sevilla", r.Clean("por favor clima Sevilla"))
}

func TestResolverVariants(t *testing.T) {
	r := NewResolver(ResolverConfig{})

	assert.Equal(t, []string{"Madrid"}, r.Variants("Madrid"))
	assert.Equal(t,
		[]string{"San Jose Costa Rica", "San Jose Costa", "San"},
		r.Variants("San Jose Costa Rica"))
	assert.Nil(t, r.Variants("  "))

	// The trailing-word and first-word variants collapse for two-word
	// phrases that repeat a word.
	assert.Equal(t, []string{"Baden Baden", "Baden"}, r.Variants("Baden Baden"))
}

func TestResolverOverride(t *testing.T) {
	r := NewResolver(ResolverConfig{Overrides: map[string]string{
		"Washington DC": "327659",
	}})

	key, ok := r.Override("washington dc")
	assert.True(t, ok)
	assert.Equal(t, "327659", key)

	key, ok = r.Override("WASHINGTON   DC")
	assert.True(t, ok, "override lookup should normalize case and spacing")
	assert.Equal(t, "327659", key)

	_, ok = r.Override("Madrid")
	assert.False(t, ok)
}
