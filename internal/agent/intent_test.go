package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		prompt string
		want   Intent
	}{
		{"What's the weather in Madrid?", IntentWeather},
		{"WEATHER in Paris", IntentWeather},
		{"que tiempo hace en Sevilla", IntentWeather},
		{"dime el clima de Bogota", IntentWeather},
		{"forecast for tomorrow", IntentWeather},
		{"what temperature is it", IntentWeather},
		{"how hot is it in Rome", IntentWeather},
		{"is it raining in London?", IntentWeather},
		{"tell me a joke", IntentGeneral},
		{"who won the world cup", IntentGeneral},
		{"", IntentGeneral},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, DetectIntent(tc.prompt), "prompt: %q", tc.prompt)
	}
}
