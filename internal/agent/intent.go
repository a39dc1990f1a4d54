package agent

import "strings"

// Intent classifies what a user turn is asking for.
type Intent string

const (
	// IntentWeather means the turn can be answered directly through the
	// weather service plus the rule engine, without an LLM round trip.
	IntentWeather Intent = "weather"
	// IntentGeneral means the turn goes to the LLM, with tools attached.
	IntentGeneral Intent = "general"
)

// weatherKeywords trigger the direct weather path. English and Spanish terms
// are both checked since the assistant is multilingual.
var weatherKeywords = []string{
	"weather", "tiempo", "clima", "forecast", "temperature",
	"how hot is it", "is it raining",
}

// DetectIntent performs a fast keyword scan over the prompt.
func DetectIntent(prompt string) Intent {
	lower := strings.ToLower(prompt)
	for _, kw := range weatherKeywords {
		if strings.Contains(lower, kw) {
			return IntentWeather
		}
	}
	return IntentGeneral
}
