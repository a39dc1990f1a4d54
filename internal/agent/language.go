package agent

import "strings"

// languageCodes maps a bare language word appearing in the prompt to the
// locale code the weather providers and the rule engine expect.
var languageCodes = map[string]string{
	"en": "en-us",
	"es": "es-es",
	"fr": "fr-fr",
	"de": "de-de",
	"it": "it-it",
}

// ExtractCityAndLanguage splits a weather-intent prompt into the city phrase
// and a target language. A bare language word ("Madrid es") marks everything
// before it as the city; without one, the whole input is the city phrase and
// the language falls back to defaultLanguage. The city phrase may still carry
// question words; the location resolver strips those later.
func ExtractCityAndLanguage(input, defaultLanguage string) (city, language string) {
	words := strings.Fields(input)
	for i, w := range words {
		if code, ok := languageCodes[strings.ToLower(w)]; ok && i > 0 {
			return strings.Join(words[:i], " "), code
		}
	}
	return strings.TrimSpace(input), defaultLanguage
}
