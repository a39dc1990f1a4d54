package weather

import "strings"

// defaultStopWords are leading words stripped from a city phrase before it is
// sent to a geocoding endpoint. They cover the common English and Spanish
// framings that reach the resolver when a whole question is passed as input
// ("what is the weather in Madrid", "clima Barcelona").
var defaultStopWords = []string{
	"what", "is", "the", "weather", "in", "for", "like",
	"i", "would", "to", "know", "tiempo", "clima",
}

// ResolverConfig customizes city-phrase resolution. Both fields extend the
// built-in behavior rather than replace it.
type ResolverConfig struct {
	// Overrides maps a normalized city phrase to a provider location key,
	// bypassing the geocoding search entirely. Useful for ambiguous names
	// the search endpoint resolves to the wrong place.
	Overrides map[string]string `yaml:"overrides"`
	// ExtraStopWords are appended to the built-in stop-word list.
	ExtraStopWords []string `yaml:"extra_stop_words"`
}

// Resolver turns free-text city phrases into clean search terms and, for
// phrases listed in the override table, directly into location keys.
type Resolver struct {
	overrides map[string]string
	stopWords map[string]struct{}
}

func NewResolver(cfg ResolverConfig) *Resolver {
	r := &Resolver{
		overrides: make(map[string]string, len(cfg.Overrides)),
		stopWords: make(map[string]struct{}, len(defaultStopWords)+len(cfg.ExtraStopWords)),
	}
	for _, w := range defaultStopWords {
		r.stopWords[w] = struct{}{}
	}
	for _, w := range cfg.ExtraStopWords {
		r.stopWords[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	for phrase, key := range cfg.Overrides {
		r.overrides[normalizePhrase(phrase)] = key
	}
	return r
}

// Clean normalizes a raw city input: it drops a leading "name=" style prefix,
// trims quotes and whitespace, then walks the words and discards the leading
// run of stop words. If every word is a stop word the last word is kept, since
// a bare "weather" style input still needs something to search for.
func (r *Resolver) Clean(input string) string {
	if i := strings.Index(input, "="); i >= 0 {
		input = input[i+1:]
	}
	input = strings.Trim(strings.TrimSpace(input), `"' `)
	words := strings.Fields(input)
	if len(words) == 0 {
		return ""
	}
	for i, w := range words {
		if _, stop := r.stopWords[strings.ToLower(w)]; !stop {
			return strings.Join(words[i:], " ")
		}
	}
	return words[len(words)-1]
}

// Override reports whether the cleaned phrase has a manually assigned
// location key.
func (r *Resolver) Override(city string) (string, bool) {
	key, ok := r.overrides[normalizePhrase(city)]
	return key, ok
}

// Variants returns the search terms to try against a geocoding endpoint, in
// order: the full phrase, the phrase without its trailing word (which is often
// a country or region), and the first word alone. Duplicates are dropped.
func (r *Resolver) Variants(city string) []string {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil
	}
	words := strings.Fields(city)
	candidates := []string{city}
	if len(words) > 1 {
		candidates = append(candidates, strings.Join(words[:len(words)-1], " "), words[0])
	}
	seen := make(map[string]struct{}, len(candidates))
	variants := candidates[:0]
	for _, c := range candidates {
		norm := normalizePhrase(c)
		if _, dup := seen[norm]; dup {
			continue
		}
		seen[norm] = struct{}{}
		variants = append(variants, c)
	}
	return variants
}

func normalizePhrase(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
