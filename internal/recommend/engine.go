// Package recommend turns a formatted weather report into a short list of
// activity suggestions using keyword matching and temperature thresholds.
package recommend

import (
	"strconv"
	"strings"
)

// Tier is one temperature band inside a category. Tiers are checked in order;
// a nil AboveC matches unconditionally and acts as the catch-all band.
type Tier struct {
	AboveC      *float64 `yaml:"above_c"`
	Suggestions []string `yaml:"suggestions"`
}

// Category is a weather type detected by substring match against the report
// text. Either Suggestions (flat list) or Tiers (temperature dependent) is
// populated, not both.
type Category struct {
	Name        string   `yaml:"name"`
	Keywords    []string `yaml:"keywords"`
	Intro       string   `yaml:"intro"`
	Suggestions []string `yaml:"suggestions"`
	Tiers       []Tier   `yaml:"tiers"`
}

// Config holds the full rule set. Zero-value fields fall back to the built-in
// defaults, so a config file only needs to override what it changes.
type Config struct {
	Categories []Category `yaml:"categories"`
	// HotAboveC / ColdBelowC drive the temperature-only advice used when no
	// category keyword matched.
	HotAboveC       *float64 `yaml:"hot_above_c"`
	ColdBelowC      *float64 `yaml:"cold_below_c"`
	HotIntro        string   `yaml:"hot_intro"`
	HotSuggestions  []string `yaml:"hot_suggestions"`
	ColdIntro       string   `yaml:"cold_intro"`
	ColdSuggestions []string `yaml:"cold_suggestions"`
	GenericIntro    string   `yaml:"generic_intro"`
	GenericList     []string `yaml:"generic_suggestions"`
}

// Engine applies the rule set. It is stateless and safe for concurrent use.
type Engine struct {
	cfg Config
}

// NewEngine builds an engine with the built-in rule set.
func NewEngine() *Engine {
	return &Engine{cfg: defaultConfig()}
}

// NewEngineWithConfig overlays cfg on the defaults: any field left empty in
// cfg keeps its default value.
func NewEngineWithConfig(cfg Config) *Engine {
	merged := defaultConfig()
	if len(cfg.Categories) > 0 {
		merged.Categories = cfg.Categories
	}
	if cfg.HotAboveC != nil {
		merged.HotAboveC = cfg.HotAboveC
	}
	if cfg.ColdBelowC != nil {
		merged.ColdBelowC = cfg.ColdBelowC
	}
	if cfg.HotIntro != "" {
		merged.HotIntro = cfg.HotIntro
	}
	if len(cfg.HotSuggestions) > 0 {
		merged.HotSuggestions = cfg.HotSuggestions
	}
	if cfg.ColdIntro != "" {
		merged.ColdIntro = cfg.ColdIntro
	}
	if len(cfg.ColdSuggestions) > 0 {
		merged.ColdSuggestions = cfg.ColdSuggestions
	}
	if cfg.GenericIntro != "" {
		merged.GenericIntro = cfg.GenericIntro
	}
	if len(cfg.GenericList) > 0 {
		merged.GenericList = cfg.GenericList
	}
	return &Engine{cfg: merged}
}

// Recommend produces the activity text for a weather description. The
// language code only controls whether the English-output note is appended;
// the suggestion lists themselves are English.
func (e *Engine) Recommend(weatherText, language string) string {
	if strings.TrimSpace(weatherText) == "" {
		return "No recommendations could be generated. Weather information not available."
	}

	lower := strings.ToLower(weatherText)
	temperature, hasTemp := ExtractTemperature(weatherText)

	var lines []string
	if cat := e.matchCategory(lower); cat != nil {
		lines = append(lines, cat.Intro)
		lines = append(lines, cat.suggestionsFor(temperature, hasTemp)...)
	} else if hasTemp && e.cfg.HotAboveC != nil && temperature > *e.cfg.HotAboveC {
		lines = append(lines, e.cfg.HotIntro)
		lines = append(lines, e.cfg.HotSuggestions...)
	} else if hasTemp && e.cfg.ColdBelowC != nil && temperature < *e.cfg.ColdBelowC {
		lines = append(lines, e.cfg.ColdIntro)
		lines = append(lines, e.cfg.ColdSuggestions...)
	}

	if len(lines) == 0 {
		lines = append(lines, e.cfg.GenericIntro)
		lines = append(lines, e.cfg.GenericList...)
	}

	text := strings.Join(lines, "\n")
	if language != "" && language != "en-us" {
		return text + "\n\n(Recommendations in English)"
	}
	return text
}

// matchCategory returns the first category with a keyword present in the
// lower-cased weather text. Declaration order decides ties.
func (e *Engine) matchCategory(lowerText string) *Category {
	for i := range e.cfg.Categories {
		for _, kw := range e.cfg.Categories[i].Keywords {
			if strings.Contains(lowerText, kw) {
				return &e.cfg.Categories[i]
			}
		}
	}
	return nil
}

// suggestionsFor picks the suggestion list for a category. Tiered categories
// need a temperature; without one only the intro line is emitted.
func (c *Category) suggestionsFor(temperature float64, hasTemp bool) []string {
	if len(c.Tiers) == 0 {
		return c.Suggestions
	}
	if !hasTemp {
		return nil
	}
	for _, tier := range c.Tiers {
		if tier.AboveC == nil || temperature > *tier.AboveC {
			return tier.Suggestions
		}
	}
	return nil
}

// ExtractTemperature pulls the numeric value out of the "Temperature:" line
// of a formatted report. The second return value is false when the line is
// missing or does not parse.
func ExtractTemperature(weatherText string) (float64, bool) {
	for _, line := range strings.Split(weatherText, "\n") {
		if !strings.Contains(strings.ToLower(line), "temperature") {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		raw := strings.TrimSpace(strings.ReplaceAll(parts[1], "°C", ""))
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, false
		}
		return value, true
	}
	return 0, false
}

func floatPtr(v float64) *float64 { return &v }

// defaultConfig is the built-in rule set. Categories are scanned in order, so
// storm keywords must not shadow rain keywords and vice versa.
func defaultConfig() Config {
	return Config{
		Categories: []Category{
			{
				Name:     "sunny",
				Keywords: []string{"sunny", "clear", "sun"},
				Intro:    "Great day to enjoy outdoors!",
				Tiers: []Tier{
					{AboveC: floatPtr(30), Suggestions: []string{
						"• Wear sunscreen and a hat",
						"• Visit a pool or beach",
						"• Enjoy a shaded terrace",
					}},
					{AboveC: floatPtr(20), Suggestions: []string{
						"• Take a walk in the park or city",
						"• Have a picnic outdoors",
						"• Practice outdoor sports",
					}},
					{Suggestions: []string{
						"• Take a pleasant walk",
						"• Visit a botanical garden",
						"• Enjoy some sun on a terrace",
					}},
				},
			},
			{
				Name:     "cloudy",
				Keywords: []string{"cloudy", "overcast", "clouds"},
				Intro:    "Cloudy day, but many options!",
				Suggestions: []string{
					"• Visit museums or art galleries",
					"• Explore shops and malls",
					"• Enjoy coffee at a cozy café",
					"• Take advantage of that exhibition you had pending",
				},
			},
			{
				Name:     "rain",
				Keywords: []string{"rain", "raining", "rainy", "drizzle"},
				Intro:    "Rainy day, perfect for indoor activities!",
				Suggestions: []string{
					"• Movie or series marathon",
					"• Try a new recipe at home",
					"• Read that book you have pending",
					"• Board games with friends or family",
				},
			},
			{
				Name:     "snow",
				Keywords: []string{"snow", "snowing", "snowy"},
				Intro:    "Snow day!",
				Suggestions: []string{
					"• Build a snowman",
					"• Have hot chocolate with churros",
					"• If you're in the mountains, ski or snowboard",
					"• Photograph the winter landscape",
				},
			},
			{
				Name:     "storm",
				Keywords: []string{"storm", "stormy", "thunder", "lightning"},
				Intro:    "Be careful with the storm!",
				Suggestions: []string{
					"• Better stay in a safe place",
					"• Disconnect electrical appliances",
					"• Have flashlights handy for possible power outages",
					"• Take advantage of organizing at home",
				},
			},
		},
		HotAboveC: floatPtr(25),
		HotIntro:  "Hot day, stay hydrated",
		HotSuggestions: []string{
			"• Visit places with air conditioning",
			"• Enjoy a cold drink on the terrace",
			"• Go to the pool or beach",
		},
		ColdBelowC: floatPtr(10),
		ColdIntro:  "It's cold! Dress warmly",
		ColdSuggestions: []string{
			"• Enjoy a hot drink",
			"• Plan indoor activities",
			"• Prepare a hot soup or stew",
		},
		GenericIntro: "No specific recommendations, but here are some ideas:",
		GenericList: []string{
			"• Take a short walk",
			"• Take advantage of learning something new",
			"• Organize your plans for the coming days",
		},
	}
}
