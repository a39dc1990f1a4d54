package weather

import (
	"context"
	"log"
	"strings"
)

// Provider fetches current conditions for a free-text city phrase.
// Implementations own their HTTP clients and timeouts.
type Provider interface {
	// Name identifies the provider in logs and errors.
	Name() string
	// Current resolves the city and returns its current conditions.
	Current(ctx context.Context, city string) (*Report, error)
}

// Service queries a fixed chain of providers in order and returns the first
// successful report. A provider that fails, or that is not configured, falls
// through silently to the next one.
type Service struct {
	providers []Provider
}

func NewService(providers ...Provider) *Service {
	return &Service{providers: providers}
}

// Current returns the current conditions for city, or a *LookupError carrying
// each provider's failure when the whole chain is exhausted.
func (s *Service) Current(ctx context.Context, city string) (*Report, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrEmptyCity
	}

	var causes []*ProviderError
	for _, p := range s.providers {
		report, err := p.Current(ctx, city)
		if err == nil {
			return report, nil
		}
		log.Printf("WARNING: weather provider %s failed for %q: %v", p.Name(), city, err)
		causes = append(causes, &ProviderError{Provider: p.Name(), Err: err})
	}
	return nil, &LookupError{City: city, Causes: causes}
}
