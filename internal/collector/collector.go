package collector

import (
	"context"
	"log/slog"

	"github.com/Awesome-Austin/DataBrokerBreaker/internal/config"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/identity"
)

// Collector returns one broker site's search results for a person.
type Collector interface {
	Site() string
	Collect(ctx context.Context, person identity.Identity) ([]identity.CandidateRecord, error)
}

// FromConfig returns one CapturedCollector per configured site, in
// configuration order.
func FromConfig(cfg *config.Config, logger *slog.Logger) []Collector {
	if cfg == nil {
		return nil
	}
	out := make([]Collector, 0, len(cfg.Collection.Sites))
	for _, site := range cfg.Collection.Sites {
		out = append(out, NewCaptured(site, cfg.Paths.ResultsDir, logger))
	}
	return out
}
