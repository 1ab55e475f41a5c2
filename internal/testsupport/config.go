package testsupport

import (
	"path/filepath"
	"testing"

	"github.com/Awesome-Austin/DataBrokerBreaker/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.ResultsDir = filepath.Join(base, "captured")
	cfgVal.Paths.OutputDir = filepath.Join(base, "output")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Collection.DecisionPolicy = config.PolicyReject
	cfgVal.Collection.RelativePolicy = config.PolicyReject

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithSites overrides the configured broker sites.
func WithSites(sites ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Collection.Sites = append([]string(nil), sites...)
	}
}

// WithDecisionPolicy overrides the ambiguous-record policy.
func WithDecisionPolicy(policy string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Collection.DecisionPolicy = policy
	}
}

// WithoutResults disables CSV result output.
func WithoutResults() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Collection.WriteResults = false
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
