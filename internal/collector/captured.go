package collector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Awesome-Austin/DataBrokerBreaker/internal/identity"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/logging"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/services"
)

var capturedExtensions = []string{".json", ".yaml", ".yml"}

// CapturedCollector reads previously captured results from
// <dir>/<site>/<Family>_<Given>.{json,yaml,yml}.
type CapturedCollector struct {
	site   string
	dir    string
	logger *slog.Logger
}

// NewCaptured constructs a collector for site rooted at dir.
func NewCaptured(site, dir string, logger *slog.Logger) *CapturedCollector {
	site = identity.SiteKey(site)
	return &CapturedCollector{
		site:   site,
		dir:    dir,
		logger: logging.NewComponentLogger(logger, "collector").With(logging.String(logging.FieldSite, site)),
	}
}

// Site returns the lower-case site key.
func (c *CapturedCollector) Site() string {
	return c.site
}

// Path returns the first existing capture file for person, or the JSON path
// when none exists.
func (c *CapturedCollector) Path(person identity.Identity) (string, bool) {
	base := filepath.Join(c.dir, c.site, person.FileStem())
	for _, ext := range capturedExtensions {
		candidate := base + ext
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return base + capturedExtensions[0], false
}

// Collect loads and normalizes the captured results for person.
func (c *CapturedCollector) Collect(ctx context.Context, person identity.Identity) ([]identity.CandidateRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, ok := c.Path(person)
	if !ok {
		return nil, services.Wrap(services.ErrNoRecords, c.site, "collect", "no captured results for "+person.FullName(), nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, services.Wrap(services.ErrNoRecords, c.site, "collect", "no captured results for "+person.FullName(), err)
		}
		return nil, services.Wrap(services.ErrTransient, c.site, "collect", "read captured results", err)
	}

	if ext := filepath.Ext(path); ext == ".yaml" || ext == ".yml" {
		if data, err = yamlToJSON(data); err != nil {
			return nil, services.Wrap(services.ErrSiteSchemaChange, c.site, "decode", filepath.Base(path), err)
		}
	}

	records, err := DecodeRecords(data)
	if err != nil {
		return nil, services.Wrap(services.ErrSiteSchemaChange, c.site, "decode", filepath.Base(path), err)
	}
	if len(records) == 0 {
		return nil, services.Wrap(services.ErrNoRecords, c.site, "collect", "captured results are empty", nil)
	}

	logging.WithContext(ctx, c.logger).Debug("captured results loaded",
		logging.String("path", path),
		logging.Int("records", len(records)),
	)
	return records, nil
}

func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return json.Marshal(jsonCompatible(doc))
}

// jsonCompatible rewrites map[any]any nodes, which yaml produces for
// non-string keys, into map[string]any.
func jsonCompatible(value any) any {
	switch v := value.(type) {
	case map[string]any:
		for key, child := range v {
			v[key] = jsonCompatible(child)
		}
		return v
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, child := range v {
			out[fmt.Sprint(key)] = jsonCompatible(child)
		}
		return out
	case []any:
		for i, child := range v {
			v[i] = jsonCompatible(child)
		}
		return v
	default:
		return v
	}
}
