package config

import (
	"errors"
	"fmt"
	"regexp"
)

var siteKeyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateCollection(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	if c.Paths.ResultsDir == "" {
		return errors.New("paths.results_dir must be set")
	}
	if c.Paths.OutputDir == "" {
		return errors.New("paths.output_dir must be set")
	}
	return nil
}

func (c *Config) validateCollection() error {
	if len(c.Collection.Sites) == 0 {
		return errors.New("collection.sites must include at least one site")
	}
	for _, site := range c.Collection.Sites {
		if !siteKeyPattern.MatchString(site) {
			return fmt.Errorf("collection.sites: invalid site key %q", site)
		}
	}
	switch c.Collection.DecisionPolicy {
	case PolicyInteractive, PolicyAccept, PolicyReject:
	default:
		return fmt.Errorf("collection.decision_policy must be one of interactive, accept, reject (got %q)", c.Collection.DecisionPolicy)
	}
	switch c.Collection.RelativePolicy {
	case PolicyInteractive, PolicyReject:
	default:
		return fmt.Errorf("collection.relative_policy must be interactive or reject (got %q)", c.Collection.RelativePolicy)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error (got %q)", c.Logging.Level)
	}
}
