// Package config loads, normalizes, and validates databroker configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the DATABROKER_DATA_DIR
// environment override. The Config type centralizes every knob the CLI and
// collection workflow need: where the roster lives, where captured broker
// results are read from, where accepted results are written, and how
// undecided records are resolved.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical site keys, and clear validation errors.
package config
