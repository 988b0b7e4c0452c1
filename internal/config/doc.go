// Package config loads, normalizes, and validates svupick configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// OMDB_API_KEY. The Config type centralizes every knob the CLI needs: catalog
// location, picker thresholds, enrichment credentials, and logging shape.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical defaults, and clear validation errors.
package config
