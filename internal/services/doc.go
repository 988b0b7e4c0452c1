// Package services defines shared utilities consumed by the picker pipeline
// and external integrations.
//
// Key responsibilities:
//   - Context helpers that stamp correlation identifiers and episode titles
//     for logging.
//   - Structured error markers plus the Wrap helper that translate failures
//     into consistent user-facing reporting and exit codes.
//
// Use these helpers when wiring new pipeline logic so error handling and
// observability stay uniform across commands.
package services
