// Package catalog owns the episode record type and every way records enter
// the pipeline: CSV loading, row normalization, the built-in sample set, and
// a load-once-per-session loader.
//
// Normalization is deliberately forgiving. CSV rows arrive as loosely-typed
// text and are coerced field by field; unparseable numbers fall back to zero,
// an absent rating stays "unknown" rather than becoming 0.0, and booleans are
// matched against a small closed vocabulary. A malformed row degrades to
// defaults instead of failing the whole load.
package catalog
