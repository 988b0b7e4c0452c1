// Package ratingcache persists successful OMDb lookups in a small SQLite
// database so repeated runs skip the network for identifiers they have
// already resolved.
//
// The cache is strictly an optimization: a nil *Store is a valid no-op, and
// every failure degrades to "not cached" rather than interrupting the
// enrichment step.
package ratingcache
