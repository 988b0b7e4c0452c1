// Package omdb provides a minimal OMDb API client used to backfill missing
// IMDb ratings. Lookups are best-effort: the enrichment step treats every
// failure as "no rating available" and never surfaces it to the user.
package omdb
