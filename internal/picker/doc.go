// Package picker implements the recommendation pipeline: range parsing,
// multi-predicate filtering, deterministic ranking, and the heuristic detail
// expansion.
//
// The pipeline is pure and single-pass. Filtering preserves catalog order and
// is idempotent; ranking is a stable two-key sort (rating descending, title
// ascending) so equal ratings always reproduce the same output. The detail
// expander's rough edges (dropping clauses beyond the fourth, repeating the
// last chunk to pad) are the documented observable contract and must not be
// smoothed over.
package picker
