// Package ranking scores a candidate corpus against a job description and
// produces the persisted batch ranking artifact.
//
// A Rank call fits the lexical section ranker over the corpus, extracts the
// job description's skill set, then scores profiles in partitions on a
// shared worker pool. Each partition writes into its own slice region, so
// workers never contend; the calling goroutine merges, sorts, and assigns
// ranks. Cancellation is checked at per-profile boundaries and leaves no
// partial artifact behind.
//
// The combined score is a weighted blend of the boosted lexical similarity
// and the raw skill overlap, clamped to [0, 1]. Ties break by lexical score
// and then filename so repeated runs over the same corpus produce identical
// orderings.
package ranking
