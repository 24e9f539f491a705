// Package randcorr samples random correlation matrices with a tunable
// concentration parameter β via the vine method.
//
// The sampler draws partial correlations from symmetric Beta(α,α)
// distributions rescaled to (−1,1), with α = β + (N−2−k)/2 at vine lag k,
// and converts them to raw correlations lag by lag. The construction
// guarantees:
//
//   - unit diagonal (exactly 1.0),
//   - symmetry by construction,
//   - positive semidefiniteness for every draw,
//   - concentration behavior: larger β pulls off-diagonal mass toward 0
//     (identity-like), smaller β spreads it toward ±1.
//
// Determinism: all draws run on a source derived from the caller's
// *rand.Rand, so a fixed stream state fixes the sample. One derivation per
// Sample call; the caller's stream advances by exactly one Uint64.
//
// Complexity: O(N²) draws, O(N³) worst-case partial-to-raw conversion.
package randcorr
