// SPDX-License-Identifier: MIT
// Package: olfenv/randcorr
//
// errors.go — sentinel errors for the randcorr package.
// Callers branch with errors.Is; messages are stable and never matched.

package randcorr

import "errors"

// ErrBadSize indicates that the requested dimension N is smaller than 1.
var ErrBadSize = errors.New("randcorr: invalid size")

// ErrBadConcentration indicates a non-positive concentration parameter β.
var ErrBadConcentration = errors.New("randcorr: concentration must be > 0")

// ErrNeedRandSource indicates that a nil *rand.Rand was supplied; the
// sampler has no ambient fallback stream of its own.
var ErrNeedRandSource = errors.New("randcorr: rng is required")
