package fixtures

import "errors"

// ErrTooFewVertices is returned when n is smaller than 1.
var ErrTooFewVertices = errors.New("fixtures: n must be at least 1")

// ErrInvalidProbability is returned when p lies outside the closed interval
// [0,1].
var ErrInvalidProbability = errors.New("fixtures: probability must be in [0,1]")

// ErrNeedRandSource is returned when RandomSparse is called with a strictly
// fractional p (0 < p < 1) and a nil *rand.Rand — only p==0 and p==1 have a
// deterministic outcome that needs no randomness.
var ErrNeedRandSource = errors.New("fixtures: rng is required for 0 < p < 1")
