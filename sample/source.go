package sample

import "math/rand/v2"

// Source supplies uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

type config struct {
	src Source
}

type Option func(*config)

// WithSource draws random choices from src. A nil src keeps the default.
func WithSource(src Source) Option {
	return func(c *config) {
		if src != nil {
			c.src = src
		}
	}
}

// WithSeed draws random choices from a PCG generator seeded with seed, so the
// same seed and input always produce the same sample.
func WithSeed(seed uint64) Option {
	return WithSource(rand.New(rand.NewPCG(seed, seed)))
}

func newConfig(opts []Option) *config {
	cfg := &config{src: globalSource{}}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
