package extrema

// DefaultSortThreshold is the divisor applied to a collection's length to decide
// between heap selection and a full sort.
const DefaultSortThreshold = 10

type config struct {
	sortThreshold int
}

type Option func(*config)

// WithSortThreshold sets the divisor d such that the Collection variants sort the
// whole input when k > Len()/d, and use a bounded heap otherwise.
// Values below 1 are ignored.
func WithSortThreshold(d int) Option {
	return func(c *config) {
		if d >= 1 {
			c.sortThreshold = d
		}
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{sortThreshold: DefaultSortThreshold}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
