package tensor

// Default knobs — single source of truth, mirrored by the Option
// constructors below.
const (
	// DefaultValidateNames controls whether New rejects duplicate Names.
	DefaultValidateNames = true
)

// config holds the resolved value of every Option.
type config struct {
	validateNames bool
}

func defaultConfig() config {
	return config{validateNames: DefaultValidateNames}
}

// Option configures optional New behavior.
type Option func(*config)

// WithoutNameValidation skips the duplicate-Names check. Intended for
// internal callers (edgeop) that have already proven uniqueness and want
// to avoid a redundant O(rank) scan.
func WithoutNameValidation() Option {
	return func(c *config) { c.validateNames = false }
}

func gatherOptions(opts []Option) config {
	c := defaultConfig()
	for _, o := range opts {
		o(&c)
	}
	return c
}
