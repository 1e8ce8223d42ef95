package unguided

// Option configures an unguided manager at construction.
type Option func(*settings)

type settings struct {
	depthFirst bool
}

// WithDepthFirst switches the manager to depth-first order.
func WithDepthFirst() Option {
	return func(s *settings) { s.depthFirst = true }
}

func apply(opts []Option) settings {
	var s settings
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	return s
}
