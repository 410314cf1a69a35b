package vector

// Option configures a Vector at construction.
type Option func(*options)

type options struct {
	capacity int
	maxBytes int64
}

// WithCapacity reserves storage for n elements up front.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithMaxBytes bounds every buffer the vector allocates to n bytes.
// Requests above the bound fail with ErrAllocation. Zero disables the bound.
func WithMaxBytes(n int64) Option {
	return func(o *options) {
		o.maxBytes = n
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
