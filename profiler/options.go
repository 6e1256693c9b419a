package profiler

// Options configures one profiling pass.
type Options struct {
	RefX, RefY int
	MinProfile int
	MaxProfile int
}

// Option mutates an Options value under construction.
type Option func(*Options)

// DefaultOptions returns the build pipeline's default reference coordinate
// and profile bounds: (RefX, RefY) = (25, 23), MinProfile = 1, MaxProfile = 7.
func DefaultOptions(opts ...Option) Options {
	o := Options{RefX: 25, RefY: 23, MinProfile: 1, MaxProfile: 7}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithReference overrides the scan's reference coordinate.
func WithReference(x, y int) Option {
	return func(o *Options) {
		o.RefX = x
		o.RefY = y
	}
}

// WithProfileBounds overrides the minimum guaranteed scan depth and the
// hard cap applied when nothing has been found yet.
func WithProfileBounds(min, max int) Option {
	return func(o *Options) {
		o.MinProfile = min
		o.MaxProfile = max
	}
}
