package hiatus

// Options control the detection of hiatus.
type Options struct {
	Lookahead       int  // number of clusters to look ahead from a vowel, at least 1
	IotaAsDiphthong bool // treat a cluster with iota subscript as forming a diphthong
}

// Option is a functional option for Detect.
type Option func(*Options)

// WithLookahead sets the number of clusters the scanner will look ahead from
// a vowel cluster to find the next vowel cluster. Values less than 1 will be
// treated as 1.
func WithLookahead(k int) Option {
	return func(o *Options) {
		o.Lookahead = k
	}
}

// WithIotaAsDiphthong lets an iota subscript on either side of an intra-word
// vowel pair force the pair to be classified as a diphthong.
func WithIotaAsDiphthong(b bool) Option {
	return func(o *Options) {
		o.IotaAsDiphthong = b
	}
}

// WithOptions copies a complete set of options.
func WithOptions(opts Options) Option {
	return func(o *Options) {
		*o = opts
	}
}

func makeOptions(opts []Option) Options {
	o := Options{Lookahead: DefaultLookahead}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Lookahead < 1 {
		CT().Infof("hiatus: lookahead %d too small, using 1", o.Lookahead)
		o.Lookahead = 1
	}
	return o
}
