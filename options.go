package embedmeta

type options struct {
	correspondences Correspondences
	withDefaults    bool
}

// Option configures Media construction.
type Option func(*options)

// WithCorrespondences reindexes the raw properties through the given table
// at construction time. The table is applied in order and not retained by
// the record.
func WithCorrespondences(cs Correspondences) Option {
	return func(o *options) {
		o.correspondences = cs
	}
}

// WithDefaults pre-fills every canonical property with the empty string
// before the raw properties are applied.
//
// Without this option, absence wins: a canonical property the producer never
// supplied stays absent instead of appearing as an empty string.
func WithDefaults() Option {
	return func(o *options) {
		o.withDefaults = true
	}
}

func applyOptions(optFns []Option) options {
	o := options{}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
