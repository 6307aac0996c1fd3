package lookup

import "time"

type parseOptions struct {
	base     int
	layout   string
	location *time.Location
	caseFold bool
}

// ParseOption adjusts how text is parsed.
type ParseOption func(*parseOptions)

func newParseOptions(opts []ParseOption) parseOptions {
	o := parseOptions{
		base:     10,
		layout:   time.RFC3339,
		location: time.UTC,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithBase sets the base for integer parsing; 0 infers it from the prefix.
func WithBase(base int) ParseOption {
	return func(o *parseOptions) {
		o.base = base
	}
}

func WithLayout(layout string) ParseOption {
	return func(o *parseOptions) {
		o.layout = layout
	}
}

// WithLocation sets the location used for times without a zone.
func WithLocation(loc *time.Location) ParseOption {
	return func(o *parseOptions) {
		if loc != nil {
			o.location = loc
		}
	}
}

// WithCaseFold matches enum names ignoring case.
func WithCaseFold() ParseOption {
	return func(o *parseOptions) {
		o.caseFold = true
	}
}
