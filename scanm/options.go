package scanm

// LoadOption configures how a header is loaded.
type LoadOption func(*loadOptions)

type loadOptions struct {
	verbose bool
}

func defaultLoadOptions() *loadOptions {
	return &loadOptions{}
}

// WithVerbose logs every decoded line and parsed parameter at INFO level.
func WithVerbose() LoadOption {
	return func(o *loadOptions) {
		o.verbose = true
	}
}

// WithVerbosity enables verbose logging when v is true. Useful when the
// flag comes from configuration.
func WithVerbosity(v bool) LoadOption {
	return func(o *loadOptions) {
		o.verbose = v
	}
}
