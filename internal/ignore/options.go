package ignore

import "github.com/bethropolis/eolinuxify/internal/utils"

type options struct {
	logger utils.Logger
	source string
}

func defaultOptions() options {
	return options{logger: utils.NoopLogger{}}
}

// Option configures Load and Compile
type Option func(*options)

// WithLogger sets the logger used to report malformed patterns
func WithLogger(logger utils.Logger) Option {
	return func(o *options) {
		o.logger = utils.OrNoop(logger)
	}
}

// WithSource names the file the rules came from, for diagnostics
func WithSource(source string) Option {
	return func(o *options) {
		o.source = source
	}
}
