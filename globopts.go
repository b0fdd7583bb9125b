package nsglob

import "io"

// Option functions optionally alter how Glob operates.
type Option = func(*config)

type config struct {
	flags       Flags
	traceLogger io.Writer
}

var defaultConfig = config{
	flags: DefaultFlags,
}

// WithFlags overrides the default match flags ([DefaultFlags]) with f.
func WithFlags(f Flags) Option {
	return func(cfg *config) {
		cfg.flags = f
	}
}

// WithTraceLogs logs debugging information for debugging Glob itself to
// the provided writer. Disabled by default.
func WithTraceLogs(out io.Writer) Option {
	return func(cfg *config) {
		cfg.traceLogger = out
	}
}
