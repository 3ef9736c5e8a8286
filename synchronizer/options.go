package synchronizer

import "go.uber.org/zap"

type config struct {
	mode            Mode
	logger          *zap.Logger
	mirroredInserts bool
}

func defaultConfig() config {
	return config{mode: TwoWay, logger: zap.NewNop()}
}

// Option configures a [Synchronizer] at construction time.
type Option interface {
	apply(*config)
}

type optionFunc func(*config)

func (f optionFunc) apply(c *config) { f(c) }

// WithMode sets the relay direction(s). The default is [TwoWay].
func WithMode(m Mode) Option {
	return optionFunc(func(c *config) { c.mode = m })
}

// WithLogger sets the logger used to trace relays. Relays are logged at
// debug level and mapping failures at warn level. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *config) {
		if l != nil {
			c.logger = l
		}
	})
}

// WithMirroredInserts makes Add relays insert the mapped items at the index
// the items were added at, instead of appending them. When that index lies
// past the end of the opposite collection the items are appended.
func WithMirroredInserts() Option {
	return optionFunc(func(c *config) { c.mirroredInserts = true })
}
