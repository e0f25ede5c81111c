package functions

import (
	"time"

	"go.uber.org/zap"
)

// Options configures the decorators built by the *WithOptions
// constructors.
type Options struct {
	// Logger receives Debug-level events: once invocations, memo hits and
	// misses, throttle accepts and suppressions.
	// Defaults to [zap.NewNop] if nil.
	Logger *zap.Logger

	// Clock returns the current time for [Throttle] windows.
	// Defaults to [time.Now] if nil. Tests substitute a fake clock.
	Clock func() time.Time
}

// DefaultOptions returns Options with a no-op logger and the wall clock.
func DefaultOptions() Options {
	return Options{
		Logger: zap.NewNop(),
		Clock:  time.Now,
	}
}

// withDefaults fills nil fields from [DefaultOptions].
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Logger == nil {
		o.Logger = def.Logger
	}
	if o.Clock == nil {
		o.Clock = def.Clock
	}
	return o
}
