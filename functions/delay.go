package functions

import (
	"slices"
	"time"
)

// Delay runs fn(args...) once on its own goroutine, no earlier than wait
// from now, and returns immediately. A negative wait is treated as zero.
//
// args is copied before Delay returns, so later changes to the caller's
// slice do not reach fn. A panic in fn is not recovered and terminates the
// program like any other goroutine panic.
//
//	functions.Delay(notify, 5*time.Second, "build finished")
func Delay[A any](fn func(...A), wait time.Duration, args ...A) {
	captured := slices.Clone(args)
	time.AfterFunc(max(wait, 0), func() {
		fn(captured...)
	})
}
