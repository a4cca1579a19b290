package sliderapp

import "sync/atomic"

var traceLogEnabled atomic.Bool

// SetTraceLogEnabled turns per-event logging of the slider surface on or off.
// It can be flipped at any time; the surface checks it on every event.
func SetTraceLogEnabled(enabled bool) {
	traceLogEnabled.Store(enabled)
}

func isTraceLogEnabled() bool {
	return traceLogEnabled.Load()
}
