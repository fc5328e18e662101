package ai

import "sync/atomic"

// debugLoggingEnabled gates debug logging for the behavior core. Checked as
// a package-level atomic so hot Think paths skip attribute construction
// when debug output is off.
var debugLoggingEnabled atomic.Bool

// EnableDebugLogging toggles debug logging for the behavior core. Called
// once during startup after the log level is known.
func EnableDebugLogging(enabled bool) {
	debugLoggingEnabled.Store(enabled)
}

// IsDebugEnabled reports whether debug logging is on. Guard expensive
// slog.Debug calls with it:
//
//	if ai.IsDebugEnabled() {
//	    slog.Debug("plan decision", "actor", actor.Name(), ...)
//	}
func IsDebugEnabled() bool {
	return debugLoggingEnabled.Load()
}
