// Package mobile is the surface exposed to managed host runtimes through a
// binding generator (gomobile and friends). Calls arrive on whatever thread
// the host dispatches them from; everything here is stateless and safe to
// call concurrently.
//
// Nothing in this package may fail the host: version reporting must never be
// the reason an application crashes or refuses to start.
package mobile

import (
	relay "github.com/clevertree/relay-clients"
)

const (
	// Both fallbacks are compile-time constants, so building the
	// substitute result cannot itself fail.
	versionUnknown = "unknown"
	versionError   = "error"
)

// coreVersion reads the version from the linked relay core.
// Replaced in tests to exercise the fallback paths.
var coreVersion = relay.LibrelaycoreVersion

// GetVersion returns the version of the linked relay core as host-owned
// text. The core is consulted exactly once per call and nothing is cached.
//
// It always returns a usable string: "unknown" when the core's version
// bytes cannot be decoded as text, "error" if building the result fails in
// any other way. It never panics into the host.
func GetVersion() (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = versionError
		}
	}()

	version, err := coreVersion()
	if err != nil {
		return versionUnknown
	}

	return version
}
