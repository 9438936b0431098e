// Package relay provides Go bindings for the native relay core library
// (librelay_core). The bindings are a thin bridge: the core owns all
// protocol logic, and this package only converts values across the FFI
// boundary.
package relay

import (
	"errors"
)

// ErrNotLinked is returned when the binary was built without the native
// relay core library (cgo disabled).
var ErrNotLinked = errors.New("librelay_core is not linked into this binary")

// versionUnknown is reported when the core returns bytes that cannot be
// decoded as text. A compile-time constant, so producing it cannot fail.
const versionUnknown = "unknown"

// LibrelaycoreVersion returns the version of the loaded librelay_core at
// runtime. This can be used to verify if the loaded library matches the
// version the bindings were built against.
func LibrelaycoreVersion() (string, error) {
	return librelaycoreVersionImpl()
}

// Version returns the version of the loaded librelay_core, or "unknown" if
// it cannot be read. It never fails and performs exactly one call to the
// core per invocation; results are not cached.
func Version() string {
	version, err := librelaycoreVersionImpl()
	if err != nil {
		return versionUnknown
	}

	return version
}
