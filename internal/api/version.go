package api

// #include "bindings.h"
import "C"

import (
	"fmt"
)

// RelayCoreVersion returns the version of the loaded librelay_core
// at runtime. This can be used to verify if the loaded library
// matches the version the bindings were built against.
//
// The native bytes are copied into Go memory before returning; the
// library-owned pointer is never retained past this call and never freed.
func RelayCoreVersion() (string, error) {
	ptr := C.relay_core_version()
	if ptr == nil {
		// The core promises a non-null pointer. Fail soft anyway.
		return "", fmt.Errorf("relay_core_version returned a null pointer")
	}

	return decodeVersion(C.GoString(ptr))
}
