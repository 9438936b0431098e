package api

import (
	"fmt"
	"unicode/utf8"
)

// decodeVersion checks that the raw bytes read from the native library form
// valid UTF-8 text. Kept free of cgo so the decode step is testable without
// the native library linked in.
func decodeVersion(raw string) (string, error) {
	if !utf8.ValidString(raw) {
		return "", fmt.Errorf("version string is not valid UTF-8: %q", raw)
	}

	return raw, nil
}
