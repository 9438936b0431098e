//go:build linux && muslc && !static
// +build linux,muslc,!static

package api

// #cgo LDFLAGS: -Wl,-rpath,${SRCDIR} -L${SRCDIR} -lrelay_core_muslc
import "C"
