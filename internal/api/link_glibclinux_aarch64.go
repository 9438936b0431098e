//go:build linux && !muslc && !static && arm64
// +build linux,!muslc,!static,arm64

package api

// #cgo LDFLAGS: -Wl,-rpath,${SRCDIR} -L${SRCDIR} -lrelay_core.aarch64
import "C"
