//go:build linux && !muslc && !static && amd64
// +build linux,!muslc,!static,amd64

package api

// #cgo LDFLAGS: -Wl,-rpath,${SRCDIR} -L${SRCDIR} -lrelay_core.x86_64
import "C"
