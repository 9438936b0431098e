// Package version exposes build metadata for the Go bindings themselves.
// This is distinct from the native relay core version reported over the
// bridge: the core version comes from the linked library at runtime, while
// the variables here are injected at build time via Go ldflags.
package version
