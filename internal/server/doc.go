// Package server runs the local status API.
//
// It owns the HTTP listener lifecycle: startup, cancellation through the
// caller's context and graceful shutdown bounded by [ShutdownTimeout].
package server
