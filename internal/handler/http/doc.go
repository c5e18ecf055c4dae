// Package http implements the local status API.
//
// It exposes route wiring, request handlers, and middleware for a small
// read-mostly JSON API meant for widgets and scripts running on the same
// machine. Request tracing, access logging and panic recovery are handled
// here before requests are delegated to the service layer.
package http
