package client

import "errors"

// ErrIncompleteApp is returned when a runtime is built without one of its
// required parts.
var ErrIncompleteApp = errors.New("client: missing runtime component")
