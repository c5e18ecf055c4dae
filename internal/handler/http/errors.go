// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// errPanic is logged when a handler panicked and the request was answered
// with 500.
var errPanic = errors.New("handler panicked")
