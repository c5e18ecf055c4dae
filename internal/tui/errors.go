// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

// ErrNoServices is returned by New when it is given no services to render.
var ErrNoServices = errors.New("tui: no services")
