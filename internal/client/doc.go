// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the process runtimes of the resin keeper.
//
// [App] runs the terminal UI next to the background workers and the optional
// status API. [Daemon] runs the workers and the status API without a UI.
package client
