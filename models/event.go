// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EventKind tells subscribers what changed.
type EventKind int

const (
	EventAccountStatusChanged EventKind = iota + 1
	EventAccountDeleted
	EventCharacterStatusChanged
	EventCharactersReplaced
	EventNotesUpdated
	EventSelectionChanged
)

// Event is published by the services on every observable state change.
type Event struct {
	Kind      EventKind
	AccountID string
	UID       string
	Status    AccountStatus
	Err       error
	At        time.Time
}
