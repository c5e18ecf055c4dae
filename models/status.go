// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AccountStatus is the lifecycle tag carried by accounts and characters.
type AccountStatus string

const (
	StatusAdding   AccountStatus = "adding"
	StatusUpdating AccountStatus = "updating"
	StatusReady    AccountStatus = "ready"
	StatusExpired  AccountStatus = "expired"
	StatusFail     AccountStatus = "fail"
	StatusDisabled AccountStatus = "disabled"
)

// transitions lists every allowed status change. The empty status stands for
// a record that does not exist yet.
var transitions = map[AccountStatus][]AccountStatus{
	"":             {StatusAdding},
	StatusAdding:   {StatusReady, StatusFail, StatusExpired},
	StatusUpdating: {StatusReady, StatusFail, StatusExpired},
	StatusReady:    {StatusUpdating, StatusDisabled},
	StatusFail:     {StatusUpdating, StatusDisabled},
	StatusExpired:  {StatusUpdating, StatusDisabled},
	StatusDisabled: {StatusUpdating},
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s AccountStatus) CanTransitionTo(next AccountStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsBusy reports whether a fetch is in flight for the record.
func (s AccountStatus) IsBusy() bool {
	return s == StatusAdding || s == StatusUpdating
}

// IsTerminal reports whether s is a resting state reached after a fetch.
func (s AccountStatus) IsTerminal() bool {
	return s == StatusReady || s == StatusFail || s == StatusExpired
}

// Valid reports whether s is a known status.
func (s AccountStatus) Valid() bool {
	_, ok := transitions[s]
	return ok && s != ""
}

func (s AccountStatus) String() string {
	return string(s)
}
