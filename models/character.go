// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Character is an in-game persona bound to an account.
type Character struct {
	UID        string        `json:"game_uid"`
	AccountID  string        `json:"account_id"`
	GameBiz    string        `json:"game_biz"`
	Server     string        `json:"region"`
	ServerName string        `json:"region_name"`
	Nickname   string        `json:"nickname"`
	Level      int           `json:"level"`
	IsChosen   bool          `json:"is_chosen"`
	Status     AccountStatus `json:"status"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Character model.
func (c Character) TableName() string {
	return "characters"
}

// AccountCharacter is a character joined with the account that owns it.
// It is the unit the UI selects and the poller refreshes.
type AccountCharacter struct {
	Character
	Region        Region        `json:"account_region"`
	AccountStatus AccountStatus `json:"account_status"`
}

// Pollable reports whether notes can be fetched for the character right now.
func (ac AccountCharacter) Pollable() bool {
	return ac.AccountStatus == StatusReady && !ac.Status.IsBusy()
}
