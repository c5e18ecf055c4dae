// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// Region identifies which of the two API backends an account belongs to.
type Region string

const (
	// RegionMainland is the mainland China backend (miyoushe).
	RegionMainland Region = "mainland"
	// RegionGlobal is the global backend (hoyolab).
	RegionGlobal Region = "global"
)

// Valid reports whether r is one of the known regions.
func (r Region) Valid() bool {
	return r == RegionMainland || r == RegionGlobal
}

// GameBiz returns the game_biz value the bindings endpoint expects for r.
func (r Region) GameBiz() string {
	if r == RegionMainland {
		return "hk4e_cn"
	}
	return "hk4e_global"
}

// ParseRegion converts user input into a [Region].
func ParseRegion(s string) (Region, error) {
	switch Region(s) {
	case RegionMainland, "cn":
		return RegionMainland, nil
	case RegionGlobal, "os":
		return RegionGlobal, nil
	}
	return "", fmt.Errorf("unknown region %q", s)
}

// Account is a stored credential set tied to one region.
//
// Cookie is kept out of JSON so that accounts can be served over the local
// status API without leaking credentials. At rest it holds the sealed form
// produced by the crypto package.
type Account struct {
	ID        string        `json:"id"`
	Region    Region        `json:"region"`
	MihoyoUID string        `json:"mihoyo_uid"`
	Cookie    string        `json:"-"`
	Status    AccountStatus `json:"status"`
	LastError string        `json:"last_error,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}
