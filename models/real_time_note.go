// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"time"
)

// ResinRecoveryPeriod is how long the game takes to restore one resin.
const ResinRecoveryPeriod = 8 * time.Minute

// Expedition status values reported by the API.
const (
	ExpeditionOngoing  = "Ongoing"
	ExpeditionFinished = "Finished"
)

// Seconds decodes the API's habit of sending durations as quoted numbers.
type Seconds int64

// UnmarshalJSON accepts both "123" and 123.
func (s *Seconds) UnmarshalJSON(b []byte) error {
	raw := string(b)
	if raw == "null" {
		*s = 0
		return nil
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = unquoted
	}
	if raw == "" {
		*s = 0
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return err
	}
	*s = Seconds(v)
	return nil
}

// Duration converts s into a [time.Duration].
func (s Seconds) Duration() time.Duration {
	return time.Duration(s) * time.Second
}

// Expedition is one dispatched party.
type Expedition struct {
	AvatarSideIcon string  `json:"avatar_side_icon"`
	Status         string  `json:"status"`
	RemainedTime   Seconds `json:"remained_time"`
}

// TransformerTime is the cooldown of the parametric transformer.
type TransformerTime struct {
	Day     int  `json:"Day"`
	Hour    int  `json:"Hour"`
	Minute  int  `json:"Minute"`
	Second  int  `json:"Second"`
	Reached bool `json:"reached"`
}

// Duration returns the remaining cooldown.
func (t TransformerTime) Duration() time.Duration {
	return time.Duration(t.Day)*24*time.Hour +
		time.Duration(t.Hour)*time.Hour +
		time.Duration(t.Minute)*time.Minute +
		time.Duration(t.Second)*time.Second
}

// Transformer is the parametric transformer gadget state.
type Transformer struct {
	Obtained     bool            `json:"obtained"`
	RecoveryTime TransformerTime `json:"recovery_time"`
}

// RealTimeNote is the daily note payload for one character.
type RealTimeNote struct {
	CurrentResin              int          `json:"current_resin"`
	MaxResin                  int          `json:"max_resin"`
	ResinRecoveryTime         Seconds      `json:"resin_recovery_time"`
	FinishedTaskNum           int          `json:"finished_task_num"`
	TotalTaskNum              int          `json:"total_task_num"`
	IsExtraTaskRewardReceived bool         `json:"is_extra_task_reward_received"`
	RemainResinDiscountNum    int          `json:"remain_resin_discount_num"`
	ResinDiscountNumLimit     int          `json:"resin_discount_num_limit"`
	CurrentExpeditionNum      int          `json:"current_expedition_num"`
	MaxExpeditionNum          int          `json:"max_expedition_num"`
	Expeditions               []Expedition `json:"expeditions"`
	CurrentHomeCoin           int          `json:"current_home_coin"`
	MaxHomeCoin               int          `json:"max_home_coin"`
	HomeCoinRecoveryTime      Seconds      `json:"home_coin_recovery_time"`
	Transformer               Transformer  `json:"transformer"`

	UID       string    `json:"uid"`
	FetchedAt time.Time `json:"fetched_at"`
}

// ResinAt estimates the resin count at now, assuming none was spent since
// the note was fetched.
func (n RealTimeNote) ResinAt(now time.Time) int {
	if n.CurrentResin >= n.MaxResin || now.Before(n.FetchedAt) {
		return n.CurrentResin
	}
	resin := n.CurrentResin + int(now.Sub(n.FetchedAt)/ResinRecoveryPeriod)
	if resin > n.MaxResin {
		return n.MaxResin
	}
	return resin
}

// ResinFullAt returns the instant the resin cap is reached.
func (n RealTimeNote) ResinFullAt() time.Time {
	return n.FetchedAt.Add(n.ResinRecoveryTime.Duration())
}

// HomeCoinFullAt returns the instant the realm currency cap is reached.
func (n RealTimeNote) HomeCoinFullAt() time.Time {
	return n.FetchedAt.Add(n.HomeCoinRecoveryTime.Duration())
}

// ExpeditionFinishAt returns the instant expedition i comes back.
func (n RealTimeNote) ExpeditionFinishAt(i int) time.Time {
	return n.FetchedAt.Add(n.Expeditions[i].RemainedTime.Duration())
}

// FinishedExpeditions counts expeditions that are done at now.
func (n RealTimeNote) FinishedExpeditions(now time.Time) int {
	finished := 0
	for i, e := range n.Expeditions {
		if e.Status == ExpeditionFinished || !now.Before(n.ExpeditionFinishAt(i)) {
			finished++
		}
	}
	return finished
}

// CommissionsDone reports whether every daily commission and the extra
// reward were completed.
func (n RealTimeNote) CommissionsDone() bool {
	return n.TotalTaskNum > 0 && n.FinishedTaskNum >= n.TotalTaskNum && n.IsExtraTaskRewardReceived
}
