// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the game record web API of both regions.
//
// The primary abstraction is [GameRecordAdapter], which hides region hosts,
// request signing and the response envelope from the service layer. Failures
// are reported with the sentinel errors in errors.go so that callers can use
// [errors.Is] to tell an expired cookie from a transient failure.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-resin-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/game_record_adapter_mock.go -package=mock

// GameRecordAdapter fetches account bindings and daily notes on behalf of a
// cookie. Implementations are stateless with respect to accounts: the cookie
// is passed with every call and never retained.
type GameRecordAdapter interface {
	// GetGameRoles lists the characters bound to the cookie's account in
	// region. Returned characters carry no AccountID.
	GetGameRoles(ctx context.Context, region models.Region, cookie string) ([]models.Character, error)

	// GetDailyNote fetches the real-time note of character uid on server.
	// The returned note has UID set and a zero FetchedAt.
	GetDailyNote(ctx context.Context, region models.Region, server, uid, cookie string) (models.RealTimeNote, error)
}
