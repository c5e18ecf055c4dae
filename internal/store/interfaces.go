// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists accounts, their characters and user settings in a
// local SQL database. SQLite is the default; a postgres:// DSN switches the
// same repositories to PostgreSQL.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-resin-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository stores [models.Account] rows. Cookies are stored as
// given; sealing happens in the service layer.
type AccountRepository interface {
	// Create inserts a new account. Returns [ErrAccountAlreadyExists] when
	// the (region, mihoyo_uid) pair is taken.
	Create(ctx context.Context, account models.Account) error
	// Get returns the account by id or [ErrAccountNotFound].
	Get(ctx context.Context, id string) (models.Account, error)
	// FindByKey returns the account for (region, mihoyoUID) or [ErrAccountNotFound].
	FindByKey(ctx context.Context, region models.Region, mihoyoUID string) (models.Account, error)
	// List returns every account ordered by creation time.
	List(ctx context.Context) ([]models.Account, error)
	// Update overwrites cookie, status, last_error and updated_at.
	Update(ctx context.Context, account models.Account) error
	// Delete removes the account together with its characters.
	Delete(ctx context.Context, id string) error
}

// CharacterRepository stores [models.Character] rows.
type CharacterRepository interface {
	// ReplaceForAccount atomically swaps the character set of an account.
	ReplaceForAccount(ctx context.Context, accountID string, characters []models.Character) error
	// UpdateStatus sets the status of one character or returns [ErrCharacterNotFound].
	UpdateStatus(ctx context.Context, uid string, status models.AccountStatus, at time.Time) error
	// Get returns one character joined with its account.
	Get(ctx context.Context, uid string) (models.AccountCharacter, error)
	// List returns every character joined with its account.
	List(ctx context.Context) ([]models.AccountCharacter, error)
}

// SettingsRepository is a string key/value table for user preferences.
type SettingsRepository interface {
	// Get returns the value or [ErrSettingNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Set inserts or overwrites the value.
	Set(ctx context.Context, key, value string) error
	// Delete removes the key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// ErrorClassificator maps driver specific errors onto [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
