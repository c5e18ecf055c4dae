// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-resin-keeper/internal/adapter"
	"github.com/MKhiriev/go-resin-keeper/internal/store"
	"github.com/MKhiriev/go-resin-keeper/internal/utils"
	"github.com/MKhiriev/go-resin-keeper/models"
)

// statusForError picks the terminal status a failed fetch leaves behind.
func statusForError(err error) models.AccountStatus {
	if errors.Is(err, adapter.ErrCookieExpired) {
		return models.StatusExpired
	}
	return models.StatusFail
}

// UserMessage turns err into a short sentence fit for the UI.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, utils.ErrMalformedCookie):
		return "cookie is missing ltuid/ltoken fields"
	case errors.Is(err, adapter.ErrCookieExpired):
		return "cookie expired, log in again and re-add the account"
	case errors.Is(err, adapter.ErrDataNotPublic):
		return "battle chronicle is private, enable real-time notes in the app"
	case errors.Is(err, adapter.ErrVerificationRequired):
		return "the API asks for a captcha, open the battle chronicle once in a browser"
	case errors.Is(err, adapter.ErrBadStatus), errors.Is(err, adapter.ErrMalformedResponse):
		return "game record API is unavailable"
	case errors.Is(err, adapter.ErrAPI):
		return err.Error()
	case errors.Is(err, ErrAccountBusy), errors.Is(err, ErrCharacterBusy):
		return "a refresh is already running"
	case errors.Is(err, ErrAccountDisabled):
		return "account is disabled"
	case errors.Is(err, ErrAccountNotReady):
		return "account needs a successful refresh first"
	case errors.Is(err, ErrNoSelection):
		return "no character selected"
	case errors.Is(err, ErrCharacterNotSelectable):
		return "character belongs to a disabled account"
	case errors.Is(err, store.ErrCharacterOwnedElsewhere):
		return "a character of this cookie is already bound to another account"
	case errors.Is(err, store.ErrAccountNotFound), errors.Is(err, store.ErrCharacterNotFound):
		return "not found"
	}
	return err.Error()
}

// errText is the LastError value stored for err.
func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
