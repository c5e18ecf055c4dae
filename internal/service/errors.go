package service

import "errors"

var (
	ErrInvalidRegion          = errors.New("invalid region")
	ErrAccountBusy            = errors.New("account is busy")
	ErrAccountDisabled        = errors.New("account is disabled")
	ErrAccountNotReady        = errors.New("account is not ready")
	ErrCharacterBusy          = errors.New("character is busy")
	ErrCharacterNotSelectable = errors.New("character cannot be selected")
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrNoSelection            = errors.New("no character selected")
	ErrInterrupted            = errors.New("fetch was interrupted")
)
