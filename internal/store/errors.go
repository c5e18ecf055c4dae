package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAccountAlreadyExists is returned when an account with the same
	// (region, mihoyo_uid) pair is already stored.
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrAccountNotFound is returned when the requested account id does not
	// exist.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrCharacterNotFound is returned when no character has the requested uid.
	ErrCharacterNotFound = errors.New("character was not found")

	// ErrCharacterOwnedElsewhere is returned when a character uid is already
	// bound to a different stored account.
	ErrCharacterOwnedElsewhere = errors.New("character belongs to another account")

	// ErrSettingNotFound is returned when a settings key has no value.
	ErrSettingNotFound = errors.New("setting was not found")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to executing statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
	ErrUnsupportedDSN       = errors.New("unsupported database dsn")
)
