// Package utils holds small helpers shared by the adapter, store and
// handler layers: cookie parsing, the MD5 digest used by request signing,
// JSON response writing, the resty client wrapper and context keys.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// AccountIDCtxKey carries the account a request or poll is acting for, so
// that loggers further down can tag their entries with it.
var AccountIDCtxKey = contextKey("accountID")

// WithAccountID returns a copy of ctx carrying accountID.
func WithAccountID(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, AccountIDCtxKey, accountID)
}

// GetAccountIDFromContext returns the account ID stored by [WithAccountID].
// ok is false when the value is missing or has an unexpected type.
func GetAccountIDFromContext(ctx context.Context) (string, bool) {
	accountID, ok := ctx.Value(AccountIDCtxKey).(string)
	return accountID, ok && accountID != ""
}
