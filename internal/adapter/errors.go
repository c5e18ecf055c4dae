package adapter

import "errors"

var (
	ErrUnknownRegion        = errors.New("unknown region")
	ErrBadStatus            = errors.New("unexpected http status")
	ErrMalformedResponse    = errors.New("malformed response")
	ErrCookieExpired        = errors.New("cookie expired")
	ErrDataNotPublic        = errors.New("game record is not public")
	ErrVerificationRequired = errors.New("verification required")
	ErrAPI                  = errors.New("api error")
)

// Retcodes with a dedicated sentinel.
const (
	retcodeOK              = 0
	retcodeNotLoggedIn     = -100
	retcodeCookieInvalid   = 10001
	retcodeDataNotPublic   = 10102
	retcodeVerification    = 1034
	retcodeVerificationAlt = 10035
)
