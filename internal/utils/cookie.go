package utils

import (
	"errors"
	"strings"
)

// ErrMalformedCookie is returned when a cookie string cannot be split into
// name=value pairs or lacks the fields needed to identify the account.
var ErrMalformedCookie = errors.New("malformed cookie")

// uidCookieNames are the cookie fields that carry the account UID, in order
// of preference. Newer logins only set the *_v2 variants.
var uidCookieNames = []string{"ltuid", "ltuid_v2", "account_id", "account_id_v2", "stuid"}

// tokenCookieNames are the cookie fields that authenticate requests. At
// least one of them must be present.
var tokenCookieNames = []string{"ltoken", "ltoken_v2", "cookie_token", "cookie_token_v2", "stoken"}

// ParseCookie splits a browser cookie header ("a=1; b=2") into a map.
// Whitespace around pairs is ignored and later duplicates win.
func ParseCookie(raw string) (map[string]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrMalformedCookie
	}

	fields := make(map[string]string)
	for _, pair := range strings.Split(raw, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, ErrMalformedCookie
		}
		fields[name] = strings.TrimSpace(value)
	}

	if len(fields) == 0 {
		return nil, ErrMalformedCookie
	}
	return fields, nil
}

// CookieAccountUID validates raw and returns the account UID it belongs to.
func CookieAccountUID(raw string) (string, error) {
	fields, err := ParseCookie(raw)
	if err != nil {
		return "", err
	}

	if !hasAny(fields, tokenCookieNames) {
		return "", ErrMalformedCookie
	}
	for _, name := range uidCookieNames {
		if uid := fields[name]; uid != "" {
			return uid, nil
		}
	}
	return "", ErrMalformedCookie
}

// NormalizeCookie re-joins the pairs of raw in a canonical "a=1; b=2" form.
func NormalizeCookie(raw string) string {
	var b strings.Builder
	for _, pair := range strings.Split(raw, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("; ")
		}
		b.WriteString(pair)
	}
	return b.String()
}

func hasAny(fields map[string]string, names []string) bool {
	for _, name := range names {
		if fields[name] != "" {
			return true
		}
	}
	return false
}
