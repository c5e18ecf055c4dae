package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/cookie_sealer_mock.go -package=mock

// CookieSealer protects account cookies at rest. It knows nothing about
// accounts or storage; it only turns a cookie into an opaque string and back.
//
// Sealing is obfuscation against casual reads of the database file. The key
// lives in configuration next to the data, so this is not a vault.
type CookieSealer interface {
	// Seal encrypts the cookie and returns base64(nonce || ciphertext).
	// Two calls with the same input produce different outputs.
	Seal(cookie string) (string, error)

	// Open reverses Seal. It fails with [ErrUnsealFailed] when the blob was
	// produced under a different key or was tampered with.
	Open(sealed string) (string, error)
}
