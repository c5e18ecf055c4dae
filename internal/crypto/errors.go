package crypto

import "errors"

var (
	ErrEmptyKey           = errors.New("empty sealing key")
	ErrCiphertextTooShort = errors.New("ciphertext too short")
	ErrUnsealFailed       = errors.New("unseal failed")
)
