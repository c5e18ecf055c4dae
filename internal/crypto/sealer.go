// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// keySalt is fixed so that the same hash key always yields the same cookie
// key across restarts.
var keySalt = []byte("resin-keeper/cookie-sealer/v1")

// cookieSealer is the private implementation of [CookieSealer].
type cookieSealer struct {
	aead cipher.AEAD
}

// Argon2id parameters for deriving the sealing key from the configured
// hash key. They match the OWASP (2024) baseline.
const (
	argonTime    uint32 = 1
	argonMemory  uint32 = 64 * 1024 // 64 MiB
	argonThreads uint8  = 4
	argonKeyLen  uint32 = 32 // AES-256
)

// NewCookieSealer derives an AES-256-GCM key from hashKey with Argon2id and
// returns a [CookieSealer] bound to it.
func NewCookieSealer(hashKey string) (CookieSealer, error) {
	if hashKey == "" {
		return nil, ErrEmptyKey
	}

	key := argon2.IDKey([]byte(hashKey), keySalt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return newCookieSealer(key)
}

func newCookieSealer(key []byte) (*cookieSealer, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &cookieSealer{aead: gcm}, nil
}

// Seal implements [CookieSealer].
func (s *cookieSealer) Seal(cookie string) (string, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// nonce || ciphertext
	blob := s.aead.Seal(nonce, nonce, []byte(cookie), nil)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [CookieSealer].
func (s *cookieSealer) Open(sealed string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	nonceSize := s.aead.NonceSize()
	if len(blob) < nonceSize {
		return "", ErrCiphertextTooShort
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnsealFailed, err)
	}

	return string(plaintext), nil
}
