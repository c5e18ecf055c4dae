package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMD5Hex_KnownVectors(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "d41d8cd98f00b204e9800998ecf8427e"},
		{"abc", "900150983cd24fb0d6963f7d28e17f72"},
		{"The quick brown fox jumps over the lazy dog", "9e107d9d372bb6826bd81d3542a419d6"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, MD5Hex(tt.in))
		})
	}
}

func TestMD5Hex_Lowercase(t *testing.T) {
	got := MD5Hex("salt=x&t=1&r=2")
	assert.Len(t, got, 32)
	assert.Regexp(t, "^[0-9a-f]{32}$", got)
}
