package utils

import (
	"crypto/md5"
	"encoding/hex"
)

// MD5Hex returns the lowercase hex MD5 digest of data.
//
// MD5 is what the game record API expects inside its dynamic secret header;
// it is not used for anything security-relevant on our side.
//
// Example usage:
//
//	digest := utils.MD5Hex("salt=abc&t=1&r=2")
func MD5Hex(data string) string {
	sum := md5.Sum([]byte(data))
	return hex.EncodeToString(sum[:])
}
