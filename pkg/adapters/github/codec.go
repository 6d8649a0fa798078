package github

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Encode converts note text to the base64 payload the contents API expects.
// Go strings are already UTF-8 byte sequences, so multi-byte characters
// survive the round trip unchanged.
func Encode(text string) string {
	return base64.StdEncoding.EncodeToString([]byte(text))
}

// Decode is the inverse of Encode. The host wraps payloads at 60 columns,
// so line breaks are dropped before decoding.
func Decode(payload string) (string, error) {
	clean := strings.NewReplacer("\n", "", "\r", "").Replace(payload)
	data, err := base64.StdEncoding.DecodeString(clean)
	if err != nil {
		return "", fmt.Errorf("decode content: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("decode content: payload is not valid UTF-8 text")
	}
	return string(data), nil
}
