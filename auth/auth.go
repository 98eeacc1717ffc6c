// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
)

var ErrInvalidAdminKey = errors.New("invalid admin key")

// adminKeyLabel is the fixed input the admin key is derived from.
// There is a single contest per deployment, so the salt alone
// determines the key.
const adminKeyLabel = "naming-contest-admin"

// GenerateAdminKey creates an HMAC-based admin key from the configured
// salt. This is deterministic and verifiable, so the key never needs to
// be stored.
func GenerateAdminKey(salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(adminKeyLabel))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateAdminKey checks if the provided admin key is valid.
func ValidateAdminKey(adminKey, salt string) error {
	expected := GenerateAdminKey(salt)
	if !hmac.Equal([]byte(adminKey), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough for deduplication
	return hex.EncodeToString(sum[:8])
}
