// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import "testing"

func TestGenerateAdminKeyDeterministic(t *testing.T) {
	key1 := GenerateAdminKey("test-salt")
	key2 := GenerateAdminKey("test-salt")

	if key1 != key2 {
		t.Error("Expected the same salt to produce the same key")
	}
	if key1 == "" {
		t.Error("Expected a non-empty key")
	}

	other := GenerateAdminKey("different-salt")
	if key1 == other {
		t.Error("Expected different salts to produce different keys")
	}
}

func TestValidateAdminKey(t *testing.T) {
	salt := "test-salt"
	key := GenerateAdminKey(salt)

	if err := ValidateAdminKey(key, salt); err != nil {
		t.Errorf("Expected valid key to pass, got %v", err)
	}
	if err := ValidateAdminKey("wrong-key", salt); err != ErrInvalidAdminKey {
		t.Errorf("Expected ErrInvalidAdminKey, got %v", err)
	}
	if err := ValidateAdminKey("", salt); err != ErrInvalidAdminKey {
		t.Errorf("Expected empty key to fail, got %v", err)
	}
	if err := ValidateAdminKey(key, "different-salt"); err != ErrInvalidAdminKey {
		t.Errorf("Expected key for another salt to fail, got %v", err)
	}
}

func TestHashIP(t *testing.T) {
	hash1 := HashIP("192.168.1.1", "salt")
	hash2 := HashIP("192.168.1.1", "salt")

	if hash1 != hash2 {
		t.Error("Expected the same IP and salt to produce the same hash")
	}
	if len(hash1) != 16 {
		t.Errorf("Expected 16 hex chars, got %d", len(hash1))
	}
	if hash1 == "192.168.1.1" {
		t.Error("Expected the hash to differ from the raw IP")
	}

	if HashIP("192.168.1.2", "salt") == hash1 {
		t.Error("Expected different IPs to hash differently")
	}
	if HashIP("192.168.1.1", "other-salt") == hash1 {
		t.Error("Expected different salts to hash differently")
	}
}
