// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin authentication and hashing utilities.

# Admin Keys

Admin keys use HMAC-SHA256 to create a deterministic, verifiable key
from the configured salt:

	adminKey := auth.GenerateAdminKey(salt)
	err := auth.ValidateAdminKey(adminKey, salt)

The key is URL-safe base64 encoded without padding. Since it's
deterministic, the same salt always produces the same key, so it never
needs to be stored. There is a single contest per deployment; the
server prints the key once at startup.

# IP Hashing

For privacy-preserving abuse tracking on suggestion submissions:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
