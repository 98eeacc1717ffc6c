// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 4100)
  - DatabasePath: SQLite database path (required)
  - AdminKeySalt: Secret for admin key HMAC (required)

# CLI Flags

	-p          Server port
	-d          Database path
	-admin-salt Admin key salt

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_PATH  → -d
	ADMIN_KEY_SALT → -admin-salt

CLI flags take precedence over environment variables. main loads a
.env file before parsing, so a local .env works for development.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_PATH must be provided
  - ADMIN_KEY_SALT must be provided
*/
package cliparse
