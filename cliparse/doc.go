// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 4000)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - AdminKeySalt: Secret for admin key HMAC (required)
  - SessionTokenSalt: Secret for voter/candidate session tokens (required)
  - AdminEmail, AdminPassword: Admin login credentials (required)

# CLI Flags

	-p                Server port
	-d                Database URL
	-t                Database type
	--admin-salt      Admin key salt
	--session-salt    Session token salt
	--admin-email     Admin login email
	--admin-password  Admin login password

# Environment Variables

Flags fall back to environment variables:

	PORT               → -p
	DATABASE_URL       → -d
	DATABASE_TYPE      → -t
	ADMIN_KEY_SALT     → --admin-salt
	SESSION_TOKEN_SALT → --session-salt
	ADMIN_EMAIL        → --admin-email
	ADMIN_PASSWORD     → --admin-password

CLI flags take precedence over environment variables. main loads a .env
file (if present) before parsing, so a local dotenv works for dev.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - ADMIN_KEY_SALT and SESSION_TOKEN_SALT must be provided
  - ADMIN_EMAIL and ADMIN_PASSWORD must be provided
  - DATABASE_TYPE, when set, must be sqlite or postgres
*/
package cliparse
