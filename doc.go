// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the ElectChain API server.

ElectChain runs a single campus election: voters and candidates
register, an admin moderates candidacies and controls the voting
window, each voter casts exactly one ballot, and results stay sealed
until the admin publishes them.

# Starting the Server

The server reads configuration from environment variables (a .env file
is honored), with CLI flags taking precedence:

	DATABASE_URL=./electchain.db go run .

Or with flags:

	go run . -p 4000 -t sqlite -d ./electchain.db

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string
  - ADMIN_KEY_SALT (--admin-salt): Secret for admin key HMAC
  - SESSION_TOKEN_SALT (--session-salt): Secret for session token HMAC
  - ADMIN_EMAIL (--admin-email): Admin account email
  - ADMIN_PASSWORD (--admin-password): Admin account password

Optional settings:

  - PORT (-p): Server port (default: 4000)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"

# Architecture

The server uses a handler-based architecture with dependency injection:

  - election: Domain core (registration, moderation, ballot box, tally)
  - handlers: HTTP request handlers over the core
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Credential hashing, admin keys, session tokens
  - db: Schema creation and election seeding
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
