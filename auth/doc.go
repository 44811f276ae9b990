// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides credential hashing and token utilities.

# Credential Hashing

Voter and candidate credentials are stored as argon2id hashes with a
random per-record salt:

	hash, err := auth.HashCredential(password)
	ok := auth.VerifyCredential(hash, presented)

The core depends only on this verify capability; nothing outside this
package knows the hashing scheme.

# Admin Keys

Admin keys use HMAC-SHA256 to create deterministic, verifiable keys:

	adminKey := auth.GenerateAdminKey(adminEmail, salt)
	err := auth.ValidateAdminKey(adminEmail, adminKey, salt)

The key is URL-safe base64 encoded without padding. Since it's
deterministic, the same admin identity and salt always produce the same
key, so validation works without storing the key anywhere.

# Session Tokens

Voter and candidate sessions use stateless tokens of the form
"<entityID>.<mac>" where the MAC covers role and entity ID:

	token := auth.GenerateSessionToken(voterID, models.RoleVoter, salt)
	voterID, err := auth.ParseSessionToken(token, models.RoleVoter, salt)

A token issued for one role never validates for another.

# IP Hashing

For privacy-preserving fraud detection:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
