// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	ErrInvalidAdminKey     = errors.New("invalid admin key")
	ErrInvalidSessionToken = errors.New("invalid session token")
)

// argon2id parameters for credential hashing
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	saltLen      = 16
)

// HashCredential derives an argon2id hash of the presented credential
// with a fresh random salt. The result is an opaque string; callers
// verify with VerifyCredential and never compare credentials directly.
func HashCredential(credential string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate credential salt: %w", err)
	}
	key := argon2.IDKey([]byte(credential), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return "argon2id$" +
		base64.RawStdEncoding.EncodeToString(salt) + "$" +
		base64.RawStdEncoding.EncodeToString(key), nil
}

// VerifyCredential reports whether presented matches the stored hash.
// Unknown or malformed hashes verify as false, never as an error, so a
// corrupted record behaves like a wrong credential.
func VerifyCredential(stored, presented string) bool {
	parts := strings.Split(stored, "$")
	if len(parts) != 3 || parts[0] != "argon2id" {
		return false
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[2])
	if err != nil {
		return false
	}
	candidate := argon2.IDKey([]byte(presented), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return subtle.ConstantTimeCompare(candidate, key) == 1
}

// GenerateAdminKey creates an HMAC-based admin key bound to the
// configured admin identity. Deterministic and verifiable, so it never
// needs to be stored.
func GenerateAdminKey(adminEmail, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(adminEmail))
	sum := h.Sum(nil)
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateAdminKey checks if the provided admin key is valid
func ValidateAdminKey(adminEmail, adminKey, salt string) error {
	expected := GenerateAdminKey(adminEmail, salt)
	if !hmac.Equal([]byte(adminKey), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}

// GenerateSessionToken creates a stateless session token for an entity
// acting in the given role. The token embeds the entity ID next to an
// HMAC over role and ID, so validation needs no session store.
func GenerateSessionToken(entityID, role, salt string) string {
	return entityID + "." + sessionMAC(entityID, role, salt)
}

// ParseSessionToken validates a session token for the expected role and
// returns the entity ID it was issued for.
func ParseSessionToken(token, role, salt string) (string, error) {
	i := strings.LastIndexByte(token, '.')
	if i <= 0 || i == len(token)-1 {
		return "", ErrInvalidSessionToken
	}
	entityID, mac := token[:i], token[i+1:]
	if !hmac.Equal([]byte(mac), []byte(sessionMAC(entityID, role, salt))) {
		return "", ErrInvalidSessionToken
	}
	return entityID, nil
}

func sessionMAC(entityID, role, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(role))
	h.Write([]byte{':'})
	h.Write([]byte(entityID))
	sum := h.Sum(nil)
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
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
