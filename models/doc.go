// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the request, response, and domain types shared by
the handlers and the election core.

Domain records (Voter, Candidate, Election) serialize with the camelCase
field names of the persisted-state contract; credential hashes are never
serialized. Request and response types exist per endpoint rather than
reusing domain records directly, so wire shapes can evolve without
touching storage.

The package also owns the small fixed vocabularies of the system:
election and candidacy statuses, moderation decisions, login roles, and
the enumerated set of contested positions.
*/
package models
