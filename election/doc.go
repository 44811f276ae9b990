// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package election holds the domain core: voter and candidate identity,
// candidacy moderation, the election controller (status, voting window,
// results visibility), the ballot box, and the tally engine. Handlers
// translate HTTP to calls on Core and map its sentinel errors to status
// codes; everything stateful lives here.
package election
