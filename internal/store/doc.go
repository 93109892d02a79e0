// Package store implements the in-memory contact and note stores: the
// collections, their uniqueness and validation invariants, and the query
// operations (substring search, tag matching, birthday windows).
//
// Both stores are single-owner and synchronous: one operation completes
// before the next begins, and every operation either applies fully or
// leaves the store unchanged.
package store
