package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so services can translate them into domain errors.
//
// - ErrNotFound: entity does not exist in store
// - ErrConflict: identity or unique key already taken
// - ErrStaleVersion: compare-and-swap update lost against a concurrent writer
// - ErrInvalidValue: a value the store cannot represent, e.g. a numeric overflow
//
// For validation failures use pkg/domain-errors directly.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrStaleVersion = errors.New("stale version")
	ErrInvalidValue = errors.New("invalid value")
)
