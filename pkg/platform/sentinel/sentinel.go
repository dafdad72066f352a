package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and sink adapters return
// these (optionally wrapped) so services can translate them into domain errors.
//
//   - ErrNotFound: record does not exist in the store
//   - ErrConflict: uniqueness or shape constraint rejected a write
//   - ErrExpired: a time-boxed credential is past its window
//   - ErrUnavailable: backing system temporarily unreachable
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrExpired     = errors.New("expired")
	ErrUnavailable = errors.New("unavailable")
)
