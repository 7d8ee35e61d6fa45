package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Upstream adapters return these
// (optionally wrapped) so services can translate them into domain errors.
//
// These represent factual states about remote resources, not validation failures:
// - ErrNotFound: the registrar has no such resource
// - ErrConflict: the registrar rejected a write as conflicting
// - ErrRejected: the registrar refused the request payload
// - ErrUnavailable: the registrar is unreachable or failing
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrRejected    = errors.New("rejected")
	ErrUnavailable = errors.New("unavailable")
)
