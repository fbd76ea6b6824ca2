package model

import "time"

// ResolveStatus is the outcome of resolving a code
type ResolveStatus int

const (
	// ResolveFound means the code maps to a live destination
	ResolveFound ResolveStatus = iota
	// ResolveNotFound means no record exists for the code
	ResolveNotFound
	// ResolveGone means the record exists but has expired
	ResolveGone
)

// String returns a readable name for the status
func (s ResolveStatus) String() string {
	switch s {
	case ResolveFound:
		return "found"
	case ResolveNotFound:
		return "not_found"
	case ResolveGone:
		return "gone"
	default:
		return "unknown"
	}
}

// Resolution is the result of a redirect lookup
type Resolution struct {
	Status    ResolveStatus
	LongURL   string
	ExpiresAt *time.Time
	CacheHit  bool
}
