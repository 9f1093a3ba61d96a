package votes

import (
	"strings"
	"time"
)

// Kind is the closed two-variant vote type. External strings are converted
// through ParseKind at the boundary; nothing else constructs a Kind from
// caller input.
type Kind string

const (
	KindLike Kind = "LIKE"
	KindHate Kind = "HATE"
)

// ParseKind validates an external vote-type string, case-insensitively.
// Unrecognized values fail with ErrInvalidKind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToUpper(strings.TrimSpace(s))) {
	case KindLike:
		return KindLike, nil
	case KindHate:
		return KindHate, nil
	default:
		return "", ErrInvalidKind
	}
}

// Vote is a user's single active opinion on a movie. The storage layer
// enforces at most one row per (user, movie) pair.
type Vote struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Kind      Kind      `json:"kind" db:"kind"`
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	MovieID   int64     `json:"movieId" db:"movie_id"`
}
