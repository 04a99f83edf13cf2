package geohash

import "errors"

// Failure kinds. Every error returned by this package wraps exactly one of
// these sentinels, so callers can distinguish the two with errors.Is while
// the message carries the specifics.
var (
	// ErrInvalidArgument reports malformed or out-of-domain input: an
	// empty geohash, an unsupported direction, a precision below 1, or a
	// coordinate outside the valid ranges.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidCharacter reports a geohash containing a symbol outside
	// the 32-character alphabet.
	ErrInvalidCharacter = errors.New("invalid geohash character")
)
