package fourbyte

import "errors"

// Terminal error classes of a transform run. Every failure returned by this
// package wraps one of these, so callers can match with errors.Is while the
// wrapped message names the failing stage and cause.
var (
	// ErrNotFound means the input mapping file is missing or unreadable.
	ErrNotFound = errors.New("fourbyte: input mapping not found")

	// ErrParse means the input is not a flat JSON object of string keys to
	// string values.
	ErrParse = errors.New("fourbyte: malformed selector mapping")

	// ErrEncoding means a signature is not valid UTF-8 and cannot be hashed
	// canonically.
	ErrEncoding = errors.New("fourbyte: signature is not valid utf-8")

	// ErrWrite means the output file could not be created or written.
	ErrWrite = errors.New("fourbyte: writing output failed")

	// ErrDuplicate means two signatures recalculated to the same selector
	// and the duplicate policy is DupeError.
	ErrDuplicate = errors.New("fourbyte: duplicate recalculated selector")
)
