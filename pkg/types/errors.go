package types

import "errors"

// Lookup and argument errors. The console maps each of these to its own
// one-line diagnostic.
var (
	ErrMissingTypeName = errors.New("type name missing")
	ErrUnknownType     = errors.New("unknown type")
	ErrMissingID       = errors.New("instance id missing")
	ErrUnknownID       = errors.New("no instance found")
	ErrMissingField    = errors.New("attribute name missing")
	ErrMissingValue    = errors.New("value missing")
)

// Field and value errors.
var (
	ErrInvalidField  = errors.New("invalid field value")
	ErrReservedField = errors.New("reserved field")
	ErrDuplicateType = errors.New("type already registered")
)

// Persistence errors.
var (
	ErrIOFailure     = errors.New("backing store I/O failure")
	ErrMalformedData = errors.New("malformed persisted data")
)
