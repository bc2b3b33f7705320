package writeconcern

import "errors"

// Kind classifies why construction of a WriteConcern failed.
type Kind int

const (
	// KindType indicates that a supplied value has the wrong type.
	KindType Kind = iota + 1
	// KindRange indicates that a supplied numeric value is out of range.
	KindRange
	// KindConfiguration indicates that supplied values are individually
	// valid but contradict each other.
	KindConfiguration
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindRange:
		return "range"
	case KindConfiguration:
		return "configuration"
	}

	return "unknown"
}

// Error is the error type returned by New. Every validation failure is one
// of the package-level sentinel values, so callers can test with errors.Is
// or classify with KindOf.
type Error struct {
	kind Kind
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Kind returns the classification of the failure.
func (e *Error) Kind() Kind { return e.kind }

var (
	// ErrWTimeoutType indicates that a non-integer `wtimeout` was supplied.
	ErrWTimeoutType = &Error{kind: KindType, msg: "write concern `wtimeout` field must be an integer"}

	// ErrNegativeWTimeout indicates that a negative `wtimeout` was supplied.
	ErrNegativeWTimeout = &Error{kind: KindRange, msg: "write concern `wtimeout` field cannot be negative"}

	// ErrJournalType indicates that a non-boolean `j` was supplied.
	ErrJournalType = &Error{kind: KindType, msg: "write concern `j` field must be a boolean"}

	// ErrFSyncType indicates that a non-boolean `fsync` was supplied.
	ErrFSyncType = &Error{kind: KindType, msg: "write concern `fsync` field must be a boolean"}

	// ErrJournalAndFSync indicates that both `j` and `fsync` were requested.
	ErrJournalAndFSync = &Error{kind: KindConfiguration, msg: "a write concern cannot have both j=true and fsync=true"}

	// ErrInconsistent indicates that acknowledgement was disabled while
	// journal durability was required.
	ErrInconsistent = &Error{kind: KindConfiguration, msg: "a write concern cannot have both w=0 and j=true"}

	// ErrNegativeW indicates that a negative integer `w` field was supplied.
	ErrNegativeW = &Error{kind: KindRange, msg: "write concern `w` field cannot be a negative number"}

	// ErrWType indicates that `w` was neither an integer nor a string.
	ErrWType = &Error{kind: KindType, msg: "write concern `w` field must be an integer or string"}
)

// KindOf returns the Kind of err, or zero if err was not produced by this
// package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}

	return 0
}
