package domain

// ErrorType is the category of an Error. The transport layer maps it to a status code.
type ErrorType int

const (
	ErrorTypeNone ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound
	ErrorTypeConflict
	ErrorTypeUnauthorized
	ErrorTypeForbidden
	ErrorTypeUnexpected
)

var errorTypeNames = [...]string{
	ErrorTypeNone:         "none",
	ErrorTypeValidation:   "validation",
	ErrorTypeNotFound:     "not_found",
	ErrorTypeConflict:     "conflict",
	ErrorTypeUnauthorized: "unauthorized",
	ErrorTypeForbidden:    "forbidden",
	ErrorTypeUnexpected:   "unexpected",
}

func (t ErrorType) String() string {
	if t < 0 || int(t) >= len(errorTypeNames) {
		return "unknown"
	}
	return errorTypeNames[t]
}

// Error is an immutable, coded description of an expected failure.
// Two errors are equal when their codes match; the message may vary
// (for example NotFound carries the missing id).
type Error struct {
	code    string
	message string
	typ     ErrorType
}

func newError(code, message string, typ ErrorType) *Error {
	return &Error{code: code, message: message, typ: typ}
}

func (e *Error) Code() string    { return e.code }
func (e *Error) Message() string { return e.message }
func (e *Error) Type() ErrorType { return e.typ }

// Error satisfies the error interface so catalog errors can flow through
// errors.Is / errors.As where that is convenient.
func (e *Error) Error() string { return e.code + ": " + e.message }

// Equal reports whether both errors carry the same code.
func (e *Error) Equal(other *Error) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.code == other.code
}

// Is makes errors.Is compare by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e.Equal(t)
}
