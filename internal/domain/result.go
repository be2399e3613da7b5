package domain

// Result is the outcome of an operation that produces no value.
// The zero Result is a success.
type Result struct {
	err *Error
}

func Success() Result { return Result{} }

// Failure panics on a nil error: a failed Result always carries exactly one Error.
func Failure(err *Error) Result {
	if err == nil {
		panic("domain: Failure called with nil error")
	}
	return Result{err: err}
}

func (r Result) IsSuccess() bool { return r.err == nil }
func (r Result) IsFailure() bool { return r.err != nil }

// Err returns the failure reason, nil on success.
func (r Result) Err() *Error { return r.err }

// ResultOf is the outcome of an operation that produces a value of type T on success.
type ResultOf[T any] struct {
	value T
	err   *Error
}

func SuccessOf[T any](value T) ResultOf[T] { return ResultOf[T]{value: value} }

func FailureOf[T any](err *Error) ResultOf[T] {
	if err == nil {
		panic("domain: FailureOf called with nil error")
	}
	return ResultOf[T]{err: err}
}

func (r ResultOf[T]) IsSuccess() bool { return r.err == nil }
func (r ResultOf[T]) IsFailure() bool { return r.err != nil }
func (r ResultOf[T]) Err() *Error     { return r.err }

// Value is only meaningful when IsSuccess is true; otherwise it is the zero T.
func (r ResultOf[T]) Value() T { return r.value }

// Result drops the value.
func (r ResultOf[T]) Result() Result { return Result{err: r.err} }
