// Package result implements the tri-state value exchanged between every
// data-fetch operation and its consumer: an operation emits a chronological
// sequence of Results over a channel, starting with Loading and ending with a
// terminal Success or Error. Consumers key their state purely off the latest
// value received.
package result

// State identifies which variant a Result holds.
type State int

const (
	StateLoading State = iota
	StateSuccess
	StateError
)

// String returns a short lowercase name, mainly for logs and test output.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is a tagged union over the three states. Use the constructors below;
// the zero value is a Loading result.
//
// The payload is only meaningful for StateSuccess and the message only for
// StateError. Switching on State covers all variants:
//
//	switch r.State() {
//	case result.StateLoading:
//	case result.StateSuccess:
//	case result.StateError:
//	}
type Result[T any] struct {
	state   State
	data    T
	message string
}

// Loading returns the non-terminal "operation in progress" variant.
func Loading[T any]() Result[T] {
	return Result[T]{state: StateLoading}
}

// Ok returns a Success result carrying data.
func Ok[T any](data T) Result[T] {
	return Result[T]{state: StateSuccess, data: data}
}

// Fail returns an Error result carrying a human-readable message.
func Fail[T any](message string) Result[T] {
	return Result[T]{state: StateError, message: message}
}

// State reports which variant this result holds.
func (r Result[T]) State() State { return r.state }

func (r Result[T]) IsLoading() bool { return r.state == StateLoading }
func (r Result[T]) IsSuccess() bool { return r.state == StateSuccess }
func (r Result[T]) IsError() bool   { return r.state == StateError }

// Data returns the payload. It is the zero value unless IsSuccess.
func (r Result[T]) Data() T { return r.data }

// Message returns the error description. It is empty unless IsError.
func (r Result[T]) Message() string { return r.message }
