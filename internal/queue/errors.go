package queue

import (
	"github.com/pkg/errors"
)

// Errors returned by the queues. Construction errors are wrapped with
// context; match them with errors.Is.
var (
	ErrInvalidArgument = errors.New("queue: invalid argument")
	ErrOutOfMemory     = errors.New("queue: out of memory")
	ErrNotInitialized  = errors.New("queue: not initialized")
	ErrFull            = errors.New("queue: full")
	ErrEmpty           = errors.New("queue: empty")
)

// Code is the status of a queue operation.
type Code int

const (
	CodeOK Code = iota
	CodeInvalidArgument
	CodeOutOfMemory
	CodeNotInitialized
	CodeFull
	CodeEmpty
	CodeUnknown
)

var codeNames = [...]string{
	CodeOK:              "ok",
	CodeInvalidArgument: "invalid argument",
	CodeOutOfMemory:     "out of memory",
	CodeNotInitialized:  "not initialized",
	CodeFull:            "full",
	CodeEmpty:           "empty",
	CodeUnknown:         "unknown",
}

func (c Code) String() string {
	if c < 0 || int(c) >= len(codeNames) {
		return codeNames[CodeUnknown]
	}
	return codeNames[c]
}

// CodeOf maps an error returned by this package to its status code.
// A nil error is CodeOK; errors from elsewhere are CodeUnknown.
func CodeOf(err error) Code {
	switch {
	case err == nil:
		return CodeOK
	case errors.Is(err, ErrInvalidArgument):
		return CodeInvalidArgument
	case errors.Is(err, ErrOutOfMemory):
		return CodeOutOfMemory
	case errors.Is(err, ErrNotInitialized):
		return CodeNotInitialized
	case errors.Is(err, ErrFull):
		return CodeFull
	case errors.Is(err, ErrEmpty):
		return CodeEmpty
	default:
		return CodeUnknown
	}
}
