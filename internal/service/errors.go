package service

import "errors"

// Kind is the machine-readable category of a dashboard failure.
type Kind string

const (
	// KindInvalidArgument means the request was rejected before any I/O.
	KindInvalidArgument Kind = "InvalidArgument"
	// KindRepositoryUnavailable means a repository read failed, timed out or was cancelled.
	KindRepositoryUnavailable Kind = "RepositoryUnavailable"
)

// Sentinels for errors.Is checks against *Error values.
var (
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrRepositoryUnavailable = errors.New("repository unavailable")
)

// Error is the single error type surfaced by DashboardService.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the kind sentinels, so errors.Is(err, ErrInvalidArgument) works
// alongside matching the wrapped cause (e.g. context.DeadlineExceeded).
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalidArgument:
		return e.Kind == KindInvalidArgument
	case ErrRepositoryUnavailable:
		return e.Kind == KindRepositoryUnavailable
	}
	return false
}

// KindOf reports the Kind carried by err, if any.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

func invalidArgument(msg string) error {
	return &Error{Kind: KindInvalidArgument, Message: msg}
}

func repositoryUnavailable(read string, err error) error {
	return &Error{Kind: KindRepositoryUnavailable, Message: "dashboard read " + read + " failed", Err: err}
}
