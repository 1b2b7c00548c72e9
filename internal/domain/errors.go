package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownAgent        = errors.New("no known agent with that callsign")
	ErrUnknownContract     = errors.New("no known contract with that id")
	ErrAgentExists         = errors.New("agent already registered")
	ErrMissingAccountToken = errors.New("no account token configured")
	ErrNotFound            = errors.New("not found")
)

// ErrorKind classifies failures so callers can decide between rendering a
// message, continuing the shell loop or exiting non-zero.
type ErrorKind string

const (
	KindParse              ErrorKind = "parse"
	KindUnknownAgent       ErrorKind = "unknown_agent"
	KindUnknownContract    ErrorKind = "unknown_contract"
	KindConflict           ErrorKind = "conflict"
	KindRegistrationFailed ErrorKind = "registration_failed"
	KindRemoteCallFailed   ErrorKind = "remote_call_failed"
	KindPersistence        ErrorKind = "persistence"
)

// Error is a categorized failure. Op names the operation that failed
// ("register", "contract accept", ...) and Err keeps the underlying cause.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind ErrorKind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func UnknownAgent(callsign string) *Error {
	return newError(KindUnknownAgent, "", fmt.Errorf("%w: %s", ErrUnknownAgent, callsign))
}

func UnknownContract(callsign, id string) *Error {
	return newError(KindUnknownContract, "", fmt.Errorf("%w: %s (agent %s)", ErrUnknownContract, id, callsign))
}

func Conflict(format string, args ...any) *Error {
	return newError(KindConflict, "", fmt.Errorf(format, args...))
}

func RegistrationFailed(err error) *Error {
	return newError(KindRegistrationFailed, "register agent", err)
}

func RemoteCallFailed(op string, err error) *Error {
	return newError(KindRemoteCallFailed, op, err)
}

func Persistence(op string, err error) *Error {
	return newError(KindPersistence, op, err)
}

func Parse(err error) *Error {
	return newError(KindParse, "", err)
}

// KindOf returns the kind of the first *Error in the chain. Errors that
// carry one of the lookup sentinels without a wrapper are classified by
// the sentinel; everything else is a remote call failure.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}

	var categorized *Error
	if errors.As(err, &categorized) {
		return categorized.Kind
	}

	switch {
	case errors.Is(err, ErrUnknownAgent):
		return KindUnknownAgent
	case errors.Is(err, ErrUnknownContract):
		return KindUnknownContract
	case errors.Is(err, ErrAgentExists):
		return KindConflict
	default:
		return KindRemoteCallFailed
	}
}

// Recoverable reports whether err is a local miss that is rendered as a
// message instead of failing the command.
func Recoverable(err error) bool {
	switch KindOf(err) {
	case KindUnknownAgent, KindUnknownContract, KindConflict:
		return true
	default:
		return false
	}
}
