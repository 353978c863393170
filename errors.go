package rdapexpiry

import "fmt"

// FailureKind identifies where in the check pipeline a failure occurred.
// Every kind maps to the UNKNOWN plugin status; only a fully successful
// pipeline run reaches threshold evaluation.
type FailureKind uint8

const (
	FailureInvalidDomain FailureKind = iota + 1
	FailureBootstrapUnreachable
	FailureNoRDAPServer
	FailureDomainNotFound
	FailureRDAPUnreachable
	FailureRDAPProtocol
	FailureNoExpirationEvent
	FailureUnparsableTimestamp
)

// CheckError is a classified pipeline failure. Message is what ends up on
// the status line, verbatim; Err (optional) carries the underlying cause.
type CheckError struct {
	Kind    FailureKind
	Message string
	Err     error
}

func (e *CheckError) Error() string { return e.Message }

func (e *CheckError) Unwrap() error { return e.Err }

func checkErrorf(kind FailureKind, format string, args ...any) *CheckError {
	return &CheckError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func wrapCheckErrorf(kind FailureKind, err error, format string, args ...any) *CheckError {
	return &CheckError{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}
