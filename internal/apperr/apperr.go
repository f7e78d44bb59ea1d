// Package apperr defines the error contract shared by all workflows.
// Every business failure carries a stable machine-readable code, a
// human-readable message and optional structured detail.
package apperr

import "fmt"

type Kind int

const (
	// KindNotFound: the referenced entity does not exist.
	KindNotFound Kind = iota
	// KindConflict: the entity exists but its state forbids the operation.
	KindConflict
	// KindBusinessRule: the request violates a domain rule.
	KindBusinessRule
	// KindInvariant: a programming-error-class illegal state transition.
	KindInvariant
	// KindInternal: infrastructure failure (serialization, storage, ...).
	KindInternal
)

type Error struct {
	Kind    Kind
	Code    string
	Message string
	Detail  string
	cause   error
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

func NotFound(code, message, detail string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message, Detail: detail}
}

func Conflict(code, message, detail string) *Error {
	return &Error{Kind: KindConflict, Code: code, Message: message, Detail: detail}
}

func BusinessRule(code, message, detail string) *Error {
	return &Error{Kind: KindBusinessRule, Code: code, Message: message, Detail: detail}
}

func Invariant(message, detail string) *Error {
	return &Error{Kind: KindInvariant, Code: CodeIllegalState, Message: message, Detail: detail}
}

func Internal(message string, cause error) *Error {
	e := &Error{Kind: KindInternal, Code: CodeInternal, Message: message, cause: cause}
	if cause != nil {
		e.Detail = cause.Error()
	}
	return e
}
