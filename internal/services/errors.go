package services

import (
	"errors"
	"fmt"
)

// HandlerErrorKind classifies failures of a whole batch call
type HandlerErrorKind int

const (
	// KindTooManyItems means the batch exceeded MaxBatchSize; no lookup ran
	KindTooManyItems HandlerErrorKind = iota + 1
	// KindRepositoryFault means the store failed mid-call; partial results are dropped
	KindRepositoryFault
)

func (k HandlerErrorKind) String() string {
	switch k {
	case KindTooManyItems:
		return "TooManyItems"
	case KindRepositoryFault:
		return "RepositoryFault"
	default:
		return fmt.Sprintf("HandlerErrorKind(%d)", int(k))
	}
}

// Sentinels for errors.Is checks against a *HandlerError
var (
	ErrTooManyItems    = &HandlerError{Kind: KindTooManyItems}
	ErrRepositoryFault = &HandlerError{Kind: KindRepositoryFault}
)

// HandlerError is the call-level error returned by LookupService.Handle
type HandlerError struct {
	Kind    HandlerErrorKind
	Message string
	Err     error
}

func (e *HandlerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}

// Is matches any HandlerError of the same kind
func (e *HandlerError) Is(target error) bool {
	var t *HandlerError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

func tooManyItems(limit int) *HandlerError {
	return &HandlerError{
		Kind:    KindTooManyItems,
		Message: fmt.Sprintf("You entered more than %d postcodes.", limit),
	}
}

func repositoryFault(err error) *HandlerError {
	return &HandlerError{Kind: KindRepositoryFault, Err: err}
}
