package service

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNotFound = errors.New("not found")

// ErrNotPending is returned when a payment outcome is applied to a
// purchase that has already left the pending state.
var ErrNotPending = errors.New("purchase is not awaiting payment")

// ValidationError lists the request fields that were missing or
// malformed.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s", strings.Join(e.Fields, ", "))
}

type PaymentErrorKind string

const (
	// PaymentRejected means the processor answered and declined the
	// charge. The purchase has been marked failed.
	PaymentRejected PaymentErrorKind = "gateway_rejected"
	// PaymentUnreachable means no response was received. The purchase is
	// left pending so the charge can be retried.
	PaymentUnreachable PaymentErrorKind = "gateway_unreachable"
)

type PaymentError struct {
	Kind    PaymentErrorKind
	Message string
	Err     error
}

func (e *PaymentError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *PaymentError) Unwrap() error {
	return e.Err
}
