// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package contest

import "errors"

// ErrGenderNotRevealed is returned when a winner draw is attempted
// before the actual gender has been configured.
var ErrGenderNotRevealed = errors.New("actual gender has not been revealed")

// RejectionError reports a recoverable validation failure. The Reason
// is safe to show to the caller verbatim. BudgetExceeded marks the
// distinguished quota sub-kind so clients can render a specific message.
type RejectionError struct {
	Reason         string
	BudgetExceeded bool
}

func (e *RejectionError) Error() string {
	return e.Reason
}

// Reject builds a plain validation rejection.
func Reject(reason string) *RejectionError {
	return &RejectionError{Reason: reason}
}

// RejectBudget builds a budget-exceeded rejection.
func RejectBudget(reason string) *RejectionError {
	return &RejectionError{Reason: reason, BudgetExceeded: true}
}
