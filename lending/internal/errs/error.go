package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("identifier already exists")
	ErrNotLoggedIn     = errors.New("not logged in")
	ErrForbidden       = errors.New("forbidden")
	ErrItemUnavailable = errors.New("item is not available")
	ErrOverdueLoans    = errors.New("user has overdue loans")
	ErrOutstandingFine = errors.New("outstanding fine must be paid first")
	ErrLoanClosed      = errors.New("loan is already closed")
	ErrNotOwner        = errors.New("loan does not belong to the current user")
	ErrInvalidArgument = errors.New("invalid argument")
)

// FineError is a refusal caused by an unpaid fine; it unwraps to ErrOutstandingFine.
type FineError struct {
	LoanID string
	Amount int
}

func (e *FineError) Error() string {
	if e.LoanID == "" {
		return fmt.Sprintf("%s: %d", ErrOutstandingFine, e.Amount)
	}
	return fmt.Sprintf("%s: loan %s owes %d", ErrOutstandingFine, e.LoanID, e.Amount)
}

func (e *FineError) Unwrap() error {
	return ErrOutstandingFine
}
