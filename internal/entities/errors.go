package entities

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidOrder      = errors.New("invalid order")
	ErrUnknownProduct    = errors.New("unknown product")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrAmountMismatch    = errors.New("amount mismatch")
	ErrIllegalTransition = errors.New("illegal transition")
	// ErrStatusConflict means another request won a concurrent status
	// transition; the loser re-reads and retries or gives up.
	ErrStatusConflict      = errors.New("order status conflict")
	ErrPaymentVerification = errors.New("payment verification failed")
)

// UnknownProductError aborts normalization; a missing price must never be
// silently defaulted.
type UnknownProductError struct {
	SKU string
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("unknown product %q", e.SKU)
}

func (e *UnknownProductError) Unwrap() error { return ErrUnknownProduct }

type InvalidQuantityError struct {
	SKU      string
	Quantity int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity %d for product %q", e.Quantity, e.SKU)
}

func (e *InvalidQuantityError) Unwrap() error { return ErrInvalidQuantity }

// AmountMismatchError carries both totals for client-side diagnostics. The
// caller must not proceed to payment capture.
type AmountMismatchError struct {
	ClientMinor int64
	ServerMinor int64
}

func (e *AmountMismatchError) Error() string {
	return fmt.Sprintf("declared amount %d does not match computed amount %d", e.ClientMinor, e.ServerMinor)
}

func (e *AmountMismatchError) Unwrap() error { return ErrAmountMismatch }

type IllegalTransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal transition from %s to %s", e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error { return ErrIllegalTransition }
