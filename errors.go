package cointrade

import (
	"errors"
	"fmt"
)

// User-correctable failures. They are expected outcomes of a trade attempt,
// not exceptional conditions, and never leave the wallet modified.
var (
	// ErrSymbolNotFound reports a symbol the price source does not know.
	ErrSymbolNotFound = errors.New("symbol not found")
	// ErrInvalidAmount reports a zero or negative trade amount.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrInsufficientFunds reports a purchase whose cost exceeds the cash balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInsufficientHoldings reports a sell larger than the net position.
	ErrInsufficientHoldings = errors.New("insufficient holdings")
)

// ErrTransient reports a price-source failure that is safe to retry later.
// The engine never retries it automatically.
var ErrTransient = errors.New("price source unavailable")

// ErrUnknownWallet reports an operation against a wallet that was never
// provisioned.
var ErrUnknownWallet = errors.New("unknown wallet")

// StorageError reports a durability-layer failure. The operation that hit it
// is aborted; no partial commit is ever exposed as success.
type StorageError struct {
	Op  string // the storage operation that failed
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// storageErr wraps err as a StorageError, or passes nil through.
func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
