// Package gateway defines the boundary to the counter contract.
package gateway

import (
	"context"
	"errors"
)

// Operation names, used in errors, logs and metrics.
const (
	OpGetCounter = "get_num"
	OpIncrement  = "increment"
	OpDecrement  = "decrement"
	OpReset      = "reset"
	OpSignIn     = "sign_in"
	OpSignOut    = "sign_out"
)

// ErrNotSignedIn is returned by mutations when no account is signed in.
var ErrNotSignedIn = errors.New("not signed in")

// Gateway is the counter contract as seen by the client. All async
// operations report failure as *Error.
type Gateway interface {
	// AccountID returns the signed-in account, or "" when signed out.
	AccountID() string
	Counter(ctx context.Context) (int, error)
	Increment(ctx context.Context) error
	Decrement(ctx context.Context) error
	Reset(ctx context.Context) error
	// SignIn and SignOut start the wallet flow and return immediately.
	SignIn()
	SignOut()
}

// Error is the single failure kind of the gateway. The cause is kept for
// diagnostics only; callers do not distinguish failure modes.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap returns err as an *Error for op. Nil stays nil and an existing
// *Error is returned unchanged.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return err
	}
	return &Error{Op: op, Err: err}
}
