// Package memory provides an in-process counter contract.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Rorical/NearCounter/internal/gateway"
)

// DefaultAccount is the account used by SignIn when none is configured.
const DefaultAccount = "dev.testnet"

// Contract simulates the counter contract. Reads work signed out; mutations
// require a signed-in account.
type Contract struct {
	mu       sync.Mutex
	value    int
	account  string
	signedIn string
	latency  time.Duration
	startIn  bool
	failNext error
	calls    map[string]int
}

// Option configures a Contract.
type Option func(*Contract)

// WithLatency delays every async call by d.
func WithLatency(d time.Duration) Option {
	return func(c *Contract) { c.latency = d }
}

// WithValue sets the initial counter value.
func WithValue(n int) Option {
	return func(c *Contract) { c.value = n }
}

// WithAccount sets the account that SignIn signs in as.
func WithAccount(account string) Option {
	return func(c *Contract) { c.account = account }
}

// SignedIn starts the contract with its account already signed in.
func SignedIn() Option {
	return func(c *Contract) { c.startIn = true }
}

func New(opts ...Option) *Contract {
	c := &Contract{
		account: DefaultAccount,
		calls:   make(map[string]int),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.startIn {
		c.signedIn = c.account
	}
	return c
}

var _ gateway.Gateway = (*Contract)(nil)

func (c *Contract) AccountID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.signedIn
}

func (c *Contract) Counter(ctx context.Context) (int, error) {
	if err := c.call(ctx, gateway.OpGetCounter, false); err != nil {
		return 0, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value, nil
}

func (c *Contract) Increment(ctx context.Context) error {
	return c.mutate(ctx, gateway.OpIncrement, func(v int) int { return v + 1 })
}

func (c *Contract) Decrement(ctx context.Context) error {
	return c.mutate(ctx, gateway.OpDecrement, func(v int) int { return v - 1 })
}

func (c *Contract) Reset(ctx context.Context) error {
	return c.mutate(ctx, gateway.OpReset, func(int) int { return 0 })
}

func (c *Contract) SignIn() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls[gateway.OpSignIn]++
	c.signedIn = c.account
}

func (c *Contract) SignOut() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls[gateway.OpSignOut]++
	c.signedIn = ""
}

// FailNext makes the next async call fail with err.
func (c *Contract) FailNext(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failNext = err
}

// Value returns the stored counter without going through a call.
func (c *Contract) Value() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Calls returns how many times op was invoked.
func (c *Contract) Calls(op string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[op]
}

func (c *Contract) mutate(ctx context.Context, op string, fn func(int) int) error {
	if err := c.call(ctx, op, true); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = fn(c.value)
	return nil
}

func (c *Contract) call(ctx context.Context, op string, needsAccount bool) error {
	c.mu.Lock()
	c.calls[op]++
	latency := c.latency
	failure := c.failNext
	c.failNext = nil
	signedIn := c.signedIn != ""
	c.mu.Unlock()

	if latency > 0 {
		timer := time.NewTimer(latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return gateway.Wrap(op, ctx.Err())
		case <-timer.C:
		}
	}

	if failure != nil {
		return gateway.Wrap(op, failure)
	}
	if needsAccount && !signedIn {
		return gateway.Wrap(op, gateway.ErrNotSignedIn)
	}
	return nil
}

// ErrInjected is a convenience failure for FailNext.
var ErrInjected = errors.New("injected failure")
