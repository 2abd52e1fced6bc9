package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/NearCounter/internal/gateway"
)

func TestContract_SignedOut(t *testing.T) {
	c := New(WithValue(3))
	ctx := context.Background()

	assert.Equal(t, "", c.AccountID())

	n, err := c.Counter(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	err = c.Increment(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, gateway.ErrNotSignedIn)

	var gwErr *gateway.Error
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, gateway.OpIncrement, gwErr.Op)
	assert.Equal(t, 3, c.Value())
}

func TestContract_Mutations(t *testing.T) {
	c := New(WithAccount("bob.testnet"), SignedIn())
	ctx := context.Background()

	assert.Equal(t, "bob.testnet", c.AccountID())

	require.NoError(t, c.Increment(ctx))
	require.NoError(t, c.Increment(ctx))
	require.NoError(t, c.Decrement(ctx))
	assert.Equal(t, 1, c.Value())

	require.NoError(t, c.Reset(ctx))
	assert.Equal(t, 0, c.Value())

	assert.Equal(t, 2, c.Calls(gateway.OpIncrement))
	assert.Equal(t, 1, c.Calls(gateway.OpDecrement))
	assert.Equal(t, 1, c.Calls(gateway.OpReset))
}

func TestContract_SignInOut(t *testing.T) {
	c := New()

	c.SignIn()
	assert.Equal(t, DefaultAccount, c.AccountID())

	c.SignOut()
	assert.Equal(t, "", c.AccountID())
	assert.Equal(t, 1, c.Calls(gateway.OpSignIn))
	assert.Equal(t, 1, c.Calls(gateway.OpSignOut))
}

func TestContract_FailNext(t *testing.T) {
	c := New(SignedIn())
	ctx := context.Background()

	c.FailNext(ErrInjected)
	_, err := c.Counter(ctx)
	assert.ErrorIs(t, err, ErrInjected)

	_, err = c.Counter(ctx)
	assert.NoError(t, err)
}

func TestContract_LatencyHonoursContext(t *testing.T) {
	c := New(WithLatency(time.Hour))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := c.Counter(ctx)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
