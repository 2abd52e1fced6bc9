package update

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/NearCounter/internal/models"
)

func TestInit(t *testing.T) {
	state, cmd := Init()

	assert.True(t, state.Loading)
	assert.False(t, state.HasCount)
	assert.True(t, state.LeftEyeOpen)
	assert.False(t, state.RightEyeOpen)
	assert.False(t, state.LightOn)
	assert.Equal(t, models.FetchCount, cmd)
}

func TestUpdate_TransitionTable(t *testing.T) {
	base := models.NewState().WithCount(5)

	tests := []struct {
		name    string
		msg     models.Msg
		want    func(models.State) models.State
		wantCmd models.Command
	}{
		{
			name:    "received count",
			msg:     models.ReceivedCount{Value: 9},
			want:    func(s models.State) models.State { s.Loading = false; return s.WithCount(9) },
			wantCmd: models.NoCommand,
		},
		{
			name:    "contract error",
			msg:     models.ContractError{Err: errors.New("boom")},
			want:    func(s models.State) models.State { return s },
			wantCmd: models.NoCommand,
		},
		{
			name:    "increment clicked",
			msg:     models.IncrementClicked{},
			want:    func(s models.State) models.State { s.Loading = true; return s },
			wantCmd: models.Increment,
		},
		{
			name:    "decrement clicked",
			msg:     models.DecrementClicked{},
			want:    func(s models.State) models.State { s.Loading = true; return s },
			wantCmd: models.Decrement,
		},
		{
			name:    "reset clicked",
			msg:     models.ResetClicked{},
			want:    func(s models.State) models.State { s.Loading = true; return s },
			wantCmd: models.Reset,
		},
		{
			name:    "contract incremented",
			msg:     models.ContractIncremented{},
			want:    func(s models.State) models.State { return s },
			wantCmd: models.FetchCount,
		},
		{
			name:    "contract decremented",
			msg:     models.ContractDecremented{},
			want:    func(s models.State) models.State { return s },
			wantCmd: models.FetchCount,
		},
		{
			name:    "contract reset",
			msg:     models.ContractReset{},
			want:    func(s models.State) models.State { return s },
			wantCmd: models.FetchCount,
		},
		{
			name:    "toggle left eye",
			msg:     models.ToggleLeftEye{},
			want:    func(s models.State) models.State { s.LeftEyeOpen = !s.LeftEyeOpen; return s },
			wantCmd: models.NoCommand,
		},
		{
			name:    "toggle right eye",
			msg:     models.ToggleRightEye{},
			want:    func(s models.State) models.State { s.RightEyeOpen = !s.RightEyeOpen; return s },
			wantCmd: models.NoCommand,
		},
		{
			name:    "toggle light",
			msg:     models.ToggleLightIndicator{},
			want:    func(s models.State) models.State { s.LightOn = !s.LightOn; return s },
			wantCmd: models.NoCommand,
		},
		{
			name:    "sign out",
			msg:     models.SignOutClicked{},
			want:    func(s models.State) models.State { return s },
			wantCmd: models.SignOut,
		},
		{
			name:    "sign in",
			msg:     models.SignInClicked{},
			want:    func(s models.State) models.State { return s },
			wantCmd: models.SignIn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, cmd := Update(base, tt.msg)
			assert.Equal(t, tt.want(base), got)
			assert.Equal(t, tt.wantCmd, cmd)
		})
	}
}

func TestUpdate_HandlesEveryMessage(t *testing.T) {
	seen := make(map[string]bool)
	for _, msg := range models.AllMessages() {
		require.False(t, seen[msg.Name()], "duplicate message name %s", msg.Name())
		seen[msg.Name()] = true

		assert.NotPanics(t, func() {
			Update(models.NewState(), msg)
		}, msg.Name())
	}
	assert.Len(t, seen, 13)
}

func TestUpdate_ClicksNeverSetCounter(t *testing.T) {
	start := models.NewState().WithCount(5)
	for _, msg := range []models.Msg{models.IncrementClicked{}, models.DecrementClicked{}, models.ResetClicked{}} {
		got, _ := Update(start, msg)
		n, ok := got.CounterValue()
		assert.True(t, ok)
		assert.Equal(t, 5, n, msg.Name())
	}
}

func TestUpdate_ToggleLeftEyeTwiceRestores(t *testing.T) {
	start := models.NewState()

	once, _ := Update(start, models.ToggleLeftEye{})
	twice, _ := Update(once, models.ToggleLeftEye{})

	assert.NotEqual(t, start.LeftEyeOpen, once.LeftEyeOpen)
	assert.Equal(t, start.LeftEyeOpen, twice.LeftEyeOpen)
}

func TestUpdate_ReceivedCountFromAnyState(t *testing.T) {
	states := []models.State{
		models.NewState(),
		{Loading: true},
		{Loading: true, Count: -40, HasCount: true, LightOn: true},
		{Count: 3, HasCount: true, RightEyeOpen: true},
	}

	for _, s := range states {
		got, cmd := Update(s, models.ReceivedCount{Value: 12})
		n, ok := got.CounterValue()
		assert.True(t, ok)
		assert.Equal(t, 12, n)
		assert.False(t, got.Loading)
		assert.Equal(t, models.NoCommand, cmd)
		assert.Equal(t, s.LightOn, got.LightOn)
		assert.Equal(t, s.RightEyeOpen, got.RightEyeOpen)
	}
}

func TestUpdate_LoadingHoldsUntilResolved(t *testing.T) {
	unrelated := []models.Msg{
		models.ToggleLeftEye{},
		models.ToggleRightEye{},
		models.ToggleLightIndicator{},
		models.SignInClicked{},
		models.SignOutClicked{},
		models.ContractIncremented{},
	}

	for _, click := range []models.Msg{models.IncrementClicked{}, models.DecrementClicked{}, models.ResetClicked{}} {
		s, _ := Update(models.NewState().WithCount(1), click)
		for _, msg := range unrelated {
			s, _ = Update(s, msg)
			assert.True(t, s.Loading, "%s then %s", click.Name(), msg.Name())
		}

		failed, _ := Update(s, models.ContractError{Err: errors.New("rejected")})
		assert.True(t, failed.Loading)

		done, _ := Update(s, models.ReceivedCount{Value: 2})
		assert.False(t, done.Loading)
	}
}

func TestUpdate_IncrementRoundTrip(t *testing.T) {
	s := models.NewState().WithCount(5)

	s, cmd := Update(s, models.IncrementClicked{})
	require.Equal(t, models.Increment, cmd)
	assert.True(t, s.Loading)

	s, cmd = Update(s, models.ContractIncremented{})
	require.Equal(t, models.FetchCount, cmd)
	assert.True(t, s.Loading)

	s, cmd = Update(s, models.ReceivedCount{Value: 6})
	assert.Equal(t, models.NoCommand, cmd)
	assert.False(t, s.Loading)
	n, _ := s.CounterValue()
	assert.Equal(t, 6, n)
}

func TestUpdate_FailedIncrementKeepsLoading(t *testing.T) {
	s := models.NewState().WithCount(5)

	s, _ = Update(s, models.IncrementClicked{})
	s, cmd := Update(s, models.ContractError{Err: errors.New("rejected")})

	assert.Equal(t, models.NoCommand, cmd)
	assert.True(t, s.Loading)
	n, ok := s.CounterValue()
	assert.True(t, ok)
	assert.Equal(t, 5, n)
}
