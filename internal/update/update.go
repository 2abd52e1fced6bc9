// Package update implements the counter state machine: a pure transition
// function from (State, Msg) to (State, Command).
package update

import (
	"github.com/Rorical/NearCounter/internal/models"
)

// Init returns the state of a freshly mounted screen together with the
// initial fetch. The fetch is scheduled whether or not anyone is signed in.
func Init() (models.State, models.Command) {
	s := models.NewState()
	s.Loading = true
	return s, models.FetchCount
}

// Update applies msg to s. The counter value is only ever taken from a
// ReceivedCount message; mutations are confirmed by reading the value back.
func Update(s models.State, msg models.Msg) (models.State, models.Command) {
	switch msg := msg.(type) {
	case models.ReceivedCount:
		s.Loading = false
		return s.WithCount(msg.Value), models.NoCommand
	case models.ContractError:
		// Loading stays set; there is no recovery path from a failed call.
		return s, models.NoCommand
	case models.IncrementClicked:
		s.Loading = true
		return s, models.Increment
	case models.DecrementClicked:
		s.Loading = true
		return s, models.Decrement
	case models.ResetClicked:
		s.Loading = true
		return s, models.Reset
	case models.ContractIncremented, models.ContractDecremented, models.ContractReset:
		return s, models.FetchCount
	case models.ToggleLeftEye:
		s.LeftEyeOpen = !s.LeftEyeOpen
		return s, models.NoCommand
	case models.ToggleRightEye:
		s.RightEyeOpen = !s.RightEyeOpen
		return s, models.NoCommand
	case models.ToggleLightIndicator:
		s.LightOn = !s.LightOn
		return s, models.NoCommand
	case models.SignOutClicked:
		return s, models.SignOut
	case models.SignInClicked:
		return s, models.SignIn
	}
	return s, models.NoCommand
}
