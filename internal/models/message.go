package models

// Msg is one event fed into the update loop: either a user interaction or
// the outcome of a command. The set of implementations is closed.
type Msg interface {
	Name() string
	isMsg()
}

// ReceivedCount carries the counter value read from the contract.
type ReceivedCount struct {
	Value int
}

// ContractError carries the failure of any gateway call.
type ContractError struct {
	Err error
}

type IncrementClicked struct{}

type DecrementClicked struct{}

type ResetClicked struct{}

// ContractIncremented reports that the increment transaction succeeded.
type ContractIncremented struct{}

// ContractDecremented reports that the decrement transaction succeeded.
type ContractDecremented struct{}

// ContractReset reports that the reset transaction succeeded.
type ContractReset struct{}

type ToggleLeftEye struct{}

type ToggleRightEye struct{}

type ToggleLightIndicator struct{}

type SignOutClicked struct{}

type SignInClicked struct{}

func (ReceivedCount) Name() string        { return "received_count" }
func (ContractError) Name() string        { return "contract_error" }
func (IncrementClicked) Name() string     { return "increment_clicked" }
func (DecrementClicked) Name() string     { return "decrement_clicked" }
func (ResetClicked) Name() string         { return "reset_clicked" }
func (ContractIncremented) Name() string  { return "contract_incremented" }
func (ContractDecremented) Name() string  { return "contract_decremented" }
func (ContractReset) Name() string        { return "contract_reset" }
func (ToggleLeftEye) Name() string        { return "toggle_left_eye" }
func (ToggleRightEye) Name() string       { return "toggle_right_eye" }
func (ToggleLightIndicator) Name() string { return "toggle_light_indicator" }
func (SignOutClicked) Name() string       { return "sign_out_clicked" }
func (SignInClicked) Name() string        { return "sign_in_clicked" }

func (ReceivedCount) isMsg()        {}
func (ContractError) isMsg()        {}
func (IncrementClicked) isMsg()     {}
func (DecrementClicked) isMsg()     {}
func (ResetClicked) isMsg()         {}
func (ContractIncremented) isMsg()  {}
func (ContractDecremented) isMsg()  {}
func (ContractReset) isMsg()        {}
func (ToggleLeftEye) isMsg()        {}
func (ToggleRightEye) isMsg()       {}
func (ToggleLightIndicator) isMsg() {}
func (SignOutClicked) isMsg()       {}
func (SignInClicked) isMsg()        {}

// AllMessages returns one value of every message variant.
func AllMessages() []Msg {
	return []Msg{
		ReceivedCount{},
		ContractError{},
		IncrementClicked{},
		DecrementClicked{},
		ResetClicked{},
		ContractIncremented{},
		ContractDecremented{},
		ContractReset{},
		ToggleLeftEye{},
		ToggleRightEye{},
		ToggleLightIndicator{},
		SignOutClicked{},
		SignInClicked{},
	}
}
