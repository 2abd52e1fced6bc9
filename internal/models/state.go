package models

// State represents the counter screen state. It is owned by the update loop
// and read by the view.
type State struct {
	Count        int  // Last value read back from the contract
	HasCount     bool // Whether Count holds a fetched value
	Loading      bool // A fetch or mutation is outstanding
	LeftEyeOpen  bool
	RightEyeOpen bool
	LightOn      bool
}

// NewState returns the state a freshly mounted screen starts with.
func NewState() State {
	return State{
		LeftEyeOpen:  true,
		RightEyeOpen: false,
		LightOn:      false,
	}
}

// CounterValue returns the fetched counter and whether it is known.
func (s State) CounterValue() (int, bool) {
	return s.Count, s.HasCount
}

// WithCount returns a copy of s holding the given counter value.
func (s State) WithCount(n int) State {
	s.Count = n
	s.HasCount = true
	return s
}
