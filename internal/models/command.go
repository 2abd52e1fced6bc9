package models

// Command names one effect to run against the contract gateway.
type Command int

const (
	NoCommand Command = iota
	FetchCount
	Increment
	Decrement
	Reset
	SignIn
	SignOut
)

func (c Command) String() string {
	switch c {
	case NoCommand:
		return "none"
	case FetchCount:
		return "fetch_count"
	case Increment:
		return "increment"
	case Decrement:
		return "decrement"
	case Reset:
		return "reset"
	case SignIn:
		return "sign_in"
	case SignOut:
		return "sign_out"
	}
	return "unknown"
}

// FireAndForget reports whether the command resolves without a message.
func (c Command) FireAndForget() bool {
	return c == SignIn || c == SignOut
}
