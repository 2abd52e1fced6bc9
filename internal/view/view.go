// Package view projects the counter state into a renderable description.
// Nothing here mutates state; renderers consume Screen or the node tree.
package view

import (
	"strconv"

	"github.com/Rorical/NearCounter/internal/models"
)

// Placeholder is shown while the counter value is unknown.
const Placeholder = "calculating..."

// Control is an interactive element bound to a message.
type Control struct {
	ID       string
	Label    string
	Keys     []string
	Msg      models.Msg
	Disabled bool
}

// Screen is the derived view of a State for a given account.
type Screen struct {
	SignedIn         bool
	AccountID        string
	HasCount         bool
	Display          string
	PositiveCount    bool
	ShowTongue       bool
	ControlsDisabled bool
	Loading          bool
	LeftEyeOpen      bool
	RightEyeOpen     bool
	LightOn          bool
	Controls         []Control
}

// Project computes the screen for s. accountID is queried from the gateway
// by the caller; an empty id selects the signed-out branch.
func Project(s models.State, accountID string) Screen {
	n, ok := s.CounterValue()

	sc := Screen{
		SignedIn:         accountID != "",
		AccountID:        accountID,
		HasCount:         ok,
		Display:          Placeholder,
		PositiveCount:    ok && n >= 0,
		ShowTongue:       ok && (n > 20 || n < -20),
		ControlsDisabled: s.Loading,
		Loading:          s.Loading,
		LeftEyeOpen:      s.LeftEyeOpen,
		RightEyeOpen:     s.RightEyeOpen,
		LightOn:          s.LightOn,
	}
	if ok {
		sc.Display = strconv.Itoa(n)
	}
	sc.Controls = controls(sc)
	return sc
}

func controls(sc Screen) []Control {
	if !sc.SignedIn {
		return []Control{
			{ID: "sign-in", Label: "Sign In", Keys: []string{"i", "enter"}, Msg: models.SignInClicked{}},
		}
	}
	return []Control{
		{ID: "plus", Label: "+", Keys: []string{"+", "=", "up", "k"}, Msg: models.IncrementClicked{}, Disabled: sc.ControlsDisabled},
		{ID: "minus", Label: "-", Keys: []string{"-", "down", "j"}, Msg: models.DecrementClicked{}, Disabled: sc.ControlsDisabled},
		{ID: "a", Label: "RS", Keys: []string{"r"}, Msg: models.ResetClicked{}, Disabled: sc.ControlsDisabled},
		{ID: "b", Label: "LE", Keys: []string{"a"}, Msg: models.ToggleLeftEye{}},
		{ID: "c", Label: "RE", Keys: []string{"s"}, Msg: models.ToggleRightEye{}},
		{ID: "d", Label: "L", Keys: []string{"l"}, Msg: models.ToggleLightIndicator{}},
		{ID: "sign-out", Label: "Sign Out", Keys: []string{"o"}, Msg: models.SignOutClicked{}},
	}
}

// ControlForKey returns the enabled control bound to key, if any.
func (sc Screen) ControlForKey(key string) (Control, bool) {
	for _, c := range sc.Controls {
		if c.Disabled {
			continue
		}
		for _, k := range c.Keys {
			if k == key {
				return c, true
			}
		}
	}
	return Control{}, false
}
