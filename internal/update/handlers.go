package update

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/NearCounter/internal/models"
	"github.com/Rorical/NearCounter/internal/view"
)

// HandleKeyMsg translates a key press into the message bound to the
// matching control on screen. Disabled or hidden controls yield nothing.
func HandleKeyMsg(screen view.Screen, keyMsg tea.KeyMsg) (models.Msg, tea.Cmd) {
	switch keyMsg.String() {
	case "ctrl+c", "q":
		return nil, tea.Quit
	}
	if control, ok := screen.ControlForKey(keyMsg.String()); ok {
		return control.Msg, nil
	}
	return nil, nil
}

type TickMsg time.Time

func TickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func HandleWindowSizeMsg(ui *models.UIState, sizeMsg tea.WindowSizeMsg) {
	ui.Width = sizeMsg.Width
	ui.Height = sizeMsg.Height
}

// HandleTickMsg advances the loading animation. The tick also forces a
// redraw, which picks up sign-in changes made outside the update loop.
func HandleTickMsg(ui *models.UIState, loading bool) tea.Cmd {
	if loading {
		ui.LoadingDots = (ui.LoadingDots + 1) % 4
	} else {
		ui.LoadingDots = 0
	}
	return TickCmd()
}
