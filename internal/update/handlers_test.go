package update

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/Rorical/NearCounter/internal/models"
	"github.com/Rorical/NearCounter/internal/view"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestHandleKeyMsg_SignedIn(t *testing.T) {
	screen := view.Project(models.NewState().WithCount(1), "alice.testnet")

	msg, cmd := HandleKeyMsg(screen, runeKey('+'))
	assert.Nil(t, cmd)
	assert.Equal(t, models.IncrementClicked{}, msg)

	msg, _ = HandleKeyMsg(screen, runeKey('-'))
	assert.Equal(t, models.DecrementClicked{}, msg)

	msg, _ = HandleKeyMsg(screen, runeKey('r'))
	assert.Equal(t, models.ResetClicked{}, msg)

	msg, _ = HandleKeyMsg(screen, runeKey('a'))
	assert.Equal(t, models.ToggleLeftEye{}, msg)

	msg, _ = HandleKeyMsg(screen, runeKey('o'))
	assert.Equal(t, models.SignOutClicked{}, msg)

	msg, _ = HandleKeyMsg(screen, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, models.IncrementClicked{}, msg)
}

func TestHandleKeyMsg_LoadingDisablesMutations(t *testing.T) {
	s := models.NewState()
	s.Loading = true
	screen := view.Project(s, "alice.testnet")

	for _, r := range []rune{'+', '-', 'r'} {
		msg, cmd := HandleKeyMsg(screen, runeKey(r))
		assert.Nil(t, msg, string(r))
		assert.Nil(t, cmd, string(r))
	}

	msg, _ := HandleKeyMsg(screen, runeKey('l'))
	assert.Equal(t, models.ToggleLightIndicator{}, msg)
}

func TestHandleKeyMsg_SignedOutOnlySignIn(t *testing.T) {
	screen := view.Project(models.NewState().WithCount(1), "")

	msg, _ := HandleKeyMsg(screen, runeKey('+'))
	assert.Nil(t, msg)

	msg, _ = HandleKeyMsg(screen, runeKey('i'))
	assert.Equal(t, models.SignInClicked{}, msg)
}

func TestHandleKeyMsg_Quit(t *testing.T) {
	screen := view.Project(models.NewState(), "")

	msg, cmd := HandleKeyMsg(screen, runeKey('q'))
	assert.Nil(t, msg)
	assert.NotNil(t, cmd)

	_, cmd = HandleKeyMsg(screen, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.NotNil(t, cmd)
}

func TestHandleTickMsg(t *testing.T) {
	ui := models.UIState{}

	for i := 1; i <= 4; i++ {
		assert.NotNil(t, HandleTickMsg(&ui, true))
		assert.Equal(t, i%4, ui.LoadingDots)
	}

	ui.LoadingDots = 2
	HandleTickMsg(&ui, false)
	assert.Equal(t, 0, ui.LoadingDots)
}

func TestHandleWindowSizeMsg(t *testing.T) {
	ui := models.UIState{}
	HandleWindowSizeMsg(&ui, tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Equal(t, 80, ui.Width)
	assert.Equal(t, 24, ui.Height)
}
