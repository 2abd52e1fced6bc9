package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/Rorical/NearCounter/internal/executor"
	"github.com/Rorical/NearCounter/internal/metrics"
	"github.com/Rorical/NearCounter/internal/models"
	"github.com/Rorical/NearCounter/internal/update"
	"github.com/Rorical/NearCounter/internal/view"
	"github.com/Rorical/NearCounter/ui/components"
)

// AppModel is the bubbletea model. The bubbletea program loop is the single
// consumer of messages, so state is only touched from Update.
type AppModel struct {
	state    models.State
	ui       models.UIState
	executor *executor.Executor
	log      logrus.FieldLogger
}

func NewAppModel(exec *executor.Executor, log logrus.FieldLogger) *AppModel {
	return &AppModel{
		state:    models.NewState(),
		executor: exec,
		log:      log,
	}
}

func (m *AppModel) Init() tea.Cmd {
	state, cmd := update.Init()
	m.state = state
	return tea.Batch(
		update.TickCmd(),
		m.executor.Cmd(cmd),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		domainMsg, cmd := update.HandleKeyMsg(m.Screen(), msg)
		if cmd != nil {
			return m, cmd
		}
		if domainMsg != nil {
			return m, m.dispatch(domainMsg)
		}
		return m, nil
	case tea.WindowSizeMsg:
		update.HandleWindowSizeMsg(&m.ui, msg)
		return m, nil
	case update.TickMsg:
		return m, update.HandleTickMsg(&m.ui, m.state.Loading)
	case models.Msg:
		return m, m.dispatch(msg)
	}
	return m, nil
}

func (m *AppModel) View() string {
	return components.RenderPage(m.Screen(), m.ui.LoadingDots, m.ui.Width)
}

// Screen projects the current state for the signed-in account.
func (m *AppModel) Screen() view.Screen {
	return view.Project(m.state, m.executor.Gateway().AccountID())
}

// State returns the current counter state.
func (m *AppModel) State() models.State {
	return m.state
}

func (m *AppModel) dispatch(msg models.Msg) tea.Cmd {
	update.LogMessage(m.log, msg)
	metrics.RecordMessage(msg.Name())

	state, cmd := update.Update(m.state, msg)
	m.state = state
	return m.executor.Cmd(cmd)
}
