package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sansu-app/sansu/internal/cli/formatter"
	"github.com/sansu-app/sansu/internal/domain"
	"github.com/sirupsen/logrus"
)

// gameStartedMsg reports the outcome of recording a play session.
type gameStartedMsg struct {
	session *domain.PlaySession
	err     error
}

// appModel is the root bubbletea Model for the TUI. It manages a view stack
// with the home screen at the bottom.
type appModel struct {
	state     *SharedState
	viewStack []View
	help      help.Model
	quitting  bool

	// One-line notice shown above the status bar until the next key press.
	notice string
}

var globalKeys = struct {
	Quit, Goal, Back key.Binding
}{
	Quit: key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	Goal: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "goal")),
	Back: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}

	h := help.New()
	h.ShortSeparator = "  "
	h.Styles.ShortKey = formatter.StyleFg
	h.Styles.ShortDesc = formatter.StyleDim
	h.Styles.ShortSeparator = formatter.StyleDim

	home := newHomeView(app.Progress, hostStartGame(state),
		withClock(app.now),
		withRefresh(app.RefreshInterval),
		withLogger(app.logger()),
		withDefaultGoal(app.defaultGoal()),
	)

	return appModel{
		state:     state,
		viewStack: []View{home},
		help:      h,
	}
}

// hostStartGame records the selection as a play session. The app model
// quits once the session is stored, leaving the selection in SharedState
// for the home command to hand to the game engine.
func hostStartGame(state *SharedState) StartGameFunc {
	return func(mode domain.GameMode, level domain.Level) tea.Cmd {
		if state.starting {
			return nil
		}
		state.starting = true
		sessions := state.App.Sessions
		return func() tea.Msg {
			s, err := sessions.Start(context.Background(), mode, level)
			return gameStartedMsg{session: s, err: err}
		}
	}
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

func (m *appModel) popView() {
	if len(m.viewStack) > 1 {
		m.viewStack = m.viewStack[:len(m.viewStack)-1]
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		// Every view on the stack keeps its layout current.
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.notice = ""
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case refreshViewMsg:
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case cmdOutputMsg:
		m.notice = msg.output
		return m, nil

	case wizardCompleteMsg:
		m.popView()
		m.notice = ""
		return m, tea.Batch(msg.nextCmd, refreshCmd)

	case gameStartedMsg:
		m.state.starting = false
		log := m.state.App.logger()
		if msg.err != nil {
			log.WithError(msg.err).Error("starting game")
			m.notice = formatter.StyleRed.Render("Error: " + msg.err.Error())
			return m, nil
		}
		log.WithFields(logrus.Fields{
			"session_id": msg.session.ID,
			"mode":       string(msg.session.Mode),
			"level":      int(msg.session.Level),
		}).Info("game started")
		m.state.Started = msg.session
		m.quitting = true
		return m, tea.Quit

	case progressLoadedMsg, progressTickMsg:
		// Progress belongs to the home view even while a form is on top.
		updated, cmd := m.viewStack[0].Update(msg)
		m.viewStack[0] = updated.(View)
		return m, cmd
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// A selection is being stored; the program quits once it lands.
	if m.state.starting {
		return m, nil
	}

	m.notice = ""

	// Forms receive every key, including q and esc.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch {
	case key.Matches(msg, globalKeys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, globalKeys.Goal):
		if v := m.activeView(); v != nil && v.ID() == ViewHome {
			return m, goalWizardCmd(m.state)
		}

	case key.Matches(msg, globalKeys.Back):
		m.popView()
		return m, nil
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}
	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height so the alt-screen renderer leaves no stale lines.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePink.Bold(true).Render("sansu")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	breadcrumb := ""
	if len(crumbs) > 0 {
		breadcrumb = " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return title + breadcrumb + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var bindings []key.Binding
	if v := m.activeView(); v != nil {
		bindings = append(bindings, v.ShortHelp()...)
		if v.ID() == ViewHome {
			bindings = append(bindings, globalKeys.Goal, globalKeys.Quit)
		}
	}

	sep := lipgloss.NewStyle().Foreground(formatter.ColorDim).
		Render(strings.Repeat("─", max(m.state.Width, 20)))
	bar := sep + "\n" + m.help.ShortHelpView(bindings)
	if m.notice != "" {
		bar += "\n" + m.notice
	}
	return bar
}

// viewCapturesInput reports whether the view needs every key event.
func viewCapturesInput(v View) bool {
	return v != nil && v.ID() == ViewForm
}
