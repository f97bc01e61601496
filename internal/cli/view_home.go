package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sansu-app/sansu/internal/cli/formatter"
	"github.com/sansu-app/sansu/internal/config"
	"github.com/sansu-app/sansu/internal/domain"
	"github.com/sirupsen/logrus"
)

// StartGameFunc is the host's handler for a level selection. It is called
// exactly once per activation. The returned command may be nil.
type StartGameFunc func(mode domain.GameMode, level domain.Level) tea.Cmd

// ProgressSource supplies the snapshot shown by the stamp calendar.
type ProgressSource interface {
	Snapshot(ctx context.Context, now time.Time) (*domain.ProgressSnapshot, error)
}

// ── messages ─────────────────────────────────────────────────────────────────

type progressLoadedMsg struct {
	snapshot *domain.ProgressSnapshot
	err      error
}

type progressTickMsg struct{}

// ── options ──────────────────────────────────────────────────────────────────

type homeOption func(*homeView)

func withClock(now func() time.Time) homeOption {
	return func(v *homeView) { v.now = now }
}

func withRefresh(every time.Duration) homeOption {
	return func(v *homeView) { v.refresh = every }
}

func withLogger(log logrus.FieldLogger) homeOption {
	return func(v *homeView) { v.log = log }
}

func withDefaultGoal(goal int) homeOption {
	return func(v *homeView) { v.defaultGoal = goal }
}

// ── view ─────────────────────────────────────────────────────────────────────

// homeView is the landing screen: one panel per game mode, each holding
// three level buttons, and the stamp calendar underneath. It owns no game
// state. Selections go out through onStartGame.
type homeView struct {
	source      ProgressSource
	onStartGame StartGameFunc
	log         logrus.FieldLogger
	now         func() time.Time
	refresh     time.Duration
	defaultGoal int

	today    time.Time
	snapshot *domain.ProgressSnapshot

	panel int // index into domain.GameModes
	row   int // index into domain.Levels
	width int
}

func newHomeView(source ProgressSource, onStartGame StartGameFunc, opts ...homeOption) *homeView {
	v := &homeView{
		source:      source,
		onStartGame: onStartGame,
		now:         time.Now,
		defaultGoal: config.DefaultDailyGoal,
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.log == nil {
		v.log = logrus.StandardLogger()
	}
	v.today = v.now()
	return v
}

func (v *homeView) ID() ViewID     { return ViewHome }
func (v *homeView) Title() string { return "Home" }

var homeKeys = struct {
	Prev, Next, Up, Down, Start, Pick, Refresh key.Binding
}{
	Prev:    key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←→", "mode")),
	Next:    key.NewBinding(key.WithKeys("right", "l", "tab")),
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "level")),
	Down:    key.NewBinding(key.WithKeys("down", "j")),
	Start:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "start")),
	Pick:    key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "start level")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
}

func (v *homeView) ShortHelp() []key.Binding {
	return []key.Binding{homeKeys.Prev, homeKeys.Up, homeKeys.Start, homeKeys.Pick, homeKeys.Refresh}
}

func (v *homeView) Init() tea.Cmd {
	return tea.Batch(v.loadProgress(), v.tick())
}

// ── data loading ─────────────────────────────────────────────────────────────

func (v *homeView) loadProgress() tea.Cmd {
	source := v.source
	now := v.now()
	return func() tea.Msg {
		if source == nil {
			return progressLoadedMsg{}
		}
		snap, err := source.Snapshot(context.Background(), now)
		return progressLoadedMsg{snapshot: snap, err: err}
	}
}

func (v *homeView) tick() tea.Cmd {
	if v.refresh <= 0 {
		return nil
	}
	return tea.Tick(v.refresh, func(time.Time) tea.Msg { return progressTickMsg{} })
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *homeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressLoadedMsg:
		if msg.err != nil {
			v.log.WithError(msg.err).Warn("loading progress snapshot")
		}
		v.snapshot = msg.snapshot
		if v.snapshot != nil {
			v.today = v.snapshot.Today
		}
		return v, nil

	case progressTickMsg:
		return v, tea.Batch(v.loadProgress(), v.tick())

	case refreshViewMsg:
		return v, v.loadProgress()

	case tea.WindowSizeMsg:
		v.width = msg.Width
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, homeKeys.Prev):
			v.panel = (v.panel + len(domain.GameModes) - 1) % len(domain.GameModes)
		case key.Matches(msg, homeKeys.Next):
			v.panel = (v.panel + 1) % len(domain.GameModes)
		case key.Matches(msg, homeKeys.Up):
			if v.row > 0 {
				v.row--
			}
		case key.Matches(msg, homeKeys.Down):
			if v.row < len(domain.Levels)-1 {
				v.row++
			}
		case key.Matches(msg, homeKeys.Start):
			return v, v.button(v.panel, v.row).Activate()
		case key.Matches(msg, homeKeys.Pick):
			v.row = int(msg.Runes[0] - '1')
			return v, v.button(v.panel, v.row).Activate()
		case key.Matches(msg, homeKeys.Refresh):
			return v, v.loadProgress()
		}
	}
	return v, nil
}

// button builds the control bound to the given panel and row.
func (v *homeView) button(panel, row int) LevelButton {
	mode := domain.GameModes[panel]
	level := domain.Levels[row]
	return LevelButton{
		Level: int(level),
		Color: mode.Info().Color,
		Label: mode.LevelLabel(level),
		OnClick: func() tea.Cmd {
			if v.onStartGame == nil {
				return nil
			}
			return v.onStartGame(mode, level)
		},
	}
}

// calendar hands the current snapshot to the widget as-is.
func (v *homeView) calendar() StampCalendar {
	return StampCalendar{Snapshot: v.snapshot, Today: v.today, DefaultGoal: v.defaultGoal}
}

// ── view rendering ───────────────────────────────────────────────────────────

const (
	panelInnerWidth = 38
	panelGap        = 2
)

func (v *homeView) View() string {
	panels := make([]string, 0, len(domain.GameModes))
	for i, mode := range domain.GameModes {
		panels = append(panels, v.renderPanel(i, mode))
	}

	var grid string
	if v.width == 0 || v.width >= 2*lipgloss.Width(panels[0])+panelGap {
		grid = lipgloss.JoinHorizontal(lipgloss.Top, panels[0], "  ", panels[1])
	} else {
		grid = lipgloss.JoinVertical(lipgloss.Left, panels...)
	}

	footer := formatter.Dim(Version)
	return lipgloss.JoinVertical(lipgloss.Center, grid, "", v.calendar().View(), "", footer)
}

func (v *homeView) renderPanel(index int, mode domain.GameMode) string {
	info := mode.Info()
	focused := index == v.panel

	symbol := lipgloss.PlaceHorizontal(panelInnerWidth, lipgloss.Center, formatter.Badge(info.Color, info.Symbol))
	heading := lipgloss.PlaceHorizontal(panelInnerWidth, lipgloss.Center, formatter.Bold(info.Heading))

	lines := []string{symbol, heading, ""}
	for row := range domain.Levels {
		lines = append(lines, v.button(index, row).Render(panelInnerWidth, focused && row == v.row))
	}

	border := lipgloss.RoundedBorder()
	borderColor := formatter.ColorDim
	if focused {
		border = lipgloss.ThickBorder()
		borderColor = formatter.TokenColor(info.Color)
	}

	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(borderColor).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
