package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/horde-arcade/internal/core"
	"github.com/vovakirdan/horde-arcade/internal/registry"
	"github.com/vovakirdan/horde-arcade/internal/storage"
)

const boardRowLimit = 100

// boardTab selects what the scoreboard lists for a game.
type boardTab int

const (
	tabScores boardTab = iota
	tabRuns
)

func (t boardTab) String() string {
	if t == tabRuns {
		return "RECENT RUNS"
	}
	return "HIGH SCORES"
}

func (t boardTab) columns() []table.Column {
	if t == tabRuns {
		return []table.Column{
			{Title: "Date", Width: 13},
			{Title: "By", Width: 5},
			{Title: "Score", Width: 8},
			{Title: "Time", Width: 6},
			{Title: "Result", Width: 6},
		}
	}
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 13},
	}
}

// boardKeys are the scoreboard bindings; they double as the help model.
type boardKeys struct {
	Scroll key.Binding
	Next   key.Binding
	Prev   key.Binding
	Tab    key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Prev, k.Next, k.Tab, k.Back, k.Quit}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultBoardKeys = boardKeys{
	Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
	Next:   key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→", "next game")),
	Prev:   key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "prev game")),
	Tab:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "scores/runs")),
	Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var (
	boardTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardFrame   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardTabOn   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	boardTabOff  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardFaint   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardEmpty   = boardFaint.Italic(true).Padding(1, 3)
	boardTableSt = func() table.Styles {
		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(false)
		return s
	}()
)

// ScoreboardModel browses stored high scores and runs, one game at a time.
type ScoreboardModel struct {
	store   *storage.Store
	games   []registry.GameInfo
	current int
	tab     boardTab
	stats   *storage.GameStats
	table   table.Model
	help    help.Model
	keys    boardKeys
	width   int
	height  int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel opens the scoreboard on the first registered game.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		games:  registry.List(),
		help:   help.New(),
		keys:   defaultBoardKeys,
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.reload()
	return m
}

// reload rebuilds the table for the current game and tab.
func (m *ScoreboardModel) reload() {
	m.table = table.New(
		table.WithColumns(m.tab.columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
		table.WithStyles(boardTableSt),
	)
	m.stats = nil
	if m.store == nil || len(m.games) == 0 {
		return
	}

	id := m.games[m.current].ID
	if stats, err := m.store.GetGameStats(id); err == nil {
		m.stats = stats
	}

	var rows []table.Row
	switch m.tab {
	case tabRuns:
		runs, _ := m.store.RecentRuns(id, boardRowLimit)
		for _, r := range runs {
			result := "lost"
			if r.Won {
				result = "won"
			}
			rows = append(rows, table.Row{
				r.CreatedAt.Format("Jan 02 15:04"),
				r.Source,
				fmt.Sprint(r.Score),
				core.FormatClock(r.Elapsed),
				result,
			})
		}
	default:
		scores, _ := m.store.TopScores(id, boardRowLimit)
		for i, s := range scores {
			rows = append(rows, table.Row{
				fmt.Sprint(i + 1),
				fmt.Sprint(s.Score),
				s.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	}
	m.table.SetRows(rows)
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles keys and resizes.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.tab = 1 - m.tab
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.cycle(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) cycle(step int) {
	if len(m.games) == 0 {
		return
	}
	m.current = (m.current + step + len(m.games)) % len(m.games)
	m.reload()
}

// View draws the game tabs, the table and a stats line.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	parts := []string{boardTitle.Render(m.tab.String()), m.gameTabs()}

	body := boardEmpty.Render("Nothing recorded yet.")
	if len(m.table.Rows()) > 0 {
		body = m.table.View()
	}
	parts = append(parts, boardFrame.Render(body))

	if line := m.statsLine(); line != "" {
		parts = append(parts, boardFaint.Render(line))
	}

	block := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return centerBlock(block, m.width) + "\n\n" + boardFaint.Render(m.help.View(m.keys))
}

// gameTabs renders one tab per game, or only the current one when the
// row does not fit.
func (m ScoreboardModel) gameTabs() string {
	if len(m.games) == 0 {
		return ""
	}
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.current {
			tabs[i] = boardTabOn.Render(g.Title)
		} else {
			tabs[i] = boardTabOff.Render(g.Title)
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if m.width > 0 && lipgloss.Width(row) > m.width-4 {
		row = boardTabOn.Render("← " + m.games[m.current].Title + " →")
	}
	return row
}

func (m ScoreboardModel) statsLine() string {
	s := m.stats
	if s == nil || s.GamesCount == 0 {
		return ""
	}
	fields := []string{
		fmt.Sprintf("%d played", s.GamesCount),
		fmt.Sprintf("best %d", s.HighScore),
		fmt.Sprintf("avg %.0f", s.AvgScore),
	}
	if !s.LastPlayed.IsZero() {
		fields = append(fields, "last "+s.LastPlayed.Format("Jan 02 15:04"))
	}
	return strings.Join(fields, " · ")
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard in its own program and reports
// whether the user went back rather than quitting.
func RunScoreboard(store *storage.Store, width, height int) (bool, error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
