package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/cluso-flightgraph/pkg/planner"
	"github.com/dd0wney/cluso-flightgraph/pkg/storage"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")).
			MarginLeft(2).
			MarginTop(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FFFF")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#FF00FF")).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Padding(0, 2)

	contentStyle = lipgloss.NewStyle().
			MarginLeft(2).
			MarginTop(1)

	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(1, 2).
			MarginRight(2)

	resultStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#FFFF00")).
			Padding(1, 2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1).
			MarginLeft(2)
)

type view int

const (
	dashboardView view = iota
	pathView
	airportView
	reachView
	viewCount
)

var tabNames = []string{"Dashboard", "Path", "Airport", "Reach"}

type keyMap struct {
	Tab      key.Binding
	ShiftTab key.Binding
	Enter    key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next view"),
	),
	ShiftTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev view"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "run"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Enter, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab},
		{k.Enter, k.Quit},
	}
}

type model struct {
	planner      *planner.Planner
	reachHops    int
	currentView  view
	inputs       map[view]*textinput.Model
	busiestTable table.Model
	help         help.Model
	keys         keyMap
	width        int
	height       int
	result       string
	message      string
	messageErr   bool
	stats        storage.Statistics
}

func newInput(placeholder string) *textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 64
	ti.Width = 40
	return &ti
}

func initialModel(p *planner.Planner, reachHops int) model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Airport", Width: 44},
		{Title: "Connections", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(6),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#00FFFF")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(false)
	t.SetStyles(s)

	m := model{
		planner:     p,
		reachHops:   reachHops,
		currentView: dashboardView,
		inputs: map[view]*textinput.Model{
			pathView:    newInput("LHR JFK " + p.DefaultCriterion()),
			airportView: newInput("CDG"),
			reachView:   newInput("DEL 2"),
		},
		busiestTable: t,
		help:         help.New(),
		keys:         keys,
		stats:        p.Stats(),
	}
	m.refreshBusiest()
	return m
}

func (m *model) refreshBusiest() {
	var rows []table.Row
	for _, r := range m.planner.Busiest() {
		rows = append(rows, table.Row{
			strconv.Itoa(r.Rank),
			planner.Label(r.Airport),
			strconv.Itoa(r.Connections),
		})
	}
	m.busiestTable.SetRows(rows)
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) switchTo(v view) {
	if in, ok := m.inputs[m.currentView]; ok {
		in.Blur()
	}
	m.currentView = v
	m.result = ""
	m.message = ""
	if in, ok := m.inputs[v]; ok {
		in.Focus()
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Tab):
			m.switchTo((m.currentView + 1) % viewCount)
			return m, nil

		case key.Matches(msg, m.keys.ShiftTab):
			m.switchTo((m.currentView + viewCount - 1) % viewCount)
			return m, nil

		case key.Matches(msg, m.keys.Enter):
			m.run()
			return m, nil
		}
	}

	if in, ok := m.inputs[m.currentView]; ok {
		updated, cmd := in.Update(msg)
		*in = updated
		return m, cmd
	}
	return m, nil
}

// run executes the query typed into the current view.
func (m *model) run() {
	in, ok := m.inputs[m.currentView]
	if !ok {
		m.stats = m.planner.Stats()
		m.refreshBusiest()
		return
	}

	args := strings.Fields(in.Value())
	if len(args) == 0 {
		m.fail("Input cannot be empty")
		return
	}

	var err error
	switch m.currentView {
	case pathView:
		err = m.runPath(args)
	case airportView:
		err = m.runAirport(args[0])
	case reachView:
		err = m.runReach(args)
	}
	if err != nil {
		m.fail(err.Error())
	}
}

func (m *model) fail(msg string) {
	m.result = ""
	m.message = msg
	m.messageErr = true
}

func (m *model) succeed(result, msg string) {
	m.result = result
	m.message = msg
	m.messageErr = false
}

func (m *model) runPath(args []string) error {
	if len(args) < 2 {
		return errors.New("usage: <from> <to> [criterion]")
	}
	req := planner.PathRequest{Source: args[0], Destination: args[1]}
	if len(args) > 2 {
		req.Criterion = args[2]
	}

	it, err := m.planner.FindPath(req)
	if err != nil {
		return err
	}
	if !it.Found {
		m.succeed("", fmt.Sprintf("No path found between %s and %s", it.Source.IATA, it.Destination.IATA))
		return nil
	}

	var s strings.Builder
	for i, a := range it.Airports {
		marker := "├─"
		if i == len(it.Airports)-1 {
			marker = "└─"
		}
		fmt.Fprintf(&s, "%s %s\n", marker, planner.Label(a))
	}
	fmt.Fprintf(&s, "\nTotal %s: %s\nHops: %d", it.Criterion, it.Total(), it.Hops)
	m.succeed(s.String(), fmt.Sprintf("Path found by %s", it.Criterion))
	return nil
}

func (m *model) runAirport(code string) error {
	d, err := m.planner.Airport(code)
	if err != nil {
		return err
	}
	result := fmt.Sprintf(`%s
━━━━━━━━━━━━━━━
ID:         %d
City:       %s
Country:    %s
Position:   %.4f, %.4f
Outgoing:   %d
Traffic:    %d`,
		planner.Label(d.Airport),
		d.ID, d.City, d.Country,
		d.Latitude, d.Longitude,
		d.OutgoingRoutes, d.Traffic,
	)
	m.succeed(result, "Airport found")
	return nil
}

func (m *model) runReach(args []string) error {
	hops := m.reachHops
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.New("hops must be a number")
		}
		hops = n
	}

	r, err := m.planner.Reachable(args[0], hops)
	if err != nil {
		return err
	}

	var s strings.Builder
	for _, level := range r.Levels {
		codes := make([]string, len(level.Airports))
		for i, a := range level.Airports {
			codes[i] = a.IATA
			if codes[i] == "" {
				codes[i] = fmt.Sprintf("#%d", a.ID)
			}
		}
		fmt.Fprintf(&s, "%d hop(s): %d airports\n  %s\n", level.Hops, len(level.Airports), truncate(strings.Join(codes, " "), 200))
	}
	m.succeed(s.String(), fmt.Sprintf("%d airports reachable from %s within %d hops", r.Total, r.Source.IATA, r.MaxHops))
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func (m model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("✈ Flight Route Optimization"))
	s.WriteString("\n\n")
	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	switch m.currentView {
	case dashboardView:
		s.WriteString(m.renderDashboard())
	case pathView:
		s.WriteString(m.renderInputView("Shortest Path", "Enter: <from> <to> [distance|time|cost|stops|hops]"))
	case airportView:
		s.WriteString(m.renderInputView("Airport Lookup", "Enter an IATA code"))
	case reachView:
		s.WriteString(m.renderInputView("Reachability", "Enter: <code> [hops]"))
	}

	if m.message != "" {
		s.WriteString("\n\n")
		if m.messageErr {
			s.WriteString(errorStyle.Render("✗ " + m.message))
		} else {
			s.WriteString(successStyle.Render("✓ " + m.message))
		}
	}

	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))

	return s.String()
}

func (m model) renderTabs() string {
	var rendered []string
	for i, tab := range tabNames {
		if view(i) == m.currentView {
			rendered = append(rendered, activeTabStyle.Render(tab))
		} else {
			rendered = append(rendered, inactiveTabStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m model) renderDashboard() string {
	statsContent := fmt.Sprintf(`📊 Statistics
━━━━━━━━━━━━━━━
Airports:    %d
Routes:      %d
IATA codes:  %d
Origins:     %d
Duplicates:  %d`,
		m.stats.AirportCount,
		m.stats.RouteCount,
		m.stats.IndexedCodes,
		m.stats.SourceAirports,
		m.stats.DuplicatesIgnored,
	)

	var busiest strings.Builder
	busiest.WriteString("🛫 Top 5 Busiest Airports\n\n")
	busiest.WriteString(m.busiestTable.View())

	return contentStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top,
		boxStyle.Render(statsContent),
		boxStyle.Render(busiest.String()),
	))
}

func (m model) renderInputView(title, prompt string) string {
	var s strings.Builder

	s.WriteString(headerStyle.Render(title))
	s.WriteString("\n\n")
	s.WriteString(prompt + ":\n\n")
	s.WriteString(m.inputs[m.currentView].View())

	if m.result != "" {
		s.WriteString("\n\n")
		s.WriteString(resultStyle.Render(m.result))
	}

	return contentStyle.Render(s.String())
}
