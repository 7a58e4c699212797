package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-flightgraph/pkg/planner"
	"github.com/dd0wney/cluso-flightgraph/pkg/storage"
)

func newTestModel(t *testing.T) model {
	t.Helper()

	gs := storage.NewGraphStorage()
	gs.AddAirport(storage.Airport{ID: 1, Name: "Alpha", IATA: "AAA"})
	gs.AddAirport(storage.Airport{ID: 2, Name: "Bravo", IATA: "BBB"})
	gs.AddAirport(storage.Airport{ID: 3, Name: "Charlie", IATA: "CCC"})
	gs.AddRoute(storage.NewRoute(1, 2, storage.WithDistance(500)))
	gs.AddRoute(storage.NewRoute(2, 3, storage.WithDistance(300)))
	gs.AddRoute(storage.NewRoute(1, 3, storage.WithDistance(1000)))
	gs.ComputeTraffic()

	return initialModel(planner.New(gs), 2)
}

func press(t *testing.T, m model, msg tea.KeyMsg) model {
	t.Helper()
	next, _ := m.Update(msg)
	updated, ok := next.(model)
	require.True(t, ok)
	return updated
}

func TestModel_TabCyclesViews(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, dashboardView, m.currentView)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, pathView, m.currentView)
	assert.True(t, m.inputs[pathView].Focused())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, reachView, m.currentView)
	assert.False(t, m.inputs[pathView].Focused())
}

func TestModel_DashboardShowsBusiest(t *testing.T) {
	m := newTestModel(t)

	rows := m.busiestTable.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "Alpha (AAA)", rows[0][1])
	assert.Equal(t, "2", rows[0][2])
	assert.Equal(t, 3, m.stats.AirportCount)
}

func TestModel_PathQuery(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m.inputs[pathView].SetValue("aaa CCC")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.messageErr, m.message)
	assert.Contains(t, m.result, "Bravo (BBB)")
	assert.Contains(t, m.result, "Total distance: 800.00 km")
}

func TestModel_PathQueryErrors(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.messageErr)
	assert.Equal(t, "Input cannot be empty", m.message)

	m.inputs[pathView].SetValue("AAA ZZZ")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.messageErr)
	assert.Contains(t, m.message, "ZZZ")
}

func TestModel_AirportAndReach(t *testing.T) {
	m := newTestModel(t)
	m.switchTo(airportView)
	m.inputs[airportView].SetValue("bbb")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.messageErr, m.message)
	assert.Contains(t, m.result, "Bravo (BBB)")

	m.switchTo(reachView)
	m.inputs[reachView].SetValue("AAA")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.messageErr, m.message)
	assert.Contains(t, m.message, "2 airports reachable from AAA within 2 hops")
}

func TestModel_QuitAndView(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, "Initializing...", m.View())

	next, cmd := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Nil(t, cmd)
	assert.Contains(t, next.View(), "Dashboard")

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
