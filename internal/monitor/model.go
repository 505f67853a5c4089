package monitor

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pingdeck/pingdeck/internal/config"
)

// RedrawInterval is how often the dashboard drains updates and repaints.
// Decoupled from the probe cadence: redraws happen on this timer whether
// or not new snapshots arrived.
const RedrawInterval = 500 * time.Millisecond

// StaleAfter is how old a target's last update may be before the row
// surfaces its age.
const StaleAfter = 5 * time.Second

// Model is the Bubble Tea model for the latency dashboard.
type Model struct {
	agg     *Aggregator
	updates <-chan Status

	graphWidth int
	window     time.Duration
	interval   time.Duration

	width  int
	height int

	lastUpdate time.Time
	probed     bool // any snapshot received yet

	spin     spinner.Model
	quitting bool
	showHelp bool
}

// tickMsg signals a periodic drain-and-redraw.
type tickMsg time.Time

// NewModel creates a dashboard model reading from updates, seeded with
// one "not yet probed" row per target.
func NewModel(cfg *config.Config, updates <-chan Status) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = TierStyle(TierGood)

	return Model{
		agg:        NewAggregator(cfg.Targets, nil),
		updates:    updates,
		graphWidth: cfg.GraphWidth,
		window:     cfg.Window,
		interval:   cfg.Interval,
		spin:       sp,
	}
}

// Init starts the redraw timer and the awaiting-first-probe spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tickCmd(), m.spin.Tick)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		m.drain()
		return m, m.tickCmd()

	case spinner.TickMsg:
		if m.probed {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderDashboard()
}

// drain pulls every pending snapshot into the aggregator and records the
// newest update time.
func (m *Model) drain() {
	if m.agg.Drain(m.updates) == 0 {
		return
	}
	m.probed = true
	for _, st := range m.agg.Statuses() {
		if st.UpdatedAt.After(m.lastUpdate) {
			m.lastUpdate = st.UpdatedAt
		}
	}
}

// tickCmd returns a command that sends a tick after the redraw interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(RedrawInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Statuses returns the current per-target records in display order.
func (m Model) Statuses() []Status {
	return m.agg.Statuses()
}

// HealthyCount returns how many targets currently classify below
// TierTimeout.
func (m Model) HealthyCount() int {
	count := 0
	for _, st := range m.agg.Statuses() {
		if st.Tier != TierTimeout {
			count++
		}
	}
	return count
}

// SecondsSinceUpdate returns how many seconds have passed since the
// newest snapshot, or 0 before the first one.
func (m Model) SecondsSinceUpdate() int {
	if m.lastUpdate.IsZero() {
		return 0
	}
	return int(time.Since(m.lastUpdate).Seconds())
}
