package checklist

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "switchsprint/internal/modules/session/dto"
	"switchsprint/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type SessionPort interface {
	Today(ctx context.Context) (sessiondto.SessionOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type SessionLoadedMsg struct {
	Session sessiondto.SessionOutput
	Err     error
}

// ─── list item ───────────────────────────────────────────────────────────────

type checklistItem struct {
	item    sessiondto.ChecklistItemOutput
	running bool
}

func (i checklistItem) Title() string {
	mark := "[ ]"
	if i.item.Completed {
		mark = "[x]"
	}
	title := mark + " " + i.item.Label
	if i.running {
		title += "  ●"
	}
	return title
}

func (i checklistItem) Description() string {
	return fmt.Sprintf("%s / %dm  %s", Clock(i.item.TimeSpentSeconds), i.item.DefaultTimeMinutes, Bar(i.item.Progress, 12))
}

func (i checklistItem) FilterValue() string { return i.item.Label }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    SessionPort
	list    list.Model
	session sessiondto.SessionOutput
	running string
	detail  viewport.Model
	spinner spinner.Model
	loading bool
	width   int
	height  int
}

func New(port SessionPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Today"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		list:    l,
		detail:  vp,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Reload(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case SessionLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Today: " + msg.Err.Error()
			return m, nil
		}
		m.session = msg.Session
		cmds = append(cmds, m.list.SetItems(m.items()))
		m.detail.SetContent(m.renderDetail())

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if !m.loading {
		var lCmd tea.Cmd
		prevIdx := m.list.Index()
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prevIdx {
			m.detail.SetContent(m.renderDetail())
		}

		var vCmd tea.Cmd
		m.detail, vCmd = m.detail.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading today…")
	}

	listW := m.width * 5 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.detail.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// Reload fetches today's session.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		session, err := m.port.Today(context.Background())
		return SessionLoadedMsg{Session: session, Err: err}
	}
}

// SetRunning marks the item the timer is crediting; an empty id clears it.
func (m *Model) SetRunning(itemID string) tea.Cmd {
	m.running = itemID
	if m.loading {
		return nil
	}
	cmd := m.list.SetItems(m.items())
	m.detail.SetContent(m.renderDetail())
	return cmd
}

// ApplyTick updates one item in place without a reload.
func (m *Model) ApplyTick(itemID string, spentSeconds int, progress float64) tea.Cmd {
	for i := range m.session.Checklist {
		if m.session.Checklist[i].ID == itemID {
			delta := spentSeconds - m.session.Checklist[i].TimeSpentSeconds
			m.session.Checklist[i].TimeSpentSeconds = spentSeconds
			m.session.Checklist[i].Progress = progress
			m.session.TotalTimeSpentSeconds += delta
		}
	}
	return m.SetRunning(itemID)
}

func (m Model) Session() sessiondto.SessionOutput {
	return m.session
}

// SelectedItem returns the highlighted checklist item, if any.
func (m Model) SelectedItem() (sessiondto.ChecklistItemOutput, bool) {
	if item, ok := m.list.SelectedItem().(checklistItem); ok {
		return item.item, true
	}
	return sessiondto.ChecklistItemOutput{}, false
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 5 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.detail.Width = detailW - 4
	m.detail.Height = m.height - 4
}

func (m Model) items() []list.Item {
	items := make([]list.Item, len(m.session.Checklist))
	for i, it := range m.session.Checklist {
		items[i] = checklistItem{item: it, running: it.ID == m.running}
	}
	return items
}

func (m Model) renderDetail() string {
	s := m.session
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Session "+s.Date) + "\n\n")
	sb.WriteString(theme.Muted.Render("state:      ") + stateLabel(s.State) + "\n")
	if s.SessionStart != nil {
		sb.WriteString(theme.Muted.Render("started:    ") + s.SessionStart.Local().Format("15:04") + "\n")
	}
	if s.SessionEnd != nil {
		sb.WriteString(theme.Muted.Render("ended:      ") + s.SessionEnd.Local().Format("15:04") + "\n")
	}
	sb.WriteString(theme.Muted.Render("tracked:    ") + Clock(s.TotalTimeSpentSeconds) + "\n")
	sb.WriteString(fmt.Sprintf("%s%d / %d\n", theme.Muted.Render("done:       "), s.CompletedItems, len(s.Checklist)))
	sb.WriteString(fmt.Sprintf("%s%d\n", theme.Muted.Render("applied:    "), s.ApplicationsCount))
	sb.WriteString(fmt.Sprintf("%s%d\n", theme.Muted.Render("recruiters: "), s.RecruiterMessagesCount))
	if s.Notes != "" {
		sb.WriteString("\n" + s.Notes + "\n")
	}

	if item, ok := m.SelectedItem(); ok {
		sb.WriteString("\n" + theme.Title.Render(item.Label) + "\n")
		sb.WriteString(Bar(item.Progress, 24) + fmt.Sprintf(" %.0f%%\n", item.Progress*100))
		if item.ID == m.running {
			sb.WriteString(theme.Hot.Render("● timer running") + "\n")
		}
		if item.Notes != "" {
			sb.WriteString(theme.Muted.Render(item.Notes) + "\n")
		}
	}
	sb.WriteString("\n" + theme.Muted.Render("enter: timer  x: done  s: start  e: end"))
	return sb.String()
}

func stateLabel(state string) string {
	switch state {
	case "active":
		return theme.Hot.Render("active")
	case "ended":
		return "ended"
	case "pending":
		return "not started"
	}
	return theme.Muted.Render("no session")
}

// Clock renders seconds as mm:ss, or h:mm:ss past the hour.
func Clock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h, m, s := seconds/3600, seconds%3600/60, seconds%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// Bar renders progress in [0,1] as a fixed-width gauge.
func Bar(progress float64, width int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled := int(progress * float64(width))
	return theme.Progress.Render(strings.Repeat("█", filled)) + theme.Muted.Render(strings.Repeat("░", width-filled))
}
