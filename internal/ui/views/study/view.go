package study

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	studydto "switchsprint/internal/modules/study/dto"
	"switchsprint/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type StudyPort interface {
	Plan(ctx context.Context) (studydto.PlanOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type PlanLoadedMsg struct {
	Plan studydto.PlanOutput
	Err  error
}

// ─── list item ───────────────────────────────────────────────────────────────

type dayItem struct {
	day     studydto.DayOutput
	focused bool
}

func (i dayItem) Title() string {
	mark := "[ ]"
	switch {
	case i.day.Completed:
		mark = "[x]"
	case i.day.Locked:
		mark = " ⊘ "
	}
	title := fmt.Sprintf("%s Day %d", mark, i.day.DayNumber)
	if i.focused {
		title += "  ◆"
	}
	return title
}

func (i dayItem) Description() string {
	if i.day.Date != "" {
		return i.day.Date + "  " + i.day.TopicSQL
	}
	return i.day.TopicSQL
}

func (i dayItem) FilterValue() string {
	return fmt.Sprintf("day %d %s %s %s", i.day.DayNumber, i.day.TopicSQL, i.day.TopicPython, i.day.TopicSpark)
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    StudyPort
	list    list.Model
	detail  viewport.Model
	spinner spinner.Model
	plan    studydto.PlanOutput
	loading bool
	width   int
	height  int
}

func New(port StudyPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Green).BorderForeground(theme.Green)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Green)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Study plan"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Green)

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

	case PlanLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Study plan: " + msg.Err.Error()
			return m, nil
		}
		m.plan = msg.Plan
		m.list.Title = fmt.Sprintf("Study plan  %d/%d", msg.Plan.Completed, len(msg.Plan.Days))
		items := make([]list.Item, len(msg.Plan.Days))
		for i, d := range msg.Plan.Days {
			items[i] = dayItem{day: d, focused: d.DayNumber == msg.Plan.FocusedDay}
		}
		cmds = append(cmds, m.list.SetItems(items))
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
			m.spinner.View()+" Loading study plan…")
	}

	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().Width(listW).Height(m.height).Render(m.list.View())
	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.detail.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// Reload fetches the plan.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		plan, err := m.port.Plan(context.Background())
		return PlanLoadedMsg{Plan: plan, Err: err}
	}
}

// SelectedDay returns the highlighted day, if any.
func (m Model) SelectedDay() (studydto.DayOutput, bool) {
	if item, ok := m.list.SelectedItem().(dayItem); ok {
		return item.day, true
	}
	return studydto.DayOutput{}, false
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.detail.Width = detailW - 4
	m.detail.Height = m.height - 4
}

func (m Model) renderDetail() string {
	var sb strings.Builder
	p := m.plan
	start := "not started"
	if p.StartDate != "" {
		start = p.StartDate
	}
	sb.WriteString(theme.Muted.Render("start:   ") + start + "\n")
	if p.CurrentDay > 0 {
		sb.WriteString(fmt.Sprintf("%s%d\n", theme.Muted.Render("today:   day "), p.CurrentDay))
	}
	sb.WriteString(fmt.Sprintf("%s%d\n\n", theme.Muted.Render("focus:   day "), p.FocusedDay))

	d, ok := m.SelectedDay()
	if !ok {
		sb.WriteString(theme.Muted.Render("Select a day to see its topics"))
		return sb.String()
	}
	sb.WriteString(theme.Title.Render(fmt.Sprintf("Day %d", d.DayNumber)) + "\n\n")
	if d.Locked {
		sb.WriteString(theme.Locked.Render("locked until the previous day is done") + "\n\n")
	}
	sb.WriteString(theme.Muted.Render("SQL:     ") + d.TopicSQL + "\n")
	sb.WriteString(theme.Muted.Render("Python:  ") + d.TopicPython + "\n")
	sb.WriteString(theme.Muted.Render("Spark:   ") + d.TopicSpark + "\n")
	sb.WriteString(theme.Muted.Render("Task:    ") + d.PracticeTask + "\n")
	if len(d.CustomTopics) > 0 {
		sb.WriteString(theme.Muted.Render("Custom:  ") + strings.Join(d.CustomTopics, ", ") + "\n")
	}
	if d.Completed {
		sb.WriteString("\n" + theme.Good.Render("completed "+d.CompletedDate) + "\n")
	}
	if d.Notes != "" {
		sb.WriteString("\n" + d.Notes + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("c: toggle done  m: focus  n: next day"))
	return sb.String()
}
