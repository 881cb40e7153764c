package insights

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	analyticsdto "switchsprint/internal/modules/analytics/dto"
	backupdto "switchsprint/internal/modules/backup/dto"
	"switchsprint/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

// Port is the minimal interface this view needs from the analytics use-case.
type Port interface {
	Summary(ctx context.Context) (analyticsdto.SummaryOutput, error)
	Funnel(ctx context.Context) ([]analyticsdto.FunnelStageOutput, error)
	Recent(ctx context.Context, limit int) ([]analyticsdto.ActivityOutput, error)
	WrapUp(ctx context.Context) (analyticsdto.WrapUpOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// LoadedMsg carries one refresh of every insight panel.
type LoadedMsg struct {
	Summary analyticsdto.SummaryOutput
	Funnel  []analyticsdto.FunnelStageOutput
	Recent  []analyticsdto.ActivityOutput
	WrapUp  analyticsdto.WrapUpOutput
	Err     error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     Port
	viewport viewport.Model
	spinner  spinner.Model
	data     LoadedMsg
	backup   backupdto.StatusOutput
	renderer *glamour.TermRenderer
	loading  bool
	width    int
	height   int
}

func New(port Port) Model {
	vp := viewport.New(0, 0)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	r, _ := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(0),
	)

	return Model{
		port:     port,
		viewport: vp,
		spinner:  sp,
		renderer: r,
		loading:  true,
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
		m.viewport.SetContent(m.renderContent())

	case LoadedMsg:
		m.loading = false
		m.data = msg
		m.viewport.SetContent(m.renderContent())

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	var vCmd tea.Cmd
	m.viewport, vCmd = m.viewport.Update(msg)
	cmds = append(cmds, vCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Crunching numbers…")
	}
	footer := theme.Muted.Render(fmt.Sprintf("%.0f%%  r: refresh", m.viewport.ScrollPercent()*100))
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

// Reload refreshes every panel in one command.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		var out LoadedMsg
		if out.Summary, out.Err = m.port.Summary(ctx); out.Err != nil {
			return out
		}
		if out.Funnel, out.Err = m.port.Funnel(ctx); out.Err != nil {
			return out
		}
		if out.Recent, out.Err = m.port.Recent(ctx, 5); out.Err != nil {
			return out
		}
		out.WrapUp, out.Err = m.port.WrapUp(ctx)
		return out
	}
}

// SetBackup shows the latest backup status.
func (m *Model) SetBackup(status backupdto.StatusOutput) {
	m.backup = status
	if !m.loading {
		m.viewport.SetContent(m.renderContent())
	}
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	m.viewport.Width = m.width
	m.viewport.Height = m.height - 1
	if m.viewport.Height < 1 {
		m.viewport.Height = 1
	}
	if r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(m.width),
	); err == nil {
		m.renderer = r
	}
}

func (m Model) renderContent() string {
	if m.data.Err != nil {
		return theme.Bad.Render("Error: " + m.data.Err.Error())
	}
	md := Markdown(m.data, m.backup)
	if m.renderer != nil {
		if rendered, err := m.renderer.Render(md); err == nil {
			return rendered
		}
	}
	return md
}

// Markdown lays out the insight panels as a markdown document.
func Markdown(data LoadedMsg, backup backupdto.StatusOutput) string {
	var sb strings.Builder
	s := data.Summary
	w := data.WrapUp

	fmt.Fprintf(&sb, "# Today %s\n\n", w.Date)
	fmt.Fprintf(&sb, "- Focus time: **%d min**\n", w.Today.Minutes)
	fmt.Fprintf(&sb, "- Applications: **%d**\n", w.Today.Applications)
	fmt.Fprintf(&sb, "- Checklist: %d / %d (%d%%)\n", w.TasksCompleted, w.TasksTotal, w.CompletionPercent)
	if len(w.TopicsCovered) > 0 {
		days := make([]string, len(w.TopicsCovered))
		for i, d := range w.TopicsCovered {
			days[i] = fmt.Sprintf("%d", d)
		}
		fmt.Fprintf(&sb, "- Study days finished: %s\n", strings.Join(days, ", "))
	}
	fmt.Fprintf(&sb, "\n| | Minutes | Applications |\n|---|---|---|\n")
	fmt.Fprintf(&sb, "| Last 7 days | %d | %d |\n", w.Weekly.Minutes, w.Weekly.Applications)
	fmt.Fprintf(&sb, "| Lifetime | %d | %d |\n\n", w.Lifetime.Minutes, w.Lifetime.Applications)

	sb.WriteString("## Overall\n\n")
	fmt.Fprintf(&sb, "- Sessions: %d (%d useful days)\n", s.TotalSessions, s.UsefulDays)
	fmt.Fprintf(&sb, "- Hours tracked: %d\n", s.TotalHours)
	fmt.Fprintf(&sb, "- Applications: %d\n", s.TotalApplications)
	fmt.Fprintf(&sb, "- Study plan: %d / %d days\n", s.StudyDaysCompleted, s.StudyDaysTotal)
	fmt.Fprintf(&sb, "- Resources checked: %d / %d\n\n", s.ResourcesChecked, s.ResourcesTotal)

	if len(data.Funnel) > 0 {
		sb.WriteString("## Funnel\n\n| Status | Count | Share |\n|---|---|---|\n")
		for _, stage := range data.Funnel {
			fmt.Fprintf(&sb, "| %s | %d | %d%% |\n", stage.Status, stage.Count, stage.Percent)
		}
		sb.WriteString("\n")
	}

	if len(data.Recent) > 0 {
		sb.WriteString("## Recent sessions\n\n")
		for _, a := range data.Recent {
			fmt.Fprintf(&sb, "- %s: %d min, %d items done\n", a.Date, a.Minutes, a.ItemsDone)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Backup\n\n")
	status := backup.Status
	if status == "" {
		status = "disconnected"
	}
	fmt.Fprintf(&sb, "- Status: %s\n", status)
	if backup.Dir != "" {
		fmt.Fprintf(&sb, "- Folder: `%s`\n", backup.Dir)
	}
	if backup.LastSaved != nil {
		fmt.Fprintf(&sb, "- Last saved: %s\n", backup.LastSaved.Local().Format("2006-01-02 15:04"))
	}
	if backup.LastError != "" {
		fmt.Fprintf(&sb, "- Error: %s\n", backup.LastError)
	}
	return sb.String()
}
