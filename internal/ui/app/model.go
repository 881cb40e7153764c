package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	backupdto "switchsprint/internal/modules/backup/dto"
	jobsdto "switchsprint/internal/modules/jobsearch/dto"
	sessiondto "switchsprint/internal/modules/session/dto"
	studydto "switchsprint/internal/modules/study/dto"
	timerdto "switchsprint/internal/modules/timer/dto"
	"switchsprint/internal/ui/components"
	"switchsprint/internal/ui/theme"
	checklistview "switchsprint/internal/ui/views/checklist"
	insightsview "switchsprint/internal/ui/views/insights"
	jobsview "switchsprint/internal/ui/views/jobs"
	studyview "switchsprint/internal/ui/views/study"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type sessionPort interface {
	Today(ctx context.Context) (sessiondto.SessionOutput, error)
	Start(ctx context.Context) (sessiondto.SessionOutput, error)
	End(ctx context.Context) (sessiondto.SessionOutput, error)
	Wrap(ctx context.Context, input sessiondto.SessionDetailsInput) (sessiondto.SessionOutput, error)
	UpdateItem(ctx context.Context, input sessiondto.ChecklistPatchInput) (sessiondto.ChecklistUpdateOutput, error)
	AddItem(ctx context.Context, label string, minutes int) (sessiondto.ChecklistItemOutput, error)
	RemoveItem(ctx context.Context, itemID string) error
}

type timerPort interface {
	Active(ctx context.Context) (timerdto.StatusOutput, error)
	Toggle(ctx context.Context, itemID string) (timerdto.StatusOutput, error)
	Stop(ctx context.Context) error
}

type studyPort interface {
	Plan(ctx context.Context) (studydto.PlanOutput, error)
	Start(ctx context.Context, restart bool) (string, error)
	Complete(ctx context.Context, dayNumber int, completed bool) (studydto.DayOutput, error)
	Focus(ctx context.Context, dayNumber int) (int, error)
	Next(ctx context.Context) (int, error)
}

type jobsPort interface {
	jobsview.JobsPort
	AddApplication(ctx context.Context, input jobsdto.ApplicationInput) (jobsdto.ApplicationOutput, error)
	MoveApplication(ctx context.Context, id, status string) (jobsdto.ApplicationOutput, error)
}

type analyticsPort interface {
	insightsview.Port
	Export(ctx context.Context, dir string) (string, error)
}

type backupPort interface {
	Status(ctx context.Context) (backupdto.StatusOutput, error)
	Verify(ctx context.Context) (backupdto.StatusOutput, error)
	SaveNow(ctx context.Context) error
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabToday tabID = iota
	tabStudy
	tabJobs
	tabInsights
	tabCount
)

var tabLabels = [tabCount]string{
	"Today", "Study", "Applications", "Insights",
}

// ─── async messages ───────────────────────────────────────────────────────────

// TimerEventMsg forwards checklist timer events into the program.
type TimerEventMsg struct {
	Event timerdto.EventOutput
}

// BackupStatusMsg forwards backup status changes into the program.
type BackupStatusMsg struct {
	Status backupdto.StatusOutput
}

type timerToggledMsg struct {
	status timerdto.StatusOutput
	label  string
	err    error
}

type actionMsg struct {
	done string
	err  error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab      key.Binding
	Help     key.Binding
	Palette  key.Binding
	Quit     key.Binding
	Timer    key.Binding
	Done     key.Binding
	Start    key.Binding
	End      key.Binding
	Focus    key.Binding
	NextDay  key.Binding
	Backup   key.Binding
	Refresh  key.Binding
	Subtabs  key.Binding
	FollowUp key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette:  key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Timer:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start/stop timer")),
		Done:     key.NewBinding(key.WithKeys("x", "c"), key.WithHelp("x/c", "toggle done")),
		Start:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start session")),
		End:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "end session")),
		Focus:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "focus study day")),
		NextDay:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next study day")),
		Backup:   key.NewBinding(key.WithKeys("B"), key.WithHelp("B", "reconnect backup")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Subtabs:  key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "application views")),
		FollowUp: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "mark followed up")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Timer, k.Done, k.Start, k.End},
		{k.Focus, k.NextDay, k.Subtabs, k.FollowUp},
		{k.Tab, k.Backup, k.Refresh},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, timer and backup
// state, the global help overlay, and the command palette. All business logic
// is delegated to port interfaces; all rendering is delegated to sub-views.
type Model struct {
	dataDir string

	// ports used at this orchestration level only
	session   sessionPort
	timer     timerPort
	study     studyPort
	jobs      jobsPort
	analytics analyticsPort
	backup    backupPort

	// sub-views (one per tab)
	todayView    checklistview.Model
	studyView    studyview.Model
	jobsView     jobsview.Model
	insightsView insightsview.Model

	// global UI state
	activeTab    tabID
	keys         keyMap
	help         help.Model
	showHelp     bool
	palette      components.Palette
	running      timerdto.StatusOutput
	runningLabel string
	runningSecs  int
	backupStatus backupdto.StatusOutput
	status       string
	width        int
	height       int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(
	dataDir string,
	session sessionPort,
	timer timerPort,
	study studyPort,
	jobs jobsPort,
	analytics analyticsPort,
	backup backupPort,
) Model {
	return Model{
		dataDir:      dataDir,
		session:      session,
		timer:        timer,
		study:        study,
		jobs:         jobs,
		analytics:    analytics,
		backup:       backup,
		todayView:    checklistview.New(session),
		studyView:    studyview.New(study),
		jobsView:     jobsview.New(jobs),
		insightsView: insightsview.New(analytics),
		activeTab:    tabToday,
		keys:         defaultKeys(),
		help:         help.New(),
		palette:      components.NewPalette(),
		status:       "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.todayView.Init(),
		m.studyView.Init(),
		m.jobsView.Init(),
		m.insightsView.Init(),
		m.loadTimerCmd(),
		m.loadBackupCmd(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all key input while open; timer and load
	// messages still reach the views.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		if _, ok := msg.(tea.KeyMsg); ok {
			return m, cmd
		}
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case TimerEventMsg:
		return m, m.applyTimerEvent(msg.Event)

	case timerToggledMsg:
		if msg.err != nil {
			m.status = "timer: " + msg.err.Error()
			return m, nil
		}
		switch {
		case msg.status.Running:
			m.running = msg.status
			m.runningLabel = msg.label
			m.runningSecs = m.itemSeconds(msg.status.ItemID)
			m.status = "timing " + msg.label
		case msg.label != "":
			m.running = timerdto.StatusOutput{}
			m.runningLabel = ""
			m.status = "timer stopped"
		}
		return m, m.todayView.SetRunning(m.running.ItemID)

	case BackupStatusMsg:
		m.backupStatus = msg.Status
		m.insightsView.SetBackup(msg.Status)
		return m, nil

	case actionMsg:
		if msg.err != nil {
			m.status = msg.done + " failed: " + msg.err.Error()
		} else {
			m.status = msg.done
		}
		return m, m.reloadAll()

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case checklistview.SessionLoadedMsg:
		var cmd tea.Cmd
		m.todayView, cmd = m.todayView.Update(msg)
		return m, cmd

	case studyview.PlanLoadedMsg:
		var cmd tea.Cmd
		m.studyView, cmd = m.studyView.Update(msg)
		return m, cmd

	case jobsview.BoardMsg, jobsview.FollowUpsMsg, jobsview.ContactsMsg, jobsview.ResourcesMsg, jobsview.ActionMsg:
		var cmd tea.Cmd
		m.jobsView, cmd = m.jobsView.Update(msg)
		return m, cmd

	case insightsview.LoadedMsg:
		var cmd tea.Cmd
		m.insightsView, cmd = m.insightsView.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to sub-view when its search filter is active.
		if m.subViewFiltering() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, m.reloadActive()
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, m.reloadActive()
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case ":":
			return m, m.palette.Open()
		case "B":
			return m, m.verifyBackupCmd()
		case "r":
			return m, m.reloadActive()
		}

		if cmd, handled := m.handleTabKey(msg.String()); handled {
			return m, cmd
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabToday:
		m.todayView, tabCmd = m.todayView.Update(msg)
	case tabStudy:
		m.studyView, tabCmd = m.studyView.Update(msg)
	case tabJobs:
		m.jobsView, tabCmd = m.jobsView.Update(msg)
	case tabInsights:
		m.insightsView, tabCmd = m.insightsView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// handleTabKey runs the action keys of the active tab.
func (m Model) handleTabKey(k string) (tea.Cmd, bool) {
	switch m.activeTab {
	case tabToday:
		switch k {
		case "enter":
			if item, ok := m.todayView.SelectedItem(); ok {
				return m.toggleTimerCmd(item), true
			}
			return nil, true
		case "x", "c":
			if item, ok := m.todayView.SelectedItem(); ok {
				done := !item.Completed
				return m.actionCmd("updated "+item.Label, func(ctx context.Context) error {
					_, err := m.session.UpdateItem(ctx, sessiondto.ChecklistPatchInput{ItemID: item.ID, Completed: &done})
					return err
				}), true
			}
			return nil, true
		case "s":
			return m.actionCmd("session started", func(ctx context.Context) error {
				_, err := m.session.Start(ctx)
				return err
			}), true
		case "e":
			return m.actionCmd("session ended", func(ctx context.Context) error {
				_, err := m.session.End(ctx)
				return err
			}), true
		}
	case tabStudy:
		day, ok := m.studyView.SelectedDay()
		switch k {
		case "c", "x":
			if !ok {
				return nil, true
			}
			return m.actionCmd(fmt.Sprintf("day %d updated", day.DayNumber), func(ctx context.Context) error {
				_, err := m.study.Complete(ctx, day.DayNumber, !day.Completed)
				return err
			}), true
		case "m":
			if !ok {
				return nil, true
			}
			return m.actionCmd(fmt.Sprintf("focus on day %d", day.DayNumber), func(ctx context.Context) error {
				_, err := m.study.Focus(ctx, day.DayNumber)
				return err
			}), true
		case "n":
			return m.actionCmd("moved to next day", func(ctx context.Context) error {
				_, err := m.study.Next(ctx)
				return err
			}), true
		}
	}
	return nil, false
}

func (m *Model) applyTimerEvent(event timerdto.EventOutput) tea.Cmd {
	switch event.Kind {
	case "tick":
		m.running = timerdto.StatusOutput{ItemID: event.ItemID, Running: true}
		m.runningSecs = event.TimeSpentSeconds
		return m.todayView.ApplyTick(event.ItemID, event.TimeSpentSeconds, event.Progress)
	case "stopped":
		if m.running.ItemID != event.ItemID {
			return nil
		}
		m.running = timerdto.StatusOutput{}
		m.runningLabel = ""
		if event.Reason != "switched" && event.Reason != "toggled" {
			m.status = "timer stopped: " + event.Reason
		} else {
			m.status = "timer stopped"
		}
		return tea.Batch(m.todayView.SetRunning(""), m.todayView.Reload())
	}
	return nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabToday:
		return m.todayView.View()
	case tabStudy:
		return m.studyView.View()
	case tabJobs:
		return m.jobsView.View()
	case tabInsights:
		return m.insightsView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "switchsprint  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.running.Running {
		left = theme.Hot.Render("● "+m.runningLabel+" "+checklistview.Clock(m.runningSecs)) + "  " + left
	}
	backup := m.backupStatus.Status
	if backup == "" {
		backup = "disconnected"
	}
	if m.backupStatus.Pending {
		backup += "*"
	}
	right := theme.BackupStyle(m.backupStatus.Status).Render("backup: "+backup) +
		theme.Muted.Render("  ?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)
	rest := func(n int) string {
		if len(parts) <= n {
			return ""
		}
		return strings.Join(parts[n:], " ")
	}

	switch parts[0] {
	case "session:start":
		return m, m.actionCmd("session started", func(ctx context.Context) error {
			_, err := m.session.Start(ctx)
			return err
		})

	case "session:end":
		return m, m.actionCmd("session ended", func(ctx context.Context) error {
			_, err := m.session.End(ctx)
			return err
		})

	case "session:wrap":
		if len(parts) < 3 {
			m.status = "usage: session:wrap <applications> <recruiters> [notes]"
			return m, nil
		}
		apps, err1 := strconv.Atoi(parts[1])
		recruiters, err2 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil {
			m.status = "counts must be numbers"
			return m, nil
		}
		input := sessiondto.SessionDetailsInput{ApplicationsCount: &apps, RecruiterMessagesCount: &recruiters}
		if notes := rest(3); notes != "" {
			input.Notes = &notes
		}
		return m, m.actionCmd("wrap-up saved", func(ctx context.Context) error {
			_, err := m.session.Wrap(ctx, input)
			return err
		})

	case "item:add":
		if len(parts) < 3 {
			m.status = "usage: item:add <minutes> <label>"
			return m, nil
		}
		minutes, err := strconv.Atoi(parts[1])
		if err != nil {
			m.status = "invalid minutes"
			return m, nil
		}
		label := rest(2)
		return m, m.actionCmd("added "+label, func(ctx context.Context) error {
			_, err := m.session.AddItem(ctx, label, minutes)
			return err
		})

	case "item:note":
		item, ok := m.todayView.SelectedItem()
		if !ok {
			m.status = "no checklist item selected"
			return m, nil
		}
		note := rest(1)
		return m, m.actionCmd("note saved", func(ctx context.Context) error {
			_, err := m.session.UpdateItem(ctx, sessiondto.ChecklistPatchInput{ItemID: item.ID, Notes: &note})
			return err
		})

	case "item:remove":
		item, ok := m.todayView.SelectedItem()
		if !ok {
			m.status = "no checklist item selected"
			return m, nil
		}
		return m, m.actionCmd("removed "+item.Label, func(ctx context.Context) error {
			return m.session.RemoveItem(ctx, item.ID)
		})

	case "timer:stop":
		return m, m.actionCmd("timer stopped", func(ctx context.Context) error {
			return m.timer.Stop(ctx)
		})

	case "study:start":
		return m, m.actionCmd("study plan started", func(ctx context.Context) error {
			_, err := m.study.Start(ctx, false)
			return err
		})

	case "study:complete", "study:focus":
		if len(parts) < 2 {
			m.status = "usage: " + parts[0] + " <day>"
			return m, nil
		}
		day, err := strconv.Atoi(parts[1])
		if err != nil {
			m.status = "invalid day"
			return m, nil
		}
		if parts[0] == "study:focus" {
			return m, m.actionCmd(fmt.Sprintf("focus on day %d", day), func(ctx context.Context) error {
				_, err := m.study.Focus(ctx, day)
				return err
			})
		}
		return m, m.actionCmd(fmt.Sprintf("day %d completed", day), func(ctx context.Context) error {
			_, err := m.study.Complete(ctx, day, true)
			return err
		})

	case "study:next":
		return m, m.actionCmd("moved to next day", func(ctx context.Context) error {
			_, err := m.study.Next(ctx)
			return err
		})

	case "app:add":
		if len(parts) < 3 {
			m.status = "usage: app:add <company> <role>"
			return m, nil
		}
		input := jobsdto.ApplicationInput{Company: parts[1], RoleTitle: rest(2)}
		return m, m.actionCmd("applied to "+parts[1], func(ctx context.Context) error {
			_, err := m.jobs.AddApplication(ctx, input)
			return err
		})

	case "app:move":
		id, ok := m.jobsView.SelectedApplicationID()
		if !ok || len(parts) < 2 {
			m.status = "usage: app:move <status> (select an application first)"
			return m, nil
		}
		status := rest(1)
		return m, m.actionCmd("moved to "+status, func(ctx context.Context) error {
			_, err := m.jobs.MoveApplication(ctx, id, status)
			return err
		})

	case "backup:verify":
		return m, m.verifyBackupCmd()

	case "backup:flush":
		return m, func() tea.Msg {
			if err := m.backup.SaveNow(context.Background()); err != nil {
				return actionMsg{done: "backup write", err: err}
			}
			status, err := m.backup.Status(context.Background())
			if err != nil {
				return actionMsg{done: "backup status", err: err}
			}
			return BackupStatusMsg{Status: status}
		}

	case "report:export":
		dir := rest(1)
		if dir == "" {
			dir = m.dataDir
		}
		return m, func() tea.Msg {
			path, err := m.analytics.Export(context.Background(), dir)
			return actionMsg{done: "report written to " + path, err: err}
		}

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewFiltering reports whether the active tab's list filter is open,
// in which case global key bindings must yield to allow free typing.
func (m Model) subViewFiltering() bool {
	switch m.activeTab {
	case tabToday:
		return m.todayView.Filtering()
	case tabStudy:
		return m.studyView.Filtering()
	case tabJobs:
		return m.jobsView.Filtering()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.todayView, _ = m.todayView.Update(sz)
	m.studyView, _ = m.studyView.Update(sz)
	m.jobsView, _ = m.jobsView.Update(sz)
	m.insightsView, _ = m.insightsView.Update(sz)
}

func (m Model) itemSeconds(itemID string) int {
	for _, item := range m.todayView.Session().Checklist {
		if item.ID == itemID {
			return item.TimeSpentSeconds
		}
	}
	return 0
}

func (m Model) reloadActive() tea.Cmd {
	switch m.activeTab {
	case tabStudy:
		return m.studyView.Reload()
	case tabJobs:
		return m.jobsView.Reload()
	case tabInsights:
		return m.insightsView.Reload()
	}
	return m.todayView.Reload()
}

func (m Model) reloadAll() tea.Cmd {
	return tea.Batch(
		m.todayView.Reload(),
		m.studyView.Reload(),
		m.jobsView.Reload(),
		m.insightsView.Reload(),
	)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) actionCmd(done string, fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return actionMsg{done: done, err: fn(context.Background())}
	}
}

func (m Model) loadTimerCmd() tea.Cmd {
	return func() tea.Msg {
		status, err := m.timer.Active(context.Background())
		if err != nil || !status.Running {
			return timerToggledMsg{err: err}
		}
		return timerToggledMsg{status: status, label: status.ItemID}
	}
}

// toggleTimerCmd runs the engine swap off the update loop; the previous
// activation is awaited inside the command.
func (m Model) toggleTimerCmd(item sessiondto.ChecklistItemOutput) tea.Cmd {
	return func() tea.Msg {
		status, err := m.timer.Toggle(context.Background(), item.ID)
		return timerToggledMsg{status: status, label: item.Label, err: err}
	}
}

func (m Model) loadBackupCmd() tea.Cmd {
	return func() tea.Msg {
		status, err := m.backup.Status(context.Background())
		if err != nil {
			return actionMsg{done: "backup status", err: err}
		}
		return BackupStatusMsg{Status: status}
	}
}

func (m Model) verifyBackupCmd() tea.Cmd {
	return func() tea.Msg {
		status, err := m.backup.Verify(context.Background())
		if err != nil {
			return actionMsg{done: "backup reconnect", err: err}
		}
		return BackupStatusMsg{Status: status}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
