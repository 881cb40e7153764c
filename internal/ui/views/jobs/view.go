package jobs

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	jobsdto "switchsprint/internal/modules/jobsearch/dto"
	"switchsprint/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type JobsPort interface {
	Board(ctx context.Context) ([]jobsdto.BoardColumnOutput, error)
	FollowUps(ctx context.Context) ([]jobsdto.ApplicationOutput, error)
	MarkFollowedUp(ctx context.Context, id string) (jobsdto.ApplicationOutput, error)
	Contacts(ctx context.Context, query string) ([]jobsdto.ContactOutput, error)
	Resources(ctx context.Context) ([]jobsdto.CategoryOutput, error)
	CheckLink(ctx context.Context, categoryID, linkID string, checked bool) (jobsdto.LinkOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type BoardMsg struct {
	Columns []jobsdto.BoardColumnOutput
	Err     error
}

type FollowUpsMsg struct {
	Items []jobsdto.ApplicationOutput
	Err   error
}

type ContactsMsg struct {
	Items []jobsdto.ContactOutput
	Err   error
}

type ResourcesMsg struct {
	Categories []jobsdto.CategoryOutput
	Err        error
}

type ActionMsg struct {
	Done string
	Err  error
}

// ─── sub-tab ─────────────────────────────────────────────────────────────────

type subTab int

const (
	subTabBoard subTab = iota
	subTabFollowUps
	subTabContacts
	subTabResources
)

var subTabTitles = []string{"Applications: Board", "Applications: Follow-ups", "Applications: Contacts", "Applications: Resources"}

// ─── list items ──────────────────────────────────────────────────────────────

type applicationItem struct{ a jobsdto.ApplicationOutput }

func (i applicationItem) Title() string { return i.a.Company + " · " + i.a.RoleTitle }
func (i applicationItem) Description() string {
	desc := "[" + i.a.Column + "] " + i.a.Status
	if i.a.NextFollowUpDate != "" && i.a.FollowUpStatus == "Pending" {
		desc += "  follow up " + i.a.NextFollowUpDate
	}
	return desc
}
func (i applicationItem) FilterValue() string { return i.a.Company + " " + i.a.RoleTitle }

type contactItem struct{ c jobsdto.ContactOutput }

func (i contactItem) Title() string       { return i.c.Name + " (" + i.c.Status + ")" }
func (i contactItem) Description() string { return strings.TrimSpace(i.c.Role + " " + i.c.Company) }
func (i contactItem) FilterValue() string { return i.c.Name + " " + i.c.Company }

type linkItem struct {
	categoryID string
	category   string
	l          jobsdto.LinkOutput
}

func (i linkItem) Title() string {
	if i.l.Checked {
		return "[x] " + i.l.Title
	}
	return "[ ] " + i.l.Title
}
func (i linkItem) Description() string { return i.category + "  " + i.l.URL }
func (i linkItem) FilterValue() string { return i.category + " " + i.l.Title }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port       JobsPort
	activeTab  subTab
	list       list.Model
	detail     viewport.Model
	spinner    spinner.Model
	columns    []jobsdto.BoardColumnOutput
	followUps  []jobsdto.ApplicationOutput
	contacts   []jobsdto.ContactOutput
	categories []jobsdto.CategoryOutput
	loading    bool
	statusLine string
	width      int
	height     int
}

func New(port JobsPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Peach).BorderForeground(theme.Peach)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Peach)

	l := list.New(nil, delegate, 0, 0)
	l.Title = subTabTitles[subTabBoard]
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Background(theme.Mantle).Foreground(theme.Text).Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Peach)

	return Model{
		port:    port,
		list:    l,
		detail:  vp,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadBoardCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case BoardMsg:
		m.loading = false
		if msg.Err != nil {
			m.statusLine = "board load failed: " + msg.Err.Error()
			return m, nil
		}
		m.columns = msg.Columns
		if m.activeTab == subTabBoard {
			cmds = append(cmds, m.list.SetItems(boardToItems(m.columns)))
		}
		m.detail.SetContent(m.renderDetail())

	case FollowUpsMsg:
		m.loading = false
		if msg.Err != nil {
			m.statusLine = "follow-ups load failed: " + msg.Err.Error()
			return m, nil
		}
		m.followUps = msg.Items
		if m.activeTab == subTabFollowUps {
			cmds = append(cmds, m.list.SetItems(applicationsToItems(m.followUps)))
		}
		m.detail.SetContent(m.renderDetail())

	case ContactsMsg:
		m.loading = false
		if msg.Err != nil {
			m.statusLine = "contacts load failed: " + msg.Err.Error()
			return m, nil
		}
		m.contacts = msg.Items
		if m.activeTab == subTabContacts {
			cmds = append(cmds, m.list.SetItems(contactsToItems(m.contacts)))
		}
		m.detail.SetContent(m.renderDetail())

	case ResourcesMsg:
		m.loading = false
		if msg.Err != nil {
			m.statusLine = "resources load failed: " + msg.Err.Error()
			return m, nil
		}
		m.categories = msg.Categories
		if m.activeTab == subTabResources {
			cmds = append(cmds, m.list.SetItems(resourcesToItems(m.categories)))
		}
		m.detail.SetContent(m.renderDetail())

	case ActionMsg:
		if msg.Err != nil {
			m.statusLine = "failed: " + msg.Err.Error()
		} else {
			m.statusLine = msg.Done
		}
		cmds = append(cmds, m.Reload())

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if m.Filtering() {
			break
		}
		switch msg.String() {
		case "1", "2", "3", "4":
			m.activeTab = subTab(msg.String()[0] - '1')
			m.list.Title = subTabTitles[m.activeTab]
			m.list.ResetSelected()
			m.loading = true
			cmds = append(cmds, m.Reload(), m.spinner.Tick)
		case "c":
			if item, ok := m.list.SelectedItem().(applicationItem); ok && m.activeTab == subTabFollowUps {
				cmds = append(cmds, m.markFollowedUpCmd(item.a))
			}
		case "x":
			if item, ok := m.list.SelectedItem().(linkItem); ok {
				cmds = append(cmds, m.checkLinkCmd(item))
			}
		}
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

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// SelectedApplicationID returns the highlighted application on the board or follow-up list.
func (m Model) SelectedApplicationID() (string, bool) {
	if item, ok := m.list.SelectedItem().(applicationItem); ok {
		return item.a.ID, true
	}
	return "", false
}

// Reload refreshes the active sub-tab.
func (m Model) Reload() tea.Cmd {
	switch m.activeTab {
	case subTabFollowUps:
		return m.loadFollowUpsCmd()
	case subTabContacts:
		return m.loadContactsCmd()
	case subTabResources:
		return m.loadResourcesCmd()
	}
	return m.loadBoardCmd()
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading applications…")
	}

	tabs := m.renderSubTabs()
	tabH := lipgloss.Height(tabs)
	bodyH := m.height - tabH
	if bodyH < 1 {
		bodyH = 1
	}

	listW := m.width * 5 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().Width(listW).Height(bodyH).Render(m.list.View())
	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(bodyH - 2).
		Render(m.detail.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
	return lipgloss.JoinVertical(lipgloss.Left, tabs, body)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 5 / 10
	detailW := m.width - listW
	// sub-tab bar ≈ 1 line; border top+bottom = 2; leave 1 for status
	contentH := m.height - 4
	if contentH < 1 {
		contentH = 1
	}
	m.list.SetSize(listW, contentH)
	m.detail.Width = detailW - 4
	m.detail.Height = contentH - 2
}

func (m Model) renderSubTabs() string {
	labels := []string{"1:Board", "2:Follow-ups", "3:Contacts", "4:Resources"}
	var parts []string
	for i, label := range labels {
		if subTab(i) == m.activeTab {
			parts = append(parts, theme.Hot.Render(" "+label+" "))
		} else {
			parts = append(parts, theme.Muted.Render(" "+label+" "))
		}
	}
	hint := theme.Muted.Render("  c:followed up  x:check link")
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...) + hint + "\n"
}

func (m Model) renderDetail() string {
	var sb strings.Builder
	switch item := m.list.SelectedItem().(type) {
	case applicationItem:
		a := item.a
		sb.WriteString(theme.Title.Render(a.Company) + "\n")
		sb.WriteString(a.RoleTitle + "\n\n")
		row := func(label, value string) {
			if value != "" {
				sb.WriteString(theme.Muted.Render(fmt.Sprintf("%-11s", label)) + value + "\n")
			}
		}
		row("status:", a.Status)
		row("column:", a.Column)
		row("applied:", a.DateApplied)
		row("last:", a.LastActionDate)
		row("follow up:", strings.TrimSpace(a.NextFollowUpDate+" "+a.FollowUpStatus))
		row("source:", a.Source)
		row("location:", a.Location)
		row("link:", a.JobLink)
		row("recruiter:", strings.TrimSpace(a.RecruiterName+" "+a.RecruiterContact))
		row("salary:", a.SalaryExpected)
		row("offered:", a.SalaryOffered)
		sb.WriteString(theme.Muted.Render("id:        ") + a.ID + "\n")
		if a.Notes != "" {
			sb.WriteString("\n" + a.Notes + "\n")
		}
	case contactItem:
		c := item.c
		sb.WriteString(theme.Title.Render(c.Name) + "\n\n")
		sb.WriteString(theme.Muted.Render("company: ") + c.Company + "\n")
		sb.WriteString(theme.Muted.Render("role:    ") + c.Role + "\n")
		sb.WriteString(theme.Muted.Render("status:  ") + c.Status + "\n")
		sb.WriteString(theme.Muted.Render("last:    ") + c.LastContactDate + "\n")
		if c.Email != "" {
			sb.WriteString(theme.Muted.Render("email:   ") + c.Email + "\n")
		}
		if c.Link != "" {
			sb.WriteString(theme.Muted.Render("link:    ") + c.Link + "\n")
		}
		if c.Notes != "" {
			sb.WriteString("\n" + c.Notes + "\n")
		}
	case linkItem:
		sb.WriteString(theme.Title.Render(item.l.Title) + "\n\n")
		sb.WriteString(theme.Muted.Render("category: ") + item.category + "\n")
		sb.WriteString(theme.Muted.Render("url:      ") + item.l.URL + "\n")
	default:
		sb.WriteString(theme.Title.Render("Pipeline") + "\n\n")
		for _, col := range m.columns {
			sb.WriteString(fmt.Sprintf("%-10s %d\n", col.Name, len(col.Applications)))
		}
		sb.WriteString(fmt.Sprintf("\n%s%d\n", theme.Muted.Render("follow-ups due: "), len(m.followUps)))
	}
	if m.statusLine != "" {
		sb.WriteString("\n" + theme.Hot.Render(m.statusLine) + "\n")
	}
	return sb.String()
}

func boardToItems(columns []jobsdto.BoardColumnOutput) []list.Item {
	var items []list.Item
	for _, col := range columns {
		for _, a := range col.Applications {
			items = append(items, applicationItem{a: a})
		}
	}
	return items
}

func applicationsToItems(apps []jobsdto.ApplicationOutput) []list.Item {
	items := make([]list.Item, len(apps))
	for i, a := range apps {
		items[i] = applicationItem{a: a}
	}
	return items
}

func contactsToItems(contacts []jobsdto.ContactOutput) []list.Item {
	items := make([]list.Item, len(contacts))
	for i, c := range contacts {
		items[i] = contactItem{c: c}
	}
	return items
}

func resourcesToItems(categories []jobsdto.CategoryOutput) []list.Item {
	var items []list.Item
	for _, c := range categories {
		for _, l := range c.Links {
			items = append(items, linkItem{categoryID: c.ID, category: c.Title, l: l})
		}
	}
	return items
}

func (m Model) loadBoardCmd() tea.Cmd {
	return func() tea.Msg {
		columns, err := m.port.Board(context.Background())
		return BoardMsg{Columns: columns, Err: err}
	}
}

func (m Model) loadFollowUpsCmd() tea.Cmd {
	return func() tea.Msg {
		items, err := m.port.FollowUps(context.Background())
		return FollowUpsMsg{Items: items, Err: err}
	}
}

func (m Model) loadContactsCmd() tea.Cmd {
	return func() tea.Msg {
		items, err := m.port.Contacts(context.Background(), "")
		return ContactsMsg{Items: items, Err: err}
	}
}

func (m Model) loadResourcesCmd() tea.Cmd {
	return func() tea.Msg {
		categories, err := m.port.Resources(context.Background())
		return ResourcesMsg{Categories: categories, Err: err}
	}
}

func (m Model) markFollowedUpCmd(app jobsdto.ApplicationOutput) tea.Cmd {
	return func() tea.Msg {
		_, err := m.port.MarkFollowedUp(context.Background(), app.ID)
		return ActionMsg{Done: "followed up: " + app.Company, Err: err}
	}
}

func (m Model) checkLinkCmd(item linkItem) tea.Cmd {
	return func() tea.Msg {
		_, err := m.port.CheckLink(context.Background(), item.categoryID, item.l.ID, !item.l.Checked)
		return ActionMsg{Done: "updated: " + item.l.Title, Err: err}
	}
}
