package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"switchsprint/internal/ui/theme"
)

// PaletteSubmitMsg is emitted when the user confirms a command.
type PaletteSubmitMsg struct{ Input string }

// PaletteCancelMsg is emitted when the user presses esc.
type PaletteCancelMsg struct{}

// Command describes one palette entry.
type Command struct {
	Name  string
	Args  string
	Brief string
}

var (
	paletteStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Peach).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	nameStyle  = lipgloss.NewStyle().Foreground(theme.Sapphire)
	briefStyle = lipgloss.NewStyle().Foreground(theme.Subtext0)
)

// Commands must stay in sync with the switch in app/model.go executePalette.
var Commands = []Command{
	{"session:start", "", "start today's session"},
	{"session:end", "", "end today's session"},
	{"session:wrap", "<applications> <recruiters> [notes]", "record end-of-day counters"},
	{"item:add", "<minutes> <label>", "add a custom checklist item"},
	{"item:note", "<text>", "set notes on the selected item"},
	{"item:remove", "", "remove the selected custom item"},
	{"timer:stop", "", "stop the running timer"},
	{"study:start", "", "start the study plan today"},
	{"study:complete", "<day>", "toggle a study day"},
	{"study:focus", "<day>", "focus a study day"},
	{"study:next", "", "focus the next open day"},
	{"app:add", "<company> <role>", "record an application"},
	{"app:move", "<status>", "move the selected application"},
	{"backup:verify", "", "reconnect the backup folder"},
	{"backup:flush", "", "write the backup now"},
	{"report:export", "[dir]", "export the xlsx report"},
}

const maxMatches = 6

// Palette is a command-palette overlay backed by bubbles/textinput.
// Tab completes the first matching command; up and down walk earlier submissions.
type Palette struct {
	input   textinput.Model
	visible bool
	width   int
	history []string
	cursor  int
}

func NewPalette() Palette {
	ti := textinput.New()
	ti.Placeholder = "type a command…"
	ti.CharLimit = 256
	return Palette{input: ti}
}

func (p Palette) Visible() bool { return p.visible }

// Open shows the palette with an empty input and returns the focus command.
func (p *Palette) Open() tea.Cmd {
	p.visible = true
	p.cursor = len(p.history)
	p.input.SetValue("")
	return p.input.Focus()
}

func (p *Palette) SetWidth(w int) { p.width = w }

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			p.close()
			return p, func() tea.Msg { return PaletteCancelMsg{} }
		case "enter":
			val := strings.TrimSpace(p.input.Value())
			p.close()
			if val != "" && (len(p.history) == 0 || p.history[len(p.history)-1] != val) {
				p.history = append(p.history, val)
			}
			return p, func() tea.Msg { return PaletteSubmitMsg{Input: val} }
		case "tab":
			if matches := Match(p.input.Value()); len(matches) > 0 {
				p.input.SetValue(matches[0].Name + " ")
				p.input.CursorEnd()
			}
			return p, nil
		case "up":
			if p.cursor > 0 {
				p.cursor--
				p.input.SetValue(p.history[p.cursor])
				p.input.CursorEnd()
			}
			return p, nil
		case "down":
			if p.cursor < len(p.history) {
				p.cursor++
				value := ""
				if p.cursor < len(p.history) {
					value = p.history[p.cursor]
				}
				p.input.SetValue(value)
				p.input.CursorEnd()
			}
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p Palette) View() string {
	if !p.visible {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Command Palette") + "\n")
	sb.WriteString(": " + p.input.View() + "\n")
	if matches := Match(p.input.Value()); len(matches) > 0 {
		sb.WriteString("\n")
		for _, c := range matches {
			line := nameStyle.Render(c.Name)
			if c.Args != "" {
				line += " " + briefStyle.Render(c.Args)
			}
			sb.WriteString("  " + line + "  " + briefStyle.Render(c.Brief) + "\n")
		}
	}

	w := p.width
	if w < 20 {
		w = 64
	}
	return paletteStyle.Width(w - 2).Render(sb.String())
}

// Match returns the commands whose name starts with the first word of input,
// falling back to a substring match when no name has that prefix.
func Match(input string) []Command {
	word := strings.ToLower(strings.TrimSpace(input))
	if i := strings.IndexByte(word, ' '); i >= 0 {
		word = word[:i]
	}
	var prefix, contains []Command
	for _, c := range Commands {
		switch {
		case word == "" || strings.HasPrefix(c.Name, word):
			prefix = append(prefix, c)
		case strings.Contains(c.Name, word):
			contains = append(contains, c)
		}
	}
	out := prefix
	if len(out) == 0 {
		out = contains
	}
	if len(out) > maxMatches {
		out = out[:maxMatches]
	}
	return out
}

func (p *Palette) close() {
	p.visible = false
	p.input.Blur()
}
