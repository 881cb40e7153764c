package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchPrefersPrefixThenSubstring(t *testing.T) {
	t.Parallel()

	names := func(cmds []Command) []string {
		out := make([]string, len(cmds))
		for i, c := range cmds {
			out[i] = c.Name
		}
		return out
	}

	assert.Equal(t, []string{"study:start", "study:complete", "study:focus", "study:next"}, names(Match("study")))
	assert.Equal(t, []string{"backup:verify", "backup:flush"}, names(Match("backup:  ignored args")))
	assert.Equal(t, []string{"report:export"}, names(Match("export")))
	assert.Len(t, Match(""), maxMatches)
	assert.Empty(t, Match("nope"))
}

func TestPaletteTabCompletesAndEnterSubmits(t *testing.T) {
	t.Parallel()

	p := NewPalette()
	p.Open()
	require.True(t, p.Visible())

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("timer")})
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "timer:stop ", p.input.Value())

	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, PaletteSubmitMsg{Input: "timer:stop"}, cmd())
	assert.False(t, p.Visible())
}

func TestPaletteHistoryRecall(t *testing.T) {
	t.Parallel()

	p := NewPalette()
	for _, input := range []string{"study:next", "backup:flush"} {
		p.Open()
		p.input.SetValue(input)
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	}

	p.Open()
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "backup:flush", p.input.Value())
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "study:next", p.input.Value())
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "", p.input.Value())

	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, PaletteCancelMsg{}, cmd())
	assert.False(t, p.Visible())
}
