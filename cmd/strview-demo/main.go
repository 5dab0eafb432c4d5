// Command strview-demo is an interactive playground for the strview API:
// it scans a sample line token by token with a movable window, and rewrites
// the buffer in place (uppercase, lowercase, star-redaction) without ever
// changing its byte length.
package main

import (
	"fmt"
	"os"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	strview "github.com/IoaNNUwU/string-view"
	"github.com/IoaNNUwU/string-view/internal/grapheme"
)

const sampleText = " 1 3  Hello World  7 8  naïve café 日本語  "

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Upper  key.Binding
	Lower  key.Binding
	Redact key.Binding
	Reset  key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:   key.NewBinding(key.WithKeys("right", "tab"), key.WithHelp("→", "next token")),
		Prev:   key.NewBinding(key.WithKeys("left", "shift+tab"), key.WithHelp("←", "prev token")),
		Upper:  key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "uppercase token")),
		Lower:  key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "lowercase token")),
		Redact: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "redact interior")),
		Reset:  key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "reset buffer")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	tokenStyle  = lipgloss.NewStyle().Reverse(true)
	statusStyle = lipgloss.NewStyle().Faint(true)
)

type model struct {
	keys   keyMap
	buf    []byte
	tok    strview.MutView
	status string
}

func newModel() model {
	m := model{
		keys: defaultKeyMap(),
		buf:  []byte(sampleText),
	}
	m.tok = strview.NewMut(m.buf)
	m.tok.ShrinkToLeft()
	m.nextToken()
	return m
}

func notSpace(r rune) bool { return !unicode.IsSpace(r) }

func spaceOrDigit(r rune) bool { return unicode.IsSpace(r) || unicode.IsDigit(r) }

func (m *model) nextToken() {
	m.tok.ShrinkToRight()
	m.tok.ExtendRightWhile(unicode.IsSpace)
	m.tok.ShrinkToRight()
	m.tok.ExtendRightWhile(notSpace)
	if m.tok.IsEmpty() {
		// Past the last token: wrap around to the first one.
		m.tok = strview.NewMut(m.buf)
		m.tok.ShrinkToLeft()
		m.tok.ExtendRightWhile(unicode.IsSpace)
		m.tok.ShrinkToRight()
		m.tok.ExtendRightWhile(notSpace)
	}
}

func (m *model) prevToken() {
	m.tok.ShrinkToLeft()
	m.tok.ExtendLeftWhile(unicode.IsSpace)
	m.tok.ShrinkToLeft()
	m.tok.ExtendLeftWhile(notSpace)
	if m.tok.IsEmpty() {
		m.tok = strview.NewMut(m.buf)
		m.tok.ShrinkToRight()
		m.tok.ExtendLeftWhile(unicode.IsSpace)
		m.tok.ShrinkToLeft()
		m.tok.ExtendLeftWhile(notSpace)
	}
}

func (m *model) mapTokenCase(upper bool) {
	it, err := m.tok.Chars()
	if err != nil {
		m.status = err.Error()
		return
	}
	for {
		ch, ok := it.Next()
		if !ok {
			break
		}
		if upper {
			ch.MakeUpper()
		} else {
			ch.MakeLower()
		}
	}
	m.status = fmt.Sprintf("rewrote %q in place", m.tok.String())
}

func (m *model) redact() {
	inner := strview.TrimMatches(m.buf, spaceOrDigit)
	if err := inner.Fill('*'); err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("filled [%d,%d) with stars", inner.Start(), inner.End())
	m.tok = inner
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Next):
		m.nextToken()
		m.status = ""
	case key.Matches(keyMsg, m.keys.Prev):
		m.prevToken()
		m.status = ""
	case key.Matches(keyMsg, m.keys.Upper):
		m.mapTokenCase(true)
	case key.Matches(keyMsg, m.keys.Lower):
		m.mapTokenCase(false)
	case key.Matches(keyMsg, m.keys.Redact):
		m.redact()
	case key.Matches(keyMsg, m.keys.Reset):
		m.buf = []byte(sampleText)
		m.tok = strview.NewMut(m.buf)
		m.tok.ShrinkToLeft()
		m.nextToken()
		m.status = "buffer reset"
	}
	return m, nil
}

func (m model) View() string {
	line := string(m.buf[:m.tok.Start()]) +
		tokenStyle.Render(m.tok.String()) +
		string(m.buf[m.tok.End():])

	status := fmt.Sprintf("window [%d,%d)  %d bytes  %d cells  %d graphemes",
		m.tok.Start(), m.tok.End(), m.tok.Len(), m.tok.Width(), m.tok.GraphemeCount())
	if !m.tok.IsEmpty() {
		status += fmt.Sprintf("  %q..%q", grapheme.First(m.tok.String()), grapheme.Last(m.tok.String()))
	}
	if m.status != "" {
		status += "  |  " + m.status
	}

	help := "→/← move  u/l case  r redact  0 reset  q quit"

	return titleStyle.Render("strview playground") + "\n\n" +
		"[" + line + "]\n\n" +
		statusStyle.Render(status) + "\n" +
		statusStyle.Render(help) + "\n"
}

func main() {
	if _, err := tea.NewProgram(newModel()).Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
