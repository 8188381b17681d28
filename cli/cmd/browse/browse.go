// Package browse implements an interactive, fuzzy-filtered view of a
// configuration.
package browse

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/rbconf/conf"
	"github.com/ardnew/rbconf/log"
)

var (
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	keyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("4"))
)

const (
	filterPrompt  = "filter> "
	defaultWidth  = 80
	defaultHeight = 24

	// chromeHeight is the number of lines View uses besides the entries:
	// the prompt, the detail line, and the help line.
	chromeHeight = 3
)

// Run starts the browser on c with the filter initialized to query, drawing
// on w. It returns the key selected with enter, or "" if the browser was
// closed without a selection. Options are applied after the defaults.
func Run(
	ctx context.Context,
	w io.Writer,
	c *conf.Config,
	logger log.Logger,
	query string,
	opts ...tea.ProgramOption,
) (key string, err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	logger.TraceContext(ctx, "browse start",
		slog.Int("keys", c.Len()),
		slog.String("query", query),
	)

	p := tea.NewProgram(newModel(c, query), append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(w),
	}, opts...)...)

	final, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := final.(model)
	if !ok {
		return "", nil
	}

	logger.TraceContext(ctx, "browse done", slog.String("selected", m.selected))

	return m.selected, nil
}

// entry is one configuration key with both of its values.
type entry struct {
	key   string
	value string
	raw   string
}

// entries adapts a slice of entry to [fuzzy.Source], matching on keys.
type entries []entry

func (e entries) String(i int) string { return e[i].key }

func (e entries) Len() int { return len(e) }

// filter returns the indexes of es whose keys fuzzy-match query, best match
// first. An empty query matches everything in recorded order.
func filter(es entries, query string) []int {
	if query == "" {
		idx := make([]int, len(es))
		for i := range idx {
			idx[i] = i
		}

		return idx
	}

	matches := fuzzy.FindFrom(query, es)

	idx := make([]int, len(matches))
	for i, m := range matches {
		idx[i] = m.Index
	}

	return idx
}

type model struct {
	input    textinput.Model
	all      entries
	visible  []int
	selected string
	cursor   int
	offset   int
	width    int
	height   int
	raw      bool
	quitting bool
}

func newModel(c *conf.Config, query string) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(filterPrompt)
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = defaultWidth
	ti.SetValue(query)

	all := make(entries, 0, c.Len())
	for k, v := range c.All() {
		raw, _ := c.Raw(k)
		all = append(all, entry{key: k, value: v, raw: raw})
	}

	return model{
		input:   ti,
		all:     all,
		visible: filter(all, query),
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = max(msg.Height, chromeHeight+1)
		m.input.Width = msg.Width - len(filterPrompt) - 2
		m.scroll()

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true

		return m, tea.Quit

	case tea.KeyEnter:
		if e, ok := m.current(); ok {
			m.selected = e.key
		}

		m.quitting = true

		return m, tea.Quit

	case tea.KeyUp, tea.KeyCtrlP:
		m.move(-1)

		return m, nil

	case tea.KeyDown, tea.KeyCtrlN:
		m.move(1)

		return m, nil

	case tea.KeyPgUp:
		m.move(-m.rows())

		return m, nil

	case tea.KeyPgDown:
		m.move(m.rows())

		return m, nil

	case tea.KeyTab:
		m.raw = !m.raw

		return m, nil
	}

	var cmd tea.Cmd

	prev := m.input.Value()
	m.input, cmd = m.input.Update(msg)

	if m.input.Value() != prev {
		m.visible = filter(m.all, m.input.Value())
		m.cursor = 0
		m.offset = 0
	}

	return m, cmd
}

// rows returns the number of entries that fit on screen.
func (m model) rows() int { return max(m.height-chromeHeight, 1) }

func (m *model) move(delta int) {
	if len(m.visible) == 0 {
		return
	}

	m.cursor = min(max(m.cursor+delta, 0), len(m.visible)-1)
	m.scroll()
}

// scroll keeps the cursor within the visible window.
func (m *model) scroll() {
	rows := m.rows()

	if m.cursor < m.offset {
		m.offset = m.cursor
	}

	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

func (m model) current() (entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return entry{}, false
	}

	return m.all[m.visible[m.cursor]], true
}

func (m model) value(e entry) string {
	if m.raw {
		return e.raw
	}

	return e.value
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteByte('\n')

	end := min(m.offset+m.rows(), len(m.visible))
	for i := m.offset; i < end; i++ {
		e := m.all[m.visible[i]]
		line := truncate(e.key+" = "+m.value(e), m.width)

		if i == m.cursor {
			b.WriteString(selectedStyle.Render(line))
		} else {
			key, rest, _ := strings.Cut(line, " = ")
			b.WriteString(keyStyle.Render(key) + " = " + valueStyle.Render(rest))
		}

		b.WriteByte('\n')
	}

	if e, ok := m.current(); ok && e.raw != e.value {
		other := e.raw
		if m.raw {
			other = e.value
		}

		b.WriteString(hintStyle.Render(truncate("  ↳ "+other, m.width)))
	}

	b.WriteByte('\n')

	mode := "expanded"
	if m.raw {
		mode = "raw"
	}

	b.WriteString(hintStyle.Render(fmt.Sprintf(
		"%d/%d %s · ↑/↓ move · tab raw/expanded · enter select · esc quit",
		len(m.visible), len(m.all), mode,
	)))

	return b.String()
}

// truncate shortens s to at most width runes, marking the cut with "…".
func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}

	if width == 1 {
		return "…"
	}

	return string(r[:width-1]) + "…"
}
