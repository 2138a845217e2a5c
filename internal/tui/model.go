// Package tui provides the Bubble Tea word-finder interface.
package tui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordfind/internal/corpus"
	"github.com/verte-zerg/wordfind/internal/filter"
)

var (
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cellStyle        = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder(), true).BorderForeground(lipgloss.Color("#4A4A4A")).Foreground(lipgloss.Color("#F0F0F0"))
	focusedCellStyle = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder(), true).BorderForeground(lipgloss.Color("#C89A3A")).Foreground(lipgloss.Color("#F0F0F0"))
	commonBadgeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Background(lipgloss.Color("#4A4A4A"))
	rareBadgeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Background(lipgloss.Color("#2E2E2E"))
	toggleOnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	emptyStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model implements the Bubble Tea word-finder UI. Focus moves across the
// position cells first, then the include and exclude boxes.
type Model struct {
	corpus   *corpus.Corpus
	state    filter.State
	filtered []string

	include textinput.Model
	exclude textinput.Model
	focus   int

	words viewport.Model

	width  int
	height int
}

// NewModel constructs a word-finder model over the given corpus.
func NewModel(c *corpus.Corpus, commonOnly bool) *Model {
	state := filter.NewState(c.WordLength())
	if commonOnly {
		state = state.ToggleCommonOnly()
	}
	m := &Model{
		corpus:  c,
		state:   state,
		include: newLetterInput("Include: ", c.WordLength(), lettersOnly),
		exclude: newLetterInput("Exclude: ", 0, distinctLetters),
		words:   viewport.New(0, 0),
	}
	m.refilter()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			m.moveFocus(1)
			return m, nil
		case tea.KeyShiftTab:
			m.moveFocus(-1)
			return m, nil
		case tea.KeyCtrlT:
			m.state = m.state.ToggleCommonOnly()
			m.refilter()
			return m, nil
		case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.words, cmd = m.words.Update(msg)
			return m, cmd
		default:
			return m.handleEdit(msg)
		}
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	header := m.renderConstraints()
	footer := footerStyle.Render(m.renderFooter())
	return strings.Join([]string{header, m.words.View(), footer}, "\n")
}

func (m *Model) handleEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.focus < m.state.WordLength() {
		switch msg.Type {
		case tea.KeyRunes:
			// Typing into an occupied cell replaces its letter.
			for _, r := range msg.Runes {
				if unicode.IsLetter(r) {
					m.state = m.state.SetPosition(m.focus, r)
				}
			}
			m.refilter()
		case tea.KeyBackspace, tea.KeyDelete:
			m.state = m.state.ClearPosition(m.focus)
			m.refilter()
		}
		return m, nil
	}

	input := &m.include
	if m.focus == m.excludeFocus() {
		input = &m.exclude
	}
	if msg.Type == tea.KeyRunes {
		msg.Runes = upperRunes(msg.Runes)
	}
	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	m.state = m.state.SetInclude(m.include.Value()).SetExclude(m.exclude.Value())
	m.refilter()
	return m, cmd
}

func (m *Model) moveFocus(delta int) {
	count := m.state.WordLength() + 2
	m.focus = ((m.focus+delta)%count + count) % count
	m.include.Blur()
	m.exclude.Blur()
	switch m.focus {
	case m.includeFocus():
		m.include.Focus()
	case m.excludeFocus():
		m.exclude.Focus()
	}
}

func (m *Model) includeFocus() int {
	return m.state.WordLength()
}

func (m *Model) excludeFocus() int {
	return m.state.WordLength() + 1
}

func (m *Model) refilter() {
	m.filtered = filter.Apply(m.corpus, m.state)
	m.updateLayout()
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	header := m.renderConstraints()
	bodyHeight := m.height - lipgloss.Height(header) - 1
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	m.words.Width = m.width
	m.words.Height = bodyHeight

	for _, input := range []*textinput.Model{&m.include, &m.exclude} {
		promptWidth := lipgloss.Width(input.Prompt)
		input.Width = maxInt(10, m.width-promptWidth-2)
	}

	gridWidth := m.width - 1
	if gridWidth < 1 {
		gridWidth = 1
	}
	m.words.SetContent(renderGrid(m.filtered, m.corpus.IsCommon, gridWidth))
}

func (m *Model) renderConstraints() string {
	cells := make([]string, 0, m.state.WordLength())
	for i := 0; i < m.state.WordLength(); i++ {
		letter := " "
		if r := m.state.Position(i); r != 0 {
			letter = strings.ToUpper(string(r))
		}
		style := cellStyle
		if m.focus == i {
			style = focusedCellStyle
		}
		cells = append(cells, style.Render(letter))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)

	toggle := labelStyle.Render("off")
	if m.state.CommonOnly() {
		toggle = toggleOnStyle.Render("on")
	}

	lines := []string{
		labelStyle.Render("Position"),
		row,
		m.include.View(),
		m.exclude.View(),
		labelStyle.Render("Common only: ") + toggle,
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderFooter() string {
	count := fmt.Sprintf("%d words", len(m.filtered))
	if len(m.filtered) == 1 {
		count = "1 word"
	}
	return count + "  tab: next field  ctrl+t: common only  up/down: scroll  esc: quit"
}

func newLetterInput(prompt string, limit int, validate textinput.ValidateFunc) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.CharLimit = limit
	input.Cursor.SetMode(cursor.CursorBlink)
	input.Validate = validate
	return input
}

func lettersOnly(s string) error {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return fmt.Errorf("letters only")
		}
	}
	return nil
}

func distinctLetters(s string) error {
	if err := lettersOnly(s); err != nil {
		return err
	}
	seen := make(map[rune]struct{}, len(s))
	for _, r := range s {
		r = unicode.ToLower(r)
		if _, ok := seen[r]; ok {
			return fmt.Errorf("duplicate letter %q", r)
		}
		seen[r] = struct{}{}
	}
	return nil
}

func upperRunes(runes []rune) []rune {
	out := make([]rune, len(runes))
	for i, r := range runes {
		out[i] = unicode.ToUpper(r)
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
