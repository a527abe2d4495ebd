// Package ui is the interactive document viewer: a scrollable viewport
// showing highlighted source with a fold margin.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vblex/internal/doc"
	"vblex/internal/vb"
)

var lineStyles = map[vb.Style]lipgloss.Style{
	vb.StyleComment:          lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	vb.StyleLineContinuation: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	vb.StyleNumber:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	vb.StyleString:           lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	vb.StyleInterpolated:     lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	vb.StyleFormatSpecifier:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	vb.StyleDate:             lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	vb.StyleFileNumber:       lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	vb.StyleKeyword:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
	vb.StyleTypeKeyword:      lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	vb.StyleLibrary:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	vb.StylePreprocessor:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	vb.StyleAttribute:        lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	vb.StyleConstant:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	vb.StyleFunctionDef:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
	vb.StyleLabel:            lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	vb.StyleOperator:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	vb.StyleNestedOperator:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
}

var (
	marginStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderDocument builds the viewer content: a fold margin followed by the
// highlighted line text.
func RenderDocument(d *doc.Document) string {
	var b strings.Builder
	for line := 0; line < d.LineCount(); line++ {
		lev := d.Level(line)
		margin := "  "
		if lev.IsHeader() {
			margin = "▸ "
		} else if lev.Level() > vb.FoldLevelBase {
			margin = "│ "
		}
		b.WriteString(marginStyle.Render(fmt.Sprintf("%4d ", line+1)))
		b.WriteString(marginStyle.Render(margin))
		b.WriteString(renderLine(d, line))
		b.WriteByte('\n')
	}
	return b.String()
}

func renderLine(d *doc.Document, line int) string {
	start := d.LineStart(line)
	end := d.LineStart(line + 1)
	for end > start {
		ch := d.CharAt(end - 1)
		if ch != '\r' && ch != '\n' {
			break
		}
		end--
	}
	var b strings.Builder
	for pos := start; pos < end; {
		style := d.StyleAt(pos)
		run := pos + 1
		for run < end && d.StyleAt(run) == style {
			run++
		}
		text := string(d.Content[pos:run])
		if st, ok := lineStyles[style]; ok {
			b.WriteString(st.Render(text))
		} else {
			b.WriteString(text)
		}
		pos = run
	}
	return b.String()
}

type viewerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

// NewViewer returns a Bubble Tea model showing a scanned document.
func NewViewer(title string, d *doc.Document) tea.Model {
	return &viewerModel{
		title:   title,
		content: RenderDocument(d),
	}
}

func (m *viewerModel) Init() tea.Cmd {
	return nil
}

func (m *viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		headerHeight := 1
		footerHeight := 1
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *viewerModel) View() string {
	if !m.ready {
		return "loading…"
	}
	header := headerStyle.Render(m.title)
	footer := footerStyle.Render(fmt.Sprintf("%3.0f%% · q to quit", m.viewport.ScrollPercent()*100))
	return header + "\n" + m.viewport.View() + "\n" + footer
}
