// Package tui implements the interactive report preview shown before an
// export is written.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// ExportFunc performs the confirmed export.
type ExportFunc func() error

// PreviewModel shows the rendered markdown in a scrollable viewport. The
// export only happens when the user confirms; quitting leaves every file
// untouched.
type PreviewModel struct {
	Viewport   viewport.Model
	Markdown   string
	CardCount  int
	OutputPath string
	Export     ExportFunc

	Ready    bool
	Exported bool
	Aborted  bool
	Err      error

	theme Theme
	width int
}

func NewPreviewModel(markdown string, cardCount int, outputPath string, export ExportFunc) PreviewModel {
	return PreviewModel{
		Markdown:   markdown,
		CardCount:  cardCount,
		OutputPath: outputPath,
		Export:     export,
		theme:      DefaultTheme(),
	}
}

func (m PreviewModel) Init() tea.Cmd { return nil }

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		// One line each for header and footer.
		height := msg.Height - 2
		if height < 1 {
			height = 1
		}
		if !m.Ready {
			m.Viewport = viewport.New(msg.Width, height)
			m.Viewport.SetContent(m.Markdown)
			m.Ready = true
		} else {
			m.Viewport.Width = msg.Width
			m.Viewport.Height = height
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.Aborted = true
			return m, tea.Quit
		case "e", "enter":
			if m.Export == nil {
				m.Aborted = true
				return m, tea.Quit
			}
			if err := m.Export(); err != nil {
				m.Err = err
			} else {
				m.Exported = true
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

func (m PreviewModel) View() string {
	if !m.Ready {
		return m.theme.Dim.Render("Loading preview...")
	}
	return m.headerView() + "\n" + m.Viewport.View() + "\n" + m.footerView()
}

func (m PreviewModel) headerView() string {
	title := fmt.Sprintf("Preview | %d cards -> %s", m.CardCount, m.OutputPath)
	if m.width > 0 {
		title = ansi.Truncate(title, m.width, "…")
	}
	return m.theme.Header.Render(title)
}

func (m PreviewModel) footerView() string {
	help := "e/enter export | q/esc abort | ↑/↓ scroll"
	if m.Export == nil {
		help = "no cards matched | q/esc close"
	}
	if m.width > 0 {
		help = ansi.Truncate(help, m.width, "…")
	}
	return m.theme.Footer.Render(help)
}
