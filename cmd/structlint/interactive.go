package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	structlint "github.com/chrismerck/struct-lint"
	"github.com/chrismerck/struct-lint/aggregate"
	"github.com/chrismerck/struct-lint/analyze"
	"github.com/chrismerck/struct-lint/report"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	structStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	okStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type browserState int

const (
	stateList browserState = iota
	stateDetail
)

type browserModel struct {
	err      error
	paths    []string
	opts     structlint.Options
	set      *aggregate.Set
	stats    structlint.Stats
	entries  []*aggregate.Entry
	filtered []*aggregate.Entry
	filter   textinput.Model
	selected int
	state    browserState
}

type scannedMsg struct {
	err   error
	set   *aggregate.Set
	stats structlint.Stats
}

func newBrowserModel(paths []string, opts structlint.Options) *browserModel {
	filter := textinput.New()
	filter.Placeholder = "filter structs"
	filter.Prompt = "/ "
	filter.Focus()
	return &browserModel{
		paths:  paths,
		opts:   opts,
		filter: filter,
		state:  stateList,
	}
}

func runInteractive(paths []string, opts structlint.Options) error {
	p := tea.NewProgram(newBrowserModel(paths, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *browserModel) Init() tea.Cmd {
	return m.scan
}

func (m *browserModel) scan() tea.Msg {
	set, stats, err := structlint.Scan(m.paths, m.opts)
	return scannedMsg{err: err, set: set, stats: stats}
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "up", "ctrl+p":
			if m.state == stateList && m.selected > 0 {
				m.selected--
			}

		case "down", "ctrl+n":
			if m.state == stateList && m.selected < len(m.filtered)-1 {
				m.selected++
			}

		case "enter":
			if m.state == stateList && m.selected < len(m.filtered) {
				m.state = stateDetail
			}

		case "esc":
			switch m.state {
			case stateDetail:
				m.state = stateList
			case stateList:
				return m, tea.Quit
			}
		}

	case scannedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.set = msg.set
		m.stats = msg.stats
		m.entries = msg.set.Entries()
		m.filtered = m.entries
	}

	if m.state == stateList {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.applyFilter()
		return m, cmd
	}
	return m, nil
}

func (m *browserModel) applyFilter() {
	needle := strings.ToLower(m.filter.Value())
	if needle == "" {
		m.filtered = m.entries
	} else {
		var kept []*aggregate.Entry
		for _, e := range m.entries {
			if strings.Contains(strings.ToLower(e.Struct.Name), needle) {
				kept = append(kept, e)
			}
		}
		m.filtered = kept
	}
	if m.selected >= len(m.filtered) {
		m.selected = 0
	}
}

func (m *browserModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n" +
			helpStyle.Render("esc/ctrl+c: quit") + "\n"
	}
	if m.set == nil {
		return "Scanning...\n"
	}
	if m.state == stateDetail {
		return m.detailView()
	}
	return m.listView()
}

func (m *browserModel) listView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf(" struct-lint: %d structs, %d issues, %d artifacts ",
		m.set.Len(), m.set.IssueCount(), m.stats.Artifacts)))
	b.WriteString("\n\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	for i, e := range m.filtered {
		marker := okStyle.Render("ok")
		if n := len(e.Issues); n > 0 {
			marker = errorStyle.Render(fmt.Sprintf("%d issue(s)", n))
		}
		line := fmt.Sprintf("%s  %d bytes, %d members  %s",
			e.Struct.Name, e.Struct.Size, len(e.Struct.Members), marker)
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + structStyle.Render(e.Struct.Name) +
				line[len(e.Struct.Name):])
		}
		b.WriteString("\n")
	}
	if len(m.filtered) == 0 {
		b.WriteString(helpStyle.Render("  no structs match"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("up/down: select  enter: details  esc: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *browserModel) detailView() string {
	e := m.filtered[m.selected]
	s := &e.Struct

	var b strings.Builder
	b.WriteString(titleStyle.Render(" " + s.Name + " "))
	b.WriteString("\n\n")

	layout := "natural layout"
	if analyze.InferPacked(s, e.MaxAlign) {
		layout = "packed"
	}
	fmt.Fprintf(&b, "%s:%d  %d bytes  %s  (max align %d, first seen in %s)\n\n",
		s.DeclFile, s.DeclLine, s.Size, layout, e.MaxAlign, e.Artifact)

	fmt.Fprintf(&b, "  %-20s %-20s %8s %6s\n", "MEMBER", "TYPE", "OFFSET", "SIZE")
	for _, mem := range s.Members {
		size := fmt.Sprintf("%d", mem.Size)
		if mem.IsBitfield {
			size = fmt.Sprintf(":%d", mem.BitSize)
		}
		fmt.Fprintf(&b, "  %-20s %-20s %8d %6s\n",
			mem.Name, typeStyle.Render(mem.TypeName), mem.Offset, size)
	}
	b.WriteString("\n")

	if len(e.Issues) == 0 {
		b.WriteString(okStyle.Render("  no issues"))
		b.WriteString("\n")
	}
	for _, issue := range e.Issues {
		b.WriteString(errorStyle.Render("  " + report.FormatIssue(issue)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc: back  ctrl+c: quit"))
	b.WriteString("\n")
	return b.String()
}
