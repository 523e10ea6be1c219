package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Walnut356/syntheticproviders/debuginfo"
	"github.com/Walnut356/syntheticproviders/debuginfo/infotest"
	"github.com/Walnut356/syntheticproviders/provider"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#B7410E")).
			Padding(0, 1)

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#B7410E"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// node is one visible row of the tree.
type node struct {
	val      debuginfo.Value
	prov     provider.Provider
	summary  string
	depth    int
	expanded bool
}

type treeModel struct {
	err      error
	reg      *provider.Registry
	nodes    []*node
	filter   textinput.Model
	cursor   int
	filterOn bool
}

func newTreeModel(tg *infotest.Target, roots []root) (*treeModel, error) {
	m := &treeModel{reg: provider.NewRegistry()}

	ti := textinput.New()
	ti.Placeholder = "name"
	ti.CharLimit = 64
	m.filter = ti

	for _, r := range roots {
		t, ok := tg.FindFirstType(r.typeName)
		if !ok {
			return nil, fmt.Errorf("unknown type %q", r.typeName)
		}
		n, err := m.makeNode(tg.ValueAt(r.name, t.(*infotest.Type), r.addr), 0)
		if err != nil {
			return nil, err
		}
		m.nodes = append(m.nodes, n)
	}
	return m, nil
}

func (m *treeModel) makeNode(v debuginfo.Value, depth int) (*node, error) {
	p, err := m.reg.ProviderFor(v)
	if err != nil {
		return nil, err
	}
	summary, err := m.reg.SummaryFor(v)
	if err != nil {
		summary = errorStyle.Render(err.Error())
	}
	return &node{val: v, prov: p, summary: summary, depth: depth}, nil
}

func (m *treeModel) Init() tea.Cmd { return nil }

func (m *treeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.filterOn {
		switch keyMsg.String() {
		case "enter":
			m.jumpTo(m.filter.Value())
			m.filterOn = false
			m.filter.Blur()
		case "esc":
			m.filterOn = false
			m.filter.Blur()
		default:
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.nodes)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.toggle(m.cursor)
	case "/":
		m.filterOn = true
		m.filter.Focus()
		m.filter.SetValue("")
	}
	return m, nil
}

// toggle expands or collapses the node at index i, splicing its children
// into (or out of) the visible rows.
func (m *treeModel) toggle(i int) {
	if i < 0 || i >= len(m.nodes) {
		return
	}
	n := m.nodes[i]

	if n.expanded {
		end := i + 1
		for end < len(m.nodes) && m.nodes[end].depth > n.depth {
			end++
		}
		m.nodes = append(m.nodes[:i+1], m.nodes[end:]...)
		n.expanded = false
		return
	}

	if !n.prov.HasChildren() {
		return
	}
	count := n.prov.Count()
	if count > maxTreeChildren {
		count = maxTreeChildren
	}
	children := make([]*node, 0, count)
	for ci := 0; ci < count; ci++ {
		cv, err := n.prov.ChildAtIndex(ci)
		if err != nil {
			m.err = err
			return
		}
		cn, err := m.makeNode(cv, n.depth+1)
		if err != nil {
			m.err = err
			return
		}
		children = append(children, cn)
	}
	rest := make([]*node, len(m.nodes[i+1:]))
	copy(rest, m.nodes[i+1:])
	m.nodes = append(append(m.nodes[:i+1], children...), rest...)
	n.expanded = true
}

func (m *treeModel) jumpTo(name string) {
	if name == "" {
		return
	}
	for i, n := range m.nodes {
		if strings.Contains(n.val.Name(), name) {
			m.cursor = i
			return
		}
	}
}

func (m *treeModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("inspect"))
	b.WriteString("\n\n")

	for i, n := range m.nodes {
		marker := "  "
		if n.prov.HasChildren() {
			if n.expanded {
				marker = "▾ "
			} else {
				marker = "▸ "
			}
		}
		line := fmt.Sprintf("%s%s%s: %s = %s",
			strings.Repeat("  ", n.depth), marker, n.val.Name(),
			typeStyle.Render(n.prov.DisplayTypeName()),
			summaryStyle.Render(n.summary))
		if i == m.cursor {
			line = selectedStyle.Render(fmt.Sprintf("%s%s%s: %s = %s",
				strings.Repeat("  ", n.depth), marker, n.val.Name(),
				n.prov.DisplayTypeName(), n.summary))
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteByte('\n')
	}

	if m.filterOn {
		b.WriteString("\njump to: ")
		b.WriteString(m.filter.View())
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ move · enter expand/collapse · / jump · q quit"))
	b.WriteByte('\n')
	return b.String()
}

func runInteractive(tg *infotest.Target, roots []root) error {
	m, err := newTreeModel(tg, roots)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
