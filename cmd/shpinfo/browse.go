package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/beetlebugorg/shapefile/pkg/shapefile"
)

var browseCmd = &cobra.Command{
	Use:   "browse <file.shp>",
	Short: "Interactively browse a shapefile's records",
	Args:  cobra.ExactArgs(1),
	RunE:  runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	r, err := shapefile.Open(args[0])
	if err != nil {
		return err
	}
	p := tea.NewProgram(newBrowseModel(args[0], r))
	_, err = p.Run()
	return err
}

type browseModel struct {
	path     string
	header   shapefile.Header
	shapes   []shapefile.Shape
	cursor   int
	selected bool
}

func newBrowseModel(path string, r *shapefile.Reader) browseModel {
	return browseModel{path: path, header: r.Header(), shapes: r.Shapes()}
}

func (m browseModel) Init() tea.Cmd { return nil }

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.shapes)-1 {
				m.cursor++
			}
		case "enter":
			m.selected = !m.selected
		case "esc":
			m.selected = false
		}
	}
	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%s, %d records)", m.path, m.header.ShapeType, len(m.shapes))))
	b.WriteString("\n\n")

	if m.selected && len(m.shapes) > 0 {
		s := m.shapes[m.cursor]
		b.WriteString(describeShape(s))
		b.WriteString("\n\n" + labelStyle.Render("esc to go back"))
		return b.String()
	}

	const window = 15
	start := m.cursor - window/2
	if start < 0 {
		start = 0
	}
	end := start + window
	if end > len(m.shapes) {
		end = len(m.shapes)
	}

	for i := start; i < end; i++ {
		line := fmt.Sprintf("#%-5d %s", i+1, m.shapes[i].ShapeType())
		if i == m.cursor {
			line = lipgloss.NewStyle().Reverse(true).Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + labelStyle.Render("↑/↓ move · enter inspect · q quit"))
	return b.String()
}
