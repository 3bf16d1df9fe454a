package sink

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bft-labs/dofcalc/pkg/dof"
)

var (
	colorCyan = lipgloss.Color("36")
	colorDim  = lipgloss.Color("240")

	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	styleCell   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	styleBorder = lipgloss.NewStyle().Foreground(colorDim)
)

// TableWriter renders a bordered table for terminals.
type TableWriter struct{}

func (TableWriter) Format() string    { return "table" }
func (TableWriter) Extension() string { return "txt" }

// Write renders rows under a bold header.
func (TableWriter) Write(w io.Writer, rows []dof.Row) error {
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = fields(r)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styleBorder).
		Headers(Columns...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			return styleCell
		})

	_, err := io.WriteString(w, t.Render()+"\n")
	return err
}
