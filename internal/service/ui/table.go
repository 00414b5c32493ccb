package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/sandevgo/replkit/internal/core"
)

// CommandTable renders commands as a bordered two column table.
type CommandTable struct {
	headers []string
	border  lipgloss.Border
}

func NewCommandTable() *CommandTable {
	return &CommandTable{
		headers: []string{"command", "description"},
		border:  lipgloss.NormalBorder(),
	}
}

func (t *CommandTable) RenderCommands(commands []core.CommandInfo) string {
	rows := make([][]string, 0, len(commands))
	for _, c := range commands {
		rows = append(rows, []string{c.Word, c.Description})
	}

	return table.New().
		Border(t.border).
		BorderStyle(DescStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return HeaderStyle
			case col == 0:
				return CellStyle.Inherit(UsageStyle)
			default:
				return CellStyle
			}
		}).
		Headers(t.headers...).
		Rows(rows...).
		String()
}

var _ core.TableRenderer = (*CommandTable)(nil)
