package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lstsched/decision"
	"github.com/katalvlaran/lstsched/search"
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5B8DEF")).
			Padding(0, 1)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA")).Width(10)
	valueStyle = lipgloss.NewStyle().Bold(true)
)

// summaryBox renders the headline numbers of a run for terminal output.
func summaryBox(res *search.Result, opt *decision.Optimum) string {
	line := func(label string, v any) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(fmt.Sprint(v)))
	}
	lines := []string{
		line("run", res.RunID),
		line("greedy", res.Greedy.Makespan),
		line("deadline", res.Deadline()),
		line("makespan", res.Makespan),
		line("calls", res.Calls),
	}
	if opt != nil {
		lines = append(lines, line("optimum", opt.Makespan))
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
