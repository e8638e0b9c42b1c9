package logging

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderLevelTable returns the human-readable table of all levels.
func RenderLevelTable() string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle("Logging Levels")
	tw.AppendHeader(table.Row{"Rank", "Glyph", "Level", "Badge"})
	for _, level := range Levels() {
		tw.AppendRow(table.Row{int(level.Rank), level.Glyph, level.Name, mainBadges[level.Rank].text})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

// PrintLevelInfo writes the level table to w. It is safe to call before a
// sink is registered.
func PrintLevelInfo(w io.Writer) {
	fmt.Fprintln(w, RenderLevelTable())
}

// PrintProcessLogLevelInfo writes the level table to the default facade's
// operator console.
func PrintProcessLogLevelInfo() {
	f := Default()
	f.mu.Lock()
	defer f.mu.Unlock()
	PrintLevelInfo(f.console)
}
