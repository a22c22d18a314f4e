package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/joshuapare/reginno/pkg/reginno"
)

// valueTypeOrder lists Inno value types in the order the table shows them.
var valueTypeOrder = []string{"string", "expandsz", "multisz", "dword", "qword", "binary"}

// renderStats formats a run summary as a two-column table. Value types
// with no entries are left out.
func renderStats(stats *reginno.Stats) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Record", "Count"})

	tw.AppendRow(table.Row{"keys", strconv.Itoa(stats.Keys)})
	for _, tag := range valueTypeOrder {
		if n := stats.Values[tag]; n > 0 {
			tw.AppendRow(table.Row{tag, strconv.Itoa(n)})
		}
	}
	tw.AppendSeparator()
	tw.AppendRow(table.Row{"entries written", strconv.Itoa(stats.Directives)})
	tw.AppendRow(table.Row{"skipped lines", strconv.Itoa(stats.Skipped)})
	tw.AppendRow(table.Row{"unsupported", strconv.Itoa(stats.Unsupported)})
	if stats.UnknownHives > 0 {
		tw.AppendRow(table.Row{"unknown hives", strconv.Itoa(stats.UnknownHives)})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
