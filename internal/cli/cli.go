// Package cli holds the offline toxmanager commands. They run over the demo
// roster and print to the command's output
package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"toxmanager/internal/core/roster"
)

var statusColors = map[roster.Status]*color.Color{
	roster.StatusActive:    color.New(color.FgHiGreen),
	roster.StatusOnLeave:   color.New(color.FgCyan),
	roster.StatusPending:   color.New(color.FgYellow),
	roster.StatusSuspended: color.New(color.FgRed),
}

// statusLabel renders the display label in the status colour
func statusLabel(s roster.Status) string {
	if c, ok := statusColors[s]; ok {
		return c.Sprint(s.Label())
	}
	return s.Label()
}

func table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func row(tw *tabwriter.Writer, cols ...any) {
	for i, c := range cols {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, c)
	}
	fmt.Fprintln(tw)
}
