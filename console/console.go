package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/golangdaddy/kart/catalog"
)

var (
	colorTitle = color.New(color.FgYellow, color.Bold)
	colorKey   = color.New(color.FgCyan)
	colorWin   = color.New(color.FgGreen, color.Bold)
	colorInfo  = color.New(color.FgHiBlue)
	colorAlert = color.New(color.FgRed)
)

// PrintHelp writes the steering instructions
func PrintHelp(w io.Writer) {
	colorTitle.Fprintln(w, "*** Mario Kart ***")
	fmt.Fprintln(w, "Press 'a' to turn the car left and 'd' to turn the car right.")
	fmt.Fprint(w, "Also: ")
	colorKey.Fprint(w, "A , <")
	fmt.Fprint(w, " for left, ")
	colorKey.Fprint(w, "D . >")
	fmt.Fprintln(w, " for right, Esc to quit.")
	fmt.Fprintln(w, "Stay between the walls; every clean stretch makes the car faster.")
}

// PrintSummary writes the result of a finished race
func PrintSummary(w io.Writer, seconds int64, cycles int) {
	colorWin.Fprintln(w, "YOU WIN!")
	colorInfo.Fprintf(w, "Your time was %d seconds! (%d cycles)\n", seconds, cycles)
}

// PrintAbandoned writes the note shown when the player quits mid-race
func PrintAbandoned(w io.Writer, cycles int) {
	colorAlert.Fprintf(w, "Race abandoned after %d cycles.\n", cycles)
}

// PrintCatalog lists the registered games
func PrintCatalog(w io.Writer, entries []catalog.Entry) {
	colorTitle.Fprintln(w, "*** Games ***")
	if len(entries) == 0 {
		fmt.Fprintln(w, "No games registered")
		return
	}
	for _, e := range entries {
		colorKey.Fprintf(w, "%2d  %-10s", e.ID, e.Name)
		fmt.Fprintf(w, " %s\n", e.Category)
	}
}
