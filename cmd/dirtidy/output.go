package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"dirtidy/internal/failures"
	"dirtidy/internal/organizer"
)

type summaryView struct {
	organizer.Summary
	Count int    `json:"count"`
	Error string `json:"error,omitempty"`
	Kind  string `json:"error_kind,omitempty"`
}

func newSummaryView(summary organizer.Summary, err error) summaryView {
	view := summaryView{Summary: summary, Count: summary.Count()}
	if view.Moves == nil {
		view.Moves = []organizer.Move{}
	}
	if err != nil {
		view.Error = err.Error()
		view.Kind = failures.Kind(err)
	}
	return view
}

func renderSummary(summary organizer.Summary, colorize bool) string {
	var b strings.Builder
	verb := "Organized"
	if summary.DryRun {
		verb = "Would organize"
	}
	fmt.Fprintf(&b, "%s %d file(s)\n", verb, summary.Count())
	if summary.Count() == 0 {
		return b.String()
	}

	rows := make([][]string, 0, len(summary.Moves))
	for _, m := range summary.Moves {
		final := m.Category + "/" + m.Final
		rows = append(rows, []string{m.Original, final, m.Category, yesNo(m.Renamed), humanize.Bytes(uint64(max(m.Size, 0)))})
	}
	b.WriteString(renderTableStyled(
		[]string{"File", "Destination", "Category", "Renamed", "Size"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
		colorize,
	))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Total: %s across %d categor%s", humanize.Bytes(uint64(max(summary.Bytes, 0))), len(summary.Categories), pluralY(len(summary.Categories)))
	if renamed := summary.Renamed(); renamed > 0 {
		fmt.Fprintf(&b, ", %d renamed to avoid collisions", renamed)
	}
	b.WriteString("\n")
	return b.String()
}

func pluralY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
