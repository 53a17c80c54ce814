package rename

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/notoriousjere/plex-tools/internal/show"
)

// PreviewMsg brackets every non-execute run so the user cannot mistake the
// report for applied changes.
const PreviewMsg = "\n*** PREVIEW -- NO CHANGES HAVE BEEN MADE ***"

const separator = "  -->  "

// Previewer renders the human-readable rename report. It only writes to its
// output; it never touches the filesystem.
type Previewer struct {
	w io.Writer
}

// NewPreviewer creates a previewer writing to w.
func NewPreviewer(w io.Writer) *Previewer {
	return &Previewer{w: w}
}

// Summary prints the season inventory, the active ignore lists and a sample
// of the naming scheme.
func (p *Previewer) Summary(sh *show.Show, ignoreNames, ignoreExts []string) {
	fmt.Fprintf(p.w, "\nFound %d season(s) in the following order:\n", len(sh.Seasons))
	for _, season := range sh.Seasons {
		fmt.Fprintf(p.w, "  [S%0*d] - %q\n", sh.Scheme.SeasonWidth, season.Number, season.Name)
	}

	if len(ignoreNames) > 0 {
		fmt.Fprintf(p.w, "\nIgnoring %d files and folders:\n", len(ignoreNames))
		for _, name := range ignoreNames {
			fmt.Fprintf(p.w, "  %s\n", name)
		}
	}

	if len(ignoreExts) > 0 {
		fmt.Fprintln(p.w, "\nIgnoring all files with these extensions:")
		for _, ext := range ignoreExts {
			fmt.Fprintf(p.w, "  .%s\n", ext)
		}
	}

	fmt.Fprintln(p.w, "\nNew episode naming scheme:")
	fmt.Fprintln(p.w, sh.Scheme.Sample())
}

// Render prints the two-column old-name/new-name table for every season.
// Column widths are the maximum basename lengths across all seasons, so the
// columns stay aligned over the whole report.
func (p *Previewer) Render(plan *Plan) {
	fmt.Fprintln(p.w, "\nFiles to rename:")

	oldWidth, newWidth := columnWidths(plan)
	totalWidth := oldWidth + newWidth + len(separator)
	bar := strings.Repeat("#", totalWidth)

	for _, season := range plan.Seasons {
		fmt.Fprintf(p.w, "\n%s\n", bar)
		fmt.Fprintf(p.w, " Season %d | %s | %d episodes\n", season.Number, season.Path, len(season.Actions))
		fmt.Fprintln(p.w, bar)
		fmt.Fprintf(p.w, "\n%-*s%s%s\n", oldWidth, "Current File Name:", strings.Repeat(" ", len(separator)), "New File Name:")
		for _, action := range season.Actions {
			fmt.Fprintf(p.w, "%-*s%s%-*s\n",
				oldWidth, filepath.Base(action.OldPath),
				separator,
				newWidth, filepath.Base(action.NewPath),
			)
		}
	}
}

// columnWidths returns the widest old and new basename over the whole plan.
func columnWidths(plan *Plan) (oldWidth, newWidth int) {
	for _, season := range plan.Seasons {
		for _, action := range season.Actions {
			if n := len(filepath.Base(action.OldPath)); n > oldWidth {
				oldWidth = n
			}
			if n := len(filepath.Base(action.NewPath)); n > newWidth {
				newWidth = n
			}
		}
	}
	return oldWidth, newWidth
}
