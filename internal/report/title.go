package report

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

// markOffset is the width of the state mark, its space, and the "#", ":"
// and space around the issue number.
const markOffset = 5

// reservedWidth is the number of columns in front of the title.
func reservedWidth(number int) int {
	return markOffset + len(strings.TrimPrefix(strconv.Itoa(number), "-"))
}

// formatTitle fits a title into the columns left after the state mark and
// number label. Crop takes precedence over wrap. A title that fits, or that
// neither policy applies to, is emitted whole.
func formatTitle(cfg Config, r Renderer, title, url string, number int) string {
	reserved := reservedWidth(number)
	available := cfg.MaxLength - reserved
	width := runewidth.StringWidth(title)

	var text string
	switch {
	case cfg.Crop && width > available:
		text = cropTitle(r, title, available, width)
	case cfg.Wrap && width > available && available > 0:
		text = wrapTitle(r, title, available, reserved)
	default:
		text = r.Escape(title)
	}

	return r.TitleLink(text, url, number) + r.LineBreak()
}

// cropTitle truncates title to leave room for the renderer's ellipsis.
// The kept width never goes below zero, so a degenerate width yields the
// ellipsis alone.
func cropTitle(r Renderer, title string, available, width int) string {
	keep := min(max(available-r.EllipsisWidth(), 0), width)
	return r.Escape(runewidth.Truncate(title, keep, "")) + r.Ellipsis()
}

// wrapTitle greedily fills lines of at most available columns, breaking
// between words. A single word wider than the limit keeps its own line.
func wrapTitle(r Renderer, title string, available, reserved int) string {
	lines := strings.Split(wordwrap.String(title, available), "\n")
	for i, line := range lines {
		lines[i] = r.Escape(strings.TrimRight(line, " "))
	}
	return r.JoinWrapped(lines, reserved)
}
