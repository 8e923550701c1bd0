package canvas

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// MeasureText returns the display width of a string in terminal cells.
// Unlike the abstract-unit estimator in textmetrics, this is the integer
// cell model terminals actually use.
func MeasureText(text string) int {
	return runewidth.StringWidth(text)
}

// WrapText wraps text at word boundaries so no line exceeds maxWidth
// terminal cells. A single word wider than maxWidth gets its own line and
// may overflow.
func WrapText(text string, maxWidth int) []string {
	if maxWidth <= 0 {
		return nil
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{}
	}

	var lines []string
	var current strings.Builder
	currentWidth := 0

	for _, word := range words {
		wordWidth := runewidth.StringWidth(word)

		if currentWidth == 0 || currentWidth+1+wordWidth <= maxWidth {
			if currentWidth > 0 {
				current.WriteByte(' ')
				currentWidth++
			}
			current.WriteString(word)
			currentWidth += wordWidth
			continue
		}

		lines = append(lines, current.String())
		current.Reset()
		current.WriteString(word)
		currentWidth = wordWidth
	}

	if current.Len() > 0 {
		lines = append(lines, current.String())
	}

	return lines
}

// TruncateToWidth cuts text so its display width does not exceed maxWidth,
// breaking only at grapheme cluster boundaries so combining sequences and
// multi-codepoint emoji stay intact.
func TruncateToWidth(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	var out strings.Builder
	width := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		clusterWidth := runewidth.StringWidth(cluster)
		if width+clusterWidth > maxWidth {
			break
		}
		out.WriteString(cluster)
		width += clusterWidth
	}
	return out.String()
}

// FitText truncates text to maxWidth cells, replacing the cut tail with
// ellipsis when it does not fit.
func FitText(text string, maxWidth int, ellipsis string) string {
	if runewidth.StringWidth(text) <= maxWidth {
		return text
	}

	ellipsisWidth := runewidth.StringWidth(ellipsis)
	if maxWidth <= ellipsisWidth {
		return TruncateToWidth(text, maxWidth)
	}

	return TruncateToWidth(text, maxWidth-ellipsisWidth) + ellipsis
}
