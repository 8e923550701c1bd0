package textmetrics

import (
	"regexp"
	"strings"
)

const (
	// LineHeightRatio is the line height as a fraction of font size.
	LineHeightRatio = 1.3
	// minPaddingRatio is the fixed horizontal padding added to every
	// measured line, as a fraction of font size.
	minPaddingRatio = 0.15
)

// Width classes for the heuristic table. veryWideChars is checked before
// wideChars, so the W and M entries of wideChars never match.
const (
	veryWideChars   = "WM"
	wideChars       = "WMwm@%"
	narrowChars     = "iltfjI1!|.,:;'"
	semiNarrowPunct = "()[]{}/\\-\"`"
)

// formatTagPattern matches the recognized inline formatting tags so they can
// be stripped before measuring. Compiled once at init and read-only after.
var formatTagPattern = regexp.MustCompile(`(?i)</?(?:b|strong|i|em|u|s|del)\s*>`)

// MultilineMetrics is the measured bounding box of a text block together
// with its per-line breakdown.
type MultilineMetrics struct {
	Width      float64
	Height     float64
	Lines      []string
	LineHeight float64
}

// CharWidth returns the approximate advance width of a single character in
// abstract units, where an average Latin letter is 1.0. First matching rule
// wins.
func CharWidth(r rune) float64 {
	switch Classify(r) {
	case Combining:
		return 0.0
	case FullWidth, Emoji:
		return 2.0
	}

	switch {
	case r == ' ':
		return 0.3
	case strings.ContainsRune(veryWideChars, r):
		return 1.5
	case strings.ContainsRune(wideChars, r):
		return 1.2
	case strings.ContainsRune(narrowChars, r):
		return 0.4
	case strings.ContainsRune(semiNarrowPunct, r):
		return 0.5
	case r == 'r':
		return 0.8
	case r >= 'A' && r <= 'Z':
		return 1.2
	case r >= '0' && r <= '9':
		return 1.0
	default:
		return 1.0
	}
}

// MeasureTextWidth estimates the rendered width of a single line of text at
// the given font size and weight.
func MeasureTextWidth(text string, fontSize, fontWeight float64) float64 {
	total := 0.0
	for _, r := range text {
		total += CharWidth(r)
	}
	return total*fontSize*baseRatio(fontWeight) + fontSize*minPaddingRatio
}

// MeasureMultilineText measures a text block: lines split on line feed (no
// trimming; no line feed means one line equal to the whole string), each
// line measured after stripping formatting tags. Width is the widest line,
// height is lineCount x lineHeight.
func MeasureMultilineText(text string, fontSize, fontWeight float64) MultilineMetrics {
	lines := strings.Split(text, "\n")
	lineHeight := fontSize * LineHeightRatio

	maxWidth := 0.0
	for _, line := range lines {
		plain := formatTagPattern.ReplaceAllString(line, "")
		if w := MeasureTextWidth(plain, fontSize, fontWeight); w > maxWidth {
			maxWidth = w
		}
	}

	return MultilineMetrics{
		Width:      maxWidth,
		Height:     float64(len(lines)) * lineHeight,
		Lines:      lines,
		LineHeight: lineHeight,
	}
}

// baseRatio maps a CSS-style font weight to the average width-per-unit
// ratio used by the heuristic.
func baseRatio(fontWeight float64) float64 {
	switch {
	case fontWeight >= 600:
		return 0.60
	case fontWeight >= 500:
		return 0.57
	default:
		return 0.54
	}
}
