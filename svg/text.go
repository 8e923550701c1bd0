// Package svg composes SVG text fragments for diagram labels: styled
// tspan runs, vertically centered multi-line blocks, and optional
// background rectangles. Attribute strings are caller-supplied and
// inserted verbatim.
package svg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/biantaishabi2/beautiful-mermaid/markup"
)

const (
	// LineHeightRatio is the vertical advance between lines as a
	// fraction of font size.
	LineHeightRatio = 1.3
	// DefaultBaselineShift aligns a line's baseline to its anchor
	// point, as a fraction of font size.
	DefaultBaselineShift = 0.35
)

// RenderMultilineText returns a <text> element centered at (cx, cy). A
// single-line input becomes one text element with a dy offset; multiple
// lines become one text element holding a positioned <tspan> per line,
// with the first tspan shifted up so the block centers on cy and each
// later tspan advancing by one line height.
func RenderMultilineText(text string, cx, cy, fontSize float64, attrs string, baselineShift float64) string {
	lines := strings.Split(text, "\n")
	if len(lines) == 1 {
		dy := fontSize * baselineShift
		return fmt.Sprintf(`<text x="%s" y="%s" %s dy="%s">%s</text>`,
			num(cx), num(cy), attrs, num(dy), renderLineContent(text))
	}

	lineHeight := fontSize * LineHeightRatio
	firstDy := -((float64(len(lines)) - 1.0) / 2.0) * lineHeight
	firstDy += fontSize * baselineShift

	var tspans strings.Builder
	for index, line := range lines {
		dy := lineHeight
		if index == 0 {
			dy = firstDy
		}
		fmt.Fprintf(&tspans, `<tspan x="%s" dy="%s">%s</tspan>`,
			num(cx), num(dy), renderLineContent(line))
	}

	return fmt.Sprintf(`<text x="%s" y="%s" %s>%s</text>`,
		num(cx), num(cy), attrs, tspans.String())
}

// RenderMultilineTextWithBackground emits a background rectangle sized to
// the text block plus padding, centered at (cx, cy), followed by the text
// element so the rectangle draws underneath.
func RenderMultilineTextWithBackground(text string, cx, cy, textWidth, textHeight, fontSize, padding float64, textAttrs, bgAttrs string) string {
	bgWidth := textWidth + padding*2
	bgHeight := textHeight + padding*2
	rect := fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" %s />`,
		num(cx-bgWidth/2), num(cy-bgHeight/2), num(bgWidth), num(bgHeight), bgAttrs)
	textElement := RenderMultilineText(text, cx, cy, fontSize, textAttrs, DefaultBaselineShift)
	return rect + "\n" + textElement
}

// renderLineContent turns one line of canonically-tagged text into escaped
// markup. Lines without formatting tags are escaped as-is; tags that never
// change the visible style collapse away; otherwise each styled run is
// wrapped in a tspan carrying its style attributes.
func renderLineContent(line string) string {
	if !markup.ContainsFormatTag(line) {
		return markup.EscapeXML(line)
	}

	segments := markup.ParseInlineFormatting(line)
	if len(segments) == 0 {
		return ""
	}

	allPlain := true
	for _, segment := range segments {
		if !segment.Style.IsPlain() {
			allPlain = false
			break
		}
	}

	var out strings.Builder
	if allPlain {
		for _, segment := range segments {
			out.WriteString(markup.EscapeXML(segment.Text))
		}
		return out.String()
	}

	for _, segment := range segments {
		escaped := markup.EscapeXML(segment.Text)
		if segment.Style.IsPlain() {
			out.WriteString(escaped)
			continue
		}
		out.WriteString(`<tspan ` + styleAttrs(segment.Style) + `>` + escaped + `</tspan>`)
	}
	return out.String()
}

// styleAttrs renders the SVG presentation attributes for a style state.
// Underline is listed before line-through when both decorations apply.
func styleAttrs(style markup.StyleState) string {
	var attrs []string
	if style.Bold {
		attrs = append(attrs, `font-weight="bold"`)
	}
	if style.Italic {
		attrs = append(attrs, `font-style="italic"`)
	}
	var decorations []string
	if style.Underline {
		decorations = append(decorations, "underline")
	}
	if style.Strikethrough {
		decorations = append(decorations, "line-through")
	}
	if len(decorations) > 0 {
		attrs = append(attrs, `text-decoration="`+strings.Join(decorations, " ")+`"`)
	}
	return strings.Join(attrs, " ")
}

// num formats a coordinate the way the markup consumers expect: shortest
// decimal form that round-trips, never exponent notation.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
