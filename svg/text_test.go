package svg

import (
	"math"
	"strings"
	"testing"
)

func TestRenderMultilineTextSingleLine(t *testing.T) {
	got := RenderMultilineText("hello", 100, 80, 16, `text-anchor="middle"`, 0.35)
	want := `<text x="100" y="80" text-anchor="middle" dy="5.6">hello</text>`
	if got != want {
		t.Errorf("RenderMultilineText = %q, want %q", got, want)
	}
}

func TestRenderMultilineTextEscapesContent(t *testing.T) {
	got := RenderMultilineText("a & b < c", 0, 0, 16, "", 0.35)
	if !strings.Contains(got, "a &amp; b &lt; c") {
		t.Errorf("content not escaped: %q", got)
	}
}

func TestRenderMultilineTextThreeLines(t *testing.T) {
	got := RenderMultilineText("line1\nline2\nline3", 100, 80, 16, `text-anchor="middle"`, 0.35)

	// Block of three 16pt lines centers by shifting the first tspan up
	// one full line height minus the baseline shift.
	if !strings.Contains(got, `dy="-15.200000000000001"`) {
		t.Errorf("first tspan offset missing, got %q", got)
	}
	if n := strings.Count(got, `dy="20.8"`); n != 2 {
		t.Errorf("line-height advances = %d, want 2 in %q", n, got)
	}
	if n := strings.Count(got, `<tspan x="100"`); n != 3 {
		t.Errorf("tspan count = %d, want 3", n)
	}
	if !strings.HasPrefix(got, `<text x="100" y="80" text-anchor="middle">`) {
		t.Errorf("unexpected text element prefix: %q", got)
	}

	// Numeric check against the centering arithmetic.
	lineHeight := 16 * 1.3
	firstDy := -((3.0-1.0)/2.0)*lineHeight + 16*0.35
	if math.Abs(firstDy-(-15.2)) > 1e-9 {
		t.Errorf("firstDy = %v, want -15.2 within 1e-9", firstDy)
	}
}

func TestRenderMultilineTextStyledRuns(t *testing.T) {
	got := RenderMultilineText("<b>bold</b> plain", 0, 0, 16, "", 0.35)

	if !strings.Contains(got, `<tspan font-weight="bold">bold</tspan>`) {
		t.Errorf("bold run missing: %q", got)
	}
	if !strings.Contains(got, "</tspan> plain") {
		t.Errorf("plain run should be unwrapped: %q", got)
	}
}

func TestRenderMultilineTextDecorations(t *testing.T) {
	got := RenderMultilineText("<u><s>x</s></u>", 0, 0, 16, "", 0.35)
	if !strings.Contains(got, `text-decoration="underline line-through"`) {
		t.Errorf("decorations missing or misordered: %q", got)
	}

	got = RenderMultilineText("<b><i>x</i></b>", 0, 0, 16, "", 0.35)
	if !strings.Contains(got, `font-weight="bold" font-style="italic"`) {
		t.Errorf("bold+italic attributes missing: %q", got)
	}
}

func TestRenderMultilineTextCollapsesNoopTags(t *testing.T) {
	// Tags that open and close without covering text leave only the
	// escaped plain runs behind.
	got := RenderMultilineText("<b></b>before", 0, 0, 16, "", 0.35)
	if strings.Contains(got, "tspan") && strings.Contains(got, "font-weight") {
		t.Errorf("noop tags should collapse: %q", got)
	}
	if !strings.Contains(got, ">before</text>") {
		t.Errorf("plain content missing: %q", got)
	}
}

func TestRenderMultilineTextWithBackground(t *testing.T) {
	got := RenderMultilineTextWithBackground("label", 50, 40, 30, 20, 16, 4,
		`fill="black"`, `fill="white"`)

	parts := strings.SplitN(got, "\n", 2)
	if len(parts) != 2 {
		t.Fatalf("expected rect and text separated by newline, got %q", got)
	}
	wantRect := `<rect x="31" y="26" width="38" height="28" fill="white" />`
	if parts[0] != wantRect {
		t.Errorf("rect = %q, want %q", parts[0], wantRect)
	}
	if !strings.HasPrefix(parts[1], `<text x="50" y="40" fill="black" dy="5.6">`) {
		t.Errorf("text element = %q", parts[1])
	}
}

func TestRenderMultilineTextVerbatimAttrs(t *testing.T) {
	attrs := `class="<unvalidated>"`
	got := RenderMultilineText("x", 0, 0, 16, attrs, 0.35)
	if !strings.Contains(got, attrs) {
		t.Errorf("attrs must be inserted verbatim: %q", got)
	}
}
