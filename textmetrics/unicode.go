// Package textmetrics estimates text dimensions for diagram labels using a
// calibrated per-character width heuristic. It substitutes for real font
// metrics: widths are approximations tuned against rendered output, not
// values read from font files.
package textmetrics

import (
	"sync"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Classification is the per-character Unicode category used by the width
// heuristic.
type Classification int

const (
	Plain Classification = iota
	Combining
	FullWidth
	Emoji
)

// Classify categorizes a single rune. Combining marks take priority over
// everything else; fullwidth takes priority over emoji (both score the same
// width, so the distinction only matters for callers inspecting the class).
func Classify(r rune) Classification {
	switch {
	case IsCombiningMark(r):
		return Combining
	case IsFullwidth(r):
		return FullWidth
	case IsEmoji(r):
		return Emoji
	default:
		return Plain
	}
}

// IsCombiningMark reports whether r is a combining diacritical mark.
func IsCombiningMark(r rune) bool {
	return (r >= 0x0300 && r <= 0x036F) || // Combining diacritical marks
		(r >= 0x1AB0 && r <= 0x1AFF) || // Combining diacritical marks extended
		(r >= 0x1DC0 && r <= 0x1DFF) || // Combining diacritical marks supplement
		(r >= 0x20D0 && r <= 0x20FF) || // Combining diacritical marks for symbols
		(r >= 0xFE20 && r <= 0xFE2F) // Combining half marks
}

// IsFullwidth reports whether r is conventionally rendered at double the
// width of a Latin letter. Every supplementary-plane codepoint at or above
// U+20000 counts as fullwidth.
func IsFullwidth(r rune) bool {
	return (r >= 0x1100 && r <= 0x115F) || // Hangul Jamo
		(r >= 0x2E80 && r <= 0x2EFF) || // CJK Radicals Supplement
		(r >= 0x2F00 && r <= 0x2FDF) || // Kangxi Radicals
		(r >= 0x3000 && r <= 0x303F) || // CJK Symbols and Punctuation
		(r >= 0x3040 && r <= 0x309F) || // Hiragana
		(r >= 0x30A0 && r <= 0x30FF) || // Katakana
		(r >= 0x3100 && r <= 0x312F) || // Bopomofo
		(r >= 0x3130 && r <= 0x318F) || // Hangul Compatibility Jamo
		(r >= 0x3190 && r <= 0x31FF) || // Kanbun through Katakana Extensions
		(r >= 0x3200 && r <= 0x33FF) || // Enclosed CJK Letters, CJK Compatibility
		(r >= 0x3400 && r <= 0x4DBF) || // CJK Unified Ideographs Extension A
		(r >= 0x4E00 && r <= 0x9FFF) || // CJK Unified Ideographs
		(r >= 0xAC00 && r <= 0xD7AF) || // Hangul Syllables
		(r >= 0xF900 && r <= 0xFAFF) || // CJK Compatibility Ideographs
		(r >= 0xFF00 && r <= 0xFF60) || // Fullwidth Forms
		(r >= 0xFFE0 && r <= 0xFFE6) || // Fullwidth Signs
		r >= 0x20000
}

// IsEmoji reports whether r carries the Emoji_Presentation or
// Extended_Pictographic Unicode property.
func IsEmoji(r rune) bool {
	return unicode.Is(emojiTable(), r)
}

// emojiTable is built once on first use and never mutated afterwards, so it
// is safe to share across goroutines.
var emojiTable = sync.OnceValue(func() *unicode.RangeTable {
	return rangetable.Merge(emojiPresentation, extendedPictographic)
})

// emojiPresentation covers Emoji_Presentation=Yes codepoints: characters
// that render as emoji by default, including the regional indicators.
var emojiPresentation = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x231A, 0x231B, 1}, // watch, hourglass
		{0x23E9, 0x23EC, 1}, // media controls
		{0x23F0, 0x23F0, 1},
		{0x23F3, 0x23F3, 1},
		{0x25FD, 0x25FE, 1},
		{0x2614, 0x2615, 1},
		{0x2648, 0x2653, 1}, // zodiac
		{0x267F, 0x267F, 1},
		{0x2693, 0x2693, 1},
		{0x26A1, 0x26A1, 1},
		{0x26AA, 0x26AB, 1},
		{0x26BD, 0x26BE, 1},
		{0x26C4, 0x26C5, 1},
		{0x26CE, 0x26CE, 1},
		{0x26D4, 0x26D4, 1},
		{0x26EA, 0x26EA, 1},
		{0x26F2, 0x26F3, 1},
		{0x26F5, 0x26F5, 1},
		{0x26FA, 0x26FA, 1},
		{0x26FD, 0x26FD, 1},
		{0x2705, 0x2705, 1},
		{0x270A, 0x270B, 1},
		{0x2728, 0x2728, 1},
		{0x274C, 0x274C, 1},
		{0x274E, 0x274E, 1},
		{0x2753, 0x2755, 1},
		{0x2757, 0x2757, 1},
		{0x2795, 0x2797, 1},
		{0x27B0, 0x27B0, 1},
		{0x27BF, 0x27BF, 1},
		{0x2B1B, 0x2B1C, 1},
		{0x2B50, 0x2B50, 1},
		{0x2B55, 0x2B55, 1},
	},
	R32: []unicode.Range32{
		{0x1F1E6, 0x1F1FF, 1}, // regional indicators
	},
}

// extendedPictographic covers Extended_Pictographic=Yes codepoints.
var extendedPictographic = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x00A9, 0x00A9, 1}, // copyright
		{0x00AE, 0x00AE, 1}, // registered
		{0x203C, 0x203C, 1},
		{0x2049, 0x2049, 1},
		{0x2122, 0x2122, 1}, // trade mark
		{0x2139, 0x2139, 1},
		{0x2194, 0x2199, 1}, // arrows
		{0x21A9, 0x21AA, 1},
		{0x231A, 0x231B, 1},
		{0x2328, 0x2328, 1},
		{0x23CF, 0x23CF, 1},
		{0x23E9, 0x23F3, 1},
		{0x23F8, 0x23FA, 1},
		{0x24C2, 0x24C2, 1},
		{0x25AA, 0x25AB, 1},
		{0x25B6, 0x25B6, 1},
		{0x25C0, 0x25C0, 1},
		{0x25FB, 0x25FE, 1},
		{0x2600, 0x2605, 1}, // weather and stars
		{0x2607, 0x2612, 1},
		{0x2614, 0x2685, 1}, // misc symbols
		{0x2690, 0x2705, 1},
		{0x2708, 0x2712, 1},
		{0x2714, 0x2714, 1},
		{0x2716, 0x2716, 1},
		{0x271D, 0x271D, 1},
		{0x2721, 0x2721, 1},
		{0x2728, 0x2728, 1},
		{0x2733, 0x2734, 1},
		{0x2744, 0x2744, 1},
		{0x2747, 0x2747, 1},
		{0x274C, 0x274C, 1},
		{0x274E, 0x274E, 1},
		{0x2753, 0x2755, 1},
		{0x2757, 0x2757, 1},
		{0x2763, 0x2767, 1},
		{0x2795, 0x2797, 1},
		{0x27A1, 0x27A1, 1},
		{0x27B0, 0x27B0, 1},
		{0x27BF, 0x27BF, 1},
		{0x2934, 0x2935, 1},
		{0x2B05, 0x2B07, 1},
		{0x2B1B, 0x2B1C, 1},
		{0x2B50, 0x2B50, 1},
		{0x2B55, 0x2B55, 1},
		{0x3030, 0x3030, 1},
		{0x303D, 0x303D, 1},
		{0x3297, 0x3297, 1},
		{0x3299, 0x3299, 1},
	},
	R32: []unicode.Range32{
		{0x1F000, 0x1F0FF, 1}, // mahjong, dominoes, playing cards
		{0x1F10D, 0x1F10F, 1},
		{0x1F12F, 0x1F12F, 1},
		{0x1F16C, 0x1F171, 1},
		{0x1F17E, 0x1F17F, 1},
		{0x1F18E, 0x1F18E, 1},
		{0x1F191, 0x1F19A, 1},
		{0x1F1AD, 0x1F1E5, 1},
		{0x1F201, 0x1F20F, 1},
		{0x1F21A, 0x1F21A, 1},
		{0x1F22F, 0x1F22F, 1},
		{0x1F232, 0x1F23A, 1},
		{0x1F23C, 0x1F23F, 1},
		{0x1F249, 0x1F3FA, 1}, // enclosed ideographs through misc pictographs
		{0x1F400, 0x1F53D, 1}, // animals, people, objects
		{0x1F546, 0x1F64F, 1},
		{0x1F680, 0x1F6FF, 1}, // transport
		{0x1F774, 0x1F77F, 1},
		{0x1F7D5, 0x1F7FF, 1},
		{0x1F80C, 0x1F80F, 1},
		{0x1F848, 0x1F84F, 1},
		{0x1F85A, 0x1F85F, 1},
		{0x1F888, 0x1F88F, 1},
		{0x1F8AE, 0x1F8FF, 1},
		{0x1F90C, 0x1F93A, 1},
		{0x1F93C, 0x1F945, 1},
		{0x1F947, 0x1FAFF, 1},
		{0x1FC00, 0x1FFFD, 1},
	},
}
