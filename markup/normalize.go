package markup

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeBrTags rewrites a raw label into canonical inline formatting:
// surrounding quotes stripped, <br> variants and literal \n escapes turned
// into line feeds, strip-only tags removed, and markdown bold, italic and
// strikethrough spans converted to <b>, <i> and <s> tags. Each stage
// consumes the previous stage's output. Malformed markup degrades to
// literal text; the function is total over its input.
func NormalizeBrTags(label string) string {
	unquoted := stripSurroundingQuotes(label)
	withBreaks := strings.ReplaceAll(replaceBrTags(unquoted), `\n`, "\n")
	stripped := removeSimpleTags(withBreaks, stripTags)
	withBold := replaceMarkdownPair(stripped, "**", "<b>", "</b>")
	withItalic := replaceMarkdownItalic(withBold)
	return replaceMarkdownPair(withItalic, "~~", "<s>", "</s>")
}

// stripSurroundingQuotes removes one layer of double quotes if the whole
// input is quote-delimited. A bare `"` collapses to the empty string.
func stripSurroundingQuotes(input string) string {
	if strings.HasPrefix(input, `"`) && strings.HasSuffix(input, `"`) {
		if len(input) <= 1 {
			return ""
		}
		return input[1 : len(input)-1]
	}
	return input
}

// replaceBrTags substitutes a line feed for every line-break tag.
func replaceBrTags(input string) string {
	var out strings.Builder
	out.Grow(len(input))

	i := 0
	for i < len(input) {
		if input[i] == '<' {
			if end, ok := parseBrTag(input, i); ok {
				out.WriteByte('\n')
				i = end
				continue
			}
		}
		r, size := utf8.DecodeRuneInString(input[i:])
		out.WriteRune(r)
		i += size
	}

	return out.String()
}

// parseBrTag matches `<br>`, `<br/>` and `<br   />` case-insensitively.
// Whitespace is allowed before the optional slash, but once the slash is
// consumed the next character must be `>`: `<br/ >` is not a break tag.
func parseBrTag(input string, start int) (end int, ok bool) {
	if start >= len(input) || input[start] != '<' {
		return 0, false
	}

	i := start + 1
	if i >= len(input) || lowerByte(input[i]) != 'b' {
		return 0, false
	}
	i++
	if i >= len(input) || lowerByte(input[i]) != 'r' {
		return 0, false
	}
	i++

	for i < len(input) && isASCIISpace(input[i]) {
		i++
	}
	if i < len(input) && input[i] == '/' {
		i++
	}

	if i >= len(input) || input[i] != '>' {
		return 0, false
	}
	return i + 1, true
}

func lowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// replaceMarkdownPair converts marker-delimited spans (** or ~~) to the
// given tag pair. The closing marker is searched only up to the next line
// terminator; a failed match leaves the opening marker literal and resumes
// scanning one character later.
func replaceMarkdownPair(input, marker, openTag, closeTag string) string {
	var out strings.Builder
	out.Grow(len(input))

	cursor := 0
	for cursor < len(input) {
		rel := strings.Index(input[cursor:], marker)
		if rel < 0 {
			out.WriteString(input[cursor:])
			break
		}
		start := cursor + rel
		contentStart := start + len(marker)
		if contentStart >= len(input) {
			out.WriteString(input[cursor:])
			break
		}

		// The closing marker may not begin inside the first content
		// character, so the search starts after it.
		_, firstSize := utf8.DecodeRuneInString(input[contentStart:])
		searchFrom := contentStart + firstSize
		searchLimit := len(input)
		if lt := indexLineTerminator(input, contentStart); lt >= 0 {
			searchLimit = lt
		}

		if searchFrom > searchLimit {
			out.WriteString(input[cursor : start+1])
			cursor = start + 1
			continue
		}

		if rel2 := strings.Index(input[searchFrom:searchLimit], marker); rel2 >= 0 {
			end := searchFrom + rel2
			out.WriteString(input[cursor:start])
			out.WriteString(openTag)
			out.WriteString(input[contentStart:end])
			out.WriteString(closeTag)
			cursor = end + len(marker)
		} else {
			out.WriteString(input[cursor : start+1])
			cursor = start + 1
		}
	}

	return out.String()
}

// replaceMarkdownItalic converts single-asterisk spans to <i> tags. A `*`
// not adjacent to another `*` opens a candidate; the span is accepted only
// if the inner text is non-empty, free of `*`, and neither starts nor ends
// with whitespace. Rejected candidates stay literal.
func replaceMarkdownItalic(input string) string {
	var out strings.Builder
	out.Grow(len(input))

	cursor := 0
	i := 0
	for i < len(input) {
		if input[i] != '*' {
			i++
			continue
		}
		if i > 0 && input[i-1] == '*' {
			i++
			continue
		}
		if i+1 >= len(input) || input[i+1] == '*' {
			i++
			continue
		}

		end := i + 1
		for end < len(input) && input[end] != '*' {
			end++
		}
		if end >= len(input) {
			break
		}
		if end+1 < len(input) && input[end+1] == '*' {
			i++
			continue
		}

		inner := input[i+1 : end]
		if !isValidItalicInner(inner) {
			i++
			continue
		}

		out.WriteString(input[cursor:i])
		out.WriteString("<i>")
		out.WriteString(inner)
		out.WriteString("</i>")
		cursor = end + 1
		i = end + 1
	}

	out.WriteString(input[cursor:])
	return out.String()
}

func isValidItalicInner(inner string) bool {
	if inner == "" || strings.ContainsRune(inner, '*') {
		return false
	}
	first, _ := utf8.DecodeRuneInString(inner)
	last, _ := utf8.DecodeLastRuneInString(inner)
	return !unicode.IsSpace(first) && !unicode.IsSpace(last)
}

// indexLineTerminator returns the byte index of the first line terminator
// (LF, CR, U+2028, U+2029) at or after from, or -1.
func indexLineTerminator(s string, from int) int {
	for i, r := range s[from:] {
		switch r {
		case '\n', '\r', '\u2028', '\u2029':
			return from + i
		}
	}
	return -1
}
