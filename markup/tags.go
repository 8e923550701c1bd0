// Package markup rewrites raw diagram labels into canonical inline
// formatting tags and parses those tags into styled runs. Only a fixed,
// small tag vocabulary is recognized; anything else is literal text.
package markup

import (
	"strings"
	"unicode/utf8"
)

// stripTags are removed entirely (tag deleted, content kept) during
// normalization.
var stripTags = []string{"sub", "sup", "small", "mark"}

// formattingTags toggle the four style flags. Order matters: the index of
// the matched name selects the flag (b/strong, i/em, u, s/del).
var formattingTags = []string{"b", "strong", "i", "em", "u", "s", "del"}

// xmlEscaper is built once at init and is safe for concurrent use.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeXML escapes the five XML special characters. The apostrophe becomes
// the numeric reference &#39;.
func EscapeXML(text string) string {
	return xmlEscaper.Replace(text)
}

// StripFormattingTags removes the recognized formatting tags (b, strong, i,
// em, u, s, del, open and close forms) and keeps everything else untouched.
func StripFormattingTags(text string) string {
	return removeSimpleTags(text, formattingTags)
}

// removeSimpleTags deletes tags matching the simple-tag grammar against the
// allow-list, copying everything else through one full character at a time.
func removeSimpleTags(input string, tags []string) string {
	var out strings.Builder
	out.Grow(len(input))

	i := 0
	for i < len(input) {
		if input[i] == '<' {
			if end, _, _, ok := parseSimpleTag(input, i, tags); ok {
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

// parseSimpleTag matches the grammar `<`, optional `/`, one or more ASCII
// letters compared case-insensitively against tags, optional ASCII
// whitespace, `>`. It returns the index just past the `>`, the allow-list
// index of the name, and whether the tag is a closing form.
func parseSimpleTag(input string, start int, tags []string) (end, tagIndex int, closing, ok bool) {
	if start >= len(input) || input[start] != '<' {
		return 0, 0, false, false
	}

	i := start + 1
	if i < len(input) && input[i] == '/' {
		closing = true
		i++
	}

	nameStart := i
	for i < len(input) && isASCIILetter(input[i]) {
		i++
	}
	if i == nameStart {
		return 0, 0, false, false
	}
	name := input[nameStart:i]

	tagIndex = -1
	for idx, tag := range tags {
		if strings.EqualFold(name, tag) {
			tagIndex = idx
			break
		}
	}
	if tagIndex < 0 {
		return 0, 0, false, false
	}

	for i < len(input) && isASCIISpace(input[i]) {
		i++
	}
	if i >= len(input) || input[i] != '>' {
		return 0, 0, false, false
	}

	return i + 1, tagIndex, closing, true
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isASCIISpace matches the byte-level whitespace set used by the tag
// grammar: space, tab, newline, form feed, carriage return. No vertical tab.
func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
