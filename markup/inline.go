package markup

import "unicode/utf8"

// StyleState is the set of formatting flags active at a scan position.
// The four flags toggle independently, so a run can be bold and underlined
// and struck-through at once.
type StyleState struct {
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
}

// IsPlain reports whether no style flag is set.
func (s StyleState) IsPlain() bool {
	return !s.Bold && !s.Italic && !s.Underline && !s.Strikethrough
}

// StyledSegment is a run of plain text under one style state.
type StyledSegment struct {
	Text  string
	Style StyleState
}

// formatTag identifies which style flag a formatting tag toggles.
type formatTag int

const (
	tagBold formatTag = iota
	tagItalic
	tagUnderline
	tagStrikethrough
)

// parseFormatTag matches a formatting tag at start and maps its name to the
// flag it toggles (strong is b, em is i, del is s).
func parseFormatTag(input string, start int) (end int, tag formatTag, closing, ok bool) {
	end, tagIndex, closing, ok := parseSimpleTag(input, start, formattingTags)
	if !ok {
		return 0, 0, false, false
	}
	switch tagIndex {
	case 0, 1:
		tag = tagBold
	case 2, 3:
		tag = tagItalic
	case 4:
		tag = tagUnderline
	default:
		tag = tagStrikethrough
	}
	return end, tag, closing, true
}

// ContainsFormatTag reports whether line holds at least one recognized
// formatting tag.
func ContainsFormatTag(line string) bool {
	i := 0
	for i < len(line) {
		if line[i] == '<' {
			if _, _, _, ok := parseFormatTag(line, i); ok {
				return true
			}
		}
		_, size := utf8.DecodeRuneInString(line[i:])
		i += size
	}
	return false
}

// ParseInlineFormatting segments one line of canonically-tagged text into
// styled runs. Concatenating the runs' texts reproduces the line with its
// tags stripped.
func ParseInlineFormatting(line string) []StyledSegment {
	var segments []StyledSegment
	var style StyleState

	lastIndex := 0
	i := 0
	for i < len(line) {
		if line[i] == '<' {
			if end, tag, closing, ok := parseFormatTag(line, i); ok {
				if i > lastIndex {
					segments = append(segments, StyledSegment{
						Text:  line[lastIndex:i],
						Style: style,
					})
				}
				switch tag {
				case tagBold:
					style.Bold = !closing
				case tagItalic:
					style.Italic = !closing
				case tagUnderline:
					style.Underline = !closing
				case tagStrikethrough:
					style.Strikethrough = !closing
				}
				lastIndex = end
				i = end
				continue
			}
		}
		_, size := utf8.DecodeRuneInString(line[i:])
		i += size
	}

	if lastIndex < len(line) {
		segments = append(segments, StyledSegment{
			Text:  line[lastIndex:],
			Style: style,
		})
	}

	return segments
}
