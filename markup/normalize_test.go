package markup

import "testing"

func TestNormalizeBrTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Plain text", "hello", "hello"},
		{"Empty", "", ""},
		{"Simple br", "a<br>b", "a\nb"},
		{"Self-closing br", "a<br/>b", "a\nb"},
		{"Br with whitespace", "a<br   />b", "a\nb"},
		{"Uppercase br", "a<BR>b", "a\nb"},
		{"Mixed case br", "a<Br/>b", "a\nb"},
		{"Slash then space is not a br", "a<br/ >b", "a<br/ >b"},
		{"Escaped newline", `a\nb`, "a\nb"},
		{"Surrounding quotes", `"hello"`, "hello"},
		{"Bare quote collapses", `"`, ""},
		{"Inner quotes kept", `say "hi"`, `say "hi"`},
		{"Bold span", "**text**", "<b>text</b>"},
		{"Bold five stars", "*****", "<b>*</b>"},
		{"Unclosed bold stays literal", "**text", "**text"},
		{"Bold blocked by break tag", "**a<br>b** and ~~x<br>y~~", "**a\nb** and ~~x\ny~~"},
		{"Bold blocked by CR", "**a\rb** and ~~x\ry~~", "**a\rb** and ~~x\ry~~"},
		{"Bold blocked by LS and PS", "**a\u2028b** and ~~x\u2029y~~", "**a\u2028b** and ~~x\u2029y~~"},
		{"Italic span", "*a*", "<i>a</i>"},
		{"Italic rejected on spaces", "*a* 与 * a *", "<i>a</i> 与 * a *"},
		{"Italic rejected when empty", "**", "**"},
		{"Strikethrough span", "~~text~~", "<s>text</s>"},
		{"Strike five tildes", "~~~~~", "<s>~</s>"},
		{"Sub stripped", "H<sub>2</sub>O", "H2O"},
		{"Sup stripped", "x<sup>2</sup>", "x2"},
		{"Small and mark stripped", "<small>a</small><mark>b</mark>", "ab"},
		{"Strip tag case-insensitive", "H<SUB>2</SUB>O", "H2O"},
		{"Unknown tag literal", "a<xyz>b", "a<xyz>b"},
		{"Formatting tags pass through", "<b>x</b>", "<b>x</b>"},
		{"Multibyte copied intact", "测<br>试", "测\n试"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeBrTags(tt.input); got != tt.want {
				t.Errorf("NormalizeBrTags(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripFormattingTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Bold and italic", "<b>bold</b> <i>italic</i>", "bold italic"},
		{"Strong and em", "<strong>a</strong><em>b</em>", "ab"},
		{"Underline and del", "<u>a</u><del>b</del>", "ab"},
		{"Case-insensitive", "<B>a</B>", "a"},
		{"Trailing whitespace in tag", "<b   >a</b>", "a"},
		{"Slash after name is literal", "<b/>a", "<b/>a"},
		{"Unknown tag kept", "<table>a</table>", "<table>a</table>"},
		{"No tags", "plain", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripFormattingTags(tt.input); got != tt.want {
				t.Errorf("StripFormattingTags(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeXML(t *testing.T) {
	if got := EscapeXML(`& < > " '`); got != "&amp; &lt; &gt; &quot; &#39;" {
		t.Errorf("EscapeXML = %q", got)
	}
	if got := EscapeXML("plain"); got != "plain" {
		t.Errorf("EscapeXML(plain) = %q", got)
	}
}
