package render

import (
	"html"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdown_HeadingAndEmphasis(t *testing.T) {
	got := Markdown("# Title\n**bold** and *italic*")
	assert.Equal(t, "<h1>Title</h1><strong>bold</strong> and <em>italic</em>", got)
	assert.NotContains(t, got, "<em><em>")
}

func TestMarkdown_HeadingLevels(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"## Sub", "<h2>Sub</h2>"},
		{"###### Six", "<h6>Six</h6>"},
		{"####### Seven", "####### Seven"},
		{"#NoSpace", "#NoSpace"},
		{"# ", "<h1></h1>"},
		{"# *Lead* <b>", "<h1><em>Lead</em> &lt;b&gt;</h1>"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Markdown(tt.in))
		})
	}
}

func TestMarkdown_Table(t *testing.T) {
	got := Markdown("| a | b |\n|---|---|\n| 1 | 2 |")
	want := `<table class="markdown-table">` +
		"<thead><tr><th>a</th><th>b</th></tr></thead>" +
		"<tbody><tr><td>1</td><td>2</td></tr></tbody>" +
		"</table>"
	assert.Equal(t, want, got)
	assert.NotContains(t, got, "---")
}

func TestMarkdown_TableAlignedSeparatorAndInlineCells(t *testing.T) {
	got := Markdown("| Name | Notes |\n|:---|---:|\n| **Go** | `fast` |\n| C | *old* |\nafter")
	assert.Equal(t, `<table class="markdown-table">`+
		"<thead><tr><th>Name</th><th>Notes</th></tr></thead>"+
		"<tbody><tr><td><strong>Go</strong></td><td><code>fast</code></td></tr>"+
		"<tr><td>C</td><td><em>old</em></td></tr></tbody></table>after", got)
}

func TestMarkdown_DiagramBlock(t *testing.T) {
	got := Markdown("-----\n+---+\n===>")
	assert.Equal(t, "<pre class=\"ascii-diagram\">-----\n+---+\n===&gt;</pre>", got)
}

func TestMarkdown_DiagramInteriorIsVerbatim(t *testing.T) {
	got := Markdown("*****\n* * *")
	assert.Equal(t, "<pre class=\"ascii-diagram\">*****\n* * *</pre>", got)
	assert.NotContains(t, got, "<em>")
	assert.NotContains(t, got, "<li>")
}

func TestMarkdown_DiagramBeatsTable(t *testing.T) {
	src := "+-----+-----+\n|     |     |\n+-----+-----+"
	got := Markdown(src)
	assert.Equal(t, `<pre class="ascii-diagram">`+src+"</pre>", got)
	assert.NotContains(t, got, "<table")
}

func TestMarkdown_DiagramNeedsTwoDenseLines(t *testing.T) {
	assert.Equal(t, "-----", Markdown("-----"))
	assert.Contains(t, Markdown("| |\n| |"), "<table")

	got := Markdown("text\n[ ]----->[ ]\n  |       |\nmore")
	assert.Equal(t, "text<pre class=\"ascii-diagram\">[ ]-----&gt;[ ]\n  |       |</pre>more", got)
}

func TestMarkdown_Lists(t *testing.T) {
	assert.Equal(t, "<ul><li>one</li><li><strong>two</strong></li></ul>text", Markdown("* one\n* **two**\ntext"))
	assert.Equal(t, "<ul><li>a</li></ul><ul><li>b</li></ul>", Markdown("* a\n\n* b"))
	assert.Equal(t, "<ul><li>indented</li></ul>", Markdown("   * indented"))
	assert.Equal(t, "<em>not</em> a list", Markdown("*not* a list"))
}

func TestMarkdown_LineBreaks(t *testing.T) {
	assert.Equal(t, "a<br>b<br><br>c", Markdown("a\nb\n\nc"))
	assert.Equal(t, "a<br>b", Markdown("a\r\nb"))
	assert.Equal(t, "<h2>T</h2>body", Markdown("## T\nbody"))
}

func TestMarkdown_FencedCode(t *testing.T) {
	got := Markdown("before\n```go\nx := `y` < 1\n# not a heading\n```\nafter")
	assert.Equal(t, "before<pre><code class=\"language-go\">x := `y` &lt; 1\n# not a heading</code></pre>after", got)
}

func TestMarkdown_UnclosedFenceDegrades(t *testing.T) {
	assert.Equal(t, "```<br><em>a</em>", Markdown("```\n*a*"))
}

func TestMarkdown_InlineCode(t *testing.T) {
	assert.Equal(t, "use <code>a*b*c</code> now", Markdown("use `a*b*c` now"))
	assert.Equal(t, "x <pre><code>y</code></pre> w", Markdown("x ```y``` w"))
	assert.Equal(t, "<pre><code>one-liner</code></pre>", Markdown("```one-liner```"))
	assert.Equal(t, "odd ` tick", Markdown("odd ` tick"))
}

func TestInline_Emphasis(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"**a** and **b**", "<strong>a</strong> and <strong>b</strong>"},
		{"**bold *inner* text**", "<strong>bold <em>inner</em> text</strong>"},
		{"**x", "**x"},
		{"****", "****"},
		{"2 * 3", "2 * 3"},
		{"*a*b*", "<em>a</em>b*"},
		{"a & b < c", "a &amp; b &lt; c"},
		{"héllo *wörld*", "héllo <em>wörld</em>"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Inline(tt.in))
		})
	}
}

func TestMarkdown_Empty(t *testing.T) {
	assert.Equal(t, "", Markdown(""))
}

func TestMarkdown_NeverPanics(t *testing.T) {
	inputs := []string{
		"```", "`", "``", "**", "*", "|", "||", "| |\n|-|", "#", "# ", "######",
		"* ", "\n\n", "\r\n", "|---|", "```\n```", "***", "*`*`*", "| ` |",
		"-----\n", "\n-----\n-----\n", "<>\n<><><>", "# ```\n```",
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() { _ = Markdown(in) }, "input %q", in)
	}
}

// Text without any Markdown constructs must come back escaped, with newlines
// turned into breaks and nothing else added.
func TestMarkdown_EscapesPlainText(t *testing.T) {
	alphabet := []rune{'a', 'b', '<', '>', '&', '"', ' ', 'é'}
	rng := rand.New(rand.NewSource(42))

	for n := 0; n < 200; n++ {
		lines := make([]string, 1+rng.Intn(4))
		for i := range lines {
			var sb strings.Builder
			sb.WriteRune('x')
			for k := rng.Intn(12); k > 0; k-- {
				sb.WriteRune(alphabet[rng.Intn(len(alphabet))])
			}
			lines[i] = sb.String()
		}
		src := strings.Join(lines, "\n")
		want := strings.ReplaceAll(html.EscapeString(src), "\n", "<br>")
		got := Markdown(src)
		assert.Equal(t, want, got, "input %q", src)
		assert.NotContains(t, strings.ReplaceAll(got, "<br>", ""), "<")
	}
}
