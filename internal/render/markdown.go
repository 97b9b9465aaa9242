// Package render turns the Markdown subset produced by the model into HTML
// markup for the extension popup.
package render

import (
	"html"
	"strconv"
	"strings"
)

type blockKind int

const (
	kindText blockKind = iota
	kindHeading
	kindList
	kindTable
	kindDiagram
	kindFence
)

// block is one tokenized line span. lines holds the raw source lines; for
// headings and list items it holds the already-extracted inline text.
type block struct {
	kind  blockKind
	level int
	info  string
	lines []string
}

// Markdown renders text to HTML markup. It never fails: anything that does
// not form a recognised construct is emitted as escaped literal text.
//
// Block precedence, first match wins for a line span: fenced code, diagram,
// heading, table, list, text. Inside text, headings, list items and table
// cells: code spans, then **strong**, then *em*.
func Markdown(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	blocks := tokenize(strings.Split(text, "\n"))

	var b strings.Builder
	prevText := false
	for _, blk := range blocks {
		isText := blk.kind == kindText
		// newlines between flow lines become explicit breaks
		if isText && prevText {
			b.WriteString("<br>")
		}
		writeBlock(&b, blk)
		prevText = isText
	}
	return b.String()
}

func tokenize(lines []string) []block {
	var blocks []block
	for i := 0; i < len(lines); {
		line := lines[i]

		if info, ok := fenceOpen(line); ok {
			if end := fenceClose(lines, i+1); end >= 0 {
				blocks = append(blocks, block{kind: kindFence, info: info, lines: lines[i+1 : end]})
				i = end + 1
				continue
			}
			// unclosed fence: only this line degrades to text
			blocks = append(blocks, block{kind: kindText, lines: []string{line}})
			i++
			continue
		}

		if n := diagramSpan(lines[i:]); n > 0 {
			blocks = append(blocks, block{kind: kindDiagram, lines: lines[i : i+n]})
			i += n
			continue
		}

		if level, title, ok := heading(line); ok {
			blocks = append(blocks, block{kind: kindHeading, level: level, lines: []string{title}})
			i++
			continue
		}

		if isTableRow(line) {
			j := i
			for j < len(lines) && isTableRow(lines[j]) {
				j++
			}
			blocks = append(blocks, block{kind: kindTable, lines: lines[i:j]})
			i = j
			continue
		}

		if _, ok := listItem(line); ok {
			var items []string
			for i < len(lines) {
				item, ok := listItem(lines[i])
				if !ok {
					break
				}
				items = append(items, item)
				i++
			}
			blocks = append(blocks, block{kind: kindList, lines: items})
			continue
		}

		blocks = append(blocks, block{kind: kindText, lines: []string{line}})
		i++
	}
	return blocks
}

func writeBlock(b *strings.Builder, blk block) {
	switch blk.kind {
	case kindFence:
		if blk.info != "" {
			b.WriteString(`<pre><code class="language-` + html.EscapeString(blk.info) + `">`)
		} else {
			b.WriteString("<pre><code>")
		}
		b.WriteString(html.EscapeString(strings.Join(blk.lines, "\n")))
		b.WriteString("</code></pre>")
	case kindDiagram:
		b.WriteString(`<pre class="ascii-diagram">`)
		b.WriteString(html.EscapeString(strings.Join(blk.lines, "\n")))
		b.WriteString("</pre>")
	case kindHeading:
		tag := "h" + strconv.Itoa(blk.level)
		b.WriteString("<" + tag + ">")
		b.WriteString(Inline(blk.lines[0]))
		b.WriteString("</" + tag + ">")
	case kindTable:
		writeTable(b, blk.lines)
	case kindList:
		b.WriteString("<ul>")
		for _, item := range blk.lines {
			b.WriteString("<li>")
			b.WriteString(Inline(item))
			b.WriteString("</li>")
		}
		b.WriteString("</ul>")
	default:
		b.WriteString(Inline(blk.lines[0]))
	}
}

// heading recognises 1-6 '#' followed by a space at the start of the line.
func heading(line string) (int, string, bool) {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n == 0 || n > 6 || n >= len(line) || line[n] != ' ' {
		return 0, "", false
	}
	return n, line[n+1:], true
}

func listItem(line string) (string, bool) {
	trimmed := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(trimmed, "* ") {
		return "", false
	}
	return trimmed[2:], true
}

func fenceOpen(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "```") {
		return "", false
	}
	rest := trimmed[3:]
	// ```code``` on one line is an inline span, not a fence
	if strings.Contains(rest, "```") {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

func fenceClose(lines []string, from int) int {
	for j := from; j < len(lines); j++ {
		if strings.HasPrefix(strings.TrimSpace(lines[j]), "```") {
			return j
		}
	}
	return -1
}
