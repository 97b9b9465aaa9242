package render

import (
	"html"
	"strings"
)

// Inline renders the span-level constructs of a single line: ```block```
// and `inline` code, then **strong** before *em*. Delimiters are matched
// leftmost-first and non-greedily; an unmatched delimiter stays literal.
func Inline(s string) string {
	var b strings.Builder
	start := 0
	flush := func(i int) {
		b.WriteString(html.EscapeString(s[start:i]))
	}

	for i := 0; i < len(s); {
		rest := s[i:]

		if strings.HasPrefix(rest, "```") {
			if end := strings.Index(rest[3:], "```"); end >= 0 {
				flush(i)
				b.WriteString("<pre><code>" + html.EscapeString(rest[3:3+end]) + "</code></pre>")
				i += 3 + end + 3
				start = i
				continue
			}
			i += 3
			continue
		}

		if rest[0] == '`' {
			if end := strings.IndexByte(rest[1:], '`'); end >= 0 {
				flush(i)
				b.WriteString("<code>" + html.EscapeString(rest[1:1+end]) + "</code>")
				i += 1 + end + 1
				start = i
				continue
			}
			i++
			continue
		}

		if strings.HasPrefix(rest, "**") {
			if end := strings.Index(rest[2:], "**"); end > 0 {
				flush(i)
				b.WriteString("<strong>" + Inline(rest[2:2+end]) + "</strong>")
				i += 2 + end + 2
				start = i
				continue
			}
		}

		if rest[0] == '*' {
			if end := strings.IndexByte(rest[1:], '*'); end > 0 {
				flush(i)
				b.WriteString("<em>" + Inline(rest[1:1+end]) + "</em>")
				i += 1 + end + 1
				start = i
				continue
			}
		}

		i++
	}
	flush(len(s))
	return b.String()
}
