package render

import "strings"

func isTableRow(line string) bool {
	trimmed := strings.TrimSpace(line)
	return len(trimmed) >= 2 && trimmed[0] == '|' && trimmed[len(trimmed)-1] == '|'
}

// tableCells splits |a|b|c| into trimmed cells.
func tableCells(line string) []string {
	trimmed := strings.TrimSpace(line)
	inner := trimmed[1 : len(trimmed)-1]
	cells := strings.Split(inner, "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}

// isSeparatorRow matches |---|:--:| style rows.
func isSeparatorRow(cells []string) bool {
	for _, c := range cells {
		if c == "" || strings.Trim(c, "-:") != "" || !strings.Contains(c, "-") {
			return false
		}
	}
	return true
}

func writeTable(b *strings.Builder, rows []string) {
	b.WriteString(`<table class="markdown-table">`)
	header := true
	for _, row := range rows {
		cells := tableCells(row)
		if isSeparatorRow(cells) {
			continue
		}
		if header {
			b.WriteString("<thead>")
			writeRow(b, cells, "th")
			b.WriteString("</thead><tbody>")
			header = false
			continue
		}
		writeRow(b, cells, "td")
	}
	if !header {
		b.WriteString("</tbody>")
	}
	b.WriteString("</table>")
}

func writeRow(b *strings.Builder, cells []string, tag string) {
	b.WriteString("<tr>")
	for _, c := range cells {
		b.WriteString("<" + tag + ">")
		b.WriteString(Inline(c))
		b.WriteString("</" + tag + ">")
	}
	b.WriteString("</tr>")
}
