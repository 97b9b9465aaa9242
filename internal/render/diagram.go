package render

import "strings"

const (
	minDiagramLines = 2
	minDiagramRun   = 5
)

// structural characters that make up ASCII diagrams
const diagramChars = `|/\+-=*.:;[](){}<>~^`

func isDiagramChar(r rune) bool {
	return strings.ContainsRune(diagramChars, r)
}

// isDiagramLine reports whether line is non-blank and holds nothing but
// structural characters and whitespace. It also returns the longest run of
// consecutive structural characters.
func isDiagramLine(line string) (bool, int) {
	if strings.TrimSpace(line) == "" {
		return false, 0
	}
	longest, run := 0, 0
	for _, r := range line {
		switch {
		case isDiagramChar(r):
			run++
			if run > longest {
				longest = run
			}
		case r == ' ' || r == '\t' || r == '\r':
			run = 0
		default:
			return false, 0
		}
	}
	return true, longest
}

// diagramSpan returns how many lines at the head of lines form a diagram
// block, or 0. A block needs at least two consecutive diagram lines and a
// dense run of structural characters somewhere in the span.
func diagramSpan(lines []string) int {
	n, dense := 0, false
	for _, line := range lines {
		ok, run := isDiagramLine(line)
		if !ok {
			break
		}
		if run >= minDiagramRun {
			dense = true
		}
		n++
	}
	if n < minDiagramLines || !dense {
		return 0
	}
	return n
}
