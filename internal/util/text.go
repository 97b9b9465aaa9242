package util

// TruncationMarker is appended to page content cut at the length limit.
const TruncationMarker = "[Content truncated due to length]"

// TruncateContent keeps at most maxChars characters (runes) of content.
// When something was cut, a space and TruncationMarker are appended.
func TruncateContent(content string, maxChars int) string {
	if maxChars <= 0 {
		return content
	}
	count := 0
	for i := range content {
		if count == maxChars {
			return content[:i] + " " + TruncationMarker
		}
		count++
	}
	return content
}
