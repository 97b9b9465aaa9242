package service

import (
	"fmt"

	"page-assist/internal/domain"
	"page-assist/internal/util"
)

var languageNames = map[string]string{
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"zh": "Chinese",
	"hi": "Hindi",
	"ja": "Japanese",
	"ko": "Korean",
	"ru": "Russian",
}

// LanguageName maps a language code to its English name. Unknown codes are
// returned unchanged so callers may pass a language name directly.
func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}

// audienceFor describes the reader a simplify call should target.
func audienceFor(level string) string {
	switch level {
	case "beginner":
		return "elementary school student, using very simple language and explanations"
	case "intermediate":
		return "high school student, using moderately complex language and concepts"
	case "expert":
		return "knowledgeable person in the field, but prefer clarity over jargon"
	default:
		return "general audience, using clear and accessible language"
	}
}

// PromptBuilder turns action payloads into prompts. Every builder embeds the
// page content cut to MaxContentChars.
type PromptBuilder struct {
	MaxContentChars int
}

func (b PromptBuilder) content(s string) string {
	return util.TruncateContent(s, b.MaxContentChars)
}

func (b PromptBuilder) Summarize(p domain.SummarizePayload) string {
	return fmt.Sprintf(`
Summarize the following content into its key takeaways, keeping the main ideas and conclusions.
Use 3-7 bullet points unless the content needs more detail.
Markdown is allowed: headers (# ## ###), lists (* item), emphasis (*italic* **bold**).

Title: %s

Content:
%s

Summary:
`, p.Title, b.content(p.Content))
}

func (b PromptBuilder) Ask(p domain.AskPayload) string {
	return fmt.Sprintf(`
Below is the content of a webpage followed by a question about it.
Answer as accurately as possible using only the information in the content.
Markdown is allowed for readability:
- # for main points and ## for subpoints
- * for bullet points
- *italic* and **bold** for emphasis
- `+"```"+` blocks for technical content

Title of the webpage: %s

Content:
%s

Question: %s

Answer:
`, p.Title, b.content(p.Content), p.Question)
}

func (b PromptBuilder) Simplify(p domain.SimplifyPayload) string {
	audience := audienceFor(p.Level)
	return fmt.Sprintf(`
Rewrite the following content so it is easy to understand for a %s.
Simplify complex ideas and jargon but keep the key information.
Organize it logically, with headings where they help.

Include 1-2 ASCII diagrams that visualize key concepts, for example:
- flow diagrams with arrows for processes
- simple tables drawn with | and - for comparisons
- tree structures for relationships
- small ASCII charts for data

Pitch the diagrams at the %s level.

Use Markdown: # for main headers, ## for subheaders, *italic*, **bold**, and bullet lists (* item).

Content:
%s

Simplified content:
`, audience, p.Level, b.content(p.Content))
}

func (b PromptBuilder) Compare(p domain.ComparePayload) string {
	focus := p.ProductInput
	if focus == "" {
		focus = p.Title
	}
	if focus == "" {
		focus = "Auto-detect from content"
	}
	return fmt.Sprintf(`
Below is the content of a webpage about a product, service, or concept.
Identify what is being discussed and compare it with similar items.

Title: %s
URL: %s
User requested comparison for: %s

Content:
%s

Then:
1. Identify what is being discussed (product, service, concept, etc.)
2. Identify 2-4 similar or competing alternatives
3. Compare features, pros and cons, pricing where applicable, and unique selling points
4. Close with a recommendation for different user needs

Format the comparison with Markdown headings (# ## ###) and bullet lists (* item); *italic* and **bold** are allowed.
`, p.Title, p.URL, focus, b.content(p.Content))
}

func (b PromptBuilder) Quiz(p domain.LearnPayload) string {
	return fmt.Sprintf(`
Create a short quiz of 5 multiple-choice questions from the following content.
Each question has 4 options and exactly one correct answer, and tests understanding of a key concept.

Title: %s

Content:
%s

Respond ONLY with a valid JSON array of objects, WITHOUT ANY MARKDOWN FORMATTING. Each object has:
- question: the question text
- options: array of 4 possible answers
- correctIndex: index of the correct answer (0-3)
- explanation: brief explanation of why the answer is correct

Return the raw JSON array with no code blocks or extra text.
`, p.Title, b.content(p.Content))
}

func (b PromptBuilder) Flashcards(p domain.LearnPayload) string {
	return fmt.Sprintf(`
Create 5-8 flashcards from the following content, covering its key concepts, facts, or definitions.
Each flashcard has a front (question or term) and a back (answer or explanation).

Title: %s

Content:
%s

Respond ONLY with a valid JSON array of objects, WITHOUT ANY MARKDOWN FORMATTING. Each object has:
- front: the question, term, or prompt
- back: the answer, definition, or explanation

Return the raw JSON array with no code blocks or extra text.
`, p.Title, b.content(p.Content))
}

func (b PromptBuilder) Translate(p domain.TranslatePayload) string {
	target := LanguageName(p.Language)
	return fmt.Sprintf(`
Translate the following content from English to %s.
Keep the original meaning, tone, and formatting.
Briefly explain culturally specific references that do not translate well, in parentheses.
Preserve Markdown formatting such as headings (#, ##), bullet points (*), and emphasis (*text*, **text**).

Title: %s

Content to translate:
%s

%s translation:
`, target, p.Title, b.content(p.Content), target)
}
