package summarizer

import "strings"

// DefaultLanguage is the language summaries are written in
const DefaultLanguage = "español"

// DefaultPrompt asks for a summary of {text} written in {language}
const DefaultPrompt = "Resume el siguiente texto en {language}:\n\n{text}"

func renderPrompt(template, language, text string) string {
	return strings.NewReplacer("{language}", language, "{text}", text).Replace(template)
}
