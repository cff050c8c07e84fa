package summarizer

import "strings"

// WordCount returns the number of whitespace-delimited words in text
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// Split partitions the words of text into consecutive fragments of at most
// maxWords words, each rejoined with single spaces. Only the last fragment may
// be shorter. Text without words yields no fragments.
func Split(text string, maxWords int) []string {
	if maxWords < 1 {
		maxWords = 1
	}

	words := strings.Fields(text)
	fragments := make([]string, 0, (len(words)+maxWords-1)/maxWords)
	for start := 0; start < len(words); start += maxWords {
		end := min(start+maxWords, len(words))
		fragments = append(fragments, strings.Join(words[start:end], " "))
	}
	return fragments
}
