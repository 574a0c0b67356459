package search

import "strings"

// Stop words to filter out when building content word sets
var stopWords = map[string]bool{
	"ve": true, "ile": true, "bir": true, "bu": true, "şu": true, "o": true,
	"da": true, "de": true, "mi": true, "mu": true, "mü": true, "mı": true,
	"için": true, "gibi": true, "daha": true, "çok": true, "en": true,
	"ama": true, "veya": true, "ki": true, "ise": true,
	"the": true, "a": true, "an": true, "and": true, "of": true, "in": true,
	"to": true, "is": true, "for": true, "with": true,
}

// tokenize splits text into words, lowercases, and trims punctuation.
func tokenize(text string) []string {
	words := strings.Fields(text)
	tokens := make([]string, 0, len(words))

	for _, word := range words {
		cleaned := strings.ToLower(strings.Trim(word, ".,!?;:'\"-()[]{}"))
		if cleaned != "" {
			tokens = append(tokens, cleaned)
		}
	}

	return tokens
}

// contentWordSet returns the meaningful words of a text: longer than two
// runes, stop words removed.
func contentWordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, token := range tokenize(text) {
		if len([]rune(token)) > 2 && !stopWords[token] {
			set[token] = true
		}
	}
	return set
}
