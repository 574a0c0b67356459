package query

import (
	"maps"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/xrash/smetrics"
)

var digitRe = regexp.MustCompile(`[0-9]`)

// Expander rewrites a question into progressively richer variants so that
// short Turkish queries still land near the right documents in vector space.
type Expander struct{}

// NewExpander creates an Expander.
func NewExpander() *Expander {
	return &Expander{}
}

// Expand returns the basic expansion: the lowercased query with direct
// synonyms appended for every lexicon key found as a substring.
func (e *Expander) Expand(q string) string {
	return e.basicExpand(q)
}

// MultiExpand returns the three expansion strategies for a query.
// basic is fast substring synonyms, smart adds fuzzy and question-type
// vocabulary, deep adds category and semantic context.
func (e *Expander) MultiExpand(q string) (basic, smart, deep string) {
	return e.basicExpand(q), e.smartExpand(q), e.deepExpand(q)
}

func (e *Expander) basicExpand(q string) string {
	expanded := strings.ToLower(q)

	for _, key := range slices.Sorted(maps.Keys(WordMap)) {
		if strings.Contains(expanded, key) {
			expanded += " " + strings.Join(WordMap[key][:min(2, len(WordMap[key]))], " ")
		}
	}

	return expanded
}

func (e *Expander) smartExpand(q string) string {
	expanded := strings.ToLower(q)
	words := strings.Fields(expanded)

	// Fuzzy synonym matches catch misspelled trigger terms
	for _, key := range slices.Sorted(maps.Keys(WordMap)) {
		if utf8.RuneCountInString(key) <= 3 {
			continue
		}
		for _, word := range words {
			if utf8.RuneCountInString(word) <= 3 {
				continue
			}
			if fuzzyRatio(word, key) > 0.75 {
				expanded += " " + key + " " + strings.Join(WordMap[key][:min(2, len(WordMap[key]))], " ")
			}
		}
	}

	// Question-type vocabulary
	if containsAnyWord(expanded, "nasıl") || strings.Contains(expanded, "ne şekilde") {
		expanded += " prosedür yöntem adım protokol teknik"
	}
	if containsAnyWord(expanded, "nedir", "ne", "tanım") {
		expanded += " açıklama definition bilgi detay"
	}
	if containsAnyWord(expanded, "kaç", "miktar") || strings.Contains(expanded, "ne kadar") {
		expanded += " doz sayı amount mg milligram"
	}

	// Numeric values almost always mean dosing
	if digitRe.MatchString(expanded) {
		expanded += " doz miktar mg cc ml gram"
	}

	return expanded
}

func (e *Expander) deepExpand(q string) string {
	expanded := strings.ToLower(q)
	words := wordSet(expanded)

	// Category keywords of the best-overlapping category
	if category := bestOverlapCategory(words); category != "" {
		keywords := CategoryKeywords[category]
		expanded += " " + strings.Join(keywords[:min(3, len(keywords))], " ")
	}

	// Related clinical concepts
	for _, key := range slices.Sorted(maps.Keys(SemanticNeighbors)) {
		if strings.Contains(expanded, key) {
			related := SemanticNeighbors[key]
			expanded += " " + strings.Join(related[:min(2, len(related))], " ")
		}
	}

	// Drug and device context
	if words["epinefrin"] || words["adrenalin"] || words["ilaç"] {
		expanded += " vazopresor mg doz IV intravenöz uygulaması"
	}
	if words["aed"] || words["defibrillatör"] || words["şok"] {
		expanded += " elektrot pad joule energy bifazik monofazik"
	}

	return expanded
}

// bestOverlapCategory returns the category whose keywords share the most
// words with the query, or "" when there is no overlap at all.
func bestOverlapCategory(words map[string]bool) string {
	var best string
	bestScore := 0

	for _, category := range slices.Sorted(maps.Keys(CategoryKeywords)) {
		overlap := 0
		for _, keyword := range CategoryKeywords[category] {
			if words[keyword] {
				overlap++
			}
		}
		if overlap > bestScore {
			bestScore = overlap
			best = category
		}
	}

	return best
}

// fuzzyRatio computes a normalized edit similarity in [0,1].
// Substitutions cost 2 so the value tracks difflib-style ratios.
func fuzzyRatio(a, b string) float64 {
	if a == b {
		return 1.0
	}
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 1.0
	}
	dist := smetrics.WagnerFischer(a, b, 1, 1, 2)
	return 1.0 - float64(dist)/float64(total)
}

// wordSet splits lowercased text into a set of words with surrounding
// punctuation trimmed.
func wordSet(text string) map[string]bool {
	fields := strings.Fields(text)
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		cleaned := strings.Trim(f, ".,!?;:'\"-()[]{}")
		if cleaned != "" {
			set[cleaned] = true
		}
	}
	return set
}

// containsAnyWord reports whether any of the given words appears as a
// standalone token in the text.
func containsAnyWord(text string, targets ...string) bool {
	words := wordSet(text)
	for _, t := range targets {
		if words[t] {
			return true
		}
	}
	return false
}
