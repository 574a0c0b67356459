package query

import (
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/alihaydarkir/saglikrock/core"
)

// Query complexity classes.
const (
	ComplexitySimple  = "basit"
	ComplexityMedium  = "orta"
	ComplexityComplex = "karmaşık"
)

// Detector scores a question against the category taxonomy.
type Detector struct{}

// NewDetector creates a Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes a question and returns its category, confidence, feature
// flags, and complexity. Detection never fails: a question that matches no
// category falls back to the default category with zero confidence.
func (d *Detector) Detect(q string) core.QueryAnalysis {
	lower := strings.ToLower(strings.TrimSpace(q))
	words := wordSet(lower)

	scores := d.categoryScores(lower, words)

	best := DefaultCategory
	confidence := 0.0
	if len(scores) > 0 {
		var sum float64
		bestScore := -1.0
		for _, category := range slices.Sorted(maps.Keys(scores)) {
			score := scores[category]
			sum += score
			if score > bestScore {
				bestScore = score
				best = category
			}
		}
		if sum > 0 {
			confidence = bestScore / sum
		}
	}

	return core.QueryAnalysis{
		Category:   best,
		Confidence: confidence,
		Scores:     scores,
		Features:   d.extractFeatures(lower, words),
		Complexity: assessComplexity(lower),
	}
}

// categoryScores computes per-category scores: 5 points per exact keyword
// substring, 3 per word-set intersection member, 1 per fuzzy keyword match.
func (d *Detector) categoryScores(lower string, words map[string]bool) map[string]float64 {
	scores := make(map[string]float64)

	for category, keywords := range CategoryKeywords {
		var score float64

		for _, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				score += 5
			}
		}

		for _, keyword := range keywords {
			if words[keyword] {
				score += 3
			}
		}

		for _, keyword := range keywords {
			if utf8.RuneCountInString(keyword) <= 3 {
				continue
			}
			for word := range words {
				if utf8.RuneCountInString(word) <= 3 {
					continue
				}
				if fuzzyRatio(word, keyword) > 0.8 {
					score += 1
				}
			}
		}

		if score > 0 {
			scores[category] = score
		}
	}

	return scores
}

func (d *Detector) extractFeatures(lower string, words map[string]bool) core.QueryFeatures {
	return core.QueryFeatures{
		HasQuestionWord:  anyWordOf(words, "nasıl", "nedir", "ne", "kaç", "hangi", "nerede"),
		HasNumber:        digitRe.MatchString(lower),
		HasDoseWord:      anyWordOf(words, "mg", "doz", "miktar", "gram"),
		HasProcedureWord: anyWordOf(words, "nasıl", "adım", "prosedür", "yöntem"),
		IsPediatric:      anyWordOf(words, "çocuk", "bebek", "pediatrik"),
		IsEmergency:      anyWordOf(words, "acil", "kritik", "arrest", "durma"),
		IsLong:           len(strings.Fields(lower)) > 6,
	}
}

func assessComplexity(lower string) string {
	switch wordCount := len(strings.Fields(lower)); {
	case wordCount <= 3:
		return ComplexitySimple
	case wordCount <= 6:
		return ComplexityMedium
	default:
		return ComplexityComplex
	}
}

func anyWordOf(words map[string]bool, targets ...string) bool {
	for _, t := range targets {
		if words[t] {
			return true
		}
	}
	return false
}
