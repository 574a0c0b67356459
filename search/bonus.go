package search

import (
	"strings"

	"github.com/alihaydarkir/saglikrock/core"
	"github.com/alihaydarkir/saglikrock/query"
)

// computeBonuses calculates the multiplicative bonus factors for one hit.
// Every factor is a multiplier near 1.0; the product rewards documents that
// match the query on more signals than raw vector similarity.
func computeBonuses(queryText string, doc *core.Document, queryCategory string) core.BonusFactors {
	bonuses := core.BonusFactors{
		ExactMatch:    1.0,
		CategoryMatch: 1.0,
		Reliability:   0.8 + doc.Reliability*0.2,
		Length:        lengthBonus(doc.Content),
		Emergency:     emergencyBonus(doc.Urgency),
		Semantic:      semanticBonus(queryText, doc.Content),
	}

	// Share of meaningful query words found verbatim in the document,
	// worth up to +40%
	queryWords := contentWordSet(queryText)
	if len(queryWords) > 0 {
		docWords := contentWordSet(doc.Content)
		matches := 0
		for word := range queryWords {
			if docWords[word] {
				matches++
			}
		}
		bonuses.ExactMatch = 1.0 + (float64(matches)/float64(len(queryWords)))*0.4
	}

	// Category agreement, with partial credit for adjacent categories
	if doc.Category == queryCategory {
		bonuses.CategoryMatch = 1.3
	} else if query.RelatedCategories(doc.Category, queryCategory) {
		bonuses.CategoryMatch = 1.1
	}

	return bonuses
}

// lengthBonus rewards documents in the ideal answer-length band.
func lengthBonus(content string) float64 {
	wordCount := len(strings.Fields(content))
	switch {
	case wordCount >= 20 && wordCount <= 150:
		return 1.15
	case (wordCount >= 10 && wordCount < 20) || (wordCount > 150 && wordCount <= 250):
		return 1.05
	default:
		return 0.95
	}
}

func emergencyBonus(urgency core.Urgency) float64 {
	switch urgency {
	case core.UrgencyCritical:
		return 1.2
	case core.UrgencyHigh:
		return 1.1
	default:
		return 1.0
	}
}

// semanticBonus adds 10% per high-value clinical term shared by query and
// document, capped at 50%.
func semanticBonus(queryText, content string) float64 {
	queryLower := strings.ToLower(queryText)
	contentLower := strings.ToLower(content)

	bonus := 1.0
	for _, term := range query.HighValueTerms {
		if strings.Contains(queryLower, term) && strings.Contains(contentLower, term) {
			bonus += 0.1
		}
	}

	return min(bonus, 1.5)
}
