package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated from document content or from the bank-supplied string id.
type ID uint64

// IDFromContent generates a deterministic ID from text using BLAKE2b hashing.
// Identical text always produces identical IDs, which makes full-collection
// rebuilds idempotent.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Urgency labels how life-critical a protocol document is.
type Urgency int

const (
	// UrgencyNormal is routine educational material.
	UrgencyNormal Urgency = iota + 1
	// UrgencyHigh is time-sensitive material.
	UrgencyHigh
	// UrgencyCritical is life-critical protocol material.
	UrgencyCritical
)

// ParseUrgency maps the bank's Turkish urgency strings to an Urgency.
// Unknown values map to UrgencyNormal.
func ParseUrgency(s string) Urgency {
	switch s {
	case "kritik":
		return UrgencyCritical
	case "yuksek", "yüksek":
		return UrgencyHigh
	default:
		return UrgencyNormal
	}
}

// String returns the bank's string form of the urgency level.
func (u Urgency) String() string {
	switch u {
	case UrgencyCritical:
		return "kritik"
	case UrgencyHigh:
		return "yuksek"
	default:
		return "normal"
	}
}

// Document is a unit of domain knowledge from the curated bank.
// Documents are immutable after ingestion; the Vector is derived once from
// Content plus Category and persisted alongside the record.
type Document struct {
	Id          ID
	SourceID    string // bank-supplied id, kept for citation
	Content     string
	Category    string
	Subcategory string
	Reliability float64 // source-confidence weight in [0,1]
	Urgency     Urgency
	Source      string // citation, e.g. guideline name
	Vector      []float32
	InsertedAt  time.Time
	UpdatedAt   time.Time
}

// QueryFeatures are boolean flags extracted from a question by regex rules.
type QueryFeatures struct {
	HasQuestionWord  bool
	HasNumber        bool
	HasDoseWord      bool
	HasProcedureWord bool
	IsPediatric      bool
	IsEmergency      bool
	IsLong           bool
}

// QueryAnalysis is the result of category detection for a single question.
type QueryAnalysis struct {
	Category   string
	Confidence float64
	Scores     map[string]float64
	Features   QueryFeatures
	Complexity string
}

// SearchHit is a raw vector-store hit before bonus scoring.
type SearchHit struct {
	Document   *Document
	Similarity float32
}

// BonusFactors are the named multipliers applied to raw similarity.
// No factor is ever negative.
type BonusFactors struct {
	ExactMatch    float64
	CategoryMatch float64
	Reliability   float64
	Length        float64
	Emergency     float64
	Semantic      float64
}

// Total returns the product of all bonus factors.
func (b BonusFactors) Total() float64 {
	return b.ExactMatch * b.CategoryMatch * b.Reliability * b.Length * b.Emergency * b.Semantic
}

// RankedResult is a merged, scored search result for one question.
// Score has no upper bound; bonuses can push it above 1.0.
type RankedResult struct {
	Document       *Document
	Score          float64
	BaseSimilarity float64 // best raw similarity across variants
	Appearances    int     // number of search variants that returned the document
	Bonuses        BonusFactors
}
