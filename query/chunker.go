package query

import "strings"

const (
	// chunkingWordThreshold is the query length (in words) above which a
	// query is split into fragments for multi-chunk search.
	chunkingWordThreshold = 8

	// maxChunks caps how many fragments one query can produce.
	maxChunks = 5

	// minFragmentWords drops fragments too short to embed meaningfully.
	minFragmentWords = 3
)

// Chunker splits long compound questions into independently searchable
// fragments. Short questions pass through untouched.
type Chunker struct{}

// NewChunker creates a Chunker.
func NewChunker() *Chunker {
	return &Chunker{}
}

// ShouldChunk reports whether a query is long enough to be chunked.
func (c *Chunker) ShouldChunk(q string) bool {
	return len(strings.Fields(q)) > chunkingWordThreshold
}

// Chunk splits a query into 1..5 fragments.
//
// Queries of 8 words or fewer are returned as-is. Longer queries are split on
// punctuation and connective words, fragments shorter than 3 words are
// dropped, question-bearing fragments are moved to the front, fragments
// without a domain anchor get "CPR" prepended, and the original query is
// appended as a fallback. At most 5 fragments survive, with the raw fallback
// dropped first.
func (c *Chunker) Chunk(q string) []string {
	if !c.ShouldChunk(q) {
		return []string{q}
	}

	var fragments []string
	for _, part := range strings.FieldsFunc(q, func(r rune) bool {
		return r == ',' || r == '.'
	}) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		for _, sub := range splitOnConnectives(part) {
			if len(strings.Fields(sub)) >= minFragmentWords {
				fragments = append(fragments, sub)
			}
		}
	}

	// Question-bearing fragments carry the intent, search them first
	var questionFragments, plainFragments []string
	for _, fragment := range fragments {
		if containsQuestionWord(fragment) {
			questionFragments = append(questionFragments, fragment)
		} else {
			plainFragments = append(plainFragments, fragment)
		}
	}

	chunks := make([]string, 0, len(fragments)+1)
	for _, fragment := range append(questionFragments, plainFragments...) {
		if !containsAnchorTerm(fragment) {
			fragment = "CPR " + fragment
		}
		chunks = append(chunks, fragment)
	}

	// The original query is the last-chance fallback
	chunks = append(chunks, q)

	if len(chunks) > maxChunks {
		chunks = chunks[:maxChunks]
	}
	return chunks
}

// splitOnConnectives splits a fragment wherever a connective word or phrase
// appears as standalone tokens. The connectives themselves are discarded.
func splitOnConnectives(fragment string) []string {
	words := strings.Fields(fragment)

	connective := func(i int) int {
		lower := strings.ToLower(words[i])
		if i+1 < len(words) {
			pair := lower + " " + strings.ToLower(words[i+1])
			for _, conn := range ConnectiveWords {
				if conn == pair {
					return 2
				}
			}
		}
		for _, conn := range ConnectiveWords {
			if conn == lower {
				return 1
			}
		}
		return 0
	}

	var parts []string
	var current []string
	for i := 0; i < len(words); {
		if n := connective(i); n > 0 {
			if len(current) > 0 {
				parts = append(parts, strings.Join(current, " "))
				current = nil
			}
			i += n
			continue
		}
		current = append(current, words[i])
		i++
	}
	if len(current) > 0 {
		parts = append(parts, strings.Join(current, " "))
	}

	if len(parts) == 0 {
		return []string{fragment}
	}
	return parts
}

func containsQuestionWord(fragment string) bool {
	lower := strings.ToLower(fragment)
	for _, qw := range QuestionWords {
		if strings.Contains(lower, qw) {
			return true
		}
	}
	return false
}

func containsAnchorTerm(fragment string) bool {
	lower := strings.ToLower(fragment)
	for _, anchor := range AnchorTerms {
		if strings.Contains(lower, anchor) {
			return true
		}
	}
	return false
}
