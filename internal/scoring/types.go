package scoring

// Breakdown holds the five axis scores that compose the total score.
// Every field is an integer clamped to [0,100].
type Breakdown struct {
	KeywordMatch   int `json:"keywordMatch"`
	Formatting     int `json:"formatting"`
	Readability    int `json:"readability"`
	Structure      int `json:"structure"`
	KeywordBalance int `json:"keywordBalance"`
}

// ScoreResult pairs the weighted total with its breakdown.
type ScoreResult struct {
	TotalScore int       `json:"totalScore"`
	Breakdown  Breakdown `json:"breakdown"`
}

// Insight lists qualitative statements derived from a breakdown.
type Insight struct {
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
}

// Suggestion priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Suggestion is a single actionable improvement recommendation.
type Suggestion struct {
	Category string `json:"category"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
}

// KeywordSet is a deduplicated set of normalized terms. Insertion order is
// preserved so capped extraction keeps the first-found terms.
type KeywordSet struct {
	terms []string
	seen  map[string]bool
}

func newKeywordSet() *KeywordSet {
	return &KeywordSet{seen: make(map[string]bool)}
}

func (s *KeywordSet) add(term string) {
	if term == "" || s.seen[term] {
		return
	}
	s.seen[term] = true
	s.terms = append(s.terms, term)
}

// addCapped adds the term unless the set already holds limit entries.
// A limit of zero means unbounded.
func (s *KeywordSet) addCapped(term string, limit int) {
	if limit > 0 && len(s.terms) >= limit {
		return
	}
	s.add(term)
}

// Has reports whether the exact term is present.
func (s *KeywordSet) Has(term string) bool {
	return s.seen[term]
}

// Len returns the number of distinct terms.
func (s *KeywordSet) Len() int {
	return len(s.terms)
}

// Terms returns the terms in first-found order.
func (s *KeywordSet) Terms() []string {
	out := make([]string, len(s.terms))
	copy(out, s.terms)
	return out
}
