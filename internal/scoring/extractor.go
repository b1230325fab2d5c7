package scoring

import (
	"strings"

	"github.com/jdkato/prose/v2"
)

// maxJobKeywords bounds job-description extraction so downstream matching
// stays cheap. Resume extraction is uncapped.
const maxJobKeywords = 30

const minNounLength = 4

// Extractor turns raw text into a normalized keyword set. It holds no
// per-call state and is safe for concurrent use; keyword sets are
// recomputed per call, never cached.
type Extractor struct{}

// NewExtractor constructs an Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractResume collects nouns, noun phrases, and technical-skill terms
// from resume text.
func (e *Extractor) ExtractResume(text string) *KeywordSet {
	set := newKeywordSet()
	collectNounPhrases(text, set, 0)
	collectVocabulary(strings.ToLower(text), technicalSkills, set, 0)
	return set
}

// ExtractJob collects nouns, noun phrases, technical-skill terms, and
// soft-skill phrases from job-description text, keeping the first
// maxJobKeywords terms found.
func (e *Extractor) ExtractJob(text string) *KeywordSet {
	set := newKeywordSet()
	collectNounPhrases(text, set, maxJobKeywords)
	lower := strings.ToLower(text)
	collectVocabulary(lower, technicalSkills, set, maxJobKeywords)
	collectVocabulary(lower, softSkills, set, maxJobKeywords)
	return set
}

// collectNounPhrases runs the POS tagger and collects NN* tokens plus runs
// of adjacent nouns joined as phrases. Tagger failures degrade to the
// vocabulary-only path; extraction never propagates an error.
func collectNounPhrases(text string, set *KeywordSet, limit int) {
	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithSegmentation(false))
	if err != nil {
		return
	}

	var phrase []string
	flush := func() {
		if len(phrase) > 1 {
			addNoun(set, strings.Join(phrase, " "), limit)
		}
		phrase = phrase[:0]
	}
	for _, tok := range doc.Tokens() {
		if strings.HasPrefix(tok.Tag, "NN") {
			addNoun(set, tok.Text, limit)
			phrase = append(phrase, strings.ToLower(tok.Text))
			continue
		}
		flush()
	}
	flush()
}

func addNoun(set *KeywordSet, raw string, limit int) {
	term := strings.ToLower(strings.TrimSpace(raw))
	if len(term) < minNounLength || stopWords[term] {
		return
	}
	set.addCapped(term, limit)
}

// collectVocabulary whole-word scans lowered text against a fixed term
// list. Vocabulary terms bypass the length filter, so short names like
// "go" and "c#" survive.
func collectVocabulary(lowerText string, vocabulary []string, set *KeywordSet, limit int) {
	for _, term := range vocabulary {
		if containsWholeWord(lowerText, term) {
			set.addCapped(term, limit)
		}
	}
}

// containsWholeWord reports whether term occurs in text delimited by
// non-word characters. Plain byte scanning avoids regexp boundary quirks
// with terms like "c++" and ".net".
func containsWholeWord(text, term string) bool {
	if term == "" {
		return false
	}
	for start := 0; start+len(term) <= len(text); {
		idx := strings.Index(text[start:], term)
		if idx < 0 {
			return false
		}
		i := start + idx
		j := i + len(term)
		if (i == 0 || !isWordByte(text[i-1])) && (j == len(text) || !isWordByte(text[j])) {
			return true
		}
		start = i + 1
	}
	return false
}

func isWordByte(b byte) bool {
	return b == '_' ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z') ||
		('0' <= b && b <= '9')
}
