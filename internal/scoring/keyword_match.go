package scoring

// scoreKeywordMatch measures how many job-description keywords appear
// verbatim in the resume keyword set. Matching is exact string equality
// after extraction normalization, no stemming or synonyms: intentionally
// strict to mirror literal ATS keyword scanning.
//
// Weight: 0.40.
func scoreKeywordMatch(jdKeywords, resumeKeywords *KeywordSet) float64 {
	if jdKeywords.Len() == 0 {
		return 0
	}
	matched := 0
	for _, term := range jdKeywords.Terms() {
		if resumeKeywords.Has(term) {
			matched++
		}
	}
	return clampScore(100 * float64(matched) / float64(jdKeywords.Len()))
}
