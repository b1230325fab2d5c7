package scoring

import "strings"

// maxSuggestions caps the returned list. Truncation keeps the first ten
// suggestions in rule-evaluation order; the list is NOT re-sorted by
// priority, so a low-priority early rule can crowd out a high-priority
// late one. Known ordering weakness, preserved as documented behavior.
const maxSuggestions = 10

const maxListedKeywords = 8

type suggestionInput struct {
	resumeText  string
	lowerResume string
	jobText     string
	breakdown   Breakdown
	missing     []string
}

type suggestionRule func(in suggestionInput) *Suggestion

// suggestionRules is the fixed ordered rule sequence. Each rule appends at
// most one suggestion or is a no-op.
var suggestionRules = []suggestionRule{
	ruleMissingKeywords,
	ruleMissingSection("summary", "sections", PriorityMedium,
		"Add a professional summary or objective at the top of your resume."),
	ruleMissingSection("skills", "sections", PriorityHigh,
		"Add a dedicated skills section listing your technical competencies."),
	ruleMissingSection("experience", "sections", PriorityHigh,
		"Add a work experience section with your employment history."),
	ruleMissingSection("education", "sections", PriorityMedium,
		"Add an education section with your degrees and institutions."),
	ruleLowActionVerbs,
	ruleNoQuantifiedAchievements,
	ruleDecorativeGlyphs,
	rulePronounOveruse,
	ruleWordCount,
	ruleMissingContact,
	ruleSkillGaps,
	ruleMissingCertifications,
}

// GenerateSuggestions evaluates the fixed rule sequence over the texts and
// breakdown, returning at most ten suggestions in rule order. When an
// alternate Suggester strategy was injected, it replaces the rule-based
// path entirely.
func (e *Engine) GenerateSuggestions(resumeText, jobDescriptionText string, breakdown Breakdown) []Suggestion {
	if e.suggester != nil {
		return e.suggester.GenerateSuggestions(resumeText, jobDescriptionText, breakdown)
	}

	in := suggestionInput{
		resumeText:  resumeText,
		lowerResume: strings.ToLower(resumeText),
		jobText:     jobDescriptionText,
		breakdown:   breakdown,
		missing:     e.missingKeywords(resumeText, jobDescriptionText),
	}

	out := make([]Suggestion, 0, maxSuggestions)
	seen := make(map[string]bool, maxSuggestions)
	for _, rule := range suggestionRules {
		suggestion := rule(in)
		if suggestion == nil || seen[suggestion.Message] {
			continue
		}
		seen[suggestion.Message] = true
		out = append(out, *suggestion)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

func (e *Engine) missingKeywords(resumeText, jobText string) []string {
	jdKeywords := e.extractor.ExtractJob(jobText)
	resumeKeywords := e.extractor.ExtractResume(resumeText)
	var missing []string
	for _, term := range jdKeywords.Terms() {
		if !resumeKeywords.Has(term) {
			missing = append(missing, term)
		}
	}
	return missing
}

func ruleMissingKeywords(in suggestionInput) *Suggestion {
	if len(in.missing) == 0 {
		return nil
	}
	listed := in.missing
	if len(listed) > maxListedKeywords {
		listed = listed[:maxListedKeywords]
	}
	return &Suggestion{
		Category: "keywords",
		Priority: PriorityHigh,
		Message: "Work these terms from the job description into your resume: " +
			strings.Join(listed, ", ") + ".",
	}
}

func ruleMissingSection(name, category, priority, message string) suggestionRule {
	return func(in suggestionInput) *Suggestion {
		for _, signal := range sectionSignals {
			if signal.name != name {
				continue
			}
			if signal.pattern.MatchString(in.resumeText) {
				return nil
			}
			return &Suggestion{Category: category, Priority: priority, Message: message}
		}
		return nil
	}
}

func ruleLowActionVerbs(in suggestionInput) *Suggestion {
	if countActionVerbs(in.resumeText) >= 3 {
		return nil
	}
	return &Suggestion{
		Category: "content",
		Priority: PriorityMedium,
		Message:  "Start bullet points with strong action verbs such as led, developed, or improved.",
	}
}

func ruleNoQuantifiedAchievements(in suggestionInput) *Suggestion {
	if numberPattern.MatchString(in.resumeText) {
		return nil
	}
	return &Suggestion{
		Category: "content",
		Priority: PriorityMedium,
		Message:  "Quantify achievements with numbers, percentages, or dollar amounts.",
	}
}

func ruleDecorativeGlyphs(in suggestionInput) *Suggestion {
	if !strings.ContainsAny(in.resumeText, decorativeGlyphs) {
		return nil
	}
	return &Suggestion{
		Category: "formatting",
		Priority: PriorityMedium,
		Message:  "Replace decorative symbols with plain hyphens. Graphics and symbols often break ATS parsers.",
	}
}

func rulePronounOveruse(in suggestionInput) *Suggestion {
	words := countWords(in.resumeText)
	if words == 0 {
		return nil
	}
	pronouns := len(pronounPattern.FindAllString(in.resumeText, -1))
	if float64(pronouns)/float64(words) <= 0.02 {
		return nil
	}
	return &Suggestion{
		Category: "content",
		Priority: PriorityLow,
		Message:  "Remove first-person pronouns. Resumes read better in implied first person.",
	}
}

func ruleWordCount(in suggestionInput) *Suggestion {
	words := countWords(in.resumeText)
	if words < 300 {
		return &Suggestion{
			Category: "length",
			Priority: PriorityMedium,
			Message:  "Expand your resume with more detail. Aim for 300 to 800 words.",
		}
	}
	if words > 800 {
		return &Suggestion{
			Category: "length",
			Priority: PriorityLow,
			Message:  "Trim your resume to the most relevant content. Aim for 300 to 800 words.",
		}
	}
	return nil
}

func ruleMissingContact(in suggestionInput) *Suggestion {
	hasEmail := emailPattern.MatchString(in.resumeText)
	hasPhone := phonePattern.MatchString(in.resumeText)
	if hasEmail && hasPhone {
		return nil
	}
	return &Suggestion{
		Category: "contact",
		Priority: PriorityHigh,
		Message:  "Add an email address and phone number so recruiters can reach you.",
	}
}

func ruleSkillGaps(in suggestionInput) *Suggestion {
	lowerJob := strings.ToLower(in.jobText)
	var gaps []string
	for _, skill := range highValueSkills {
		if containsWholeWord(lowerJob, skill) && !containsWholeWord(in.lowerResume, skill) {
			gaps = append(gaps, skill)
		}
	}
	if len(gaps) == 0 {
		return nil
	}
	return &Suggestion{
		Category: "skills",
		Priority: PriorityHigh,
		Message: "The job calls for " + strings.Join(gaps, ", ") +
			". List them in your skills section if you have the experience.",
	}
}

func ruleMissingCertifications(in suggestionInput) *Suggestion {
	if !certPattern.MatchString(in.jobText) || certPattern.MatchString(in.resumeText) {
		return nil
	}
	return &Suggestion{
		Category: "certifications",
		Priority: PriorityLow,
		Message:  "The job description references certifications. Mention any relevant ones you hold.",
	}
}
