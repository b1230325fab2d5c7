package scoring

import "regexp"

// technicalSkills is the curated vocabulary scanned against both texts.
// Terms are lower-case; multi-word entries are matched as whole phrases.
var technicalSkills = []string{
	// Languages
	"go", "golang", "python", "java", "javascript", "typescript", "c++",
	"c#", "ruby", "php", "rust", "kotlin", "swift", "scala", "sql", "html",
	"css", "bash", "matlab",
	// Frameworks and runtimes
	"react", "angular", "vue", "node.js", "django", "flask", "spring",
	"rails", ".net", "express", "laravel", "fastapi", "next.js", "graphql",
	"rest", "grpc",
	// Cloud and platform
	"aws", "azure", "gcp", "google cloud", "docker", "kubernetes",
	"terraform", "ansible", "jenkins", "git", "github", "gitlab", "linux",
	"ci/cd", "lambda", "serverless",
	// Data
	"postgresql", "postgres", "mysql", "mongodb", "redis", "elasticsearch",
	"kafka", "rabbitmq", "spark", "hadoop", "airflow", "snowflake",
	"tableau", "power bi", "pandas", "numpy", "tensorflow", "pytorch",
	"machine learning", "data analysis", "etl",
	// Methodology
	"agile", "scrum", "kanban", "devops", "tdd", "microservices", "oop",
	"unit testing",
}

// softSkills is only matched on the job-description side.
var softSkills = []string{
	"leadership", "communication", "teamwork", "problem solving",
	"collaboration", "adaptability", "time management", "critical thinking",
	"stakeholder management", "project management", "attention to detail",
	"decision making", "conflict resolution", "creativity", "mentoring",
	"negotiation", "presentation", "strategic thinking", "customer service",
	"cross-functional collaboration",
}

// stopWords are dropped from noun-phrase extraction regardless of length.
var stopWords = map[string]bool{
	"with": true, "from": true, "that": true, "this": true, "have": true,
	"will": true, "your": true, "their": true, "about": true, "which": true,
	"would": true, "there": true, "been": true, "were": true, "they": true,
	"them": true, "than": true, "then": true, "when": true, "what": true,
	"where": true, "while": true, "also": true, "such": true, "into": true,
	"over": true, "more": true, "most": true, "other": true, "some": true,
	"able": true, "both": true, "each": true, "very": true, "must": true,
	"should": true, "could": true, "year": true, "years": true, "team": true,
	"work": true, "role": true, "company": true, "candidate": true,
	"experience": true, "ability": true,
}

// actionVerbs signal achievement-oriented writing.
var actionVerbs = []string{
	"achieved", "managed", "led", "developed", "created", "implemented",
	"designed", "launched", "improved", "increased", "reduced", "delivered",
	"built", "drove", "established", "executed", "generated", "initiated",
	"coordinated", "negotiated", "optimized", "organized", "oversaw",
	"planned", "produced", "resolved", "spearheaded", "streamlined",
	"supervised", "transformed", "mentored", "directed", "analyzed",
	"automated", "architected",
}

// highValueSkills is the short list checked by the skill-gap suggestion
// rule: terms employers screen hard for when they appear in a posting.
var highValueSkills = []string{
	"python", "sql", "aws", "docker", "kubernetes", "react", "typescript",
	"terraform",
}

// decorativeGlyphs are symbols that commonly break ATS text extraction.
const decorativeGlyphs = "•●◦▪■□★☆◆◇♦◈➤➣✦✧"

type sectionSignal struct {
	name    string
	pattern *regexp.Regexp
}

// sectionSignals are the five required resume section markers. Order is
// fixed; the formatting score and the section suggestions both follow it.
var sectionSignals = []sectionSignal{
	{name: "contact", pattern: regexp.MustCompile(`(?i)\b(contact|e-?mail|phone)\b`)},
	{name: "summary", pattern: regexp.MustCompile(`(?i)\b(summary|objective|profile)\b`)},
	{name: "experience", pattern: regexp.MustCompile(`(?i)\b(experience|work history|employment)\b`)},
	{name: "education", pattern: regexp.MustCompile(`(?i)\b(education|academic|degree)\b`)},
	{name: "skills", pattern: regexp.MustCompile(`(?i)\b(skills|technical skills|competencies)\b`)},
}

var (
	pronounPattern = regexp.MustCompile(`(?i)\b(i|me|my|mine)\b`)
	wordTokens     = regexp.MustCompile(`[a-z]+`)
	emailPattern   = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern   = regexp.MustCompile(`(\+?\d{1,3}[\s.-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)
	numberPattern  = regexp.MustCompile(`(?i)(\d+(\.\d+)?\s*%|\$\s*\d|\b\d+\s*(percent|million|billion|users|customers|clients|projects))`)
	certPattern    = regexp.MustCompile(`(?i)\b(certified|certification|certificate|pmp|cissp)\b`)
)

// datePatterns match bare years, MM/YYYY, and month-name dates.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(19|20)\d{2}\b`),
	regexp.MustCompile(`\b(0?[1-9]|1[0-2])/\d{4}\b`),
	regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sept?|oct|nov|dec)\.?\s+(19|20)\d{2}\b`),
}
