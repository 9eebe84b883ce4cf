package engine

import (
	"regexp"
	"strings"
)

const (
	maxResumeSkills   = 50
	maxGenericKeyword = 25
)

var (
	skillSplitRe    = regexp.MustCompile(`[,;&|]`)
	skillLeadTrimRe = regexp.MustCompile(`^[\x{2022}\-*\s]+`)
	skillTailTrimRe = regexp.MustCompile(`[,.]$`)
	keywordRe       = regexp.MustCompile(`\b[a-zA-Z+#.]{2,25}\b`)
)

// Terms that commonly show up in project and experience prose rather
// than a skills list. A few are conventionally written in caps.
var contextualSkills = []string{
	"api", "rest", "restful", "microservices", "backend", "frontend",
	"database", "sql", "nosql", "crud", "mvc", "oop", "agile", "scrum",
	"ci/cd", "devops", "cloud", "deployment", "testing", "debugging",
	"optimization", "performance", "scalability", "security",
}

var upperCaseSkills = map[string]bool{
	"api": true, "rest": true, "sql": true, "crud": true, "mvc": true, "oop": true,
}

var contextualSkillRes = func() map[string]*regexp.Regexp {
	out := make(map[string]*regexp.Regexp, len(contextualSkills))
	for _, s := range contextualSkills {
		out[s] = regexp.MustCompile(`\b` + regexp.QuoteMeta(s) + `\b`)
	}
	return out
}()

var keywordStopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "as": true, "is": true, "was": true,
	"are": true, "were": true, "be": true, "have": true, "has": true, "had": true,
	"do": true, "does": true, "did": true, "will": true, "would": true,
	"should": true, "can": true, "could": true, "may": true, "might": true,
	"must": true, "shall": true, "this": true, "that": true, "these": true,
	"those": true,
}

// extractSkills collects skills from three sources in a fixed order:
// the structured skills section, taxonomy hits anywhere in the text,
// and contextual technical terms. Deduplicated case-insensitively,
// capped at 50.
func extractSkills(text string, seg *segmenter, tax *Taxonomy) []string {
	var skills []string
	seen := make(map[string]bool)
	add := func(s string) {
		key := strings.ToLower(s)
		if s == "" || seen[key] {
			return
		}
		seen[key] = true
		skills = append(skills, s)
	}

	if section := seg.extract(text, skillsHeaders); section != "" {
		extractStructuredSkills(section, add)
	}

	for _, skill := range tax.FindIn(text) {
		add(skill)
	}

	lower := strings.ToLower(text)
	for _, s := range contextualSkills {
		if contextualSkillRes[s].MatchString(lower) {
			if upperCaseSkills[s] {
				add(strings.ToUpper(s))
			} else {
				add(titleCase(s))
			}
		}
	}

	if len(skills) > maxResumeSkills {
		skills = skills[:maxResumeSkills]
	}
	return skills
}

// extractStructuredSkills handles "Category: a, b, c" lines. Only the
// part after the colon is split; lines without a colon are ignored
// because they carry no list structure worth trusting.
func extractStructuredSkills(section string, add func(string)) {
	for _, line := range nonEmptyLines(section) {
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		for _, candidate := range skillSplitRe.Split(line[idx+1:], -1) {
			skill := strings.TrimSpace(candidate)
			skill = skillLeadTrimRe.ReplaceAllString(skill, "")
			skill = strings.TrimSpace(skillTailTrimRe.ReplaceAllString(skill, ""))
			if len(skill) > 1 && len(skill) < 30 {
				add(titleCase(skill))
			}
		}
	}
}

// jobRequirements holds what a job description asks for: taxonomy
// skills, generic keywords, and their deduplicated union.
type jobRequirements struct {
	Skills   []string
	Keywords []string
	All      []string
}

// extractJobRequirements combines taxonomy skill detection with generic
// keyword extraction. The union keeps skills first, then keywords, each
// in their own deterministic order.
func extractJobRequirements(jobDesc string, seg *segmenter, tax *Taxonomy) jobRequirements {
	reqs := jobRequirements{
		Skills:   extractSkills(jobDesc, seg, tax),
		Keywords: extractKeywords(jobDesc),
	}

	seen := make(map[string]bool)
	for _, s := range reqs.Skills {
		key := strings.ToLower(s)
		if !seen[key] {
			seen[key] = true
			reqs.All = append(reqs.All, s)
		}
	}
	for _, k := range reqs.Keywords {
		key := strings.ToLower(k)
		if !seen[key] {
			seen[key] = true
			reqs.All = append(reqs.All, k)
		}
	}
	return reqs
}

// extractKeywords pulls generic keywords: stop words removed, length at
// least 3, first-seen order, capped at 25.
func extractKeywords(text string) []string {
	var keywords []string
	seen := make(map[string]bool)

	for _, word := range keywordRe.FindAllString(strings.ToLower(text), -1) {
		if len(word) < 3 || keywordStopWords[word] || seen[word] {
			continue
		}
		seen[word] = true
		keywords = append(keywords, word)
		if len(keywords) == maxGenericKeyword {
			break
		}
	}
	return keywords
}
