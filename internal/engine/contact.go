package engine

import (
	"regexp"
	"strings"
)

var (
	emailRe    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	linkedinRe = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	githubRe   = regexp.MustCompile(`(?i)github\.com/[\w-]+`)

	// Tried in order; the first match whose digits clean to a plausible
	// length wins. The returned string is the raw matched span, not a
	// normalized number.
	phoneRes = []*regexp.Regexp{
		regexp.MustCompile(`\+\d{1,4}[\s-]?\(?\d{3,4}\)?[\s-]?\d{3,4}[\s-]?\d{3,6}`),
		regexp.MustCompile(`\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`),
		regexp.MustCompile(`\d{10,}`),
	}

	locationRes = []*regexp.Regexp{
		regexp.MustCompile(`\b[A-Z][a-z]+\s+[A-Z][a-z]+,\s*[A-Z]{2}\b`),
		regexp.MustCompile(`\b[A-Z][a-z]+,\s*[A-Z]{2}\b`),
	}

	properNameRe  = regexp.MustCompile(`^[A-Z][a-z]+(?:\s+[A-Z][a-z]*\.?)*$`)
	allCapsNameRe = regexp.MustCompile(`^[A-Z][A-Z\s.]{1,49}$`)

	nonDigitRe = regexp.MustCompile(`[^\d+]`)
)

var nameNoiseWords = []string{
	"resume", "cv", "curriculum", "vitae", "profile",
	"engineer", "developer", "analyst", "scientist",
}

// contactExtractor pulls contact fields out of raw resume text with
// regex heuristics. Absent fields stay empty; it never errors.
type contactExtractor struct{}

func (contactExtractor) extract(text string) ContactInfo {
	return ContactInfo{
		FullName: extractName(text),
		Email:    emailRe.FindString(text),
		Phone:    extractPhone(text),
		Location: extractLocation(text),
		LinkedIn: strings.ToLower(linkedinRe.FindString(text)),
		GitHub:   strings.ToLower(githubRe.FindString(text)),
	}
}

func extractPhone(text string) string {
	for _, re := range phoneRes {
		for _, match := range re.FindAllString(text, -1) {
			cleaned := nonDigitRe.ReplaceAllString(match, "")
			if len(strings.TrimPrefix(cleaned, "+")) >= 10 {
				return strings.TrimSpace(match)
			}
		}
	}
	return ""
}

func extractLocation(text string) string {
	for _, re := range locationRes {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

// extractName scans the first ten non-empty lines for a line shaped like
// a person's name, skipping lines carrying contact data. Returns ""
// rather than guessing.
func extractName(text string) string {
	lines := nonEmptyLines(text)
	if len(lines) > 10 {
		lines = lines[:10]
	}

	for _, line := range lines {
		if isContactLine(line) {
			continue
		}
		if len(line) < 3 || len(line) > 50 {
			continue
		}
		if !properNameRe.MatchString(line) && !allCapsNameRe.MatchString(line) {
			continue
		}
		if containsNoiseWord(line) {
			continue
		}
		return line
	}
	return ""
}

func isContactLine(line string) bool {
	if emailRe.MatchString(line) || linkedinRe.MatchString(line) || githubRe.MatchString(line) {
		return true
	}
	if strings.Contains(strings.ToLower(line), "http") {
		return true
	}
	for _, re := range phoneRes {
		if m := re.FindString(line); m != "" {
			if len(strings.TrimPrefix(nonDigitRe.ReplaceAllString(m, ""), "+")) >= 10 {
				return true
			}
		}
	}
	return false
}

func containsNoiseWord(line string) bool {
	lower := strings.ToLower(line)
	for _, w := range nameNoiseWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// Canonical multi-word titles, longest phrases first.
var multiWordTitles = []string{
	"machine learning engineer", "machine learning researcher",
	"artificial intelligence engineer", "software engineer",
	"data scientist", "data engineer", "data analyst",
	"business analyst", "research scientist", "devops engineer",
	"product manager", "project manager", "ml engineer",
}

var titleKeywords = []string{
	"engineer", "developer", "manager", "analyst", "scientist", "lead",
	"director", "intern", "designer", "architect", "consultant", "officer",
	"specialist", "associate", "principal",
}

var titleKeywordRes = func() map[string]*regexp.Regexp {
	out := make(map[string]*regexp.Regexp, len(titleKeywords))
	for _, kw := range titleKeywords {
		out[kw] = regexp.MustCompile(`\b` + kw + `\b`)
	}
	return out
}()

var leadingModifierRe = regexp.MustCompile(`(?i)^(?:aspiring|seeking|experienced|motivated|enthusiastic|passionate about|results-driven|skilled|senior|junior|jr\.?|sr\.?|mid[- ]level)\b\s*`)

var headerSplitRe = regexp.MustCompile(`[|\x{2013}\x{2014}—–-]+`)

// extractHeaderTitle guesses the job title a candidate put in the resume
// header. Used for display and export only; never affects parsing.
func extractHeaderTitle(text string) string {
	lines := nonEmptyLines(text)
	if len(lines) > 8 {
		lines = lines[:8]
	}

	var candidates []string
	for _, line := range lines {
		for _, part := range headerSplitRe.Split(line, -1) {
			p := strings.TrimSpace(part)
			if p == "" || len(p) < 2 || len(p) > 120 {
				continue
			}
			if isContactLine(p) {
				continue
			}
			candidates = append(candidates, p)
		}
	}

	for _, c := range candidates {
		lower := strings.ToLower(c)
		for _, mt := range multiWordTitles {
			if strings.Contains(lower, mt) {
				return titleCase(mt)
			}
		}
	}

	for _, c := range candidates {
		stripped := leadingModifierRe.ReplaceAllString(c, "")
		lower := strings.ToLower(stripped)
		for _, kw := range titleKeywords {
			if titleKeywordRes[kw].MatchString(lower) {
				return titleCase(windowAround(stripped, kw))
			}
		}
	}

	// Fall back to the first short non-contact candidate after the name.
	for i, c := range candidates {
		if i == 0 {
			continue
		}
		words := strings.Fields(c)
		if len(words) > 1 && len(words) <= 6 && c != strings.ToUpper(c) {
			return titleCase(leadingModifierRe.ReplaceAllString(c, ""))
		}
	}
	return ""
}

// windowAround returns up to five words centered on the keyword.
func windowAround(s, keyword string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if strings.EqualFold(strings.Trim(w, ".,"), keyword) {
			start := i - 2
			if start < 0 {
				start = 0
			}
			end := i + 3
			if end > len(words) {
				end = len(words)
			}
			out := strings.Join(words[start:end], " ")
			return strings.Trim(out, " .,;:")
		}
	}
	return s
}
