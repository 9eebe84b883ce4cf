package engine

import (
	"regexp"
	"strings"
)

const maxEducationEntries = 5

const (
	degreeNotSpecified      = "Degree not specified"
	institutionNotSpecified = "Institution not specified"
)

var institutionKeywords = []string{
	"university", "college", "institute", "school", "academy", "iit", "nit", "iiit",
}

var degreeRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bachelor(?:'s)?(?:\s+of)?(?:\s+science)?(?:\s+in)?`),
	regexp.MustCompile(`(?i)master(?:'s)?(?:\s+of)?(?:\s+science)?(?:\s+in)?`),
	regexp.MustCompile(`(?i)phd|doctorate|doctoral`),
	regexp.MustCompile(`(?i)associate(?:'s)?(?:\s+degree)?`),
	regexp.MustCompile(`(?i)\bdiploma\b`),
	regexp.MustCompile(`(?i)\bcertificate\b`),
	regexp.MustCompile(`(?i)\b(?:b\.?tech|b\.?e\.?|bsc|bs|ba|m\.?tech|msc|ms|mba|mca|bca)\b`),
}

var fieldKeywords = []string{
	"computer science", "engineering", "business", "science", "arts", "technology",
}

var (
	inlineGPARe = regexp.MustCompile(`(?i)[–—-]\s*(\d\.\d{1,2})\s*(?:cgpa|gpa)`)
	gpaRe       = regexp.MustCompile(`(?i)(?:cgpa|gpa)\s*:?\s*(\d\.\d{1,2})`)
)

// parseEducation segments education entries by institution or degree
// lines. A missing degree gets an explicit sentinel so scorers never see
// a half-built record.
func parseEducation(section string) []EducationEntry {
	if section == "" {
		return nil
	}

	lines := nonEmptyLines(section)
	var entries []EducationEntry
	var current *EducationEntry

	flush := func() {
		if current != nil {
			if current.Degree == "" {
				current.Degree = degreeNotSpecified
			}
			entries = append(entries, *current)
			current = nil
		}
	}

	consumed := 0
	for i, line := range lines {
		if i < consumed {
			continue
		}
		isInstitution := hasInstitutionKeyword(line)
		isDegree := !isInstitution && isDegreeLine(line)

		if !isInstitution && !isDegree {
			continue
		}

		flush()
		if isInstitution {
			institution := line
			gpa := ""
			if m := inlineGPARe.FindStringSubmatch(line); m != nil {
				gpa = m[1]
				institution = strings.TrimSpace(inlineGPARe.ReplaceAllString(line, ""))
			}
			current = &EducationEntry{Institution: institution, GPA: gpa}
		} else {
			current = &EducationEntry{Institution: institutionNotSpecified, Degree: line}
		}

		// Scan the next few lines for dates, degree, field and GPA.
		for j := i + 1; j < len(lines) && j < i+4; j++ {
			next := lines[j]
			if hasInstitutionKeyword(next) {
				break
			}
			matched := false
			switch {
			case current.GraduationDate == "" && yearRe.MatchString(next):
				current.GraduationDate = extractDateRange(next)
				matched = true
			case current.Degree == "" && isDegreeLine(next):
				current.Degree = next
				matched = true
			case current.FieldOfStudy == "" && hasFieldKeyword(next):
				current.FieldOfStudy = next
				matched = true
			}
			if current.GPA == "" {
				if m := gpaRe.FindStringSubmatch(next); m != nil {
					current.GPA = m[1]
					matched = true
				}
			}
			if matched {
				consumed = j + 1
			}
		}
	}
	flush()

	if len(entries) > maxEducationEntries {
		entries = entries[:maxEducationEntries]
	}
	return entries
}

func hasInstitutionKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range institutionKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func isDegreeLine(line string) bool {
	for _, re := range degreeRes {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

func hasFieldKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range fieldKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func extractDateRange(line string) string {
	if m := dateSpanRe.FindString(line); m != "" {
		return strings.TrimSpace(m)
	}
	return strings.TrimSpace(line)
}
