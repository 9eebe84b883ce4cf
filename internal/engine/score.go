package engine

import (
	"regexp"
	"strings"
)

const emptyRequirementsScore = 65.0

// scoreSkills converts the match ratio into a banded score plus a small
// bonus for overall skill breadth. With no requirements to match
// against there is nothing to measure, so a fixed score is returned and
// up to ten resume skills are reported as matched.
func scoreSkills(resumeSkills, requiredSkills []string) (score float64, matched, missing []string) {
	if len(requiredSkills) == 0 {
		matched = resumeSkills
		if len(matched) > 10 {
			matched = matched[:10]
		}
		return emptyRequirementsScore, matched, nil
	}

	matched, missing = matchSkills(resumeSkills, requiredSkills)
	ratio := float64(len(matched)) / float64(len(requiredSkills))

	var base float64
	switch {
	case ratio >= 0.8:
		base = 85 + (ratio-0.8)*75
	case ratio >= 0.6:
		base = 70 + (ratio-0.6)*75
	case ratio >= 0.4:
		base = 50 + (ratio-0.4)*100
	default:
		base = ratio * 125
	}

	countBonus := float64(len(resumeSkills) * 2)
	if countBonus > 20 {
		countBonus = 20
	}
	return clamp100(base + countBonus), matched, missing
}

// scoreContact awards fixed points per present field: email 30, phone
// 25, linkedin 15, github 10, header title 20.
func scoreContact(contact ContactInfo, headerTitle string) float64 {
	score := 0.0
	if contact.Email != "" {
		score += 30
	}
	if contact.Phone != "" {
		score += 25
	}
	if contact.LinkedIn != "" {
		score += 15
	}
	if contact.GitHub != "" {
		score += 10
	}
	if headerTitle != "" {
		score += 20
	}
	return clamp100(score)
}

// scoreExperience rewards entry count up to three entries, then adds a
// keyword-relevance share for requirements appearing in the entries'
// company, title or location text.
func scoreExperience(entries []ExperienceEntry, allRequirements []string) float64 {
	if len(entries) == 0 {
		return 15.0
	}

	score := float64(len(entries)) * 25
	if score > 75 {
		score = 75
	}

	var parts []string
	for _, e := range entries {
		parts = append(parts, e.Company, e.Title, e.Location)
	}
	expText := strings.ToLower(strings.Join(parts, " "))

	top := allRequirements
	if len(top) > 15 {
		top = top[:15]
	}
	relevant := 0
	for _, req := range top {
		if strings.Contains(expText, strings.ToLower(req)) {
			relevant++
		}
	}
	if len(allRequirements) > 0 {
		score += float64(relevant) / float64(len(top)) * 25
	}
	return clamp100(score)
}

// scoreEducation grades the highest degree tier plus institution
// recognition. A resume with no parseable education still gets a small
// baseline.
func scoreEducation(entries []EducationEntry) float64 {
	if len(entries) == 0 {
		return 30.0
	}

	var parts []string
	for _, e := range entries {
		parts = append(parts, e.Degree, e.Institution)
	}
	eduText := strings.ToLower(strings.Join(parts, " "))

	score := 60.0
	switch {
	case containsAny(eduText, "phd", "doctorate", "ph.d"):
		score += 25
	case containsAny(eduText, "master", "msc", "mba", "m.tech"):
		score += 20
	case containsAny(eduText, "bachelor", "btech", "engineering"):
		score += 15
	}
	if containsAny(eduText, "iit", "nit", "iiit", "university", "institute") {
		score += 15
	}
	return clamp100(score)
}

// scoreProjects rewards having projects at all, having several, and
// using technologies the job description asks for.
func scoreProjects(entries []ProjectEntry, requiredSkills []string) float64 {
	if len(entries) == 0 {
		return 20.0
	}

	score := 50.0
	switch {
	case len(entries) >= 3:
		score += 20
	case len(entries) >= 2:
		score += 15
	}

	var parts []string
	for _, p := range entries {
		parts = append(parts, p.Name, p.Technologies)
	}
	projText := strings.ToLower(strings.Join(parts, " "))

	matches := 0
	for _, skill := range requiredSkills {
		if strings.Contains(projText, strings.ToLower(skill)) {
			matches++
		}
	}
	if len(requiredSkills) > 0 {
		score += float64(matches) / float64(len(requiredSkills)) * 30
	}
	return clamp100(score)
}

var formatSectionRes = map[string]*regexp.Regexp{
	"experience": regexp.MustCompile(`(?i)\bexperience\b`),
	"education":  regexp.MustCompile(`(?i)\beducation\b`),
	"skills":     regexp.MustCompile(`(?i)\bskills\b`),
	"projects":   regexp.MustCompile(`(?i)\bprojects\b`),
}

var formatSections = []string{"experience", "education", "skills", "projects"}

var anyBulletRe = regexp.MustCompile(`[\x{2022}\-*]`)

// scoreFormat checks structural hygiene: core section headers present,
// bullet usage, and a word count in the readable range.
func scoreFormat(text string) float64 {
	score := 0.0
	for _, section := range formatSections {
		if formatSectionRes[section].MatchString(text) {
			score += 15
		}
	}
	if anyBulletRe.MatchString(text) {
		score += 15
	}

	words := len(strings.Fields(text))
	switch {
	case words >= 200 && words <= 800:
		score += 25
	case (words >= 100 && words < 200) || (words > 800 && words <= 1200):
		score += 15
	default:
		score += 5
	}
	return clamp100(score)
}

func clamp100(v float64) float64 {
	if v > 100 {
		return 100
	}
	if v < 0 {
		return 0
	}
	return v
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
