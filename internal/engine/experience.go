package engine

import (
	"regexp"
	"strings"
)

const maxExperienceEntries = 10

const notSpecified = "Not specified"

type expState int

const (
	expSeekingHeader expState = iota
	expHeaderContext
	expAccumulating
)

var (
	yearRe     = regexp.MustCompile(`\d{4}`)
	dateSpanRe = regexp.MustCompile(`(?i)\d{2}/\d{4}.*?\d{2}/\d{4}|\d{4}.*?\d{4}|present|current`)
	bulletRe   = regexp.MustCompile(`^[\s]*[\x{2022}\x{2023}\x{25E6}\x{2043}\x{2219}•\-*·]+\s*`)
)

var locationKeywords = []string{
	"remote", "delhi", "mumbai", "bangalore", "hyderabad", "chennai", "pune",
	"new york", "san francisco", "london", "berlin", "toronto",
}

var companySuffixes = []string{
	"pvt", "ltd", "inc", "corp", "llc", "company", "technologies",
	"solutions", "systems", "studio", "labs",
}

// Achievement verbs that mark a line as a bullet even without a glyph.
var achievementVerbs = map[string]bool{
	"achieved": true, "developed": true, "implemented": true, "created": true,
	"built": true, "designed": true, "delivered": true, "improved": true,
	"enhanced": true, "optimized": true, "reduced": true, "increased": true,
	"managed": true, "led": true, "coordinated": true, "analyzed": true,
	"processed": true, "trained": true, "deployed": true, "integrated": true,
	"automated": true, "streamlined": true, "collaborated": true,
}

// parseExperience walks the experience section line by line. A dash-type
// separator marks a new entry header; the line right after a header may
// carry dates and location; everything else accumulates as
// responsibilities until the next header.
func parseExperience(section string) []ExperienceEntry {
	if section == "" {
		return nil
	}

	var entries []ExperienceEntry
	var current *ExperienceEntry
	state := expSeekingHeader

	flush := func() {
		if current != nil {
			entries = append(entries, *current)
			current = nil
		}
	}

	for _, line := range nonEmptyLines(section) {
		switch {
		case isExperienceHeader(line):
			flush()
			entry := parseExperienceHeader(line)
			current = &entry
			state = expHeaderContext

		case state == expHeaderContext && containsDateOrLocation(line):
			dates, location := parseDateLocation(line)
			if dates != "" {
				current.Duration = dates
			}
			if location != "" {
				current.Location = location
			}
			state = expAccumulating

		case current != nil:
			state = expAccumulating
			achievement := strings.TrimSpace(bulletRe.ReplaceAllString(line, ""))
			if len(achievement) > 15 || isAchievementLine(line) {
				if achievement != "" {
					current.Responsibilities = append(current.Responsibilities, achievement)
				}
			}
		}
	}
	flush()

	if len(entries) > maxExperienceEntries {
		entries = entries[:maxExperienceEntries]
	}
	return entries
}

// isExperienceHeader reports whether the line starts a new entry: it
// carries a dash-type separator, has plausible header length, and is not
// itself a bullet, achievement, or date line.
func isExperienceHeader(line string) bool {
	if !strings.ContainsAny(line, "—–-") && !strings.Contains(line, " | ") && !strings.Contains(line, " at ") {
		return false
	}
	if len(line) <= 10 || len(line) >= 150 {
		return false
	}
	// Date spans such as "01/2020 - 03/2023 | Remote" carry a dash too;
	// they belong to the entry above, never start a new one.
	if yearRe.MatchString(line) && dateSpanRe.MatchString(line) {
		return false
	}
	if bulletRe.MatchString(line) && line != strings.TrimSpace(bulletRe.ReplaceAllString(line, "")) {
		return false
	}
	return !isAchievementLine(line)
}

func isAchievementLine(line string) bool {
	if strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") ||
		strings.HasPrefix(line, "*") || strings.HasPrefix(line, "·") {
		return true
	}
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false
	}
	return achievementVerbs[strings.Trim(fields[0], ".,")]
}

// parseExperienceHeader splits "Company — Title" style lines. Legal-entity
// suffixes decide which side is the company; default is company first.
func parseExperienceHeader(line string) ExperienceEntry {
	separators := []string{" — ", " – ", "—", "–", " - ", " | ", " at ", "@"}

	for _, sep := range separators {
		if !strings.Contains(line, sep) {
			continue
		}
		parts := strings.SplitN(line, sep, 2)
		if len(parts) != 2 {
			continue
		}
		left := strings.TrimSpace(parts[0])
		right := strings.TrimSpace(parts[1])
		if left == "" || right == "" {
			continue
		}
		switch {
		case hasCompanySuffix(right) && !hasCompanySuffix(left):
			return ExperienceEntry{Company: right, Title: left}
		default:
			return ExperienceEntry{Company: left, Title: right}
		}
	}

	if hasCompanySuffix(line) {
		return ExperienceEntry{Company: line, Title: notSpecified}
	}
	return ExperienceEntry{Company: notSpecified, Title: line}
}

func hasCompanySuffix(s string) bool {
	lower := strings.ToLower(s)
	for _, suffix := range companySuffixes {
		if strings.Contains(lower, suffix) {
			return true
		}
	}
	return false
}

func containsDateOrLocation(line string) bool {
	if yearRe.MatchString(line) {
		return true
	}
	lower := strings.ToLower(line)
	for _, loc := range locationKeywords {
		if strings.Contains(lower, loc) {
			return true
		}
	}
	return false
}

func parseDateLocation(line string) (dates, location string) {
	if m := dateSpanRe.FindString(line); m != "" {
		dates = strings.TrimSpace(m)
	} else if yearRe.MatchString(line) {
		dates = strings.TrimSpace(line)
	}
	lower := strings.ToLower(line)
	for _, loc := range locationKeywords {
		if strings.Contains(lower, loc) {
			location = titleCase(loc)
			break
		}
	}
	return dates, location
}
