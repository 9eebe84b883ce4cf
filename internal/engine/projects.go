package engine

import (
	"regexp"
	"strings"
)

const maxProjectEntries = 10

var techParensRe = regexp.MustCompile(`\(([^)]+)\)\s*(?:\[GitHub\])?\s*$`)

// Nouns that suggest a line names a project rather than prose.
var projectIndicators = []string{
	"system", "platform", "application", "tool", "framework", "model",
	"analysis", "management", "tracking", "prediction", "classification",
	"dashboard", "api", "website", "app", "portal", "service", "data",
}

// parseProjects walks the projects section. A title line opens an
// entry; bullet lines beneath it become the description until the next
// title.
func parseProjects(section string) []ProjectEntry {
	if section == "" {
		return nil
	}

	var entries []ProjectEntry
	var current *ProjectEntry

	flush := func() {
		if current != nil {
			entries = append(entries, *current)
			current = nil
		}
	}

	for _, line := range nonEmptyLines(section) {
		if isProjectTitle(line) {
			flush()
			entry := parseProjectTitle(line)
			current = &entry
			continue
		}
		if current == nil {
			continue
		}
		if isBulletLine(line) {
			desc := strings.TrimSpace(bulletRe.ReplaceAllString(line, ""))
			if len(desc) > 10 {
				current.Description = append(current.Description, desc)
			}
		}
	}
	flush()

	if len(entries) > maxProjectEntries {
		entries = entries[:maxProjectEntries]
	}
	return entries
}

// isProjectTitle reports whether the line opens a project entry. A
// trailing parenthesized tech list or a GitHub marker is decisive;
// otherwise a project-type noun plus title shape is enough.
func isProjectTitle(line string) bool {
	if isBulletLine(line) {
		return false
	}
	if len(line) < 10 || len(line) > 200 {
		return false
	}

	if techParensRe.MatchString(line) || strings.Contains(line, "GitHub") {
		return true
	}

	lower := strings.ToLower(line)
	for _, kw := range projectIndicators {
		if strings.Contains(lower, kw) {
			first := rune(line[0])
			if (first >= 'A' && first <= 'Z') || strings.Count(line, " ") >= 2 {
				return true
			}
		}
	}
	return false
}

func parseProjectTitle(line string) ProjectEntry {
	entry := ProjectEntry{Name: line}

	if m := techParensRe.FindStringSubmatch(line); m != nil {
		entry.Technologies = strings.TrimSpace(m[1])
		entry.Name = strings.TrimSpace(techParensRe.ReplaceAllString(line, ""))
	}
	if strings.Contains(line, "GitHub") {
		if m := githubRe.FindString(line); m != "" {
			entry.GitHubLink = strings.ToLower(m)
		} else {
			entry.GitHubLink = "Available on GitHub"
		}
	}
	return entry
}

func isBulletLine(line string) bool {
	return strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") ||
		strings.HasPrefix(line, "*") || strings.HasPrefix(line, "·")
}
