package engine

import (
	"regexp"
	"strings"
)

const maxCertificationEntries = 15

var certSplitRe = regexp.MustCompile(`\n\s*[\x{2022}\-*]\s*|\n+`)

var certIssuerSeps = []string{" — ", " – ", " | ", " - ", ", "}

// parseCertifications splits the certifications section on bullets or
// newlines. Entries outside a plausible length are dropped; a trailing
// issuer and year are peeled off when the line carries a separator.
func parseCertifications(section string) []CertificationEntry {
	if section == "" {
		return nil
	}

	var entries []CertificationEntry
	for _, raw := range certSplitRe.Split(section, -1) {
		line := strings.TrimSpace(bulletRe.ReplaceAllString(raw, ""))
		if len(line) < 10 || len(line) > 200 {
			continue
		}
		entries = append(entries, parseCertificationLine(line))
		if len(entries) == maxCertificationEntries {
			break
		}
	}
	return entries
}

func parseCertificationLine(line string) CertificationEntry {
	entry := CertificationEntry{Name: line}

	if y := yearRe.FindString(line); y != "" {
		entry.Date = y
	}

	for _, sep := range certIssuerSeps {
		idx := strings.Index(line, sep)
		if idx <= 0 {
			continue
		}
		name := strings.TrimSpace(line[:idx])
		rest := strings.TrimSpace(line[idx+len(sep):])
		// The remainder is an issuer only if it is not just a date.
		issuer := strings.TrimSpace(yearRe.ReplaceAllString(rest, ""))
		issuer = strings.Trim(issuer, " ,()-")
		if name != "" && issuer != "" {
			entry.Name = name
			entry.Issuer = issuer
		} else if name != "" && entry.Date != "" {
			entry.Name = name
		}
		break
	}
	return entry
}
