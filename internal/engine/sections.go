package engine

import (
	"regexp"
	"strings"
)

// Master list of recognized section headers. Used as boundaries when
// capturing a section body: a section runs until the next line that is
// one of these headers, or end of document.
var knownSectionHeaders = []string{
	"SUMMARY", "OBJECTIVE", "PROFILE",
	"SKILLS", "TECHNICAL SKILLS", "CORE COMPETENCIES", "TECHNOLOGIES",
	"EXPERIENCE", "WORK EXPERIENCE", "EMPLOYMENT", "PROFESSIONAL EXPERIENCE",
	"PROJECTS", "PERSONAL PROJECTS", "KEY PROJECTS",
	"EDUCATION", "ACADEMIC", "QUALIFICATION", "EDUCATIONAL BACKGROUND",
	"CERTIFICATIONS", "CERTIFICATES", "ACHIEVEMENTS", "AWARDS", "HONORS",
}

// Candidate header sets per section, tried case-insensitively.
var (
	skillsHeaders        = []string{"skills", "technical skills", "core competencies", "technologies"}
	experienceHeaders    = []string{"experience", "work experience", "employment", "professional experience"}
	educationHeaders     = []string{"education", "academic", "qualification", "educational background"}
	projectHeaders       = []string{"projects", "personal projects", "key projects", "project"}
	certificationHeaders = []string{"certifications", "certificates", "achievements", "awards", "honors"}
)

type sectionPatterns struct {
	tight      *regexp.Regexp
	toEnd      *regexp.Regexp
	permissive *regexp.Regexp
}

// segmenter locates contiguous section bodies by header keyword.
// Patterns are compiled once per candidate set and reused.
type segmenter struct {
	boundary string
	cache    map[string]sectionPatterns
}

func newSegmenter() *segmenter {
	s := &segmenter{
		boundary: `(?:\n[ \t]*(?:` + strings.Join(knownSectionHeaders, "|") + `)[ \t]*(?:\n|$))`,
		cache:    make(map[string]sectionPatterns),
	}
	// Prime the cache for every candidate set so the segmenter is
	// read-only afterwards and safe to share across goroutines.
	for _, names := range [][]string{
		skillsHeaders, experienceHeaders, educationHeaders, projectHeaders, certificationHeaders,
	} {
		s.cache[strings.Join(names, "|")] = s.build(names)
	}
	return s
}

// extract returns the body of the first section matching one of the
// candidate header names, or "" when none is found or the captured body
// is trivially short.
func (s *segmenter) extract(text string, headerNames []string) string {
	pats := s.compile(headerNames)

	for _, re := range []*regexp.Regexp{pats.tight, pats.toEnd, pats.permissive} {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		body := strings.TrimSpace(m[2])
		if len(body) > 10 {
			return body
		}
	}
	return ""
}

func (s *segmenter) compile(headerNames []string) sectionPatterns {
	if pats, ok := s.cache[strings.Join(headerNames, "|")]; ok {
		return pats
	}
	return s.build(headerNames)
}

func (s *segmenter) build(headerNames []string) sectionPatterns {
	alt := `(` + strings.Join(headerNames, "|") + `)`
	return sectionPatterns{
		// Header at line start, body until the next known header.
		tight: regexp.MustCompile(`(?is)(?:^|\n)[ \t]*` + alt + `[ \t]*\n(.*?)(?:` + s.boundary + `|\z)`),
		// Header followed by everything to end of document.
		toEnd: regexp.MustCompile(`(?is)(?:^|\n)[ \t]*` + alt + `[ \t]*\n(.*)\z`),
		// Header anywhere on a line, most permissive.
		permissive: regexp.MustCompile(`(?is)` + alt + `[ \t]*\n([\s\S]*?)(?:` + s.boundary + `|\z)`),
	}
}

// nonEmptyLines splits text into trimmed, non-blank lines.
func nonEmptyLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	return lines
}
