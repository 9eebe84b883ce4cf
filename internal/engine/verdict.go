package engine

import (
	"fmt"
	"strings"
)

// buildVerdict renders the result as a short deterministic narrative:
// fit statement, strongest matches, notable gaps, weak sections,
// contact completeness, and a closing recommendation by score band.
func buildVerdict(r Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Overall assessment: %s (score %d/100).", r.Classification, r.OverallScore)

	if len(r.MatchedSkills) > 0 {
		fmt.Fprintf(&b, " Strong alignment on %s.", joinTop(r.MatchedSkills, 3))
	}
	if len(r.MissingSkills) > 0 {
		fmt.Fprintf(&b, " Notable gaps: %s.", joinTop(r.MissingSkills, 3))
	}

	if weak := weakSections(r.SectionScores); len(weak) > 0 {
		fmt.Fprintf(&b, " Areas to improve: %s.", strings.Join(weak, ", "))
	}

	if note := contactNote(r.ExtractedData.ContactInfo); note != "" {
		b.WriteString(" " + note)
	}

	switch {
	case float64(r.OverallScore) >= goodFitThreshold:
		b.WriteString(" The resume is well matched to this role and ready to submit.")
	case float64(r.OverallScore) >= potentialFitThreshold:
		b.WriteString(" With targeted updates to the gaps above, this resume could be a strong match.")
	default:
		b.WriteString(" Significant rework is needed before this resume fits the role.")
	}
	return b.String()
}

// weakSections lists sections scoring below 60, in a fixed order.
func weakSections(s SectionScores) []string {
	ordered := []struct {
		name  string
		score float64
	}{
		{"skills", s.Skills},
		{"contact details", s.Contact},
		{"experience", s.Experience},
		{"projects", s.Projects},
		{"education", s.Education},
		{"formatting", s.Format},
	}

	var weak []string
	for _, sec := range ordered {
		if sec.score < 60 {
			weak = append(weak, sec.name)
		}
	}
	return weak
}

func contactNote(c ContactInfo) string {
	var missing []string
	if c.Email == "" {
		missing = append(missing, "email")
	}
	if c.Phone == "" {
		missing = append(missing, "phone number")
	}
	if c.LinkedIn == "" {
		missing = append(missing, "LinkedIn profile")
	}
	if len(missing) == 0 {
		return "Contact details are complete."
	}
	return "Consider adding a " + strings.Join(missing, ", ") + " to the header."
}

func joinTop(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}
