package engine

import "strings"

const similarityThreshold = 0.6

// wordOverlap is the Jaccard similarity of the word sets of two
// strings. Empty input scores zero.
func wordOverlap(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	setA := wordSet(a)
	setB := wordSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for w := range setA {
		if setB[w] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[w] = true
	}
	return set
}

// matchSkills partitions the required skills into matched and missing.
// A requirement matches on the first resume skill that is an exact
// case-insensitive match, a substring in either direction, or has word
// overlap above the threshold. Output order follows the required list.
func matchSkills(resumeSkills, requiredSkills []string) (matched, missing []string) {
	if len(resumeSkills) == 0 || len(requiredSkills) == 0 {
		return nil, append([]string(nil), requiredSkills...)
	}

	lowered := make([]string, len(resumeSkills))
	for i, s := range resumeSkills {
		lowered[i] = strings.ToLower(strings.TrimSpace(s))
	}

	for _, req := range requiredSkills {
		reqClean := strings.ToLower(strings.TrimSpace(req))

		found := false
		for _, have := range lowered {
			if reqClean == have ||
				strings.Contains(have, reqClean) ||
				strings.Contains(reqClean, have) ||
				wordOverlap(reqClean, have) > similarityThreshold {
				found = true
				break
			}
		}
		if found {
			matched = append(matched, req)
		} else {
			missing = append(missing, req)
		}
	}
	return matched, missing
}
