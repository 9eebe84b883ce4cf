package engine

// Weights is the per-section weight vector used for aggregation. The
// components must sum to 1.
type Weights struct {
	Skills     float64
	Contact    float64
	Experience float64
	Projects   float64
	Education  float64
	Format     float64
}

// DefaultWeights returns the production weight vector.
func DefaultWeights() Weights {
	return Weights{
		Skills:     0.35,
		Contact:    0.10,
		Experience: 0.20,
		Projects:   0.10,
		Education:  0.15,
		Format:     0.10,
	}
}

const (
	goodFitThreshold      = 70.0
	potentialFitThreshold = 50.0

	holisticBonusPoints = 8.0
)

// weightedSum combines the section scores under the weight vector.
func (w Weights) weightedSum(s SectionScores) float64 {
	return s.Skills*w.Skills +
		s.Contact*w.Contact +
		s.Experience*w.Experience +
		s.Projects*w.Projects +
		s.Education*w.Education +
		s.Format*w.Format
}

// classify maps the un-truncated weighted score to a fit label.
func classify(score float64) string {
	switch {
	case score >= goodFitThreshold:
		return ClassGoodFit
	case score >= potentialFitThreshold:
		return ClassPotentialFit
	default:
		return ClassNoFit
	}
}

// holisticBonusInput carries the signals the excellence bonus checks.
type holisticBonusInput struct {
	MatchRate       float64
	SkillsScore     float64
	ExperienceCount int
	ProjectCount    int
	ExperienceScore float64
	ProjectsScore   float64
}

// qualifiesForBonus reports whether the candidate clears every bar of
// the excellence bonus. All conditions are conjunctive.
func qualifiesForBonus(in holisticBonusInput) bool {
	return in.MatchRate >= 0.70 &&
		in.SkillsScore >= 80 &&
		in.ExperienceCount >= 2 &&
		in.ProjectCount >= 2 &&
		in.ExperienceScore >= 65 &&
		in.ProjectsScore >= 60
}
