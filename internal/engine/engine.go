// Package engine scores a resume against a job description. The
// pipeline is pure: extraction, parsing, scoring and aggregation read
// only their inputs and the taxonomy, so one Analyzer is safe to share
// across concurrent analyses.
package engine

import "strings"

// Analyzer runs the full analysis pipeline. Construct once with
// NewAnalyzer and reuse; it holds only read-only state.
type Analyzer struct {
	taxonomy     *Taxonomy
	seg          *segmenter
	weights      Weights
	bonusEnabled bool
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithTaxonomy replaces the built-in skill taxonomy.
func WithTaxonomy(t *Taxonomy) Option {
	return func(a *Analyzer) { a.taxonomy = t }
}

// WithWeights replaces the default section weight vector.
func WithWeights(w Weights) Option {
	return func(a *Analyzer) { a.weights = w }
}

// WithHolisticBonus toggles the excellence bonus stage. On by default.
func WithHolisticBonus(enabled bool) Option {
	return func(a *Analyzer) { a.bonusEnabled = enabled }
}

// NewAnalyzer builds an Analyzer with the default taxonomy, weights and
// bonus stage unless overridden by options.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		taxonomy:     DefaultTaxonomy(),
		seg:          newSegmenter(),
		weights:      DefaultWeights(),
		bonusEnabled: true,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze scores resumeText against jobDescription and returns the
// complete result. It is deterministic: the same inputs always produce
// the same result. Callers own input validation and timing.
func (a *Analyzer) Analyze(resumeText, jobDescription string) Result {
	contact := contactExtractor{}.extract(resumeText)
	headerTitle := extractHeaderTitle(resumeText)

	experience := parseExperience(a.seg.extract(resumeText, experienceHeaders))
	education := parseEducation(a.seg.extract(resumeText, educationHeaders))
	projects := parseProjects(a.seg.extract(resumeText, projectHeaders))
	certifications := parseCertifications(a.seg.extract(resumeText, certificationHeaders))

	resumeSkills := extractSkills(resumeText, a.seg, a.taxonomy)
	requirements := extractJobRequirements(jobDescription, a.seg, a.taxonomy)

	skillsScore, matched, missing := scoreSkills(resumeSkills, requirements.All)

	sections := SectionScores{
		Skills:     skillsScore,
		Contact:    scoreContact(contact, headerTitle),
		Experience: scoreExperience(experience, requirements.All),
		Education:  scoreEducation(education),
		Projects:   scoreProjects(projects, requirements.Skills),
		Format:     scoreFormat(resumeText),
	}

	weighted := a.weights.weightedSum(sections)

	matchRate := 0.0
	if len(requirements.All) > 0 {
		matchRate = float64(len(matched)) / float64(len(requirements.All))
	}

	bonusApplied := false
	if a.bonusEnabled && qualifiesForBonus(holisticBonusInput{
		MatchRate:       matchRate,
		SkillsScore:     sections.Skills,
		ExperienceCount: len(experience),
		ProjectCount:    len(projects),
		ExperienceScore: sections.Experience,
		ProjectsScore:   sections.Projects,
	}) {
		weighted += holisticBonusPoints
		if weighted > 100 {
			weighted = 100
		}
		bonusApplied = true
	}

	result := Result{
		OverallScore:   int(weighted),
		WeightedScore:  weighted,
		Classification: classify(weighted),
		SectionScores:  sections,
		ExtractedData: ExtractedData{
			ContactInfo:    contact,
			HeaderTitle:    headerTitle,
			Experience:     experience,
			Education:      education,
			Projects:       projects,
			Certifications: certifications,
			Skills:         resumeSkills,
		},
		MatchedSkills: matched,
		MissingSkills: missing,
		BonusApplied:  bonusApplied,
	}
	result.Verdict = buildVerdict(result)
	return result
}

// Skills returns the taxonomy tokens the analyzer recognizes. Useful
// for diagnostics and the CLI.
func (a *Analyzer) Skills() []string {
	return a.taxonomy.Skills()
}

// NormalizeWhitespace collapses runs of spaces and tabs inside lines
// while preserving line structure. Extractors call it before analysis.
func NormalizeWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.Join(strings.Fields(l), " ")
	}
	return strings.Join(lines, "\n")
}
