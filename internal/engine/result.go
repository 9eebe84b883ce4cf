package engine

// ContactInfo holds contact details pulled from the top of a resume.
// Every field is independently optional; an empty string means the
// extractor found nothing, which is meaningful to the contact scorer.
type ContactInfo struct {
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// ExperienceEntry is one position parsed from the experience section.
// Responsibilities preserve document order.
type ExperienceEntry struct {
	Company          string   `json:"company"`
	Title            string   `json:"title"`
	Location         string   `json:"location,omitempty"`
	Duration         string   `json:"duration,omitempty"`
	Responsibilities []string `json:"responsibilities"`
}

// EducationEntry is one credential parsed from the education section.
type EducationEntry struct {
	Institution    string `json:"institution"`
	Degree         string `json:"degree"`
	FieldOfStudy   string `json:"field_of_study,omitempty"`
	GraduationDate string `json:"graduation_date,omitempty"`
	GPA            string `json:"gpa,omitempty"`
}

// ProjectEntry is one project parsed from the projects section.
type ProjectEntry struct {
	Name         string   `json:"name"`
	Technologies string   `json:"technologies,omitempty"`
	Description  []string `json:"description"`
	GitHubLink   string   `json:"github_link,omitempty"`
}

// CertificationEntry is a certification or award line. When the issuer
// and date cannot be separated the whole line lands in Name.
type CertificationEntry struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

// SectionScores holds the six independent section scores, each in [0,100].
type SectionScores struct {
	Contact    float64 `json:"contact"`
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
	Projects   float64 `json:"projects"`
	Format     float64 `json:"format"`
}

// ExtractedData bundles everything the parsers pulled out of the resume.
type ExtractedData struct {
	ContactInfo    ContactInfo          `json:"contact_info"`
	HeaderTitle    string               `json:"header_title,omitempty"`
	Experience     []ExperienceEntry    `json:"experience"`
	Education      []EducationEntry     `json:"education"`
	Projects       []ProjectEntry       `json:"projects"`
	Certifications []CertificationEntry `json:"certifications"`
	Skills         []string             `json:"skills"`
}

// Classification labels for the overall score.
const (
	ClassGoodFit      = "Good Fit"
	ClassPotentialFit = "Potential Fit"
	ClassNoFit        = "No Fit"
)

// Result is the terminal aggregate of one analysis run.
type Result struct {
	OverallScore   int           `json:"overall_score"`
	WeightedScore  float64       `json:"weighted_score"`
	Classification string        `json:"classification"`
	SectionScores  SectionScores `json:"section_scores"`
	ExtractedData  ExtractedData `json:"extracted_data"`
	MatchedSkills  []string      `json:"matched_skills"`
	MissingSkills  []string      `json:"missing_skills"`
	BonusApplied   bool          `json:"bonus_applied"`
	Verdict        string        `json:"verdict"`
}
