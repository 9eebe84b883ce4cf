package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreSkillsEmptyRequirements(t *testing.T) {
	skills := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	score, matched, missing := scoreSkills(skills, nil)
	assert.Equal(t, 65.0, score)
	assert.Len(t, matched, 10)
	assert.Empty(t, missing)
}

func TestScoreSkillsBands(t *testing.T) {
	// Single-word skills with no substring or overlap relation, so the
	// matched count is exactly the shared names.
	tests := []struct {
		name     string
		resume   []string
		required []string
		want     float64
	}{
		{
			name:     "low band",
			resume:   []string{"python"},
			required: []string{"python", "rust", "golang", "erlang", "haskell"},
			want:     0.2*125 + 2, // 27
		},
		{
			name:     "mid band",
			resume:   []string{"python"},
			required: []string{"python", "rust"},
			want:     50 + 0.1*100 + 2, // 62
		},
		{
			name:     "high band",
			resume:   []string{"python", "rust", "erlang"},
			required: []string{"python", "rust", "erlang", "haskell", "fortran"},
			want:     70 + 0*75 + 6, // 76
		},
		{
			name:     "full match clamps at 100",
			resume:   []string{"python", "rust"},
			required: []string{"python", "rust"},
			want:     100,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, _, _ := scoreSkills(tt.resume, tt.required)
			assert.InDelta(t, tt.want, score, 1e-9)
		})
	}
}

func TestScoreSkillsMonotonicInMatches(t *testing.T) {
	required := []string{"python", "rust", "golang", "erlang", "haskell"}
	prev := -1.0
	resume := []string{}
	for _, s := range required {
		resume = append(resume, s)
		score, _, _ := scoreSkills(resume, required)
		assert.GreaterOrEqual(t, score, prev)
		prev = score
	}
}

func TestScoreContact(t *testing.T) {
	full := ContactInfo{
		Email: "a@b.com", Phone: "5551234567",
		LinkedIn: "linkedin.com/in/a", GitHub: "github.com/a",
	}
	assert.Equal(t, 100.0, scoreContact(full, "Software Engineer"))
	assert.Equal(t, 30.0, scoreContact(ContactInfo{Email: "a@b.com"}, ""))
	assert.Equal(t, 0.0, scoreContact(ContactInfo{}, ""))
	assert.Equal(t, 20.0, scoreContact(ContactInfo{}, "Data Analyst"))
}

func TestScoreExperience(t *testing.T) {
	assert.Equal(t, 15.0, scoreExperience(nil, nil))

	two := []ExperienceEntry{
		{Company: "Acme", Title: "Python Developer"},
		{Company: "Globex", Title: "Analyst"},
	}
	assert.Equal(t, 50.0, scoreExperience(two, nil))

	// One entry, one requirement found in the entry text.
	one := []ExperienceEntry{{Company: "Acme", Title: "Python Developer"}}
	assert.InDelta(t, 50.0, scoreExperience(one, []string{"python"}), 1e-9)

	// Entry count bonus caps at 75.
	many := make([]ExperienceEntry, 5)
	assert.Equal(t, 75.0, scoreExperience(many, nil))
}

func TestScoreEducation(t *testing.T) {
	assert.Equal(t, 30.0, scoreEducation(nil))

	bachelor := []EducationEntry{{Institution: "State University", Degree: "Bachelor of Science"}}
	assert.Equal(t, 90.0, scoreEducation(bachelor))

	master := []EducationEntry{{Institution: "State University", Degree: "Master of Science"}}
	assert.Equal(t, 95.0, scoreEducation(master))

	phd := []EducationEntry{{Institution: "State University", Degree: "PhD in Physics"}}
	assert.Equal(t, 100.0, scoreEducation(phd))

	bare := []EducationEntry{{Institution: "Somewhere", Degree: degreeNotSpecified}}
	assert.Equal(t, 60.0, scoreEducation(bare))
}

func TestScoreProjects(t *testing.T) {
	assert.Equal(t, 20.0, scoreProjects(nil, nil))

	one := []ProjectEntry{{Name: "Tracker", Technologies: "Python, Flask"}}
	assert.Equal(t, 50.0, scoreProjects(one, nil))
	assert.InDelta(t, 80.0, scoreProjects(one, []string{"python", "flask"}), 1e-9)

	three := make([]ProjectEntry, 3)
	assert.Equal(t, 70.0, scoreProjects(three, nil))
}

func TestScoreFormat(t *testing.T) {
	assert.Equal(t, 5.0, scoreFormat("hello world"))

	var words []string
	for i := 0; i < 300; i++ {
		words = append(words, "word")
	}
	rich := "EXPERIENCE\nEDUCATION\nSKILLS\nPROJECTS\n• item\n" + joinWords(words)
	assert.Equal(t, 100.0, scoreFormat(rich))
}

func joinWords(words []string) string {
	out := ""
	for _, w := range words {
		out += w + " "
	}
	return out
}

func TestSectionScoresStayInBounds(t *testing.T) {
	huge := make([]ExperienceEntry, 50)
	assert.LessOrEqual(t, scoreExperience(huge, nil), 100.0)

	manySkills := make([]string, 200)
	for i := range manySkills {
		manySkills[i] = "python"
	}
	score, _, _ := scoreSkills(manySkills, []string{"python"})
	assert.LessOrEqual(t, score, 100.0)
	assert.GreaterOrEqual(t, score, 0.0)
}
