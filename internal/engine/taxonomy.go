package engine

import (
	"regexp"
	"sort"
	"strings"
)

// Taxonomy is the fixed reference list of skill tokens the engine
// recognizes, grouped by category. Build it once at process start and
// share it across analyses; it is read-only after construction.
type Taxonomy struct {
	categories map[string][]string
	ordered    []string
	patterns   map[string]*regexp.Regexp
}

// DefaultTaxonomy returns the built-in skill reference list.
func DefaultTaxonomy() *Taxonomy {
	return NewTaxonomy(map[string][]string{
		"programming": {
			"python", "java", "javascript", "typescript", "c++", "c#", "c", "ruby",
			"php", "swift", "kotlin", "scala", "go", "rust", "r", "matlab",
			"perl", "shell", "bash", "powershell", "sql", "plsql", "nosql",
		},
		"web_frameworks": {
			"react", "angular", "vue", "nodejs", "express", "django", "flask",
			"spring", "rails", "laravel", "asp.net", "blazor", "nextjs", "nuxtjs",
			"fastapi", "tornado", "bottle", "pyramid",
		},
		"databases": {
			"mysql", "postgresql", "mongodb", "redis", "elasticsearch", "dynamodb",
			"oracle", "sqlite", "cassandra", "neo4j", "influxdb", "mariadb",
			"cosmos", "firestore", "couchdb",
		},
		"cloud_devops": {
			"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "ansible",
			"jenkins", "gitlab", "github", "circleci", "travis", "helm", "vagrant",
			"prometheus", "grafana", "elk", "splunk", "git", "linux",
		},
		"data_science": {
			"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "keras",
			"opencv", "nltk", "spacy", "matplotlib", "seaborn", "plotly", "tableau",
			"powerbi", "spark", "hadoop", "kafka", "airflow", "mlflow",
		},
		"mobile": {
			"android", "ios", "react native", "flutter", "xamarin", "ionic",
			"cordova", "phonegap", "swiftui", "objective-c",
		},
	})
}

// NewTaxonomy builds a taxonomy from category -> skill tokens. Tokens are
// matched case-insensitively on word boundaries, tolerating a trailing
// "js" or ".js" suffix (so "node" also hits "nodejs").
func NewTaxonomy(categories map[string][]string) *Taxonomy {
	t := &Taxonomy{
		categories: make(map[string][]string, len(categories)),
		patterns:   make(map[string]*regexp.Regexp),
	}

	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)

	seen := make(map[string]bool)
	for _, name := range names {
		skills := append([]string(nil), categories[name]...)
		t.categories[name] = skills
		for _, skill := range skills {
			key := strings.ToLower(skill)
			if seen[key] {
				continue
			}
			seen[key] = true
			t.ordered = append(t.ordered, skill)
			t.patterns[key] = compileSkillPattern(key)
		}
	}
	return t
}

// Categories returns the category names in sorted order.
func (t *Taxonomy) Categories() []string {
	names := make([]string, 0, len(t.categories))
	for name := range t.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Skills returns the deduplicated skill tokens in deterministic order.
func (t *Taxonomy) Skills() []string {
	return append([]string(nil), t.ordered...)
}

// FindIn returns every taxonomy skill present in the text, title-cased,
// in taxonomy order.
func (t *Taxonomy) FindIn(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, skill := range t.ordered {
		if t.patterns[strings.ToLower(skill)].MatchString(lower) {
			found = append(found, titleCase(skill))
		}
	}
	return found
}

func compileSkillPattern(skill string) *regexp.Regexp {
	// Tokens like "c++" and "c#" have no trailing word boundary.
	quoted := regexp.QuoteMeta(skill)
	if strings.ContainsAny(skill, "+#") {
		return regexp.MustCompile(`(^|[^a-z0-9])` + quoted + `($|[^a-z0-9+#])`)
	}
	return regexp.MustCompile(`\b` + quoted + `(?:js|\.js)?\b`)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
