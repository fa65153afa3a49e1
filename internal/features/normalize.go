// Package features turns raw candidate profiles and job postings into
// normalized, comparable feature bundles for the dimension scorers.
package features

import (
	"sort"
	"strings"
)

// skillNormalizations maps common skill name variants to canonical names
var skillNormalizations = map[string]string{
	"golang":      "Go",
	"go lang":     "Go",
	"javascript":  "JavaScript",
	"js":          "JavaScript",
	"typescript":  "TypeScript",
	"ts":          "TypeScript",
	"k8s":         "Kubernetes",
	"kubernetes":  "Kubernetes",
	"react.js":    "React",
	"reactjs":     "React",
	"vue.js":      "Vue",
	"vuejs":       "Vue",
	"node.js":     "Node.js",
	"nodejs":      "Node.js",
	"node":        "Node.js",
	"postgres":    "PostgreSQL",
	"postgresql":  "PostgreSQL",
	"psql":        "PostgreSQL",
	"c sharp":     "C#",
	"csharp":      "C#",
	"py":          "Python",
	"python3":     "Python",
	"ml":          "Machine Learning",
	"aws":         "AWS",
	"amazon web services": "AWS",
	"gcp":         "GCP",
	"google cloud": "GCP",
	"ci/cd":       "CI/CD",
	"cicd":        "CI/CD",
}

// relatedSkillGroups clusters skills that are transferable between each
// other: knowing one is meaningful partial evidence for the others.
var relatedSkillGroups = [][]string{
	{"React", "Vue", "Angular", "Svelte"},
	{"PostgreSQL", "MySQL", "MariaDB", "SQL Server", "Oracle"},
	{"MongoDB", "DynamoDB", "Cassandra", "CouchDB"},
	{"AWS", "GCP", "Azure"},
	{"Go", "Rust", "C", "C++"},
	{"Python", "Ruby", "Perl"},
	{"Java", "Kotlin", "Scala", "C#"},
	{"JavaScript", "TypeScript"},
	{"Docker", "Kubernetes", "Podman"},
	{"Jenkins", "CI/CD", "GitHub Actions", "GitLab CI", "CircleCI"},
	{"Redis", "Memcached"},
	{"Kafka", "RabbitMQ", "NATS", "SQS"},
}

// relatedGroupIndex maps canonical skill names to a group id, built once at init
var relatedGroupIndex = buildRelatedGroupIndex()

func buildRelatedGroupIndex() map[string]int {
	idx := make(map[string]int)
	for groupID, group := range relatedSkillGroups {
		for _, name := range group {
			idx[strings.ToLower(name)] = groupID
		}
	}
	return idx
}

// NormalizeSkillName normalizes a skill name to its canonical form
func NormalizeSkillName(name string) string {
	normalized := strings.TrimSpace(name)
	if normalized == "" {
		return ""
	}

	lower := strings.ToLower(normalized)
	if canonical, ok := skillNormalizations[lower]; ok {
		return canonical
	}

	// Single all-lowercase or all-uppercase words get title case so that
	// "react" and "REACT" compare equal to "React".
	if !strings.Contains(normalized, " ") &&
		(normalized == strings.ToLower(normalized) || normalized == strings.ToUpper(normalized)) &&
		len(normalized) > 1 {
		return strings.ToUpper(normalized[:1]) + strings.ToLower(normalized[1:])
	}

	return normalized
}

// tokenize splits a normalized skill name into lowercase tokens
func tokenize(name string) []string {
	fields := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == ' ' || r == '-' || r == '_' || r == '/'
	})
	sort.Strings(fields)
	return fields
}

// Similarity tiers used by the skills scorer. Anything below
// SimilarityTransferable counts as missing.
const (
	SimilarityExact        = 0.95
	SimilaritySimilar      = 0.80
	SimilarityTransferable = 0.60
)

// SkillSimilarity returns a deterministic semantic similarity in [0,1]
// between two skill names. Exact canonical matches score 1.0; name
// containment (React vs React Native) scores in the similar band; skills
// in the same related group score in the transferable band; everything
// else is scaled token overlap below the transferable threshold.
func SkillSimilarity(a, b string) float64 {
	ca := NormalizeSkillName(a)
	cb := NormalizeSkillName(b)
	if ca == "" || cb == "" {
		return 0
	}

	la := strings.ToLower(ca)
	lb := strings.ToLower(cb)
	if la == lb {
		return 1.0
	}

	// One name containing the other signals a specialization of the same skill
	if strings.Contains(la, lb) || strings.Contains(lb, la) {
		return 0.85
	}

	ga, okA := relatedGroupIndex[la]
	gb, okB := relatedGroupIndex[lb]
	if okA && okB && ga == gb {
		return 0.65
	}

	// Token overlap, scaled to stay below the transferable threshold so
	// incidental word reuse never masquerades as a real match.
	ta := tokenize(ca)
	tb := tokenize(cb)
	overlap := tokenOverlap(ta, tb)
	return overlap * 0.55
}

// tokenOverlap computes Jaccard overlap between two sorted token sets
func tokenOverlap(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]bool, len(a))
	for _, t := range a {
		set[t] = true
	}
	common := 0
	union := len(set)
	for _, t := range b {
		if set[t] {
			common++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(common) / float64(union)
}

// degreeRank maps degree names to numeric ranks for comparison
var degreeRank = map[string]int{
	"associate": 1,
	"bachelor":  2,
	"master":    3,
	"phd":       4,
	"doctorate": 4,
}

// DegreeRank returns the numeric rank of a degree name, 0 if unknown
func DegreeRank(degree string) int {
	return degreeRank[strings.ToLower(strings.TrimSpace(degree))]
}
