package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobmatch/internal/features"
	"github.com/jonathan/jobmatch/internal/types"
)

func candidateWithSkills(names ...string) *features.CandidateFeatures {
	cf := &features.CandidateFeatures{}
	for _, n := range names {
		cf.Skills = append(cf.Skills, features.CandidateSkill{Name: n, Proficiency: 4, Years: 3})
	}
	return cf
}

func jobWithRequirements(reqs ...features.Requirement) *features.JobFeatures {
	return &features.JobFeatures{Requirements: reqs}
}

func TestScoreSkills_NoRequirementsIsInapplicable(t *testing.T) {
	cf := candidateWithSkills("Go")
	jf := &features.JobFeatures{}

	_, ok := ScoreSkills(cf, jf)
	assert.False(t, ok)
}

func TestScoreSkills_AllExactMatches(t *testing.T) {
	cf := candidateWithSkills("React", "TypeScript", "Node.js")
	jf := jobWithRequirements(
		features.Requirement{Name: "React", Importance: 0.9},
		features.Requirement{Name: "TypeScript", Importance: 0.8},
		features.Requirement{Name: "Node.js", Importance: 0.6},
	)

	ds, ok := ScoreSkills(cf, jf)
	require.True(t, ok)
	assert.InDelta(t, 1.0, ds.Score, 0.0001)
	assert.Equal(t, types.DimensionSkills, ds.Dimension)
	assert.ElementsMatch(t, []string{"React", "TypeScript", "Node.js"}, ds.Matched)
	assert.Empty(t, ds.Missing)
	assert.False(t, ds.InsufficientData)
}

func TestScoreSkills_SimilarAndTransferableTiers(t *testing.T) {
	// React Native contains React: similar tier at 0.8 credit.
	// Vue is in React's related group: transferable tier at 0.5 credit.
	cf := candidateWithSkills("React")

	similar, ok := ScoreSkills(cf, jobWithRequirements(
		features.Requirement{Name: "React Native", Importance: 1.0},
	))
	require.True(t, ok)
	assert.InDelta(t, 0.8, similar.Score, 0.0001)
	require.Len(t, similar.Matched, 1)
	assert.Contains(t, similar.Matched[0], "via React")

	transferable, ok := ScoreSkills(cf, jobWithRequirements(
		features.Requirement{Name: "Vue", Importance: 1.0},
	))
	require.True(t, ok)
	assert.InDelta(t, 0.5, transferable.Score, 0.0001)
	require.Len(t, transferable.Matched, 1)
	assert.Contains(t, transferable.Matched[0], "transferable from React")
}

func TestScoreSkills_MissingRequirement(t *testing.T) {
	cf := candidateWithSkills("Go")
	jf := jobWithRequirements(
		features.Requirement{Name: "Go", Importance: 0.5},
		features.Requirement{Name: "Photoshop", Importance: 0.5},
	)

	ds, ok := ScoreSkills(cf, jf)
	require.True(t, ok)
	assert.InDelta(t, 0.5, ds.Score, 0.0001)
	assert.Equal(t, []string{"Go"}, ds.Matched)
	assert.Equal(t, []string{"Photoshop"}, ds.Missing)
}

func TestScoreSkills_ImportanceWeighting(t *testing.T) {
	cf := candidateWithSkills("Go")

	// Matching the important requirement scores higher than matching the
	// unimportant one.
	matchImportant, _ := ScoreSkills(cf, jobWithRequirements(
		features.Requirement{Name: "Go", Importance: 0.9},
		features.Requirement{Name: "Photoshop", Importance: 0.1},
	))
	matchUnimportant, _ := ScoreSkills(cf, jobWithRequirements(
		features.Requirement{Name: "Go", Importance: 0.1},
		features.Requirement{Name: "Photoshop", Importance: 0.9},
	))

	assert.Greater(t, matchImportant.Score, matchUnimportant.Score)
	assert.InDelta(t, 0.9, matchImportant.Score, 0.0001)
	assert.InDelta(t, 0.1, matchUnimportant.Score, 0.0001)
}

func TestScoreSkills_NoCandidateSkills(t *testing.T) {
	cf := &features.CandidateFeatures{}
	jf := jobWithRequirements(
		features.Requirement{Name: "Go", Importance: 0.8},
		features.Requirement{Name: "React", Importance: 0.6},
	)

	ds, ok := ScoreSkills(cf, jf)
	require.True(t, ok)
	assert.True(t, ds.InsufficientData)
	assert.InDelta(t, 0.0, ds.Score, 0.0001)
	assert.InDelta(t, 0.2, ds.Completeness, 0.0001)
	assert.ElementsMatch(t, []string{"Go", "React"}, ds.Missing)
}

func TestScoreSkills_ScoreStaysInBounds(t *testing.T) {
	cf := candidateWithSkills("Go", "React", "PostgreSQL", "Docker")
	jf := jobWithRequirements(
		features.Requirement{Name: "golang", Importance: 1.0},
		features.Requirement{Name: "Vue", Importance: 0.3},
		features.Requirement{Name: "MySQL", Importance: 0.2},
		features.Requirement{Name: "Kubernetes", Importance: 0.7},
	)

	ds, ok := ScoreSkills(cf, jf)
	require.True(t, ok)
	assert.GreaterOrEqual(t, ds.Score, 0.0)
	assert.LessOrEqual(t, ds.Score, 1.0)
}
