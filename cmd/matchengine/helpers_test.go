package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobmatch/internal/scoring"
	"github.com/jonathan/jobmatch/internal/types"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func candidateJSON(id uuid.UUID) string {
	return `{
		"id": "` + id.String() + `",
		"version": 1,
		"skills": [{"name": "Go", "proficiency": 5, "years": 4}],
		"experiences": [{"title": "Engineer", "years": 5}]
	}`
}

func jobJSON(id uuid.UUID) string {
	return `{
		"id": "` + id.String() + `",
		"title": "Backend Engineer",
		"version": 1,
		"required_skills": [{"name": "Go", "importance": 0.9}],
		"experience_min": 3
	}`
}

func TestLoadCandidate(t *testing.T) {
	id := uuid.New()
	path := writeTempFile(t, "candidate.json", candidateJSON(id))

	profile, err := loadCandidate(path)
	require.NoError(t, err)
	assert.Equal(t, id, profile.ID)
	require.Len(t, profile.Skills, 1)
	assert.Equal(t, "Go", profile.Skills[0].Name)
}

func TestLoadCandidate_MissingFile(t *testing.T) {
	_, err := loadCandidate(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadCandidate_InvalidProfile(t *testing.T) {
	path := writeTempFile(t, "candidate.json", `{"version": 1}`)
	_, err := loadCandidate(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid candidate profile")
}

func TestLoadJob(t *testing.T) {
	id := uuid.New()
	path := writeTempFile(t, "job.json", jobJSON(id))

	job, err := loadJob(path)
	require.NoError(t, err)
	assert.Equal(t, id, job.ID)
	assert.Equal(t, "Backend Engineer", job.Title)
}

func TestLoadJob_MalformedJSON(t *testing.T) {
	path := writeTempFile(t, "job.json", `{broken`)
	_, err := loadJob(path)
	assert.Error(t, err)
}

func TestLoadWeightsOrDefault_EmptyPath(t *testing.T) {
	w, err := loadWeightsOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, scoring.DefaultWeights(), w)
}

func TestEvaluatePair(t *testing.T) {
	candidatePath := writeTempFile(t, "candidate.json", candidateJSON(uuid.New()))
	jobPath := writeTempFile(t, "job.json", jobJSON(uuid.New()))

	profile, err := loadCandidate(candidatePath)
	require.NoError(t, err)
	job, err := loadJob(jobPath)
	require.NoError(t, err)

	result, err := evaluatePair(profile, job, scoring.DefaultWeights())
	require.NoError(t, err)
	assert.Equal(t, profile.ID, result.CandidateID)
	assert.Equal(t, job.ID, result.JobID)
	assert.InDelta(t, 1.0, result.OverallScore, 0.0001)
	assert.False(t, result.ComputedAt.IsZero())
}

func TestEvaluatePair_IncompleteProfile(t *testing.T) {
	profile := &types.CandidateProfile{ID: uuid.New(), Version: 1}
	job := &types.JobPosting{ID: uuid.New(), Version: 1}

	_, err := evaluatePair(profile, job, scoring.DefaultWeights())
	assert.Error(t, err)
}

func TestWriteOutput_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.json")
	require.NoError(t, writeOutput(path, map[string]string{"status": "ok"}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status": "ok"}`, string(content))
}

func TestWriteOutput_Stdout(t *testing.T) {
	assert.NoError(t, writeOutput("", map[string]int{"n": 1}))
}
