package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobmatch/internal/types"
)

func TestDefaultWeights_PublishedTable(t *testing.T) {
	w := DefaultWeights()
	require.NoError(t, w.Validate())

	assert.Equal(t, "v1", w.Version)
	assert.InDelta(t, 0.25, w.For(types.DimensionSkills), 0.0001)
	assert.InDelta(t, 0.20, w.For(types.DimensionExperience), 0.0001)
	assert.InDelta(t, 0.15, w.For(types.DimensionPersonality), 0.0001)
	assert.InDelta(t, 0.15, w.For(types.DimensionLocation), 0.0001)
	assert.InDelta(t, 0.10, w.For(types.DimensionEducation), 0.0001)
	assert.InDelta(t, 0.10, w.For(types.DimensionCompensation), 0.0001)
	assert.InDelta(t, 0.05, w.For(types.DimensionCulture), 0.0001)
}

func TestWeights_ValidateRejectsBadTables(t *testing.T) {
	noVersion := DefaultWeights()
	noVersion.Version = ""
	assert.Error(t, noVersion.Validate())

	badSum := DefaultWeights()
	badSum.Skills = 0.5
	assert.Error(t, badSum.Validate())

	negative := DefaultWeights()
	negative.Skills = -0.1
	negative.Experience = 0.55
	assert.Error(t, negative.Validate())
}

func TestWeights_ForUnknownDimension(t *testing.T) {
	assert.Equal(t, 0.0, DefaultWeights().For(types.Dimension("astrology")))
}
