// ABOUTME: Tests for model-level helpers
// ABOUTME: Stage vocabulary, probability mapping, and nullable decoding
package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidStage(t *testing.T) {
	for _, stage := range Stages {
		assert.True(t, ValidStage(stage), stage)
	}
	assert.False(t, ValidStage("daydreaming"))
	assert.False(t, ValidStage(""))
	assert.False(t, ValidStage("Lead"), "stage vocabulary is lowercase")
}

func TestStageProbabilityMapping(t *testing.T) {
	assert.Equal(t, 10, StageProbability[StageLead])
	assert.Equal(t, 25, StageProbability[StageQualified])
	assert.Equal(t, 50, StageProbability[StageProposal])
	assert.Equal(t, 75, StageProbability[StageNegotiation])
	assert.Equal(t, 100, StageProbability[StageClosedWon])
	assert.Equal(t, 0, StageProbability[StageClosedLost])
}

func TestStageConfigCoversAllStages(t *testing.T) {
	for _, stage := range Stages {
		display, ok := StageConfig[stage]
		require.True(t, ok, stage)
		assert.NotEmpty(t, display.Label)
		assert.NotEmpty(t, display.Color)
	}
}

func TestNullableAbsent(t *testing.T) {
	var patch CompanyPatch
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Acme"}`), &patch))

	assert.False(t, patch.ParentID.Set)
	assert.Nil(t, patch.ParentID.Value)
}

func TestNullableExplicitNull(t *testing.T) {
	var patch CompanyPatch
	require.NoError(t, json.Unmarshal([]byte(`{"parentId": null}`), &patch))

	assert.True(t, patch.ParentID.Set)
	assert.Nil(t, patch.ParentID.Value)
}

func TestNullableValue(t *testing.T) {
	var patch CompanyPatch
	require.NoError(t, json.Unmarshal([]byte(`{"parentId": "comp-001"}`), &patch))

	require.True(t, patch.ParentID.Set)
	require.NotNil(t, patch.ParentID.Value)
	assert.Equal(t, "comp-001", *patch.ParentID.Value)
}
