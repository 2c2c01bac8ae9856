package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptionalStringUnmarshal(t *testing.T) {
	var payload struct {
		Parent OptionalString `json:"parent_team_id"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{}`), &payload))
	require.False(t, payload.Parent.Set)

	require.NoError(t, json.Unmarshal([]byte(`{"parent_team_id": null}`), &payload))
	require.True(t, payload.Parent.Set)
	require.Nil(t, payload.Parent.Value)

	require.NoError(t, json.Unmarshal([]byte(`{"parent_team_id": "abc"}`), &payload))
	require.True(t, payload.Parent.Set)
	require.Equal(t, "abc", *payload.Parent.Value)

	require.Error(t, json.Unmarshal([]byte(`{"parent_team_id": 12}`), &payload))
}

func TestTeamPatchApply(t *testing.T) {
	parent := "p1"
	team := Team{ID: "t1", Name: "Backend", ParentTeamID: &parent}

	name := "Platform"
	TeamPatch{Name: &name}.Apply(&team)
	require.Equal(t, "Platform", team.Name)
	require.Equal(t, "p1", *team.ParentTeamID)

	TeamPatch{ParentTeamID: NewOptionalString(nil)}.Apply(&team)
	require.Equal(t, "Platform", team.Name)
	require.Nil(t, team.ParentTeamID)

	require.True(t, TeamPatch{}.IsEmpty())
	require.False(t, TeamPatch{ParentTeamID: NewOptionalString(nil)}.IsEmpty())
}
