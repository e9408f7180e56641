package tailor

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeProfileComesFromVerifiedFacts(t *testing.T) {
	personal := BuildDossier(fullCandidate()).PersonalInfo
	var g GeneratedContent
	require.NoError(t, json.Unmarshal([]byte(validReply), &g))

	res := Merge(personal, g)
	raw, err := json.Marshal(res)
	require.NoError(t, err)

	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, k := range []string{"profile", "job_title_target", "profile_summary", "selected_skills",
		"selected_languages", "experience", "education", "projects", "certificates"} {
		assert.Contains(t, m, k)
	}
	var profile PersonalInfo
	require.NoError(t, json.Unmarshal(m["profile"], &profile))
	assert.Equal(t, personal, profile)
}

// A generated block that grew its own "profile" key must not replace the
// verified one.
func TestMergeProfileWinsNameClash(t *testing.T) {
	type driftedContent struct {
		Profile PersonalInfo `json:"profile"`
		GeneratedContent
	}
	type driftedResult struct {
		Profile PersonalInfo `json:"profile"`
		driftedContent
	}
	verified := PersonalInfo{FirstName: "Ana", Email: "ana@example.com"}
	forged := PersonalInfo{FirstName: "Eve", Email: "eve@evil.test"}

	raw, err := json.Marshal(driftedResult{Profile: verified, driftedContent: driftedContent{Profile: forged}})
	require.NoError(t, err)
	var back struct {
		Profile PersonalInfo `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, verified, back.Profile)
}

func TestMergeNormalizesNilSlices(t *testing.T) {
	res := Merge(PersonalInfo{}, GeneratedContent{JobTitleTarget: "x"})
	raw, err := json.Marshal(res)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "null")
}
