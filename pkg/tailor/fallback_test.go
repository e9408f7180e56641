package tailor

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackFullDossier(t *testing.T) {
	d := BuildDossier(fullCandidate())
	g := Fallback(d)

	assert.Equal(t, FallbackJobTitle, g.JobTitleTarget)
	assert.Equal(t, FallbackSummary, g.ProfileSummary)
	assert.Equal(t, []string{"Go", "PostgreSQL", "Docker", "Kubernetes", "gRPC"}, g.SelectedSkills)
	assert.Equal(t, []LanguageLevel{{Name: "English", Level: "C1"}}, g.SelectedLanguages)

	require.Len(t, g.Experience, 2)
	assert.Equal(t, "Tech Corp", g.Experience[0].Company)
	assert.Equal(t, "Backend Dev", g.Experience[0].Position)
	assert.Equal(t, "2021-03-01 - Actualidad", g.Experience[0].DateRange)
	assert.Equal(t, []string{
		"Gestión experta en Tech Corp (Mock Generated).",
		"Logro destacado relacionado con la oferta.",
	}, g.Experience[0].EnhancedDescription)
	assert.Equal(t, "2019-06-01 - 2020-12-31", g.Experience[1].DateRange)

	assert.Equal(t, []EducationBlock{{Institution: "UPM", Degree: "BSc", DateRange: "2015-09-01 - 2019-06-30"}}, g.Education)
	require.Len(t, g.Projects, 2)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, g.Projects[0].TechStack)
	assert.Equal(t, []string{}, g.Projects[1].TechStack)
	assert.Equal(t, []CertificateBlock{{Name: "CKA", Issuer: "CNCF", Date: "2023-05-10"}}, g.Certificates)
}

func TestFallbackIsDeterministic(t *testing.T) {
	d := BuildDossier(fullCandidate())
	assert.Equal(t, Fallback(d), Fallback(d))
}

func TestFallbackEmptyDossierIsSchemaComplete(t *testing.T) {
	g := Fallback(BuildDossier(bareCandidate()))
	raw, err := json.Marshal(g)
	require.NoError(t, err)
	require.NoError(t, validateContent(raw))
	assert.NotContains(t, string(raw), "null")
}

func TestFallbackOutputPassesSchema(t *testing.T) {
	raw, err := json.Marshal(Fallback(BuildDossier(fullCandidate())))
	require.NoError(t, err)
	assert.NoError(t, validateContent(raw))
}
