package tailor

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danirodriguezz/hirepilot/pkg/candidate"
)

var collectionKeys = []string{"experience", "education", "skills", "projects", "languages", "certificates"}

func TestAggregateFullCandidate(t *testing.T) {
	repo := newMemFacts()
	c := fullCandidate()
	repo.put(c)

	d, err := NewAggregator(repo).Aggregate(context.Background(), c.Identity.ID)
	require.NoError(t, err)

	assert.Equal(t, PersonalInfo{
		FirstName:  "Ana",
		LastName:   "García",
		Profession: "Backend Engineer",
		Email:      "ana@example.com",
		Phone:      "+34 600 000 000",
		LinkedIn:   "https://linkedin.com/in/ana",
		Website:    "https://ana.dev",
	}, d.PersonalInfo)

	require.Len(t, d.Experience, 2)
	require.NotNil(t, d.Experience[0].StartDate)
	assert.Equal(t, "2021-03-01", *d.Experience[0].StartDate)
	assert.Nil(t, d.Experience[0].EndDate)
	assert.True(t, d.Experience[0].CurrentJob)
	assert.Equal(t, "2020-12-31", *d.Experience[1].EndDate)

	require.Len(t, d.Projects, 2)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, d.Projects[0].Technologies)
	assert.Equal(t, "https://github.com/ana/hirepilot", d.Projects[0].Link)
	assert.Equal(t, []string{}, d.Projects[1].Technologies)
	assert.Equal(t, "", d.Projects[1].Link)

	assert.Equal(t, "2023-05-10", *d.Certificates[0].Date)
	assert.Equal(t, LanguageFact{Name: "English", Proficiency: "C1", CertificateBy: "Cambridge"}, d.Languages[0])
}

func TestAggregateEmptyCategoriesAreEmptyLists(t *testing.T) {
	repo := newMemFacts()
	c := bareCandidate()
	repo.put(c)

	d, err := NewAggregator(repo).Aggregate(context.Background(), c.Identity.ID)
	require.NoError(t, err)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, k := range collectionKeys {
		v, ok := m[k]
		require.True(t, ok, "missing key %s", k)
		assert.Equal(t, "[]", string(v), "key %s", k)
	}
}

func TestAggregateWithoutProfileDefaultsToEmpty(t *testing.T) {
	repo := newMemFacts()
	c := bareCandidate()
	repo.put(c)

	d, err := NewAggregator(repo).Aggregate(context.Background(), c.Identity.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bea", d.PersonalInfo.FirstName)
	assert.Equal(t, "bare@example.com", d.PersonalInfo.Email)
	assert.Empty(t, d.PersonalInfo.Profession)
	assert.Empty(t, d.PersonalInfo.Phone)
	assert.Empty(t, d.PersonalInfo.LinkedIn)
	assert.Empty(t, d.PersonalInfo.Website)
}

func TestAggregateNullDatesStayNull(t *testing.T) {
	d := BuildDossier(candidate.Facts{
		Experience:   []candidate.Experience{{Company: "X"}},
		Certificates: []candidate.Certificate{{Name: "Y"}},
	})
	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"start_date":null`)
	assert.Contains(t, string(raw), `"end_date":null`)
	assert.Contains(t, string(raw), `"date":null`)
}

func TestAggregateUnknownCandidate(t *testing.T) {
	_, err := NewAggregator(newMemFacts()).Aggregate(context.Background(), uuid.New())
	require.ErrorIs(t, err, candidate.ErrNotFound)
}
