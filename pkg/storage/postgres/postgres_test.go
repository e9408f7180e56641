package postgres

import (
	"context"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectRejectsEmptyDSN(t *testing.T) {
	_, err := Connect(context.Background(), "")
	assert.Error(t, err)
}

func TestConnectRejectsMalformedDSN(t *testing.T) {
	_, err := Connect(context.Background(), "postgres://%zz")
	assert.Error(t, err)
}

func TestMigrationsAreEmbedded(t *testing.T) {
	files, err := fs.Glob(migrations, "migrations/*.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"migrations/00001_candidate_facts.sql",
		"migrations/00002_cv_generations.sql",
	}, files)

	body, err := fs.ReadFile(migrations, "migrations/00002_cv_generations.sql")
	require.NoError(t, err)
	assert.Contains(t, string(body), "structured_cv_data JSON NOT NULL")
}
