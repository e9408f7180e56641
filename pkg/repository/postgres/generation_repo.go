package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/danirodriguezz/hirepilot/pkg/tailor"
)

// GenerationRepository stores tailored results. Rows are only ever inserted.
type GenerationRepository struct {
	pool *pgxpool.Pool
}

func NewGenerationRepository(pool *pgxpool.Pool) *GenerationRepository {
	return &GenerationRepository{pool: pool}
}

func (r *GenerationRepository) Create(ctx context.Context, g tailor.Generation) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now().UTC()
	}
	// Passed as string so pgx sends the snapshot text to the json column untouched.
	_, err := r.pool.Exec(ctx, `
INSERT INTO cv_generations (id, user_id, job_description, language, job_title_extracted, structured_cv_data, created_at)
VALUES ($1, $2, $3, $4, $5, $6::json, $7)
`, g.ID, g.CandidateID, g.JobDescription, g.Language, g.JobTitleExtracted, string(g.StructuredCVData), g.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert generation: %w", err)
	}
	return nil
}

const generationColumns = `id, user_id, job_description, language, job_title_extracted, structured_cv_data::text, created_at`

func scanGeneration(row pgx.Row) (tailor.Generation, error) {
	var (
		g       tailor.Generation
		data    string
		created time.Time
	)
	if err := row.Scan(&g.ID, &g.CandidateID, &g.JobDescription, &g.Language, &g.JobTitleExtracted, &data, &created); err != nil {
		return tailor.Generation{}, err
	}
	g.StructuredCVData = []byte(data)
	g.CreatedAt = created.UTC()
	return g, nil
}

func (r *GenerationRepository) GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (tailor.Generation, error) {
	g, err := scanGeneration(r.pool.QueryRow(ctx, `
SELECT `+generationColumns+` FROM cv_generations WHERE id = $1 AND user_id = $2
`, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tailor.Generation{}, tailor.ErrGenerationNotFound
		}
		return tailor.Generation{}, fmt.Errorf("get generation: %w", err)
	}
	return g, nil
}

func (r *GenerationRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]tailor.Generation, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT `+generationColumns+` FROM cv_generations WHERE user_id = $3
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list generations: %w", err)
	}
	defer rows.Close()
	res := []tailor.Generation{}
	for rows.Next() {
		g, err := scanGeneration(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, g)
	}
	return res, rows.Err()
}
