package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/danirodriguezz/hirepilot/pkg/candidate"
)

// CandidateRepository reads a candidate's career facts. Every query is scoped to
// the owner and nothing here writes.
type CandidateRepository struct {
	pool *pgxpool.Pool
}

func NewCandidateRepository(pool *pgxpool.Pool) *CandidateRepository {
	return &CandidateRepository{pool: pool}
}

func (r *CandidateRepository) GetIdentity(ctx context.Context, ownerID uuid.UUID) (candidate.Identity, error) {
	var id candidate.Identity
	err := r.pool.QueryRow(ctx, `
SELECT id, email, first_name, last_name FROM users WHERE id = $1
`, ownerID).Scan(&id.ID, &id.Email, &id.FirstName, &id.LastName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return candidate.Identity{}, candidate.ErrNotFound
		}
		return candidate.Identity{}, fmt.Errorf("get identity: %w", err)
	}
	return id, nil
}

func (r *CandidateRepository) GetProfile(ctx context.Context, ownerID uuid.UUID) (*candidate.Profile, error) {
	var p candidate.Profile
	err := r.pool.QueryRow(ctx, `
SELECT headline, phone, linkedin_url, website, summary FROM user_profiles WHERE user_id = $1
`, ownerID).Scan(&p.Headline, &p.Phone, &p.LinkedInURL, &p.Website, &p.Summary)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

func (r *CandidateRepository) ListExperience(ctx context.Context, ownerID uuid.UUID) ([]candidate.Experience, error) {
	rows, err := r.pool.Query(ctx, `
SELECT company, role, start_date, end_date, current_job, description, location
FROM experiences WHERE user_id = $1
ORDER BY start_date DESC NULLS LAST, created_at DESC
`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list experience: %w", err)
	}
	defer rows.Close()
	res := []candidate.Experience{}
	for rows.Next() {
		var e candidate.Experience
		if err := rows.Scan(&e.Company, &e.Role, &e.StartDate, &e.EndDate, &e.CurrentJob, &e.Description, &e.Location); err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, rows.Err()
}

func (r *CandidateRepository) ListEducation(ctx context.Context, ownerID uuid.UUID) ([]candidate.Education, error) {
	rows, err := r.pool.Query(ctx, `
SELECT institution, degree, field_of_study, start_date, end_date, current
FROM educations WHERE user_id = $1
ORDER BY start_date DESC NULLS LAST, created_at DESC
`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list education: %w", err)
	}
	defer rows.Close()
	res := []candidate.Education{}
	for rows.Next() {
		var e candidate.Education
		if err := rows.Scan(&e.Institution, &e.Degree, &e.FieldOfStudy, &e.StartDate, &e.EndDate, &e.Current); err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, rows.Err()
}

func (r *CandidateRepository) ListSkills(ctx context.Context, ownerID uuid.UUID) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
SELECT name FROM skills WHERE user_id = $1 ORDER BY created_at, name
`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer rows.Close()
	res := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		res = append(res, name)
	}
	return res, rows.Err()
}

func (r *CandidateRepository) ListProjects(ctx context.Context, ownerID uuid.UUID) ([]candidate.Project, error) {
	rows, err := r.pool.Query(ctx, `
SELECT p.title, p.role, p.description, p.project_url, p.resource_url,
	coalesce(array_agg(s.name ORDER BY s.name) FILTER (WHERE s.name IS NOT NULL), '{}') AS skills
FROM projects p
LEFT JOIN project_skills ps ON ps.project_id = p.id
LEFT JOIN skills s ON s.id = ps.skill_id AND s.user_id = p.user_id
WHERE p.user_id = $1
GROUP BY p.id
ORDER BY p.created_at DESC
`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	res := []candidate.Project{}
	for rows.Next() {
		var p candidate.Project
		if err := rows.Scan(&p.Title, &p.Role, &p.Description, &p.ProjectURL, &p.ResourceURL, &p.Skills); err != nil {
			return nil, err
		}
		if p.Skills == nil {
			p.Skills = []string{}
		}
		res = append(res, p)
	}
	return res, rows.Err()
}

func (r *CandidateRepository) ListLanguages(ctx context.Context, ownerID uuid.UUID) ([]candidate.Language, error) {
	rows, err := r.pool.Query(ctx, `
SELECT language, proficiency, certificate_by FROM languages WHERE user_id = $1 ORDER BY created_at
`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}
	defer rows.Close()
	res := []candidate.Language{}
	for rows.Next() {
		var l candidate.Language
		if err := rows.Scan(&l.Name, &l.Proficiency, &l.CertificateBy); err != nil {
			return nil, err
		}
		res = append(res, l)
	}
	return res, rows.Err()
}

func (r *CandidateRepository) ListCertificates(ctx context.Context, ownerID uuid.UUID) ([]candidate.Certificate, error) {
	rows, err := r.pool.Query(ctx, `
SELECT name, issuer, issue_date, description FROM certificates WHERE user_id = $1
ORDER BY issue_date DESC NULLS LAST, created_at DESC
`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}
	defer rows.Close()
	res := []candidate.Certificate{}
	for rows.Next() {
		var c candidate.Certificate
		var issued *time.Time
		if err := rows.Scan(&c.Name, &c.Issuer, &issued, &c.Description); err != nil {
			return nil, err
		}
		c.IssueDate = issued
		res = append(res, c)
	}
	return res, rows.Err()
}
