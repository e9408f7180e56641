package candidate

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when the candidate account does not exist.
var ErrNotFound = errors.New("candidate not found")

// Identity holds the verified account fields of a candidate.
type Identity struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
}

// Profile is the optional one-to-one extended profile record.
type Profile struct {
	Headline    string
	Phone       string
	LinkedInURL string
	Website     string
	Summary     string
}

type Experience struct {
	Company     string
	Role        string
	StartDate   *time.Time
	EndDate     *time.Time
	CurrentJob  bool
	Description string
	Location    string
}

type Education struct {
	Institution  string
	Degree       string
	FieldOfStudy string
	StartDate    *time.Time
	EndDate      *time.Time
	Current      bool
}

type Project struct {
	Title       string
	Role        string
	Description string
	ProjectURL  string
	ResourceURL string
	// Skills are the names of skills linked to the project.
	Skills []string
}

type Language struct {
	Name          string
	Proficiency   string
	CertificateBy string
}

type Certificate struct {
	Name        string
	Issuer      string
	IssueDate   *time.Time
	Description string
}

// Facts is a single owner-scoped read of everything stored for a candidate.
// Profile is nil when the candidate never filled the extended profile.
type Facts struct {
	Identity     Identity
	Profile      *Profile
	Experience   []Experience
	Education    []Education
	Skills       []string
	Projects     []Project
	Languages    []Language
	Certificates []Certificate
}

// Repository is the read-only fact store port. Every lookup is scoped to ownerID
// and returns an empty slice when the candidate has no rows in a category.
type Repository interface {
	GetIdentity(ctx context.Context, ownerID uuid.UUID) (Identity, error)
	// GetProfile returns (nil, nil) when no profile record exists.
	GetProfile(ctx context.Context, ownerID uuid.UUID) (*Profile, error)
	ListExperience(ctx context.Context, ownerID uuid.UUID) ([]Experience, error)
	ListEducation(ctx context.Context, ownerID uuid.UUID) ([]Education, error)
	ListSkills(ctx context.Context, ownerID uuid.UUID) ([]string, error)
	ListProjects(ctx context.Context, ownerID uuid.UUID) ([]Project, error)
	ListLanguages(ctx context.Context, ownerID uuid.UUID) ([]Language, error)
	ListCertificates(ctx context.Context, ownerID uuid.UUID) ([]Certificate, error)
}

// Load reads every category for ownerID through repo.
func Load(ctx context.Context, repo Repository, ownerID uuid.UUID) (Facts, error) {
	var (
		f   Facts
		err error
	)
	if f.Identity, err = repo.GetIdentity(ctx, ownerID); err != nil {
		return Facts{}, err
	}
	if f.Profile, err = repo.GetProfile(ctx, ownerID); err != nil {
		return Facts{}, err
	}
	if f.Experience, err = repo.ListExperience(ctx, ownerID); err != nil {
		return Facts{}, err
	}
	if f.Education, err = repo.ListEducation(ctx, ownerID); err != nil {
		return Facts{}, err
	}
	if f.Skills, err = repo.ListSkills(ctx, ownerID); err != nil {
		return Facts{}, err
	}
	if f.Projects, err = repo.ListProjects(ctx, ownerID); err != nil {
		return Facts{}, err
	}
	if f.Languages, err = repo.ListLanguages(ctx, ownerID); err != nil {
		return Facts{}, err
	}
	if f.Certificates, err = repo.ListCertificates(ctx, ownerID); err != nil {
		return Facts{}, err
	}
	return f, nil
}
