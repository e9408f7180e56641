package tailor

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/danirodriguezz/hirepilot/pkg/candidate"
)

const dateLayout = "2006-01-02"

// Aggregator builds dossiers from the fact store.
type Aggregator struct {
	repo candidate.Repository
}

func NewAggregator(repo candidate.Repository) *Aggregator {
	return &Aggregator{repo: repo}
}

// Aggregate reads every fact category of candidateID and normalizes it.
func (a *Aggregator) Aggregate(ctx context.Context, candidateID uuid.UUID) (Dossier, error) {
	facts, err := candidate.Load(ctx, a.repo, candidateID)
	if err != nil {
		return Dossier{}, errors.Wrapf(err, "load facts for %s", candidateID)
	}
	return BuildDossier(facts), nil
}

// BuildDossier converts raw fact-store rows into a dossier. Every collection is
// non-nil and dates are rendered as YYYY-MM-DD strings or nil.
func BuildDossier(f candidate.Facts) Dossier {
	d := Dossier{
		PersonalInfo: PersonalInfo{
			FirstName: f.Identity.FirstName,
			LastName:  f.Identity.LastName,
			Email:     f.Identity.Email,
		},
		Facts: Facts{
			Experience:   make([]ExperienceFact, 0, len(f.Experience)),
			Education:    make([]EducationFact, 0, len(f.Education)),
			Skills:       make([]string, 0, len(f.Skills)),
			Projects:     make([]ProjectFact, 0, len(f.Projects)),
			Languages:    make([]LanguageFact, 0, len(f.Languages)),
			Certificates: make([]CertificateFact, 0, len(f.Certificates)),
		},
	}
	if p := f.Profile; p != nil {
		d.PersonalInfo.Profession = p.Headline
		d.PersonalInfo.Phone = p.Phone
		d.PersonalInfo.LinkedIn = p.LinkedInURL
		d.PersonalInfo.Website = p.Website
	}

	for _, e := range f.Experience {
		d.Experience = append(d.Experience, ExperienceFact{
			Company:     e.Company,
			Role:        e.Role,
			StartDate:   formatDate(e.StartDate),
			EndDate:     formatDate(e.EndDate),
			CurrentJob:  e.CurrentJob,
			Description: e.Description,
			Location:    e.Location,
		})
	}
	for _, e := range f.Education {
		d.Education = append(d.Education, EducationFact{
			Institution:  e.Institution,
			Degree:       e.Degree,
			FieldOfStudy: e.FieldOfStudy,
			StartDate:    formatDate(e.StartDate),
			EndDate:      formatDate(e.EndDate),
			Current:      e.Current,
		})
	}
	d.Skills = append(d.Skills, f.Skills...)
	for _, p := range f.Projects {
		link := p.ProjectURL
		if link == "" {
			link = p.ResourceURL
		}
		d.Projects = append(d.Projects, ProjectFact{
			Title:        p.Title,
			Role:         p.Role,
			Description:  p.Description,
			Technologies: append(make([]string, 0, len(p.Skills)), p.Skills...),
			Link:         link,
		})
	}
	for _, l := range f.Languages {
		d.Languages = append(d.Languages, LanguageFact{
			Name:          l.Name,
			Proficiency:   l.Proficiency,
			CertificateBy: l.CertificateBy,
		})
	}
	for _, c := range f.Certificates {
		d.Certificates = append(d.Certificates, CertificateFact{
			Name:        c.Name,
			Issuer:      c.Issuer,
			Date:        formatDate(c.IssueDate),
			Description: c.Description,
		})
	}
	return d
}

func formatDate(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
