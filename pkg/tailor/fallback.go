package tailor

import "fmt"

const (
	FallbackJobTitle = "Puesto Objetivo (Mock)"
	FallbackSummary  = "Resumen generado automáticamente por el sistema de respaldo."
	fallbackBullet   = "Gestión experta en %s (Mock Generated)."
	fallbackAchieved = "Logro destacado relacionado con la oferta."
	maxFallbackSkill = 5
	ongoingLabel     = "Actualidad"
)

// Fallback derives a schema-complete result from the dossier alone. It never
// fails and returns the same output for the same dossier.
func Fallback(d Dossier) GeneratedContent {
	g := GeneratedContent{
		JobTitleTarget:    FallbackJobTitle,
		ProfileSummary:    FallbackSummary,
		SelectedSkills:    make([]string, 0, maxFallbackSkill),
		SelectedLanguages: make([]LanguageLevel, 0, len(d.Languages)),
		Experience:        make([]ExperienceBlock, 0, len(d.Experience)),
		Education:         make([]EducationBlock, 0, len(d.Education)),
		Projects:          make([]ProjectBlock, 0, len(d.Projects)),
		Certificates:      make([]CertificateBlock, 0, len(d.Certificates)),
	}
	for i, s := range d.Skills {
		if i == maxFallbackSkill {
			break
		}
		g.SelectedSkills = append(g.SelectedSkills, s)
	}
	for _, l := range d.Languages {
		g.SelectedLanguages = append(g.SelectedLanguages, LanguageLevel{Name: l.Name, Level: l.Proficiency})
	}
	for _, e := range d.Experience {
		g.Experience = append(g.Experience, ExperienceBlock{
			Company:   e.Company,
			Position:  e.Role,
			DateRange: dateRange(e.StartDate, e.EndDate),
			Location:  e.Location,
			EnhancedDescription: []string{
				fmt.Sprintf(fallbackBullet, e.Company),
				fallbackAchieved,
			},
		})
	}
	for _, e := range d.Education {
		g.Education = append(g.Education, EducationBlock{
			Institution: e.Institution,
			Degree:      e.Degree,
			DateRange:   dateRange(e.StartDate, e.EndDate),
		})
	}
	for _, p := range d.Projects {
		g.Projects = append(g.Projects, ProjectBlock{
			Title:       p.Title,
			Role:        p.Role,
			Description: p.Description,
			TechStack:   append(make([]string, 0, len(p.Technologies)), p.Technologies...),
		})
	}
	for _, c := range d.Certificates {
		date := ""
		if c.Date != nil {
			date = *c.Date
		}
		g.Certificates = append(g.Certificates, CertificateBlock{Name: c.Name, Issuer: c.Issuer, Date: date})
	}
	return g
}

func dateRange(start, end *string) string {
	from := ""
	if start != nil {
		from = *start
	}
	to := ongoingLabel
	if end != nil {
		to = *end
	}
	return from + " - " + to
}
