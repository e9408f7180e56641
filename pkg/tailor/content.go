package tailor

type LanguageLevel struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

type ExperienceBlock struct {
	Company             string   `json:"company"`
	Position            string   `json:"position"`
	DateRange           string   `json:"date_range"`
	Location            string   `json:"location"`
	EnhancedDescription []string `json:"enhanced_description"`
}

type EducationBlock struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	DateRange   string `json:"date_range"`
}

type ProjectBlock struct {
	Title       string   `json:"title"`
	Role        string   `json:"role"`
	Description string   `json:"description"`
	TechStack   []string `json:"tech_stack"`
}

type CertificateBlock struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// GeneratedContent is the tailored block produced by a provider or by Fallback.
type GeneratedContent struct {
	JobTitleTarget    string             `json:"job_title_target"`
	ProfileSummary    string             `json:"profile_summary"`
	SelectedSkills    []string           `json:"selected_skills"`
	SelectedLanguages []LanguageLevel    `json:"selected_languages"`
	Experience        []ExperienceBlock  `json:"experience"`
	Education         []EducationBlock   `json:"education"`
	Projects          []ProjectBlock     `json:"projects"`
	Certificates      []CertificateBlock `json:"certificates"`
}

// normalize replaces nil slices with empty ones so the JSON form never has nulls.
func (g *GeneratedContent) normalize() {
	if g.SelectedSkills == nil {
		g.SelectedSkills = []string{}
	}
	if g.SelectedLanguages == nil {
		g.SelectedLanguages = []LanguageLevel{}
	}
	if g.Experience == nil {
		g.Experience = []ExperienceBlock{}
	}
	for i := range g.Experience {
		if g.Experience[i].EnhancedDescription == nil {
			g.Experience[i].EnhancedDescription = []string{}
		}
	}
	if g.Education == nil {
		g.Education = []EducationBlock{}
	}
	if g.Projects == nil {
		g.Projects = []ProjectBlock{}
	}
	for i := range g.Projects {
		if g.Projects[i].TechStack == nil {
			g.Projects[i].TechStack = []string{}
		}
	}
	if g.Certificates == nil {
		g.Certificates = []CertificateBlock{}
	}
}
