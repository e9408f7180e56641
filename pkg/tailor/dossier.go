package tailor

// PersonalInfo holds verified identity fields. It only ever comes from the fact store.
type PersonalInfo struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Profession string `json:"profession"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	LinkedIn   string `json:"linkedin"`
	Website    string `json:"website"`
}

type ExperienceFact struct {
	Company     string  `json:"company"`
	Role        string  `json:"role"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	CurrentJob  bool    `json:"current_job"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
}

type EducationFact struct {
	Institution  string  `json:"institution"`
	Degree       string  `json:"degree"`
	FieldOfStudy string  `json:"field_of_study"`
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
	Current      bool    `json:"current"`
}

type ProjectFact struct {
	Title        string   `json:"title"`
	Role         string   `json:"role"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link"`
}

type LanguageFact struct {
	Name          string `json:"name"`
	Proficiency   string `json:"proficiency"`
	CertificateBy string `json:"certificate_by"`
}

type CertificateFact struct {
	Name        string  `json:"name"`
	Issuer      string  `json:"issuer"`
	Date        *string `json:"date"`
	Description string  `json:"description"`
}

// Facts is the identity-free part of a dossier. It is the only thing that is
// ever serialized into a provider request.
type Facts struct {
	Experience   []ExperienceFact  `json:"experience"`
	Education    []EducationFact   `json:"education"`
	Skills       []string          `json:"skills"`
	Projects     []ProjectFact     `json:"projects"`
	Languages    []LanguageFact    `json:"languages"`
	Certificates []CertificateFact `json:"certificates"`
}

// Dossier is the normalized snapshot of a candidate built for one run.
// Facts is embedded so the collections serialize as top-level keys.
type Dossier struct {
	PersonalInfo PersonalInfo `json:"personal_info"`
	Facts
}
