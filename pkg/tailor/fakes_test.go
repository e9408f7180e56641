package tailor

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danirodriguezz/hirepilot/pkg/candidate"
	"github.com/danirodriguezz/hirepilot/pkg/llm"
)

// memFacts is an in-memory candidate.Repository keyed by owner.
type memFacts struct {
	mu    sync.Mutex
	facts map[uuid.UUID]candidate.Facts
}

func newMemFacts() *memFacts { return &memFacts{facts: map[uuid.UUID]candidate.Facts{}} }

func (m *memFacts) put(f candidate.Facts) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.facts[f.Identity.ID] = f
}

func (m *memFacts) get(id uuid.UUID) (candidate.Facts, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.facts[id]
	return f, ok
}

func (m *memFacts) GetIdentity(_ context.Context, id uuid.UUID) (candidate.Identity, error) {
	f, ok := m.get(id)
	if !ok {
		return candidate.Identity{}, candidate.ErrNotFound
	}
	return f.Identity, nil
}

func (m *memFacts) GetProfile(_ context.Context, id uuid.UUID) (*candidate.Profile, error) {
	f, _ := m.get(id)
	if f.Profile == nil {
		return nil, nil
	}
	p := *f.Profile
	return &p, nil
}

func (m *memFacts) ListExperience(_ context.Context, id uuid.UUID) ([]candidate.Experience, error) {
	f, _ := m.get(id)
	return f.Experience, nil
}

func (m *memFacts) ListEducation(_ context.Context, id uuid.UUID) ([]candidate.Education, error) {
	f, _ := m.get(id)
	return f.Education, nil
}

func (m *memFacts) ListSkills(_ context.Context, id uuid.UUID) ([]string, error) {
	f, _ := m.get(id)
	return f.Skills, nil
}

func (m *memFacts) ListProjects(_ context.Context, id uuid.UUID) ([]candidate.Project, error) {
	f, _ := m.get(id)
	return f.Projects, nil
}

func (m *memFacts) ListLanguages(_ context.Context, id uuid.UUID) ([]candidate.Language, error) {
	f, _ := m.get(id)
	return f.Languages, nil
}

func (m *memFacts) ListCertificates(_ context.Context, id uuid.UUID) ([]candidate.Certificate, error) {
	f, _ := m.get(id)
	return f.Certificates, nil
}

// scriptedModel is a llm.ChatModel that records prompts and replays a fixed answer.
type scriptedModel struct {
	mu      sync.Mutex
	reply   string
	err     error
	delay   time.Duration
	prompts []llm.Prompt
}

func (s *scriptedModel) Name() string { return "scripted/test" }

func (s *scriptedModel) Ask(ctx context.Context, p llm.Prompt) (string, error) {
	s.mu.Lock()
	s.prompts = append(s.prompts, p)
	s.mu.Unlock()
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(s.delay):
		}
	}
	return s.reply, s.err
}

func (s *scriptedModel) calls() []llm.Prompt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]llm.Prompt(nil), s.prompts...)
}

// memStore is an in-memory GenerationStore.
type memStore struct {
	mu   sync.Mutex
	rows map[uuid.UUID]Generation
	err  error
}

func newMemStore() *memStore { return &memStore{rows: map[uuid.UUID]Generation{}} }

func (m *memStore) Create(_ context.Context, g Generation) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	g.StructuredCVData = append([]byte(nil), g.StructuredCVData...)
	m.rows[g.ID] = g
	return nil
}

func (m *memStore) GetForOwner(_ context.Context, ownerID, id uuid.UUID) (Generation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.rows[id]
	if !ok || g.CandidateID != ownerID {
		return Generation{}, ErrGenerationNotFound
	}
	return g, nil
}

func (m *memStore) ListByOwner(_ context.Context, ownerID uuid.UUID, limit, offset int) ([]Generation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Generation
	for _, g := range m.rows {
		if g.CandidateID == ownerID {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

var errBoom = errors.New("boom")

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// fullCandidate has a row in every category and an extended profile.
func fullCandidate() candidate.Facts {
	return candidate.Facts{
		Identity: candidate.Identity{ID: uuid.New(), Email: "ana@example.com", FirstName: "Ana", LastName: "García"},
		Profile: &candidate.Profile{
			Headline:    "Backend Engineer",
			Phone:       "+34 600 000 000",
			LinkedInURL: "https://linkedin.com/in/ana",
			Website:     "https://ana.dev",
		},
		Experience: []candidate.Experience{
			{Company: "Tech Corp", Role: "Backend Dev", StartDate: date(2021, time.March, 1), CurrentJob: true, Description: "APIs in Go", Location: "Madrid"},
			{Company: "Old Co", Role: "Intern", StartDate: date(2019, time.June, 1), EndDate: date(2020, time.December, 31), Location: "Sevilla"},
		},
		Education: []candidate.Education{
			{Institution: "UPM", Degree: "BSc", FieldOfStudy: "Computer Science", StartDate: date(2015, time.September, 1), EndDate: date(2019, time.June, 30)},
		},
		Skills: []string{"Go", "PostgreSQL", "Docker", "Kubernetes", "gRPC", "Python", "Rust"},
		Projects: []candidate.Project{
			{Title: "hirepilot", Role: "Author", Description: "CV tailoring", ResourceURL: "https://github.com/ana/hirepilot", Skills: []string{"Go", "PostgreSQL"}},
			{Title: "notes", Description: "no skills linked"},
		},
		Languages:    []candidate.Language{{Name: "English", Proficiency: "C1", CertificateBy: "Cambridge"}},
		Certificates: []candidate.Certificate{{Name: "CKA", Issuer: "CNCF", IssueDate: date(2023, time.May, 10)}},
	}
}

// bareCandidate has only an account record.
func bareCandidate() candidate.Facts {
	return candidate.Facts{
		Identity: candidate.Identity{ID: uuid.New(), Email: "bare@example.com", FirstName: "Bea", LastName: "López"},
	}
}

const validReply = `{
  "job_title_target": "Senior Go Engineer",
  "profile_summary": "Backend engineer focused on Go services.",
  "selected_skills": ["Go", "PostgreSQL"],
  "selected_languages": [{"name": "English", "level": "C1"}],
  "experience": [{
    "company": "Tech Corp",
    "position": "Backend Dev",
    "date_range": "2021-03-01 - Actualidad",
    "location": "Madrid",
    "enhanced_description": ["Built Go APIs serving 1M requests a day."]
  }],
  "education": [{"institution": "UPM", "degree": "BSc", "date_range": "2015 - 2019"}],
  "projects": [{"title": "hirepilot", "role": "Author", "description": "CV tailoring", "tech_stack": ["Go"]}],
  "certificates": [{"name": "CKA", "issuer": "CNCF", "date": "2023-05-10"}]
}`
