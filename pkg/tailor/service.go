package tailor

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/danirodriguezz/hirepilot/pkg/nlp"
)

const (
	DefaultLanguage = "es"
	unknownJobTitle = "N/A"
)

// State is a step of one tailoring run.
type State string

const (
	StateAggregating    State = "AGGREGATING"
	StateGenerating     State = "GENERATING"
	StateProviderOK     State = "PROVIDER_OK"
	StateProviderFailed State = "PROVIDER_FAILED"
	StateFallback       State = "FALLBACK"
	StateMerging        State = "MERGING"
	StateDone           State = "DONE"
)

// Source says which path produced the generated content.
type Source string

const (
	SourceProvider Source = "provider"
	SourceFallback Source = "fallback"
)

// Outcome describes how a run went. FailureKind is empty on the provider path.
type Outcome struct {
	Source      Source
	FailureKind FailureKind
	States      []State
}

// Generation is a persisted tailored result.
type Generation struct {
	ID                uuid.UUID       `json:"id"`
	CandidateID       uuid.UUID       `json:"-"`
	JobDescription    string          `json:"-"`
	Language          string          `json:"-"`
	JobTitleExtracted string          `json:"job_title_extracted"`
	StructuredCVData  json.RawMessage `json:"structured_cv_data" swaggertype:"object"`
	CreatedAt         time.Time       `json:"created_at"`
}

// GenerationStore is the append-only sink for finished results.
type GenerationStore interface {
	Create(ctx context.Context, g Generation) error
	GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (Generation, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Generation, error)
}

// UseCase covers tailoring runs and reads of past generations.
type UseCase interface {
	Build(ctx context.Context, candidateID uuid.UUID, jobDescription, language string) (TailoredResult, Outcome, error)
	Tailor(ctx context.Context, candidateID uuid.UUID, jobDescription, language string) (Generation, error)
	Get(ctx context.Context, candidateID, id uuid.UUID) (Generation, error)
	List(ctx context.Context, candidateID uuid.UUID, limit, offset int) ([]Generation, error)
}

type service struct {
	aggregator *Aggregator
	generator  Generator
	store      GenerationStore
	log        logrus.FieldLogger
	now        func() time.Time
}

// NewService wires the orchestrator. A nil generator means no provider
// credential is configured: every run goes straight to Fallback.
func NewService(aggregator *Aggregator, generator Generator, store GenerationStore, log logrus.FieldLogger) UseCase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &service{
		aggregator: aggregator,
		generator:  generator,
		store:      store,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// ValidateRequest checks the request boundary and returns the sanitized posting
// and the effective language.
func ValidateRequest(jobDescription, language string) (string, string, error) {
	job := nlp.Sanitize(jobDescription)
	if job == "" {
		return "", "", &ValidationError{Field: "job_description", Message: "this field is required"}
	}
	lang := strings.ToLower(strings.TrimSpace(language))
	if lang == "" {
		lang = DefaultLanguage
	}
	if _, ok := languageNames[lang]; !ok {
		return "", "", &ValidationError{Field: "language", Message: "unsupported language " + lang}
	}
	return job, lang, nil
}

func (s *service) Build(ctx context.Context, candidateID uuid.UUID, jobDescription, language string) (TailoredResult, Outcome, error) {
	job, lang, err := ValidateRequest(jobDescription, language)
	if err != nil {
		return TailoredResult{}, Outcome{}, err
	}
	return s.run(ctx, candidateID, job, lang)
}

func (s *service) run(ctx context.Context, candidateID uuid.UUID, job, lang string) (TailoredResult, Outcome, error) {
	log := s.log.WithField("candidate_id", candidateID.String())
	var out Outcome
	enter := func(st State) {
		out.States = append(out.States, st)
		log.WithField("state", st).Debug("tailor transition")
	}

	enter(StateAggregating)
	dossier, err := s.aggregator.Aggregate(ctx, candidateID)
	if err != nil {
		return TailoredResult{}, out, err
	}

	var content GeneratedContent
	if s.generator == nil {
		out.Source, out.FailureKind = SourceFallback, FailureMissingCredential
		log.Debug("no provider credential configured, using fallback")
	} else {
		enter(StateGenerating)
		content, err = s.generator.Generate(ctx, dossier.Facts, job, lang)
		var perr *ProviderError
		switch {
		case err == nil:
			enter(StateProviderOK)
			out.Source = SourceProvider
		case errors.As(err, &perr):
			enter(StateProviderFailed)
			out.Source, out.FailureKind = SourceFallback, perr.Kind
			log.WithFields(logrus.Fields{"provider": perr.Provider, "kind": perr.Kind}).
				WithError(perr.Err).Warn("provider failed, using fallback")
		default:
			enter(StateProviderFailed)
			out.Source, out.FailureKind = SourceFallback, FailureTransport
			log.WithError(err).Warn("generator failed, using fallback")
		}
	}
	if out.Source == SourceFallback {
		enter(StateFallback)
		content = Fallback(dossier)
	}

	enter(StateMerging)
	result := Merge(dossier.PersonalInfo, content)
	enter(StateDone)
	return result, out, nil
}

func (s *service) Tailor(ctx context.Context, candidateID uuid.UUID, jobDescription, language string) (Generation, error) {
	job, lang, err := ValidateRequest(jobDescription, language)
	if err != nil {
		return Generation{}, err
	}
	result, out, err := s.run(ctx, candidateID, job, lang)
	if err != nil {
		return Generation{}, err
	}
	snapshot, err := json.Marshal(result)
	if err != nil {
		return Generation{}, &PersistenceError{Err: errors.Wrap(err, "encode result")}
	}
	title := strings.TrimSpace(result.JobTitleTarget)
	if title == "" {
		title = unknownJobTitle
	}
	g := Generation{
		ID:                uuid.New(),
		CandidateID:       candidateID,
		JobDescription:    job,
		Language:          lang,
		JobTitleExtracted: title,
		StructuredCVData:  snapshot,
		CreatedAt:         s.now(),
	}
	if err := s.store.Create(ctx, g); err != nil {
		return Generation{}, &PersistenceError{Err: err}
	}
	s.log.WithFields(logrus.Fields{
		"candidate_id":  candidateID.String(),
		"generation_id": g.ID.String(),
		"source":        out.Source,
	}).Info("generation stored")
	return g, nil
}

func (s *service) Get(ctx context.Context, candidateID, id uuid.UUID) (Generation, error) {
	return s.store.GetForOwner(ctx, candidateID, id)
}

func (s *service) List(ctx context.Context, candidateID uuid.UUID, limit, offset int) ([]Generation, error) {
	items, err := s.store.ListByOwner(ctx, candidateID, limit, offset)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Generation{}
	}
	return items, nil
}
