package tailor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/danirodriguezz/hirepilot/pkg/llm"
)

const (
	DefaultTimeout     = 60 * time.Second
	DefaultTemperature = 0.5
)

var languageNames = map[string]string{
	"es": "Spanish",
	"en": "English",
}

// Generator produces tailored content from identity-free facts.
type Generator interface {
	Generate(ctx context.Context, facts Facts, jobText, language string) (GeneratedContent, error)
}

// GenerationClient calls a chat model under the structured-output contract.
type GenerationClient struct {
	model       llm.ChatModel
	timeout     time.Duration
	temperature float32
	log         logrus.FieldLogger
}

type ClientOption func(*GenerationClient)

func WithTimeout(d time.Duration) ClientOption {
	return func(c *GenerationClient) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithTemperature(t float32) ClientOption {
	return func(c *GenerationClient) { c.temperature = t }
}

func WithClientLogger(l logrus.FieldLogger) ClientOption {
	return func(c *GenerationClient) { c.log = l }
}

func NewGenerationClient(model llm.ChatModel, opts ...ClientOption) *GenerationClient {
	c := &GenerationClient{
		model:       model,
		timeout:     DefaultTimeout,
		temperature: DefaultTemperature,
		log:         logrus.StandardLogger(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Generate sends facts and the sanitized posting to the model. Any failure is
// returned as *ProviderError.
func (c *GenerationClient) Generate(ctx context.Context, facts Facts, jobText, language string) (GeneratedContent, error) {
	name := c.model.Name()
	userMsg, err := buildUserMessage(facts, jobText)
	if err != nil {
		return GeneratedContent{}, &ProviderError{Kind: FailureMalformed, Provider: name, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	started := time.Now()
	reply, err := c.model.Ask(ctx, llm.Prompt{
		System:      buildSystemPrompt(language),
		User:        userMsg,
		JSONObject:  true,
		Temperature: c.temperature,
	})
	c.log.WithFields(logrus.Fields{
		"provider": name,
		"elapsed":  time.Since(started).Round(time.Millisecond).String(),
	}).Debug("provider call finished")
	if err != nil {
		return GeneratedContent{}, &ProviderError{Kind: classify(ctx, err), Provider: name, Err: err}
	}

	raw := []byte(stripCodeFences(reply))
	if err := validateContent(raw); err != nil {
		kind := FailureSchema
		if errors.Is(err, errNotJSON) {
			kind = FailureMalformed
		}
		return GeneratedContent{}, &ProviderError{Kind: kind, Provider: name, Err: err}
	}
	var out GeneratedContent
	if err := json.Unmarshal(raw, &out); err != nil {
		return GeneratedContent{}, &ProviderError{Kind: FailureMalformed, Provider: name, Err: err}
	}
	out.normalize()
	return out, nil
}

func classify(ctx context.Context, err error) FailureKind {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(ctx.Err(), context.DeadlineExceeded):
		return FailureTimeout
	case errors.Is(err, llm.ErrUnauthorized), errors.Is(err, llm.ErrEmptyAPIKey):
		return FailureAuth
	default:
		return FailureTransport
	}
}

func buildSystemPrompt(language string) string {
	lang, ok := languageNames[language]
	if !ok {
		lang = languageNames[DefaultLanguage]
	}
	var b strings.Builder
	b.WriteString("You are an expert technical recruiter and ATS (Applicant Tracking System) specialist.\n")
	b.WriteString("You receive a candidate's verified career facts and a job posting. Build a résumé tailored to the posting.\n\n")
	b.WriteString("Rules:\n")
	b.WriteString("1. Select and re-rank only the skills, experience, projects, languages and certificates relevant to the posting.\n")
	b.WriteString("2. Rewrite experience bullets with action verbs, emphasize measurable achievements and reuse the posting's keywords.\n")
	b.WriteString("3. Never invent companies, roles, institutions or dates that are not present in the candidate facts.\n")
	b.WriteString("4. job_title_target is the job title the posting is hiring for.\n")
	fmt.Fprintf(&b, "5. Write every narrative field in %s.\n", lang)
	b.WriteString("6. Reply with a single JSON object and nothing else. It must validate against this JSON schema:\n")
	b.WriteString(contentSchema)
	return b.String()
}

// buildUserMessage serializes the identity-free facts. Only Facts reaches the
// provider; personal info has no path into this function.
func buildUserMessage(facts Facts, jobText string) (string, error) {
	payload, err := json.MarshalIndent(facts, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "marshal facts")
	}
	return fmt.Sprintf("CANDIDATE PROFILE:\n%s\n\nJOB POSTING:\n%s", payload, jobText), nil
}

// stripCodeFences removes a surrounding ```json ... ``` block if present.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
