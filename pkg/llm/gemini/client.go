package gemini

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"google.golang.org/genai"

	"github.com/danirodriguezz/hirepilot/pkg/llm"
)

const (
	DefaultModel = "gemini-2.5-flash"
	providerName = "gemini"
)

// Client adapts the Gemini API to llm.ChatModel. The underlying genai client
// is created lazily on the first call.
type Client struct {
	apiKey  string
	baseURL string
	model   string

	once    sync.Once
	sdk     *genai.Client
	initErr error
}

func New(apiKey, baseURL, model string) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{apiKey: apiKey, baseURL: baseURL, model: model}
}

func (c *Client) Name() string { return providerName + "/" + c.model }

func (c *Client) client(ctx context.Context) (*genai.Client, error) {
	c.once.Do(func() {
		cfg := &genai.ClientConfig{
			APIKey:  c.apiKey,
			Backend: genai.BackendGeminiAPI,
		}
		if c.baseURL != "" {
			cfg.HTTPOptions = genai.HTTPOptions{BaseURL: c.baseURL}
		}
		c.sdk, c.initErr = genai.NewClient(ctx, cfg)
	})
	return c.sdk, c.initErr
}

func (c *Client) Ask(ctx context.Context, p llm.Prompt) (string, error) {
	if c.apiKey == "" {
		return "", llm.ErrEmptyAPIKey
	}
	cl, err := c.client(ctx)
	if err != nil {
		return "", errors.Wrap(err, "gemini client")
	}
	cfg := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(p.Temperature),
		SystemInstruction: genai.NewContentFromText(p.System, genai.RoleUser),
	}
	if p.JSONObject {
		cfg.ResponseMIMEType = "application/json"
	}
	res, err := cl.Models.GenerateContent(ctx, c.model, genai.Text(p.User), cfg)
	if err != nil {
		if code, ok := statusCode(err); ok {
			return "", &llm.StatusError{Provider: providerName, Code: code, Body: http.StatusText(code)}
		}
		return "", errors.Wrap(err, "gemini request")
	}
	text := res.Text()
	if strings.TrimSpace(text) == "" {
		return "", llm.ErrEmptyReply
	}
	return text, nil
}

func statusCode(err error) (int, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return apiErrPtr.Code, true
	}
	return 0, false
}
