package openrouter

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/danirodriguezz/hirepilot/pkg/llm"
)

const (
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	DefaultModel   = "openai/gpt-4o-mini"
	providerName   = "openrouter"
)

// Client is a minimal OpenRouter (OpenAI-compatible) chat completions client.
type Client struct {
	APIKey   string
	BaseURL  string
	Model    string
	AppTitle string
	Referer  string
	http     *resty.Client
}

func New(apiKey, baseURL, model, appTitle, referer string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		APIKey:   apiKey,
		BaseURL:  baseURL,
		Model:    model,
		AppTitle: appTitle,
		Referer:  referer,
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(120 * time.Second).
			SetHeader("Content-Type", "application/json"),
	}
}

func (c *Client) Name() string { return providerName + "/" + c.Model }

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionsRequest struct {
	Model          string          `json:"model"`
	Messages       []message       `json:"messages"`
	Temperature    float32         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

// Ask posts one system+user exchange and returns the first choice's content.
func (c *Client) Ask(ctx context.Context, p llm.Prompt) (string, error) {
	if c.APIKey == "" {
		return "", llm.ErrEmptyAPIKey
	}
	body := chatCompletionsRequest{
		Model: c.Model,
		Messages: []message{
			{Role: "system", Content: p.System},
			{Role: "user", Content: p.User},
		},
		Temperature: p.Temperature,
	}
	if p.JSONObject {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	req := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.APIKey).
		SetBody(body)
	if c.Referer != "" {
		req.SetHeader("HTTP-Referer", c.Referer)
	}
	if c.AppTitle != "" {
		req.SetHeader("X-Title", c.AppTitle)
	}

	resp, err := req.Post("/chat/completions")
	if err != nil {
		return "", errors.Wrap(err, "openrouter request")
	}
	if resp.IsError() {
		return "", &llm.StatusError{Provider: providerName, Code: resp.StatusCode(), Body: truncate(resp.String(), 512)}
	}
	content := gjson.GetBytes(resp.Body(), "choices.0.message.content")
	if !content.Exists() || content.String() == "" {
		return "", llm.ErrEmptyReply
	}
	return content.String(), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
