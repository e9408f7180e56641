package anthropic

import (
	"context"
	"net/http"
	"strings"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/pkg/errors"

	"github.com/danirodriguezz/hirepilot/pkg/llm"
)

const (
	DefaultModel     = "claude-sonnet-4-5"
	defaultMaxTokens = 4096
	providerName     = "anthropic"
	// The Messages API has no JSON mode; the reply is primed with "{" instead.
	jsonPrefill = "{"
)

// Client adapts the Anthropic Messages API to llm.ChatModel.
type Client struct {
	apiKey    string
	model     string
	maxTokens int64
	sdk       sdk.Client
}

func New(apiKey, baseURL, model string) *Client {
	if model == "" {
		model = DefaultModel
	}
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(120 * time.Second),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &Client{
		apiKey:    apiKey,
		model:     model,
		maxTokens: defaultMaxTokens,
		sdk:       sdk.NewClient(opts...),
	}
}

func (c *Client) Name() string { return providerName + "/" + c.model }

func (c *Client) Ask(ctx context.Context, p llm.Prompt) (string, error) {
	if c.apiKey == "" {
		return "", llm.ErrEmptyAPIKey
	}
	messages := []sdk.MessageParam{sdk.NewUserMessage(sdk.NewTextBlock(p.User))}
	if p.JSONObject {
		messages = append(messages, sdk.NewAssistantMessage(sdk.NewTextBlock(jsonPrefill)))
	}
	msg, err := c.sdk.Messages.New(ctx, sdk.MessageNewParams{
		Model:       sdk.Model(c.model),
		MaxTokens:   c.maxTokens,
		Temperature: sdk.Float(float64(p.Temperature)),
		System:      []sdk.TextBlockParam{{Text: p.System}},
		Messages:    messages,
	})
	if err != nil {
		var apiErr *sdk.Error
		if errors.As(err, &apiErr) {
			return "", &llm.StatusError{Provider: providerName, Code: apiErr.StatusCode, Body: http.StatusText(apiErr.StatusCode)}
		}
		return "", errors.Wrap(err, "anthropic request")
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	reply := b.String()
	if strings.TrimSpace(reply) == "" {
		return "", llm.ErrEmptyReply
	}
	if p.JSONObject && !strings.HasPrefix(strings.TrimSpace(reply), jsonPrefill) {
		reply = jsonPrefill + reply
	}
	return reply, nil
}
