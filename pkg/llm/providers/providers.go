package providers

import (
	"fmt"

	"github.com/danirodriguezz/hirepilot/pkg/config"
	"github.com/danirodriguezz/hirepilot/pkg/llm"
	"github.com/danirodriguezz/hirepilot/pkg/llm/anthropic"
	"github.com/danirodriguezz/hirepilot/pkg/llm/gemini"
	"github.com/danirodriguezz/hirepilot/pkg/llm/openrouter"
)

// New builds the chat model selected by cfg. It returns llm.ErrEmptyAPIKey when
// no credential is configured so callers can run without a provider.
func New(cfg config.LLM) (llm.ChatModel, error) {
	if !cfg.HasCredential() {
		return nil, llm.ErrEmptyAPIKey
	}
	switch cfg.Provider {
	case config.ProviderOpenRouter, "":
		return openrouter.New(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.AppTitle, cfg.Referer), nil
	case config.ProviderAnthropic:
		return anthropic.New(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
	case config.ProviderGemini:
		return gemini.New(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
