package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danirodriguezz/hirepilot/pkg/config"
	"github.com/danirodriguezz/hirepilot/pkg/llm"
)

func TestNewWithoutCredential(t *testing.T) {
	m, err := New(config.LLM{Provider: config.ProviderOpenRouter})
	require.ErrorIs(t, err, llm.ErrEmptyAPIKey)
	assert.Nil(t, m)
}

func TestNewSelectsProvider(t *testing.T) {
	cases := map[string]string{
		config.ProviderOpenRouter: "openrouter/m",
		config.ProviderAnthropic:  "anthropic/m",
		config.ProviderGemini:     "gemini/m",
	}
	for provider, name := range cases {
		t.Run(provider, func(t *testing.T) {
			m, err := New(config.LLM{Provider: provider, APIKey: "k", Model: "m"})
			require.NoError(t, err)
			assert.Equal(t, name, m.Name())
		})
	}
}

func TestNewUnknownProvider(t *testing.T) {
	_, err := New(config.LLM{Provider: "cohere", APIKey: "k"})
	assert.Error(t, err)
}
