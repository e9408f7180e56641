package gemini

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danirodriguezz/hirepilot/pkg/llm"
)

func TestAskWithoutKeyMakesNoCall(t *testing.T) {
	_, err := New("", "", "").Ask(context.Background(), llm.Prompt{User: "x"})
	require.ErrorIs(t, err, llm.ErrEmptyAPIKey)
}

func TestName(t *testing.T) {
	assert.Equal(t, "gemini/"+DefaultModel, New("k", "", "").Name())
	assert.Equal(t, "gemini/custom", New("k", "", "custom").Name())
}

func TestAskReturnsCandidateText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "models/test-model:generateContent"), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"ok\":true}"}]}}]}`))
	}))
	defer srv.Close()

	reply, err := New("k", srv.URL, "test-model").Ask(context.Background(), llm.Prompt{System: "s", User: "u", JSONObject: true})
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, reply)
}
