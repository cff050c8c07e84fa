package summarizer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nguyentantai21042004/ytresumen/internal/config"
	"github.com/nguyentantai21042004/ytresumen/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chatOK = `{"id":"chatcmpl-1","object":"chat.completion","created":1,"model":"llama-3.3-70b-versatile",
"choices":[{"index":0,"message":{"role":"assistant","content":"Un resumen."},"finish_reason":"stop"}],
"usage":{"prompt_tokens":10,"completion_tokens":3,"total_tokens":13}}`

func chatServer(t *testing.T, handle func(w http.ResponseWriter, key string, body map[string]any)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			http.NotFound(w, r)
			return
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		handle(w, r.Header.Get("Authorization"), body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAIComplete(t *testing.T) {
	var model any
	srv := chatServer(t, func(w http.ResponseWriter, _ string, body map[string]any) {
		model = body["model"]
		_, _ = w.Write([]byte(chatOK))
	})

	c, err := NewOpenAI([]string{"k1"}, srv.URL+"/v1", "llama-3.3-70b-versatile", logger.Nop())
	require.NoError(t, err)

	got, err := c.Complete(context.Background(), "Resume esto")
	require.NoError(t, err)
	assert.Equal(t, "Un resumen.", got)
	assert.Equal(t, "llama-3.3-70b-versatile", model)
}

func TestOpenAIRotatesOnRateLimit(t *testing.T) {
	var limited atomic.Int32
	srv := chatServer(t, func(w http.ResponseWriter, key string, _ map[string]any) {
		if key == "Bearer k1" {
			limited.Add(1)
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"message":"Rate limit reached","type":"tokens","code":"rate_limit_exceeded"}}`))
			return
		}
		_, _ = w.Write([]byte(chatOK))
	})

	c, err := NewOpenAI([]string{"k1", "k2"}, srv.URL+"/v1", "m", logger.Nop())
	require.NoError(t, err)

	got, err := c.Complete(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "Un resumen.", got)

	// The healthy key stays selected
	_, err = c.Complete(context.Background(), "y")
	require.NoError(t, err)
	assert.Equal(t, int32(1), limited.Load())
}

func TestOpenAIAllKeysLimited(t *testing.T) {
	srv := chatServer(t, func(w http.ResponseWriter, _ string, _ map[string]any) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"Rate limit reached","type":"tokens"}}`))
	})

	c, err := NewOpenAI([]string{"k1", "k2"}, srv.URL+"/v1", "m", logger.Nop())
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), "x")
	assert.ErrorIs(t, err, ErrKeysExhausted)
}

func TestOpenAIRejected(t *testing.T) {
	srv := chatServer(t, func(w http.ResponseWriter, _ string, _ map[string]any) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid API Key","type":"invalid_request_error"}}`))
	})

	c, err := NewOpenAI([]string{"bad"}, srv.URL+"/v1", "m", logger.Nop())
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), "x")
	assert.ErrorIs(t, err, ErrRejected)
}

func TestOpenAIEmptyChoices(t *testing.T) {
	srv := chatServer(t, func(w http.ResponseWriter, _ string, _ map[string]any) {
		_, _ = w.Write([]byte(`{"id":"1","object":"chat.completion","choices":[]}`))
	})

	c, err := NewOpenAI([]string{"k"}, srv.URL+"/v1", "m", logger.Nop())
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), "x")
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestOpenAIRequiresKey(t *testing.T) {
	_, err := NewOpenAI(nil, "", "m", logger.Nop())
	assert.Error(t, err)
}

func TestSummarizerWithOpenAIEndToEnd(t *testing.T) {
	var calls atomic.Int32
	srv := chatServer(t, func(w http.ResponseWriter, _ string, _ map[string]any) {
		calls.Add(1)
		_, _ = w.Write([]byte(chatOK))
	})

	c, err := NewOpenAI([]string{"k"}, srv.URL+"/v1", "m", logger.Nop())
	require.NoError(t, err)
	s := New(c, Options{MaxWords: 4000, ChunkWords: 5800}, logger.Nop())

	got, err := s.Summarize(context.Background(), words(10000))
	require.NoError(t, err)
	assert.Equal(t, "Un resumen.", got)
	assert.Equal(t, int32(3), calls.Load())
}

func TestKeyRing(t *testing.T) {
	k := newKeyRing(3)
	assert.Equal(t, 0, k.get())

	k.rotate(0)
	assert.Equal(t, 1, k.get())

	// A stale rotation for key 0 does not skip key 1
	k.rotate(0)
	assert.Equal(t, 1, k.get())

	k.rotate(1)
	k.rotate(2)
	assert.Equal(t, 0, k.get())
}

func TestClassifyGeminiError(t *testing.T) {
	tests := []struct {
		msg  string
		want geminiErrorKind
	}{
		{"Error 429, Message: Resource has been exhausted, Status: RESOURCE_EXHAUSTED", geminiRateLimited},
		{"You exceeded your current quota", geminiRateLimited},
		{"Error 400, Message: API key not valid, Status: INVALID_ARGUMENT", geminiRejected},
		{"Error 403, Status: PERMISSION_DENIED", geminiRejected},
		{"Error 404, Message: models/gemini-9 is not found, Status: NOT_FOUND", geminiRejected},
		{"Error 503, Message: The model is overloaded, Status: UNAVAILABLE", geminiTransient},
		{"dial tcp: connection refused", geminiTransient},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyGeminiError(errors.New(tt.msg)))
		})
	}
}

func TestNewCompleter(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.SummarizerConfig
		want    any
		wantErr bool
	}{
		{"groq", config.SummarizerConfig{Provider: "groq", APIKeys: []string{"k"}}, &implOpenAI{}, false},
		{"openai", config.SummarizerConfig{Provider: "openai", APIKeys: []string{"k"}}, &implOpenAI{}, false},
		{"gemini", config.SummarizerConfig{Provider: "gemini", APIKeys: []string{"k"}}, &implGemini{}, false},
		{"no keys", config.SummarizerConfig{Provider: "groq"}, nil, true},
		{"unknown", config.SummarizerConfig{Provider: "mistral", APIKeys: []string{"k"}}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCompleter(tt.cfg, logger.Nop())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, c)
		})
	}
}

func TestOptionsFromConfigRetries(t *testing.T) {
	zero, five := 0, 5

	assert.Equal(t, DefaultMaxRetries, OptionsFromConfig(config.SummarizerConfig{}).MaxRetries)
	assert.Equal(t, 5, OptionsFromConfig(config.SummarizerConfig{MaxRetries: &five}).MaxRetries)

	opts := OptionsFromConfig(config.SummarizerConfig{MaxRetries: &zero})
	assert.Equal(t, 0, opts.MaxRetries)

	c := &fakeCompleter{respond: func(int, string) (string, error) {
		return "", errors.New("503 service unavailable")
	}}
	opts.RetryInitial = time.Millisecond
	s := New(c, opts, logger.Nop())

	_, err := s.Summarize(context.Background(), "hola")
	require.Error(t, err)
	assert.Equal(t, 1, c.calls(), "max_retries 0 must not retry")
}
