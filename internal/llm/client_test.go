package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.Endpoint = endpoint
	cfg.MaxRetries = 0
	return cfg
}

func candidateBody(text string) string {
	return `{"candidates":[{"content":{"parts":[{"text":` + mustQuote(text) + `}]}}],"modelVersion":"gemini-1.5-flash-002"}`
}

func mustQuote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestGeminiClient_Generate(t *testing.T) {
	var gotReq geminiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-1.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Write([]byte(candidateBody(`{"summary":"s"}`)))
	}))
	defer srv.Close()

	client := NewGeminiClient(testConfig(srv.URL), nil)
	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:         TaskAnalyze,
		SystemPrompt: "You are a meeting assistant.",
		UserPrompt:   "Analyze this.",
	})
	require.NoError(t, err)
	assert.Equal(t, `{"summary":"s"}`, resp.Text)
	assert.Equal(t, "gemini-1.5-flash-002", resp.Model)

	require.NotNil(t, gotReq.SystemInstruction)
	assert.Equal(t, "You are a meeting assistant.", gotReq.SystemInstruction.Parts[0].Text)
	require.Len(t, gotReq.Contents, 1)
	assert.Equal(t, "Analyze this.", gotReq.Contents[0].Parts[0].Text)
	assert.Equal(t, "application/json", gotReq.GenerationConfig.ResponseMIMEType)
}

func TestGeminiClient_InlineAudioPart(t *testing.T) {
	var gotReq geminiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Write([]byte(candidateBody("ok")))
	}))
	defer srv.Close()

	client := NewGeminiClient(testConfig(srv.URL), nil)
	_, err := client.Generate(context.Background(), GenerateRequest{
		Task:       TaskAnalyze,
		UserPrompt: "Analyze this recording.",
		Inline:     &InlineData{MIMEType: "audio/mpeg", Data: "QUJD"},
	})
	require.NoError(t, err)

	require.Len(t, gotReq.Contents[0].Parts, 2)
	require.NotNil(t, gotReq.Contents[0].Parts[1].InlineData)
	assert.Equal(t, "audio/mpeg", gotReq.Contents[0].Parts[1].InlineData.MIMEType)
	assert.Equal(t, "QUJD", gotReq.Contents[0].Parts[1].InlineData.Data)
}

func TestGeminiClient_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewGeminiClient(testConfig(srv.URL), nil)
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskAnalyze, UserPrompt: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRetryExhausted)
}

func TestGeminiClient_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	client := NewGeminiClient(testConfig(srv.URL), nil)
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskAnalyze, UserPrompt: "x"})
	require.Error(t, err)
}

func TestGeminiClient_RetriesThenSucceeds(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, "transient", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(candidateBody("recovered")))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 1
	client := NewGeminiClient(cfg, nil)
	resp, err := client.Generate(context.Background(), GenerateRequest{Task: TaskAnalyze, UserPrompt: "x"})
	require.NoError(t, err)
	assert.Equal(t, "recovered", resp.Text)
	assert.Equal(t, 2, calls)
}

func TestGeminiClient_ObserverSeesFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	var events []CallEvent
	observer := observerFunc(func(e CallEvent) { events = append(events, e) })
	client := NewGeminiClient(testConfig(srv.URL), observer)

	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskAnalyze, UserPrompt: "x"})
	require.Error(t, err)
	require.Len(t, events, 1)
	assert.False(t, events[0].Success)
	assert.Equal(t, TaskAnalyze, events[0].Task)
}

type observerFunc func(CallEvent)

func (f observerFunc) OnCallComplete(e CallEvent) { f(e) }

func TestConfig_Enabled(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled())
	cfg.APIKey = "k"
	assert.True(t, cfg.Enabled())
}

func TestConfig_TaskTimeout(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 60000, cfg.TaskTimeout(TaskAnalyze))
	assert.Equal(t, cfg.TimeoutMs, cfg.TaskTimeout(TaskType("other")))
}
