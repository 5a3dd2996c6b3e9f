package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/willythepapi/FITART-v1/config"
	"github.com/willythepapi/FITART-v1/internal/models"
)

// completionsServer streams tokens as chat completion chunks and records
// the last request.
func completionsServer(t *testing.T, tokens []string, last *Request) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(last))

		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)
		fmt.Fprint(w, ": keep-alive\n\n")
		for _, tok := range tokens {
			data, _ := json.Marshal(map[string]any{
				"choices": []map[string]any{{"delta": map[string]string{"content": tok}}},
			})
			fmt.Fprintf(w, "data: %s\n\n", data)
			flusher.Flush()
		}
		fmt.Fprint(w, "data: {\"choices\":[]}\n\n")
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestCoach(t *testing.T, url string, rdb *redis.Client) *CoachService {
	t.Helper()
	cfg := config.Default()
	cfg.CoachAPIURL = url
	cfg.CoachAPIKey = "test-key"
	s, err := NewCoachService(cfg, rdb)
	require.NoError(t, err)
	return s
}

func readAll(t *testing.T, s *CoachService, history []models.ChatMessage, msg string) (string, error) {
	t.Helper()
	var sb strings.Builder
	for tok, err := range s.StreamReply(context.Background(), models.DefaultUser(), history, msg) {
		if err != nil {
			return sb.String(), err
		}
		sb.WriteString(tok)
	}
	return sb.String(), nil
}

func TestNewCoachService_RequiresKey(t *testing.T) {
	_, err := NewCoachService(config.Default(), nil)
	assert.Error(t, err)
}

func TestCoachService_StreamReply(t *testing.T) {
	var req Request
	srv := completionsServer(t, []string{"Great ", "question", "!"}, &req)
	s := newTestCoach(t, srv.URL, nil)

	history := []models.ChatMessage{
		{Role: models.RoleUser, Text: "Hi"},
		{Role: models.RoleModel, Text: "Hello, I am Zenith."},
	}
	reply, err := readAll(t, s, history, "How much protein do I need?")
	require.NoError(t, err)
	assert.Equal(t, "Great question!", reply)

	assert.True(t, req.Stream)
	assert.Equal(t, "deepseek-chat", req.Model)
	require.Len(t, req.Messages, 5)
	assert.Equal(t, "system", req.Messages[0].Role)
	assert.Contains(t, req.Messages[0].Content, "You are Zenith")
	assert.Contains(t, req.Messages[1].Content, "Alex Ryder")
	assert.Equal(t, Message{Role: "user", Content: "Hi"}, req.Messages[2])
	assert.Equal(t, Message{Role: "assistant", Content: "Hello, I am Zenith."}, req.Messages[3])
	assert.Equal(t, Message{Role: "user", Content: "How much protein do I need?"}, req.Messages[4])
}

func TestCoachService_EarlyBreak(t *testing.T) {
	var req Request
	srv := completionsServer(t, []string{"a", "b", "c"}, &req)
	s := newTestCoach(t, srv.URL, nil)

	var got []string
	for tok, err := range s.StreamReply(context.Background(), models.DefaultUser(), nil, "hi") {
		require.NoError(t, err)
		got = append(got, tok)
		break
	}
	assert.Equal(t, []string{"a"}, got)
}

func TestCoachService_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"bad key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()
	s := newTestCoach(t, srv.URL, nil)

	_, err := readAll(t, s, nil, "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestCoachService_ConversationCache(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not installed, skipping container-based test")
	}
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	addr, err := container.Endpoint(ctx, "")
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })

	var req Request
	srv := completionsServer(t, []string{"Drink ", "water."}, &req)
	s := newTestCoach(t, srv.URL, rdb)

	_, err = readAll(t, s, nil, "Tip?")
	require.NoError(t, err)

	cached := s.loadConversation(ctx, "user-1")
	assert.Equal(t, []models.ChatMessage{
		{Role: models.RoleUser, Text: "Tip?"},
		{Role: models.RoleModel, Text: "Drink water."},
	}, cached)

	ttl, err := rdb.TTL(ctx, conversationKey("user-1")).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	_, err = readAll(t, s, nil, "Another?")
	require.NoError(t, err)
	require.Len(t, req.Messages, 5, "cached turns are sent as history")
	assert.Equal(t, "assistant", req.Messages[3].Role)
}
