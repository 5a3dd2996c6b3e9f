package service

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/willythepapi/FITART-v1/config"
	"github.com/willythepapi/FITART-v1/internal/models"
)

const coachSystemPrompt = "You are Zenith, a world-class AI fitness and nutrition coach. Your tone is encouraging, knowledgeable, and slightly futuristic. Provide safe, effective, and personalized advice. You can create workout plans, suggest healthy recipes, explain exercises, and provide motivation. Always prioritize user safety. Use markdown for formatting, especially for lists and tables."

const (
	conversationTTL      = 24 * time.Hour
	maxConversationTurns = 50
	maxStreamLine        = 1024 * 1024
)

// Message represents a message in the chat completions request
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request represents a streaming chat completions request
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Stream      bool      `json:"stream"`
	Temperature float64   `json:"temperature"`
}

type streamChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

// CoachService streams replies from an OpenAI-compatible chat completions
// API. With a redis client it remembers the conversation per user.
type CoachService struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
	redis  *redis.Client
}

var _ ICoachService = (*CoachService)(nil)

// NewCoachService creates a new CoachService instance. redisClient may be nil.
func NewCoachService(cfg *config.Config, redisClient *redis.Client) (*CoachService, error) {
	if cfg.CoachAPIKey == "" {
		return nil, fmt.Errorf("COACH_API_KEY or the coach_api_key secret must be set")
	}
	return &CoachService{
		apiKey: cfg.CoachAPIKey,
		apiURL: cfg.CoachAPIURL,
		model:  cfg.CoachModel,
		client: &http.Client{Timeout: 2 * time.Minute},
		redis:  redisClient,
	}, nil
}

// StreamReply sends the conversation and yields reply tokens as they
// arrive. When history is empty the cached conversation is used instead.
func (s *CoachService) StreamReply(ctx context.Context, user models.User, history []models.ChatMessage, message string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if len(history) == 0 {
			history = s.loadConversation(ctx, user.ID)
		}

		resp, err := s.send(ctx, buildMessages(user, history, message))
		if err != nil {
			log.Printf("[CoachService] Request failed: %v", err)
			yield("", err)
			return
		}
		defer func() { _ = resp.Body.Close() }()

		var reply strings.Builder
		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), maxStreamLine)
		for scanner.Scan() {
			line := scanner.Text()
			if !strings.HasPrefix(line, "data: ") {
				continue
			}
			data := strings.TrimPrefix(line, "data: ")
			if data == "[DONE]" {
				break
			}

			var chunk streamChunk
			if err := json.Unmarshal([]byte(data), &chunk); err != nil || len(chunk.Choices) == 0 {
				continue
			}
			token := chunk.Choices[0].Delta.Content
			if token == "" {
				continue
			}
			reply.WriteString(token)
			if !yield(token, nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			log.Printf("[CoachService] Stream interrupted: %v", err)
			yield("", fmt.Errorf("failed to read stream: %w", err))
			return
		}

		s.saveConversation(ctx, user.ID,
			models.ChatMessage{Role: models.RoleUser, Text: message},
			models.ChatMessage{Role: models.RoleModel, Text: reply.String()},
		)
	}
}

func (s *CoachService) send(ctx context.Context, messages []Message) (*http.Response, error) {
	jsonData, err := json.Marshal(Request{
		Model:       s.model,
		Messages:    messages,
		Stream:      true,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		_ = resp.Body.Close()
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return resp, nil
}

func buildMessages(user models.User, history []models.ChatMessage, message string) []Message {
	messages := make([]Message, 0, len(history)+3)
	messages = append(messages,
		Message{Role: "system", Content: coachSystemPrompt},
		Message{Role: "system", Content: profileContext(user)},
	)
	for _, m := range history {
		role := "user"
		if m.Role == models.RoleModel {
			role = "assistant"
		}
		messages = append(messages, Message{Role: role, Content: m.Text})
	}
	return append(messages, Message{Role: "user", Content: message})
}

func profileContext(u models.User) string {
	return fmt.Sprintf(
		"User profile: name %s, age %d, gender %s, height %gcm, weight %gkg, target weight %gkg, activity level %s, goal %s, daily calorie goal %d kcal, daily water goal %d ml.",
		u.Name, u.Age, u.Gender, u.Height, u.Weight, u.TargetWeight, u.ActivityLevel, u.Goal, u.CalorieGoal, u.WaterGoal,
	)
}

func conversationKey(userID string) string {
	return fmt.Sprintf("coach:conversation:%s", userID)
}

// loadConversation returns the cached conversation, oldest first.
func (s *CoachService) loadConversation(ctx context.Context, userID string) []models.ChatMessage {
	if s.redis == nil {
		return nil
	}
	items, err := s.redis.LRange(ctx, conversationKey(userID), 0, -1).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("[CoachService] Failed to load conversation: %v", err)
		}
		return nil
	}

	history := make([]models.ChatMessage, 0, len(items))
	for _, item := range items {
		var m models.ChatMessage
		if err := json.Unmarshal([]byte(item), &m); err != nil {
			continue
		}
		history = append(history, m)
	}
	return history
}

func (s *CoachService) saveConversation(ctx context.Context, userID string, messages ...models.ChatMessage) {
	if s.redis == nil {
		return
	}
	key := conversationKey(userID)
	pipe := s.redis.TxPipeline()
	for _, m := range messages {
		data, err := json.Marshal(m)
		if err != nil {
			return
		}
		pipe.RPush(ctx, key, data)
	}
	pipe.LTrim(ctx, key, -2*maxConversationTurns, -1)
	pipe.Expire(ctx, key, conversationTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("[CoachService] Failed to save conversation: %v", err)
	}
}
