package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rgsuhas/fitness-buddy-sub001/internal/domain"
	"github.com/rs/zerolog/log"
)

// PlanGenerator produces workout plans from a goal description
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, req *domain.GeneratePlanRequest) (*GeneratedPlan, error)
}

// GeneratedPlan is the generator's output before it is persisted
type GeneratedPlan struct {
	Title string               `json:"title"`
	Items []domain.WorkoutItem `json:"items"`
}

// llmPlanGenerator calls an OpenAI-format chat completions endpoint
type llmPlanGenerator struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewLLMPlanGenerator creates a PlanGenerator backed by a chat completions API
func NewLLMPlanGenerator(baseURL, apiKey, model string) PlanGenerator {
	return &llmPlanGenerator{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

const planSystemPrompt = `You are a certified fitness coach. Produce a workout plan as JSON only, no prose.
The JSON object has the shape:
{"title": "...", "items": [{"exercise_name": "...", "sets": 3, "reps": 10, "rest_seconds": 60, "day": 1, "notes": "..."}]}
Use realistic set/rep schemes for the stated level and spread the items over the requested number of training days.`

// GeneratePlan asks the model for a plan and parses the JSON it returns
func (g *llmPlanGenerator) GeneratePlan(ctx context.Context, req *domain.GeneratePlanRequest) (*GeneratedPlan, error) {
	days := req.DaysPerWk
	if days < 1 || days > 7 {
		days = 3
	}

	var userPrompt strings.Builder
	fmt.Fprintf(&userPrompt, "Goal: %s\nLevel: %s\nTraining days per week: %d\n", req.Goal, req.Level, days)
	if len(req.Equipment) > 0 {
		fmt.Fprintf(&userPrompt, "Available equipment: %s\n", strings.Join(req.Equipment, ", "))
	} else {
		userPrompt.WriteString("Available equipment: bodyweight only\n")
	}

	body := chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: planSystemPrompt},
			{Role: "user", Content: userPrompt.String()},
		},
		Temperature: 0.4,
		MaxTokens:   2000,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("plan generation request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		log.Error().Int("status", resp.StatusCode).Msg("Plan generation endpoint returned an error")
		return nil, fmt.Errorf("plan generation endpoint returned status %d", resp.StatusCode)
	}

	var chat chatResponse
	if err := json.Unmarshal(raw, &chat); err != nil {
		return nil, fmt.Errorf("failed to parse plan generation response: %w", err)
	}
	if chat.Error != nil {
		return nil, fmt.Errorf("plan generation failed: %s", chat.Error.Message)
	}
	if len(chat.Choices) == 0 {
		return nil, fmt.Errorf("plan generation returned no choices")
	}

	return parsePlanContent(chat.Choices[0].Message.Content)
}

// parsePlanContent extracts the plan JSON from the model output, tolerating
// markdown code fences around it
func parsePlanContent(content string) (*GeneratedPlan, error) {
	content = strings.TrimSpace(content)
	if start := strings.Index(content, "{"); start >= 0 {
		if end := strings.LastIndex(content, "}"); end > start {
			content = content[start : end+1]
		}
	}

	var plan GeneratedPlan
	if err := json.Unmarshal([]byte(content), &plan); err != nil {
		return nil, fmt.Errorf("failed to parse generated plan: %w", err)
	}
	if plan.Title == "" {
		plan.Title = "Generated workout plan"
	}
	if len(plan.Items) == 0 {
		return nil, fmt.Errorf("generated plan contains no items")
	}
	return &plan, nil
}
