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
)

const (
	openaiBaseURL      = "https://api.openai.com/v1/chat/completions"
	openaiMaxRetries   = 3
	openaiInitialDelay = 1 * time.Second
	openaiTimeout      = 30 * time.Second

	// FallbackScore is returned whenever the model's reply cannot be
	// parsed as the expected JSON object.
	FallbackScore  = 50
	FallbackReason = "Fallback score due to parse error."
)

// InquiryScore is the model's verdict on a single inquiry.
type InquiryScore struct {
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}

// ScoringFields are the six inquiry fields the prompt is built from.
type ScoringFields struct {
	Name        string
	Industry    string
	Requirement string
	Budget      string
	Timeline    string
	Source      string
}

// AIScorer rates inquiries via the OpenAI chat completions API.
type AIScorer struct {
	apiKey     string
	model      string
	baseURL    string
	retryDelay time.Duration
	client     *http.Client
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat *chatFormat   `json:"response_format,omitempty"`
	Temperature    float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type chatError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// NewAIScorer creates a scorer bound to an API key and model.
func NewAIScorer(apiKey, model string) *AIScorer {
	return &AIScorer{
		apiKey:     apiKey,
		model:      model,
		baseURL:    openaiBaseURL,
		retryDelay: openaiInitialDelay,
		client:     &http.Client{Timeout: openaiTimeout},
	}
}

// ScoreInquiry asks the model for a {score, reason} JSON object built from
// six inquiry fields. Transport and API failures return an error; a reply
// that is not valid JSON returns the fixed fallback with no error, so a
// flaky model never turns into a 500 at the parse step.
func (s *AIScorer) ScoreInquiry(ctx context.Context, f ScoringFields) (InquiryScore, error) {
	if s.apiKey == "" {
		return InquiryScore{}, fmt.Errorf("OPENAI_API_KEY not set")
	}

	prompt := buildPrompt(f)
	body := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: "You rate B2B lead quality. Respond with a JSON object {\"score\": <integer 0-100>, \"reason\": <string>} and nothing else."},
			{Role: "user", Content: prompt},
		},
		ResponseFormat: &chatFormat{Type: "json_object"},
		Temperature:    0.2,
	}

	content, err := s.complete(ctx, body)
	if err != nil {
		return InquiryScore{}, err
	}

	var verdict InquiryScore
	if err := json.Unmarshal([]byte(content), &verdict); err != nil {
		return InquiryScore{Score: FallbackScore, Reason: FallbackReason}, nil
	}
	if verdict.Score < 0 || verdict.Score > 100 {
		return InquiryScore{Score: FallbackScore, Reason: FallbackReason}, nil
	}
	return verdict, nil
}

func (s *AIScorer) complete(ctx context.Context, body chatRequest) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	var lastErr error
	delay := s.retryDelay

	for attempt := 0; attempt < openaiMaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}

		req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL, bytes.NewReader(payload))
		if err != nil {
			return "", err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+s.apiKey)

		resp, err := s.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		// Retry on rate limits and server errors
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("openai returned status %d", resp.StatusCode)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			var apiErr chatError
			if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error.Message != "" {
				return "", fmt.Errorf("openai error: %s", apiErr.Error.Message)
			}
			return "", fmt.Errorf("openai returned status %d", resp.StatusCode)
		}

		var parsed chatResponse
		if err := json.Unmarshal(respBody, &parsed); err != nil || len(parsed.Choices) == 0 {
			// Treat an unparseable completion envelope like an
			// unparseable verdict: the caller falls back.
			return string(respBody), nil
		}
		return parsed.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("openai request failed after %d attempts: %w", openaiMaxRetries, lastErr)
}

func buildPrompt(f ScoringFields) string {
	var b strings.Builder
	b.WriteString("Rate the quality of this inbound business inquiry from 0 to 100.\n\n")
	fmt.Fprintf(&b, "Name: %s\n", f.Name)
	fmt.Fprintf(&b, "Industry: %s\n", f.Industry)
	fmt.Fprintf(&b, "Requirement: %s\n", f.Requirement)
	fmt.Fprintf(&b, "Budget: %s\n", f.Budget)
	fmt.Fprintf(&b, "Timeline: %s\n", f.Timeline)
	fmt.Fprintf(&b, "Source: %s\n", f.Source)
	return b.String()
}
