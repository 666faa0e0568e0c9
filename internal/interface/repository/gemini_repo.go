package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"departly/internal/domain/repository"
	"departly/pkg/logger"
)

// GeminiBaseURL is the production generative language endpoint.
const GeminiBaseURL = "https://generativelanguage.googleapis.com"

// GeminiRepository implements the generation interface against the Gemini
// REST API.
type GeminiRepository struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
	logger  logger.Logger
}

// NewGeminiRepository creates a new Gemini client
func NewGeminiRepository(client *http.Client, baseURL, apiKey, model string, logger logger.Logger) repository.GeminiRepository {
	return &GeminiRepository{
		client:  client,
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		logger:  logger,
	}
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generatePart struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []generatePart `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// GenerateContent sends one prompt and returns the first candidate's text.
// Quota exhaustion maps to ErrQuotaExhausted so the caller's retry policy
// can tell it apart from hard failures.
func (r *GeminiRepository) GenerateContent(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []generateContent{{Parts: []generatePart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", r.baseURL, r.model, r.apiKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach generation API: %w", err)
	}
	defer resp.Body.Close()

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		message := ""
		status := ""
		if decoded.Error != nil {
			message = decoded.Error.Message
			status = decoded.Error.Status
		}
		if resp.StatusCode == http.StatusTooManyRequests || status == "RESOURCE_EXHAUSTED" {
			return "", fmt.Errorf("%w: %s", repository.ErrQuotaExhausted, message)
		}
		return "", fmt.Errorf("generation API returned status %d: %s", resp.StatusCode, message)
	}

	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("generation API returned no content")
	}
	return decoded.Candidates[0].Content.Parts[0].Text, nil
}
