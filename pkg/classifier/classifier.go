package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/NeuralTrust/CommentGuard/pkg/config"
	"github.com/NeuralTrust/CommentGuard/pkg/infra/httpx"
	"github.com/NeuralTrust/CommentGuard/pkg/types"
)

const breakerName = "remote-classifier"

var (
	// ErrUnparseable marks a response body from which no JSON object could be
	// recovered, even with the brace-extraction fallback.
	ErrUnparseable = errors.New("could not extract valid JSON from response")

	// ErrMissingFields marks a parsed object lacking one of the four required
	// classification fields.
	ErrMissingFields = errors.New("missing required fields in classifier response")
)

const promptTemplate = `Analyze this comment for offensive content. Return JSON with:
- is_offensive (boolean)
- offense_type (string: hate_speech, toxicity, profanity, harassment, or none)
- severity (1-10)
- explanation (string)

Comment: %q

Return ONLY valid JSON with no additional text or formatting.`

// Client wraps a single call to an OpenAI-compatible chat-completion endpoint
// acting as a moderation classifier. It never retries: a failed call is
// returned immediately and the caller decides how to degrade.
type Client struct {
	endpoint    string
	model       string
	apiKey      string
	temperature float64
	timeout     time.Duration
	httpClient  httpx.Client
	breaker     httpx.CircuitBreaker
	logger      *logrus.Logger
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func New(cfg *config.Config, logger *logrus.Logger, client httpx.Client) *Client {
	if client == nil {
		client = &http.Client{Timeout: cfg.API.Timeout()}
	}
	return &Client{
		endpoint:    cfg.API.Endpoint,
		model:       cfg.API.Model,
		apiKey:      cfg.API.Key,
		temperature: cfg.API.Temperature,
		timeout:     cfg.API.Timeout(),
		httpClient:  client,
		breaker:     httpx.NewCircuitBreaker(breakerName, 30*time.Second, 5),
		logger:      logger,
	}
}

// Classify asks the remote model for a structured verdict on commentText.
// Any transport error, non-success status, timeout, or malformed body is
// returned as an error value; it is also logged here so per-comment failures
// stay visible to the operator.
func (c *Client) Classify(ctx context.Context, commentText string) (*types.ClassificationResult, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: fmt.Sprintf(promptTemplate, commentText)},
		},
		Temperature:    c.temperature,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal classification request: %w", err)
	}

	body, err := c.send(ctx, jsonData)
	if err != nil {
		c.logger.WithError(err).Error("classification request failed")
		return nil, err
	}

	result, err := c.parseResult(body)
	if err != nil {
		c.logger.WithError(err).Error("failed to process classifier response")
		return nil, err
	}
	return result, nil
}

func (c *Client) send(ctx context.Context, jsonData []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	var body []byte
	err = c.breaker.Execute(func() error {
		resp, err := c.httpClient.Do(httpReq)
		if err != nil {
			return fmt.Errorf("classification request failed: %w", err)
		}
		defer resp.Body.Close()

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response body: %w", err)
		}
		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			return fmt.Errorf("classifier endpoint returned status %d: %s", resp.StatusCode, string(body))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) parseResult(body []byte) (*types.ClassificationResult, error) {
	var envelope chatResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to unmarshal completion envelope: %w", err)
	}
	if len(envelope.Choices) == 0 {
		return nil, fmt.Errorf("no completions returned")
	}
	return parseClassification(envelope.Choices[0].Message.Content)
}

// parseClassification runs the two-stage parse: strict first, then best-effort
// extraction of the substring between the first '{' and the last '}'. The
// fallback covers models that wrap the object in prose despite instructions.
func parseClassification(content string) (*types.ClassificationResult, error) {
	payload, err := decodePayload(content)
	if err != nil {
		start := strings.Index(content, "{")
		end := strings.LastIndex(content, "}")
		if start == -1 || end <= start {
			return nil, ErrUnparseable
		}
		payload, err = decodePayload(content[start : end+1])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnparseable, err)
		}
	}

	var missing []string
	if payload.IsOffensive == nil {
		missing = append(missing, "is_offensive")
	}
	if payload.OffenseType == nil {
		missing = append(missing, "offense_type")
	}
	if payload.Severity == nil {
		missing = append(missing, "severity")
	}
	if payload.Explanation == nil {
		missing = append(missing, "explanation")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}

	return &types.ClassificationResult{
		IsOffensive: *payload.IsOffensive,
		OffenseType: *payload.OffenseType,
		Severity:    *payload.Severity,
		Explanation: *payload.Explanation,
	}, nil
}

type classificationPayload struct {
	IsOffensive *bool   `json:"is_offensive"`
	OffenseType *string `json:"offense_type"`
	Severity    *int    `json:"severity"`
	Explanation *string `json:"explanation"`
}

func decodePayload(content string) (*classificationPayload, error) {
	var payload classificationPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}
