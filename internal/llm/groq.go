package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultGroqBaseURL = "https://api.groq.com/openai/v1"

// GroqClient calls the Groq chat-completions endpoint. Sampling parameters
// are fixed; each call is one bounded, synchronous round trip with no
// retries.
type GroqClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewGroqClient(apiKey, model string, timeout time.Duration) *GroqClient {
	return &GroqClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultGroqBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// WithBaseURL points the client at a different endpoint. Used by tests.
func (c *GroqClient) WithBaseURL(baseURL string) *GroqClient {
	c.baseURL = baseURL
	return c
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	TopP        float64       `json:"top_p"`
	Stream      bool          `json:"stream"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *GroqClient) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := chatCompletionRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "system", Content: prompt}},
		Temperature: 1,
		MaxTokens:   100,
		TopP:        1,
		Stream:      false,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read completion response: %w", err)
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if completion.Error != nil {
			return "", fmt.Errorf("completion service returned %d: %s", resp.StatusCode, completion.Error.Message)
		}
		return "", fmt.Errorf("completion service returned %d", resp.StatusCode)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("completion response contained no choices")
	}

	return completion.Choices[0].Message.Content, nil
}
