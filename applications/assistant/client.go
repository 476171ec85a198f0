// Package assistant is the AI travel collaborator. It talks to the Groq
// chat-completions API when a key is configured and degrades to
// deterministic fallbacks when it is not: no operation in this package
// ever fails the request it serves.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"
)

const (
	defaultBaseURL = "https://api.groq.com/openai/v1"
	defaultModel   = "llama-3.3-70b-versatile"
	defaultTimeout = 10 * time.Second
)

// Client wraps the Groq chat-completions endpoint. A Client with no API
// key is valid: Ready reports false and every operation takes its
// fallback path.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	http    *http.Client
	timeout time.Duration
}

// New builds a Client from the GROQ_API_KEY environment variable.
func New() *Client {
	key := os.Getenv("GROQ_API_KEY")
	if key == "" {
		slog.Warn("GROQ_API_KEY not set, assistant running in fallback mode")
	} else {
		slog.Info("assistant client initialized")
	}
	return &Client{
		apiKey:  key,
		baseURL: defaultBaseURL,
		model:   defaultModel,
		http:    &http.Client{Timeout: defaultTimeout},
		timeout: defaultTimeout,
	}
}

// NewWithEndpoint overrides the API endpoint and key, used in tests.
func NewWithEndpoint(baseURL, apiKey string) *Client {
	c := New()
	c.baseURL = baseURL
	c.apiKey = apiKey
	return c
}

// Ready reports whether the client can reach the provider at all.
func (c *Client) Ready() bool { return c.apiKey != "" }

type message struct {
	Role      string     `json:"role"`
	Content   string     `json:"content"`
	ToolCalls []toolCall `json:"tool_calls,omitempty"`
}

type toolCall struct {
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type tool struct {
	Type     string       `json:"type"`
	Function toolFunction `json:"function"`
}

type toolFunction struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Parameters  interface{} `json:"parameters,omitempty"`
}

type toolChoice struct {
	Type     string `json:"type"`
	Function struct {
		Name string `json:"name"`
	} `json:"function"`
}

type completionRequest struct {
	Model          string          `json:"model"`
	Messages       []message       `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
	Tools          []tool          `json:"tools,omitempty"`
	ToolChoice     *toolChoice     `json:"tool_choice,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// complete performs one chat-completions call. Callers handle errors by
// returning their fallback; nothing here is user-facing.
func (c *Client) complete(ctx context.Context, req completionRequest) (*completionResponse, error) {
	if !c.Ready() {
		return nil, fmt.Errorf("assistant client not configured")
	}
	if req.Model == "" {
		req.Model = c.model
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal completion request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build completion request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call completion endpoint: %w", err)
	}
	defer resp.Body.Close()

	var out completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode completion response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := resp.Status
		if out.Error != nil {
			msg = out.Error.Message
		}
		return nil, fmt.Errorf("completion endpoint returned %d: %s", resp.StatusCode, msg)
	}
	if len(out.Choices) == 0 {
		return nil, fmt.Errorf("completion response has no choices")
	}
	return &out, nil
}
