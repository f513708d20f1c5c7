// Package gemini implements question generation and answer grading on the
// Gemini API through the google genai SDK.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/vintervu/interview-server/internal/infrastructure/resilience"
)

const defaultModel = "gemini-1.5-flash"

// textGenerator is the seam between prompt logic and the SDK; tests swap in
// a scripted implementation.
type textGenerator interface {
	GenerateText(ctx context.Context, operation, prompt string) (string, error)
}

// Client wraps the genai SDK with the shared retry/breaker executor. One
// Client serves both the question generator and the grader.
type Client struct {
	client *genai.Client
	model  string
	exec   *resilience.Executor
}

func NewClient(ctx context.Context, apiKey, model string, exec *resilience.Executor) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}
	return &Client{client: client, model: model, exec: exec}, nil
}

// GenerateText sends one prompt and returns the concatenated candidate text.
func (c *Client) GenerateText(ctx context.Context, operation, prompt string) (string, error) {
	var output string
	err := c.exec.Execute(ctx, operation, func(ctx context.Context) error {
		resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
		if err != nil {
			return fmt.Errorf("generate content: %w", err)
		}
		output = harvestText(resp)
		if output == "" {
			return errors.New("gemini returned an empty response")
		}
		return nil
	}, classifyGeminiError)
	if err != nil {
		return "", wrapTemporaryIfNeeded(operation, err)
	}
	return output, nil
}

func harvestText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(text)
		}
	}
	return strings.TrimSpace(b.String())
}
