// Package llm provides the LLM-assisted semantic parser used as a
// second opinion on test files the heuristic parser handles poorly.
package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/kxyxlxex/JCL-AT-Buddy/internal/chunker"
	"github.com/kxyxlxex/JCL-AT-Buddy/internal/config"
	"github.com/kxyxlxex/JCL-AT-Buddy/internal/question"
)

// ErrNilConfig is returned when a nil config is provided.
var ErrNilConfig = errors.New("llm config is nil")

// ErrEmptyResponse is returned when the LLM returns an empty response.
var ErrEmptyResponse = errors.New("llm returned empty response")

// Client wraps an OpenAI-compatible client for semantic parsing.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates a new LLM client from a ProviderConfig.
func NewClient(cfg *config.ProviderConfig) (*Client, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.BaseURL == "" {
		return nil, errors.New("llm base_url is required")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("llm api_key is required")
	}
	if cfg.Model == "" {
		return nil, errors.New("llm model is required")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL

	return &Client{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}, nil
}

// Complete sends a single user message and returns the assistant
// response text.
func (c *Client) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	messages := []openai.ChatCompletionMessage{}
	if systemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userMessage,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}

const parseSystemPrompt = `You are an expert at parsing educational test files. Extract every multiple-choice question from the provided Latin forum test.

For each question report:
- question_index: the question number (integer)
- question_body: the question text; if the question has no text body, use "Question N" where N is the number
- question_options: an object with keys A, B, C, D holding the option text
- question_instruction: the instruction applying to this question; instructions appear before a group of questions and apply until replaced

Notes:
- Some tests pack options as "a. X b. Y c. Z d. W" on one line (pre-2018 format)
- Some tests put options on separate lines as "A. X" (post-2018 format)
- Section headers like "Derivatives I", "FJCL State Forum", "- States 2019 -" must be ignored
- Return ONLY a valid JSON array, no other text`

// ParseTest asks the LLM to parse raw test text into question records.
// Tests too long for one request are split at question boundaries and
// parsed piecewise. Answer keys are merged by the caller afterwards.
func (c *Client) ParseTest(ctx context.Context, testContent string) ([]question.Record, error) {
	chunks, err := chunker.Split(testContent, chunker.DefaultChunkSize)
	if err != nil {
		return nil, fmt.Errorf("split test: %w", err)
	}

	var records []question.Record
	for _, chunk := range chunks {
		prompt := fmt.Sprintf("Parse this test and return ONLY the JSON array:\n\n%s", chunk.Content)

		raw, err := c.Complete(ctx, parseSystemPrompt, prompt)
		if err != nil {
			return nil, fmt.Errorf("semantic parse: %w", err)
		}

		parsed, err := parseRecords(raw)
		if err != nil {
			return nil, fmt.Errorf("parse semantic response: %w", err)
		}
		records = append(records, parsed...)
	}
	return records, nil
}
