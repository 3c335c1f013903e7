package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"ai-doctor-chat-app/entity"
	"ai-doctor-chat-app/enum"
)

// GroqClient talks to Groq's OpenAI-compatible chat-completion endpoint.
type GroqClient struct {
	llm   *openai.LLM
	model string
}

func NewGroqClient(baseURL, apiKey, model string) (*GroqClient, error) {
	llm, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(baseURL),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, err
	}
	return &GroqClient{llm: llm, model: model}, nil
}

func (c *GroqClient) Complete(ctx context.Context, turns []entity.Turn, onChunk func(chunk string)) (string, error) {
	content := make([]llms.MessageContent, 0, len(turns))
	for _, turn := range turns {
		content = append(content, llms.TextParts(messageType(turn.Role), turn.Content))
	}

	options := make([]llms.CallOption, 0, 1)
	if onChunk != nil {
		options = append(options, llms.WithStreamingFunc(func(ctx context.Context, chunk []byte) error {
			onChunk(string(chunk))
			return nil
		}))
	}

	response, err := c.llm.GenerateContent(ctx, content, options...)
	if err != nil {
		return "", err
	}
	if len(response.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}

	return strings.TrimSpace(response.Choices[0].Content), nil
}

func messageType(role enum.Role) llms.ChatMessageType {
	switch role {
	case enum.RoleSystem:
		return llms.ChatMessageTypeSystem
	case enum.RoleAssistant:
		return llms.ChatMessageTypeAI
	default:
		return llms.ChatMessageTypeHuman
	}
}
