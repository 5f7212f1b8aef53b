package ai

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/greenepidemic/greenepidemic-api/external/weather"
)

const (
	defaultModel = openai.GPT3Dot5Turbo

	summarySystemPrompt = "You are an environmental health analyst. " +
		"Summarize the situation described by the user into a JSON object " +
		"with keys title, body, severity (0-10) and confidence (0-1). " +
		"Answer with the JSON object only."

	assistantSystemPrompt = "You are a cautious health assistant for an " +
		"environmental incident monitoring service. Give practical, " +
		"non-diagnostic advice and tell users to seek professional care " +
		"for anything urgent."
)

var errEmptyAnswer = fmt.Errorf("empty answer from ai provider")

// Summary is the structured result of a situation summarization.
type Summary struct {
	Title      string  `json:"title"`
	Body       string  `json:"body"`
	Severity   float64 `json:"severity"`
	Confidence float64 `json:"confidence"`
}

// SituationInput is the gathered data handed to the summarizer.
type SituationInput struct {
	WindowHours  int                   `json:"window_hours"`
	ReportCount  int64                 `json:"report_count"`
	Observations []weather.Observation `json:"observations"`
}

// Message is one turn of an assistant conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AI - interface for the language model provider
type AI interface {
	SummarizeSituation(ctx context.Context, input SituationInput) (*Summary, error)
	Chat(ctx context.Context, history []Message, prompt string) (string, error)
}

type openAI struct {
	client *openai.Client
	model  string
}

func (o *openAI) SummarizeSituation(ctx context.Context, input SituationInput) (*Summary, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: summarySystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: string(payload)},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, errEmptyAnswer
	}

	content := resp.Choices[0].Message.Content

	var summary Summary
	if err := json.Unmarshal([]byte(content), &summary); err != nil {
		// provider ignored the format instruction, keep the raw text
		summary = Summary{
			Title:      "Situational analysis",
			Body:       content,
			Severity:   0,
			Confidence: 0,
		}
	}

	return &summary, nil
}

func (o *openAI) Chat(ctx context.Context, history []Message, prompt string) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: assistantSystemPrompt,
	})
	for _, m := range history {
		role := openai.ChatMessageRoleUser
		if m.Role == "assistant" {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    o.model,
		Messages: messages,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errEmptyAnswer
	}

	return resp.Choices[0].Message.Content, nil
}

// New - new AI provider client. An empty model falls back to the
// default chat model.
func New(apiKey, model string) AI {
	if model == "" {
		model = defaultModel
	}
	return &openAI{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}
