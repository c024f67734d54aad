// Package chatbot answers free-form training questions by letting an LLM
// call the engine tools through the registry.
package chatbot

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/openai/openai-go/v3"

	"github.com/repwise/repwise/internal/errors"
	"github.com/repwise/repwise/internal/tools"
)

const systemPrompt = `You are a knowledgeable strength training coach.
Use the available tools to generate workout plans and programs, analyze training volume
and frequency, give progressive overload advice, inspect progression trends, check deload
status, browse the exercise catalog, and read or log workout history.
Ground every answer in tool results instead of guessing. Be concise and concrete:
give numbers (weights, reps, sets) rather than generalities. When history is missing,
say so and suggest what to log.`

// maxToolRounds bounds the tool-calling loop so a confused model cannot
// spin forever.
const maxToolRounds = 8

// Service runs the conversation loop between the model and the tools.
type Service struct {
	llm      *llmClient
	registry *tools.Registry
	logger   *slog.Logger
}

func NewService(apiKey string, registry *tools.Registry, logger *slog.Logger) *Service {
	return &Service{
		llm:      newLLMClient(apiKey, registry.Specs(), logger),
		registry: registry,
		logger:   logger,
	}
}

// Chat answers one user message, running as many tool rounds as the model
// requests up to maxToolRounds.
func (s *Service) Chat(ctx context.Context, message string) (string, error) {
	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(systemPrompt),
		openai.UserMessage(message),
	}

	for round := 0; round < maxToolRounds; round++ {
		reply, err := s.llm.complete(ctx, messages)
		if err != nil {
			return "", fmt.Errorf("complete round %d: %w", round, err)
		}

		if len(reply.ToolCalls) == 0 {
			return reply.Content, nil
		}

		messages = append(messages, reply.ToParam())
		for _, call := range reply.ToolCalls {
			messages = append(messages, s.runToolCall(ctx, call.ID, call.Function.Name, call.Function.Arguments))
		}
	}

	return "", fmt.Errorf("no answer after %d tool rounds", maxToolRounds)
}

// runToolCall executes one requested tool call and renders the result as
// a tool message. Tool failures are fed back to the model as content so
// it can correct itself instead of aborting the conversation.
func (s *Service) runToolCall(
	ctx context.Context,
	callID string,
	name string,
	arguments string,
) openai.ChatCompletionMessageParamUnion {
	s.logger.LogAttrs(ctx, slog.LevelInfo, "model requested tool", slog.String("tool", name))

	result, err := s.registry.Execute(ctx, tools.Name(name), json.RawMessage(arguments))
	if err != nil {
		return openai.ToolMessage(toolErrorContent(err), callID)
	}

	payload, err := json.Marshal(result)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "tool result not serialisable",
			slog.String("tool", name), errors.SlogError(err))
		return openai.ToolMessage(toolErrorContent(err), callID)
	}
	return openai.ToolMessage(string(payload), callID)
}

func toolErrorContent(err error) string {
	payload, marshalErr := json.Marshal(map[string]string{"error": err.Error()})
	if marshalErr != nil {
		return `{"error": "tool execution failed"}`
	}
	return string(payload)
}
