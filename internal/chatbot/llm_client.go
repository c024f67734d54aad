package chatbot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"

	"github.com/repwise/repwise/internal/tools"
)

// llmClient wraps the OpenAI chat completion API with the tool schemas
// exported by the registry.
type llmClient struct {
	client openai.Client
	model  shared.ChatModel
	tools  []openai.ChatCompletionToolUnionParam
	logger *slog.Logger
}

func newLLMClient(apiKey string, specs []tools.Spec, logger *slog.Logger) *llmClient {
	return &llmClient{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  openai.ChatModelGPT4o,
		tools:  toolParams(specs),
		logger: logger,
	}
}

// toolParams converts registry specs into OpenAI function declarations.
func toolParams(specs []tools.Spec) []openai.ChatCompletionToolUnionParam {
	params := make([]openai.ChatCompletionToolUnionParam, 0, len(specs))
	for _, spec := range specs {
		params = append(params, openai.ChatCompletionFunctionTool(shared.FunctionDefinitionParam{
			Name:        string(spec.Name),
			Description: openai.String(spec.Description),
			Parameters:  shared.FunctionParameters(spec.Parameters),
		}))
	}
	return params
}

// complete runs one chat completion round.
func (c *llmClient) complete(
	ctx context.Context,
	messages []openai.ChatCompletionMessageParamUnion,
) (openai.ChatCompletionMessage, error) {
	c.logger.LogAttrs(ctx, slog.LevelDebug, "sending chat completion request",
		slog.String("model", c.model),
		slog.Int("messages", len(messages)))

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    c.model,
		Messages: messages,
		Tools:    c.tools,
	})
	if err != nil {
		return openai.ChatCompletionMessage{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return openai.ChatCompletionMessage{}, fmt.Errorf("chat completion returned no choices")
	}

	c.logger.LogAttrs(ctx, slog.LevelDebug, "chat completion finished",
		slog.Int64("prompt_tokens", completion.Usage.PromptTokens),
		slog.Int64("completion_tokens", completion.Usage.CompletionTokens))

	return completion.Choices[0].Message, nil
}
