package chatbot

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/repwise/repwise/internal/testhelpers"
	"github.com/repwise/repwise/internal/tools"
)

func TestToolParams(t *testing.T) {
	specs := []tools.Spec{
		{
			Name:        tools.NameListExercises,
			Description: "list",
			Parameters:  map[string]any{"type": "object"},
		},
		{
			Name:        tools.NameLogWorkout,
			Description: "log",
			Parameters:  map[string]any{"type": "object"},
		},
	}

	params := toolParams(specs)
	if len(params) != len(specs) {
		t.Fatalf("got %d tool params, want %d", len(params), len(specs))
	}
	for i, p := range params {
		if p.OfFunction == nil {
			t.Fatalf("tool param %d is not a function declaration", i)
		}
		if got := p.OfFunction.Function.Name; got != string(specs[i].Name) {
			t.Errorf("tool param %d name = %q, want %q", i, got, specs[i].Name)
		}
	}
}

func TestRunToolCall(t *testing.T) {
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	registry := tools.NewRegistry(logger)
	err := registry.Register(
		tools.Spec{Name: tools.NameListExercises, Description: "x", Parameters: map[string]any{"type": "object"}},
		func(_ context.Context, _ json.RawMessage) (any, error) {
			return map[string]int{"count": 3}, nil
		})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	service := &Service{registry: registry, logger: logger}

	msg := service.runToolCall(t.Context(), "call_1", string(tools.NameListExercises), "{}")
	if msg.OfTool == nil {
		t.Fatal("expected a tool message")
	}
	if msg.OfTool.ToolCallID != "call_1" {
		t.Errorf("tool call ID = %q, want call_1", msg.OfTool.ToolCallID)
	}

	// Unknown tools are reported back to the model as error content,
	// never as a dropped message.
	msg = service.runToolCall(t.Context(), "call_2", "fetchHoroscope", "{}")
	if msg.OfTool == nil {
		t.Fatal("expected a tool message for the failed call")
	}
	if content := msg.OfTool.Content.OfString.Value; !strings.Contains(content, "error") {
		t.Errorf("error content = %q, want an error payload", content)
	}
}
