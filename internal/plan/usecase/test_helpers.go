package usecase

import (
	"context"

	"smart-day-planner/pkg/groq"
	"smart-day-planner/pkg/huggingface"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// Mock sentiment classifier
type mockClassifier struct {
	result huggingface.Result
	err    error
	calls  int
	spans  []string
}

func (m *mockClassifier) Classify(ctx context.Context, text string) (huggingface.Result, error) {
	m.calls++
	m.spans = append(m.spans, text)
	return m.result, m.err
}

func (m *mockClassifier) Model() string { return "mock-sentiment" }

// Mock LLM client
type mockLLM struct {
	reply string
	err   error
	calls int
}

func (m *mockLLM) ChatCompletion(ctx context.Context, req *groq.Request) (*groq.Response, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return &groq.Response{
		Choices: []groq.Choice{
			{Message: groq.Message{Role: "assistant", Content: m.reply}},
		},
	}, nil
}

func (m *mockLLM) Model() string { return "mock-llm" }
