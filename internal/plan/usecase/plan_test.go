package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"smart-day-planner/internal/model"
	"smart-day-planner/internal/plan"
	"smart-day-planner/internal/schedule"
	"smart-day-planner/pkg/huggingface"
)

func TestPlan(t *testing.T) {
	ctx := context.Background()

	t.Run("Classifier not loaded", func(t *testing.T) {
		uc := New(&mockLogger{}, nil, &mockLLM{}, schedule.New())

		_, err := uc.Plan(ctx, plan.PlanInput{Text: "Lunch at 12"})
		if !errors.Is(err, plan.ErrClassifierUnavailable) {
			t.Fatalf("expected ErrClassifierUnavailable, got %v", err)
		}
	})

	t.Run("Classifier failure surfaces", func(t *testing.T) {
		classifier := &mockClassifier{err: errors.New("model is loading")}
		uc := New(&mockLogger{}, classifier, &mockLLM{}, schedule.New())

		_, err := uc.Plan(ctx, plan.PlanInput{Text: "Lunch at 12"})
		if !errors.Is(err, plan.ErrClassifyFailed) {
			t.Fatalf("expected ErrClassifyFailed, got %v", err)
		}
	})

	t.Run("Positive and calm is balanced", func(t *testing.T) {
		classifier := &mockClassifier{result: huggingface.Result{Label: model.SentimentPositive, Score: 0.95}}
		uc := New(&mockLogger{}, classifier, &mockLLM{reply: "[]"}, schedule.New())

		out, err := uc.Plan(ctx, plan.PlanInput{Text: "Lunch at 12 to 1, Call mom at 3"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Emotion != model.EmotionBalanced {
			t.Errorf("expected Balanced, got %s", out.Emotion)
		}
		if out.Hectic {
			t.Errorf("two tasks should not be hectic")
		}
		if len(out.Tasks) != 2 {
			t.Errorf("expected 2 tasks, got %d", len(out.Tasks))
		}
		if out.Sentiment.Label != model.SentimentPositive || out.Sentiment.Score != 0.95 {
			t.Errorf("sentiment not carried through: %+v", out.Sentiment)
		}
	})

	t.Run("Negative sentiment forces stressed with zero tasks", func(t *testing.T) {
		classifier := &mockClassifier{result: huggingface.Result{Label: model.SentimentNegative, Score: 0.88}}
		llm := &mockLLM{reply: "[]"}
		uc := New(&mockLogger{}, classifier, llm, schedule.New())

		out, err := uc.Plan(ctx, plan.PlanInput{Text: "everything went wrong today"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Emotion != model.EmotionStressed {
			t.Errorf("expected Stressed, got %s", out.Emotion)
		}
		if len(out.Tasks) != 0 {
			t.Errorf("expected no tasks, got %d", len(out.Tasks))
		}
		if llm.calls != 0 {
			t.Errorf("no tasks must mean no LLM call, got %d calls", llm.calls)
		}
	})

	t.Run("Eight tasks force stressed regardless of sentiment", func(t *testing.T) {
		classifier := &mockClassifier{result: huggingface.Result{Label: model.SentimentPositive, Score: 0.99}}
		uc := New(&mockLogger{}, classifier, &mockLLM{reply: "[]"}, schedule.New())

		text := strings.TrimSuffix(strings.Repeat("errand at 9, ", 8), ", ")
		out, err := uc.Plan(ctx, plan.PlanInput{Text: text})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Tasks) != 8 {
			t.Fatalf("expected 8 tasks, got %d", len(out.Tasks))
		}
		if !out.Hectic {
			t.Errorf("8 tasks should be hectic")
		}
		if out.Emotion != model.EmotionStressed {
			t.Errorf("expected Stressed, got %s", out.Emotion)
		}
	})

	t.Run("Classifier sees at most 500 runes", func(t *testing.T) {
		classifier := &mockClassifier{result: huggingface.Result{Label: model.SentimentPositive, Score: 0.9}}
		uc := New(&mockLogger{}, classifier, &mockLLM{reply: "[]"}, schedule.New())

		longText := strings.Repeat("é", 800)
		if _, err := uc.Plan(ctx, plan.PlanInput{Text: longText}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := utf8.RuneCountInString(classifier.spans[0]); got != 500 {
			t.Errorf("expected 500-rune span, got %d runes", got)
		}
	})

	t.Run("Identical spans hit the cache", func(t *testing.T) {
		classifier := &mockClassifier{result: huggingface.Result{Label: model.SentimentPositive, Score: 0.9}}
		uc := New(&mockLogger{}, classifier, &mockLLM{reply: "[]"}, schedule.New())

		for i := 0; i < 3; i++ {
			if _, err := uc.Plan(ctx, plan.PlanInput{Text: "quiet day, tea at 4"}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if classifier.calls != 1 {
			t.Errorf("expected exactly 1 classifier call, got %d", classifier.calls)
		}
	})
}

func TestTruncateRunes(t *testing.T) {
	if got := truncateRunes("hello", 10); got != "hello" {
		t.Errorf("short input must stay intact, got %q", got)
	}
	if got := truncateRunes("héllo wörld", 5); got != "héllo" {
		t.Errorf("expected %q, got %q", "héllo", got)
	}
}
