package usecase

import (
	"context"
	"fmt"

	"smart-day-planner/internal/model"
	"smart-day-planner/internal/plan"
)

// Plan runs the linear pipeline: classify → extract tasks → derive emotion →
// generate suggestions. No state survives the call.
func (uc *implUseCase) Plan(ctx context.Context, input plan.PlanInput) (plan.PlanOutput, error) {
	if uc.classifier == nil {
		return plan.PlanOutput{}, plan.ErrClassifierUnavailable
	}

	sentiment, err := uc.classifySpan(ctx, truncateRunes(input.Text, maxClassifyRunes))
	if err != nil {
		uc.l.Errorf(ctx, "plan.usecase.Plan: classification failed: %v", err)
		return plan.PlanOutput{}, fmt.Errorf("%w: %v", plan.ErrClassifyFailed, err)
	}

	tasks := uc.parser.BuildTasks(input.Text)

	hectic := len(tasks) >= hecticThreshold
	emotion := model.EmotionBalanced
	if sentiment.Label == model.SentimentNegative || hectic {
		emotion = model.EmotionStressed
	}

	suggestions := uc.generateSuggestions(ctx, tasks, emotion)

	uc.l.Infof(ctx, "plan.usecase.Plan: sentiment=%s score=%.3f tasks=%d emotion=%s suggestions=%d",
		sentiment.Label, sentiment.Score, len(tasks), emotion, len(suggestions))

	return plan.PlanOutput{
		Sentiment:   sentiment,
		Emotion:     emotion,
		Hectic:      hectic,
		Tasks:       tasks,
		Suggestions: suggestions,
	}, nil
}

// classifySpan scores a span, consulting the result cache first.
func (uc *implUseCase) classifySpan(ctx context.Context, span string) (model.SentimentResult, error) {
	if cached, ok := uc.sentiCache.Get(span); ok {
		return cached, nil
	}

	res, err := uc.classifier.Classify(ctx, span)
	if err != nil {
		return model.SentimentResult{}, err
	}

	sentiment := model.SentimentResult{Label: res.Label, Score: res.Score}
	uc.sentiCache.Add(span, sentiment)
	return sentiment, nil
}

// truncateRunes cuts s to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
