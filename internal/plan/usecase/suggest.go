package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"smart-day-planner/internal/model"
	"smart-day-planner/pkg/groq"
)

// jsonArrayExpr locates the first bracketed span in free-text LLM output.
// Greedy multiline matching: first [ to last ].
var jsonArrayExpr = regexp.MustCompile(`(?s)\[.*\]`)

// generateSuggestions asks the LLM for wellness breaks that fit the schedule.
// Every failure mode collapses to an empty list: an unreachable model, a reply
// without a JSON array, or undecodable JSON must never fail the request.
func (uc *implUseCase) generateSuggestions(ctx context.Context, tasks []model.Task, emotion model.Emotion) []model.Suggestion {
	if len(tasks) == 0 || uc.llm == nil {
		return []model.Suggestion{}
	}

	prompt := groq.BuildSuggestionPrompt(formatSchedule(tasks), string(emotion))

	resp, err := uc.llm.ChatCompletion(ctx, &groq.Request{
		Messages:    []groq.Message{{Role: "user", Content: prompt}},
		Temperature: suggestionTemperature,
	})
	if err != nil {
		uc.l.Warnf(ctx, "plan.usecase.generateSuggestions: LLM call failed: %v", err)
		return []model.Suggestion{}
	}

	raw := strings.TrimSpace(resp.Text())

	span := jsonArrayExpr.FindString(raw)
	if span == "" {
		uc.l.Warnf(ctx, "plan.usecase.generateSuggestions: no JSON array in LLM output: %q", raw)
		return []model.Suggestion{}
	}

	var suggestions []model.Suggestion
	if err := json.Unmarshal([]byte(span), &suggestions); err != nil {
		uc.l.Warnf(ctx, "plan.usecase.generateSuggestions: failed to decode LLM JSON: %v", err)
		return []model.Suggestion{}
	}

	return suggestions
}

// formatSchedule renders tasks as "- Title (start - end)" lines for the prompt.
func formatSchedule(tasks []model.Task) string {
	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		lines = append(lines, fmt.Sprintf("- %s (%s - %s)", t.Title, strOrNone(t.Start), strOrNone(t.End)))
	}
	return strings.Join(lines, "\n")
}

func strOrNone(s *string) string {
	if s == nil {
		return "none"
	}
	return *s
}
