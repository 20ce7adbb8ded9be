package http

import (
	"smart-day-planner/internal/model"
	"smart-day-planner/internal/plan"
)

// planResp is the combined response envelope. Field names are part of the
// public API contract.
type planResp struct {
	Sentiment       string             `json:"sentiment"`
	Score           float64            `json:"score"`
	DetectedEmotion string             `json:"detectedEmotion"`
	TaskCount       int                `json:"taskCount"`
	Tasks           []model.Task       `json:"tasks"`
	Suggestions     []model.Suggestion `json:"suggestions"`
	Message         string             `json:"message"`
}

func (h *handler) newPlanResp(out plan.PlanOutput) planResp {
	tasks := out.Tasks
	if tasks == nil {
		tasks = []model.Task{}
	}
	suggestions := out.Suggestions
	if suggestions == nil {
		suggestions = []model.Suggestion{}
	}

	message := MessageBalanced
	if out.Hectic {
		message = MessageHectic
	}

	return planResp{
		Sentiment:       out.Sentiment.Label,
		Score:           out.Sentiment.Score,
		DetectedEmotion: string(out.Emotion),
		TaskCount:       len(tasks),
		Tasks:           tasks,
		Suggestions:     suggestions,
		Message:         message,
	}
}
