package plan

import "smart-day-planner/internal/model"

// PlanInput is the raw free-form description of the user's day.
type PlanInput struct {
	Text string
}

// PlanOutput is the combined result of one planning pass.
type PlanOutput struct {
	Sentiment   model.SentimentResult
	Emotion     model.Emotion
	Hectic      bool
	Tasks       []model.Task
	Suggestions []model.Suggestion
}
