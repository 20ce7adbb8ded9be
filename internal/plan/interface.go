package plan

import "context"

// UseCase orchestrates the day-planning pipeline: sentiment classification,
// task extraction, emotion derivation and wellness suggestions.
type UseCase interface {
	Plan(ctx context.Context, input PlanInput) (PlanOutput, error)
}
