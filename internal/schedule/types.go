package schedule

import "smart-day-planner/internal/model"

// Parser turns free-form day descriptions into structured tasks.
// The handler only depends on this interface so the regex heuristic below can
// be swapped for a real time-expression grammar without touching delivery code.
type Parser interface {
	// ExtractTimes returns every clock-time-looking substring in order of
	// appearance. Matches are not validated ("99:99" matches) or deduplicated.
	ExtractTimes(text string) []string

	// BuildTasks splits raw text into sentences and derives a task from each
	// sentence that mentions at least one time expression.
	BuildTasks(raw string) []model.Task
}

// DefaultTitle is used when stripping digits leaves an empty task title.
const DefaultTitle = "Task"
