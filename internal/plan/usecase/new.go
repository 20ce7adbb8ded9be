package usecase

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"smart-day-planner/internal/model"
	"smart-day-planner/internal/plan"
	"smart-day-planner/internal/schedule"
	"smart-day-planner/pkg/groq"
	"smart-day-planner/pkg/huggingface"
	"smart-day-planner/pkg/log"
)

const (
	// maxClassifyRunes bounds classifier latency/cost; only the head of the
	// input is scored, task extraction still sees the full text.
	maxClassifyRunes = 500

	// hecticThreshold is the task count at which a day counts as hectic.
	hecticThreshold = 8

	// suggestionTemperature keeps LLM suggestion output near-deterministic.
	suggestionTemperature = 0.4

	// sentimentCacheSize bounds the classification result cache.
	sentimentCacheSize = 512
)

type implUseCase struct {
	l          log.Logger
	classifier huggingface.IClassifier // nil when the capability failed to load
	llm        groq.IGroq              // nil when no credential was configured
	parser     schedule.Parser

	// Identical spans always classify identically, so results are cached.
	sentiCache *lru.Cache[string, model.SentimentResult]
}

// New creates the plan use case. classifier and llm may be nil: a nil
// classifier makes every Plan call fail with ErrClassifierUnavailable, a nil
// llm degrades suggestions to an empty list.
func New(l log.Logger, classifier huggingface.IClassifier, llm groq.IGroq, parser schedule.Parser) plan.UseCase {
	cache, _ := lru.New[string, model.SentimentResult](sentimentCacheSize)

	return &implUseCase{
		l:          l,
		classifier: classifier,
		llm:        llm,
		parser:     parser,
		sentiCache: cache,
	}
}
