package model

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Sentiment labels returned by the pretrained classifier.
const (
	SentimentPositive = "POSITIVE"
	SentimentNegative = "NEGATIVE"
)

// SentimentResult is the classifier verdict for a whole text span.
type SentimentResult struct {
	Label string  // POSITIVE or NEGATIVE
	Score float64 // confidence in [0,1]
}

// Emotion is the derived emotional state of the user's day.
type Emotion string

const (
	EmotionStressed Emotion = "Stressed"
	EmotionBalanced Emotion = "Balanced"
)

// Task is a label plus time window extracted from the user's free text.
// Start and End carry the raw matched time expressions, unnormalized and
// unvalidated. End is nil when the source fragment held fewer than two
// time expressions.
type Task struct {
	Title string  `json:"title"`
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// Suggestion is an LLM-proposed wellness break. Same shape as Task but all
// fields come straight from the model output; time windows are never checked
// against existing tasks.
type Suggestion struct {
	Title string `json:"title"`
	Start string `json:"start"`
	End   string `json:"end"`
}
