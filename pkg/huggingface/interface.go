package huggingface

import "context"

// IClassifier defines the interface for the hosted sentiment classifier.
// Implementations are safe for concurrent use.
type IClassifier interface {
	// Classify scores a single text span and returns the top-scoring label.
	Classify(ctx context.Context, text string) (Result, error)

	// Model returns the pretrained model identifier being used.
	Model() string
}
