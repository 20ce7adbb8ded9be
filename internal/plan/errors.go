package plan

import "errors"

var (
	// ErrClassifierUnavailable means the sentiment capability never loaded at
	// startup. There is no degraded-mode sentiment, so the route refuses traffic.
	ErrClassifierUnavailable = errors.New("sentiment classifier not loaded")

	// ErrClassifyFailed means the loaded classifier failed for this request.
	ErrClassifyFailed = errors.New("sentiment classification failed")
)
