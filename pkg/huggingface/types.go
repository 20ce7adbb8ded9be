package huggingface

// Result is the winning label for a classified span.
type Result struct {
	Label string  // e.g. "POSITIVE" or "NEGATIVE"
	Score float64 // confidence in [0,1]
}

// classifyRequest is the request body for the Inference API.
type classifyRequest struct {
	Inputs string `json:"inputs"`
}

// classification is one label/score pair in an Inference API response.
// Text-classification models answer with one row of candidates per input:
// [[{"label":"POSITIVE","score":0.99},{"label":"NEGATIVE","score":0.01}]]
type classification struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// errorResponse is the error body returned by the Inference API.
type errorResponse struct {
	Error string `json:"error"`
}
