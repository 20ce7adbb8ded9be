package http

// Error bodies are part of the public API contract.
const (
	ErrMsgNoText         = "No text provided"
	ErrMsgModelNotLoaded = "Sentiment model not loaded"
)

// LivenessMessage is returned by GET / regardless of capability state.
const LivenessMessage = "Smart Day Planner API is running"

// The envelope message is picked by the hectic flag alone.
const (
	MessageHectic   = "Day looks hectic. I've suggested some breaks below."
	MessageBalanced = "Your plan seems balanced. Here are some gentle wellness suggestions."
)
