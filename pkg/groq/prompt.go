package groq

import "fmt"

// SuggestionPromptTemplate asks the model for wellness breaks that fit between
// scheduled tasks. The model is told to answer with a bare JSON array; the
// caller still defensively extracts the first bracketed span before decoding.
const SuggestionPromptTemplate = `You are a mindful productivity assistant.
The user has this schedule:
%s

The user's emotional state is: %s.

Generate 3 short, *time-specific* wellness or rest activities that fit between tasks.
Each suggestion must include:
- "title": short label (e.g., "Tea break", "Stretch", "Quick walk")
- "start": start time (HH:MM 24h or 12h with am/pm)
- "end": end time (HH:MM 24h or 12h with am/pm)

Respond only with valid JSON - no extra text, no explanations.

Example:
[
  { "title": "Stretch break", "start": "10:45", "end": "10:55" },
  { "title": "Mindful tea", "start": "15:10", "end": "15:25" }
]`

// BuildSuggestionPrompt builds the full prompt for wellness suggestions.
// scheduleText is one "- Title (start - end)" line per task.
func BuildSuggestionPrompt(scheduleText, emotion string) string {
	return fmt.Sprintf(SuggestionPromptTemplate, scheduleText, emotion)
}
