package schedule

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"smart-day-planner/internal/model"
)

var (
	// 1-2 digits, optional :MM, optional am/pm suffix. The greedy \s* means a
	// match followed by whitespace but no suffix keeps that trailing
	// whitespace, which is carried through verbatim into task time windows.
	timeExpr = regexp.MustCompile(`(?i)\d{1,2}(?::\d{2})?\s*(?:am|pm)?`)

	// Sentence boundaries for task splitting.
	fragmentSep = regexp.MustCompile(`[.,;]`)

	// Everything from the first digit onward is dropped when deriving titles.
	titleCut = regexp.MustCompile(`(?s)\d.*$`)
)

// RegexParser is the heuristic Parser implementation. It has no locale
// awareness and no semantic validation of matched times.
type RegexParser struct{}

var _ Parser = (*RegexParser)(nil)

// New creates a RegexParser.
func New() *RegexParser {
	return &RegexParser{}
}

// ExtractTimes implements Parser.
func (p *RegexParser) ExtractTimes(text string) []string {
	return timeExpr.FindAllString(text, -1)
}

// BuildTasks implements Parser. Fragments without a time expression are
// treated as non-task prose and dropped. The first two time expressions become
// (start, end); any further matches in the same fragment are silently ignored.
func (p *RegexParser) BuildTasks(raw string) []model.Task {
	var tasks []model.Task

	for _, fragment := range fragmentSep.Split(raw, -1) {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}

		times := p.ExtractTimes(fragment)
		if len(times) == 0 {
			continue
		}

		task := model.Task{
			Title: deriveTitle(fragment),
			Start: &times[0],
		}
		if len(times) > 1 {
			task.End = &times[1]
		}
		tasks = append(tasks, task)
	}

	return tasks
}

// deriveTitle strips the time portion of a fragment and upper-cases the first
// rune. A fragment that is nothing but a time expression gets DefaultTitle.
func deriveTitle(fragment string) string {
	title := strings.TrimSpace(titleCut.ReplaceAllString(fragment, ""))
	if title == "" {
		return DefaultTitle
	}

	r, size := utf8.DecodeRuneInString(title)
	return string(unicode.ToUpper(r)) + title[size:]
}
