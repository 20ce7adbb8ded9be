package schedule_test

import (
	"reflect"
	"testing"

	"smart-day-planner/internal/schedule"
)

func TestExtractTimes(t *testing.T) {
	parser := schedule.New()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "Empty input",
			text: "",
			want: nil,
		},
		{
			name: "No digits",
			text: "walk the dog then relax",
			want: nil,
		},
		{
			name: "Plain hour",
			text: "call mom at 3",
			want: []string{"3"},
		},
		{
			name: "Hour with minutes",
			text: "standup at 9:15 sharp",
			want: []string{"9:15 "},
		},
		{
			name: "Meridiem suffix uppercase",
			text: "gym at 6 PM",
			want: []string{"6 PM"},
		},
		{
			name: "Range keeps trailing whitespace of first match",
			text: "lunch from 12 to 1",
			want: []string{"12 ", "1"},
		},
		{
			name: "Semantically invalid time still matches",
			text: "alarm at 99:99",
			want: []string{"99:99"},
		},
		{
			name: "Order of appearance, no dedup",
			text: "3 then 3 then 3pm",
			want: []string{"3 ", "3 ", "3pm"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.ExtractTimes(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractTimes(%q) = %#v, want %#v", tt.text, got, tt.want)
			}
		})
	}
}

func TestBuildTasks(t *testing.T) {
	parser := schedule.New()

	t.Run("No digit-like substrings yields no tasks", func(t *testing.T) {
		tasks := parser.BuildTasks("Slept in, walked the dog; felt great today.")
		if len(tasks) != 0 {
			t.Fatalf("expected no tasks, got %d", len(tasks))
		}
	})

	t.Run("Two sentences with times", func(t *testing.T) {
		tasks := parser.BuildTasks("Lunch at 12 to 1, Call mom at 3")
		if len(tasks) != 2 {
			t.Fatalf("expected 2 tasks, got %d", len(tasks))
		}

		if tasks[0].Title != "Lunch at" {
			t.Errorf("task 0 title = %q, want %q", tasks[0].Title, "Lunch at")
		}
		if got := deref(tasks[0].Start); got != "12 " {
			t.Errorf("task 0 start = %q, want %q", got, "12 ")
		}
		if got := deref(tasks[0].End); got != "1" {
			t.Errorf("task 0 end = %q, want %q", got, "1")
		}

		if tasks[1].Title != "Call mom at" {
			t.Errorf("task 1 title = %q, want %q", tasks[1].Title, "Call mom at")
		}
		if got := deref(tasks[1].Start); got != "3" {
			t.Errorf("task 1 start = %q, want %q", got, "3")
		}
		if tasks[1].End != nil {
			t.Errorf("task 1 end = %q, want nil", *tasks[1].End)
		}
	})

	t.Run("Prose sentences are dropped", func(t *testing.T) {
		tasks := parser.BuildTasks("Had a rough morning. Meeting at 10. Then felt better.")
		if len(tasks) != 1 {
			t.Fatalf("expected 1 task, got %d", len(tasks))
		}
		if tasks[0].Title != "Meeting at" {
			t.Errorf("title = %q, want %q", tasks[0].Title, "Meeting at")
		}
	})

	t.Run("Bare time expression gets default title", func(t *testing.T) {
		tasks := parser.BuildTasks("7:30")
		if len(tasks) != 1 {
			t.Fatalf("expected 1 task, got %d", len(tasks))
		}
		if tasks[0].Title != schedule.DefaultTitle {
			t.Errorf("title = %q, want %q", tasks[0].Title, schedule.DefaultTitle)
		}
		if got := deref(tasks[0].Start); got != "7:30" {
			t.Errorf("start = %q, want %q", got, "7:30")
		}
	})

	t.Run("More than two times keeps only first two", func(t *testing.T) {
		tasks := parser.BuildTasks("Errands at 9 then 10 then 11")
		if len(tasks) != 1 {
			t.Fatalf("expected 1 task, got %d", len(tasks))
		}
		if got := deref(tasks[0].Start); got != "9 " {
			t.Errorf("start = %q, want %q", got, "9 ")
		}
		if got := deref(tasks[0].End); got != "10 " {
			t.Errorf("end = %q, want %q", got, "10 ")
		}
	})

	t.Run("First letter upper-cased", func(t *testing.T) {
		tasks := parser.BuildTasks("lunch at 12")
		if len(tasks) != 1 {
			t.Fatalf("expected 1 task, got %d", len(tasks))
		}
		if tasks[0].Title != "Lunch at" {
			t.Errorf("title = %q, want %q", tasks[0].Title, "Lunch at")
		}
	})

	t.Run("Source order preserved", func(t *testing.T) {
		tasks := parser.BuildTasks("Review PR at 4; Standup at 9")
		if len(tasks) != 2 {
			t.Fatalf("expected 2 tasks, got %d", len(tasks))
		}
		if tasks[0].Title != "Review PR at" || tasks[1].Title != "Standup at" {
			t.Errorf("unexpected order: %q, %q", tasks[0].Title, tasks[1].Title)
		}
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
