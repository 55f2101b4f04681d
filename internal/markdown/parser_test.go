package markdown

import (
	"testing"

	"github.com/questlog/questlog/internal/models"
)

const sampleFile = `# today
- [ ] write report @work !1h %2 ^2026-09-01
  - [x] gather numbers {2026-08-27T14:02:11}
  - [ ] draft summary
- [x] stand-up @work !15m {2026-08-27T09:31:00}

# ideas
- [ ] ? automate deployment @infra

# backlog
- [ ] clean inbox !30m %1
`

func TestParse(t *testing.T) {
	tf := Parse(sampleFile)

	today := tf[models.SectionToday]
	if len(today) != 2 {
		t.Fatalf("today tasks = %d, want 2", len(today))
	}

	report := today[0]
	if report.Title != "write report" {
		t.Errorf("title = %q, want %q", report.Title, "write report")
	}
	if report.Category != "work" || report.Effort != "1h" || report.Friction != 2 {
		t.Errorf("metadata = %q/%q/%d, want work/1h/2", report.Category, report.Effort, report.Friction)
	}
	if report.DueDate != "2026-09-01" {
		t.Errorf("due = %q, want 2026-09-01", report.DueDate)
	}
	if len(report.Subtasks) != 2 {
		t.Fatalf("subtasks = %d, want 2", len(report.Subtasks))
	}
	sub := report.Subtasks[0]
	if !sub.IsCompleted || sub.CompletedAt != "2026-08-27T14:02:11" {
		t.Errorf("subtask = completed %v at %q", sub.IsCompleted, sub.CompletedAt)
	}
	if sub.ParentID != report.ID {
		t.Errorf("parent id = %q, want %q", sub.ParentID, report.ID)
	}

	ideas := tf[models.SectionIdeas]
	if len(ideas) != 1 || !ideas[0].IsIdea {
		t.Fatalf("ideas = %v, want one idea task", ideas)
	}
	if ideas[0].Title != "automate deployment" {
		t.Errorf("idea title = %q", ideas[0].Title)
	}

	backlog := tf[models.SectionBacklog]
	if len(backlog) != 1 || backlog[0].Friction != 1 {
		t.Fatalf("backlog = %v, want one task with friction 1", backlog)
	}
}

func TestParseEmptyContent(t *testing.T) {
	tf := Parse("")
	for _, section := range models.Sections {
		if len(tf[section]) != 0 {
			t.Errorf("section %s not empty", section)
		}
	}
}

func TestParseUnknownSectionDropped(t *testing.T) {
	tf := Parse("# someday\n- [ ] lost task\n\n# today\n- [ ] kept task\n")
	if len(tf[models.SectionToday]) != 1 {
		t.Fatalf("today = %d, want 1", len(tf[models.SectionToday]))
	}
	total := 0
	for _, section := range models.Sections {
		total += len(tf[section])
	}
	if total != 1 {
		t.Errorf("total tasks = %d, want 1 (unknown section dropped)", total)
	}
}

func TestRoundTrip(t *testing.T) {
	first := Parse(sampleFile)
	serialized := Serialize(first)
	second := Parse(serialized)

	for _, section := range models.Sections {
		if len(first[section]) != len(second[section]) {
			t.Fatalf("section %s: %d vs %d tasks after round trip", section, len(first[section]), len(second[section]))
		}
		for i := range first[section] {
			a, b := first[section][i], second[section][i]
			if a.Title != b.Title || a.IsCompleted != b.IsCompleted || a.IsIdea != b.IsIdea {
				t.Errorf("task %s/%d changed: %+v vs %+v", section, i, a, b)
			}
			if a.Category != b.Category || a.Effort != b.Effort || a.Friction != b.Friction ||
				a.DueDate != b.DueDate || a.CompletedAt != b.CompletedAt {
				t.Errorf("task %s/%d metadata changed", section, i)
			}
			if len(a.Subtasks) != len(b.Subtasks) {
				t.Errorf("task %s/%d subtask count changed", section, i)
			}
		}
	}
}

func TestParseEffort(t *testing.T) {
	tests := []struct {
		effort string
		want   int
	}{
		{"30m", 30},
		{"5m", 5},
		{"1h", 60},
		{"2h", 120},
		{"1d", 480},
		{"2d", 960},
		{"", 30},
		{"x", 30},
		{"abc", 30},
	}

	for _, tt := range tests {
		t.Run(tt.effort, func(t *testing.T) {
			if got := ParseEffort(tt.effort); got != tt.want {
				t.Errorf("ParseEffort(%q) = %d, want %d", tt.effort, got, tt.want)
			}
		})
	}
}
