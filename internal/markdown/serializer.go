package markdown

import (
	"fmt"
	"strings"

	"github.com/questlog/questlog/internal/models"
)

// Serialize renders sections back to file content. Output round-trips
// through Parse.
func Serialize(tf models.TaskFile) string {
	var b strings.Builder
	for _, section := range models.Sections {
		fmt.Fprintf(&b, "# %s\n", section)
		for _, task := range tf[section] {
			writeTask(&b, task, 0)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func writeTask(b *strings.Builder, task *models.Task, indent int) {
	b.WriteString(strings.Repeat("  ", indent))
	if task.IsCompleted {
		b.WriteString("- [x] ")
	} else {
		b.WriteString("- [ ] ")
	}
	if task.IsIdea {
		b.WriteString("? ")
	}
	b.WriteString(task.Title)

	if task.Category != "" {
		fmt.Fprintf(b, " @%s", task.Category)
	}
	if task.Effort != "" {
		fmt.Fprintf(b, " !%s", task.Effort)
	}
	if task.Friction != 0 {
		fmt.Fprintf(b, " %%%d", task.Friction)
	}
	if task.DueDate != "" {
		fmt.Fprintf(b, " ^%s", task.DueDate)
	}
	if task.CompletedAt != "" {
		fmt.Fprintf(b, " {%s}", task.CompletedAt)
	}
	b.WriteString("\n")

	for _, sub := range task.Subtasks {
		writeTask(b, sub, indent+1)
	}
}
