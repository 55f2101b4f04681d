// Package markdown reads and writes the structured todo file. The grammar is
// a line-oriented subset of markdown:
//
//	# today
//	- [ ] write report @work !1h %2 ^2026-09-01
//	  - [x] gather numbers {2026-08-27T14:02:11}
//	- [ ] ? maybe automate this
//
// Checkbox state, an optional "?" idea marker, and inline @category, !effort,
// %friction, ^due-date and {completed-at} annotations. Subtasks nest by two
// spaces of indentation.
package markdown

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/questlog/questlog/internal/models"
)

var (
	categoryRe  = regexp.MustCompile(`@(\w+)`)
	effortRe    = regexp.MustCompile(`!(\d+[mhd])`)
	frictionRe  = regexp.MustCompile(`%(\d)`)
	dueRe       = regexp.MustCompile(`\^(\d{4}-\d{2}-\d{2})`)
	completedRe = regexp.MustCompile(`\{([^}]+)\}`)
)

// Parse converts file content into sections of tasks. Tasks under unknown
// section headers are dropped, matching the fixed today/ideas/backlog layout.
func Parse(content string) models.TaskFile {
	tf := models.NewTaskFile()

	var section models.Section
	var stack []*models.Task

	for lineNum, raw := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(raw)

		if strings.HasPrefix(trimmed, "# ") {
			section = models.Section(strings.ToLower(trimmed[2:]))
			stack = stack[:0]
			continue
		}
		if !section.IsValid() || !strings.HasPrefix(trimmed, "- [") {
			continue
		}

		task, indent := parseLine(raw, lineNum)
		if task == nil {
			continue
		}

		for len(stack) > indent {
			stack = stack[:len(stack)-1]
		}

		if indent > 0 && len(stack) > 0 {
			parent := stack[len(stack)-1]
			task.ParentID = parent.ID
			parent.Subtasks = append(parent.Subtasks, task)
		} else {
			tf[section] = append(tf[section], task)
		}

		if indent == len(stack) {
			stack = append(stack, task)
		}
	}

	return tf
}

// parseLine parses one checkbox line, returning the task and its indent
// level (two spaces per level).
func parseLine(raw string, lineNum int) (*models.Task, int) {
	indent := (len(raw) - len(strings.TrimLeft(raw, " "))) / 2
	line := strings.TrimSpace(raw)

	if len(line) < 5 || !strings.HasPrefix(line, "- [") {
		return nil, 0
	}

	task := &models.Task{
		ID:          fmt.Sprintf("task_%d", lineNum),
		IsCompleted: line[3] == 'x',
		Subtasks:    []*models.Task{},
	}

	content := strings.TrimSpace(line[5:])
	if strings.HasPrefix(content, "?") {
		task.IsIdea = true
		content = strings.TrimSpace(content[1:])
	}

	if m := categoryRe.FindStringSubmatch(content); m != nil {
		task.Category = m[1]
	}
	if m := effortRe.FindStringSubmatch(content); m != nil {
		task.Effort = m[1]
	}
	if m := frictionRe.FindStringSubmatch(content); m != nil {
		task.Friction, _ = strconv.Atoi(m[1])
	}
	if m := dueRe.FindStringSubmatch(content); m != nil {
		task.DueDate = m[1]
	}
	if m := completedRe.FindStringSubmatch(content); m != nil {
		task.CompletedAt = m[1]
	}

	title := content
	for _, re := range []*regexp.Regexp{categoryRe, effortRe, frictionRe, dueRe, completedRe} {
		title = re.ReplaceAllString(title, "")
	}
	task.Title = strings.Join(strings.Fields(title), " ")

	return task, indent
}

// ParseEffort converts an effort annotation ("45m", "2h", "1d") to minutes.
// A day is eight working hours. Missing or malformed values default to 30.
func ParseEffort(effort string) int {
	if len(effort) < 2 {
		return 30
	}
	n, err := strconv.Atoi(effort[:len(effort)-1])
	if err != nil {
		return 30
	}
	switch effort[len(effort)-1] {
	case 'm':
		return n
	case 'h':
		return n * 60
	case 'd':
		return n * 8 * 60
	}
	return 30
}
