package models

// Section names a top-level heading in the todo file.
type Section string

const (
	SectionToday   Section = "today"
	SectionIdeas   Section = "ideas"
	SectionBacklog Section = "backlog"
)

func (s Section) IsValid() bool {
	return s == SectionToday || s == SectionIdeas || s == SectionBacklog
}

// Sections lists the headings in file order.
var Sections = []Section{SectionToday, SectionIdeas, SectionBacklog}

// Task is one markdown checkbox line, possibly with nested subtasks.
type Task struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	IsIdea      bool    `json:"is_idea"`
	IsCompleted bool    `json:"is_completed"`
	Category    string  `json:"category,omitempty"`
	Effort      string  `json:"effort,omitempty"`
	Friction    int     `json:"friction,omitempty"`
	DueDate     string  `json:"due_date,omitempty"`
	CompletedAt string  `json:"completed_at,omitempty"`
	Subtasks    []*Task `json:"subtasks"`
	ParentID    string  `json:"parent_id,omitempty"`
}

// TaskFile maps section name to its top-level tasks.
type TaskFile map[Section][]*Task

// NewTaskFile returns an empty file with every section present, so JSON
// responses always carry all three keys.
func NewTaskFile() TaskFile {
	tf := make(TaskFile, len(Sections))
	for _, s := range Sections {
		tf[s] = []*Task{}
	}
	return tf
}
