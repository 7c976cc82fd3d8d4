package schedule

import "time"

// Kind names the task store.
const Kind = "task"

// Status is the completion state of a task.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
)

// Priority ranks a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var (
	// Categories are the suggested task categories.
	Categories = []string{"Meeting", "Call", "Task", "Deadline", "Event"}
	// Assignees are the suggested owners.
	Assignees = []string{"John Doe", "Jane Smith", "Marketing Team", "Sales Team", "Development Team", "Team"}
)

// Task is a scheduled piece of work. End is never before Start.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Status      Status    `json:"status"`
	Priority    Priority  `json:"priority"`
	Category    string    `json:"category"`
	AssignedTo  string    `json:"assignedTo"`
	Location    string    `json:"location,omitempty"`
}

func (t Task) Identity() string { return t.ID }

func (t Task) WithIdentity(id string) Task {
	t.ID = id
	return t
}

func (t Task) Clone(nameSuffix string) Task {
	t.Title += nameSuffix
	return t
}

// Complete returns t marked completed.
func (t Task) Complete() Task {
	t.Status = StatusCompleted
	return t
}

// SameDay reports whether a and b fall on the same calendar day in b's
// location.
func SameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DueOn returns the scheduled tasks starting on day, in list order.
func DueOn(tasks []Task, day time.Time) []Task {
	out := []Task{}
	for _, t := range tasks {
		if t.Status == StatusScheduled && SameDay(t.Start, day) {
			out = append(out, t)
		}
	}
	return out
}
