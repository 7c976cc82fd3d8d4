package schedule

import "github.com/rpggio/bizdesk/internal/filter"

// Schedule tabs.
const (
	TabUpcoming  = "upcoming"
	TabCompleted = "completed"
	TabCalendar  = "calendar"
)

// FilterSpec narrows tasks by status, or by day in the calendar tab.
// Tasks have no free-text search.
var FilterSpec = filter.Spec[Task]{
	Noun:       "tasks",
	Hint:       "Try a different filter or add a new task.",
	DefaultTab: TabUpcoming,
	Tabs: []filter.Tab[Task]{
		{Name: TabUpcoming, Accept: func(t Task, _ filter.Query) bool { return t.Status == StatusScheduled }},
		{Name: TabCompleted, Accept: func(t Task, _ filter.Query) bool { return t.Status == StatusCompleted }},
		{Name: filter.TabAll},
		{Name: TabCalendar, Accept: func(t Task, q filter.Query) bool {
			return !q.Day.IsZero() && SameDay(t.Start, q.Day)
		}},
	},
}
