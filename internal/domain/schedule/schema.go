package schedule

import (
	"time"

	"github.com/rpggio/bizdesk/internal/form"
	"github.com/rpggio/bizdesk/internal/notify"
)

var (
	priorityOptions = []string{string(PriorityLow), string(PriorityMedium), string(PriorityHigh)}
	statusOptions   = []string{string(StatusScheduled), string(StatusCompleted)}
)

// Schema binds the task form to Task records. Date and clock fields are
// interpreted in Location, or time.Local when nil.
type Schema struct {
	Location *time.Location
}

func (s Schema) loc() *time.Location {
	if s.Location == nil {
		return time.Local
	}
	return s.Location
}

// Fields returns the task form inputs.
func (Schema) Fields() []form.Field {
	return []form.Field{
		{Name: "title", Label: "Task Title", Kind: form.KindText, Required: true,
			Rules: []form.Rule{form.MinLength(2, "Title is required.")}},
		{Name: "description", Label: "Description", Kind: form.KindTextArea},
		{Name: "date", Label: "Date", Kind: form.KindDate, Required: true,
			Rules: []form.Rule{form.Date("Please pick a valid date.")}},
		{Name: "startTime", Label: "Start Time", Kind: form.KindTime, Required: true,
			Rules: []form.Rule{form.Clock("Please enter a time as HH:MM.")}},
		{Name: "endTime", Label: "End Time", Kind: form.KindTime, Required: true,
			Rules: []form.Rule{form.Clock("Please enter a time as HH:MM.")}},
		{Name: "priority", Label: "Priority", Kind: form.KindSelect, Options: priorityOptions,
			Rules: []form.Rule{form.OneOf(priorityOptions, "Please select a valid priority.")}},
		{Name: "status", Label: "Status", Kind: form.KindSelect, Options: statusOptions,
			Rules: []form.Rule{form.OneOf(statusOptions, "Please select a valid status.")}},
		{Name: "category", Label: "Category", Kind: form.KindSelect, Required: true, Options: Categories,
			Rules: []form.Rule{form.MinLength(1, "Category is required.")}},
		{Name: "assignedTo", Label: "Assigned To", Kind: form.KindSelect, Required: true, Options: Assignees,
			Rules: []form.Rule{form.MinLength(1, "Assignee is required.")}},
		{Name: "location", Label: "Location", Kind: form.KindText},
	}
}

// Defaults returns a blank task booked 09:00 to 10:00 on now's day.
func (s Schema) Defaults(now time.Time) form.Values {
	return form.Values{
		"title":       "",
		"description": "",
		"date":        now.In(s.loc()).Format(form.DateLayout),
		"startTime":   "09:00",
		"endTime":     "10:00",
		"priority":    string(PriorityMedium),
		"status":      string(StatusScheduled),
		"category":    "",
		"assignedTo":  "",
		"location":    "",
	}
}

// Encode renders t as form values.
func (s Schema) Encode(t Task) form.Values {
	start := t.Start.In(s.loc())
	return form.Values{
		"title":       t.Title,
		"description": t.Description,
		"date":        start.Format(form.DateLayout),
		"startTime":   start.Format(form.ClockLayout),
		"endTime":     t.End.In(s.loc()).Format(form.ClockLayout),
		"priority":    string(t.Priority),
		"status":      string(t.Status),
		"category":    t.Category,
		"assignedTo":  t.AssignedTo,
		"location":    t.Location,
	}
}

// Decode builds a Task from validated values, rejecting an end time
// before the start time.
func (s Schema) Decode(v form.Values) (Task, error) {
	start, err := form.CombineDateClock(v["date"], v["startTime"], s.loc())
	if err != nil {
		return Task{}, form.FieldErrors{"startTime": "Please enter a time as HH:MM."}
	}
	end, err := form.CombineDateClock(v["date"], v["endTime"], s.loc())
	if err != nil {
		return Task{}, form.FieldErrors{"endTime": "Please enter a time as HH:MM."}
	}
	if end.Before(start) {
		return Task{}, form.FieldErrors{"endTime": "End time must be after start time."}
	}
	return Task{
		Title:       v["title"],
		Description: v["description"],
		Start:       start,
		End:         end,
		Status:      Status(v["status"]),
		Priority:    Priority(v["priority"]),
		Category:    v["category"],
		AssignedTo:  v["assignedTo"],
		Location:    v["location"],
	}, nil
}

// Saved is the notification sent after a task form is committed.
func Saved(t Task, editing bool) notify.Notification {
	if editing {
		return notify.Success("Task updated", t.Title+" has been updated in your schedule.")
	}
	return notify.Success("Task created", t.Title+" has been added to your schedule.")
}

// Deleted is the notification sent after a task is removed.
func Deleted() notify.Notification {
	return notify.Success("Task deleted", "The task has been successfully deleted.")
}

// Completed is the notification sent after a task is marked done.
func Completed() notify.Notification {
	return notify.Success("Task completed", "The task has been marked as completed.")
}
