package schedule

import "time"

// Seed returns the demo task list. Tasks 5 and 6 fall on now's day and
// the day after.
func Seed(now time.Time) []Task {
	loc := now.Location()
	at := func(y int, m time.Month, d, hh, mm int) time.Time {
		return time.Date(y, m, d, hh, mm, 0, 0, loc)
	}
	y, m, d := now.Date()
	ty, tm, td := now.AddDate(0, 0, 1).Date()

	return []Task{
		{ID: "1", Title: "Client Meeting - Acme Corp", Description: "Discuss new project requirements",
			Start: at(2023, time.May, 15, 10, 0), End: at(2023, time.May, 15, 11, 30),
			Status: StatusScheduled, Priority: PriorityHigh, AssignedTo: "John Doe", Category: "Meeting",
			Location: "Conference Room A"},
		{ID: "2", Title: "Prepare Project Proposal", Description: "Create proposal for Stark Industries",
			Start: at(2023, time.May, 16, 9, 0), End: at(2023, time.May, 16, 12, 0),
			Status: StatusScheduled, Priority: PriorityMedium, AssignedTo: "Jane Smith", Category: "Task",
			Location: "Office"},
		{ID: "3", Title: "Team Status Update", Description: "Weekly team meeting",
			Start: at(2023, time.May, 17, 15, 0), End: at(2023, time.May, 17, 16, 0),
			Status: StatusScheduled, Priority: PriorityMedium, AssignedTo: "Team", Category: "Meeting"},
		{ID: "4", Title: "Client Call - Wayne Enterprises", Description: "Follow up on previous project",
			Start: at(2023, time.May, 18, 11, 0), End: at(2023, time.May, 18, 11, 30),
			Status: StatusScheduled, Priority: PriorityHigh, AssignedTo: "John Doe", Category: "Call"},
		{ID: "5", Title: "Submit Invoice #1234", Description: "Invoice for Pied Piper services",
			Start: at(y, m, d, 14, 0), End: at(y, m, d, 14, 30),
			Status: StatusCompleted, Priority: PriorityMedium, AssignedTo: "Jane Smith", Category: "Task"},
		{ID: "6", Title: "Review Marketing Materials", Description: "Check new brochures and website content",
			Start: at(ty, tm, td, 9, 0), End: at(ty, tm, td, 11, 30),
			Status: StatusScheduled, Priority: PriorityLow, AssignedTo: "Marketing Team", Category: "Task"},
	}
}
