package models

import "time"

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

// Task is a to-do item of a festival, optionally scoped to a sub-event.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	AssigneeID  string     `json:"assigneeId"`
	FestivalID  string     `json:"festivalId"`
	SubEventID  string     `json:"subEventId,omitempty"`
	DueDate     string     `json:"dueDate"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type NewTask struct {
	Title       string `validate:"required"`
	Description string
	Status      TaskStatus `validate:"required,oneof=pending in_progress completed"`
	AssigneeID  string     `validate:"required"`
	FestivalID  string     `validate:"required"`
	SubEventID  string
	DueDate     string
}

type TaskPatch struct {
	Title       *string
	Description *string
	Status      *TaskStatus
	AssigneeID  *string
	FestivalID  *string
	SubEventID  *string
	DueDate     *string
}

func (p TaskPatch) Apply(t *Task) {
	setString(&t.Title, p.Title)
	setString(&t.Description, p.Description)
	if p.Status != nil {
		t.Status = *p.Status
	}
	setString(&t.AssigneeID, p.AssigneeID)
	setString(&t.FestivalID, p.FestivalID)
	setString(&t.SubEventID, p.SubEventID)
	setString(&t.DueDate, p.DueDate)
}
