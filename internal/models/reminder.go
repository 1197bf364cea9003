package models

import "time"

// ReminderType enumerates the inspection reminder categories.
type ReminderType string

const (
	ReminderType599          ReminderType = "599"
	ReminderTypeSW3P         ReminderType = "sw3p"
	ReminderTypeMaterialTest ReminderType = "material_test"
)

// Reminder is a scheduled inspection item for a project. Completed is
// monotonic: the standard update path never reverts it to false.
type Reminder struct {
	ID           string       `db:"id" json:"id"`
	ProjectID    string       `db:"project_id" json:"projectId"`
	Title        string       `db:"title" json:"title"`
	Type         ReminderType `db:"type" json:"type"`
	ScheduledFor time.Time    `db:"scheduled_for" json:"scheduledFor"`
	Completed    bool         `db:"completed" json:"completed"`
	CreatedAt    time.Time    `db:"created_at" json:"createdAt"`
}

// ReminderUpdate carries a partial update; nil fields are left
// unchanged. Completion goes through the dedicated complete operation,
// never through here.
type ReminderUpdate struct {
	Title        *string       `json:"title,omitempty"`
	Type         *ReminderType `json:"type,omitempty"`
	ScheduledFor *time.Time    `json:"scheduledFor,omitempty"`
}
