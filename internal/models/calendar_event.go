package models

import "time"

// EventType enumerates calendar event categories.
type EventType string

const (
	EventTypeInspection EventType = "inspection"
	EventTypeVisit      EventType = "visit"
	EventTypeDeadline   EventType = "deadline"
)

// CalendarEvent is a dated entry on a project calendar.
type CalendarEvent struct {
	ID          string    `db:"id" json:"id"`
	ProjectID   string    `db:"project_id" json:"projectId"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Date        time.Time `db:"date" json:"date"`
	Type        EventType `db:"type" json:"type"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// CalendarEventView joins the owning project's name in at read time.
type CalendarEventView struct {
	CalendarEvent
	ProjectName string `json:"projectName"`
}

// CalendarEventUpdate carries a partial update; nil fields are left
// unchanged.
type CalendarEventUpdate struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Type        *EventType `json:"type,omitempty"`
}

// CalendarFilter narrows event listings. Month and Year filter by the
// UTC calendar month; both must be considered independently optional.
type CalendarFilter struct {
	ProjectID string
	Month     *int
	Year      *int
}
