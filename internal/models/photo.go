package models

import "time"

// Photo is a site photograph attached to a project. Filename is the
// blob-store locator; latitude and longitude are jointly present or
// jointly absent.
type Photo struct {
	ID          string    `db:"id" json:"id"`
	ProjectID   string    `db:"project_id" json:"projectId"`
	Filename    string    `db:"filename" json:"filename"`
	Description string    `db:"description" json:"description"`
	Latitude    *float64  `db:"latitude" json:"latitude,omitempty"`
	Longitude   *float64  `db:"longitude" json:"longitude,omitempty"`
	TakenAt     time.Time `db:"taken_at" json:"takenAt"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// PhotoUpdate carries a partial update; nil fields are left unchanged.
// Coordinates can only be changed as a pair.
type PhotoUpdate struct {
	Description *string    `json:"description,omitempty"`
	Latitude    *float64   `json:"latitude,omitempty"`
	Longitude   *float64   `json:"longitude,omitempty"`
	TakenAt     *time.Time `json:"takenAt,omitempty"`
}
