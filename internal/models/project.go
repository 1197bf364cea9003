package models

import "time"

// ProjectStatus enumerates the lifecycle states of a project.
type ProjectStatus string

const (
	ProjectStatusActive   ProjectStatus = "active"
	ProjectStatusReview   ProjectStatus = "review"
	ProjectStatusComplete ProjectStatus = "complete"
)

// ProjectType enumerates the kinds of construction projects.
type ProjectType string

const (
	ProjectTypeBuilding       ProjectType = "building"
	ProjectTypeInfrastructure ProjectType = "infrastructure"
	ProjectTypeResidential    ProjectType = "residential"
)

// Project is the aggregate root. Every other record references exactly
// one project by id.
type Project struct {
	ID          string        `db:"id" json:"id"`
	Name        string        `db:"name" json:"name"`
	Description string        `db:"description" json:"description"`
	Location    string        `db:"location" json:"location"`
	Status      ProjectStatus `db:"status" json:"status"`
	Type        ProjectType   `db:"type" json:"type"`
	CreatedAt   time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updatedAt"`
}

// ProjectSummary is the read-side view of a project with fields derived
// from dependent records at read time. Derived fields are never stored.
type ProjectSummary struct {
	Project
	PhotoCount     int     `json:"photoCount"`
	DocumentCount  int     `json:"documentCount"`
	NextInspection *string `json:"nextInspection,omitempty"`
}

// ProjectUpdate carries a partial update; nil fields are left unchanged.
type ProjectUpdate struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Location    *string        `json:"location,omitempty"`
	Status      *ProjectStatus `json:"status,omitempty"`
	Type        *ProjectType   `json:"type,omitempty"`
}

// Empty reports whether the update would change nothing.
func (u ProjectUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.Location == nil && u.Status == nil && u.Type == nil
}
