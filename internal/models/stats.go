package models

// Stats holds the whole-system counters shown on the dashboard. They
// are recomputed from the store on demand.
type Stats struct {
	ActiveProjects     int `json:"activeProjects"`
	PhotosCount        int `json:"photosCount"`
	PendingInspections int `json:"pendingInspections"`
	DocumentsCount     int `json:"documentsCount"`
}
