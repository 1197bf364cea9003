package handler

import "github.com/gin-gonic/gin"

// Handlers bundles every handler the API exposes.
type Handlers struct {
	Projects      *ProjectHandler
	Photos        *PhotoHandler
	Documents     *DocumentHandler
	MaterialTests *MaterialTestHandler
	TestResults   *TestResultHandler
	Reminders     *ReminderHandler
	Calendar      *CalendarHandler
	Stats         *StatsHandler
	Reports       *ReportHandler
}

// Register wires every route group under the given router group.
func (h Handlers) Register(r *gin.RouterGroup) {
	projects := r.Group("/projects")
	{
		projects.GET("", h.Projects.List)
		projects.POST("", h.Projects.Create)
		projects.GET("/:id", h.Projects.Get)
		projects.PUT("/:id", h.Projects.Update)
		projects.DELETE("/:id", h.Projects.Delete)
		projects.GET("/:id/report", h.Reports.Generate)
	}

	photos := r.Group("/photos")
	{
		photos.GET("", h.Photos.List)
		photos.POST("", h.Photos.Upload)
		photos.GET("/:id", h.Photos.Get)
		photos.GET("/:id/file", h.Photos.Download)
		photos.PUT("/:id", h.Photos.Update)
		photos.DELETE("/:id", h.Photos.Delete)
	}

	documents := r.Group("/documents")
	{
		documents.GET("", h.Documents.List)
		documents.POST("", h.Documents.Upload)
		documents.GET("/:id", h.Documents.Get)
		documents.GET("/:id/file", h.Documents.Download)
		documents.PUT("/:id", h.Documents.Update)
		documents.DELETE("/:id", h.Documents.Delete)
	}

	materialTests := r.Group("/material-tests")
	{
		materialTests.GET("", h.MaterialTests.List)
		materialTests.POST("", h.MaterialTests.Create)
		materialTests.GET("/:id", h.MaterialTests.Get)
		materialTests.PUT("/:id", h.MaterialTests.Update)
		materialTests.DELETE("/:id", h.MaterialTests.Delete)
	}

	testResults := r.Group("/test-results")
	{
		testResults.GET("", h.TestResults.List)
		testResults.POST("", h.TestResults.Create)
		testResults.GET("/:id", h.TestResults.Get)
		testResults.DELETE("/:id", h.TestResults.Delete)
	}

	reminders := r.Group("/reminders")
	{
		reminders.GET("", h.Reminders.List)
		reminders.POST("", h.Reminders.Create)
		reminders.GET("/:id", h.Reminders.Get)
		reminders.PUT("/:id", h.Reminders.Update)
		reminders.POST("/:id/complete", h.Reminders.Complete)
		reminders.DELETE("/:id", h.Reminders.Delete)
	}

	calendar := r.Group("/calendar-events")
	{
		calendar.GET("", h.Calendar.List)
		calendar.POST("", h.Calendar.Create)
		calendar.GET("/:id", h.Calendar.Get)
		calendar.PUT("/:id", h.Calendar.Update)
		calendar.DELETE("/:id", h.Calendar.Delete)
	}

	r.GET("/stats", h.Stats.Get)
}
