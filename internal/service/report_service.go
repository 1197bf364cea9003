package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sitelog/sitelog-api/internal/models"
	"github.com/sitelog/sitelog-api/pkg/clock"
	appErrors "github.com/sitelog/sitelog-api/pkg/errors"
	"github.com/sitelog/sitelog-api/pkg/export"
)

// ReportFormat enumerates supported report renderings.
type ReportFormat string

const (
	ReportFormatCSV ReportFormat = "csv"
	ReportFormatPDF ReportFormat = "pdf"
)

const reportTimeLayout = "2006-01-02"

type reportStore interface {
	GetProject(ctx context.Context, id string) (*models.Project, error)
	ListPhotos(ctx context.Context, projectID string) ([]models.Photo, error)
	ListDocuments(ctx context.Context, projectID string) ([]models.Document, error)
	ListTestResults(ctx context.Context, projectID string) ([]models.TestResult, error)
	ListReminders(ctx context.Context, projectID string) ([]models.Reminder, error)
	ListMaterialTests(ctx context.Context, category models.MaterialCategory) ([]models.MaterialTest, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string, lines []string) ([]byte, error)
}

// ReportResult carries a rendered report and the metadata needed to
// serve it as a download.
type ReportResult struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// ReportService renders per-project summary reports.
type ReportService struct {
	store  reportStore
	csv    csvRenderer
	pdf    pdfRenderer
	clock  clock.Clock
	logger *zap.Logger
}

// NewReportService constructs a ReportService.
func NewReportService(store reportStore, clk clock.Clock, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ReportService {
	if clk == nil {
		clk = clock.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ReportService{store: store, csv: csv, pdf: pdf, clock: clk, logger: logger}
}

// Generate renders the project activity report in the requested format.
func (s *ReportService) Generate(ctx context.Context, projectID string, format ReportFormat) (*ReportResult, error) {
	if format != ReportFormatCSV && format != ReportFormatPDF {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported report format %q", format))
	}

	project, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	dataset, err := s.buildDataset(ctx, project)
	if err != nil {
		return nil, err
	}

	var payload []byte
	var contentType string
	switch format {
	case ReportFormatCSV:
		payload, err = s.csv.Render(dataset)
		contentType = "text/csv"
	case ReportFormatPDF:
		payload, err = s.pdf.Render(dataset, fmt.Sprintf("Project Report: %s", project.Name), s.summaryLines(project, dataset))
		contentType = "application/pdf"
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render report")
	}

	return &ReportResult{
		Filename:    s.buildFilename(project, format),
		ContentType: contentType,
		Payload:     payload,
	}, nil
}

// buildDataset flattens every record attached to the project into one
// chronological activity table.
func (s *ReportService) buildDataset(ctx context.Context, project *models.Project) (export.Dataset, error) {
	dataset := export.Dataset{Headers: []string{"Kind", "Title", "Detail", "Status", "Date"}}

	photos, err := s.store.ListPhotos(ctx, project.ID)
	if err != nil {
		return dataset, err
	}
	for _, photo := range photos {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Kind":   "photo",
			"Title":  photo.Filename,
			"Detail": photo.Description,
			"Status": "",
			"Date":   photo.TakenAt.UTC().Format(reportTimeLayout),
		})
	}

	documents, err := s.store.ListDocuments(ctx, project.ID)
	if err != nil {
		return dataset, err
	}
	for _, doc := range documents {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Kind":   "document",
			"Title":  doc.OriginalName,
			"Detail": string(doc.Type),
			"Status": "",
			"Date":   doc.UploadedAt.UTC().Format(reportTimeLayout),
		})
	}

	results, err := s.store.ListTestResults(ctx, project.ID)
	if err != nil {
		return dataset, err
	}
	testNames, err := s.materialTestNames(ctx)
	if err != nil {
		return dataset, err
	}
	for _, result := range results {
		name, ok := testNames[result.MaterialTestID]
		if !ok {
			name = UnknownTest
		}
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Kind":   "test result",
			"Title":  name,
			"Detail": result.Result,
			"Status": string(result.Status),
			"Date":   result.TestedAt.UTC().Format(reportTimeLayout),
		})
	}

	reminders, err := s.store.ListReminders(ctx, project.ID)
	if err != nil {
		return dataset, err
	}
	for _, reminder := range reminders {
		status := "pending"
		if reminder.Completed {
			status = "completed"
		}
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Kind":   "reminder",
			"Title":  reminder.Title,
			"Detail": string(reminder.Type),
			"Status": status,
			"Date":   reminder.ScheduledFor.UTC().Format(reportTimeLayout),
		})
	}

	return dataset, nil
}

func (s *ReportService) materialTestNames(ctx context.Context) (map[string]string, error) {
	tests, err := s.store.ListMaterialTests(ctx, "")
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(tests))
	for _, test := range tests {
		names[test.ID] = test.Name
	}
	return names, nil
}

func (s *ReportService) summaryLines(project *models.Project, dataset export.Dataset) []string {
	counts := map[string]int{}
	for _, row := range dataset.Rows {
		counts[row["Kind"]]++
	}
	return []string{
		fmt.Sprintf("Location: %s", project.Location),
		fmt.Sprintf("Status: %s  Type: %s", project.Status, project.Type),
		fmt.Sprintf("Photos: %d  Documents: %d  Test results: %d  Reminders: %d",
			counts["photo"], counts["document"], counts["test result"], counts["reminder"]),
		fmt.Sprintf("Generated: %s", s.clock.Now().Format(reportTimeLayout)),
	}
}

func (s *ReportService) buildFilename(project *models.Project, format ReportFormat) string {
	name := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(project.Name), " ", "-"))
	if name == "" {
		name = project.ID
	}
	return fmt.Sprintf("%s-report-%s.%s", name, s.clock.Now().Format(reportTimeLayout), format)
}
