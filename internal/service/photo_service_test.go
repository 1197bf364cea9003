package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitelog/sitelog-api/internal/models"
	"github.com/sitelog/sitelog-api/internal/store"
	"github.com/sitelog/sitelog-api/pkg/clock"
	appErrors "github.com/sitelog/sitelog-api/pkg/errors"
)

type fakeBlobs struct {
	deleted []string
	err     error
}

func (f *fakeBlobs) Delete(locator string) error {
	f.deleted = append(f.deleted, locator)
	return f.err
}

func newPhotoFixture(t *testing.T, now time.Time, blobs blobDeleter) (*PhotoService, *store.Memory, *models.Project) {
	t.Helper()
	ctx := context.Background()
	mem := store.NewMemory(clock.Fixed{Instant: now})
	project := &models.Project{Name: "Depot", Status: models.ProjectStatusActive, Type: models.ProjectTypeBuilding}
	require.NoError(t, mem.CreateProject(ctx, project))
	return NewPhotoService(mem, blobs, nil, clock.Fixed{Instant: now}, nil), mem, project
}

func TestPhotoServiceCreateDefaultsTakenAt(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, _, project := newPhotoFixture(t, now, nil)

	photo, err := svc.Create(context.Background(), CreatePhotoRequest{
		ProjectID: project.ID,
		Filename:  "abc_site.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, now, photo.TakenAt)
	assert.Nil(t, photo.Latitude)
}

func TestPhotoServiceCreateRejectsMissingProject(t *testing.T) {
	svc, _, _ := newPhotoFixture(t, time.Now(), nil)

	_, err := svc.Create(context.Background(), CreatePhotoRequest{
		ProjectID: "no-such-project",
		Filename:  "abc_site.jpg",
	})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrIntegrity.Code, appErr.Code)
}

func TestPhotoServiceCreateRejectsLoneCoordinate(t *testing.T) {
	svc, _, project := newPhotoFixture(t, time.Now(), nil)

	lat := 52.1
	_, err := svc.Create(context.Background(), CreatePhotoRequest{
		ProjectID: project.ID,
		Filename:  "abc_site.jpg",
		Latitude:  &lat,
	})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestPhotoServiceCreateAcceptsCoordinatePair(t *testing.T) {
	svc, _, project := newPhotoFixture(t, time.Now(), nil)

	lat, lng := 52.1, 4.3
	photo, err := svc.Create(context.Background(), CreatePhotoRequest{
		ProjectID: project.ID,
		Filename:  "abc_site.jpg",
		Latitude:  &lat,
		Longitude: &lng,
	})
	require.NoError(t, err)
	require.NotNil(t, photo.Latitude)
	require.NotNil(t, photo.Longitude)
	assert.Equal(t, lat, *photo.Latitude)
	assert.Equal(t, lng, *photo.Longitude)
}

func TestPhotoServiceDeleteRemovesBlob(t *testing.T) {
	blobs := &fakeBlobs{}
	svc, _, project := newPhotoFixture(t, time.Now(), blobs)
	ctx := context.Background()

	photo, err := svc.Create(ctx, CreatePhotoRequest{ProjectID: project.ID, Filename: "abc_site.jpg"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, photo.ID))
	assert.Equal(t, []string{"abc_site.jpg"}, blobs.deleted)

	_, err = svc.Get(ctx, photo.ID)
	assert.True(t, appErrors.IsNotFound(err))
}

func TestPhotoServiceDeleteToleratesBlobFailure(t *testing.T) {
	blobs := &fakeBlobs{err: assert.AnError}
	svc, _, project := newPhotoFixture(t, time.Now(), blobs)
	ctx := context.Background()

	photo, err := svc.Create(ctx, CreatePhotoRequest{ProjectID: project.ID, Filename: "abc_site.jpg"})
	require.NoError(t, err)

	// The record is gone even when the blob store misbehaves.
	require.NoError(t, svc.Delete(ctx, photo.ID))
	_, err = svc.Get(ctx, photo.ID)
	assert.True(t, appErrors.IsNotFound(err))
}
