package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/jobtracker-api/internal/domain/model"
)

var testDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func TestRecordDomainRoundTrip(t *testing.T) {
	t.Parallel()

	for _, status := range model.ApplicationStatuses() {
		rec := model.ApplicationRecord{
			ID:              7,
			JobTitle:        "Engineer",
			CompanyName:     "Acme",
			ApplicationDate: testDate,
			Status:          int(status),
			Notes:           "referral",
		}

		app := RecordToDomain(rec)
		assert.Equal(t, status, app.Status)
		assert.Equal(t, rec, DomainToRecord(app))
	}
}

func TestCreateToDomain(t *testing.T) {
	t.Parallel()

	t.Run("valid status", func(t *testing.T) {
		app, err := CreateToDomain(model.CreateApplicationRequest{
			JobTitle:        "Engineer",
			CompanyName:     "Acme",
			ApplicationDate: model.NewDate(testDate),
			Status:          "Interviewed",
			Notes:           ptr("phone screen"),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(0), app.ID)
		assert.Equal(t, model.StatusInterviewed, app.Status)
		assert.Equal(t, "phone screen", app.Notes)
		assert.Equal(t, testDate, app.ApplicationDate)
	})

	t.Run("null notes become empty", func(t *testing.T) {
		app, err := CreateToDomain(model.CreateApplicationRequest{
			ApplicationDate: model.NewDate(testDate),
			Status:          "Applied",
		})
		require.NoError(t, err)
		assert.Equal(t, "", app.Notes)
	})

	t.Run("invalid status", func(t *testing.T) {
		app, err := CreateToDomain(model.CreateApplicationRequest{
			JobTitle:        "Engineer",
			ApplicationDate: model.NewDate(testDate),
			Status:          "InvalidStatus",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidStatus)
		assert.Contains(t, err.Error(), "InvalidStatus")
		assert.Equal(t, model.Application{}, app)
	})
}

func TestUpdateToDomain(t *testing.T) {
	t.Parallel()

	app, err := UpdateToDomain(model.UpdateApplicationRequest{
		ID:              12,
		JobTitle:        "Staff Engineer",
		CompanyName:     "Globex",
		ApplicationDate: model.NewDate(testDate),
		Status:          "Offered",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), app.ID)
	assert.Equal(t, model.StatusOffered, app.Status)
	assert.Equal(t, "", app.Notes)

	_, err = UpdateToDomain(model.UpdateApplicationRequest{ID: 12, Status: "offered"})
	assert.ErrorIs(t, err, model.ErrInvalidStatus)
}

func TestDomainToView(t *testing.T) {
	t.Parallel()

	view := DomainToView(model.Application{
		ID:              3,
		JobTitle:        "Engineer",
		CompanyName:     "Acme",
		ApplicationDate: testDate,
		Status:          model.StatusRejected,
		Notes:           "n",
	})
	assert.Equal(t, model.ApplicationView{
		ID:              3,
		JobTitle:        "Engineer",
		CompanyName:     "Acme",
		ApplicationDate: testDate,
		Status:          "Rejected",
		Notes:           "n",
	}, view)
}

func TestViewToDomain_FallsBackToApplied(t *testing.T) {
	t.Parallel()

	app := ViewToDomain(model.ApplicationView{ID: 1, Status: "Ghosted"})
	assert.Equal(t, model.StatusApplied, app.Status)

	app = ViewToDomain(model.ApplicationView{ID: 1, Status: "Accepted"})
	assert.Equal(t, model.StatusAccepted, app.Status)
}

func TestCollections(t *testing.T) {
	t.Parallel()

	t.Run("nil inputs yield empty non-nil slices", func(t *testing.T) {
		assert.NotNil(t, RecordsToDomain(nil))
		assert.Empty(t, RecordsToDomain(nil))
		assert.NotNil(t, DomainsToRecords(nil))
		assert.NotNil(t, DomainsToViews(nil))
		assert.NotNil(t, ViewsToDomains(nil))
	})

	t.Run("order preserved", func(t *testing.T) {
		recs := []model.ApplicationRecord{
			{ID: 3, Status: int(model.StatusOffered)},
			{ID: 1, Status: int(model.StatusApplied)},
			{ID: 2, Status: int(model.StatusWithdrawn)},
		}
		apps := RecordsToDomain(recs)
		require.Len(t, apps, 3)
		assert.Equal(t, []int64{3, 1, 2}, []int64{apps[0].ID, apps[1].ID, apps[2].ID})
		assert.Equal(t, recs, DomainsToRecords(apps))

		views := DomainsToViews(apps)
		assert.Equal(t, "Offered", views[0].Status)
		assert.Equal(t, "Withdrawn", views[2].Status)
		assert.Equal(t, apps, ViewsToDomains(views))
	})
}
