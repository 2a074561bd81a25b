package mapper

import "github.com/target/jobtracker-api/internal/domain/model"

// RecordToDomain converts a persisted record to a domain application.
func RecordToDomain(rec model.ApplicationRecord) model.Application {
	return model.Application{
		ID:              rec.ID,
		JobTitle:        rec.JobTitle,
		CompanyName:     rec.CompanyName,
		ApplicationDate: rec.ApplicationDate,
		Status:          model.ApplicationStatus(rec.Status),
		Notes:           rec.Notes,
	}
}

// DomainToRecord converts a domain application to its persisted record.
func DomainToRecord(app model.Application) model.ApplicationRecord {
	return model.ApplicationRecord{
		ID:              app.ID,
		JobTitle:        app.JobTitle,
		CompanyName:     app.CompanyName,
		ApplicationDate: app.ApplicationDate,
		Status:          int(app.Status),
		Notes:           app.Notes,
	}
}

// RecordsToDomain converts records in order. A nil input yields an empty slice.
func RecordsToDomain(recs []model.ApplicationRecord) []model.Application {
	out := make([]model.Application, 0, len(recs))
	for _, rec := range recs {
		out = append(out, RecordToDomain(rec))
	}
	return out
}

// DomainsToRecords converts domain applications in order. A nil input yields an empty slice.
func DomainsToRecords(apps []model.Application) []model.ApplicationRecord {
	out := make([]model.ApplicationRecord, 0, len(apps))
	for _, app := range apps {
		out = append(out, DomainToRecord(app))
	}
	return out
}
