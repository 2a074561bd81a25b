package mapper

import "github.com/target/jobtracker-api/internal/domain/model"

// DomainToView converts a domain application to its wire view.
func DomainToView(app model.Application) model.ApplicationView {
	return model.ApplicationView{
		ID:              app.ID,
		JobTitle:        app.JobTitle,
		CompanyName:     app.CompanyName,
		ApplicationDate: app.ApplicationDate,
		Status:          app.Status.String(),
		Notes:           app.Notes,
	}
}

// ViewToDomain converts a wire view back to a domain application.
// Unlike the request mappers, an unknown status falls back to StatusApplied.
func ViewToDomain(view model.ApplicationView) model.Application {
	status, ok := model.ParseApplicationStatus(view.Status)
	if !ok {
		status = model.StatusApplied
	}
	return model.Application{
		ID:              view.ID,
		JobTitle:        view.JobTitle,
		CompanyName:     view.CompanyName,
		ApplicationDate: view.ApplicationDate,
		Status:          status,
		Notes:           view.Notes,
	}
}

// DomainsToViews converts domain applications in order. A nil input yields an empty slice.
func DomainsToViews(apps []model.Application) []model.ApplicationView {
	out := make([]model.ApplicationView, 0, len(apps))
	for _, app := range apps {
		out = append(out, DomainToView(app))
	}
	return out
}

// ViewsToDomains converts views in order. A nil input yields an empty slice.
func ViewsToDomains(views []model.ApplicationView) []model.Application {
	out := make([]model.Application, 0, len(views))
	for _, v := range views {
		out = append(out, ViewToDomain(v))
	}
	return out
}
