// Package testutil provides testing utilities and helpers for the job tracker.
package testutil

import (
	"time"

	"github.com/target/jobtracker-api/internal/domain/model"
)

// CreateRequestBuilder provides a fluent interface for building CreateApplicationRequest objects for testing.
type CreateRequestBuilder struct {
	req model.CreateApplicationRequest
}

// NewCreateRequest creates a new CreateRequestBuilder with sensible defaults.
func NewCreateRequest() *CreateRequestBuilder {
	return &CreateRequestBuilder{
		req: model.CreateApplicationRequest{
			JobTitle:        "Software Engineer",
			CompanyName:     "Acme Corp",
			ApplicationDate: model.NewDate(TestTime()),
			Status:          model.StatusApplied.String(),
		},
	}
}

// WithJobTitle sets the job title.
func (b *CreateRequestBuilder) WithJobTitle(title string) *CreateRequestBuilder {
	b.req.JobTitle = title
	return b
}

// WithCompany sets the company name.
func (b *CreateRequestBuilder) WithCompany(company string) *CreateRequestBuilder {
	b.req.CompanyName = company
	return b
}

// WithStatus sets the raw status name.
func (b *CreateRequestBuilder) WithStatus(status string) *CreateRequestBuilder {
	b.req.Status = status
	return b
}

// WithDate sets the application date.
func (b *CreateRequestBuilder) WithDate(t time.Time) *CreateRequestBuilder {
	b.req.ApplicationDate = model.NewDate(t)
	return b
}

// WithNotes sets the notes.
func (b *CreateRequestBuilder) WithNotes(notes string) *CreateRequestBuilder {
	b.req.Notes = &notes
	return b
}

// Build returns the constructed CreateApplicationRequest.
func (b *CreateRequestBuilder) Build() model.CreateApplicationRequest {
	return b.req
}

// ApplicationBuilder provides a fluent interface for building domain applications.
type ApplicationBuilder struct {
	app model.Application
}

// NewApplication creates a new ApplicationBuilder with sensible defaults and no id.
func NewApplication() *ApplicationBuilder {
	return &ApplicationBuilder{
		app: model.Application{
			JobTitle:        "Software Engineer",
			CompanyName:     "Acme Corp",
			ApplicationDate: TestTime(),
			Status:          model.StatusApplied,
		},
	}
}

// WithID sets the id.
func (b *ApplicationBuilder) WithID(id int64) *ApplicationBuilder {
	b.app.ID = id
	return b
}

// WithJobTitle sets the job title.
func (b *ApplicationBuilder) WithJobTitle(title string) *ApplicationBuilder {
	b.app.JobTitle = title
	return b
}

// WithCompany sets the company name.
func (b *ApplicationBuilder) WithCompany(company string) *ApplicationBuilder {
	b.app.CompanyName = company
	return b
}

// WithStatus sets the status.
func (b *ApplicationBuilder) WithStatus(status model.ApplicationStatus) *ApplicationBuilder {
	b.app.Status = status
	return b
}

// WithNotes sets the notes.
func (b *ApplicationBuilder) WithNotes(notes string) *ApplicationBuilder {
	b.app.Notes = notes
	return b
}

// Build returns a pointer to a copy of the constructed application.
func (b *ApplicationBuilder) Build() *model.Application {
	app := b.app
	return &app
}

// Record returns the persisted record form of the constructed application.
func (b *ApplicationBuilder) Record() model.ApplicationRecord {
	return model.ApplicationRecord{
		ID:              b.app.ID,
		JobTitle:        b.app.JobTitle,
		CompanyName:     b.app.CompanyName,
		ApplicationDate: b.app.ApplicationDate,
		Status:          int(b.app.Status),
		Notes:           b.app.Notes,
	}
}
