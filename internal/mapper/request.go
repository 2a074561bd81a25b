package mapper

import (
	"fmt"
	"time"

	"github.com/target/jobtracker-api/internal/domain/model"
)

// CreateToDomain converts a create request to a domain application with no id.
// An unknown status yields model.ErrInvalidStatus and a zero Application.
func CreateToDomain(req model.CreateApplicationRequest) (model.Application, error) {
	status, err := parseStatus(req.Status)
	if err != nil {
		return model.Application{}, err
	}
	return model.Application{
		JobTitle:        req.JobTitle,
		CompanyName:     req.CompanyName,
		ApplicationDate: dateValue(req.ApplicationDate),
		Status:          status,
		Notes:           notesValue(req.Notes),
	}, nil
}

// UpdateToDomain converts an update request to a domain application carrying its id.
// An unknown status yields model.ErrInvalidStatus and a zero Application.
func UpdateToDomain(req model.UpdateApplicationRequest) (model.Application, error) {
	status, err := parseStatus(req.Status)
	if err != nil {
		return model.Application{}, err
	}
	return model.Application{
		ID:              req.ID,
		JobTitle:        req.JobTitle,
		CompanyName:     req.CompanyName,
		ApplicationDate: dateValue(req.ApplicationDate),
		Status:          status,
		Notes:           notesValue(req.Notes),
	}, nil
}

func parseStatus(raw string) (model.ApplicationStatus, error) {
	status, ok := model.ParseApplicationStatus(raw)
	if !ok {
		return 0, fmt.Errorf("%w: %q", model.ErrInvalidStatus, raw)
	}
	return status, nil
}

func dateValue(d *model.Date) time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.Time
}

func notesValue(n *string) string {
	if n == nil {
		return ""
	}
	return *n
}
