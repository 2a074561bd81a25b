package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/target/jobtracker-api/internal/errors"
)

// ErrInvalidDate is returned when an applicationDate value matches none of the accepted layouts.
var ErrInvalidDate = errors.New("invalid application date")

// Accepted wire layouts for application dates. Zoneless values are read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	time.DateOnly,
}

// ParseDate parses an application date from any accepted wire layout.
func ParseDate(value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// Date is a wire date that accepts RFC 3339, zoneless date-times, and bare dates.
type Date struct {
	time.Time
}

// NewDate wraps t as a wire Date.
func NewDate(t time.Time) *Date {
	return &Date{Time: t}
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: expected a string", ErrInvalidDate)
	}
	t, err := ParseDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// MarshalJSON implements json.Marshaler, always rendering RFC 3339.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.Format(time.RFC3339Nano))
}

// CreateApplicationRequest is the payload accepted when creating an application.
type CreateApplicationRequest struct {
	JobTitle        string  `json:"jobTitle"`
	CompanyName     string  `json:"companyName"`
	ApplicationDate *Date   `json:"applicationDate" validate:"required"`
	Status          string  `json:"status"          validate:"required"`
	Notes           *string `json:"notes"`
}

// Validate checks required fields. Status names are resolved later by the mapper.
func (r *CreateApplicationRequest) Validate() error {
	return validateRequest(r)
}

// UpdateApplicationRequest is the payload accepted when updating an application.
// All fields except ID overwrite the stored values.
type UpdateApplicationRequest struct {
	ID              int64   `json:"id"`
	JobTitle        string  `json:"jobTitle"`
	CompanyName     string  `json:"companyName"`
	ApplicationDate *Date   `json:"applicationDate" validate:"required"`
	Status          string  `json:"status"          validate:"required"`
	Notes           *string `json:"notes"`
}

// Validate checks required fields. Status names are resolved later by the mapper.
func (r *UpdateApplicationRequest) Validate() error {
	return validateRequest(r)
}

// ApplicationView is the wire shape returned for an application.
type ApplicationView struct {
	ID              int64     `json:"id"`
	JobTitle        string    `json:"jobTitle"`
	CompanyName     string    `json:"companyName"`
	ApplicationDate time.Time `json:"applicationDate"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes"`
}

// ValidationMessage is the top-level message of request validation failures.
const ValidationMessage = "One or more validation errors occurred."

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateRequest runs struct tag validation and folds failures into a
// validation AppError keyed by Go field name.
func validateRequest(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return apperrors.ValidationFields(ValidationMessage, fields)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", fe.Field())
	default:
		return fmt.Sprintf("The field %s is invalid.", fe.Field())
	}
}
