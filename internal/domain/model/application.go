//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strconv"
	"time"
)

// ApplicationStatus is the lifecycle stage of a job application.
// The integer value is the storage code; new statuses may only be appended.
type ApplicationStatus int

const (
	StatusApplied ApplicationStatus = iota
	StatusInterviewed
	StatusOffered
	StatusRejected
	StatusAccepted
	StatusWithdrawn
)

// ErrInvalidStatus is returned when a status name does not match any ApplicationStatus.
var ErrInvalidStatus = errors.New("invalid application status")

var statusNames = [...]string{
	StatusApplied:     "Applied",
	StatusInterviewed: "Interviewed",
	StatusOffered:     "Offered",
	StatusRejected:    "Rejected",
	StatusAccepted:    "Accepted",
	StatusWithdrawn:   "Withdrawn",
}

// statusLookup maps canonical names and ordinal strings to statuses.
var statusLookup = func() map[string]ApplicationStatus {
	m := make(map[string]ApplicationStatus, 2*len(statusNames))
	for i, name := range statusNames {
		m[name] = ApplicationStatus(i)
		m[strconv.Itoa(i)] = ApplicationStatus(i)
	}
	return m
}()

// ApplicationStatuses returns every defined status in declaration order.
func ApplicationStatuses() []ApplicationStatus {
	out := make([]ApplicationStatus, len(statusNames))
	for i := range statusNames {
		out[i] = ApplicationStatus(i)
	}
	return out
}

// Valid reports whether the status is a defined enumeration member.
func (s ApplicationStatus) Valid() bool {
	return s >= 0 && int(s) < len(statusNames)
}

// String returns the canonical status name, or the numeric code for undefined values.
func (s ApplicationStatus) String() string {
	if !s.Valid() {
		return strconv.Itoa(int(s))
	}
	return statusNames[s]
}

// ParseApplicationStatus resolves a canonical status name ("Applied") or a
// defined ordinal ("0") to an ApplicationStatus. Matching is exact.
func ParseApplicationStatus(value string) (ApplicationStatus, bool) {
	s, ok := statusLookup[value]
	return s, ok
}

// Application is the domain representation of a tracked job application.
type Application struct {
	ID              int64
	JobTitle        string
	CompanyName     string
	ApplicationDate time.Time
	Status          ApplicationStatus
	Notes           string
}

// ApplicationRecord is the persisted row shape of an application.
// Status holds the ApplicationStatus ordinal.
type ApplicationRecord struct {
	ID              int64     `db:"id"`
	JobTitle        string    `db:"job_title"`
	CompanyName     string    `db:"company_name"`
	ApplicationDate time.Time `db:"application_date"`
	Status          int       `db:"status"`
	Notes           string    `db:"notes"`
}
