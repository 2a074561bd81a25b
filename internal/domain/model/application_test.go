package model

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/target/jobtracker-api/internal/errors"
)

func TestParseApplicationStatus(t *testing.T) {
	tests := []struct {
		input string
		want  ApplicationStatus
		ok    bool
	}{
		{input: "Applied", want: StatusApplied, ok: true},
		{input: "Interviewed", want: StatusInterviewed, ok: true},
		{input: "Offered", want: StatusOffered, ok: true},
		{input: "Rejected", want: StatusRejected, ok: true},
		{input: "Accepted", want: StatusAccepted, ok: true},
		{input: "Withdrawn", want: StatusWithdrawn, ok: true},
		{input: "0", want: StatusApplied, ok: true},
		{input: "5", want: StatusWithdrawn, ok: true},
		{input: "6"},
		{input: "-1"},
		{input: "applied"},
		{input: " Applied"},
		{input: "InvalidStatus"},
		{input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseApplicationStatus(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestApplicationStatus_String(t *testing.T) {
	assert.Equal(t, "Applied", StatusApplied.String())
	assert.Equal(t, "Withdrawn", StatusWithdrawn.String())
	assert.Equal(t, "42", ApplicationStatus(42).String())
	assert.False(t, ApplicationStatus(-1).Valid())
	assert.True(t, StatusAccepted.Valid())
}

func TestApplicationStatuses_DeclarationOrder(t *testing.T) {
	statuses := ApplicationStatuses()
	require.Len(t, statuses, 6)
	for i, s := range statuses {
		assert.Equal(t, i, int(s))
		parsed, ok := ParseApplicationStatus(s.String())
		require.True(t, ok)
		assert.Equal(t, s, parsed)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{input: "2024-01-01", want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{input: "2024-01-01T10:00:00", want: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{input: "2024-01-01T10:00:00.5", want: time.Date(2024, 1, 1, 10, 0, 0, 500_000_000, time.UTC)},
		{input: "2024-01-01T10:00:00Z", want: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{input: "2024-01-01T12:00:00+02:00", want: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %v got %v", tt.want, got)
		})
	}

	_, err := ParseDate("01/02/2024")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDate_JSON(t *testing.T) {
	var req CreateApplicationRequest
	require.NoError(t, json.Unmarshal([]byte(`{"applicationDate":"2024-03-05","status":"Applied"}`), &req))
	require.NotNil(t, req.ApplicationDate)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), req.ApplicationDate.Time)

	out, err := json.Marshal(req.ApplicationDate)
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-03-05T00:00:00Z"`, string(out))

	req = CreateApplicationRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"applicationDate":null}`), &req))
	assert.Nil(t, req.ApplicationDate)

	err = json.Unmarshal([]byte(`{"applicationDate":"yesterday"}`), &req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDate))

	err = json.Unmarshal([]byte(`{"applicationDate":20240101}`), &req)
	require.Error(t, err)
}

func TestCreateApplicationRequest_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := CreateApplicationRequest{
			JobTitle:        "Engineer",
			ApplicationDate: NewDate(time.Now()),
			Status:          "Applied",
		}
		require.NoError(t, req.Validate())
	})

	t.Run("empty job title and company are allowed", func(t *testing.T) {
		req := CreateApplicationRequest{ApplicationDate: NewDate(time.Now()), Status: "InvalidStatus"}
		require.NoError(t, req.Validate())
	})

	t.Run("missing date and status", func(t *testing.T) {
		req := CreateApplicationRequest{JobTitle: "Engineer"}
		err := req.Validate()
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))

		fields := apperrors.GetFields(err)
		assert.Equal(t, "The ApplicationDate field is required.", fields["ApplicationDate"])
		assert.Equal(t, "The Status field is required.", fields["Status"])
	})
}

func TestUpdateApplicationRequest_Validate(t *testing.T) {
	req := UpdateApplicationRequest{ID: 3, Status: "Offered"}
	err := req.Validate()
	require.Error(t, err)

	fields := apperrors.GetFields(err)
	assert.Len(t, fields, 1)
	assert.Contains(t, fields, "ApplicationDate")

	req.ApplicationDate = NewDate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, req.Validate())
}
