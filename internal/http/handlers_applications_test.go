package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/target/jobtracker-api/internal/data"
	"github.com/target/jobtracker-api/internal/domain/model"
	apperrors "github.com/target/jobtracker-api/internal/errors"
	"github.com/target/jobtracker-api/internal/mocks"
	"github.com/target/jobtracker-api/internal/service"
)

const validCreateBody = `{"jobTitle":"Backend Engineer","companyName":"Acme","applicationDate":"2024-01-01","status":"Applied","notes":"referral"}`

func newTestRouter(t *testing.T) (http.Handler, *data.MemoryApplicationStore) {
	t.Helper()
	store := data.NewMemoryApplicationStore()
	return NewRouter(RouterServices{
		Applications: service.NewApplicationService(service.ApplicationServiceOptions{}),
		Sessions:     store,
		MaxBodyBytes: 1 << 20,
	}), store
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeView(t *testing.T, rec *httptest.ResponseRecorder) model.ApplicationView {
	t.Helper()
	var v model.ApplicationView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var e errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	return e
}

func TestApplications_CreateValid(t *testing.T) {
	h, store := newTestRouter(t)

	rec := doRequest(t, h, http.MethodPost, "/applications", validCreateBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	v := decodeView(t, rec)
	assert.Positive(t, v.ID)
	assert.Equal(t, "Applied", v.Status)
	assert.Equal(t, "Acme", v.CompanyName)
	assert.Equal(t, "referral", v.Notes)
	assert.Equal(t, "2024-01-01T00:00:00Z", v.ApplicationDate.Format("2006-01-02T15:04:05Z07:00"))
	assert.Equal(t, "/applications/1", rec.Header().Get("Location"))
	assert.Equal(t, 1, store.Len())
}

func TestApplications_CreateOmittedNotesBecomeEmpty(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := doRequest(t, h, http.MethodPost, "/applications",
		`{"jobTitle":"SRE","companyName":"Globex","applicationDate":"2024-02-03T10:00:00","status":"Interviewed","notes":null}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"notes":""`)
	assert.Equal(t, "Interviewed", decodeView(t, rec).Status)
}

func TestApplications_CreateInvalidStatus(t *testing.T) {
	h, store := newTestRouter(t)

	rec := doRequest(t, h, http.MethodPost, "/applications",
		`{"jobTitle":"Dev","companyName":"A","applicationDate":"2024-01-01","status":"InvalidStatus"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	e := decodeError(t, rec)
	assert.Equal(t, "validation_failed", e.Error)
	assert.Equal(t, MsgInvalidStatus, e.Fields["Status"])
	assert.Equal(t, 0, store.Len())
}

func TestApplications_CreateRejectsNullBody(t *testing.T) {
	h, store := newTestRouter(t)

	for _, body := range []string{"", "null"} {
		rec := doRequest(t, h, http.MethodPost, "/applications", body)
		require.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
		assert.Equal(t, MsgNullApplication, decodeError(t, rec).Message)
	}
	assert.Equal(t, 0, store.Len())
}

func TestApplications_CreateMissingRequiredFields(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := doRequest(t, h, http.MethodPost, "/applications", `{"jobTitle":"Dev","companyName":"A"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	e := decodeError(t, rec)
	assert.Equal(t, model.ValidationMessage, e.Message)
	assert.Contains(t, e.Fields, "ApplicationDate")
	assert.Contains(t, e.Fields, "Status")
}

func TestApplications_CreateMalformedInput(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := doRequest(t, h, http.MethodPost, "/applications", `{"jobTitle":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_json", decodeError(t, rec).Error)

	rec = doRequest(t, h, http.MethodPost, "/applications",
		`{"applicationDate":"yesterday","status":"Applied"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Fields, "ApplicationDate")
}

func TestApplications_GetAndList(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := doRequest(t, h, http.MethodGet, "/applications", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	require.Equal(t, http.StatusCreated, doRequest(t, h, http.MethodPost, "/applications", validCreateBody).Code)
	require.Equal(t, http.StatusCreated, doRequest(t, h, http.MethodPost, "/applications",
		`{"jobTitle":"QA","companyName":"B","applicationDate":"2024-01-02","status":"1"}`).Code)

	rec = doRequest(t, h, http.MethodGet, "/applications", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var views []model.ApplicationView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 2)
	assert.Equal(t, int64(1), views[0].ID)
	assert.Equal(t, "Interviewed", views[1].Status)

	rec = doRequest(t, h, http.MethodGet, "/applications/2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "QA", decodeView(t, rec).JobTitle)

	rec = doRequest(t, h, http.MethodGet, "/applications/77", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "77")
}

func TestApplications_Update(t *testing.T) {
	h, _ := newTestRouter(t)
	require.Equal(t, http.StatusCreated, doRequest(t, h, http.MethodPost, "/applications", validCreateBody).Code)

	rec := doRequest(t, h, http.MethodPut, "/applications",
		`{"id":1,"jobTitle":"Staff Engineer","companyName":"Acme","applicationDate":"2024-03-01T09:00:00Z","status":"Offered"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	v := decodeView(t, rec)
	assert.Equal(t, int64(1), v.ID)
	assert.Equal(t, "Offered", v.Status)
	assert.Empty(t, v.Notes)

	rec = doRequest(t, h, http.MethodGet, "/applications/1", "")
	assert.Equal(t, "Staff Engineer", decodeView(t, rec).JobTitle)
}

func TestApplications_UpdateMissing(t *testing.T) {
	h, store := newTestRouter(t)

	rec := doRequest(t, h, http.MethodPut, "/applications",
		`{"id":99,"jobTitle":"Dev","companyName":"A","applicationDate":"2024-01-01","status":"Applied"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	e := decodeError(t, rec)
	assert.Equal(t, "Application with ID 99 not found.", e.Message)
	assert.Equal(t, 0, store.Len())
}

func TestApplications_UpdateInvalidStatus(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := doRequest(t, h, http.MethodPut, "/applications",
		`{"id":1,"applicationDate":"2024-01-01","status":"applied"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Fields, "Status")
}

func TestApplications_DeleteTwice(t *testing.T) {
	h, store := newTestRouter(t)
	require.Equal(t, http.StatusCreated, doRequest(t, h, http.MethodPost, "/applications", validCreateBody).Code)

	rec := doRequest(t, h, http.MethodDelete, "/applications/1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, 0, store.Len())

	rec = doRequest(t, h, http.MethodDelete, "/applications/1", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "1")
}

func TestApplications_InvalidIDsNeverOpenSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mocks.NewMockApplicationStoreFactory(ctrl)
	// No Begin expectation: any session would fail the test.
	h := NewRouter(RouterServices{
		Applications: service.NewApplicationService(service.ApplicationServiceOptions{}),
		Sessions:     factory,
	})

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/applications/0"},
		{http.MethodGet, "/applications/-3"},
		{http.MethodGet, "/applications/abc"},
		{http.MethodDelete, "/applications/0"},
		{http.MethodDelete, "/applications/-1"},
	}
	for _, tc := range cases {
		rec := doRequest(t, h, tc.method, tc.path, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, "%s %s", tc.method, tc.path)
		assert.Equal(t, MsgInvalidID, decodeError(t, rec).Message)
	}
}

func TestApplications_StoreFailures(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{"internal", errors.New("connection refused"), http.StatusInternalServerError, "list_failed"},
		{"timeout", apperrors.Wrap(context.DeadlineExceeded, apperrors.ErrCodeTimeout, "operation timed out"), http.StatusGatewayTimeout, "timeout"},
		{"unavailable", apperrors.Wrap(errors.New("busy"), apperrors.ErrCodeUnavailable, "database busy"), http.StatusServiceUnavailable, "store_unavailable"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			factory := mocks.NewMockApplicationStoreFactory(ctrl)
			factory.EXPECT().Begin(gomock.Any()).Return(nil, tc.err)

			h := NewRouter(RouterServices{
				Applications: service.NewApplicationService(service.ApplicationServiceOptions{}),
				Sessions:     factory,
			})
			rec := doRequest(t, h, http.MethodGet, "/applications", "")
			require.Equal(t, tc.wantCode, rec.Code)
			assert.Equal(t, tc.wantErr, decodeError(t, rec).Error)
		})
	}
}

func TestApplications_SessionClosedAfterRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mocks.NewMockApplicationStoreFactory(ctrl)
	sess := mocks.NewMockApplicationSession(ctrl)

	gomock.InOrder(
		factory.EXPECT().Begin(gomock.Any()).Return(sess, nil),
		sess.EXPECT().FindByID(gomock.Any(), int64(5)).Return(nil, nil),
		sess.EXPECT().Close().Return(nil),
	)

	h := NewRouter(RouterServices{
		Applications: service.NewApplicationService(service.ApplicationServiceOptions{}),
		Sessions:     factory,
	})
	rec := doRequest(t, h, http.MethodDelete, "/applications/5", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
