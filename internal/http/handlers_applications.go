// Package httpx provides HTTP handlers and utilities for the job tracker API.
package httpx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/target/jobtracker-api/internal/core"
	"github.com/target/jobtracker-api/internal/domain/model"
	apperrors "github.com/target/jobtracker-api/internal/errors"
	"github.com/target/jobtracker-api/internal/mapper"
	"github.com/target/jobtracker-api/internal/service"
)

// Response messages shared by the application handlers.
const (
	MsgInvalidID     = "Invalid application ID."
	MsgInvalidStatus = "Invalid status value."
)

// statusClientClosedRequest is the non-standard code used when the caller
// went away before the store answered.
const statusClientClosedRequest = 499

// ApplicationHandlers provides HTTP handlers for job application CRUD.
// Every request that reaches the service runs against its own store session.
type ApplicationHandlers struct {
	Svc      *service.ApplicationService
	Sessions core.ApplicationStoreFactory
	Logger   *slog.Logger
}

func (h *ApplicationHandlers) logger() *slog.Logger {
	if h.Logger == nil {
		return slog.Default()
	}
	return h.Logger
}

// List handles GET /applications.
func (h *ApplicationHandlers) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.begin(w, r, "list_failed")
	if !ok {
		return
	}
	defer h.closeSession(r, sess)

	apps, err := h.Svc.List(r.Context(), sess)
	if err != nil {
		h.writeServiceError(w, r, "list_failed", err)
		return
	}
	WriteJSON(w, http.StatusOK, mapper.DomainsToViews(apps))
}

// Get handles GET /applications/{id}.
func (h *ApplicationHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "get")
	if !ok {
		return
	}

	sess, ok := h.begin(w, r, "get_failed")
	if !ok {
		return
	}
	defer h.closeSession(r, sess)

	h.logger().InfoContext(r.Context(), "fetching application", "id", id)
	app, err := h.Svc.GetByID(r.Context(), sess, id)
	if err != nil {
		h.writeServiceError(w, r, "get_failed", err)
		return
	}
	if app == nil {
		h.logger().WarnContext(r.Context(), "application not found", "id", id)
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: string(apperrors.ErrCodeNotFound),
			Err:     apperrors.NotFoundf("Application with ID %d not found.", id),
		})
		return
	}
	WriteJSON(w, http.StatusOK, mapper.DomainToView(*app))
}

// Create handles POST /applications.
func (h *ApplicationHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req *model.CreateApplicationRequest
	if !h.decode(w, r, "create", &req) {
		return
	}
	if req == nil {
		h.writeNullInput(w, r, "create")
		return
	}
	if err := req.Validate(); err != nil {
		h.writeValidation(w, r, "create", *req, err)
		return
	}
	app, err := mapper.CreateToDomain(*req)
	if err != nil {
		h.writeInvalidStatus(w, r, "create", req.Status, *req)
		return
	}

	sess, ok := h.begin(w, r, "create_failed")
	if !ok {
		return
	}
	defer h.closeSession(r, sess)

	created, err := h.Svc.Add(r.Context(), sess, &app)
	if err != nil {
		h.writeServiceError(w, r, "create_failed", err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/applications/%d", created.ID))
	WriteJSON(w, http.StatusCreated, mapper.DomainToView(*created))
}

// Update handles PUT /applications.
func (h *ApplicationHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req *model.UpdateApplicationRequest
	if !h.decode(w, r, "update", &req) {
		return
	}
	if req == nil {
		h.writeNullInput(w, r, "update")
		return
	}
	if err := req.Validate(); err != nil {
		h.writeValidation(w, r, "update", *req, err)
		return
	}
	app, err := mapper.UpdateToDomain(*req)
	if err != nil {
		h.writeInvalidStatus(w, r, "update", req.Status, *req)
		return
	}

	sess, ok := h.begin(w, r, "update_failed")
	if !ok {
		return
	}
	defer h.closeSession(r, sess)

	updated, err := h.Svc.Update(r.Context(), sess, &app)
	if err != nil {
		h.writeServiceError(w, r, "update_failed", err)
		return
	}
	WriteJSON(w, http.StatusOK, mapper.DomainToView(*updated))
}

// Delete handles DELETE /applications/{id}.
func (h *ApplicationHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "delete")
	if !ok {
		return
	}

	sess, ok := h.begin(w, r, "delete_failed")
	if !ok {
		return
	}
	defer h.closeSession(r, sess)

	if err := h.Svc.Delete(r.Context(), sess, id); err != nil {
		h.writeServiceError(w, r, "delete_failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// pathID parses the {id} path value. Ids that are not positive integers are
// rejected before any store session is opened.
func (h *ApplicationHandlers) pathID(w http.ResponseWriter, r *http.Request, op string) (int64, bool) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		h.logger().WarnContext(r.Context(), "invalid application id", "op", op, "id", raw)
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_id", Err: errors.New(MsgInvalidID)})
		return 0, false
	}
	return id, true
}

// decode reads the request payload, logging and answering every rejection.
func (h *ApplicationHandlers) decode(w http.ResponseWriter, r *http.Request, op string, dst any) bool {
	p, ok := decodeBody(r, dst)
	if ok {
		return true
	}
	h.logger().WarnContext(r.Context(), "rejected application payload",
		"op", op,
		"code", p.ErrCode,
		"error", p.Err,
		"fields", p.Fields,
	)
	WriteError(w, p)
	return false
}

func (h *ApplicationHandlers) begin(w http.ResponseWriter, r *http.Request, errCode string) (core.ApplicationSession, bool) {
	sess, err := h.Sessions.Begin(r.Context())
	if err != nil {
		h.writeServiceError(w, r, errCode, err)
		return nil, false
	}
	return sess, true
}

func (h *ApplicationHandlers) closeSession(r *http.Request, sess core.ApplicationSession) {
	if err := sess.Close(); err != nil {
		h.logger().WarnContext(r.Context(), "close store session", "error", err)
	}
}

func (h *ApplicationHandlers) writeNullInput(w http.ResponseWriter, r *http.Request, op string) {
	h.logger().WarnContext(r.Context(), "null application payload", "op", op)
	WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "null_input", Err: errNullBody})
}

func (h *ApplicationHandlers) writeValidation(w http.ResponseWriter, r *http.Request, op string, req any, err error) {
	fields := apperrors.GetFields(err)
	h.logger().WarnContext(r.Context(), "application payload failed validation", "op", op, "fields", fields, "request", req)
	WriteError(w, ErrorParams{
		Code:    http.StatusBadRequest,
		ErrCode: "validation_failed",
		Err:     errors.New(model.ValidationMessage),
		Fields:  fields,
	})
}

func (h *ApplicationHandlers) writeInvalidStatus(w http.ResponseWriter, r *http.Request, op, status string, req any) {
	h.logger().WarnContext(r.Context(), "invalid status value", "op", op, "status", status, "request", req)
	WriteError(w, ErrorParams{
		Code:    http.StatusBadRequest,
		ErrCode: "validation_failed",
		Err:     errors.New(model.ValidationMessage),
		Fields:  map[string]string{"Status": MsgInvalidStatus},
	})
}

// writeServiceError maps service and store failures to responses.
func (h *ApplicationHandlers) writeServiceError(w http.ResponseWriter, r *http.Request, errCode string, err error) {
	log := h.logger()
	switch {
	case apperrors.IsNotFound(err):
		log.WarnContext(r.Context(), "application not found", "error", err)
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: string(apperrors.ErrCodeNotFound),
			Err:     errors.New(apperrors.GetMessage(err)),
		})
	case errors.Is(err, service.ErrInvalidID):
		log.WarnContext(r.Context(), "invalid application id", "error", err)
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_id", Err: errors.New(MsgInvalidID)})
	case errors.Is(err, service.ErrNullInput):
		log.WarnContext(r.Context(), "null application payload", "code", errCode, "error", err)
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "null_input", Err: errNullBody})
	case apperrors.IsValidation(err):
		log.WarnContext(r.Context(), "store rejected application", "error", err)
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "validation_failed",
			Err:     errors.New(apperrors.GetMessage(err)),
			Fields:  apperrors.GetFields(err),
		})
	case apperrors.IsConflict(err):
		log.WarnContext(r.Context(), "store reported a conflict", "error", err)
		WriteError(w, ErrorParams{
			Code:    http.StatusConflict,
			ErrCode: string(apperrors.ErrCodeConflict),
			Err:     errors.New(apperrors.GetMessage(err)),
			Fields:  apperrors.GetFields(err),
		})
	case apperrors.IsCanceled(err) || errors.Is(err, context.Canceled):
		log.InfoContext(r.Context(), "request canceled before the store answered", "code", errCode, "error", err)
		WriteError(w, ErrorParams{
			Code:    statusClientClosedRequest,
			ErrCode: string(apperrors.ErrCodeCanceled),
			Err:     errors.New("request canceled"),
		})
	case apperrors.IsTimeout(err):
		log.ErrorContext(r.Context(), "store timeout", "error", err)
		WriteError(w, ErrorParams{Code: http.StatusGatewayTimeout, ErrCode: "timeout", Err: errors.New("request timed out")})
	case apperrors.IsUnavailable(err):
		log.ErrorContext(r.Context(), "store unavailable", "error", err)
		WriteError(w, ErrorParams{
			Code:    http.StatusServiceUnavailable,
			ErrCode: "store_unavailable",
			Err:     errors.New("store temporarily unavailable"),
		})
	default:
		log.ErrorContext(r.Context(), "application request failed", "code", errCode, "error", err)
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: errCode, Err: errors.New("internal server error")})
	}
}
