package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/target/jobtracker-api/internal/domain/model"
)

// MsgNullApplication is returned when a mutation arrives without a body.
const MsgNullApplication = "Application cannot be null."

// errNullBody marks an empty request body.
var errNullBody = errors.New(MsgNullApplication)

// decodeBody decodes exactly one JSON value from the request body. On failure it
// returns the error response to write. An empty body is reported as a null application.
func decodeBody(r *http.Request, dst any) (ErrorParams, bool) {
	dec := json.NewDecoder(r.Body)

	err := dec.Decode(dst)
	if err == nil {
		if trailing := dec.Decode(&struct{}{}); !errors.Is(trailing, io.EOF) {
			err = trailingDataError(trailing)
		}
	}
	switch {
	case err == nil:
		return ErrorParams{}, true
	case errors.Is(err, io.EOF):
		return ErrorParams{Code: http.StatusBadRequest, ErrCode: "null_input", Err: errNullBody}, false
	case errors.Is(err, model.ErrInvalidDate):
		return ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "validation_failed",
			Err:     errors.New(model.ValidationMessage),
			Fields:  map[string]string{"ApplicationDate": "The ApplicationDate field is invalid."},
		}, false
	}
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return ErrorParams{Code: http.StatusRequestEntityTooLarge, ErrCode: "body_too_large", Err: err}, false
	}
	return ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_json", Err: err}, false
}

// trailingDataError keeps body-size failures recognizable; anything else after
// the first value is malformed input.
func trailingDataError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return err
	}
	return errors.New("request body must contain a single JSON value")
}

// WriteJSON writes a JSON response with the given status code and data.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		// Response writer errors (e.g., client disconnect) can't be recovered from here.
		return
	}
}

// ErrorParams groups parameters for WriteError.
type ErrorParams struct {
	Code    int
	ErrCode string
	Err     error
	// Fields carries per-field validation messages (optional).
	Fields map[string]string
}

type errorBody struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// WriteError writes a JSON error response using ErrorParams.
func WriteError(w http.ResponseWriter, p ErrorParams) {
	msg := http.StatusText(p.Code)
	if p.Err != nil {
		msg = p.Err.Error()
	}
	WriteJSON(w, p.Code, errorBody{Error: p.ErrCode, Message: msg, Fields: p.Fields})
}
