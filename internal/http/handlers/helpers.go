package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"service-rental/internal/apperr"
	"service-rental/internal/logx"
)

const bodyLimit = 1 << 20

var errInvalidID = errors.New("invalid id")

func reqID(r *http.Request) logx.Field {
	id := middleware.GetReqID(r.Context())
	if id == "" {
		id = "-"
	}
	return logx.String("request_id", id)
}

func writeJSON(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		logger.Error("json encode error", reqID(r), logx.Err(err))
	}
}

type errResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

func writeError(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, msg string, fields ...string) {
	logger.Debug("http error",
		reqID(r),
		logx.Int("status", status),
		logx.String("error", msg),
	)
	writeJSON(logger, w, r, status, errResponse{Error: msg, Fields: fields})
}

// writeAppError maps service errors onto HTTP statuses. Anything that is not
// a validation, conflict or not-found error is reported as 500 without
// leaking the cause.
func writeAppError(logger logx.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var (
		ve *apperr.ValidationError
		ce *apperr.ConflictError
	)
	switch {
	case errors.As(err, &ve):
		writeError(logger, w, r, http.StatusBadRequest, ve.Error(), ve.Fields...)
	case errors.Is(err, apperr.ErrInvalid):
		writeError(logger, w, r, http.StatusBadRequest, err.Error())
	case errors.As(err, &ce):
		writeError(logger, w, r, http.StatusConflict, ce.Error())
	case errors.Is(err, apperr.ErrConflict):
		writeError(logger, w, r, http.StatusConflict, "unique constraint violation")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(logger, w, r, http.StatusNotFound, "not found")
	default:
		logger.Error("request failed", reqID(r), logx.String("path", r.URL.Path), logx.Err(err))
		writeError(logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

func decodeJSON[T any](logger logx.Logger, w http.ResponseWriter, r *http.Request, dst *T) bool {
	r.Body = http.MaxBytesReader(w, r.Body, bodyLimit)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			writeError(logger, w, r, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		if errors.Is(err, errBirthDate) {
			writeError(logger, w, r, http.StatusBadRequest, err.Error(), "birthDate")
			return false
		}
		writeError(logger, w, r, http.StatusBadRequest, "invalid json")
		return false
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		writeError(logger, w, r, http.StatusBadRequest, "invalid json: trailing data")
		return false
	}
	return true
}

func idFromURL(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, errInvalidID
	}
	return id, nil
}
