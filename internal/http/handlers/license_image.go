package handlers

import (
	"errors"
	"io"
	"net/http"

	"service-rental/internal/logx"
)

const (
	uploadField = "file"
	// multipartOverhead covers boundaries and part headers around the file.
	multipartOverhead = 64 << 10
	// formMemory bounds the part of the form buffered in memory; larger
	// parts spill to temporary files.
	formMemory = 1 << 20
)

// LicenseImageHandler accepts license image uploads for couriers.
type LicenseImageHandler struct {
	logger  logx.Logger
	uc      licenseImageUsecase
	maxSize int64
}

// NewLicenseImageHandler wires a license image usecase. maxSize is the
// largest accepted file in bytes.
func NewLicenseImageHandler(logger logx.Logger, uc licenseImageUsecase, maxSize int64) *LicenseImageHandler {
	return &LicenseImageHandler{logger: orNop(logger), uc: uc, maxSize: maxSize}
}

// Upload handles POST /couriers/{id}/license-image with a multipart "file" field.
func (h *LicenseImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error(), "id")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize+multipartOverhead)
	if err := r.ParseMultipartForm(formMemory); err != nil {
		h.writeFormError(w, r, err)
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		h.writeFormError(w, r, err)
		return
	}
	defer file.Close()

	if header.Size > h.maxSize {
		writeError(h.logger, w, r, http.StatusRequestEntityTooLarge, "file too large", uploadField)
		return
	}
	data, err := io.ReadAll(io.LimitReader(file, h.maxSize+1))
	if err != nil {
		h.writeFormError(w, r, err)
		return
	}
	if int64(len(data)) > h.maxSize {
		writeError(h.logger, w, r, http.StatusRequestEntityTooLarge, "file too large", uploadField)
		return
	}

	path, err := h.uc.Attach(r.Context(), id, data, header.Header.Get("Content-Type"))
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, licenseImageResponse{Path: path})
}

func (h *LicenseImageHandler) writeFormError(w http.ResponseWriter, r *http.Request, err error) {
	var mbe *http.MaxBytesError
	switch {
	case errors.As(err, &mbe):
		writeError(h.logger, w, r, http.StatusRequestEntityTooLarge, "file too large", uploadField)
	case errors.Is(err, http.ErrMissingFile):
		writeError(h.logger, w, r, http.StatusBadRequest, "file is required", uploadField)
	default:
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid multipart form", uploadField)
	}
}
