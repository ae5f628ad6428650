package handlers

import (
	"net/http"

	"service-rental/internal/logx"
)

// MotoHandler serves HTTP endpoints for moto resources.
type MotoHandler struct {
	logger logx.Logger
	uc     motoUsecase
}

// NewMotoHandler wires a moto usecase into HTTP handlers.
func NewMotoHandler(logger logx.Logger, uc motoUsecase) *MotoHandler {
	return &MotoHandler{logger: orNop(logger), uc: uc}
}

// Create handles POST /motos.
func (h *MotoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMotoRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	m, err := h.uc.Register(r.Context(), req.toInput())
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", "/motos/"+m.ID.String())
	writeJSON(h.logger, w, r, http.StatusCreated, motoToResponse(m))
}

// GetByID handles GET /motos/{id}.
func (h *MotoHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error(), "id")
		return
	}

	m, err := h.uc.Get(r.Context(), id)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, motoToResponse(m))
}

// List handles GET /motos with an optional ?plate= filter.
func (h *MotoHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.List(r.Context(), r.URL.Query().Get("plate"))
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, motosToResponse(list))
}

// UpdatePlate handles PUT /motos/{id}/plate.
func (h *MotoHandler) UpdatePlate(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error(), "id")
		return
	}
	var req updatePlateRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	m, err := h.uc.UpdatePlate(r.Context(), id, req.Plate)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, motoToResponse(m))
}

// Delete handles DELETE /motos/{id}.
func (h *MotoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error(), "id")
		return
	}

	if err := h.uc.Delete(r.Context(), id); err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
