package handlers

import (
	"context"
	"net/http"

	"drillflow-dispatch/internal/logx"
)

// ContractorHandler serves HTTP endpoints for contractor resources.
type ContractorHandler struct {
	usecase contractorUsecase
	logger  logx.Logger
}

// NewContractorHandler wires a contractor usecase into HTTP handlers.
func NewContractorHandler(logger logx.Logger, uc contractorUsecase) *ContractorHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &ContractorHandler{usecase: uc, logger: logger}
}

// GetByID handles GET /contractors/{id}.
func (h *ContractorHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	c, err := h.usecase.Get(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, contractorToResponse(*c))
}

// List handles GET /contractors.
func (h *ContractorHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pagination(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}
	list, err := h.usecase.List(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, contractorsToResponse(list))
}

// Create handles POST /contractors.
func (h *ContractorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createContractorRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	id, err := h.usecase.Create(r.Context(), req.toModel())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", "/contractors/"+id)
	writeJSON(h.logger, w, r, http.StatusCreated, map[string]any{"id": id})
}

// Update handles PATCH /contractors/{id} with partial updates from the request body.
func (h *ContractorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req updateContractorRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if _, err := h.usecase.UpdatePartial(r.Context(), req.toModel(id)); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// Block handles POST /contractors/{id}/block.
func (h *ContractorHandler) Block(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.usecase.Block)
}

// Activate handles POST /contractors/{id}/activate.
func (h *ContractorHandler) Activate(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.usecase.Activate)
}

func (h *ContractorHandler) setStatus(w http.ResponseWriter, r *http.Request, apply func(ctx context.Context, id string) error) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	if err := apply(r.Context(), id); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, map[string]string{"status": "ok"})
}
