package handlers

import (
	"net/http"

	"drillflow-dispatch/internal/domain"
	"drillflow-dispatch/internal/logx"
)

// OrderHandler serves distribution and order lifecycle endpoints.
type OrderHandler struct {
	usecase orderUsecase
	logger  logx.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(logger logx.Logger, uc orderUsecase) *OrderHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &OrderHandler{usecase: uc, logger: logger}
}

// Distribute handles POST /orders/{orderID}/distribute.
// @Summary Запустить распределение заказа
// @Tags orders
// @Produce json
// @Success 200 {object} runResultDTO
// @Failure 404 {object} ErrorResponse "order not found"
// @Failure 409 {object} ErrorResponse "order is not open or a run is in progress"
// @Failure 422 {object} ErrorResponse "no eligible contractors"
// @Router /orders/{orderID}/distribute [post]
func (h *OrderHandler) Distribute(w http.ResponseWriter, r *http.Request) {
	orderID, err := idFromURL(r, "orderID")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid order id")
		return
	}

	res, err := h.usecase.Distribute(r.Context(), orderID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, runResultToResponse(res))
}

// Respond handles POST /orders/{orderID}/offers/{contractorID}/response.
// A late or losing answer is still 200, the outcome says what happened.
func (h *OrderHandler) Respond(w http.ResponseWriter, r *http.Request) {
	orderID, err := idFromURL(r, "orderID")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid order id")
		return
	}
	contractorID, err := idFromURL(r, "contractorID")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid contractor id")
		return
	}
	var req respondRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	resp := domain.Response{OrderID: orderID, ContractorID: contractorID, Kind: req.Kind}
	if req.At != nil {
		resp.At = *req.At
	}
	outcome, err := h.usecase.HandleResponse(r.Context(), resp)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, respondResponse{Outcome: outcome})
}

// Offers handles GET /orders/{orderID}/offers and lists outstanding offers.
func (h *OrderHandler) Offers(w http.ResponseWriter, r *http.Request) {
	orderID, err := idFromURL(r, "orderID")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid order id")
		return
	}
	list, err := h.usecase.Offers(r.Context(), orderID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, offersToResponse(list))
}

// Cancel handles POST /orders/{orderID}/cancel.
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	orderID, err := idFromURL(r, "orderID")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid order id")
		return
	}
	o, err := h.usecase.Cancel(r.Context(), orderID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, orderToResponse(*o))
}

// Fail handles POST /orders/{orderID}/fail with an optional {"reason": "..."} body.
func (h *OrderHandler) Fail(w http.ResponseWriter, r *http.Request) {
	orderID, err := idFromURL(r, "orderID")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid order id")
		return
	}
	var req failRequest
	if ok := decodeOptionalJSON(h.logger, w, r, &req); !ok {
		return
	}
	o, err := h.usecase.Fail(r.Context(), orderID, req.Reason)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, orderToResponse(*o))
}

// Start handles POST /orders/{orderID}/start.
func (h *OrderHandler) Start(w http.ResponseWriter, r *http.Request) {
	orderID, req, ok := h.progress(w, r)
	if !ok {
		return
	}
	o, err := h.usecase.Start(r.Context(), orderID, req.ContractorID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, orderToResponse(*o))
}

// Complete handles POST /orders/{orderID}/complete with an optional customer rating.
func (h *OrderHandler) Complete(w http.ResponseWriter, r *http.Request) {
	orderID, req, ok := h.progress(w, r)
	if !ok {
		return
	}
	o, err := h.usecase.Complete(r.Context(), orderID, req.ContractorID, req.Rating)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, orderToResponse(*o))
}

func (h *OrderHandler) progress(w http.ResponseWriter, r *http.Request) (string, progressRequest, bool) {
	var req progressRequest
	orderID, err := idFromURL(r, "orderID")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid order id")
		return "", req, false
	}
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return "", req, false
	}
	return orderID, req, true
}
