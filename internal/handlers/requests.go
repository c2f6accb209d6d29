package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"restoration-admin-backend/internal/models"
	"restoration-admin-backend/internal/services"
)

type RequestsHandler struct {
	store *services.RequestStore
}

func NewRequestsHandler(store *services.RequestStore) *RequestsHandler {
	return &RequestsHandler{
		store: store,
	}
}

// ListRequests godoc
// @Summary     List restoration requests
// @Description Returns the loaded requests filtered by status and a search over name, email and phone
// @Tags        requests
// @Produce     json
// @Param       status query string false "pending, processing, completed, cancelled or all"
// @Param       search query string false "Case-insensitive search"
// @Success     200 {object} models.RequestListResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /requests [get]
func (h *RequestsHandler) ListRequests(c *gin.Context) {
	query := services.Query{
		Status: c.DefaultQuery("status", services.StatusFilterAll),
		Search: c.Query("search"),
	}
	if !services.ValidStatusFilter(query.Status) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid status filter",
			Message: query.Status,
		})
		return
	}

	state := h.store.State()
	filtered := services.Filter(state.Requests, query)

	c.JSON(http.StatusOK, models.RequestListResponse{
		Requests: filtered,
		Total:    len(state.Requests),
		Filtered: len(filtered),
		Loading:  state.Loading,
		Error:    state.Error,
	})
}

// Summary godoc
// @Summary     Dashboard summary
// @Description Counts per status, the first pending requests and the most recent ones
// @Tags        requests
// @Produce     json
// @Success     200 {object} models.SummaryResponse
// @Router      /requests/summary [get]
func (h *RequestsHandler) Summary(c *gin.Context) {
	state := h.store.State()

	c.JSON(http.StatusOK, models.SummaryResponse{
		Counts:   services.CountByStatus(state.Requests),
		Priority: services.Priority(state.Requests),
		Recent:   services.Recent(state.Requests),
		Loading:  state.Loading,
		Error:    state.Error,
	})
}

// Refresh godoc
// @Summary     Reload requests
// @Description Re-reads every request from the backend
// @Tags        requests
// @Produce     json
// @Success     200 {object} models.RequestListResponse
// @Failure     502 {object} models.RequestListResponse
// @Router      /requests/refresh [post]
func (h *RequestsHandler) Refresh(c *gin.Context) {
	h.store.Fetch()
	state := h.store.State()

	status := http.StatusOK
	if state.Error != nil {
		status = http.StatusBadGateway
	}

	c.JSON(status, models.RequestListResponse{
		Requests: state.Requests,
		Total:    len(state.Requests),
		Filtered: len(state.Requests),
		Loading:  state.Loading,
		Error:    state.Error,
	})
}

// GetRequest godoc
// @Summary     Get a request
// @Tags        requests
// @Produce     json
// @Param       request_id path string true "Request ID"
// @Success     200 {object} models.RequestResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /requests/{request_id} [get]
func (h *RequestsHandler) GetRequest(c *gin.Context) {
	req, ok := h.store.Get(c.Param("request_id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "request not found"})
		return
	}

	c.JSON(http.StatusOK, models.RequestResponse{Request: req})
}

// UpdateStatus godoc
// @Summary     Change a request's status
// @Description Writes the status to the backend, then updates the local record. Unknown statuses are stored as pending.
// @Tags        requests
// @Accept      json
// @Produce     json
// @Param       request_id path string true "Request ID"
// @Param       request body models.UpdateStatusRequest true "New status and optional notes"
// @Success     200 {object} models.RequestResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /requests/{request_id}/status [patch]
func (h *RequestsHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("request_id")

	var body models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	if _, ok := h.store.Get(id); !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "request not found"})
		return
	}

	if !h.store.UpdateStatus(id, body.Status, body.Notes) {
		c.JSON(http.StatusBadGateway, storeFailure(h.store, "failed to update status"))
		return
	}

	updated, _ := h.store.Get(id)
	c.JSON(http.StatusOK, models.RequestResponse{Request: updated})
}

func storeFailure(store *services.RequestStore, errText string) models.ErrorResponse {
	resp := models.ErrorResponse{Error: errText}
	if msg := store.Error(); msg != nil {
		resp.Message = *msg
	}
	return resp
}
