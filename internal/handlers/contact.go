package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"restoration-admin-backend/internal/models"
	"restoration-admin-backend/internal/services"
)

type ContactHandler struct {
	store *services.RequestStore
	links *services.ContactLinks
}

func NewContactHandler(store *services.RequestStore, links *services.ContactLinks) *ContactHandler {
	return &ContactHandler{
		store: store,
		links: links,
	}
}

// GetContactLinks godoc
// @Summary     Customer contact links
// @Description Returns a prefilled mailto link and, when the customer has a phone, a WhatsApp chat link
// @Tags        requests
// @Produce     json
// @Param       request_id path string true "Request ID"
// @Success     200 {object} models.ContactLinksResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /requests/{request_id}/contact [get]
func (h *ContactHandler) GetContactLinks(c *gin.Context) {
	req, ok := h.store.Get(c.Param("request_id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "request not found"})
		return
	}

	resp := models.ContactLinksResponse{
		RequestID: req.ID,
		Mailto:    h.links.Mailto(req),
	}
	if link, ok := h.links.WhatsApp(req); ok {
		resp.WhatsApp = &link
	}

	c.JSON(http.StatusOK, resp)
}
