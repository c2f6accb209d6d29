package handlers

import "github.com/gin-gonic/gin"

type Handlers struct {
	Health   *HealthHandler
	Requests *RequestsHandler
	Images   *ImagesHandler
	Contact  *ContactHandler
}

// Register mounts /health at the root and the dashboard API under /api/v1.
// apiMiddleware only applies to the /api/v1 group.
func (h *Handlers) Register(router *gin.Engine, apiMiddleware ...gin.HandlerFunc) {
	router.GET("/health", h.Health.Health)

	api := router.Group("/api/v1")
	api.Use(apiMiddleware...)

	api.GET("/requests", h.Requests.ListRequests)
	api.GET("/requests/summary", h.Requests.Summary)
	api.POST("/requests/refresh", h.Requests.Refresh)
	api.GET("/requests/:request_id", h.Requests.GetRequest)
	api.PATCH("/requests/:request_id/status", h.Requests.UpdateStatus)

	api.PUT("/requests/:request_id/restored-image", h.Images.SetRestoredImage)
	api.POST("/requests/:request_id/restored-image/upload", h.Images.UploadRestoredImage)
	api.GET("/requests/:request_id/images/:kind", h.Images.DownloadImage)

	api.GET("/requests/:request_id/contact", h.Contact.GetContactLinks)
}
