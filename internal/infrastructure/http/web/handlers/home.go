package handlers

import (
	"github.com/gin-gonic/gin"

	"customerweb/internal/infrastructure/http/web/dto"
	"customerweb/internal/infrastructure/http/web/middleware"
	"customerweb/internal/infrastructure/http/web/views"
)

// ErrorPath is the page the exception middleware redirects to.
const ErrorPath = "/Home/Error"

// MsgUnexpectedError is shown on the error landing page.
const MsgUnexpectedError = "An error occurred while processing your request."

// HomeHandler serves the landing, privacy and error pages.
type HomeHandler struct {
	*BaseHandler
}

// NewHomeHandler creates a new home handler.
func NewHomeHandler(base *BaseHandler) *HomeHandler {
	return &HomeHandler{BaseHandler: base}
}

// RegisterRoutes mounts the home pages on the router root.
func (h *HomeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.Index)
	rg.GET("/Home", h.Index)
	rg.GET("/Home/Index", h.Index)
	rg.GET("/Home/Privacy", h.Privacy)
	rg.GET(ErrorPath, h.Error)
}

// Index handles GET /.
func (h *HomeHandler) Index(c *gin.Context) {
	h.View(c, views.HomeIndex, "Home", nil)
}

// Privacy handles GET /Home/Privacy.
func (h *HomeHandler) Privacy(c *gin.Context) {
	h.View(c, views.HomePrivacy, "Privacy Policy", nil)
}

// Error handles GET /Home/Error.
// The request id of the failed request arrives in the requestId query.
func (h *HomeHandler) Error(c *gin.Context) {
	requestID := c.Query("requestId")
	if requestID == "" {
		requestID = c.GetString(middleware.ContextKeyRequestID)
	}

	h.View(c, views.Error, "Error", dto.ErrorViewModel{
		RequestID: requestID,
		Message:   MsgUnexpectedError,
	})
}
