// Package handlers provides HTTP request handlers.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"customerweb/internal/domain/customer"
	"customerweb/internal/infrastructure/http/web/dto"
	"customerweb/internal/infrastructure/http/web/middleware"
	"customerweb/internal/infrastructure/http/web/views"
)

// Canned user-facing messages.
const (
	MsgInvalidRequest      = "Invalid request."
	MsgInternalServerError = "Internal Server Error!"
)

// BaseHandler provides common handler utilities.
type BaseHandler struct{}

// NewBaseHandler creates a new base handler.
func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// HandleError registers error on Gin context and aborts request.
// The response is produced by middleware.Exception.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// View renders a template with 200 OK.
func (h *BaseHandler) View(c *gin.Context, name, title string, model any) {
	h.render(c, http.StatusOK, name, dto.Page{Title: title, Model: model})
}

// FormView redisplays a form with its submitted model and field messages.
func (h *BaseHandler) FormView(c *gin.Context, name, title string, model any, errs customer.FieldErrors) {
	h.render(c, http.StatusOK, name, dto.Page{Title: title, Model: model, Errors: errs})
}

// Notification renders the notification view for an expected non-success
// outcome; status only labels the message.
func (h *BaseHandler) Notification(c *gin.Context, status int, message string) {
	h.render(c, http.StatusOK, views.Notification, dto.Page{
		Title: "Notification",
		Model: dto.NewNotification(status, message),
	})
}

// ErrorView renders the generic error view with 500.
func (h *BaseHandler) ErrorView(c *gin.Context) {
	h.render(c, http.StatusInternalServerError, views.Error, dto.Page{
		Title: "Error",
		Model: dto.ErrorViewModel{
			RequestID: c.GetString(middleware.ContextKeyRequestID),
			Message:   MsgInternalServerError,
		},
	})
}

// RedirectTo answers 302 Found to path.
func (h *BaseHandler) RedirectTo(c *gin.Context, path string) {
	c.Redirect(http.StatusFound, path)
}

// ParseID reads the :id path parameter. ok is false when it is absent or
// not a number.
func (h *BaseHandler) ParseID(c *gin.Context) (int, bool) {
	raw := c.Param("id")
	if raw == "" {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (h *BaseHandler) render(c *gin.Context, status int, name string, page dto.Page) {
	page.Token = c.GetString(middleware.ContextKeyAntiForgery)
	c.HTML(status, name, page)
}
