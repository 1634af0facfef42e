// Package dto provides the form and view models exchanged with the browser.
package dto

import (
	"net/http"

	"customerweb/internal/domain/customer"
)

// --- Page ---

// Page is the data passed to every template.
type Page struct {
	Title string

	// Model is the view-specific payload (customer list, customer,
	// NotificationModel, ErrorViewModel).
	Model any

	// Errors holds per-field validation messages for form views.
	Errors customer.FieldErrors

	// Token is the anti-forgery token embedded in forms.
	Token string
}

// HasError reports whether a field has a validation message.
func (p Page) HasError(field string) bool {
	_, ok := p.Errors[field]
	return ok
}

// --- Notification ---

// NotificationModel is shown for expected non-success outcomes.
type NotificationModel struct {
	StatusCode string
	Message    string
}

// NewNotification builds a notification labelled with the status text
// ("Not Found", "No Content", ...).
func NewNotification(status int, message string) NotificationModel {
	return NotificationModel{
		StatusCode: http.StatusText(status),
		Message:    message,
	}
}

// --- Error ---

// ErrorViewModel is shown for unexpected failures.
type ErrorViewModel struct {
	RequestID string
	Message   string
}

// ShowRequestID reports whether the request id should be displayed.
func (e ErrorViewModel) ShowRequestID() bool {
	return e.RequestID != ""
}
