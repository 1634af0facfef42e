package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"customerweb/internal/domain/customer"
	"customerweb/internal/infrastructure/http/web/dto"
	"customerweb/internal/infrastructure/http/web/views"
)

// CustomerIndexPath is where successful mutations redirect to.
const CustomerIndexPath = "/Customer"

// Notification messages of the customer pages.
const (
	MsgNoCustomersToDisplay = "There are no customers to display."
	MsgNoCustomersFound     = "No customers found."
	MsgCustomerNotAdded     = "Customer was not added."
	MsgNoCustomerToEdit     = "No matching customer found to edit."
	MsgNoCustomerToDelete   = "No matching customer found to delete."
)

// CustomerHandler is the customer controller: every action calls the
// Customer API once and picks a view from the returned status.
type CustomerHandler struct {
	*BaseHandler
	client customer.APIClient
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(base *BaseHandler, client customer.APIClient) *CustomerHandler {
	return &CustomerHandler{
		BaseHandler: base,
		client:      client,
	}
}

// RegisterRoutes mounts the customer pages on rg (expected: /Customer).
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.Index)
	rg.GET("/Index", h.Index)

	rg.GET("/Details", h.Details)
	rg.GET("/Details/:id", h.Details)

	rg.GET("/Create", h.CreateForm)
	rg.POST("/Create", h.Create)

	rg.GET("/Edit", h.EditForm)
	rg.GET("/Edit/:id", h.EditForm)
	rg.POST("/Edit/:id", h.Edit)

	rg.GET("/Delete", h.DeleteForm)
	rg.GET("/Delete/:id", h.DeleteForm)
	rg.POST("/Delete/:id", h.DeleteConfirmed)
}

// Index handles GET /Customer.
func (h *CustomerHandler) Index(c *gin.Context) {
	res, err := h.client.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	switch {
	case res.Status == http.StatusNoContent,
		customer.IsSuccess(res.Status) && len(res.Customers) == 0:
		h.Notification(c, http.StatusNoContent, MsgNoCustomersToDisplay)
	case customer.IsSuccess(res.Status):
		h.View(c, views.CustomerIndex, "Customers", res.Customers)
	case res.Status == http.StatusNotFound:
		h.Notification(c, http.StatusNotFound, MsgNoCustomersFound)
	case res.Status == http.StatusBadRequest:
		h.Notification(c, http.StatusBadRequest, MsgInvalidRequest)
	default:
		h.ErrorView(c)
	}
}

// Details handles GET /Customer/Details/:id.
func (h *CustomerHandler) Details(c *gin.Context) {
	h.showCustomer(c, views.CustomerDetails, "Details")
}

// EditForm handles GET /Customer/Edit/:id.
func (h *CustomerHandler) EditForm(c *gin.Context) {
	h.showCustomer(c, views.CustomerEdit, "Edit")
}

// DeleteForm handles GET /Customer/Delete/:id.
func (h *CustomerHandler) DeleteForm(c *gin.Context) {
	h.showCustomer(c, views.CustomerDelete, "Delete")
}

// CreateForm handles GET /Customer/Create.
func (h *CustomerHandler) CreateForm(c *gin.Context) {
	h.FormView(c, views.CustomerCreate, "Create", customer.Customer{}, nil)
}

// Create handles POST /Customer/Create.
func (h *CustomerHandler) Create(c *gin.Context) {
	model, ok := h.bindCustomer(c, views.CustomerCreate, "Create", 0)
	if !ok {
		return
	}

	res, err := h.client.Create(c.Request.Context(), model)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	switch {
	case res.Status == http.StatusNoContent:
		h.Notification(c, http.StatusNoContent, MsgCustomerNotAdded)
	case customer.IsSuccess(res.Status):
		h.RedirectTo(c, CustomerIndexPath)
	case res.Status == http.StatusBadRequest:
		h.Notification(c, http.StatusBadRequest, MsgInvalidRequest)
	default:
		h.ErrorView(c)
	}
}

// Edit handles POST /Customer/Edit/:id.
func (h *CustomerHandler) Edit(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		h.Notification(c, http.StatusBadRequest, MsgInvalidRequest)
		return
	}

	model, ok := h.bindCustomer(c, views.CustomerEdit, "Edit", id)
	if !ok {
		return
	}

	res, err := h.client.Update(c.Request.Context(), id, model)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	switch {
	case customer.IsSuccess(res.Status) && res.OK:
		h.RedirectTo(c, CustomerIndexPath)
	case customer.IsSuccess(res.Status), res.Status == http.StatusNotFound:
		h.Notification(c, http.StatusNotFound, MsgNoCustomerToEdit)
	case res.Status == http.StatusBadRequest:
		h.Notification(c, http.StatusBadRequest, MsgInvalidRequest)
	default:
		h.ErrorView(c)
	}
}

// DeleteConfirmed handles POST /Customer/Delete/:id.
func (h *CustomerHandler) DeleteConfirmed(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		h.Notification(c, http.StatusBadRequest, MsgInvalidRequest)
		return
	}

	res, err := h.client.Delete(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	switch {
	case customer.IsSuccess(res.Status) && res.OK:
		h.RedirectTo(c, CustomerIndexPath)
	case customer.IsSuccess(res.Status), res.Status == http.StatusNotFound:
		h.Notification(c, http.StatusNotFound, MsgNoCustomerToDelete)
	case res.Status == http.StatusBadRequest:
		h.Notification(c, http.StatusBadRequest, MsgInvalidRequest)
	default:
		h.ErrorView(c)
	}
}

// showCustomer fetches the :id customer and renders it with view name.
func (h *CustomerHandler) showCustomer(c *gin.Context, name, title string) {
	id, ok := h.ParseID(c)
	if !ok {
		h.Notification(c, http.StatusNotFound, MsgNoCustomersFound)
		return
	}

	res, err := h.client.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	switch {
	case customer.IsSuccess(res.Status) && res.Customer != nil:
		h.View(c, name, title, *res.Customer)
	case customer.IsSuccess(res.Status), res.Status == http.StatusNotFound:
		h.Notification(c, http.StatusNotFound, MsgNoCustomersFound)
	case res.Status == http.StatusBadRequest:
		h.Notification(c, http.StatusBadRequest, MsgInvalidRequest)
	default:
		h.ErrorView(c)
	}
}

// bindCustomer binds and validates the posted form. A non-zero id replaces
// the posted Id. On failure the response is already rendered and ok is
// false; no API call must follow.
func (h *CustomerHandler) bindCustomer(c *gin.Context, name, title string, id int) (customer.Customer, bool) {
	var form dto.CustomerForm
	if err := c.ShouldBind(&form); err != nil {
		h.Notification(c, http.StatusBadRequest, MsgInvalidRequest)
		return customer.Customer{}, false
	}

	model := form.ToModel()
	if id != 0 {
		model.ID = id
	}
	if err := model.Validate(); err != nil {
		h.FormView(c, name, title, model, customer.FieldErrorsOf(err))
		return model, false
	}
	return model, true
}
