package dto

import "customerweb/internal/domain/customer"

// CustomerForm is the form body posted by the create and edit views.
// Only the listed fields are bound.
type CustomerForm struct {
	ID      int    `form:"Id"`
	Name    string `form:"Name"`
	Email   string `form:"Email"`
	Address string `form:"Address"`
}

// ToModel converts the submitted form to the view model.
func (f *CustomerForm) ToModel() customer.Customer {
	return customer.Customer{
		ID:      f.ID,
		Name:    f.Name,
		Email:   f.Email,
		Address: f.Address,
	}
}
