package customerapi

import "customerweb/internal/domain/customer"

// ToModel converts the wire DTO to the view model.
func (d CustomerDTO) ToModel() customer.Customer {
	return customer.Customer{
		ID:      d.ID,
		Name:    d.Name,
		Email:   d.Email,
		Address: d.Address,
	}
}

// FromModel converts the view model to the wire DTO.
func FromModel(c customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Address: c.Address,
	}
}

// ToModels converts a list of DTOs, preserving order.
func ToModels(dtos []CustomerDTO) []customer.Customer {
	out := make([]customer.Customer, len(dtos))
	for i, d := range dtos {
		out[i] = d.ToModel()
	}
	return out
}
