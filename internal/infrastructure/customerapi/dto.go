package customerapi

// CustomerDTO is the wire representation of a customer exchanged with the
// remote API. Decoding is case-insensitive, so PascalCase payloads decode too.
type CustomerDTO struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}
