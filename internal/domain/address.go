package domain

// Address is owned exclusively by the customer (or standalone record) it is
// attached to. The house number is folded into Street.
type Address struct {
	ID         int32  `json:"id"`
	Street     string `json:"street"`
	PostalCode int32  `json:"postal_code"`
	City       string `json:"city"`
}
