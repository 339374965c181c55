package domain

type Customer struct {
	ID        int32    `json:"id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
	BirthDate string   `json:"birth_date"`
	Address   *Address `json:"address,omitempty"`
}

// FullName is the display name used in borrowing rows and notices.
func (c *Customer) FullName() string {
	if c == nil {
		return ""
	}
	if c.FirstName == "" {
		return c.LastName
	}
	return c.FirstName + " " + c.LastName
}
