package domain

import (
	"regexp"
)

// Permissive on purpose: local-part@domain with at least one dot in the
// domain. The backend has the final word on format.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateCustomer checks a customer submission, including its owned
// address. All fields are checked before reporting.
func ValidateCustomer(c *Customer) error {
	var msgs []string
	if c.FirstName == "" {
		msgs = append(msgs, "first name is required")
	}
	if c.LastName == "" {
		msgs = append(msgs, "last name is required")
	}
	if c.Email == "" {
		msgs = append(msgs, "email is required")
	} else if !emailPattern.MatchString(c.Email) {
		msgs = append(msgs, "invalid email format")
	}
	if c.BirthDate == "" {
		msgs = append(msgs, "birth date is required")
	}
	if c.Address == nil {
		msgs = append(msgs, "address is required")
	} else {
		if c.Address.Street == "" {
			msgs = append(msgs, "street is required")
		}
		if c.Address.PostalCode <= 0 {
			msgs = append(msgs, "valid postal code is required")
		}
	}
	if len(msgs) > 0 {
		return &ValidationError{Messages: msgs}
	}
	return nil
}

// ValidateAddress checks a standalone address submission.
func ValidateAddress(a *Address) error {
	var msgs []string
	if a.Street == "" {
		msgs = append(msgs, "street is required")
	}
	if a.PostalCode <= 0 {
		msgs = append(msgs, "valid postal code is required")
	}
	if a.City == "" {
		msgs = append(msgs, "city is required")
	}
	if len(msgs) > 0 {
		return &ValidationError{Messages: msgs}
	}
	return nil
}

// ValidateMedium checks a new medium submission. Title and author are the
// only required fields.
func ValidateMedium(m *Medium) error {
	var msgs []string
	if m.Title == "" {
		msgs = append(msgs, "title is required")
	}
	if m.Author == "" {
		msgs = append(msgs, "author is required")
	}
	if m.Rating < 0 || m.Rating > 5 {
		msgs = append(msgs, "rating must be between 0 and 5")
	}
	if len(msgs) > 0 {
		return &ValidationError{Messages: msgs}
	}
	return nil
}

// ValidateBorrowing checks a checkout submission. The duration is defaulted
// elsewhere, so only the references are required here.
func ValidateBorrowing(b *Borrowing) error {
	var msgs []string
	if b.CustomerID <= 0 {
		msgs = append(msgs, "customer id is required")
	}
	if b.MediumID <= 0 {
		msgs = append(msgs, "medium id is required")
	}
	if len(msgs) > 0 {
		return &ValidationError{Messages: msgs}
	}
	return nil
}
