package client

import (
	"context"
	"fmt"

	"bibliothek-backend/internal/domain"
)

// Customers

func (c *Client) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	var customers []domain.Customer
	err := c.do(ctx, "GET", "/customers", nil, &customers)
	return customers, err
}

func (c *Client) GetCustomer(ctx context.Context, id int32) (*domain.Customer, error) {
	customer := &domain.Customer{}
	if err := c.do(ctx, "GET", fmt.Sprintf("/customers/%d", id), nil, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// QueryCustomers filters server-side by one field, e.g. "family_name" or
// "street".
func (c *Client) QueryCustomers(ctx context.Context, field, value string) ([]domain.Customer, error) {
	var customers []domain.Customer
	err := c.do(ctx, "GET", queryPath("/customers", field, value), nil, &customers)
	return customers, err
}

func (c *Client) CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	created := &domain.Customer{}
	if err := c.do(ctx, "POST", "/customers", customer, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, id int32, customer *domain.Customer) (*domain.Customer, error) {
	updated := &domain.Customer{}
	if err := c.do(ctx, "PUT", fmt.Sprintf("/customers/%d", id), customer, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *Client) DeleteCustomer(ctx context.Context, id int32) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/customers/%d", id), nil, nil)
}

// Addresses

func (c *Client) ListAddresses(ctx context.Context) ([]domain.Address, error) {
	var addresses []domain.Address
	err := c.do(ctx, "GET", "/addresses", nil, &addresses)
	return addresses, err
}

func (c *Client) GetAddress(ctx context.Context, id int32) (*domain.Address, error) {
	address := &domain.Address{}
	if err := c.do(ctx, "GET", fmt.Sprintf("/addresses/%d", id), nil, address); err != nil {
		return nil, err
	}
	return address, nil
}

// QueryAddresses filters server-side by "street" or "postal_code".
func (c *Client) QueryAddresses(ctx context.Context, field, value string) ([]domain.Address, error) {
	var addresses []domain.Address
	err := c.do(ctx, "GET", queryPath("/addresses", field, value), nil, &addresses)
	return addresses, err
}

func (c *Client) CreateAddress(ctx context.Context, address *domain.Address) (*domain.Address, error) {
	created := &domain.Address{}
	if err := c.do(ctx, "POST", "/addresses", address, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *Client) UpdateAddress(ctx context.Context, id int32, address *domain.Address) (*domain.Address, error) {
	updated := &domain.Address{}
	if err := c.do(ctx, "PUT", fmt.Sprintf("/addresses/%d", id), address, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *Client) DeleteAddress(ctx context.Context, id int32) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/addresses/%d", id), nil, nil)
}

// Media

func (c *Client) ListMedia(ctx context.Context) ([]domain.Medium, error) {
	var media []domain.Medium
	err := c.do(ctx, "GET", "/media", nil, &media)
	return media, err
}

func (c *Client) GetMedium(ctx context.Context, id int32) (*domain.Medium, error) {
	medium := &domain.Medium{}
	if err := c.do(ctx, "GET", fmt.Sprintf("/media/%d", id), nil, medium); err != nil {
		return nil, err
	}
	return medium, nil
}

// QueryMedia filters server-side by "title" or "available".
func (c *Client) QueryMedia(ctx context.Context, field, value string) ([]domain.Medium, error) {
	var media []domain.Medium
	err := c.do(ctx, "GET", queryPath("/media", field, value), nil, &media)
	return media, err
}

func (c *Client) CreateMedium(ctx context.Context, medium *domain.Medium) (*domain.Medium, error) {
	created := &domain.Medium{}
	if err := c.do(ctx, "POST", "/media", medium, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *Client) UpdateMedium(ctx context.Context, id int32, patch *domain.MediumPatch) (*domain.Medium, error) {
	updated := &domain.Medium{}
	if err := c.do(ctx, "PUT", fmt.Sprintf("/media/%d", id), patch, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *Client) DeleteMedium(ctx context.Context, id int32) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/media/%d", id), nil, nil)
}

// Borrowings

func (c *Client) ListBorrowings(ctx context.Context) ([]domain.Borrowing, error) {
	var borrowings []domain.Borrowing
	err := c.do(ctx, "GET", "/borrowings", nil, &borrowings)
	return borrowings, err
}

// ListCustomerBorrowings returns the hydrated borrowings of one customer.
func (c *Client) ListCustomerBorrowings(ctx context.Context, customerID int32) ([]domain.Borrowing, error) {
	var borrowings []domain.Borrowing
	err := c.do(ctx, "GET", fmt.Sprintf("/customers/%d/borrowings", customerID), nil, &borrowings)
	return borrowings, err
}

func (c *Client) GetBorrowingByMedium(ctx context.Context, mediumID int32) (*domain.Borrowing, error) {
	borrowing := &domain.Borrowing{}
	if err := c.do(ctx, "GET", fmt.Sprintf("/borrowings/media/%d", mediumID), nil, borrowing); err != nil {
		return nil, err
	}
	return borrowing, nil
}

func (c *Client) CreateBorrowing(ctx context.Context, customerID, mediumID int32) (*domain.Borrowing, error) {
	created := &domain.Borrowing{}
	payload := &domain.Borrowing{CustomerID: customerID, MediumID: mediumID}
	if err := c.do(ctx, "POST", "/borrowings", payload, created); err != nil {
		return nil, err
	}
	return created, nil
}

// ExtendBorrowing adds one 14-day step; domain.ErrExtensionDenied when the
// loan is already at the cap.
func (c *Client) ExtendBorrowing(ctx context.Context, mediumID int32) (*domain.Borrowing, error) {
	extended := &domain.Borrowing{}
	if err := c.do(ctx, "PUT", fmt.Sprintf("/borrowings/media/%d", mediumID), nil, extended); err != nil {
		return nil, err
	}
	return extended, nil
}

// ReturnBorrowing removes the active borrowing for a medium. A repeated
// return reports domain.ErrNotFound.
func (c *Client) ReturnBorrowing(ctx context.Context, mediumID int32) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/borrowings/media/%d", mediumID), nil, nil)
}
