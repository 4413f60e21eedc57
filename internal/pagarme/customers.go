package pagarme

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) CreateCustomer(ctx context.Context, params CustomerParams) (*Customer, error) {
	var customer Customer
	if err := c.do(ctx, http.MethodPost, "/customers", nil, params, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *Client) ListCustomers(ctx context.Context, params Payload) ([]Response, error) {
	return c.doList(ctx, "/customers", listQuery(params))
}

func (c *Client) GetCustomer(ctx context.Context, customerID string) (*Customer, error) {
	var customer Customer
	if err := c.do(ctx, http.MethodGet, "/customers/"+customerID, nil, nil, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, customerID string, data Payload) (Response, error) {
	var out Response
	if err := c.do(ctx, http.MethodPatch, "/customers/"+customerID, nil, data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteCustomer(ctx context.Context, customerID string) error {
	return c.do(ctx, http.MethodDelete, "/customers/"+customerID, nil, nil, nil)
}

func (c *Client) CreateCustomerAddress(ctx context.Context, customerID string, data Payload) (Response, error) {
	var out Response
	path := fmt.Sprintf("/customers/%s/addresses", customerID)
	if err := c.do(ctx, http.MethodPost, path, nil, data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListCustomerAddresses(ctx context.Context, customerID string, params Payload) ([]Response, error) {
	return c.doList(ctx, fmt.Sprintf("/customers/%s/addresses", customerID), listQuery(params))
}

func (c *Client) GetCustomerAddress(ctx context.Context, customerID, addressID string) (Response, error) {
	var out Response
	path := fmt.Sprintf("/customers/%s/addresses/%s", customerID, addressID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteCustomerAddress(ctx context.Context, customerID, addressID string) error {
	path := fmt.Sprintf("/customers/%s/addresses/%s", customerID, addressID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
