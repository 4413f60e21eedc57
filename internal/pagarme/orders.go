package pagarme

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) CreateOrder(ctx context.Context, params OrderParams) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodPost, "/orders", nil, params, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) ListOrders(ctx context.Context, params Payload) ([]Response, error) {
	return c.doList(ctx, "/orders", listQuery(params))
}

func (c *Client) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+orderID, nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) UpdateOrder(ctx context.Context, orderID string, data Payload) (Response, error) {
	var out Response
	if err := c.do(ctx, http.MethodPatch, "/orders/"+orderID, nil, data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CloseOrder(ctx context.Context, orderID string) (Response, error) {
	var out Response
	if err := c.do(ctx, http.MethodPost, "/orders/"+orderID+"/closed", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateOrderItem(ctx context.Context, orderID string, data Payload) (Response, error) {
	var out Response
	path := fmt.Sprintf("/orders/%s/items", orderID)
	if err := c.do(ctx, http.MethodPost, path, nil, data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateOrderItem(ctx context.Context, orderID, itemID string, data Payload) (Response, error) {
	var out Response
	path := fmt.Sprintf("/orders/%s/items/%s", orderID, itemID)
	if err := c.do(ctx, http.MethodPatch, path, nil, data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteOrderItem(ctx context.Context, orderID, itemID string) error {
	path := fmt.Sprintf("/orders/%s/items/%s", orderID, itemID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) DeleteAllOrderItems(ctx context.Context, orderID string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/orders/%s/items", orderID), nil, nil, nil)
}
