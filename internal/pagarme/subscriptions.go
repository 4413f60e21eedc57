package pagarme

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) CreateSubscription(ctx context.Context, data Payload) (Response, error) {
	var out Response
	if err := c.do(ctx, http.MethodPost, "/subscriptions", nil, data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListSubscriptions(ctx context.Context, params Payload) ([]Response, error) {
	return c.doList(ctx, "/subscriptions", listQuery(params))
}

func (c *Client) GetSubscription(ctx context.Context, subscriptionID string) (Response, error) {
	var out Response
	if err := c.do(ctx, http.MethodGet, "/subscriptions/"+subscriptionID, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CancelSubscription(ctx context.Context, subscriptionID string, data Payload) (Response, error) {
	var out Response
	if err := c.do(ctx, http.MethodDelete, "/subscriptions/"+subscriptionID, nil, data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateSubscriptionItem(ctx context.Context, subscriptionID string, data Payload) (Response, error) {
	var out Response
	path := fmt.Sprintf("/subscriptions/%s/items", subscriptionID)
	if err := c.do(ctx, http.MethodPost, path, nil, data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListSubscriptionItems(ctx context.Context, subscriptionID string, params Payload) ([]Response, error) {
	return c.doList(ctx, fmt.Sprintf("/subscriptions/%s/items", subscriptionID), listQuery(params))
}

func (c *Client) UpdateSubscriptionItem(ctx context.Context, subscriptionID, itemID string, data Payload) (Response, error) {
	var out Response
	path := fmt.Sprintf("/subscriptions/%s/items/%s", subscriptionID, itemID)
	if err := c.do(ctx, http.MethodPut, path, nil, data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteSubscriptionItem(ctx context.Context, subscriptionID, itemID string) error {
	path := fmt.Sprintf("/subscriptions/%s/items/%s", subscriptionID, itemID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) CreateSubscriptionItemUsage(ctx context.Context, subscriptionID, itemID string, data Payload) (Response, error) {
	var out Response
	path := fmt.Sprintf("/subscriptions/%s/items/%s/usages", subscriptionID, itemID)
	if err := c.do(ctx, http.MethodPost, path, nil, data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListSubscriptionItemUsages(ctx context.Context, subscriptionID, itemID string, params Payload) ([]Response, error) {
	path := fmt.Sprintf("/subscriptions/%s/items/%s/usages", subscriptionID, itemID)
	return c.doList(ctx, path, listQuery(params))
}

func (c *Client) ListSubscriptionCycles(ctx context.Context, subscriptionID string, params Payload) ([]Response, error) {
	return c.doList(ctx, fmt.Sprintf("/subscriptions/%s/cycles", subscriptionID), listQuery(params))
}

func (c *Client) GetSubscriptionCycle(ctx context.Context, subscriptionID, cycleID string) (Response, error) {
	var out Response
	path := fmt.Sprintf("/subscriptions/%s/cycles/%s", subscriptionID, cycleID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RenewSubscriptionCycle(ctx context.Context, subscriptionID string) (Response, error) {
	var out Response
	path := fmt.Sprintf("/subscriptions/%s/cycles", subscriptionID)
	if err := c.do(ctx, http.MethodPost, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListInvoices(ctx context.Context, params Payload) ([]Response, error) {
	return c.doList(ctx, "/invoices", listQuery(params))
}

func (c *Client) GetInvoice(ctx context.Context, invoiceID string) (Response, error) {
	var out Response
	if err := c.do(ctx, http.MethodGet, "/invoices/"+invoiceID, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
