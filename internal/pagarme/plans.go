package pagarme

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) CreatePlan(ctx context.Context, data Payload) (Response, error) {
	var out Response
	if err := c.do(ctx, http.MethodPost, "/plans", nil, data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListPlans(ctx context.Context, params Payload) ([]Response, error) {
	return c.doList(ctx, "/plans", listQuery(params))
}

func (c *Client) GetPlan(ctx context.Context, planID string) (Response, error) {
	var out Response
	if err := c.do(ctx, http.MethodGet, "/plans/"+planID, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdatePlan(ctx context.Context, planID string, data Payload) (Response, error) {
	var out Response
	if err := c.do(ctx, http.MethodPut, "/plans/"+planID, nil, data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeletePlan(ctx context.Context, planID string) error {
	return c.do(ctx, http.MethodDelete, "/plans/"+planID, nil, nil, nil)
}

func (c *Client) CreatePlanItem(ctx context.Context, planID string, data Payload) (Response, error) {
	var out Response
	path := fmt.Sprintf("/plans/%s/items", planID)
	if err := c.do(ctx, http.MethodPost, path, nil, data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdatePlanItem(ctx context.Context, planID, itemID string, data Payload) (Response, error) {
	var out Response
	path := fmt.Sprintf("/plans/%s/items/%s", planID, itemID)
	if err := c.do(ctx, http.MethodPut, path, nil, data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeletePlanItem(ctx context.Context, planID, itemID string) error {
	path := fmt.Sprintf("/plans/%s/items/%s", planID, itemID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
