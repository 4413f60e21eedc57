package pagarme

import (
	"context"
	"net/http"
)

func (c *Client) ListCharges(ctx context.Context, params Payload) ([]Response, error) {
	return c.doList(ctx, "/charges", listQuery(params))
}

func (c *Client) GetCharge(ctx context.Context, chargeID string) (*Charge, error) {
	var charge Charge
	if err := c.do(ctx, http.MethodGet, "/charges/"+chargeID, nil, nil, &charge); err != nil {
		return nil, err
	}
	return &charge, nil
}

func (c *Client) CaptureCharge(ctx context.Context, chargeID string, data Payload) (*Charge, error) {
	var charge Charge
	if err := c.do(ctx, http.MethodPost, "/charges/"+chargeID+"/capture", nil, data, &charge); err != nil {
		return nil, err
	}
	return &charge, nil
}

func (c *Client) RetryCharge(ctx context.Context, chargeID string) (*Charge, error) {
	var charge Charge
	if err := c.do(ctx, http.MethodPost, "/charges/"+chargeID+"/retry", nil, nil, &charge); err != nil {
		return nil, err
	}
	return &charge, nil
}

func (c *Client) CancelCharge(ctx context.Context, chargeID string) (*Charge, error) {
	var charge Charge
	if err := c.do(ctx, http.MethodDelete, "/charges/"+chargeID, nil, nil, &charge); err != nil {
		return nil, err
	}
	return &charge, nil
}

func (c *Client) UpdateChargeCard(ctx context.Context, chargeID string, data Payload) (*Charge, error) {
	var charge Charge
	if err := c.do(ctx, http.MethodPatch, "/charges/"+chargeID+"/card", nil, data, &charge); err != nil {
		return nil, err
	}
	return &charge, nil
}

func (c *Client) UpdateChargeDueDate(ctx context.Context, chargeID string, data Payload) (*Charge, error) {
	var charge Charge
	if err := c.do(ctx, http.MethodPatch, "/charges/"+chargeID+"/due-date", nil, data, &charge); err != nil {
		return nil, err
	}
	return &charge, nil
}
