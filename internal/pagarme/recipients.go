package pagarme

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) CreateRecipient(ctx context.Context, data Payload) (Response, error) {
	var out Response
	if err := c.do(ctx, http.MethodPost, "/recipients", nil, data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListRecipients(ctx context.Context, params Payload) ([]Response, error) {
	return c.doList(ctx, "/recipients", listQuery(params))
}

func (c *Client) GetRecipient(ctx context.Context, recipientID string) (Response, error) {
	var out Response
	if err := c.do(ctx, http.MethodGet, "/recipients/"+recipientID, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateRecipient(ctx context.Context, recipientID string, data Payload) (Response, error) {
	var out Response
	if err := c.do(ctx, http.MethodPatch, "/recipients/"+recipientID, nil, data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateRecipientBankAccount(ctx context.Context, recipientID string, data Payload) (Response, error) {
	var out Response
	path := fmt.Sprintf("/recipients/%s/default-bank-account", recipientID)
	if err := c.do(ctx, http.MethodPatch, path, nil, data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetRecipientBalance(ctx context.Context, recipientID string) (Response, error) {
	var out Response
	path := fmt.Sprintf("/recipients/%s/balance", recipientID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTransfer(ctx context.Context, recipientID string, data Payload) (Response, error) {
	var out Response
	path := fmt.Sprintf("/recipients/%s/transfers", recipientID)
	if err := c.do(ctx, http.MethodPost, path, nil, data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListTransfers(ctx context.Context, recipientID string, params Payload) ([]Response, error) {
	return c.doList(ctx, fmt.Sprintf("/recipients/%s/transfers", recipientID), listQuery(params))
}

func (c *Client) GetTransfer(ctx context.Context, recipientID, transferID string) (Response, error) {
	var out Response
	path := fmt.Sprintf("/recipients/%s/transfers/%s", recipientID, transferID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateWithdrawal(ctx context.Context, recipientID string, data Payload) (Response, error) {
	var out Response
	path := fmt.Sprintf("/recipients/%s/withdrawals", recipientID)
	if err := c.do(ctx, http.MethodPost, path, nil, data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListWithdrawals(ctx context.Context, recipientID string, params Payload) ([]Response, error) {
	return c.doList(ctx, fmt.Sprintf("/recipients/%s/withdrawals", recipientID), listQuery(params))
}

func (c *Client) CreateRecurringSplit(ctx context.Context, recipientID string, data Payload) (Response, error) {
	var out Response
	path := fmt.Sprintf("/recipients/%s/recurring-splits", recipientID)
	if err := c.do(ctx, http.MethodPost, path, nil, data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListRecurringSplits(ctx context.Context, recipientID string, params Payload) ([]Response, error) {
	return c.doList(ctx, fmt.Sprintf("/recipients/%s/recurring-splits", recipientID), listQuery(params))
}

func (c *Client) GetBin(ctx context.Context, bin string) (Response, error) {
	var out Response
	if err := c.do(ctx, http.MethodGet, "/bins/"+bin, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
