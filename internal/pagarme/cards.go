package pagarme

import (
	"context"
	"net/http"
)

func (c *Client) CreateCard(ctx context.Context, params CardParams) (*Card, error) {
	var card Card
	if err := c.do(ctx, http.MethodPost, "/cards", nil, params, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (c *Client) ListCards(ctx context.Context, params Payload) ([]Response, error) {
	return c.doList(ctx, "/cards", listQuery(params))
}

func (c *Client) GetCard(ctx context.Context, cardID string) (*Card, error) {
	var card Card
	if err := c.do(ctx, http.MethodGet, "/cards/"+cardID, nil, nil, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (c *Client) DeleteCard(ctx context.Context, cardID string) error {
	return c.do(ctx, http.MethodDelete, "/cards/"+cardID, nil, nil, nil)
}
