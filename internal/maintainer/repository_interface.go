package maintainer

import "context"

type Repository interface {
	Create(ctx context.Context, userID int) (*Maintainer, error)
	FindByID(ctx context.Context, id int) (*Maintainer, error)
	FindByUserID(ctx context.Context, userID int) (*Maintainer, error)
	SetClientID(ctx context.Context, id int, clientID string) error
	SaveCard(ctx context.Context, maintainerID int, cardID, lastFourDigits, brand string) (*Card, error)
	ListCards(ctx context.Context, maintainerID int) ([]Card, error)
	SetCardStatus(ctx context.Context, maintainerID int, cardID, status string) error
}
