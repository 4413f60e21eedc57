package ong

import "context"

type Repository interface {
	Create(ctx context.Context, userID int, req CreateONGRequest) (*ONG, error)
	FindByID(ctx context.Context, id int) (*ONG, error)
	List(ctx context.Context) ([]ONG, error)

	CreateCampaign(ctx context.Context, ongID int, name string) (*Campaign, error)
	FindCampaign(ctx context.Context, id, ongID int) (*Campaign, error)
	ListCampaigns(ctx context.Context, ongID int) ([]Campaign, error)

	CreateBase(ctx context.Context, ongID int, name string) (*Base, error)
	FindBase(ctx context.Context, id, ongID int) (*Base, error)
	ListBases(ctx context.Context, ongID int) ([]Base, error)

	CreateProject(ctx context.Context, ongID int, name string) (*Project, error)
	FindProject(ctx context.Context, id, ongID int) (*Project, error)
	ListProjects(ctx context.Context, ongID int) ([]Project, error)

	CreateAttendee(ctx context.Context, projectID int, name string) (*Attendee, error)
	FindAttendee(ctx context.Context, id, projectID int) (*Attendee, error)
	ListAttendees(ctx context.Context, projectID int) ([]Attendee, error)
}
