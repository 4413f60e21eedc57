package ong

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, userID int, req CreateONGRequest) (*ONG, error) {
	query := `
		INSERT INTO ongs (user_id, name, description, commission_rate, recipient_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, name, description, commission_rate, recipient_id, created_at
	`

	var o ONG
	err := r.db.GetContext(ctx, &o, query, userID, req.Name, req.Description, req.CommissionRate, req.RecipientID)
	if err != nil {
		return nil, err
	}

	return &o, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*ONG, error) {
	query := `
		SELECT id, user_id, name, description, commission_rate, recipient_id, created_at
		FROM ongs
		WHERE id = $1
	`

	var o ONG
	err := r.db.GetContext(ctx, &o, query, id)
	if err != nil {
		return nil, err
	}

	return &o, nil
}

func (r *repository) List(ctx context.Context) ([]ONG, error) {
	query := `
		SELECT id, user_id, name, description, commission_rate, recipient_id, created_at
		FROM ongs
		ORDER BY name
	`

	var ongs []ONG
	err := r.db.SelectContext(ctx, &ongs, query)
	if err != nil {
		return nil, err
	}

	return ongs, nil
}

func (r *repository) CreateCampaign(ctx context.Context, ongID int, name string) (*Campaign, error) {
	query := `
		INSERT INTO campaigns (ong_id, name)
		VALUES ($1, $2)
		RETURNING id, ong_id, name, created_at
	`

	var campaign Campaign
	err := r.db.GetContext(ctx, &campaign, query, ongID, name)
	if err != nil {
		return nil, err
	}

	return &campaign, nil
}

func (r *repository) FindCampaign(ctx context.Context, id, ongID int) (*Campaign, error) {
	query := `
		SELECT id, ong_id, name, created_at
		FROM campaigns
		WHERE id = $1 AND ong_id = $2
	`

	var campaign Campaign
	err := r.db.GetContext(ctx, &campaign, query, id, ongID)
	if err != nil {
		return nil, err
	}

	return &campaign, nil
}

func (r *repository) ListCampaigns(ctx context.Context, ongID int) ([]Campaign, error) {
	query := `
		SELECT id, ong_id, name, created_at
		FROM campaigns
		WHERE ong_id = $1
		ORDER BY created_at DESC
	`

	var campaigns []Campaign
	err := r.db.SelectContext(ctx, &campaigns, query, ongID)
	if err != nil {
		return nil, err
	}

	return campaigns, nil
}

func (r *repository) CreateBase(ctx context.Context, ongID int, name string) (*Base, error) {
	query := `
		INSERT INTO bases (ong_id, name)
		VALUES ($1, $2)
		RETURNING id, ong_id, name, created_at
	`

	var base Base
	err := r.db.GetContext(ctx, &base, query, ongID, name)
	if err != nil {
		return nil, err
	}

	return &base, nil
}

func (r *repository) FindBase(ctx context.Context, id, ongID int) (*Base, error) {
	query := `
		SELECT id, ong_id, name, created_at
		FROM bases
		WHERE id = $1 AND ong_id = $2
	`

	var base Base
	err := r.db.GetContext(ctx, &base, query, id, ongID)
	if err != nil {
		return nil, err
	}

	return &base, nil
}

func (r *repository) ListBases(ctx context.Context, ongID int) ([]Base, error) {
	query := `
		SELECT id, ong_id, name, created_at
		FROM bases
		WHERE ong_id = $1
		ORDER BY created_at DESC
	`

	var bases []Base
	err := r.db.SelectContext(ctx, &bases, query, ongID)
	if err != nil {
		return nil, err
	}

	return bases, nil
}

func (r *repository) CreateProject(ctx context.Context, ongID int, name string) (*Project, error) {
	query := `
		INSERT INTO projects (ong_id, name)
		VALUES ($1, $2)
		RETURNING id, ong_id, name, created_at
	`

	var project Project
	err := r.db.GetContext(ctx, &project, query, ongID, name)
	if err != nil {
		return nil, err
	}

	return &project, nil
}

func (r *repository) FindProject(ctx context.Context, id, ongID int) (*Project, error) {
	query := `
		SELECT id, ong_id, name, created_at
		FROM projects
		WHERE id = $1 AND ong_id = $2
	`

	var project Project
	err := r.db.GetContext(ctx, &project, query, id, ongID)
	if err != nil {
		return nil, err
	}

	return &project, nil
}

func (r *repository) ListProjects(ctx context.Context, ongID int) ([]Project, error) {
	query := `
		SELECT id, ong_id, name, created_at
		FROM projects
		WHERE ong_id = $1
		ORDER BY created_at DESC
	`

	var projects []Project
	err := r.db.SelectContext(ctx, &projects, query, ongID)
	if err != nil {
		return nil, err
	}

	return projects, nil
}

func (r *repository) CreateAttendee(ctx context.Context, projectID int, name string) (*Attendee, error) {
	query := `
		INSERT INTO attendees (project_id, name)
		VALUES ($1, $2)
		RETURNING id, project_id, name, created_at
	`

	var attendee Attendee
	err := r.db.GetContext(ctx, &attendee, query, projectID, name)
	if err != nil {
		return nil, err
	}

	return &attendee, nil
}

func (r *repository) FindAttendee(ctx context.Context, id, projectID int) (*Attendee, error) {
	query := `
		SELECT id, project_id, name, created_at
		FROM attendees
		WHERE id = $1 AND project_id = $2
	`

	var attendee Attendee
	err := r.db.GetContext(ctx, &attendee, query, id, projectID)
	if err != nil {
		return nil, err
	}

	return &attendee, nil
}

func (r *repository) ListAttendees(ctx context.Context, projectID int) ([]Attendee, error) {
	query := `
		SELECT id, project_id, name, created_at
		FROM attendees
		WHERE project_id = $1
		ORDER BY name
	`

	var attendees []Attendee
	err := r.db.SelectContext(ctx, &attendees, query, projectID)
	if err != nil {
		return nil, err
	}

	return attendees, nil
}
