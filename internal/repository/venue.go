package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/Talts01/SocialPizza/internal/domain"
)

type VenueRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewVenueRepo(db *dbpg.DB) *VenueRepository {
	return &VenueRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *VenueRepository) Create(ctx context.Context, v *domain.Venue) error {
	query := `INSERT INTO venues (id, name, address, city, capacity, owner_id, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		v.ID, v.Name, v.Address, v.City, v.Capacity, v.OwnerID, v.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert venue: %w", err)
	}

	return nil
}

func (r *VenueRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	query := `SELECT id, name, address, city, capacity, owner_id, created_at
			  FROM venues
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}

	var v domain.Venue
	if err = row.Scan(&v.ID, &v.Name, &v.Address, &v.City, &v.Capacity, &v.OwnerID, &v.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, fmt.Errorf("scan venue: %w", err)
	}

	return &v, nil
}

func (r *VenueRepository) List(ctx context.Context) ([]*domain.Venue, error) {
	query := `SELECT id, name, address, city, capacity, owner_id, created_at
			  FROM venues
			  ORDER BY name ASC`

	return r.queryVenues(ctx, query)
}

func (r *VenueRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Venue, error) {
	query := `SELECT id, name, address, city, capacity, owner_id, created_at
			  FROM venues
			  WHERE owner_id = $1
			  ORDER BY name ASC`

	return r.queryVenues(ctx, query, ownerID)
}

func (r *VenueRepository) queryVenues(ctx context.Context, query string, args ...any) ([]*domain.Venue, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	defer rows.Close()

	var res []*domain.Venue
	for rows.Next() {
		var v domain.Venue
		if err = rows.Scan(&v.ID, &v.Name, &v.Address, &v.City, &v.Capacity, &v.OwnerID, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		res = append(res, &v)
	}

	return res, rows.Err()
}
