package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/Talts01/SocialPizza/internal/domain"
)

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, name, surname, email, password_hash, role, bio, verified, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		user.ID, user.Name, user.Surname, user.Email, user.PasswordHash,
		user.Role, user.Bio, user.Verified, user.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, name, surname, email, password_hash, role, bio, verified, created_at
			  FROM users
			  WHERE id = $1`

	return r.getOne(ctx, query, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, name, surname, email, password_hash, role, bio, verified, created_at
			  FROM users
			  WHERE email = $1`

	return r.getOne(ctx, query, email)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	var u domain.User
	if err = row.Scan(&u.ID, &u.Name, &u.Surname, &u.Email, &u.PasswordHash, &u.Role, &u.Bio, &u.Verified, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT id, name, surname, email, password_hash, role, bio, verified, created_at
			  FROM users
			  ORDER BY created_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var res []*domain.User
	for rows.Next() {
		var u domain.User
		if err = rows.Scan(&u.ID, &u.Name, &u.Surname, &u.Email, &u.PasswordHash, &u.Role, &u.Bio, &u.Verified, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		res = append(res, &u)
	}

	return res, rows.Err()
}

// BanCascade removes the user and everything reachable from them in a single
// transaction: participations in events at their venues, those events, the
// venues themselves, events they organized elsewhere with their
// participations, their own participations, and finally the user row.
func (r *UserRepository) BanCascade(ctx context.Context, userID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT 1 FROM users WHERE id = $1 FOR UPDATE`
	var one int
	if err = tx.QueryRowContext(ctx, lockQuery, userID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("lock user: %w", err)
	}

	doomedEvents := `SELECT id FROM events
					 WHERE organizer_id = $1
						OR venue_id IN (SELECT id FROM venues WHERE owner_id = $1)`

	if _, err = tx.ExecContext(ctx,
		`DELETE FROM participations WHERE event_id IN (`+doomedEvents+`)`, userID); err != nil {
		return fmt.Errorf("purge event participations: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM events WHERE id IN (`+doomedEvents+`)`, userID); err != nil {
		return fmt.Errorf("delete events: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM venues WHERE owner_id = $1`, userID); err != nil {
		return fmt.Errorf("delete venues: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM participations WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("purge user participations: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	return tx.Commit()
}
