package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/Talts01/SocialPizza/internal/domain"
)

type ParticipationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewParticipationRepo(db *dbpg.DB) *ParticipationRepository {
	return &ParticipationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Enroll inserts a participation while holding a row-level lock on the event.
// The lock serializes concurrent enrollments for the same event, so the
// committed count can never pass the capacity. A naive count-then-insert
// without the lock lets two transactions read the same count and both insert.
func (r *ParticipationRepository) Enroll(ctx context.Context, eventID, userID string) (*domain.Participation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT status, capacity FROM events WHERE id = $1 FOR UPDATE`
	var status string
	var capacity int
	if err = tx.QueryRowContext(ctx, lockQuery, eventID).Scan(&status, &capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("lock event: %w", err)
	}

	if domain.EventStatus(status) != domain.StatusApproved {
		return nil, domain.ErrInvalidState
	}

	var exists bool
	dupQuery := `SELECT EXISTS (SELECT 1 FROM participations WHERE event_id = $1 AND user_id = $2)`
	if err = tx.QueryRowContext(ctx, dupQuery, eventID, userID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check duplicate: %w", err)
	}
	if exists {
		return nil, domain.ErrAlreadyEnrolled
	}

	var active int
	countQuery := `SELECT COUNT(*) FROM participations WHERE event_id = $1`
	if err = tx.QueryRowContext(ctx, countQuery, eventID).Scan(&active); err != nil {
		return nil, fmt.Errorf("count participations: %w", err)
	}
	if active >= capacity {
		return nil, domain.ErrCapacityExceeded
	}

	p := &domain.Participation{
		ID:           uuid.New().String(),
		EventID:      eventID,
		UserID:       userID,
		RegisteredAt: time.Now().UTC(),
	}

	insertQuery := `INSERT INTO participations (id, event_id, user_id, registered_at)
				    VALUES ($1, $2, $3, $4)`
	if _, err = tx.ExecContext(ctx, insertQuery, p.ID, p.EventID, p.UserID, p.RegisteredAt); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyEnrolled
		}
		return nil, fmt.Errorf("insert participation: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return p, nil
}

func (r *ParticipationRepository) Remove(ctx context.Context, eventID, userID string) error {
	query := `DELETE FROM participations WHERE event_id = $1 AND user_id = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, eventID, userID)
	if err != nil {
		return fmt.Errorf("delete participation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("participation rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotEnrolled
	}

	return nil
}

func (r *ParticipationRepository) Exists(ctx context.Context, eventID, userID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM participations WHERE event_id = $1 AND user_id = $2)`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, userID)
	if err != nil {
		return false, fmt.Errorf("check participation: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan participation exists: %w", err)
	}

	return exists, nil
}

func (r *ParticipationRepository) CountByEvent(ctx context.Context, eventID string) (int, error) {
	query := `SELECT COUNT(*) FROM participations WHERE event_id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return 0, fmt.Errorf("count participations: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan participation count: %w", err)
	}

	return count, nil
}

func (r *ParticipationRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Participation, error) {
	query := `SELECT id, event_id, user_id, registered_at
			  FROM participations
			  WHERE event_id = $1
			  ORDER BY registered_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list participations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Participation
	for rows.Next() {
		var p domain.Participation
		if err = rows.Scan(&p.ID, &p.EventID, &p.UserID, &p.RegisteredAt); err != nil {
			return nil, fmt.Errorf("scan participation: %w", err)
		}
		res = append(res, &p)
	}

	return res, rows.Err()
}
