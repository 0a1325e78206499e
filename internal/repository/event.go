package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/Talts01/SocialPizza/internal/domain"
)

const eventColumns = `id, title, description, event_date, capacity, status, organizer_id,
	venue_id, category_id, moderator_comment, rejection_reason, decision_date, created_at, updated_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var e domain.Event
	var comment, reason sql.NullString
	var decided sql.NullTime
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.EventDate, &e.Capacity, &e.Status,
		&e.OrganizerID, &e.VenueID, &e.CategoryID, &comment, &reason, &decided,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.ModeratorComment = comment.String
	e.RejectionReason = reason.String
	if decided.Valid {
		t := decided.Time
		e.DecisionDate = &t
	}
	return &e, nil
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, title, description, event_date, capacity, status,
				organizer_id, venue_id, category_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.EventDate, e.Capacity, e.Status,
		e.OrganizerID, e.VenueID, e.CategoryID, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	e.CreatedAt = now
	e.UpdatedAt = now

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

// ApplyDecision updates the event only while it is still PENDING; concurrent
// decisions or deletions make the conditional update a no-op, which is then
// diagnosed as not-found or invalid-state.
func (r *EventRepository) ApplyDecision(ctx context.Context, eventID string, status domain.EventStatus, comment, reason string, decidedAt time.Time) (*domain.Event, error) {
	query := `UPDATE events
			  SET status = $2,
				  moderator_comment = NULLIF($3, ''),
				  rejection_reason = NULLIF($4, ''),
				  decision_date = $5,
				  updated_at = now()
			  WHERE id = $1 AND status = $6
			  RETURNING ` + eventColumns

	row := r.db.Master.QueryRowContext(ctx, query, eventID, status, comment, reason, decidedAt, domain.StatusPending)
	e, err := scanEvent(row)
	if err == nil {
		return e, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("apply decision: %w", err)
	}

	// The update matched nothing: either the event is gone or it already
	// left PENDING.
	var exists bool
	checkQuery := `SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`
	if err := r.db.Master.QueryRowContext(ctx, checkQuery, eventID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	if !exists {
		return nil, domain.ErrEventNotFound
	}
	return nil, domain.ErrInvalidState
}

func (r *EventRepository) DeletePending(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1 AND status = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, domain.StatusPending)
	if err != nil {
		return fmt.Errorf("delete pending event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if rows == 0 {
		var exists bool
		checkQuery := `SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`
		row, err := r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, id)
		if err != nil {
			return fmt.Errorf("check event: %w", err)
		}
		if err := row.Scan(&exists); err != nil {
			return fmt.Errorf("scan event exists: %w", err)
		}
		if exists {
			return domain.ErrInvalidState
		}
		return domain.ErrEventNotFound
	}

	return nil
}

// DeleteCascade locks the event row before purging, so no enrollment can
// slip between the purge and the delete.
func (r *EventRepository) DeleteCascade(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT 1 FROM events WHERE id = $1 FOR UPDATE`
	var one int
	if err = tx.QueryRowContext(ctx, lockQuery, id).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("lock event: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM participations WHERE event_id = $1`, id); err != nil {
		return fmt.Errorf("purge participations: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	return tx.Commit()
}

func (r *EventRepository) ListByStatus(ctx context.Context, statuses ...domain.EventStatus) ([]*domain.Event, error) {
	placeholders := make([]string, len(statuses))
	args := make([]any, len(statuses))
	for i, s := range statuses {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = s
	}

	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE status IN (` + strings.Join(placeholders, ", ") + `)
			  ORDER BY event_date ASC`

	return r.queryEvents(ctx, query, args...)
}

func (r *EventRepository) ListByVenue(ctx context.Context, venueID string) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE venue_id = $1
			  ORDER BY event_date ASC`

	return r.queryEvents(ctx, query, venueID)
}

func (r *EventRepository) ListByOrganizer(ctx context.Context, organizerID string) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE organizer_id = $1
			  ORDER BY event_date ASC`

	return r.queryEvents(ctx, query, organizerID)
}

func (r *EventRepository) ListJoinedByUser(ctx context.Context, userID string) ([]*domain.Event, error) {
	query := `SELECT e.id, e.title, e.description, e.event_date, e.capacity, e.status,
					 e.organizer_id, e.venue_id, e.category_id, e.moderator_comment,
					 e.rejection_reason, e.decision_date, e.created_at, e.updated_at
			  FROM events e
			  JOIN participations p ON p.event_id = e.id
			  WHERE p.user_id = $1
			  ORDER BY e.event_date ASC`

	return r.queryEvents(ctx, query, userID)
}

func (r *EventRepository) ListByOwnerAndStatus(ctx context.Context, ownerID string, status domain.EventStatus) ([]*domain.Event, error) {
	query := `SELECT e.id, e.title, e.description, e.event_date, e.capacity, e.status,
					 e.organizer_id, e.venue_id, e.category_id, e.moderator_comment,
					 e.rejection_reason, e.decision_date, e.created_at, e.updated_at
			  FROM events e
			  JOIN venues v ON v.id = e.venue_id
			  WHERE v.owner_id = $1 AND e.status = $2
			  ORDER BY e.event_date ASC`

	return r.queryEvents(ctx, query, ownerID, status)
}

func (r *EventRepository) queryEvents(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}
