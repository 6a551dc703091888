package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-seat-booking/internal/model"
	apperrors "go-seat-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) (*model.Notification, error)
	List(ctx context.Context) ([]*model.Notification, error)
	FindByID(ctx context.Context, id int) (*model.Notification, error)
	FindFirstByType(ctx context.Context, notificationType string) (*model.Notification, error)
	Update(ctx context.Context, id int, params model.UpdateNotificationParams) (*model.Notification, error)
	Delete(ctx context.Context, id int) error
}

type NotificationRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) NotificationRepository {
	return &NotificationRepositoryImpl{
		pool: pool,
	}
}

func (r *NotificationRepositoryImpl) Create(ctx context.Context, notification *model.Notification) (*model.Notification, error) {
	query := `
		INSERT INTO notifications (type, message)
		VALUES ($1, $2)
		RETURNING id, type, message, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		notification.Type, notification.Message,
	).Scan(
		&notification.ID,
		&notification.Type,
		&notification.Message,
		&notification.CreatedAt,
		&notification.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicateNotification
		}
		return nil, err
	}

	return notification, nil
}

func (r *NotificationRepositoryImpl) List(ctx context.Context) ([]*model.Notification, error) {
	query := `
		SELECT id, type, message, created_at, updated_at
		FROM notifications
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]*model.Notification, 0)
	for rows.Next() {
		var notification model.Notification
		err := rows.Scan(
			&notification.ID,
			&notification.Type,
			&notification.Message,
			&notification.CreatedAt,
			&notification.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, &notification)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}

func (r *NotificationRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Notification, error) {
	query := `
		SELECT id, type, message, created_at, updated_at
		FROM notifications
		WHERE id = $1
	`

	var notification model.Notification
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&notification.ID,
		&notification.Type,
		&notification.Message,
		&notification.CreatedAt,
		&notification.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotificationNotFound
		}
		return nil, err
	}

	return &notification, nil
}

func (r *NotificationRepositoryImpl) FindFirstByType(ctx context.Context, notificationType string) (*model.Notification, error) {
	query := `
		SELECT id, type, message, created_at, updated_at
		FROM notifications
		WHERE type = $1
		ORDER BY id
		LIMIT 1
	`

	var notification model.Notification
	err := r.pool.QueryRow(ctx, query, notificationType).Scan(
		&notification.ID,
		&notification.Type,
		&notification.Message,
		&notification.CreatedAt,
		&notification.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotificationNotFound
		}
		return nil, err
	}

	return &notification, nil
}

func (r *NotificationRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateNotificationParams) (*model.Notification, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.Type != nil {
		sets = append(sets, fmt.Sprintf("type = $%d", argPos))
		args = append(args, *params.Type)
		argPos++
	}

	if params.Message != nil {
		sets = append(sets, fmt.Sprintf("message = $%d", argPos))
		args = append(args, *params.Message)
		argPos++
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	// add updated_at
	sets = append(sets, fmt.Sprintf("updated_at = $%d", argPos))
	args = append(args, time.Now().UTC())
	argPos++

	// add id
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE notifications
		SET %s
		WHERE id = $%d
		RETURNING id, type, message, created_at, updated_at
	`, strings.Join(sets, ", "), argPos)

	var notification model.Notification

	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&notification.ID,
		&notification.Type,
		&notification.Message,
		&notification.CreatedAt,
		&notification.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotificationNotFound
		}
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicateNotification
		}
		return nil, err
	}

	return &notification, nil
}

func (r *NotificationRepositoryImpl) Delete(ctx context.Context, id int) error {
	query := `
		DELETE FROM notifications
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotificationNotFound
	}

	return nil
}
