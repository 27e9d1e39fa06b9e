package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"maitri/internal/models"
)

// CreateAlert inserts an alert, assigning its ID and creation time.
func (d *DB) CreateAlert(ctx context.Context, alert *models.Alert) error {
	if alert.ID == uuid.Nil {
		alert.ID = uuid.New()
	}
	err := d.Pool.QueryRow(ctx, `
		INSERT INTO alerts (id, level, astronaut, raised_by)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, alert.ID, alert.Level, alert.Astronaut, alert.RaisedBy).Scan(&alert.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

// GetAlertByID retrieves an alert by its ID.
func (d *DB) GetAlertByID(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	alert := &models.Alert{}
	err := d.Pool.QueryRow(ctx, `
		SELECT id, level, astronaut, raised_by, notified_at, created_at
		FROM alerts
		WHERE id = $1
	`, id).Scan(&alert.ID, &alert.Level, &alert.Astronaut, &alert.RaisedBy, &alert.NotifiedAt, &alert.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAlertNotFound
		}
		return nil, fmt.Errorf("failed to get alert: %w", err)
	}
	return alert, nil
}

// ListRecentAlerts returns the newest alerts first.
func (d *DB) ListRecentAlerts(ctx context.Context, limit int) ([]models.Alert, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT id, level, astronaut, raised_by, notified_at, created_at
		FROM alerts
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alerts []models.Alert
	for rows.Next() {
		var a models.Alert
		if err := rows.Scan(&a.ID, &a.Level, &a.Astronaut, &a.RaisedBy, &a.NotifiedAt, &a.CreatedAt); err != nil {
			return nil, err
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

// MarkAlertNotified records that ground control was emailed.
func (d *DB) MarkAlertNotified(ctx context.Context, id uuid.UUID) error {
	tag, err := d.Pool.Exec(ctx, `UPDATE alerts SET notified_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAlertNotFound
	}
	return nil
}
