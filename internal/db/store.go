// Package db stores resolution counters and emergency alerts, in Postgres or
// in memory.
package db

import (
	"context"

	"github.com/google/uuid"

	"maitri/internal/models"
)

// Store is implemented by DB and MemoryStore.
type Store interface {
	IncrementResolution(ctx context.Context, source, name string) error
	GetAllResolutionCounts(ctx context.Context) ([]models.ResolutionCount, error)

	CreateAlert(ctx context.Context, alert *models.Alert) error
	GetAlertByID(ctx context.Context, id uuid.UUID) (*models.Alert, error)
	ListRecentAlerts(ctx context.Context, limit int) ([]models.Alert, error)
	MarkAlertNotified(ctx context.Context, id uuid.UUID) error

	Ping(ctx context.Context) error
	Close()
}
