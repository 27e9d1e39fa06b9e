package db

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"maitri/internal/models"
)

// MemoryStore keeps counters and alerts in process memory. Used when no
// DATABASE_URL is configured; contents are lost on restart.
type MemoryStore struct {
	mu     sync.Mutex
	now    func() time.Time
	counts map[[2]string]*models.ResolutionCount
	alerts []models.Alert
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		now:    time.Now,
		counts: make(map[[2]string]*models.ResolutionCount),
	}
}

// IncrementResolution bumps the counter for source/name.
func (m *MemoryStore) IncrementResolution(ctx context.Context, source, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := [2]string{source, name}
	rc, ok := m.counts[key]
	if !ok {
		rc = &models.ResolutionCount{Source: source, Name: name}
		m.counts[key] = rc
	}
	rc.Count++
	rc.LastSeenAt = m.now()
	return nil
}

// GetAllResolutionCounts returns all counters ordered by source and name.
func (m *MemoryStore) GetAllResolutionCounts(ctx context.Context) ([]models.ResolutionCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	counts := make([]models.ResolutionCount, 0, len(m.counts))
	for _, rc := range m.counts {
		counts = append(counts, *rc)
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Source != counts[j].Source {
			return counts[i].Source < counts[j].Source
		}
		return counts[i].Name < counts[j].Name
	})
	return counts, nil
}

// CreateAlert stores an alert, assigning its ID and creation time.
func (m *MemoryStore) CreateAlert(ctx context.Context, alert *models.Alert) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if alert.ID == uuid.Nil {
		alert.ID = uuid.New()
	}
	alert.CreatedAt = m.now()
	m.alerts = append(m.alerts, *alert)
	return nil
}

// GetAlertByID returns a copy of the alert with id.
func (m *MemoryStore) GetAlertByID(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.alerts {
		if m.alerts[i].ID == id {
			a := m.alerts[i]
			return &a, nil
		}
	}
	return nil, ErrAlertNotFound
}

// ListRecentAlerts returns up to limit alerts, newest first.
func (m *MemoryStore) ListRecentAlerts(ctx context.Context, limit int) ([]models.Alert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := len(m.alerts)
	if limit < n {
		n = limit
	}
	out := make([]models.Alert, 0, n)
	for i := len(m.alerts) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, m.alerts[i])
	}
	return out, nil
}

// MarkAlertNotified stamps the alert's notification time.
func (m *MemoryStore) MarkAlertNotified(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.alerts {
		if m.alerts[i].ID == id {
			now := m.now()
			m.alerts[i].NotifiedAt = &now
			return nil
		}
	}
	return ErrAlertNotFound
}

// Ping always succeeds.
func (m *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

// Close is a no-op.
func (m *MemoryStore) Close() {}
