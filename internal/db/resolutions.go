package db

import (
	"context"

	"maitri/internal/models"
)

// IncrementResolution upserts the reply count for a rule or topic.
func (d *DB) IncrementResolution(ctx context.Context, source, name string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO resolution_counts (source, name, count, last_seen_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (source, name) DO UPDATE
		SET count = resolution_counts.count + 1, last_seen_at = NOW()
	`, source, name)
	return err
}

// GetAllResolutionCounts returns all counters for metrics export.
func (d *DB) GetAllResolutionCounts(ctx context.Context) ([]models.ResolutionCount, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT source, name, count, last_seen_at
		FROM resolution_counts
		ORDER BY source, name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []models.ResolutionCount
	for rows.Next() {
		var rc models.ResolutionCount
		if err := rows.Scan(&rc.Source, &rc.Name, &rc.Count, &rc.LastSeenAt); err != nil {
			return nil, err
		}
		counts = append(counts, rc)
	}
	return counts, rows.Err()
}
