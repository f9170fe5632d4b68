package db

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agrovision/cropsight/internal/agro"
)

// Store wraps database access for the snapshot log. The engine itself is
// stateless; this log is the caller-side history of reading vectors and the
// derived values computed from them.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a Store backed by a pgx pool.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

// Close releases the pool resources.
func (s *Store) Close() {
	if s != nil && s.pool != nil {
		s.pool.Close()
	}
}

// Snapshot is one logged tick: the reading vector plus the derived values
// computed from it at that moment.
type Snapshot struct {
	ID           uuid.UUID     `json:"id"`
	CropID       string        `json:"crop_id"`
	Week         int           `json:"week"`
	Readings     agro.Readings `json:"readings"`
	Health       float64       `json:"health"`
	YieldPercent int           `json:"yield_percent"`
	Status       string        `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
}

const insertSnapshotSQL = `
    INSERT INTO cropsight.snapshots (id, crop_id, week, readings, health, yield_percent, status, created_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
`

// InsertSnapshot appends a snapshot to the log, assigning it a fresh id.
func (s *Store) InsertSnapshot(ctx context.Context, snap Snapshot) (uuid.UUID, error) {
	id := uuid.New()
	readingsJSON, err := json.Marshal(snap.Readings)
	if err != nil {
		return uuid.Nil, err
	}

	_, err = s.pool.Exec(ctx, insertSnapshotSQL,
		id, snap.CropID, snap.Week, readingsJSON, snap.Health, snap.YieldPercent, snap.Status)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

const historySQL = `
    SELECT id, crop_id, week, readings, health, yield_percent, status, created_at
    FROM cropsight.snapshots
    WHERE crop_id = $1
    ORDER BY created_at DESC
    LIMIT $2
`

// History returns the most recent snapshots for a crop, newest first.
func (s *Store) History(ctx context.Context, cropID string, limit int) ([]Snapshot, error) {
	rows, err := s.pool.Query(ctx, historySQL, cropID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snapshots := make([]Snapshot, 0, limit)
	for rows.Next() {
		var snap Snapshot
		var readingsJSON []byte
		if err := rows.Scan(
			&snap.ID,
			&snap.CropID,
			&snap.Week,
			&readingsJSON,
			&snap.Health,
			&snap.YieldPercent,
			&snap.Status,
			&snap.CreatedAt,
		); err != nil {
			return nil, err
		}
		if len(readingsJSON) > 0 {
			if err := json.Unmarshal(readingsJSON, &snap.Readings); err != nil {
				return nil, err
			}
		}
		snapshots = append(snapshots, snap)
	}
	return snapshots, rows.Err()
}

const latestSnapshotSQL = `
    SELECT id, crop_id, week, readings, health, yield_percent, status, created_at
    FROM cropsight.snapshots
    WHERE crop_id = $1
    ORDER BY created_at DESC
    LIMIT 1
`

// LatestSnapshot returns the newest snapshot for a crop, or nil when the
// log has none.
func (s *Store) LatestSnapshot(ctx context.Context, cropID string) (*Snapshot, error) {
	rows, err := s.pool.Query(ctx, latestSnapshotSQL, cropID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var snap Snapshot
	var readingsJSON []byte
	if err := rows.Scan(
		&snap.ID,
		&snap.CropID,
		&snap.Week,
		&readingsJSON,
		&snap.Health,
		&snap.YieldPercent,
		&snap.Status,
		&snap.CreatedAt,
	); err != nil {
		return nil, err
	}
	if len(readingsJSON) > 0 {
		if err := json.Unmarshal(readingsJSON, &snap.Readings); err != nil {
			return nil, err
		}
	}
	return &snap, nil
}
