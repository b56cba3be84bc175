// Package sqlite contains the SQLite implementation of the repository
// interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/tempo/internal/ports/secondary"
)

// MissionRepository implements secondary.MissionRepository with SQLite.
// Timestamps are stored as RFC 3339 text in UTC.
type MissionRepository struct {
	db *sql.DB
}

// NewMissionRepository creates a new SQLite mission repository.
func NewMissionRepository(db *sql.DB) *MissionRepository {
	return &MissionRepository{db: db}
}

// Insert persists a new open mission and returns it with its assigned ID.
func (r *MissionRepository) Insert(ctx context.Context, name string, startedAt time.Time) (*secondary.MissionRecord, error) {
	// RFC 3339 text drops sub-second precision; truncate up front so the
	// returned record matches what a later read would see.
	startedAt = startedAt.UTC().Truncate(time.Second)

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO missions (name, start_date) VALUES (?, ?)",
		name, startedAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert mission: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get mission id: %w", err)
	}

	return &secondary.MissionRecord{
		ID:        id,
		Name:      name,
		StartedAt: startedAt,
	}, nil
}

// CloseOpen sets end_date on every open mission. Written as a set update so
// it also repairs a store where more than one row was left open.
func (r *MissionRepository) CloseOpen(ctx context.Context, endedAt time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE missions SET end_date = ? WHERE end_date IS NULL",
		endedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to close open missions: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count closed missions: %w", err)
	}
	return affected, nil
}

// ReopenLatest clears end_date on the most recently started mission.
func (r *MissionRepository) ReopenLatest(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE missions SET end_date = NULL WHERE id IN (SELECT id FROM missions ORDER BY start_date DESC LIMIT 1)",
	)
	if err != nil {
		return 0, fmt.Errorf("failed to reopen latest mission: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count reopened missions: %w", err)
	}
	return affected, nil
}

// Active returns the open mission with the most recent start date, or nil.
func (r *MissionRepository) Active(ctx context.Context) (*secondary.MissionRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, name, start_date, end_date FROM missions WHERE end_date IS NULL ORDER BY start_date DESC LIMIT 1",
	)

	record, err := scanMission(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active mission: %w", err)
	}
	return record, nil
}

// List returns up to limit missions ordered by id descending.
func (r *MissionRepository) List(ctx context.Context, limit int) ([]*secondary.MissionRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, start_date, end_date FROM missions ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}
	defer rows.Close()

	return collectMissions(rows)
}

// ListSince returns missions started at or after since, plus every open
// mission regardless of start date. An ongoing mission is still accumulating
// time now, so it belongs in any report window.
func (r *MissionRepository) ListSince(ctx context.Context, since time.Time) ([]*secondary.MissionRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, start_date, end_date FROM missions WHERE start_date >= ? OR end_date IS NULL ORDER BY start_date DESC",
		since.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions since %s: %w", since.Format(time.RFC3339), err)
	}
	defer rows.Close()

	return collectMissions(rows)
}

// Counts returns total, running, and finished mission counts.
func (r *MissionRepository) Counts(ctx context.Context) (secondary.MissionCounts, error) {
	var counts secondary.MissionCounts
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*), COUNT(*) - COUNT(end_date), COUNT(end_date) FROM missions",
	).Scan(&counts.Total, &counts.Running, &counts.Finished)
	if err != nil {
		return secondary.MissionCounts{}, fmt.Errorf("failed to count missions: %w", err)
	}
	return counts, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMission(row rowScanner) (*secondary.MissionRecord, error) {
	var (
		record   secondary.MissionRecord
		startRaw string
		endRaw   sql.NullString
	)

	if err := row.Scan(&record.ID, &record.Name, &startRaw, &endRaw); err != nil {
		return nil, err
	}

	startedAt, err := time.Parse(time.RFC3339, startRaw)
	if err != nil {
		return nil, fmt.Errorf("malformed start_date for mission %d: %w", record.ID, err)
	}
	record.StartedAt = startedAt

	if endRaw.Valid {
		endedAt, err := time.Parse(time.RFC3339, endRaw.String)
		if err != nil {
			return nil, fmt.Errorf("malformed end_date for mission %d: %w", record.ID, err)
		}
		record.EndedAt = &endedAt
	}

	return &record, nil
}

func collectMissions(rows *sql.Rows) ([]*secondary.MissionRecord, error) {
	var missions []*secondary.MissionRecord
	for rows.Next() {
		record, err := scanMission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mission: %w", err)
		}
		missions = append(missions, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read missions: %w", err)
	}
	return missions, nil
}

// Ensure MissionRepository implements the interface
var _ secondary.MissionRepository = (*MissionRepository)(nil)
