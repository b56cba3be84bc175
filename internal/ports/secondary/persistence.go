// Package secondary defines the driven ports of the application: the
// interfaces through which it reaches external systems.
package secondary

import (
	"context"
	"time"
)

// MissionRepository defines the secondary port for mission persistence.
// The repository exclusively owns mutation of mission rows.
type MissionRepository interface {
	// Insert persists a new open mission and returns it with its assigned ID.
	Insert(ctx context.Context, name string, startedAt time.Time) (*MissionRecord, error)

	// CloseOpen sets the end date on every open mission and returns the
	// number of rows affected. Zero rows is not an error.
	CloseOpen(ctx context.Context, endedAt time.Time) (int64, error)

	// ReopenLatest clears the end date on the mission with the most recent
	// start date, regardless of its current end state. Returns the number of
	// rows affected; zero means the store is empty.
	ReopenLatest(ctx context.Context) (int64, error)

	// Active returns the open mission with the most recent start date, or
	// nil when no mission is open.
	Active(ctx context.Context) (*MissionRecord, error)

	// List returns up to limit missions ordered by id descending.
	List(ctx context.Context, limit int) ([]*MissionRecord, error)

	// ListSince returns every mission started at or after since, plus every
	// open mission regardless of start date, ordered by start date
	// descending.
	ListSince(ctx context.Context, since time.Time) ([]*MissionRecord, error)

	// Counts returns total, running, and finished mission counts.
	Counts(ctx context.Context) (MissionCounts, error)
}

// MissionRecord represents a mission as stored in persistence.
// EndedAt is nil while the mission is ongoing.
type MissionRecord struct {
	ID        int64
	Name      string
	StartedAt time.Time
	EndedAt   *time.Time
}

// MissionCounts summarizes the store for the info command.
type MissionCounts struct {
	Total    int
	Running  int
	Finished int
}
