// Package app implements the application services over the driven ports.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/tempo/internal/core/mission"
	"github.com/example/tempo/internal/core/report"
	"github.com/example/tempo/internal/ports/secondary"
)

// MissionService layers the mission lifecycle on top of the repository:
// stop-before-start, resume, and report-window resolution. At most one
// mission is open after any service operation.
type MissionService struct {
	missions secondary.MissionRepository
	resolver report.Resolver
	now      func() time.Time
}

// NewMissionService creates a new MissionService with injected dependencies.
func NewMissionService(missions secondary.MissionRepository, resolver report.Resolver) *MissionService {
	return &MissionService{
		missions: missions,
		resolver: resolver,
		now:      time.Now,
	}
}

// Start closes every open mission and opens a new one named name.
// Ending the previous mission is deliberate: starting work on something new
// means the old mission is over.
func (s *MissionService) Start(ctx context.Context, name string) (*mission.Mission, error) {
	now := s.now()

	if _, err := s.missions.CloseOpen(ctx, now); err != nil {
		return nil, fmt.Errorf("failed to close previous mission: %w", err)
	}

	record, err := s.missions.Insert(ctx, name, now)
	if err != nil {
		return nil, fmt.Errorf("failed to start mission: %w", err)
	}

	return recordToMission(record), nil
}

// Stop closes every open mission and returns how many were closed.
// Zero is a normal outcome, not an error.
func (s *MissionService) Stop(ctx context.Context) (int64, error) {
	closed, err := s.missions.CloseOpen(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to stop missions: %w", err)
	}
	return closed, nil
}

// Resume reopens the most recently started mission, keeping its original
// start date. Any other open mission is closed first so a single mission is
// open afterwards. No-op on an empty store.
func (s *MissionService) Resume(ctx context.Context) (*mission.Mission, error) {
	if _, err := s.missions.CloseOpen(ctx, s.now()); err != nil {
		return nil, fmt.Errorf("failed to close open missions: %w", err)
	}

	reopened, err := s.missions.ReopenLatest(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resume mission: %w", err)
	}
	if reopened == 0 {
		return nil, nil
	}

	record, err := s.missions.Active(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load resumed mission: %w", err)
	}
	return recordToMission(record), nil
}

// Active returns the currently open mission, or nil when none is open.
func (s *MissionService) Active(ctx context.Context) (*mission.Mission, error) {
	record, err := s.missions.Active(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get active mission: %w", err)
	}
	if record == nil {
		return nil, nil
	}
	return recordToMission(record), nil
}

// List returns the last limit missions, newest first. A non-positive limit
// means the default of 10.
func (s *MissionService) List(ctx context.Context, limit int) ([]mission.Mission, error) {
	if limit <= 0 {
		limit = mission.DefaultListLimit
	}

	records, err := s.missions.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}
	return recordsToMissions(records), nil
}

// Report resolves expr into a window lower bound and returns every mission
// started inside the window plus any still-open mission, newest first.
// Unparseable expressions wrap report.ErrParse; a bound not strictly in the
// past wraps report.ErrInvalidRange. An empty result is a normal outcome.
func (s *MissionService) Report(ctx context.Context, expr string) ([]mission.Mission, error) {
	anchor := s.now()

	since, err := s.resolver.Resolve(expr, anchor)
	if err != nil {
		return nil, err
	}

	if err := report.ValidateWindow(since, anchor); err != nil {
		return nil, err
	}

	records, err := s.missions.ListSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to build report: %w", err)
	}
	return recordsToMissions(records), nil
}

// Elapsed returns the time spent on m as of the current instant.
func (s *MissionService) Elapsed(m mission.Mission) time.Duration {
	return m.Elapsed(s.now())
}

// Counts returns total, running, and finished mission counts.
func (s *MissionService) Counts(ctx context.Context) (secondary.MissionCounts, error) {
	counts, err := s.missions.Counts(ctx)
	if err != nil {
		return secondary.MissionCounts{}, fmt.Errorf("failed to count missions: %w", err)
	}
	return counts, nil
}

func recordToMission(record *secondary.MissionRecord) *mission.Mission {
	m := &mission.Mission{
		ID:        record.ID,
		Name:      record.Name,
		StartDate: record.StartedAt,
	}
	if record.EndedAt != nil {
		end := *record.EndedAt
		m.EndDate = &end
	}
	return m
}

func recordsToMissions(records []*secondary.MissionRecord) []mission.Mission {
	missions := make([]mission.Mission, len(records))
	for i, record := range records {
		missions[i] = *recordToMission(record)
	}
	return missions
}
