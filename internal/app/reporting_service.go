package app

import (
	"context"
	"sync"

	"lms-admin-service/internal/domain"
)

// ParticipantRepository loads enrolled participants.
type ParticipantRepository interface {
	List(ctx context.Context) ([]domain.Participant, error)
}

// Report is the participant table as rendered for one filter.
type Report struct {
	Filter  string                  `json:"filter"`
	Columns []domain.ColumnKey      `json:"columns"`
	Rows    []domain.ReportRow      `json:"rows"`
	Showing int                     `json:"showing"`
	Total   int                     `json:"total"`
	Metrics domain.ReportingMetrics `json:"metrics"`
}

// ColumnState is a report column with its current visibility.
type ColumnState struct {
	domain.Column
	Visible bool `json:"visible"`
}

// ReportingService projects participants into the reporting table. The
// visible column set is shared by every caller; the last toggle wins.
type ReportingService struct {
	participants ParticipantRepository

	mu      sync.RWMutex
	columns domain.ColumnSet
}

func NewReportingService(participants ParticipantRepository) *ReportingService {
	return &ReportingService{participants: participants, columns: domain.DefaultColumns()}
}

// Report filters participants by status ("all" or a participant status) and
// renders them with the visible columns.
func (s *ReportingService) Report(ctx context.Context, filter string) (Report, error) {
	if err := validateFilter(filter); err != nil {
		return Report{}, err
	}
	if filter == "" {
		filter = domain.FilterAll
	}
	all, err := s.participants.List(ctx)
	if err != nil {
		return Report{}, err
	}
	filtered := domain.FilterParticipants(all, filter)

	s.mu.RLock()
	columns := s.columns
	s.mu.RUnlock()

	rows := make([]domain.ReportRow, len(filtered))
	for i, p := range filtered {
		rows[i] = domain.ProjectRow(columns, i, p)
	}
	return Report{
		Filter:  filter,
		Columns: columns.Keys(),
		Rows:    rows,
		Showing: len(filtered),
		Total:   len(all),
		Metrics: domain.ComputeMetrics(all),
	}, nil
}

func (s *ReportingService) Metrics(ctx context.Context) (domain.ReportingMetrics, error) {
	all, err := s.participants.List(ctx)
	if err != nil {
		return domain.ReportingMetrics{}, err
	}
	return domain.ComputeMetrics(all), nil
}

// Columns lists every report column with its visibility.
func (s *ReportingService) Columns() []ColumnState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ColumnState, len(domain.ReportColumns))
	for i, c := range domain.ReportColumns {
		out[i] = ColumnState{Column: c, Visible: s.columns.Visible(c.Key)}
	}
	return out
}

// ToggleColumn flips the visibility of one column.
func (s *ReportingService) ToggleColumn(key domain.ColumnKey) ([]ColumnState, error) {
	s.mu.Lock()
	next, err := s.columns.Toggle(key)
	if err != nil {
		s.mu.Unlock()
		return nil, &domain.ValidationError{Field: "column", Message: err.Error()}
	}
	s.columns = next
	s.mu.Unlock()
	return s.Columns(), nil
}

func validateFilter(filter string) error {
	switch domain.ParticipantStatus(filter) {
	case "", domain.FilterAll, domain.ParticipantYetToStart, domain.ParticipantInProgress, domain.ParticipantCompleted:
		return nil
	}
	return &domain.ValidationError{Field: "status", Message: "unknown participant status " + filter}
}
