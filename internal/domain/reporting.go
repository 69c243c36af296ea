package domain

import "time"

// FilterAll selects every participant regardless of status.
const FilterAll = "all"

// FilterParticipants keeps participants whose status equals filter exactly.
// FilterAll and the empty string keep everyone.
func FilterParticipants(ps []Participant, filter string) []Participant {
	if filter == "" || filter == FilterAll {
		return append([]Participant{}, ps...)
	}
	out := make([]Participant, 0, len(ps))
	for _, p := range ps {
		if string(p.Status) == filter {
			out = append(out, p)
		}
	}
	return out
}

// ComputeMetrics counts participants per status.
func ComputeMetrics(ps []Participant) ReportingMetrics {
	m := ReportingMetrics{TotalParticipants: len(ps)}
	for _, p := range ps {
		switch p.Status {
		case ParticipantYetToStart:
			m.YetToStart++
		case ParticipantInProgress:
			m.InProgress++
		case ParticipantCompleted:
			m.Completed++
		}
	}
	return m
}

type ColumnKey string

const (
	ColumnSNo                  ColumnKey = "sno"
	ColumnCourseName           ColumnKey = "courseName"
	ColumnParticipantName      ColumnKey = "participantName"
	ColumnEnrolledDate         ColumnKey = "enrolledDate"
	ColumnStartDate            ColumnKey = "startDate"
	ColumnTimeSpent            ColumnKey = "timeSpent"
	ColumnCompletionPercentage ColumnKey = "completionPercentage"
	ColumnCompletedDate        ColumnKey = "completedDate"
	ColumnStatus               ColumnKey = "status"
)

// Column describes one report column.
type Column struct {
	Key            ColumnKey `json:"key"`
	Label          string    `json:"label"`
	DefaultVisible bool      `json:"defaultVisible"`
}

// ReportColumns lists the report columns in display order.
var ReportColumns = []Column{
	{Key: ColumnSNo, Label: "S.No", DefaultVisible: true},
	{Key: ColumnCourseName, Label: "Course Name", DefaultVisible: true},
	{Key: ColumnParticipantName, Label: "Participant Name", DefaultVisible: true},
	{Key: ColumnEnrolledDate, Label: "Enrolled Date", DefaultVisible: true},
	{Key: ColumnStartDate, Label: "Start Date", DefaultVisible: true},
	{Key: ColumnTimeSpent, Label: "Time Spent", DefaultVisible: true},
	{Key: ColumnCompletionPercentage, Label: "Completion %", DefaultVisible: true},
	{Key: ColumnCompletedDate, Label: "Completed Date", DefaultVisible: true},
	{Key: ColumnStatus, Label: "Status", DefaultVisible: true},
}

func knownColumn(key ColumnKey) bool {
	for _, c := range ReportColumns {
		if c.Key == key {
			return true
		}
	}
	return false
}

// ColumnSet is the set of visible report columns.
type ColumnSet map[ColumnKey]struct{}

// DefaultColumns returns the columns visible by default.
func DefaultColumns() ColumnSet {
	s := ColumnSet{}
	for _, c := range ReportColumns {
		if c.DefaultVisible {
			s[c.Key] = struct{}{}
		}
	}
	return s
}

// Toggle flips membership of key and returns the new set; s is not modified.
func (s ColumnSet) Toggle(key ColumnKey) (ColumnSet, error) {
	if !knownColumn(key) {
		return s, ErrUnknownColumn
	}
	out := make(ColumnSet, len(s)+1)
	for k := range s {
		out[k] = struct{}{}
	}
	if _, ok := out[key]; ok {
		delete(out, key)
	} else {
		out[key] = struct{}{}
	}
	return out, nil
}

func (s ColumnSet) Visible(key ColumnKey) bool {
	_, ok := s[key]
	return ok
}

// Keys returns the visible keys in display order.
func (s ColumnSet) Keys() []ColumnKey {
	keys := make([]ColumnKey, 0, len(s))
	for _, c := range ReportColumns {
		if s.Visible(c.Key) {
			keys = append(keys, c.Key)
		}
	}
	return keys
}

// ReportRow is one participant rendered with the visible columns only.
type ReportRow map[ColumnKey]any

// ProjectRow renders p as the index-th (0-based) row of the table.
func ProjectRow(s ColumnSet, index int, p Participant) ReportRow {
	row := ReportRow{}
	for _, key := range s.Keys() {
		switch key {
		case ColumnSNo:
			row[key] = index + 1
		case ColumnCourseName:
			row[key] = p.CourseName
		case ColumnParticipantName:
			row[key] = p.ParticipantName
		case ColumnEnrolledDate:
			row[key] = p.EnrolledDate
		case ColumnStartDate:
			row[key] = optionalTime(p.StartDate)
		case ColumnTimeSpent:
			row[key] = p.TimeSpent
		case ColumnCompletionPercentage:
			row[key] = p.CompletionPercentage
		case ColumnCompletedDate:
			row[key] = optionalTime(p.CompletedDate)
		case ColumnStatus:
			row[key] = p.Status
		}
	}
	return row
}

func optionalTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
