package domain

import "strings"

// Kanban is the two-column catalog layout.
type Kanban struct {
	Published []Course `json:"published"`
	Draft     []Course `json:"draft"`
}

// FilterCourses keeps courses whose name contains query, ignoring case.
// An empty query keeps everything.
func FilterCourses(courses []Course, query string) []Course {
	q := strings.ToLower(query)
	out := make([]Course, 0, len(courses))
	for _, c := range courses {
		if strings.Contains(strings.ToLower(c.Name), q) {
			out = append(out, c)
		}
	}
	return out
}

// PartitionKanban splits courses by status, preserving order.
func PartitionKanban(courses []Course) Kanban {
	k := Kanban{Published: []Course{}, Draft: []Course{}}
	for _, c := range courses {
		switch c.Status {
		case StatusPublished:
			k.Published = append(k.Published, c)
		case StatusDraft:
			k.Draft = append(k.Draft, c)
		}
	}
	return k
}
