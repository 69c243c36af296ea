package memory

import (
	"time"

	"lms-admin-service/internal/domain"
)

// DefaultResponsiblePersons is used when no list is configured.
var DefaultResponsiblePersons = []string{
	"John Smith",
	"Sarah Johnson",
	"Michael Chen",
	"Emily Davis",
	"David Wilson",
}

// StaticCatalog is the demo data the console starts with.
type StaticCatalog struct {
	Courses      []domain.Course
	Participants []domain.Participant
}

// NewStaticCatalog builds the demo catalog with timestamps relative to now.
func NewStaticCatalog(now time.Time) StaticCatalog {
	day := 24 * time.Hour
	at := func(daysAgo int) time.Time { return now.Add(-time.Duration(daysAgo) * day) }
	ptr := func(t time.Time) *time.Time { return &t }
	str := func(s string) *string { return &s }
	yes := true
	price := 49.99

	courses := []domain.Course{
		{
			ID:                "course-1",
			Name:              "Basics of Odoo CRM",
			Tags:              []domain.Tag{{ID: "t-1", Name: "CRM"}, {ID: "t-2", Name: "Sales"}},
			Status:            domain.StatusPublished,
			Views:             312,
			ContentCount:      2,
			TotalDuration:     "1h 30m",
			ResponsiblePerson: "John Smith",
			Description:       "Pipeline, leads and opportunities from first contact to won deal.",
			Contents: []domain.CourseContent{
				{
					ID:                "content-1",
					Title:             "Welcome to CRM",
					Category:          domain.CategoryVideo,
					Duration:          str("12:30"),
					VideoURL:          str("https://videos.example.com/crm-welcome.mp4"),
					ResponsiblePerson: "John Smith",
					Attachments:       []domain.Attachment{},
				},
				{
					ID:            "content-2",
					Title:         "Pipeline cheat sheet",
					Category:      domain.CategoryDocument,
					FileURL:       str("https://files.example.com/pipeline.pdf"),
					AllowDownload: &yes,
					Attachments: []domain.Attachment{
						{ID: "att-1", Type: domain.AttachmentLink, Name: "Odoo docs", URL: "https://www.odoo.com/documentation"},
					},
				},
			},
			AccessType: domain.AccessEveryone,
			Quiz: domain.Quiz{
				Questions: []domain.QuizQuestion{
					{
						ID:   "question-1",
						Text: "What does CRM stand for?",
						Options: []domain.QuizOption{
							{ID: "option-1", Text: "Customer Relationship Management", IsCorrect: true},
							{ID: "option-2", Text: "Content Resource Manager"},
						},
					},
				},
				Rewards: domain.DefaultRewards,
			},
			CreatedAt: at(40),
			UpdatedAt: at(3),
		},
		{
			ID:                "course-2",
			Name:              "Advanced Sales Techniques",
			Tags:              []domain.Tag{{ID: "t-3", Name: "Sales"}},
			Status:            domain.StatusPublished,
			Views:             128,
			ContentCount:      0,
			TotalDuration:     "2h 15m",
			ResponsiblePerson: "Sarah Johnson",
			Contents:          []domain.CourseContent{},
			AccessType:        domain.AccessPaid,
			Price:             &price,
			Quiz:              domain.Quiz{Questions: []domain.QuizQuestion{}, Rewards: domain.DefaultRewards},
			CreatedAt:         at(30),
			UpdatedAt:         at(10),
		},
		{
			ID:            "course-3",
			Name:          "Inventory Management 101",
			Tags:          []domain.Tag{{ID: "t-4", Name: "Inventory"}},
			Status:        domain.StatusDraft,
			TotalDuration: "0h 45m",
			Contents:      []domain.CourseContent{},
			AccessType:    domain.AccessSignedIn,
			Quiz:          domain.Quiz{Questions: []domain.QuizQuestion{}, Rewards: domain.DefaultRewards},
			CreatedAt:     at(7),
			UpdatedAt:     at(7),
		},
	}

	participants := []domain.Participant{
		{
			ID: "p-1", CourseID: "course-1", CourseName: "Basics of Odoo CRM",
			ParticipantName: "Alice Brown", EnrolledDate: at(20), StartDate: ptr(at(19)),
			TimeSpent: "1h 20m", CompletionPercentage: 100, CompletedDate: ptr(at(12)),
			Status: domain.ParticipantCompleted,
		},
		{
			ID: "p-2", CourseID: "course-1", CourseName: "Basics of Odoo CRM",
			ParticipantName: "Bob Martin", EnrolledDate: at(15), StartDate: ptr(at(14)),
			TimeSpent: "0h 40m", CompletionPercentage: 45,
			Status: domain.ParticipantInProgress,
		},
		{
			ID: "p-3", CourseID: "course-2", CourseName: "Advanced Sales Techniques",
			ParticipantName: "Carol White", EnrolledDate: at(5),
			TimeSpent: "0h 00m", Status: domain.ParticipantYetToStart,
		},
		{
			ID: "p-4", CourseID: "course-2", CourseName: "Advanced Sales Techniques",
			ParticipantName: "Dan Green", EnrolledDate: at(9), StartDate: ptr(at(8)),
			TimeSpent: "1h 05m", CompletionPercentage: 60,
			Status: domain.ParticipantInProgress,
		},
	}

	return StaticCatalog{Courses: courses, Participants: participants}
}
