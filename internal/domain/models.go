package domain

import "time"

type CourseStatus string

const (
	StatusDraft     CourseStatus = "draft"
	StatusPublished CourseStatus = "published"
)

type ContentCategory string

const (
	CategoryVideo    ContentCategory = "video"
	CategoryDocument ContentCategory = "document"
	CategoryImage    ContentCategory = "image"
	CategoryQuiz     ContentCategory = "quiz"
)

// Valid reports whether c is one of the known content categories.
func (c ContentCategory) Valid() bool {
	switch c {
	case CategoryVideo, CategoryDocument, CategoryImage, CategoryQuiz:
		return true
	}
	return false
}

// AccessType carries both the visibility (everyone, signed-in) and the
// enrollment rule (open, invitation, paid) of a course in a single field.
type AccessType string

const (
	AccessEveryone   AccessType = "everyone"
	AccessSignedIn   AccessType = "signed-in"
	AccessOpen       AccessType = "open"
	AccessInvitation AccessType = "invitation"
	AccessPaid       AccessType = "paid"
)

func (a AccessType) Valid() bool {
	switch a {
	case AccessEveryone, AccessSignedIn, AccessOpen, AccessInvitation, AccessPaid:
		return true
	}
	return false
}

type AttachmentType string

const (
	AttachmentFile AttachmentType = "file"
	AttachmentLink AttachmentType = "link"
)

type ParticipantStatus string

const (
	ParticipantYetToStart ParticipantStatus = "yet-to-start"
	ParticipantInProgress ParticipantStatus = "in-progress"
	ParticipantCompleted  ParticipantStatus = "completed"
)

// Tag labels a course. Names are unique per course, compared case-insensitively.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Attachment is a file or link attached to a content item.
type Attachment struct {
	ID   string         `json:"id"`
	Type AttachmentType `json:"type"`
	Name string         `json:"name"`
	URL  string         `json:"url"`
}

// CourseContent is one unit of course material. Category is fixed at creation.
type CourseContent struct {
	ID                string          `json:"id"`
	Title             string          `json:"title"`
	Category          ContentCategory `json:"category"`
	Duration          *string         `json:"duration,omitempty"`
	VideoURL          *string         `json:"videoUrl,omitempty"`
	FileURL           *string         `json:"fileUrl,omitempty"`
	ImageURL          *string         `json:"imageUrl,omitempty"`
	AllowDownload     *bool           `json:"allowDownload,omitempty"`
	ResponsiblePerson string          `json:"responsiblePerson,omitempty"`
	Attachments       []Attachment    `json:"attachments"`
}

// QuizOption is one answer of a question. Several options may be correct.
type QuizOption struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

// QuizQuestion holds between MinOptions and MaxOptions options.
type QuizQuestion struct {
	ID      string       `json:"id"`
	Text    string       `json:"text"`
	Options []QuizOption `json:"options"`
}

// QuizRewards are the points granted by attempt ordinal.
type QuizRewards struct {
	FirstAttempt   int `json:"firstAttempt" yaml:"firstAttempt"`
	SecondAttempt  int `json:"secondAttempt" yaml:"secondAttempt"`
	ThirdAttempt   int `json:"thirdAttempt" yaml:"thirdAttempt"`
	FourthAndAbove int `json:"fourthAndAbove" yaml:"fourthAndAbove"`
}

type Quiz struct {
	Questions []QuizQuestion `json:"questions"`
	Rewards   QuizRewards    `json:"rewards"`
}

// Course is the top-level editable unit. ContentCount and TotalDuration are
// maintained by the editor and are not recomputed from Contents.
type Course struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Tags              []Tag           `json:"tags"`
	Status            CourseStatus    `json:"status"`
	Views             int             `json:"views"`
	ContentCount      int             `json:"contentCount"`
	TotalDuration     string          `json:"totalDuration"`
	ResponsiblePerson string          `json:"responsiblePerson,omitempty"`
	ImageURL          string          `json:"imageUrl,omitempty"`
	Description       string          `json:"description,omitempty"`
	Contents          []CourseContent `json:"contents"`
	AccessType        AccessType      `json:"accessType"`
	Price             *float64        `json:"price,omitempty"`
	Quiz              Quiz            `json:"quiz"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// Participant is one learner enrolled in a course. Status is supplied
// upstream and is not derived from CompletionPercentage.
type Participant struct {
	ID                   string            `json:"id"`
	CourseID             string            `json:"courseId"`
	CourseName           string            `json:"courseName"`
	ParticipantName      string            `json:"participantName"`
	EnrolledDate         time.Time         `json:"enrolledDate"`
	StartDate            *time.Time        `json:"startDate,omitempty"`
	TimeSpent            string            `json:"timeSpent"`
	CompletionPercentage int               `json:"completionPercentage"`
	CompletedDate        *time.Time        `json:"completedDate,omitempty"`
	Status               ParticipantStatus `json:"status"`
}

// ReportingMetrics are the per-status participant totals.
type ReportingMetrics struct {
	TotalParticipants int `json:"totalParticipants"`
	YetToStart        int `json:"yetToStart"`
	InProgress        int `json:"inProgress"`
	Completed         int `json:"completed"`
}
