package domain

import (
	"strings"
	"time"
)

// DefaultRewards are the quiz points a new course starts with.
var DefaultRewards = QuizRewards{
	FirstAttempt:   100,
	SecondAttempt:  75,
	ThirdAttempt:   50,
	FourthAndAbove: 25,
}

// NewCourse builds an empty draft course.
func NewCourse(id, name string, rewards QuizRewards, now time.Time) Course {
	return Course{
		ID:            id,
		Name:          name,
		Tags:          []Tag{},
		Status:        StatusDraft,
		TotalDuration: "0h 00m",
		Contents:      []CourseContent{},
		AccessType:    AccessEveryone,
		Quiz: Quiz{
			Questions: []QuizQuestion{},
			Rewards:   rewards,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ValidateCourseName trims name and rejects blank values.
func ValidateCourseName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", invalid("name", "course name is required")
	}
	return name, nil
}

// CourseUpdate lists the fields a partial update may replace.
type CourseUpdate struct {
	Name              Opt[string]          `json:"name"`
	ImageURL          Opt[string]          `json:"imageUrl"`
	Description       Opt[string]          `json:"description"`
	Tags              Opt[[]Tag]           `json:"tags"`
	Status            Opt[CourseStatus]    `json:"status"`
	Views             Opt[int]             `json:"views"`
	ContentCount      Opt[int]             `json:"contentCount"`
	TotalDuration     Opt[string]          `json:"totalDuration"`
	ResponsiblePerson Opt[string]          `json:"responsiblePerson"`
	Contents          Opt[[]CourseContent] `json:"contents"`
	AccessType        Opt[AccessType]      `json:"accessType"`
	Price             Opt[*float64]        `json:"price"`
	Quiz              Opt[Quiz]            `json:"quiz"`
}

// ApplyCourseUpdate merges u into c. Fields absent from u keep their value,
// UpdatedAt is refreshed and never moves backwards. The result shares no
// memory with c or u. Field-level invariants are the caller's concern.
func ApplyCourseUpdate(c Course, u CourseUpdate, now time.Time) Course {
	out := c.Clone()
	u.Name.apply(&out.Name)
	u.ImageURL.apply(&out.ImageURL)
	u.Description.apply(&out.Description)
	u.Status.apply(&out.Status)
	u.Views.apply(&out.Views)
	u.ContentCount.apply(&out.ContentCount)
	u.TotalDuration.apply(&out.TotalDuration)
	u.ResponsiblePerson.apply(&out.ResponsiblePerson)
	u.AccessType.apply(&out.AccessType)
	if tags, ok := u.Tags.Get(); ok {
		out.Tags = cloneTags(tags)
	}
	if contents, ok := u.Contents.Get(); ok {
		out.Contents = cloneContents(contents)
	}
	if quiz, ok := u.Quiz.Get(); ok {
		out.Quiz = quiz.Clone()
	}
	if price, ok := u.Price.Get(); ok {
		out.Price = cloneFloat(price)
	}
	if now.After(c.UpdatedAt) {
		out.UpdatedAt = now
	}
	return out
}

// AddTag appends a tag named name unless the name is blank or already
// present (case-insensitive). The second result reports whether tags changed.
func AddTag(tags []Tag, name string, newID IDFunc) ([]Tag, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return cloneTags(tags), false
	}
	for _, t := range tags {
		if strings.EqualFold(t.Name, name) {
			return cloneTags(tags), false
		}
	}
	out := make([]Tag, 0, len(tags)+1)
	out = append(out, tags...)
	out = append(out, Tag{ID: newID("t"), Name: name})
	return out, true
}

// RemoveTag filters the tag with id out of tags.
func RemoveTag(tags []Tag, id string) []Tag {
	out := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

// AccessUpdate selects an access type. Any non-paid selection clears the price.
func AccessUpdate(access AccessType) CourseUpdate {
	u := CourseUpdate{AccessType: Set(access)}
	if access != AccessPaid {
		u.Price = Set[*float64](nil)
	}
	return u
}

// PriceUpdate sets the course price.
func PriceUpdate(price float64) CourseUpdate {
	return CourseUpdate{Price: Set(&price)}
}

// PublishUpdate moves the course between published and draft.
func PublishUpdate(published bool) CourseUpdate {
	if published {
		return CourseUpdate{Status: Set(StatusPublished)}
	}
	return CourseUpdate{Status: Set(StatusDraft)}
}

// Visibility is the value displayed by the "show course to" picker.
func (c Course) Visibility() AccessType {
	if c.AccessType == AccessEveryone || c.AccessType == AccessSignedIn {
		return c.AccessType
	}
	return AccessEveryone
}

// AccessRule is the value displayed by the enrollment rule picker.
func (c Course) AccessRule() AccessType {
	switch c.AccessType {
	case AccessOpen, AccessInvitation, AccessPaid:
		return c.AccessType
	}
	return AccessOpen
}

// ShareURL is the public link of a course.
func ShareURL(origin, courseID string) string {
	return strings.TrimRight(origin, "/") + "/courses/" + courseID
}

// Clone returns a deep copy of c.
func (c Course) Clone() Course {
	out := c
	out.Tags = cloneTags(c.Tags)
	out.Contents = cloneContents(c.Contents)
	out.Quiz = c.Quiz.Clone()
	out.Price = cloneFloat(c.Price)
	return out
}

// Clone returns a deep copy of q.
func (q Quiz) Clone() Quiz {
	out := Quiz{Rewards: q.Rewards, Questions: make([]QuizQuestion, len(q.Questions))}
	for i, question := range q.Questions {
		out.Questions[i] = question.clone()
	}
	return out
}

func (q QuizQuestion) clone() QuizQuestion {
	out := q
	out.Options = append([]QuizOption{}, q.Options...)
	return out
}

// Clone returns a deep copy of cc.
func (cc CourseContent) Clone() CourseContent {
	out := cc
	out.Duration = cloneString(cc.Duration)
	out.VideoURL = cloneString(cc.VideoURL)
	out.FileURL = cloneString(cc.FileURL)
	out.ImageURL = cloneString(cc.ImageURL)
	if cc.AllowDownload != nil {
		v := *cc.AllowDownload
		out.AllowDownload = &v
	}
	out.Attachments = append([]Attachment{}, cc.Attachments...)
	return out
}

func cloneTags(tags []Tag) []Tag {
	return append([]Tag{}, tags...)
}

func cloneContents(contents []CourseContent) []CourseContent {
	out := make([]CourseContent, len(contents))
	for i, c := range contents {
		out[i] = c.Clone()
	}
	return out
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	f := *v
	return &f
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	s := *v
	return &s
}
