package domain

import "strings"

// ContentDraft is what the content modal submits. Fields that do not apply
// to the content category are dropped by NewContent.
type ContentDraft struct {
	Title             string       `json:"title"`
	VideoURL          string       `json:"videoUrl"`
	Duration          string       `json:"duration"`
	FileURL           string       `json:"fileUrl"`
	ImageURL          string       `json:"imageUrl"`
	AllowDownload     bool         `json:"allowDownload"`
	ResponsiblePerson string       `json:"responsiblePerson"`
	Attachments       []Attachment `json:"attachments"`
}

// Validate rejects drafts without a title.
func (d ContentDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return invalid("title", "content title is required")
	}
	return nil
}

// NewContent builds a content item of the given category. videoUrl and
// duration are kept only for videos, allowDownload only for documents and
// images. Quiz items carry no type-specific fields.
func NewContent(id string, category ContentCategory, d ContentDraft) CourseContent {
	c := CourseContent{
		ID:                id,
		Title:             d.Title,
		Category:          category,
		ResponsiblePerson: d.ResponsiblePerson,
		Attachments:       append([]Attachment{}, d.Attachments...),
	}
	switch category {
	case CategoryVideo:
		c.VideoURL = &d.VideoURL
		c.Duration = &d.Duration
	case CategoryDocument:
		c.AllowDownload = &d.AllowDownload
		if d.FileURL != "" {
			c.FileURL = &d.FileURL
		}
	case CategoryImage:
		c.AllowDownload = &d.AllowDownload
		if d.ImageURL != "" {
			c.ImageURL = &d.ImageURL
		}
	}
	return c
}

// Draft returns the editable fields of c, as the modal is prefilled on edit.
func (c CourseContent) Draft() ContentDraft {
	d := ContentDraft{
		Title:             c.Title,
		ResponsiblePerson: c.ResponsiblePerson,
		Attachments:       append([]Attachment{}, c.Attachments...),
	}
	if c.VideoURL != nil {
		d.VideoURL = *c.VideoURL
	}
	if c.Duration != nil {
		d.Duration = *c.Duration
	}
	if c.FileURL != nil {
		d.FileURL = *c.FileURL
	}
	if c.ImageURL != nil {
		d.ImageURL = *c.ImageURL
	}
	if c.AllowDownload != nil {
		d.AllowDownload = *c.AllowDownload
	}
	return d
}

// FindContent returns the content item with id.
func FindContent(contents []CourseContent, id string) (CourseContent, bool) {
	for _, c := range contents {
		if c.ID == id {
			return c, true
		}
	}
	return CourseContent{}, false
}

// AddContent appends content and increments ContentCount by one.
func AddContent(c Course, content CourseContent) CourseUpdate {
	contents := make([]CourseContent, 0, len(c.Contents)+1)
	contents = append(contents, c.Contents...)
	contents = append(contents, content)
	return CourseUpdate{
		Contents:     Set(contents),
		ContentCount: Set(c.ContentCount + 1),
	}
}

// EditContent replaces the item whose id matches content.ID, keeping its
// original category. ok is false, and the update empty, when no item matches.
func EditContent(c Course, content CourseContent) (u CourseUpdate, ok bool) {
	contents := make([]CourseContent, len(c.Contents))
	for i, existing := range c.Contents {
		if existing.ID == content.ID {
			content.Category = existing.Category
			contents[i] = content
			ok = true
			continue
		}
		contents[i] = existing
	}
	if !ok {
		return CourseUpdate{}, false
	}
	return CourseUpdate{Contents: Set(contents)}, true
}

// RemoveContent filters the item with id and decrements ContentCount,
// floored at zero. Nothing changes when the item is absent.
func RemoveContent(c Course, id string) (u CourseUpdate, ok bool) {
	contents := make([]CourseContent, 0, len(c.Contents))
	for _, existing := range c.Contents {
		if existing.ID == id {
			ok = true
			continue
		}
		contents = append(contents, existing)
	}
	if !ok {
		return CourseUpdate{}, false
	}
	count := c.ContentCount - 1
	if count < 0 {
		count = 0
	}
	return CourseUpdate{
		Contents:     Set(contents),
		ContentCount: Set(count),
	}, true
}

// AddLinkAttachment appends a link attachment. url is required; name
// defaults to url.
func AddLinkAttachment(atts []Attachment, id, name, url string) ([]Attachment, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, invalid("url", "attachment url is required")
	}
	if strings.TrimSpace(name) == "" {
		name = url
	}
	out := make([]Attachment, 0, len(atts)+1)
	out = append(out, atts...)
	return append(out, Attachment{ID: id, Type: AttachmentLink, Name: name, URL: url}), nil
}

// RemoveAttachment filters the attachment with id.
func RemoveAttachment(atts []Attachment, id string) []Attachment {
	out := make([]Attachment, 0, len(atts))
	for _, a := range atts {
		if a.ID != id {
			out = append(out, a)
		}
	}
	return out
}
