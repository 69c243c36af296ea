package app

import (
	"context"

	"lms-admin-service/internal/domain"
)

// AddContent creates a content item of the given category at the end of the
// course contents and bumps the content count.
func (s *CourseService) AddContent(ctx context.Context, courseID string, category domain.ContentCategory, draft domain.ContentDraft) (domain.CourseContent, domain.Course, error) {
	if !category.Valid() {
		return domain.CourseContent{}, domain.Course{}, &domain.ValidationError{Field: "category", Message: "unknown content category " + string(category)}
	}
	if err := draft.Validate(); err != nil {
		return domain.CourseContent{}, domain.Course{}, err
	}
	content := domain.NewContent(s.newID("content"), category, draft)
	c, err := s.edit(ctx, courseID, func(c domain.Course) (domain.CourseUpdate, bool, error) {
		return domain.AddContent(c, content), true, nil
	})
	if err != nil {
		return domain.CourseContent{}, domain.Course{}, err
	}
	return content, c, nil
}

// ContentDraft returns the editable fields of a content item, as the edit
// modal is prefilled with them.
func (s *CourseService) ContentDraft(ctx context.Context, courseID, contentID string) (domain.ContentDraft, error) {
	c, err := s.GetCourse(ctx, courseID)
	if err != nil {
		return domain.ContentDraft{}, err
	}
	item, ok := domain.FindContent(c.Contents, contentID)
	if !ok {
		return domain.ContentDraft{}, domain.ErrContentNotFound
	}
	return item.Draft(), nil
}

// EditContent replaces the fields of an existing item. The category stays the
// one chosen at creation; an unknown contentID is ignored.
func (s *CourseService) EditContent(ctx context.Context, courseID, contentID string, draft domain.ContentDraft) (domain.Course, error) {
	if err := draft.Validate(); err != nil {
		return domain.Course{}, err
	}
	return s.edit(ctx, courseID, func(c domain.Course) (domain.CourseUpdate, bool, error) {
		existing, ok := domain.FindContent(c.Contents, contentID)
		if !ok {
			return domain.CourseUpdate{}, false, nil
		}
		u, ok := domain.EditContent(c, domain.NewContent(contentID, existing.Category, draft))
		return u, ok, nil
	})
}

// RemoveContent deletes an item. The content count only drops when the item existed.
func (s *CourseService) RemoveContent(ctx context.Context, courseID, contentID string) (domain.Course, error) {
	return s.edit(ctx, courseID, func(c domain.Course) (domain.CourseUpdate, bool, error) {
		u, ok := domain.RemoveContent(c, contentID)
		return u, ok, nil
	})
}

// AddAttachment attaches a link to a content item.
func (s *CourseService) AddAttachment(ctx context.Context, courseID, contentID, name, url string) (domain.Course, error) {
	return s.editContent(ctx, courseID, contentID, func(item *domain.CourseContent) error {
		atts, err := domain.AddLinkAttachment(item.Attachments, s.newID("att"), name, url)
		if err != nil {
			return err
		}
		item.Attachments = atts
		return nil
	})
}

// RemoveAttachment detaches an attachment from a content item.
func (s *CourseService) RemoveAttachment(ctx context.Context, courseID, contentID, attachmentID string) (domain.Course, error) {
	return s.editContent(ctx, courseID, contentID, func(item *domain.CourseContent) error {
		item.Attachments = domain.RemoveAttachment(item.Attachments, attachmentID)
		return nil
	})
}

func (s *CourseService) editContent(ctx context.Context, courseID, contentID string, fn func(item *domain.CourseContent) error) (domain.Course, error) {
	return s.edit(ctx, courseID, func(c domain.Course) (domain.CourseUpdate, bool, error) {
		item, ok := domain.FindContent(c.Contents, contentID)
		if !ok {
			return domain.CourseUpdate{}, false, nil
		}
		item = item.Clone()
		if err := fn(&item); err != nil {
			return domain.CourseUpdate{}, false, err
		}
		u, ok := domain.EditContent(c, item)
		return u, ok, nil
	})
}
