package domain_test

import (
	"testing"

	"lms-admin-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContentKeepsCategoryFields(t *testing.T) {
	draft := domain.ContentDraft{
		Title:         "Lesson",
		VideoURL:      "https://youtube.com/watch?v=1",
		Duration:      "15:00",
		AllowDownload: true,
	}

	video := domain.NewContent("c1", domain.CategoryVideo, draft)
	require.NotNil(t, video.VideoURL)
	require.NotNil(t, video.Duration)
	assert.Equal(t, "15:00", *video.Duration)
	assert.Nil(t, video.AllowDownload)

	doc := domain.NewContent("c2", domain.CategoryDocument, draft)
	assert.Nil(t, doc.VideoURL)
	assert.Nil(t, doc.Duration)
	require.NotNil(t, doc.AllowDownload)
	assert.True(t, *doc.AllowDownload)

	img := domain.NewContent("c3", domain.CategoryImage, draft)
	require.NotNil(t, img.AllowDownload)

	quiz := domain.NewContent("c4", domain.CategoryQuiz, draft)
	assert.Nil(t, quiz.VideoURL)
	assert.Nil(t, quiz.AllowDownload)
}

func TestContentCountFollowsAddAndRemove(t *testing.T) {
	c := sampleCourse()
	first := domain.NewContent("c1", domain.CategoryVideo, domain.ContentDraft{Title: "one"})
	second := domain.NewContent("c2", domain.CategoryDocument, domain.ContentDraft{Title: "two"})

	c = domain.ApplyCourseUpdate(c, domain.AddContent(c, first), t0)
	c = domain.ApplyCourseUpdate(c, domain.AddContent(c, second), t0)
	require.Equal(t, 2, c.ContentCount)
	require.Len(t, c.Contents, 2)

	u, ok := domain.RemoveContent(c, "c1")
	require.True(t, ok)
	c = domain.ApplyCourseUpdate(c, u, t0)
	assert.Equal(t, 1, c.ContentCount)

	_, ok = domain.RemoveContent(c, "c1")
	assert.False(t, ok, "second removal must not decrement again")
	assert.Equal(t, 1, c.ContentCount)
}

func TestRemoveContentFloorsCountAtZero(t *testing.T) {
	c := sampleCourse()
	c.Contents = []domain.CourseContent{{ID: "c1", Category: domain.CategoryImage}}
	c.ContentCount = 0

	u, ok := domain.RemoveContent(c, "c1")
	require.True(t, ok)
	c = domain.ApplyCourseUpdate(c, u, t0)
	assert.Equal(t, 0, c.ContentCount)
	assert.Empty(t, c.Contents)
}

func TestEditContentKeepsCategoryAndIgnoresUnknown(t *testing.T) {
	c := sampleCourse()
	c.Contents = []domain.CourseContent{domain.NewContent("c1", domain.CategoryVideo, domain.ContentDraft{Title: "old"})}

	edited := domain.NewContent("c1", domain.CategoryDocument, domain.ContentDraft{Title: "new"})
	u, ok := domain.EditContent(c, edited)
	require.True(t, ok)
	c = domain.ApplyCourseUpdate(c, u, t0)
	assert.Equal(t, "new", c.Contents[0].Title)
	assert.Equal(t, domain.CategoryVideo, c.Contents[0].Category)

	_, ok = domain.EditContent(c, domain.CourseContent{ID: "nope"})
	assert.False(t, ok)
}

func TestLinkAttachments(t *testing.T) {
	atts, err := domain.AddLinkAttachment(nil, "a1", "", "https://docs.example.com")
	require.NoError(t, err)
	require.Len(t, atts, 1)
	assert.Equal(t, "https://docs.example.com", atts[0].Name)
	assert.Equal(t, domain.AttachmentLink, atts[0].Type)

	_, err = domain.AddLinkAttachment(atts, "a2", "name", "  ")
	assert.True(t, domain.IsValidation(err))

	assert.Empty(t, domain.RemoveAttachment(atts, "a1"))
}

func TestContentDraftValidate(t *testing.T) {
	assert.Error(t, domain.ContentDraft{}.Validate())
	assert.NoError(t, domain.ContentDraft{Title: "x"}.Validate())
}
