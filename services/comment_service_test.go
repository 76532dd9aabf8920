// services/comment_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"street-scan/models"
	"street-scan/store"
)

func TestAddRejectsBlankText(t *testing.T) {
	svc := NewCommentService(store.NewMemStore())

	_, err := svc.Add(1, asha, "   \n\t ")
	assert.ErrorIs(t, err, models.ErrValidation)

	comments, err := svc.ListFor(1)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestAddPrependsNewestFirst(t *testing.T) {
	svc := NewCommentService(store.NewMemStore())

	first, err := svc.Add(1, asha, "first")
	require.NoError(t, err)
	second, err := svc.Add(1, asha, "  second  ")
	require.NoError(t, err)
	assert.Equal(t, "second", second.Text)
	assert.Greater(t, second.ID, first.ID)

	comments, err := svc.ListFor(1)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "second", comments[0].Text)
	assert.Equal(t, "first", comments[1].Text)
}

func TestCommentsAreScopedPerReport(t *testing.T) {
	svc := NewCommentService(store.NewMemStore())

	_, err := svc.Add(1, asha, "on report one")
	require.NoError(t, err)

	other, err := svc.ListFor(2)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestAddCapturesAuthorSnapshot(t *testing.T) {
	svc := NewCommentService(store.NewMemStore())

	c, err := svc.Add(1, models.Session{Email: "a@x.com", Name: "Asha", IsAdmin: true}, "hello")
	require.NoError(t, err)
	assert.Equal(t, models.CommentAuthor{Name: "Asha", Email: "a@x.com"}, c.User)
}
