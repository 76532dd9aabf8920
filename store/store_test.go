// store/store_test.go
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"street-scan/models"
)

func TestCommentsKey(t *testing.T) {
	assert.Equal(t, "comments_1700000000000", CommentsKey(1700000000000))
}

func TestSessionKey(t *testing.T) {
	assert.Equal(t, "currentUser_ab12", SessionKey("ab12"))
}

func TestFileStoreRoundTrip(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	users := []models.User{{Name: "Asha", Email: "a@x.com", Password: "hash"}}
	require.NoError(t, s.Set(KeyUsers, users))

	var loaded []models.User
	found, err := s.Get(KeyUsers, &loaded)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, users, loaded)
}

func TestFileStoreMissingKeyKeepsDefault(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	reports := []models.Report{}
	found, err := s.Get(KeyReports, &reports)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, reports)
}

func TestFileStoreSetOverwritesWholeValue(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Set(KeyUsers, []models.User{{Email: "a@x.com"}, {Email: "b@x.com"}}))
	require.NoError(t, s.Set(KeyUsers, []models.User{{Email: "c@x.com"}}))

	var loaded []models.User
	_, err = s.Get(KeyUsers, &loaded)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "c@x.com", loaded[0].Email)
}

func TestFileStoreDelete(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Set(KeyCurrentUser, models.Session{Email: "a@x.com"}))
	require.NoError(t, s.Delete(KeyCurrentUser))
	// deleting twice is fine
	require.NoError(t, s.Delete(KeyCurrentUser))

	var sess models.Session
	found, err := s.Get(KeyCurrentUser, &sess)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemStoreBehavesLikeFileStore(t *testing.T) {
	s := NewMemStore()

	require.NoError(t, s.Set(KeyReports, []models.Report{{ID: 1}}))
	var reports []models.Report
	found, err := s.Get(KeyReports, &reports)
	require.NoError(t, err)
	assert.True(t, found)
	require.Len(t, reports, 1)

	require.NoError(t, s.Delete(KeyReports))
	found, _ = s.Get(KeyReports, &reports)
	assert.False(t, found)
}
