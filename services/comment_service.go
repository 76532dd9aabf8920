// Package services: services/comment_service.go
package services

import (
	"strings"
	"sync"
	"time"

	"street-scan/logger"
	"street-scan/models"
	"street-scan/store"
)

// CommentServiceInterface owns the append-only per-report comment ledgers.
type CommentServiceInterface interface {
	Add(reportID int64, author models.Session, text string) (models.Comment, error)
	ListFor(reportID int64) ([]models.Comment, error)
}

// CommentService stores one newest-first comment record per report.
type CommentService struct {
	mu    sync.Mutex
	store store.Store
}

// NewCommentService creates a CommentService on top of the given store.
func NewCommentService(st store.Store) *CommentService {
	return &CommentService{store: st}
}

// Add prepends a comment to the report's ledger. The author identity is
// captured as a snapshot at post time. Whitespace-only text is rejected.
func (s *CommentService) Add(reportID int64, author models.Session, text string) (models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Comment{}, models.ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := store.CommentsKey(reportID)
	comments := []models.Comment{}
	if _, err := s.store.Get(key, &comments); err != nil {
		return models.Comment{}, err
	}

	now := time.Now()
	id := now.UnixMilli()
	if len(comments) > 0 && id <= comments[0].ID {
		id = comments[0].ID + 1
	}

	comment := models.Comment{
		ID:        id,
		User:      models.CommentAuthor{Name: author.Name, Email: author.Email},
		Text:      text,
		CreatedAt: now,
	}
	comments = append([]models.Comment{comment}, comments...)
	if err := s.store.Set(key, comments); err != nil {
		return models.Comment{}, err
	}
	logger.Info.Printf("[Add] comment %d on report %d by %s", comment.ID, reportID, author.Email)
	return comment, nil
}

// ListFor returns the full comment sequence for a report, newest first. An
// empty sequence is valid.
func (s *CommentService) ListFor(reportID int64) ([]models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comments := []models.Comment{}
	if _, err := s.store.Get(store.CommentsKey(reportID), &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
