// Package models defines data structures used across the application.
// File: models/comment.go
package models

import "time"

// CommentAuthor is the identity snapshot captured at post time. Later name
// changes never retroactively update old comments.
type CommentAuthor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Comment is an append-only entry scoped permanently to one report. There is
// no edit or delete operation.
type Comment struct {
	ID        int64         `json:"id"`
	User      CommentAuthor `json:"user"`
	Text      string        `json:"text"`
	CreatedAt time.Time     `json:"createdAt"`
}
