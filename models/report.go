// Package models defines data structures used across the application.
// File: models/report.go
package models

import (
	"fmt"
	"time"
)

// ----------------------- status -----------------------

// Status is the lifecycle state of a report.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusVerified Status = "Verified"
	StatusRepaired Status = "Repaired"
)

// ParseStatus validates a status value coming from the outside.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusVerified, StatusRepaired:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: unknown status %q", ErrValidation, s)
}

// ----------------------- verdict -----------------------

// Confidence holds the two class probabilities returned by the classifier.
type Confidence struct {
	Pothole    float64 `json:"potholeConfidence"`
	NonPothole float64 `json:"nonpotholeConfidence"`
}

// Verdict is the classifier's determination for one submitted image.
type Verdict struct {
	PotholePresent bool
	Confidence     Confidence
}

// ----------------------- report -----------------------

// Report is a user-submitted road defect record.
//
// ID is derived from the creation timestamp (milliseconds) and unique across
// the collection. Upvotes is a set of endorsing user emails. Filled is a
// deprecated synonym for StatusRepaired still present on legacy records; the
// decode path migrates it (see Normalize).
type Report struct {
	ID              int64      `json:"id"`
	User            Session    `json:"user"`
	Image           string     `json:"image"`
	Description     string     `json:"description"`
	Address         string     `json:"address"`
	Landmark        string     `json:"landmark"`
	CreatedAt       time.Time  `json:"createdAt"`
	Status          Status     `json:"status,omitempty"`
	Filled          *bool      `json:"filled,omitempty"`
	Upvotes         []string   `json:"upvotes"`
	ModelConfidence Confidence `json:"modelConfidence"`
}

// Normalize migrates legacy fields after decoding from the store. A record
// carrying only the deprecated filled flag gets an explicit status, and a
// missing upvote list becomes the empty set.
func (r *Report) Normalize() {
	if r.Status == "" {
		if r.Filled != nil && *r.Filled {
			r.Status = StatusRepaired
		} else {
			r.Status = StatusPending
		}
	}
	if r.Upvotes == nil {
		r.Upvotes = []string{}
	}
}

// HasUpvote reports whether email is already in the upvote set.
func (r *Report) HasUpvote(email string) bool {
	for _, e := range r.Upvotes {
		if e == email {
			return true
		}
	}
	return false
}
