// Package models defines data structures used across the application.
// File: models/errors.go
package models

import (
	"errors"
	"fmt"
)

// Sentinel errors recovered at the point of the user action and rendered as
// inline messages; none of them are fatal to the process.
var (
	ErrValidation         = errors.New("missing or empty required field")
	ErrDuplicateUser      = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAuthorization      = errors.New("not authorized to perform this action")
	ErrNotFound           = errors.New("record not found")
)

// ClassificationRejectedError is returned when the model service decides the
// submitted photo does not show a pothole. It carries both confidence scores
// so the caller can display them next to the rejection.
type ClassificationRejectedError struct {
	Confidence Confidence
}

func (e *ClassificationRejectedError) Error() string {
	return fmt.Sprintf("image rejected by classifier (pothole %.3f, non-pothole %.3f)",
		e.Confidence.Pothole, e.Confidence.NonPothole)
}
