// Package services: services/report_service.go
package services

import (
	"sync"
	"time"

	"street-scan/logger"
	"street-scan/models"
	"street-scan/store"
)

// ReportServiceInterface owns the report collection: creation, retrieval,
// ownership-scoped filtering, status transitions, upvote toggling, deletion.
type ReportServiceInterface interface {
	Create(sess models.Session, image, description, address, landmark string, verdict models.Verdict) (models.Report, error)
	List() ([]models.Report, error)
	ListByOwner(email string) ([]models.Report, error)
	GetByID(id int64) (models.Report, error)
	Delete(id int64, requesterEmail string) error
	SetStatus(id int64, status models.Status, requester models.Session) (models.Report, error)
	ToggleUpvote(id int64, email string) (models.Report, bool, error)
}

// ReportService persists reports newest-first in a single whole-value record.
// Its mutex serializes the read-modify-write cycles within this process.
type ReportService struct {
	mu    sync.Mutex
	store store.Store
}

// NewReportService creates a ReportService on top of the given store.
func NewReportService(st store.Store) *ReportService {
	return &ReportService{store: st}
}

func (s *ReportService) load() ([]models.Report, error) {
	reports := []models.Report{}
	if _, err := s.store.Get(store.KeyReports, &reports); err != nil {
		return nil, err
	}
	for i := range reports {
		reports[i].Normalize()
	}
	return reports, nil
}

// Create inserts a new report at the head of the collection. The caller must
// already hold a positive classifier verdict; a negative one rejects the
// submission outright and surfaces both confidence scores.
func (s *ReportService) Create(sess models.Session, image, description, address, landmark string, verdict models.Verdict) (models.Report, error) {
	if !verdict.PotholePresent {
		logger.Info.Printf("[Create] submission rejected by classifier for %s", sess.Email)
		return models.Report{}, &models.ClassificationRejectedError{Confidence: verdict.Confidence}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	reports, err := s.load()
	if err != nil {
		return models.Report{}, err
	}

	now := time.Now()
	id := now.UnixMilli()
	// Timestamp-derived IDs are monotonic; nudge past the newest record when
	// two creations land in the same millisecond.
	if len(reports) > 0 && id <= reports[0].ID {
		id = reports[0].ID + 1
	}

	report := models.Report{
		ID:              id,
		User:            sess,
		Image:           image,
		Description:     description,
		Address:         address,
		Landmark:        landmark,
		CreatedAt:       now,
		Status:          models.StatusPending,
		Upvotes:         []string{},
		ModelConfidence: verdict.Confidence,
	}

	reports = append([]models.Report{report}, reports...)
	if err := s.store.Set(store.KeyReports, reports); err != nil {
		return models.Report{}, err
	}
	logger.Info.Printf("[Create] report %d created by %s", report.ID, sess.Email)
	return report, nil
}

// List returns all reports, newest first. An empty collection is a valid
// result, not an error.
func (s *ReportService) List() ([]models.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// ListByOwner filters the collection to reports owned by email, preserving
// the newest-first order.
func (s *ReportService) ListByOwner(email string) ([]models.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reports, err := s.load()
	if err != nil {
		return nil, err
	}
	mine := []models.Report{}
	for _, r := range reports {
		if r.User.Email == email {
			mine = append(mine, r)
		}
	}
	return mine, nil
}

// GetByID returns a single report.
func (s *ReportService) GetByID(id int64) (models.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reports, err := s.load()
	if err != nil {
		return models.Report{}, err
	}
	for _, r := range reports {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Report{}, models.ErrNotFound
}

// Delete permanently removes a report. Only the owning user may delete it;
// there is no tombstone.
func (s *ReportService) Delete(id int64, requesterEmail string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reports, err := s.load()
	if err != nil {
		return err
	}
	for i, r := range reports {
		if r.ID != id {
			continue
		}
		if r.User.Email != requesterEmail {
			logger.Warn.Printf("[Delete] %s tried to delete report %d owned by %s", requesterEmail, id, r.User.Email)
			return models.ErrAuthorization
		}
		reports = append(reports[:i], reports[i+1:]...)
		if err := s.store.Set(store.KeyReports, reports); err != nil {
			return err
		}
		logger.Info.Printf("[Delete] report %d removed by %s", id, requesterEmail)
		return nil
	}
	return models.ErrNotFound
}

// SetStatus moves a report to a new lifecycle status. Only the administrator
// identity may perform transitions; the transitions themselves are
// unrestricted. Any status other than Repaired clears the deprecated filled
// flag so legacy readers never see the two disagree.
func (s *ReportService) SetStatus(id int64, status models.Status, requester models.Session) (models.Report, error) {
	if !requester.IsAdmin {
		logger.Warn.Printf("[SetStatus] non-admin %s rejected for report %d", requester.Email, id)
		return models.Report{}, models.ErrAuthorization
	}
	if _, err := models.ParseStatus(string(status)); err != nil {
		return models.Report{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	reports, err := s.load()
	if err != nil {
		return models.Report{}, err
	}
	for i := range reports {
		if reports[i].ID != id {
			continue
		}
		reports[i].Status = status
		if status != models.StatusRepaired {
			reports[i].Filled = nil
		}
		if err := s.store.Set(store.KeyReports, reports); err != nil {
			return models.Report{}, err
		}
		logger.Info.Printf("[SetStatus] report %d -> %s by %s", id, status, requester.Email)
		return reports[i], nil
	}
	return models.Report{}, models.ErrNotFound
}

// ToggleUpvote adds email to the report's upvote set, or removes it when
// already present. Two consecutive toggles by the same caller restore the
// original set. Returns the updated report and whether the caller now holds
// an upvote.
func (s *ReportService) ToggleUpvote(id int64, email string) (models.Report, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reports, err := s.load()
	if err != nil {
		return models.Report{}, false, err
	}
	for i := range reports {
		if reports[i].ID != id {
			continue
		}
		upvoted := false
		if reports[i].HasUpvote(email) {
			kept := reports[i].Upvotes[:0]
			for _, e := range reports[i].Upvotes {
				if e != email {
					kept = append(kept, e)
				}
			}
			reports[i].Upvotes = kept
		} else {
			reports[i].Upvotes = append(reports[i].Upvotes, email)
			upvoted = true
		}
		if err := s.store.Set(store.KeyReports, reports); err != nil {
			return models.Report{}, false, err
		}
		logger.Debug.Printf("[ToggleUpvote] report %d, %s, upvoted=%v", id, email, upvoted)
		return reports[i], upvoted, nil
	}
	return models.Report{}, false, models.ErrNotFound
}
