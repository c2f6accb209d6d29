package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"restoration-admin-backend/internal/models"
	"restoration-admin-backend/internal/supabase"
)

// RequestGateway is the remote side of the store. *supabase.Gateway
// implements it.
type RequestGateway interface {
	ListAll() ([]models.CustomerRow, error)
	UpdateStatus(id, paymentStatus string) error
	FetchImages(id string) ([]string, error)
	UpdateImages(id string, images []string) error
}

// RequestState is a point-in-time copy of the store.
type RequestState struct {
	Requests []models.RestorationRequest
	Loading  bool
	Error    *string
}

// RequestStore keeps the in-memory order collection. Local records are only
// patched after the backend acknowledged the write. Overlapping operations
// are last-write-wins; the mutex only protects memory and is never held
// across a gateway call.
type RequestStore struct {
	gateway RequestGateway
	log     logrus.FieldLogger
	now     func() time.Time

	mu       sync.RWMutex
	requests []models.RestorationRequest
	loading  bool
	err      *string
}

func NewRequestStore(gateway RequestGateway, log logrus.FieldLogger) *RequestStore {
	return &RequestStore{
		gateway:  gateway,
		log:      log,
		now:      time.Now,
		requests: []models.RestorationRequest{},
		loading:  true,
	}
}

// SetClock replaces the time source used for updated_at.
func (s *RequestStore) SetClock(now func() time.Time) {
	s.now = now
}

// Fetch replaces the whole collection with a fresh read of the backend.
// On failure the collection is emptied and the error recorded.
func (s *RequestStore) Fetch() {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.mu.Unlock()

	s.log.Debug("fetching restoration requests")

	rows, err := s.gateway.ListAll()
	if err != nil {
		msg := errorMessage(err, "failed to load requests")
		s.log.WithError(err).Error("failed to fetch restoration requests")

		s.mu.Lock()
		s.err = &msg
		s.requests = []models.RestorationRequest{}
		s.loading = false
		s.mu.Unlock()
		return
	}

	requests := models.NormalizeCustomers(rows)

	s.mu.Lock()
	s.requests = requests
	s.loading = false
	s.mu.Unlock()

	s.log.WithField("count", len(requests)).Info("restoration requests loaded")
}

// UpdateStatus writes the new status remotely, then patches the local record.
// Unrecognized statuses are stored as pending. A non-empty note replaces the
// local note; the customers table has no column for it.
func (s *RequestStore) UpdateStatus(id, status string, notes *string) bool {
	newStatus := models.ParseStatus(status)
	paymentStatus := string(newStatus)

	if err := s.gateway.UpdateStatus(id, paymentStatus); err != nil {
		s.fail(err, "failed to update status", logrus.Fields{"request_id": id, "status": paymentStatus})
		return false
	}

	s.patch(id, func(r *models.RestorationRequest) {
		r.Status = newStatus
		r.PaymentStatus = paymentStatus
		if notes != nil && *notes != "" {
			note := *notes
			r.Notes = &note
		}
	})

	s.log.WithFields(logrus.Fields{"request_id": id, "status": paymentStatus}).Info("request status updated")
	return true
}

// UpdateRestoredImage reads the current image sequence, puts restoredURL at
// index 1 and writes it back. The read and the write are not atomic.
func (s *RequestStore) UpdateRestoredImage(id, restoredURL string) bool {
	fields := logrus.Fields{"request_id": id, "url": restoredURL}

	current, err := s.gateway.FetchImages(id)
	if err != nil {
		s.fail(err, "failed to update restored image", fields)
		return false
	}

	updated := models.WithRestoredImage(current, restoredURL)
	if err := s.gateway.UpdateImages(id, updated); err != nil {
		s.fail(err, "failed to update restored image", fields)
		return false
	}

	s.patch(id, func(r *models.RestorationRequest) {
		restored := restoredURL
		r.RestoredImageURL = &restored
		r.ImageURLs = append([]string(nil), updated...)
	})

	s.log.WithFields(fields).Info("restored image attached")
	return true
}

// State returns a deep copy of the store's state.
func (s *RequestStore) State() RequestState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := RequestState{
		Requests: cloneRequests(s.requests),
		Loading:  s.loading,
	}
	if s.err != nil {
		msg := *s.err
		state.Error = &msg
	}
	return state
}

func (s *RequestStore) Requests() []models.RestorationRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRequests(s.requests)
}

func (s *RequestStore) Get(id string) (models.RestorationRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.requests {
		if r.ID == id {
			return r.Clone(), true
		}
	}
	return models.RestorationRequest{}, false
}

func (s *RequestStore) Error() *string {
	return s.State().Error
}

func (s *RequestStore) patch(id string, apply func(r *models.RestorationRequest)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.requests {
		if s.requests[i].ID != id {
			continue
		}
		apply(&s.requests[i])
		s.requests[i].UpdatedAt = s.nextUpdatedAt(s.requests[i].UpdatedAt)
	}
}

// nextUpdatedAt returns the current time, or prev+1ns when the clock has not
// moved past prev.
func (s *RequestStore) nextUpdatedAt(prev time.Time) time.Time {
	now := s.now()
	if !now.After(prev) {
		return prev.Add(time.Nanosecond)
	}
	return now
}

func (s *RequestStore) fail(err error, fallback string, fields logrus.Fields) {
	msg := errorMessage(err, fallback)
	s.log.WithFields(fields).WithError(err).Error(fallback)

	s.mu.Lock()
	s.err = &msg
	s.mu.Unlock()
}

// errorMessage turns a gateway error into the text shown to staff.
func errorMessage(err error, fallback string) string {
	var cfgErr *supabase.ConfigurationError
	if errors.As(err, &cfgErr) {
		return fmt.Sprintf("Supabase environment variables are not configured. Check %s in the .env file",
			strings.Join(cfgErr.Missing, " and "))
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}

func cloneRequests(in []models.RestorationRequest) []models.RestorationRequest {
	out := make([]models.RestorationRequest, len(in))
	for i, r := range in {
		out[i] = r.Clone()
	}
	return out
}
