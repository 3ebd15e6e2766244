// Package status tracks per-candidate selection state for a review session:
// disposition, contact status, rating, interview schedule and remarks.
package status

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/internboard/backend/internal/models"
)

// interviewDateLayout is how scheduled interview dates are stored and exported.
const interviewDateLayout = "2006-01-02"

var (
	// ErrEmptyRemark is returned when a remark is blank or whitespace-only.
	ErrEmptyRemark = errors.New("remark text is empty")
	// ErrRatingRange is returned for ratings outside the 0-5 scale.
	ErrRatingRange = errors.New("rating must be between 0 and 5")
	// ErrInvalidContactStatus is returned for unrecognized contact statuses.
	ErrInvalidContactStatus = errors.New("invalid contact status")
)

// Store holds all mutable selection state, keyed by candidate ID. Entries
// are created lazily on first mutation; queries on unknown IDs return
// defaults and never fail. Only Store methods mutate the state.
type Store struct {
	mu          sync.RWMutex
	shortlisted map[int]struct{}
	rejected    map[int]struct{}
	contact     map[int]models.ContactStatus
	ratings     map[int]int
	interviews  map[int]string
	remarks     map[int][]models.Remark
}

// NewStore creates an empty status store.
func NewStore() *Store {
	s := &Store{}
	s.init()
	return s
}

func (s *Store) init() {
	s.shortlisted = make(map[int]struct{})
	s.rejected = make(map[int]struct{})
	s.contact = make(map[int]models.ContactStatus)
	s.ratings = make(map[int]int)
	s.interviews = make(map[int]string)
	s.remarks = make(map[int][]models.Remark)
}

// Shortlist marks a candidate as shortlisted, clearing any rejection.
// Idempotent.
func (s *Store) Shortlist(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shortlisted[id] = struct{}{}
	delete(s.rejected, id)
}

// Reject marks a candidate as rejected, clearing any shortlisting.
// Idempotent.
func (s *Store) Reject(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejected[id] = struct{}{}
	delete(s.shortlisted, id)
}

// ResetDisposition returns a candidate to Pending.
func (s *Store) ResetDisposition(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.shortlisted, id)
	delete(s.rejected, id)
}

// DispositionOf returns the candidate's selection state, Pending by default.
func (s *Store) DispositionOf(id int) models.Disposition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.shortlisted[id]; ok {
		return models.DispositionShortlisted
	}
	if _, ok := s.rejected[id]; ok {
		return models.DispositionRejected
	}
	return models.DispositionPending
}

// IsShortlisted reports whether the candidate is currently shortlisted.
func (s *Store) IsShortlisted(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.shortlisted[id]
	return ok
}

// IsRejected reports whether the candidate is currently rejected.
func (s *Store) IsRejected(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.rejected[id]
	return ok
}

// ShortlistedIDs returns the shortlisted candidate IDs in ascending order.
func (s *Store) ShortlistedIDs() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedKeys(s.shortlisted)
}

// RejectedIDs returns the rejected candidate IDs in ascending order.
func (s *Store) RejectedIDs() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedKeys(s.rejected)
}

// SetContactStatus records the outreach state for a candidate. Setting the
// default "Not Contacted" removes the entry, so presence in the contact map
// always means the candidate has been contacted.
func (s *Store) SetContactStatus(id int, status models.ContactStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidContactStatus, status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if status == models.ContactNotContacted {
		delete(s.contact, id)
		return nil
	}
	s.contact[id] = status
	return nil
}

// ContactStatusOf returns the candidate's outreach state, "Not Contacted"
// by default.
func (s *Store) ContactStatusOf(id int) models.ContactStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if st, ok := s.contact[id]; ok {
		return st
	}
	return models.ContactNotContacted
}

// Contacted reports whether the candidate has any non-default contact entry.
func (s *Store) Contacted(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.contact[id]
	return ok
}

// ContactedCount returns how many candidates have been contacted.
func (s *Store) ContactedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.contact)
}

// ContactCounts returns the number of candidates per non-default contact status.
func (s *Store) ContactCounts() map[models.ContactStatus]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[models.ContactStatus]int)
	for _, st := range s.contact {
		out[st]++
	}
	return out
}

// FollowUpIDs returns candidates whose contact status needs a follow-up,
// in ascending order.
func (s *Store) FollowUpIDs() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var ids []int
	for id, st := range s.contact {
		if st.NeedsFollowUp() {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// InterestedIDs returns candidates whose contact status indicates interest,
// in ascending order.
func (s *Store) InterestedIDs() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var ids []int
	for id, st := range s.contact {
		if st.Interested() {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// SetRating assigns a 0-5 star rating. Zero means unrated and removes the
// entry so rated-candidate listings stay clean.
func (s *Store) SetRating(id, rating int) error {
	if rating < models.MinRating || rating > models.MaxRating {
		return fmt.Errorf("%w: got %d", ErrRatingRange, rating)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if rating == 0 {
		delete(s.ratings, id)
		return nil
	}
	s.ratings[id] = rating
	return nil
}

// RatingOf returns the candidate's rating, 0 (unrated) by default.
func (s *Store) RatingOf(id int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ratings[id]
}

// Ratings returns a copy of all assigned ratings.
func (s *Store) Ratings() map[int]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[int]int, len(s.ratings))
	for id, r := range s.ratings {
		out[id] = r
	}
	return out
}

// ScheduleInterview records an interview date for a candidate. Presence of
// a date means "scheduled".
func (s *Store) ScheduleInterview(id int, date time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interviews[id] = date.Format(interviewDateLayout)
}

// CancelInterview removes a scheduled interview. Idempotent.
func (s *Store) CancelInterview(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.interviews, id)
}

// InterviewDateOf returns the scheduled date ("2006-01-02") if any.
func (s *Store) InterviewDateOf(id int) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.interviews[id]
	return d, ok
}

// InterviewCount returns how many interviews are scheduled.
func (s *Store) InterviewCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.interviews)
}

// Interviews returns a copy of the interview schedule.
func (s *Store) Interviews() map[int]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[int]string, len(s.interviews))
	for id, d := range s.interviews {
		out[id] = d
	}
	return out
}

// AddRemark appends a timestamped note to the candidate's remark log.
// Blank text is rejected so the caller can surface the failure.
func (s *Store) AddRemark(id int, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyRemark
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remarks[id] = append(s.remarks[id], models.Remark{
		Timestamp: time.Now(),
		Text:      text,
	})
	return nil
}

// RemarksOf returns the candidate's remarks in insertion order.
func (s *Store) RemarksOf(id int) []models.Remark {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Remark, len(s.remarks[id]))
	copy(out, s.remarks[id])
	return out
}

// ResetAll clears dispositions only: contact status, ratings, interviews
// and remarks survive. This backs the "reset all selections" action and is
// deliberately narrower than ClearAll.
func (s *Store) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shortlisted = make(map[int]struct{})
	s.rejected = make(map[int]struct{})
}

// ClearAll wipes every piece of status state. Used when a new applications
// file replaces the dataset, so stale entries never survive a re-import.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.init()
}

func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
