package status

import (
	"time"

	"github.com/internboard/backend/internal/models"
)

// Snapshot is a portable copy of the full status state. It carries enough
// to reconstruct the store exactly on reload and marshals to the same JSON
// shape the progress-file download uses.
type Snapshot struct {
	Shortlisted        []int                        `json:"shortlisted"`
	Rejected           []int                        `json:"rejected"`
	Remarks            map[int][]models.Remark      `json:"remarks"`
	ContactStatus      map[int]models.ContactStatus `json:"contact_status"`
	InterviewScheduled map[int]string               `json:"interview_scheduled"`
	Ratings            map[int]int                  `json:"ratings"`
	SavedAt            time.Time                    `json:"saved_at"`
}

// Snapshot captures the current state of the store.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Shortlisted:        sortedKeys(s.shortlisted),
		Rejected:           sortedKeys(s.rejected),
		Remarks:            make(map[int][]models.Remark, len(s.remarks)),
		ContactStatus:      make(map[int]models.ContactStatus, len(s.contact)),
		InterviewScheduled: make(map[int]string, len(s.interviews)),
		Ratings:            make(map[int]int, len(s.ratings)),
		SavedAt:            time.Now(),
	}
	for id, rs := range s.remarks {
		cp := make([]models.Remark, len(rs))
		copy(cp, rs)
		snap.Remarks[id] = cp
	}
	for id, st := range s.contact {
		snap.ContactStatus[id] = st
	}
	for id, d := range s.interviews {
		snap.InterviewScheduled[id] = d
	}
	for id, r := range s.ratings {
		snap.Ratings[id] = r
	}
	return snap
}

// Restore replaces the store's state with a previously saved snapshot.
// Invalid contact statuses and out-of-range ratings are dropped rather
// than failing the whole restore.
func (s *Store) Restore(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.init()
	for _, id := range snap.Shortlisted {
		s.shortlisted[id] = struct{}{}
	}
	for _, id := range snap.Rejected {
		if _, ok := s.shortlisted[id]; ok {
			continue // disposition exclusivity wins over a corrupt snapshot
		}
		s.rejected[id] = struct{}{}
	}
	for id, rs := range snap.Remarks {
		if len(rs) == 0 {
			continue
		}
		cp := make([]models.Remark, len(rs))
		copy(cp, rs) // insertion order is preserved as saved
		s.remarks[id] = cp
	}
	for id, st := range snap.ContactStatus {
		if st.Valid() && st != models.ContactNotContacted {
			s.contact[id] = st
		}
	}
	for id, d := range snap.InterviewScheduled {
		if _, err := time.Parse(interviewDateLayout, d); err == nil {
			s.interviews[id] = d
		}
	}
	for id, r := range snap.Ratings {
		if r > models.MinRating && r <= models.MaxRating {
			s.ratings[id] = r
		}
	}
}
