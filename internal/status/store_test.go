package status

import (
	"errors"
	"testing"
	"time"

	"github.com/internboard/backend/internal/models"
)

func TestDispositionExclusivity(t *testing.T) {
	s := NewStore()

	s.Shortlist(1)
	if got := s.DispositionOf(1); got != models.DispositionShortlisted {
		t.Fatalf("Expected Shortlisted, got %v", got)
	}

	s.Reject(1)
	if s.IsShortlisted(1) {
		t.Error("Expected rejection to clear shortlisting")
	}
	if got := s.DispositionOf(1); got != models.DispositionRejected {
		t.Fatalf("Expected Rejected, got %v", got)
	}

	s.Shortlist(1)
	if s.IsRejected(1) {
		t.Error("Expected shortlisting to clear rejection")
	}

	// Idempotent
	s.Shortlist(1)
	s.Shortlist(1)
	if got := len(s.ShortlistedIDs()); got != 1 {
		t.Errorf("Expected 1 shortlisted ID, got %d", got)
	}

	s.ResetDisposition(1)
	if got := s.DispositionOf(1); got != models.DispositionPending {
		t.Errorf("Expected Pending after reset, got %v", got)
	}
}

func TestUnknownIDsReturnDefaults(t *testing.T) {
	s := NewStore()

	if got := s.DispositionOf(99); got != models.DispositionPending {
		t.Errorf("Expected Pending, got %v", got)
	}
	if got := s.ContactStatusOf(99); got != models.ContactNotContacted {
		t.Errorf("Expected Not Contacted, got %v", got)
	}
	if got := s.RatingOf(99); got != 0 {
		t.Errorf("Expected rating 0, got %d", got)
	}
	if _, ok := s.InterviewDateOf(99); ok {
		t.Error("Expected no interview for unknown ID")
	}
	if got := s.RemarksOf(99); len(got) != 0 {
		t.Errorf("Expected no remarks, got %d", len(got))
	}
}

func TestContactStatus(t *testing.T) {
	s := NewStore()

	if err := s.SetContactStatus(1, models.ContactCalledInterested); err != nil {
		t.Fatalf("SetContactStatus failed: %v", err)
	}
	if !s.Contacted(1) {
		t.Error("Expected candidate to count as contacted")
	}
	if got := s.ContactedCount(); got != 1 {
		t.Errorf("Expected contacted count 1, got %d", got)
	}

	// Setting the default removes the entry entirely.
	if err := s.SetContactStatus(1, models.ContactNotContacted); err != nil {
		t.Fatalf("SetContactStatus failed: %v", err)
	}
	if s.Contacted(1) {
		t.Error("Expected Not Contacted to clear the contact entry")
	}

	err := s.SetContactStatus(1, models.ContactStatus("Telegraphed"))
	if !errors.Is(err, ErrInvalidContactStatus) {
		t.Errorf("Expected ErrInvalidContactStatus, got %v", err)
	}
}

func TestFollowUpAndInterestedIDs(t *testing.T) {
	s := NewStore()
	s.SetContactStatus(3, models.ContactCalledInterested)
	s.SetContactStatus(1, models.ContactFollowUpNeeded)
	s.SetContactStatus(2, models.ContactCalledNoAnswer)
	s.SetContactStatus(4, models.ContactCalledNotInterested)

	followUps := s.FollowUpIDs()
	if len(followUps) != 2 || followUps[0] != 1 || followUps[1] != 2 {
		t.Errorf("Expected follow-ups [1 2], got %v", followUps)
	}

	// "Called - Not Interested" must not count as interested.
	interested := s.InterestedIDs()
	if len(interested) != 1 || interested[0] != 3 {
		t.Errorf("Expected interested [3], got %v", interested)
	}
}

func TestRatings(t *testing.T) {
	s := NewStore()

	if err := s.SetRating(1, 4); err != nil {
		t.Fatalf("SetRating failed: %v", err)
	}
	if got := s.RatingOf(1); got != 4 {
		t.Errorf("Expected rating 4, got %d", got)
	}

	// Zero clears the rating.
	if err := s.SetRating(1, 0); err != nil {
		t.Fatalf("SetRating failed: %v", err)
	}
	if got := len(s.Ratings()); got != 0 {
		t.Errorf("Expected no rating entries, got %d", got)
	}

	if err := s.SetRating(1, 6); !errors.Is(err, ErrRatingRange) {
		t.Errorf("Expected ErrRatingRange for 6, got %v", err)
	}
	if err := s.SetRating(1, -1); !errors.Is(err, ErrRatingRange) {
		t.Errorf("Expected ErrRatingRange for -1, got %v", err)
	}
}

func TestInterviews(t *testing.T) {
	s := NewStore()

	s.ScheduleInterview(1, time.Date(2024, 4, 2, 15, 30, 0, 0, time.UTC))
	date, ok := s.InterviewDateOf(1)
	if !ok || date != "2024-04-02" {
		t.Errorf("Expected 2024-04-02, got %q (ok=%v)", date, ok)
	}
	if got := s.InterviewCount(); got != 1 {
		t.Errorf("Expected interview count 1, got %d", got)
	}

	s.CancelInterview(1)
	if _, ok := s.InterviewDateOf(1); ok {
		t.Error("Expected interview to be cancelled")
	}
	s.CancelInterview(1) // idempotent
}

func TestRemarks(t *testing.T) {
	s := NewStore()

	if err := s.AddRemark(1, "   "); !errors.Is(err, ErrEmptyRemark) {
		t.Errorf("Expected ErrEmptyRemark, got %v", err)
	}

	s.AddRemark(1, "strong communicator")
	s.AddRemark(1, "available immediately")

	remarks := s.RemarksOf(1)
	if len(remarks) != 2 {
		t.Fatalf("Expected 2 remarks, got %d", len(remarks))
	}
	if remarks[0].Text != "strong communicator" || remarks[1].Text != "available immediately" {
		t.Error("Expected remarks in insertion order")
	}
	if remarks[0].Timestamp.IsZero() {
		t.Error("Expected remark timestamp to be set")
	}
}

func TestResetAllKeepsEverythingButDispositions(t *testing.T) {
	s := NewStore()
	s.Shortlist(1)
	s.Reject(2)
	s.SetContactStatus(1, models.ContactEmailSent)
	s.SetRating(1, 5)
	s.ScheduleInterview(1, time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC))
	s.AddRemark(1, "note")

	s.ResetAll()

	if s.IsShortlisted(1) || s.IsRejected(2) {
		t.Error("Expected dispositions to be cleared")
	}
	if !s.Contacted(1) {
		t.Error("Expected contact status to survive ResetAll")
	}
	if s.RatingOf(1) != 5 {
		t.Error("Expected rating to survive ResetAll")
	}
	if _, ok := s.InterviewDateOf(1); !ok {
		t.Error("Expected interview to survive ResetAll")
	}
	if len(s.RemarksOf(1)) != 1 {
		t.Error("Expected remarks to survive ResetAll")
	}
}

func TestClearAllWipesEverything(t *testing.T) {
	s := NewStore()
	s.Shortlist(1)
	s.SetContactStatus(1, models.ContactEmailSent)
	s.SetRating(1, 5)
	s.ScheduleInterview(1, time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC))
	s.AddRemark(1, "note")

	s.ClearAll()

	if s.IsShortlisted(1) || s.Contacted(1) || s.RatingOf(1) != 0 {
		t.Error("Expected all state to be wiped")
	}
	if _, ok := s.InterviewDateOf(1); ok {
		t.Error("Expected interviews to be wiped")
	}
	if len(s.RemarksOf(1)) != 0 {
		t.Error("Expected remarks to be wiped")
	}
}
