package models

import (
	"strings"
	"time"
)

// Disposition is a candidate's primary selection state.
type Disposition string

const (
	DispositionPending     Disposition = "Pending"
	DispositionShortlisted Disposition = "Shortlisted"
	DispositionRejected    Disposition = "Rejected"
)

// ContactStatus is the enumerated outreach state, independent of disposition.
type ContactStatus string

const (
	ContactNotContacted        ContactStatus = "Not Contacted"
	ContactCalledNoAnswer      ContactStatus = "Called - No Answer"
	ContactCalledInterested    ContactStatus = "Called - Interested"
	ContactCalledNotInterested ContactStatus = "Called - Not Interested"
	ContactEmailSent           ContactStatus = "Email Sent"
	ContactFollowUpNeeded      ContactStatus = "Follow-up Needed"
)

// ContactStatuses lists every valid contact status in display order.
var ContactStatuses = []ContactStatus{
	ContactNotContacted,
	ContactCalledNoAnswer,
	ContactCalledInterested,
	ContactCalledNotInterested,
	ContactEmailSent,
	ContactFollowUpNeeded,
}

// Valid reports whether s is one of the enumerated contact statuses.
func (s ContactStatus) Valid() bool {
	for _, v := range ContactStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Interested reports whether the status indicates the candidate wants the
// position. Matched exactly so "Called - Not Interested" does not qualify.
func (s ContactStatus) Interested() bool {
	return s == ContactCalledInterested
}

// NeedsFollowUp reports whether the status calls for another contact attempt.
func (s ContactStatus) NeedsFollowUp() bool {
	return s == ContactFollowUpNeeded || strings.Contains(string(s), "No Answer")
}

// Remark is a single timestamped reviewer note. Remarks are append-only.
type Remark struct {
	Timestamp time.Time `json:"timestamp"`
	Text      string    `json:"text"`
}

// MinRating and MaxRating bound the star rating scale. Zero means unrated.
const (
	MinRating = 0
	MaxRating = 5
)
