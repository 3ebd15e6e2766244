// Package bulk applies rule-based and blanket status transitions to a
// candidate subset, typically the currently filtered view.
package bulk

import (
	"fmt"
	"strings"

	"github.com/internboard/backend/internal/models"
	"github.com/internboard/backend/internal/status"
)

// Rule identifies a built-in auto-shortlist predicate. Rules are evaluated
// against the record plus the status store at invocation time.
type Rule string

const (
	// RuleDeviceReady shortlists candidates owning both a laptop and a smartphone.
	RuleDeviceReady Rule = "device_ready"
	// RuleFullTime shortlists candidates whose availability mentions "Full".
	RuleFullTime Rule = "full_time"
	// RuleQualified shortlists Graduate or Engineer qualifications.
	RuleQualified Rule = "qualified"
	// RuleTopRated shortlists candidates rated 4 stars or more.
	RuleTopRated Rule = "top_rated"
)

// ParseRule validates a rule name from the API boundary.
func ParseRule(s string) (Rule, error) {
	switch Rule(s) {
	case RuleDeviceReady, RuleFullTime, RuleQualified, RuleTopRated:
		return Rule(s), nil
	}
	return "", fmt.Errorf("unknown rule %q", s)
}

func (r Rule) matches(rec models.CandidateRecord, ss *status.Store) bool {
	switch r {
	case RuleDeviceReady:
		return rec.Field(models.FieldLaptop) == "Yes" &&
			rec.Field(models.FieldSmartphone) == "Yes"
	case RuleFullTime:
		return strings.Contains(rec.Field(models.FieldAvailability), "Full")
	case RuleQualified:
		q := rec.Field(models.FieldQualification)
		return q == "Graduate" || q == "Engineer"
	case RuleTopRated:
		return ss.RatingOf(rec.ID()) >= 4
	}
	return false
}

// ShortlistByRule shortlists every candidate in the subset satisfying the
// rule, clearing any rejection. Non-matching candidates are untouched.
// Returns the number of candidates affected.
func ShortlistByRule(subset []models.CandidateRecord, ss *status.Store, rule Rule) (int, error) {
	if _, err := ParseRule(string(rule)); err != nil {
		return 0, err
	}
	count := 0
	for _, rec := range subset {
		if rule.matches(rec, ss) {
			ss.Shortlist(rec.ID())
			count++
		}
	}
	return count, nil
}

// ShortlistAll shortlists every candidate in the subset unconditionally.
func ShortlistAll(subset []models.CandidateRecord, ss *status.Store) int {
	for _, rec := range subset {
		ss.Shortlist(rec.ID())
	}
	return len(subset)
}

// RejectAll rejects every candidate in the subset unconditionally.
func RejectAll(subset []models.CandidateRecord, ss *status.Store) int {
	for _, rec := range subset {
		ss.Reject(rec.ID())
	}
	return len(subset)
}

// ResetToPending clears the disposition of every candidate in the subset.
func ResetToPending(subset []models.CandidateRecord, ss *status.Store) int {
	for _, rec := range subset {
		ss.ResetDisposition(rec.ID())
	}
	return len(subset)
}

// SetContactStatusAll assigns one contact status to every candidate in the
// subset.
func SetContactStatusAll(subset []models.CandidateRecord, ss *status.Store, st models.ContactStatus) (int, error) {
	for i, rec := range subset {
		if err := ss.SetContactStatus(rec.ID(), st); err != nil {
			return i, err
		}
	}
	return len(subset), nil
}

// AutoRate assigns each candidate the fixed rating mapped to their
// qualification. Candidates with an unmapped qualification keep whatever
// rating they had. Returns the number of candidates rated.
func AutoRate(subset []models.CandidateRecord, ss *status.Store, ratings map[string]int) int {
	count := 0
	for _, rec := range subset {
		r, ok := ratings[rec.Field(models.FieldQualification)]
		if !ok {
			continue
		}
		if err := ss.SetRating(rec.ID(), r); err != nil {
			continue // out-of-range mapping entries are skipped
		}
		count++
	}
	return count
}
