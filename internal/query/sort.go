package query

import (
	"sort"

	"github.com/internboard/backend/internal/models"
	"github.com/internboard/backend/internal/status"
)

// SortKey selects the ordering of a candidate list.
type SortKey string

const (
	SortSubmissionNewest SortKey = "submission_newest"
	SortSubmissionOldest SortKey = "submission_oldest"
	SortNameAsc          SortKey = "name_asc"
	SortNameDesc         SortKey = "name_desc"
	SortRatingDesc       SortKey = "rating_desc"
)

// ParseSortKey maps a query-string value to a SortKey, defaulting to
// newest-first submission order.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortSubmissionOldest, SortNameAsc, SortNameDesc, SortRatingDesc:
		return SortKey(s)
	default:
		return SortSubmissionNewest
	}
}

// Sort orders candidates by the given key. The sort is stable: candidates
// with equal sort values keep their original relative order, so the total
// order is well-defined even with missing or duplicate values. The input
// slice is not modified.
func Sort(records []models.CandidateRecord, ss *status.Store, key SortKey) []models.CandidateRecord {
	out := make([]models.CandidateRecord, len(records))
	copy(out, records)

	switch key {
	case SortSubmissionNewest:
		// Submission dates are compared as strings; the form export uses
		// an ISO-style timestamp so lexical order is chronological.
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Field(models.FieldSubmissionDate) > out[j].Field(models.FieldSubmissionDate)
		})
	case SortSubmissionOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Field(models.FieldSubmissionDate) < out[j].Field(models.FieldSubmissionDate)
		})
	case SortNameAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Field(models.FieldName) < out[j].Field(models.FieldName)
		})
	case SortNameDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Field(models.FieldName) > out[j].Field(models.FieldName)
		})
	case SortRatingDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return ss.RatingOf(out[i].ID()) > ss.RatingOf(out[j].ID())
		})
	}
	return out
}
