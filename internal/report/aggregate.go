// Package report computes dashboard aggregates over the full dataset and
// the current status store. All computations are read-only and, unless a
// function says otherwise, independent of any active filter.
package report

import (
	"sort"
	"strconv"

	"github.com/internboard/backend/internal/dataset"
	"github.com/internboard/backend/internal/models"
	"github.com/internboard/backend/internal/status"
)

// Overview is the headline metric row of the dashboard.
type Overview struct {
	Total          int    `json:"total"`
	Shortlisted    int    `json:"shortlisted"`
	Rejected       int    `json:"rejected"`
	Pending        int    `json:"pending"`
	Contacted      int    `json:"contacted"`
	Interviews     int    `json:"interviews"`
	ShortlistedPct string `json:"shortlistedPct"`
	RejectedPct    string `json:"rejectedPct"`
	PendingPct     string `json:"pendingPct"`
}

// CountRow is one line of a frequency table.
type CountRow struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// FunnelStage is one stage of the recruitment funnel. Stage counts are
// independent, not nested subsets: a contacted candidate need not be
// shortlisted.
type FunnelStage struct {
	Stage string `json:"stage"`
	Count int    `json:"count"`
}

// RatedCandidate is one row of the top-rated listing.
type RatedCandidate struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Rating int    `json:"rating"`
}

// Percent formats count/total as a one-decimal percentage. An empty
// dataset reports "0.0%" rather than failing on the division.
func Percent(count, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return strconv.FormatFloat(float64(count)/float64(total)*100, 'f', 1, 64) + "%"
}

// BuildOverview computes the headline counts. Pending is derived as
// total minus shortlisted minus rejected.
func BuildOverview(ds *dataset.Store, ss *status.Store) Overview {
	total := ds.Len()
	shortlisted := len(ss.ShortlistedIDs())
	rejected := len(ss.RejectedIDs())
	pending := total - shortlisted - rejected

	return Overview{
		Total:          total,
		Shortlisted:    shortlisted,
		Rejected:       rejected,
		Pending:        pending,
		Contacted:      ss.ContactedCount(),
		Interviews:     ss.InterviewCount(),
		ShortlistedPct: Percent(shortlisted, total),
		RejectedPct:    Percent(rejected, total),
		PendingPct:     Percent(pending, total),
	}
}

// Distribution returns the frequency table of a record field over the full
// dataset, most frequent first, ties broken by label.
func Distribution(ds *dataset.Store, f models.Field) []CountRow {
	counts := make(map[string]int)
	for _, rec := range ds.All() {
		v := rec.Field(f)
		if v == "" {
			continue
		}
		counts[v]++
	}
	rows := make([]CountRow, 0, len(counts))
	for label, n := range counts {
		rows = append(rows, CountRow{Label: label, Count: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Label < rows[j].Label
	})
	return rows
}

// ContactBreakdown returns candidate counts per non-default contact status
// in display order, omitting statuses no candidate holds.
func ContactBreakdown(ss *status.Store) []CountRow {
	counts := ss.ContactCounts()
	rows := make([]CountRow, 0, len(counts))
	for _, st := range models.ContactStatuses {
		if n := counts[st]; n > 0 {
			rows = append(rows, CountRow{Label: string(st), Count: n})
		}
	}
	return rows
}

// Funnel returns the ordered pipeline stage counts.
func Funnel(ds *dataset.Store, ss *status.Store) []FunnelStage {
	return []FunnelStage{
		{Stage: "Applications", Count: ds.Len()},
		{Stage: "Contacted", Count: ss.ContactedCount()},
		{Stage: "Interview Scheduled", Count: ss.InterviewCount()},
		{Stage: "Shortlisted", Count: len(ss.ShortlistedIDs())},
	}
}

// RatingsHistogram counts candidates per star value 1-5. Unrated
// candidates (rating 0) are excluded.
func RatingsHistogram(ss *status.Store) map[int]int {
	hist := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for _, r := range ss.Ratings() {
		if r >= 1 && r <= models.MaxRating {
			hist[r]++
		}
	}
	return hist
}

// OnboardingReadyIDs returns candidates that are shortlisted and whose
// contact status indicates interest, in ascending ID order.
func OnboardingReadyIDs(ss *status.Store) []int {
	var ids []int
	for _, id := range ss.ShortlistedIDs() {
		if ss.ContactStatusOf(id).Interested() {
			ids = append(ids, id)
		}
	}
	return ids
}

// TopRated lists candidates rated at or above minRating, best first, ties
// broken by import order, capped at limit.
func TopRated(ds *dataset.Store, ss *status.Store, minRating, limit int) []RatedCandidate {
	var out []RatedCandidate
	for id, r := range ss.Ratings() {
		if r < minRating {
			continue
		}
		rec, ok := ds.Get(id)
		if !ok {
			continue // stale rating from a replaced dataset
		}
		out = append(out, RatedCandidate{
			ID:     id,
			Name:   rec.Field(models.FieldName),
			Email:  rec.Field(models.FieldEmail),
			Rating: r,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
