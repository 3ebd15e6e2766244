package query

import (
	"testing"

	"github.com/internboard/backend/internal/status"
	"github.com/internboard/backend/internal/testutil"
)

func TestParseSortKey(t *testing.T) {
	if got := ParseSortKey("name_asc"); got != SortNameAsc {
		t.Errorf("Expected name_asc, got %v", got)
	}
	if got := ParseSortKey(""); got != SortSubmissionNewest {
		t.Errorf("Expected default newest, got %v", got)
	}
	if got := ParseSortKey("bogus"); got != SortSubmissionNewest {
		t.Errorf("Expected default newest for unknown key, got %v", got)
	}
}

func TestSortSubmissionDate(t *testing.T) {
	ds := loadFixture(t,
		testutil.Applicant{SubmissionDate: "2024-01-10 09:00:00"},
		testutil.Applicant{SubmissionDate: "2024-01-12 09:00:00"},
		testutil.Applicant{SubmissionDate: "2024-01-11 09:00:00"},
	)
	ss := status.NewStore()
	records := ds.All()

	assertIDs(t, Sort(records, ss, SortSubmissionNewest), 1, 2, 0)
	assertIDs(t, Sort(records, ss, SortSubmissionOldest), 0, 2, 1)

	// Input is not modified.
	assertIDs(t, records, 0, 1, 2)
}

func TestSortName(t *testing.T) {
	ds := loadFixture(t,
		testutil.Applicant{Name: "Mira"},
		testutil.Applicant{Name: "Asha"},
		testutil.Applicant{Name: "Zara"},
	)
	ss := status.NewStore()

	assertIDs(t, Sort(ds.All(), ss, SortNameAsc), 1, 0, 2)
	assertIDs(t, Sort(ds.All(), ss, SortNameDesc), 2, 0, 1)
}

func TestSortRatingDescIsStable(t *testing.T) {
	ds := loadFixture(t,
		testutil.Applicant{}, testutil.Applicant{}, testutil.Applicant{},
		testutil.Applicant{},
	)
	ss := status.NewStore()
	ss.SetRating(1, 3)
	ss.SetRating(3, 5)

	// Ties (unrated 0 and 2) keep their original relative order.
	assertIDs(t, Sort(ds.All(), ss, SortRatingDesc), 3, 1, 0, 2)
}
