package query

import (
	"bytes"
	"testing"
	"time"

	"github.com/internboard/backend/internal/dataset"
	"github.com/internboard/backend/internal/models"
	"github.com/internboard/backend/internal/status"
	"github.com/internboard/backend/internal/testutil"
)

var filterAsOf = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func loadFixture(t *testing.T, applicants ...testutil.Applicant) *dataset.Store {
	t.Helper()
	ds, err := dataset.Load(bytes.NewReader(testutil.ApplicationsCSV(applicants...)))
	if err != nil {
		t.Fatalf("Failed to load fixture: %v", err)
	}
	return ds
}

func ids(records []models.CandidateRecord) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.ID()
	}
	return out
}

func assertIDs(t *testing.T, got []models.CandidateRecord, want ...int) {
	t.Helper()
	g := ids(got)
	if len(g) != len(want) {
		t.Fatalf("Expected IDs %v, got %v", want, g)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("Expected IDs %v, got %v", want, g)
		}
	}
}

func TestFilterCategoricalAND(t *testing.T) {
	ds := loadFixture(t,
		testutil.Applicant{Gender: "Female", Laptop: "Yes"},
		testutil.Applicant{Gender: "Male", Laptop: "Yes"},
		testutil.Applicant{Gender: "Female", Laptop: "No"},
		testutil.Applicant{Gender: "Female", Laptop: "Yes"},
		testutil.Applicant{Gender: "Male", Laptop: "No"},
	)
	ss := status.NewStore()

	got := Filter(ds, ss, FilterSpec{Gender: "Female", Laptop: "Yes"}, filterAsOf)
	assertIDs(t, got, 0, 3)

	// "All" and empty are both wildcards.
	got = Filter(ds, ss, FilterSpec{Gender: Any}, filterAsOf)
	assertIDs(t, got, 0, 1, 2, 3, 4)
	got = Filter(ds, ss, FilterSpec{}, filterAsOf)
	assertIDs(t, got, 0, 1, 2, 3, 4)
}

func TestFilterSearchAnyField(t *testing.T) {
	ds := loadFixture(t,
		testutil.Applicant{Name: "Asha Verma", District: "North"},
		testutil.Applicant{Name: "Bilal Khan", District: "Ashanagar"},
		testutil.Applicant{Name: "Chitra Rao", District: "South"},
	)
	ss := status.NewStore()

	// Case-insensitive substring over every field, not just the name.
	got := Filter(ds, ss, FilterSpec{Search: "ASHA"}, filterAsOf)
	assertIDs(t, got, 0, 1)

	// Empty search matches everything.
	got = Filter(ds, ss, FilterSpec{Search: "   "}, filterAsOf)
	assertIDs(t, got, 0, 1, 2)
}

func TestFilterContactAndInterview(t *testing.T) {
	ds := loadFixture(t,
		testutil.Applicant{}, testutil.Applicant{}, testutil.Applicant{},
	)
	ss := status.NewStore()
	ss.SetContactStatus(1, models.ContactEmailSent)
	ss.ScheduleInterview(2, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))

	assertIDs(t, Filter(ds, ss, FilterSpec{Contact: ContactContacted}, filterAsOf), 1)
	assertIDs(t, Filter(ds, ss, FilterSpec{Contact: ContactNotContacted}, filterAsOf), 0, 2)
	assertIDs(t, Filter(ds, ss, FilterSpec{Interview: InterviewScheduled}, filterAsOf), 2)
	assertIDs(t, Filter(ds, ss, FilterSpec{Interview: InterviewNotScheduled}, filterAsOf), 0, 1)
}

func TestFilterViewMode(t *testing.T) {
	ds := loadFixture(t,
		testutil.Applicant{}, testutil.Applicant{}, testutil.Applicant{},
	)
	ss := status.NewStore()
	ss.Shortlist(0)
	ss.Reject(1)

	assertIDs(t, Filter(ds, ss, FilterSpec{View: ViewShortlisted}, filterAsOf), 0)
	assertIDs(t, Filter(ds, ss, FilterSpec{View: ViewRejected}, filterAsOf), 1)
	assertIDs(t, Filter(ds, ss, FilterSpec{View: ViewPending}, filterAsOf), 2)
	assertIDs(t, Filter(ds, ss, FilterSpec{View: ViewAll}, filterAsOf), 0, 1, 2)
}

func TestFilterAgeRange(t *testing.T) {
	ds := loadFixture(t,
		testutil.Applicant{BirthDate: "15-03-2000"}, // 24 as of 2024-06-01
		testutil.Applicant{BirthDate: "15-03-1994"}, // 30
		testutil.Applicant{BirthDate: "unknown"},
	)
	ss := status.NewStore()

	// Unset bounds include unparseable birth dates.
	assertIDs(t, Filter(ds, ss, FilterSpec{}, filterAsOf), 0, 1, 2)

	// Any set bound excludes them.
	assertIDs(t, Filter(ds, ss, FilterSpec{MinAge: 18}, filterAsOf), 0, 1)
	assertIDs(t, Filter(ds, ss, FilterSpec{MaxAge: 25}, filterAsOf), 0)
	assertIDs(t, Filter(ds, ss, FilterSpec{MinAge: 25, MaxAge: 35}, filterAsOf), 1)
}

func TestFilterPreservesImportOrder(t *testing.T) {
	ds := loadFixture(t,
		testutil.Applicant{Name: "Zara"},
		testutil.Applicant{Name: "Asha"},
		testutil.Applicant{Name: "Mira"},
	)
	ss := status.NewStore()

	got := Filter(ds, ss, FilterSpec{}, filterAsOf)
	assertIDs(t, got, 0, 1, 2)
}
