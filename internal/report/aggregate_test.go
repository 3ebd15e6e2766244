package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/internboard/backend/internal/dataset"
	"github.com/internboard/backend/internal/models"
	"github.com/internboard/backend/internal/status"
	"github.com/internboard/backend/internal/testutil"
)

func loadFixture(t *testing.T, applicants ...testutil.Applicant) *dataset.Store {
	t.Helper()
	ds, err := dataset.Load(bytes.NewReader(testutil.ApplicationsCSV(applicants...)))
	if err != nil {
		t.Fatalf("Failed to load fixture: %v", err)
	}
	return ds
}

func TestPercent(t *testing.T) {
	if got := Percent(1, 3); got != "33.3%" {
		t.Errorf("Expected 33.3%%, got %s", got)
	}
	if got := Percent(0, 10); got != "0.0%" {
		t.Errorf("Expected 0.0%%, got %s", got)
	}
	// Empty dataset must not divide by zero.
	if got := Percent(0, 0); got != "0.0%" {
		t.Errorf("Expected 0.0%% for empty dataset, got %s", got)
	}
}

func TestBuildOverview(t *testing.T) {
	ds := loadFixture(t,
		testutil.Applicant{}, testutil.Applicant{}, testutil.Applicant{},
		testutil.Applicant{},
	)
	ss := status.NewStore()
	ss.Shortlist(0)
	ss.Reject(1)
	ss.SetContactStatus(0, models.ContactEmailSent)
	ss.ScheduleInterview(0, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))

	ov := BuildOverview(ds, ss)
	if ov.Total != 4 || ov.Shortlisted != 1 || ov.Rejected != 1 || ov.Pending != 2 {
		t.Errorf("Unexpected overview counts: %+v", ov)
	}
	if ov.Contacted != 1 || ov.Interviews != 1 {
		t.Errorf("Unexpected contact/interview counts: %+v", ov)
	}
	if ov.ShortlistedPct != "25.0%" || ov.PendingPct != "50.0%" {
		t.Errorf("Unexpected percentages: %+v", ov)
	}
}

func TestDistribution(t *testing.T) {
	ds := loadFixture(t,
		testutil.Applicant{District: "North"},
		testutil.Applicant{District: "South"},
		testutil.Applicant{District: "South"},
		testutil.Applicant{District: "Central"},
	)

	rows := Distribution(ds, models.FieldDistrict)
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[0].Label != "South" || rows[0].Count != 2 {
		t.Errorf("Expected South first, got %+v", rows[0])
	}
	// Ties broken by label.
	if rows[1].Label != "Central" || rows[2].Label != "North" {
		t.Errorf("Expected tie broken alphabetically, got %+v", rows[1:])
	}
}

func TestContactBreakdownDisplayOrder(t *testing.T) {
	ss := status.NewStore()
	ss.SetContactStatus(0, models.ContactFollowUpNeeded)
	ss.SetContactStatus(1, models.ContactCalledNoAnswer)
	ss.SetContactStatus(2, models.ContactCalledNoAnswer)

	rows := ContactBreakdown(ss)
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows (zero statuses omitted), got %d", len(rows))
	}
	if rows[0].Label != string(models.ContactCalledNoAnswer) || rows[0].Count != 2 {
		t.Errorf("Expected No Answer first in display order, got %+v", rows[0])
	}
	if rows[1].Label != string(models.ContactFollowUpNeeded) {
		t.Errorf("Expected Follow-up Needed second, got %+v", rows[1])
	}
}

func TestFunnelStagesAreIndependent(t *testing.T) {
	ds := loadFixture(t,
		testutil.Applicant{}, testutil.Applicant{}, testutil.Applicant{},
	)
	ss := status.NewStore()
	// Shortlisted but never contacted: stages are not nested subsets.
	ss.Shortlist(0)
	ss.SetContactStatus(1, models.ContactEmailSent)
	ss.ScheduleInterview(2, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))

	stages := Funnel(ds, ss)
	want := []FunnelStage{
		{Stage: "Applications", Count: 3},
		{Stage: "Contacted", Count: 1},
		{Stage: "Interview Scheduled", Count: 1},
		{Stage: "Shortlisted", Count: 1},
	}
	if len(stages) != len(want) {
		t.Fatalf("Expected %d stages, got %d", len(want), len(stages))
	}
	for i := range want {
		if stages[i] != want[i] {
			t.Errorf("Stage %d: expected %+v, got %+v", i, want[i], stages[i])
		}
	}
}

func TestRatingsHistogram(t *testing.T) {
	ss := status.NewStore()
	ss.SetRating(0, 5)
	ss.SetRating(1, 5)
	ss.SetRating(2, 3)

	hist := RatingsHistogram(ss)
	if len(hist) != 5 {
		t.Fatalf("Expected all 5 star buckets present, got %d", len(hist))
	}
	if hist[5] != 2 || hist[3] != 1 || hist[1] != 0 {
		t.Errorf("Unexpected histogram: %v", hist)
	}
}

func TestOnboardingReadyIDs(t *testing.T) {
	ss := status.NewStore()
	ss.Shortlist(0)
	ss.Shortlist(1)
	ss.Shortlist(2)
	ss.SetContactStatus(0, models.ContactCalledInterested)
	ss.SetContactStatus(1, models.ContactCalledNotInterested)
	// 2 is shortlisted but never contacted.
	ss.SetContactStatus(3, models.ContactCalledInterested) // interested but not shortlisted

	got := OnboardingReadyIDs(ss)
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("Expected [0], got %v", got)
	}
}

func TestTopRated(t *testing.T) {
	ds := loadFixture(t,
		testutil.Applicant{Name: "Asha"},
		testutil.Applicant{Name: "Bilal"},
		testutil.Applicant{Name: "Chitra"},
		testutil.Applicant{Name: "Dev"},
	)
	ss := status.NewStore()
	ss.SetRating(0, 4)
	ss.SetRating(1, 5)
	ss.SetRating(2, 3)
	ss.SetRating(3, 4)
	ss.SetRating(99, 5) // stale entry with no matching record

	got := TopRated(ds, ss, 4, 10)
	if len(got) != 3 {
		t.Fatalf("Expected 3 candidates, got %d", len(got))
	}
	if got[0].ID != 1 || got[0].Rating != 5 {
		t.Errorf("Expected Bilal first, got %+v", got[0])
	}
	// Rating ties break by import order.
	if got[1].ID != 0 || got[2].ID != 3 {
		t.Errorf("Expected tie order [0 3], got %+v", got[1:])
	}

	limited := TopRated(ds, ss, 4, 2)
	if len(limited) != 2 {
		t.Errorf("Expected limit to cap results, got %d", len(limited))
	}
}
