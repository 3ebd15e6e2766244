package bulk

import (
	"bytes"
	"testing"

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

func TestParseRule(t *testing.T) {
	for _, name := range []string{"device_ready", "full_time", "qualified", "top_rated"} {
		if _, err := ParseRule(name); err != nil {
			t.Errorf("Expected %q to parse, got %v", name, err)
		}
	}
	if _, err := ParseRule("left_handed"); err == nil {
		t.Error("Expected error for unknown rule")
	}
}

func TestShortlistByRuleDeviceReady(t *testing.T) {
	ds := loadFixture(t,
		testutil.Applicant{Laptop: "Yes", Smartphone: "Yes"},
		testutil.Applicant{Laptop: "Yes", Smartphone: "No"},
		testutil.Applicant{Laptop: "No", Smartphone: "Yes"},
		testutil.Applicant{Laptop: "Yes", Smartphone: "Yes"},
		testutil.Applicant{Laptop: "No", Smartphone: "No"},
		testutil.Applicant{Laptop: "Yes", Smartphone: "Yes"},
		testutil.Applicant{Laptop: "Yes", Smartphone: "Yes"},
		testutil.Applicant{Laptop: "No", Smartphone: "Yes"},
		testutil.Applicant{Laptop: "Yes", Smartphone: "No"},
		testutil.Applicant{Laptop: "No", Smartphone: "No"},
	)
	ss := status.NewStore()

	affected, err := ShortlistByRule(ds.All(), ss, RuleDeviceReady)
	if err != nil {
		t.Fatalf("ShortlistByRule failed: %v", err)
	}
	if affected != 4 {
		t.Errorf("Expected 4 affected, got %d", affected)
	}
	want := []int{0, 3, 5, 6}
	got := ss.ShortlistedIDs()
	if len(got) != len(want) {
		t.Fatalf("Expected shortlisted %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected shortlisted %v, got %v", want, got)
		}
	}
	// Non-matching candidates are untouched, not rejected.
	if ss.IsRejected(1) {
		t.Error("Expected non-matching candidate to stay pending")
	}
}

func TestShortlistByRuleFullTime(t *testing.T) {
	ds := loadFixture(t,
		testutil.Applicant{Availability: "Full Time"},
		testutil.Applicant{Availability: "Part Time"},
		testutil.Applicant{Availability: "Full-time (remote)"},
	)
	ss := status.NewStore()

	affected, err := ShortlistByRule(ds.All(), ss, RuleFullTime)
	if err != nil {
		t.Fatalf("ShortlistByRule failed: %v", err)
	}
	if affected != 2 {
		t.Errorf("Expected availability containing \"Full\" to match, got %d", affected)
	}
}

func TestShortlistByRuleQualified(t *testing.T) {
	ds := loadFixture(t,
		testutil.Applicant{Qualification: "Graduate"},
		testutil.Applicant{Qualification: "Engineer"},
		testutil.Applicant{Qualification: "Intermediate"},
		testutil.Applicant{Qualification: "Post Graduate"},
	)
	ss := status.NewStore()

	affected, _ := ShortlistByRule(ds.All(), ss, RuleQualified)
	if affected != 2 {
		t.Errorf("Expected only Graduate and Engineer to match, got %d", affected)
	}
}

func TestShortlistByRuleTopRated(t *testing.T) {
	ds := loadFixture(t,
		testutil.Applicant{}, testutil.Applicant{}, testutil.Applicant{},
	)
	ss := status.NewStore()
	ss.SetRating(0, 4)
	ss.SetRating(1, 3)
	ss.SetRating(2, 5)

	affected, _ := ShortlistByRule(ds.All(), ss, RuleTopRated)
	if affected != 2 {
		t.Errorf("Expected ratings >= 4 to match, got %d", affected)
	}
	if !ss.IsShortlisted(0) || !ss.IsShortlisted(2) || ss.IsShortlisted(1) {
		t.Errorf("Unexpected shortlist: %v", ss.ShortlistedIDs())
	}
}

func TestBlanketOperations(t *testing.T) {
	ds := loadFixture(t,
		testutil.Applicant{}, testutil.Applicant{}, testutil.Applicant{},
	)
	ss := status.NewStore()
	subset := ds.All()[:2]

	if got := ShortlistAll(subset, ss); got != 2 {
		t.Errorf("Expected 2 affected, got %d", got)
	}
	if !ss.IsShortlisted(0) || !ss.IsShortlisted(1) || ss.IsShortlisted(2) {
		t.Errorf("Expected only subset shortlisted, got %v", ss.ShortlistedIDs())
	}

	if got := RejectAll(subset, ss); got != 2 {
		t.Errorf("Expected 2 affected, got %d", got)
	}
	if !ss.IsRejected(0) || ss.IsShortlisted(0) {
		t.Error("Expected rejection to replace shortlisting")
	}

	ResetToPending(subset, ss)
	if ss.IsRejected(0) || ss.IsRejected(1) {
		t.Error("Expected subset reset to pending")
	}

	affected, err := SetContactStatusAll(subset, ss, models.ContactEmailSent)
	if err != nil {
		t.Fatalf("SetContactStatusAll failed: %v", err)
	}
	if affected != 2 || !ss.Contacted(0) || ss.Contacted(2) {
		t.Error("Expected contact status applied to subset only")
	}

	if _, err := SetContactStatusAll(subset, ss, "Telegraphed"); err == nil {
		t.Error("Expected error for invalid contact status")
	}
}

func TestAutoRate(t *testing.T) {
	ds := loadFixture(t,
		testutil.Applicant{Qualification: "Engineer"},
		testutil.Applicant{Qualification: "Graduate"},
		testutil.Applicant{Qualification: "PhD"}, // unmapped
		testutil.Applicant{Qualification: "Intermediate"},
	)
	ss := status.NewStore()
	ss.SetRating(2, 3) // pre-existing rating on the unmapped candidate

	count := AutoRate(ds.All(), ss, DefaultQualificationRatings)
	if count != 3 {
		t.Errorf("Expected 3 rated, got %d", count)
	}
	if ss.RatingOf(0) != 5 || ss.RatingOf(1) != 4 || ss.RatingOf(3) != 2 {
		t.Errorf("Unexpected ratings: %v", ss.Ratings())
	}
	if ss.RatingOf(2) != 3 {
		t.Error("Expected unmapped qualification to keep its rating")
	}
}
