// Package query filters and sorts the candidate dataset. Filtering never
// mutates the dataset or the status store: it produces a subsequence of the
// dataset in original import order.
package query

import (
	"strings"
	"time"

	"github.com/internboard/backend/internal/dataset"
	"github.com/internboard/backend/internal/models"
	"github.com/internboard/backend/internal/status"
)

// Any is the wildcard value for categorical predicates.
const Any = "All"

// ContactFilter narrows candidates by whether they have been contacted.
type ContactFilter string

const (
	ContactAll          ContactFilter = "All"
	ContactContacted    ContactFilter = "Contacted"
	ContactNotContacted ContactFilter = "Not Contacted"
)

// InterviewFilter narrows candidates by interview scheduling.
type InterviewFilter string

const (
	InterviewAll          InterviewFilter = "All"
	InterviewScheduled    InterviewFilter = "Scheduled"
	InterviewNotScheduled InterviewFilter = "Not Scheduled"
)

// ViewMode narrows candidates by disposition.
type ViewMode string

const (
	ViewAll         ViewMode = "All"
	ViewShortlisted ViewMode = "Shortlisted"
	ViewRejected    ViewMode = "Rejected"
	ViewPending     ViewMode = "Pending"
)

// FilterSpec describes one filtered view of the dataset. Every predicate is
// optional and independent; all supplied predicates are ANDed. The zero
// value (or "All"/empty strings) matches everything.
type FilterSpec struct {
	Search string

	Gender         string
	Qualification  string
	InternshipType string
	Laptop         string
	Smartphone     string
	District       string
	Availability   string

	Contact   ContactFilter
	Interview InterviewFilter
	View      ViewMode

	// MinAge/MaxAge of 0 means the bound is unset, matching the source
	// form where 0 disables the field.
	MinAge int
	MaxAge int
}

// Filter returns the records matching spec, in original import order.
// Ages are computed against asOf via the derived-field rules; candidates
// with an unparseable birth date are excluded whenever either age bound
// is set.
func Filter(ds *dataset.Store, ss *status.Store, spec FilterSpec, asOf time.Time) []models.CandidateRecord {
	out := make([]models.CandidateRecord, 0)
	search := strings.ToLower(strings.TrimSpace(spec.Search))

	for _, rec := range ds.All() {
		if search != "" && !matchesSearch(rec, search) {
			continue
		}
		if !matchesField(rec, models.FieldGender, spec.Gender) ||
			!matchesField(rec, models.FieldQualification, spec.Qualification) ||
			!matchesField(rec, models.FieldInternshipType, spec.InternshipType) ||
			!matchesField(rec, models.FieldLaptop, spec.Laptop) ||
			!matchesField(rec, models.FieldSmartphone, spec.Smartphone) ||
			!matchesField(rec, models.FieldDistrict, spec.District) ||
			!matchesField(rec, models.FieldAvailability, spec.Availability) {
			continue
		}
		if !matchesContact(ss, rec.ID(), spec.Contact) {
			continue
		}
		if !matchesInterview(ss, rec.ID(), spec.Interview) {
			continue
		}
		if !matchesAge(rec, spec, asOf) {
			continue
		}
		if !matchesView(ss, rec.ID(), spec.View) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// matchesSearch does a case-insensitive substring match over every cell of
// the record, recognized column or not.
func matchesSearch(rec models.CandidateRecord, term string) bool {
	for _, cell := range rec.Raw() {
		if strings.Contains(strings.ToLower(cell), term) {
			return true
		}
	}
	return false
}

func matchesField(rec models.CandidateRecord, f models.Field, want string) bool {
	if want == "" || want == Any {
		return true
	}
	return rec.Field(f) == want
}

func matchesContact(ss *status.Store, id int, f ContactFilter) bool {
	switch f {
	case ContactContacted:
		return ss.Contacted(id)
	case ContactNotContacted:
		return !ss.Contacted(id)
	default:
		return true
	}
}

func matchesInterview(ss *status.Store, id int, f InterviewFilter) bool {
	_, scheduled := ss.InterviewDateOf(id)
	switch f {
	case InterviewScheduled:
		return scheduled
	case InterviewNotScheduled:
		return !scheduled
	default:
		return true
	}
}

func matchesAge(rec models.CandidateRecord, spec FilterSpec, asOf time.Time) bool {
	if spec.MinAge == 0 && spec.MaxAge == 0 {
		return true
	}
	age, ok := dataset.Age(rec.Field(models.FieldBirthDate), asOf)
	if !ok {
		return false // unparseable age fails any set bound
	}
	if spec.MinAge > 0 && age < spec.MinAge {
		return false
	}
	if spec.MaxAge > 0 && age > spec.MaxAge {
		return false
	}
	return true
}

func matchesView(ss *status.Store, id int, v ViewMode) bool {
	switch v {
	case ViewShortlisted:
		return ss.IsShortlisted(id)
	case ViewRejected:
		return ss.IsRejected(id)
	case ViewPending:
		return !ss.IsShortlisted(id) && !ss.IsRejected(id)
	default:
		return true
	}
}
