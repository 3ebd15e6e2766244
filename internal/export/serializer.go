// Package export renders candidates merged with their status-store state
// into portable records: onboarding packages, CSV reports and contact
// sheets. Exports are additive: original columns pass through unchanged so
// a full report re-imports losslessly.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/internboard/backend/internal/dataset"
	"github.com/internboard/backend/internal/models"
	"github.com/internboard/backend/internal/status"
)

// ErrUnknownCandidate is returned when an export names an ID the dataset
// does not contain.
var ErrUnknownCandidate = errors.New("candidate not found")

// notScheduled is the placeholder for candidates without an interview date.
const notScheduled = "Not Scheduled"

// CandidatePackage is the structured onboarding record for one candidate:
// record fields grouped by concern plus the full selection history.
type CandidatePackage struct {
	Personal    PersonalInfo    `json:"Personal Information"`
	Address     AddressInfo     `json:"Address"`
	Education   EducationInfo   `json:"Education"`
	Technical   TechnicalInfo   `json:"Technical Details"`
	Preferences PreferencesInfo `json:"Internship Preferences"`
	Documents   DocumentsInfo   `json:"Documents"`
	Selection   SelectionInfo   `json:"Selection History"`
}

type PersonalInfo struct {
	Name   string `json:"Name"`
	Email  string `json:"Email"`
	Phone  string `json:"Phone"`
	Age    *int   `json:"Age"`
	Gender string `json:"Gender"`
}

type AddressInfo struct {
	District      string `json:"District"`
	PoliceStation string `json:"Police Station"`
	FullAddress   string `json:"Full Address"`
}

type EducationInfo struct {
	Qualification string `json:"Qualification"`
	Institution   string `json:"Institution"`
	Year          string `json:"Year"`
}

type TechnicalInfo struct {
	HasLaptop     string `json:"Has Laptop"`
	HasSmartphone string `json:"Has Smartphone"`
	Skills        string `json:"Skills"`
	Languages     string `json:"Languages"`
}

type PreferencesInfo struct {
	Type            string `json:"Type"`
	Availability    string `json:"Availability"`
	AreasOfInterest string `json:"Areas of Interest"`
}

type DocumentsInfo struct {
	Resume  string `json:"Resume"`
	IDProof string `json:"ID Proof"`
}

type SelectionInfo struct {
	Status             models.Disposition   `json:"Status"`
	ContactStatus      models.ContactStatus `json:"Contact Status"`
	Rating             int                  `json:"Rating"`
	InterviewScheduled string               `json:"Interview Scheduled"`
	InterviewDate      string               `json:"Interview Date,omitempty"`
	Remarks            []models.Remark      `json:"Remarks"`
}

// BuildPackage assembles the onboarding package for a single candidate.
func BuildPackage(ds *dataset.Store, ss *status.Store, id int, asOf time.Time) (CandidatePackage, error) {
	rec, ok := ds.Get(id)
	if !ok {
		return CandidatePackage{}, fmt.Errorf("%w: id %d", ErrUnknownCandidate, id)
	}

	var agePtr *int
	if age, ok := dataset.Age(rec.Field(models.FieldBirthDate), asOf); ok {
		agePtr = &age
	}

	scheduled := "No"
	interviewDate, hasInterview := ss.InterviewDateOf(id)
	if hasInterview {
		scheduled = "Yes"
	}

	return CandidatePackage{
		Personal: PersonalInfo{
			Name:   rec.Field(models.FieldName),
			Email:  rec.Field(models.FieldEmail),
			Phone:  rec.Field(models.FieldPhone),
			Age:    agePtr,
			Gender: rec.Field(models.FieldGender),
		},
		Address: AddressInfo{
			District:      rec.Field(models.FieldDistrict),
			PoliceStation: rec.Field(models.FieldPoliceStation),
			FullAddress:   rec.Field(models.FieldAddress),
		},
		Education: EducationInfo{
			Qualification: rec.Field(models.FieldQualification),
			Institution:   rec.Field(models.FieldCampus),
			Year:          rec.Field(models.FieldQualifyingYear),
		},
		Technical: TechnicalInfo{
			HasLaptop:     rec.Field(models.FieldLaptop),
			HasSmartphone: rec.Field(models.FieldSmartphone),
			Skills:        rec.Field(models.FieldSkills),
			Languages:     rec.Field(models.FieldLanguages),
		},
		Preferences: PreferencesInfo{
			Type:            rec.Field(models.FieldInternshipType),
			Availability:    rec.Field(models.FieldAvailability),
			AreasOfInterest: rec.Field(models.FieldInterestAreas),
		},
		Documents: DocumentsInfo{
			Resume:  rec.Field(models.FieldResumeURL),
			IDProof: rec.Field(models.FieldIDProofURL),
		},
		Selection: SelectionInfo{
			Status:             ss.DispositionOf(id),
			ContactStatus:      ss.ContactStatusOf(id),
			Rating:             ss.RatingOf(id),
			InterviewScheduled: scheduled,
			InterviewDate:      interviewDate,
			Remarks:            ss.RemarksOf(id),
		},
	}, nil
}

// BuildPackages assembles packages for a set of candidates, preserving the
// given ID order. Fails on the first unknown ID.
func BuildPackages(ds *dataset.Store, ss *status.Store, ids []int, asOf time.Time) ([]CandidatePackage, error) {
	out := make([]CandidatePackage, 0, len(ids))
	for _, id := range ids {
		pkg, err := BuildPackage(ds, ss, id, asOf)
		if err != nil {
			return nil, err
		}
		out = append(out, pkg)
	}
	return out, nil
}

// derivedColumns are appended to the full report after the original columns.
var derivedColumns = []string{"Status", "Contact_Status", "Rating", "Interview_Date"}

// WriteFullReport writes every record in import order as CSV, original
// columns first and the four derived status columns appended. Original
// cell values are passed through untouched.
func WriteFullReport(w io.Writer, ds *dataset.Store, ss *status.Store) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append(ds.Headers(), derivedColumns...)); err != nil {
		return err
	}
	for _, rec := range ds.All() {
		if err := cw.Write(append(rec.Raw(), derivedCells(ss, rec.ID())...)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func derivedCells(ss *status.Store, id int) []string {
	interview := notScheduled
	if d, ok := ss.InterviewDateOf(id); ok {
		interview = d
	}
	return []string{
		string(ss.DispositionOf(id)),
		string(ss.ContactStatusOf(id)),
		strconv.Itoa(ss.RatingOf(id)),
		interview,
	}
}

// WriteRecords writes a candidate subset as CSV with the original columns
// only. Used for the shortlisted-candidates export.
func WriteRecords(w io.Writer, headers []string, records []models.CandidateRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write(rec.Raw()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteInterviewSchedule writes every candidate with a scheduled interview,
// original columns plus an Interview Date column, in import order.
func WriteInterviewSchedule(w io.Writer, ds *dataset.Store, ss *status.Store) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append(ds.Headers(), "Interview Date")); err != nil {
		return err
	}
	for _, rec := range ds.All() {
		date, ok := ss.InterviewDateOf(rec.ID())
		if !ok {
			continue
		}
		if err := cw.Write(append(rec.Raw(), date)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteOfferData writes the shortlisted candidates with the selection
// metadata needed for offer-letter generation.
func WriteOfferData(w io.Writer, ds *dataset.Store, ss *status.Store, selectionDate time.Time) error {
	cw := csv.NewWriter(w)
	headers := append(ds.Headers(), "Selection_Date", "Contact_Status", "Rating", "Interview_Date")
	if err := cw.Write(headers); err != nil {
		return err
	}
	date := selectionDate.Format("2006-01-02")
	for _, rec := range ds.All() {
		if !ss.IsShortlisted(rec.ID()) {
			continue
		}
		interview := notScheduled
		if d, ok := ss.InterviewDateOf(rec.ID()); ok {
			interview = d
		}
		row := append(rec.Raw(),
			date,
			string(ss.ContactStatusOf(rec.ID())),
			strconv.Itoa(ss.RatingOf(rec.ID())),
			interview,
		)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFieldList writes one column per given field for every candidate.
// Backs the phone-number and email contact sheet exports.
func WriteFieldList(w io.Writer, ds *dataset.Store, fields ...models.Field) error {
	cw := csv.NewWriter(w)
	headers := make([]string, len(fields))
	for i, f := range fields {
		headers[i] = string(f)
	}
	if err := cw.Write(headers); err != nil {
		return err
	}
	for _, rec := range ds.All() {
		row := make([]string, len(fields))
		for i, f := range fields {
			row[i] = rec.Field(f)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
