// fixtures.go - Shared applicant fixtures for tests
package testutil

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/internboard/backend/internal/models"
)

// Applicant describes one fixture row. Zero fields fall back to a
// plausible default so tests only spell out what they assert on.
type Applicant struct {
	Name           string
	Email          string
	Phone          string
	Gender         string
	Qualification  string
	District       string
	Laptop         string
	Smartphone     string
	Availability   string
	SubmissionDate string
	BirthDate      string
	InternshipType string
}

func (a Applicant) withDefaults(i int) Applicant {
	def := func(v, fallback string) string {
		if v == "" {
			return fallback
		}
		return v
	}
	a.Name = def(a.Name, fmt.Sprintf("Applicant %02d", i))
	a.Email = def(a.Email, fmt.Sprintf("applicant%02d@example.com", i))
	a.Phone = def(a.Phone, fmt.Sprintf("90000000%02d", i))
	a.Gender = def(a.Gender, "Female")
	a.Qualification = def(a.Qualification, "Graduate")
	a.District = def(a.District, "Central")
	a.Laptop = def(a.Laptop, "Yes")
	a.Smartphone = def(a.Smartphone, "Yes")
	a.Availability = def(a.Availability, "Full Time")
	a.SubmissionDate = def(a.SubmissionDate, fmt.Sprintf("2024-01-%02d 10:00:00", i+1))
	a.BirthDate = def(a.BirthDate, "15-03-2000")
	a.InternshipType = def(a.InternshipType, "Project Based")
	return a
}

// ApplicationsCSV renders the fixture rows as an applications file with
// the full canonical header row. Unlisted columns are left blank.
func ApplicationsCSV(applicants ...Applicant) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	headers := make([]string, len(models.KnownFields))
	index := make(map[models.Field]int, len(models.KnownFields))
	for i, f := range models.KnownFields {
		headers[i] = string(f)
		index[f] = i
	}
	w.Write(headers)

	for i, a := range applicants {
		a = a.withDefaults(i)
		row := make([]string, len(headers))
		row[index[models.FieldName]] = a.Name
		row[index[models.FieldEmail]] = a.Email
		row[index[models.FieldPhone]] = a.Phone
		row[index[models.FieldGender]] = a.Gender
		row[index[models.FieldQualification]] = a.Qualification
		row[index[models.FieldDistrict]] = a.District
		row[index[models.FieldLaptop]] = a.Laptop
		row[index[models.FieldSmartphone]] = a.Smartphone
		row[index[models.FieldAvailability]] = a.Availability
		row[index[models.FieldSubmissionDate]] = a.SubmissionDate
		row[index[models.FieldBirthDate]] = a.BirthDate
		row[index[models.FieldInternshipType]] = a.InternshipType
		w.Write(row)
	}

	w.Flush()
	return buf.Bytes()
}
