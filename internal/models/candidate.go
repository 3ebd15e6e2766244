// Package models contains domain types for the internship recruitment tracker.
package models

// Field identifies a named column of the imported application table.
// The values match the column headers of the application form export,
// trimmed of surrounding whitespace.
type Field string

const (
	FieldName           Field = "Your Full name"
	FieldEmail          Field = "Your Email id"
	FieldPhone          Field = "Mobile number"
	FieldAltPhone       Field = "Alternate Mobile number"
	FieldGender         Field = "Gender"
	FieldQualification  Field = "Your highest qualification"
	FieldDistrict       Field = "District of Residence"
	FieldLaptop         Field = "Do you have a laptop?"
	FieldSmartphone     Field = "Do you have a smartphone?"
	FieldAvailability   Field = "Hours of internship you can provide"
	FieldSubmissionDate Field = "Submission Date"
	FieldBirthDate      Field = "Your age as on date of application"
	FieldInternshipType Field = "Which type of internship would you prefer?"
	FieldCampus         Field = "Name of the campus (Highest qualification)"
	FieldQualifyingYear Field = "Qualifying year"
	FieldPoliceStation  Field = "Police station name of your place of residence"
	FieldAddress        Field = "Full address"
	FieldLanguages      Field = "Languages you can speak"
	FieldSkills         Field = "Tools and softwares you're familiar with"
	FieldInterestAreas  Field = "Areas of Interest (only for those applying for Project Based Internships - 4 months)."
	FieldReferredBy     Field = "Have you been referred by any officer?"
	FieldResumeURL      Field = "Resume with photo upload"
	FieldIDProofURL     Field = "Enter a copy of your valid id proof"
)

// KnownFields lists every recognized column in canonical order.
var KnownFields = []Field{
	FieldName, FieldEmail, FieldPhone, FieldAltPhone, FieldGender,
	FieldQualification, FieldDistrict, FieldLaptop, FieldSmartphone,
	FieldAvailability, FieldSubmissionDate, FieldBirthDate,
	FieldInternshipType, FieldCampus, FieldQualifyingYear,
	FieldPoliceStation, FieldAddress, FieldLanguages, FieldSkills,
	FieldInterestAreas, FieldReferredBy, FieldResumeURL, FieldIDProofURL,
}

// CandidateRecord is one row of the imported table. Records are immutable
// after import: the dataset store owns the contents and every other
// component refers to a candidate by ID.
type CandidateRecord struct {
	id     int
	fields map[Field]string
	raw    []string
}

// NewCandidateRecord builds a record from resolved field values plus the
// original row cells in header order. Used by the dataset store at import.
func NewCandidateRecord(id int, fields map[Field]string, raw []string) CandidateRecord {
	return CandidateRecord{id: id, fields: fields, raw: raw}
}

// ID returns the dense, 0-based identity assigned at import.
func (r CandidateRecord) ID() int {
	return r.id
}

// Field returns the value of a recognized column, or "" when the column
// was absent from the imported file.
func (r CandidateRecord) Field(f Field) string {
	return r.fields[f]
}

// Raw returns a copy of the original row cells in imported column order.
func (r CandidateRecord) Raw() []string {
	out := make([]string, len(r.raw))
	copy(out, r.raw)
	return out
}
