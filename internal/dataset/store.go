// Package dataset holds the immutable imported table of candidate records.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/internboard/backend/internal/models"
)

// ImportError reports a source that could not be loaded as tabular data.
// A failed load installs nothing: the caller keeps whatever dataset it had.
type ImportError struct {
	Reason string
	Err    error
}

func (e *ImportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("import failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("import failed: %s", e.Reason)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// Store is the imported candidate table. It is immutable after Load:
// every other component refers to records by their assigned ID.
type Store struct {
	headers []string
	index   map[models.Field]int
	records []models.CandidateRecord
}

// Load parses CSV application data and assigns each row a sequential
// 0-based ID in file order. The first row must be the column header.
// Unrecognized columns are preserved for export; recognized columns are
// matched by trimmed, case-insensitive header name so form exports with
// stray whitespace still resolve.
func Load(r io.Reader) (*Store, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows, pad below

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, &ImportError{Reason: "malformed CSV", Err: err}
	}
	if len(rows) == 0 {
		return nil, &ImportError{Reason: "source is empty"}
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	index := make(map[models.Field]int)
	for i, h := range headers {
		key := normalizeHeader(h)
		for _, f := range models.KnownFields {
			if key == normalizeHeader(string(f)) {
				index[f] = i
				break
			}
		}
	}

	records := make([]models.CandidateRecord, 0, len(rows)-1)
	for id, row := range rows[1:] {
		raw := make([]string, len(headers))
		copy(raw, row) // short rows leave trailing cells empty

		fields := make(map[models.Field]string, len(index))
		for f, col := range index {
			fields[f] = strings.TrimSpace(raw[col])
		}
		records = append(records, models.NewCandidateRecord(id, fields, raw))
	}

	return &Store{headers: headers, index: index, records: records}, nil
}

// Get returns the record with the given ID.
func (s *Store) Get(id int) (models.CandidateRecord, bool) {
	if id < 0 || id >= len(s.records) {
		return models.CandidateRecord{}, false
	}
	return s.records[id], true
}

// All returns every record in original import order.
func (s *Store) All() []models.CandidateRecord {
	out := make([]models.CandidateRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of imported records.
func (s *Store) Len() int {
	return len(s.records)
}

// Headers returns the imported column headers in original order.
func (s *Store) Headers() []string {
	out := make([]string, len(s.headers))
	copy(out, s.headers)
	return out
}

// Values returns the distinct non-empty values of a column in sorted order.
// The presentation layer uses this to populate filter dropdowns.
func (s *Store) Values(f models.Field) []string {
	seen := make(map[string]struct{})
	for _, r := range s.records {
		v := r.Field(f)
		if v == "" {
			continue
		}
		seen[v] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.Join(strings.Fields(h), " "))
}
