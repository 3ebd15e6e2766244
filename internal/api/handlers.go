// handlers.go - API handler core and shared helpers
package api

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/internboard/backend/internal/bulk"
	"github.com/internboard/backend/internal/config"
	"github.com/internboard/backend/internal/dataset"
	"github.com/internboard/backend/internal/models"
	"github.com/internboard/backend/internal/query"
	"github.com/internboard/backend/internal/session"
	"github.com/internboard/backend/internal/status"
	"github.com/internboard/backend/internal/storage"
)

// Handler handles API requests. The presentation layer owns filter values
// and redraw timing; the handler only runs commands and queries against
// the session's stores.
type Handler struct {
	store       storage.Store
	session     *session.Manager
	cfg         *config.AppConfig
	qualRatings map[string]int
}

// NewHandler creates a new API handler.
func NewHandler(store storage.Store, sess *session.Manager, cfg *config.AppConfig) *Handler {
	return &Handler{
		store:       store,
		session:     sess,
		cfg:         cfg,
		qualRatings: bulk.DefaultQualificationRatings,
	}
}

// LoadRatingRules loads an auto-rate mapping override if the default rules
// file exists.
func (h *Handler) LoadRatingRules() error {
	rulesPath := h.cfg.GetDataDir() + "/defaults/rating_rules.yaml"
	f, err := os.Open(rulesPath)
	if os.IsNotExist(err) {
		return nil // keep built-in mapping
	}
	if err != nil {
		return fmt.Errorf("failed to open rating rules: %w", err)
	}
	defer f.Close()

	ratings, err := bulk.LoadQualificationRatings(f)
	if err != nil {
		return fmt.Errorf("failed to parse rating rules: %w", err)
	}
	h.qualRatings = ratings
	return nil
}

// requireDataset resolves the loaded dataset or fails with NO_DATASET.
func (h *Handler) requireDataset() (*dataset.Store, *status.Store, error) {
	ds, ok := h.session.Dataset()
	if !ok {
		return nil, nil, session.ErrNoDataset
	}
	return ds, h.session.Status(), nil
}

// filterSpecFromQuery builds a FilterSpec from request query parameters.
// Absent parameters leave the matching predicate disabled.
func filterSpecFromQuery(c echo.Context) query.FilterSpec {
	return query.FilterSpec{
		Search:         c.QueryParam("search"),
		Gender:         c.QueryParam("gender"),
		Qualification:  c.QueryParam("qualification"),
		InternshipType: c.QueryParam("internshipType"),
		Laptop:         c.QueryParam("laptop"),
		Smartphone:     c.QueryParam("smartphone"),
		District:       c.QueryParam("district"),
		Availability:   c.QueryParam("availability"),
		Contact:        query.ContactFilter(orAll(c.QueryParam("contact"))),
		Interview:      query.InterviewFilter(orAll(c.QueryParam("interview"))),
		View:           query.ViewMode(orAll(c.QueryParam("view"))),
		MinAge:         atoiOrZero(c.QueryParam("minAge")),
		MaxAge:         atoiOrZero(c.QueryParam("maxAge")),
	}
}

// filterSpecBody is the JSON shape bulk operations use to name their
// target subset. Mirrors filterSpecFromQuery.
type filterSpecBody struct {
	Search         string `json:"search"`
	Gender         string `json:"gender"`
	Qualification  string `json:"qualification"`
	InternshipType string `json:"internshipType"`
	Laptop         string `json:"laptop"`
	Smartphone     string `json:"smartphone"`
	District       string `json:"district"`
	Availability   string `json:"availability"`
	Contact        string `json:"contact"`
	Interview      string `json:"interview"`
	View           string `json:"view"`
	MinAge         int    `json:"minAge"`
	MaxAge         int    `json:"maxAge"`
}

func (b filterSpecBody) toSpec() query.FilterSpec {
	return query.FilterSpec{
		Search:         b.Search,
		Gender:         b.Gender,
		Qualification:  b.Qualification,
		InternshipType: b.InternshipType,
		Laptop:         b.Laptop,
		Smartphone:     b.Smartphone,
		District:       b.District,
		Availability:   b.Availability,
		Contact:        query.ContactFilter(orAll(b.Contact)),
		Interview:      query.InterviewFilter(orAll(b.Interview)),
		View:           query.ViewMode(orAll(b.View)),
		MinAge:         b.MinAge,
		MaxAge:         b.MaxAge,
	}
}

// filteredSubset resolves the candidate subset a bulk operation targets.
func (h *Handler) filteredSubset(spec query.FilterSpec) ([]models.CandidateRecord, *status.Store, error) {
	ds, ss, err := h.requireDataset()
	if err != nil {
		return nil, nil, err
	}
	return query.Filter(ds, ss, spec, time.Now()), ss, nil
}

// candidateSummary is the list-view projection of a candidate.
type candidateSummary struct {
	ID            int                  `json:"id"`
	Name          string               `json:"name"`
	Email         string               `json:"email"`
	Phone         string               `json:"phone"`
	Gender        string               `json:"gender"`
	District      string               `json:"district"`
	Qualification string               `json:"qualification"`
	Availability  string               `json:"availability"`
	Age           *int                 `json:"age"`
	Status        models.Disposition   `json:"status"`
	ContactStatus models.ContactStatus `json:"contactStatus"`
	Rating        int                  `json:"rating"`
	InterviewDate string               `json:"interviewDate,omitempty"`
	RemarkCount   int                  `json:"remarkCount"`
}

func summarize(rec models.CandidateRecord, ss *status.Store, asOf time.Time) candidateSummary {
	var agePtr *int
	if age, ok := dataset.Age(rec.Field(models.FieldBirthDate), asOf); ok {
		agePtr = &age
	}
	interview, _ := ss.InterviewDateOf(rec.ID())
	return candidateSummary{
		ID:            rec.ID(),
		Name:          rec.Field(models.FieldName),
		Email:         rec.Field(models.FieldEmail),
		Phone:         rec.Field(models.FieldPhone),
		Gender:        rec.Field(models.FieldGender),
		District:      rec.Field(models.FieldDistrict),
		Qualification: rec.Field(models.FieldQualification),
		Availability:  rec.Field(models.FieldAvailability),
		Age:           agePtr,
		Status:        ss.DispositionOf(rec.ID()),
		ContactStatus: ss.ContactStatusOf(rec.ID()),
		Rating:        ss.RatingOf(rec.ID()),
		InterviewDate: interview,
		RemarkCount:   len(ss.RemarksOf(rec.ID())),
	}
}

// candidateID parses the :id route parameter and checks the candidate
// exists in the loaded dataset.
func (h *Handler) candidateID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, NewValidationError("id")
	}
	ds, _, derr := h.requireDataset()
	if derr != nil {
		return 0, derr
	}
	if _, ok := ds.Get(id); !ok {
		return 0, NewNotFoundError("candidate", c.Param("id"))
	}
	return id, nil
}

// paginate slices a candidate list into one page. Page numbers are 1-based.
func (h *Handler) paginate(records []models.CandidateRecord, page, pageSize int) ([]models.CandidateRecord, int, int) {
	if pageSize <= 0 {
		pageSize = h.cfg.Processing.DefaultPageSize
	}
	if pageSize > h.cfg.Processing.MaxPageSize {
		pageSize = h.cfg.Processing.MaxPageSize
	}
	if page < 1 {
		page = 1
	}

	total := len(records)
	start := (page - 1) * pageSize
	if start >= total {
		return []models.CandidateRecord{}, page, pageSize
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return records[start:end], page, pageSize
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// orAll treats an absent parameter as the wildcard.
func orAll(s string) string {
	if s == "" {
		return query.Any
	}
	return s
}
