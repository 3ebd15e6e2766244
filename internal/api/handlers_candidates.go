// handlers_candidates.go - Candidate listing, detail and per-candidate status
package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/internboard/backend/internal/export"
	"github.com/internboard/backend/internal/query"
)

// candidatePage is the paginated response of the list endpoints.
type candidatePage struct {
	Candidates []candidateSummary `json:"candidates"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
}

func (h *Handler) buildPage(c echo.Context) (candidatePage, error) {
	ds, ss, err := h.requireDataset()
	if err != nil {
		return candidatePage{}, err
	}

	now := time.Now()
	spec := filterSpecFromQuery(c)
	matched := query.Filter(ds, ss, spec, now)
	matched = query.Sort(matched, ss, query.ParseSortKey(c.QueryParam("sort")))

	total := len(matched)
	pageRecords, page, pageSize := h.paginate(matched,
		atoiOrZero(c.QueryParam("page")), atoiOrZero(c.QueryParam("pageSize")))

	summaries := make([]candidateSummary, len(pageRecords))
	for i, rec := range pageRecords {
		summaries[i] = summarize(rec, ss, now)
	}
	return candidatePage{
		Candidates: summaries,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// HandleListCandidates returns one page of candidates matching the query
// filters, sorted by the requested key.
func (h *Handler) HandleListCandidates(c echo.Context) error {
	page, err := h.buildPage(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// HandleListCandidatesMsgpack is the msgpack variant of the list endpoint,
// for clients that want a compact binary payload.
func (h *Handler) HandleListCandidatesMsgpack(c echo.Context) error {
	page, err := h.buildPage(c)
	if err != nil {
		return err
	}
	data, err := msgpack.Marshal(page)
	if err != nil {
		return NewInternalError("failed to encode response", err)
	}
	return c.Blob(http.StatusOK, "application/msgpack", data)
}

// HandleGetCandidate returns the full grouped profile of one candidate.
func (h *Handler) HandleGetCandidate(c echo.Context) error {
	id, err := h.candidateID(c)
	if err != nil {
		return err
	}
	ds, ss, err := h.requireDataset()
	if err != nil {
		return err
	}
	pkg, err := export.BuildPackage(ds, ss, id, time.Now())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pkg)
}
