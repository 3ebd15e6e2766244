// handlers_reports.go - Aggregate statistics and the text summary report
package api

import (
	"bytes"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/internboard/backend/internal/dataset"
	"github.com/internboard/backend/internal/models"
	"github.com/internboard/backend/internal/report"
	"github.com/internboard/backend/internal/status"
)

// HandleOverview returns the headline totals and percentages.
func (h *Handler) HandleOverview(c echo.Context) error {
	ds, ss, err := h.requireDataset()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report.BuildOverview(ds, ss))
}

// distributionFields maps distribution endpoint names to record fields.
var distributionFields = map[string]models.Field{
	"gender":        models.FieldGender,
	"qualification": models.FieldQualification,
	"district":      models.FieldDistrict,
	"internship":    models.FieldInternshipType,
	"availability":  models.FieldAvailability,
}

// HandleDistribution returns per-value counts for one categorical column.
func (h *Handler) HandleDistribution(c echo.Context) error {
	f, ok := distributionFields[c.Param("field")]
	if !ok {
		return NewNotFoundError("distribution", c.Param("field"))
	}
	ds, _, err := h.requireDataset()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report.Distribution(ds, f))
}

// HandleFunnel returns the recruitment funnel stage counts.
func (h *Handler) HandleFunnel(c echo.Context) error {
	ds, ss, err := h.requireDataset()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report.Funnel(ds, ss))
}

// HandleContactBreakdown returns candidate counts per contact status.
func (h *Handler) HandleContactBreakdown(c echo.Context) error {
	_, ss, err := h.requireDataset()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report.ContactBreakdown(ss))
}

// HandleFollowUps lists candidates whose contact status needs another call.
func (h *Handler) HandleFollowUps(c echo.Context) error {
	ds, ss, err := h.requireDataset()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summariesForIDs(ds, ss, ss.FollowUpIDs()))
}

// HandleInterested lists candidates who expressed interest when called.
func (h *Handler) HandleInterested(c echo.Context) error {
	ds, ss, err := h.requireDataset()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summariesForIDs(ds, ss, ss.InterestedIDs()))
}

func summariesForIDs(ds *dataset.Store, ss *status.Store, ids []int) []candidateSummary {
	now := time.Now()
	summaries := make([]candidateSummary, 0, len(ids))
	for _, id := range ids {
		rec, ok := ds.Get(id)
		if !ok {
			continue
		}
		summaries = append(summaries, summarize(rec, ss, now))
	}
	return summaries
}

// HandleRatingsHistogram returns how many candidates hold each star count.
func (h *Handler) HandleRatingsHistogram(c echo.Context) error {
	_, ss, err := h.requireDataset()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report.RatingsHistogram(ss))
}

// HandleTopRated returns the highest-rated candidates.
func (h *Handler) HandleTopRated(c echo.Context) error {
	ds, ss, err := h.requireDataset()
	if err != nil {
		return err
	}
	limit := atoiOrZero(c.QueryParam("limit"))
	if limit <= 0 {
		limit = h.cfg.Processing.TopRatedLimit
	}
	minRating := atoiOrZero(c.QueryParam("minRating"))
	if minRating <= 0 {
		minRating = 4
	}
	return c.JSON(http.StatusOK, report.TopRated(ds, ss, minRating, limit))
}

// HandleSummaryReport streams the plain-text recruitment summary.
func (h *Handler) HandleSummaryReport(c echo.Context) error {
	ds, ss, err := h.requireDataset()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := report.WriteSummary(&buf, ds, ss, time.Now()); err != nil {
		return NewInternalError("failed to build summary", err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="recruitment_summary.txt"`)
	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}
