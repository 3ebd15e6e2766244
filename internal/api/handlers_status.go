// handlers_status.go - Per-candidate selection state mutations
package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/internboard/backend/internal/models"
	"github.com/internboard/backend/internal/status"
)

// HandleShortlist marks a candidate shortlisted, clearing any rejection.
func (h *Handler) HandleShortlist(c echo.Context) error {
	id, err := h.candidateID(c)
	if err != nil {
		return err
	}
	ss := h.session.Status()
	ss.Shortlist(id)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":     id,
		"status": ss.DispositionOf(id),
	})
}

// HandleReject marks a candidate rejected, clearing any shortlisting.
func (h *Handler) HandleReject(c echo.Context) error {
	id, err := h.candidateID(c)
	if err != nil {
		return err
	}
	ss := h.session.Status()
	ss.Reject(id)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":     id,
		"status": ss.DispositionOf(id),
	})
}

// HandleResetDisposition returns a candidate to pending.
func (h *Handler) HandleResetDisposition(c echo.Context) error {
	id, err := h.candidateID(c)
	if err != nil {
		return err
	}
	ss := h.session.Status()
	ss.ResetDisposition(id)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":     id,
		"status": ss.DispositionOf(id),
	})
}

// HandleSetContactStatus records the outcome of a contact attempt.
func (h *Handler) HandleSetContactStatus(c echo.Context) error {
	id, err := h.candidateID(c)
	if err != nil {
		return err
	}
	var req struct {
		ContactStatus string `json:"contactStatus"`
	}
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid request body", err)
	}
	ss := h.session.Status()
	if err := ss.SetContactStatus(id, models.ContactStatus(req.ContactStatus)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":            id,
		"contactStatus": ss.ContactStatusOf(id),
	})
}

// HandleSetRating assigns a 1-5 star rating; 0 clears it.
func (h *Handler) HandleSetRating(c echo.Context) error {
	id, err := h.candidateID(c)
	if err != nil {
		return err
	}
	var req struct {
		Rating int `json:"rating"`
	}
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid request body", err)
	}
	ss := h.session.Status()
	if err := ss.SetRating(id, req.Rating); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":     id,
		"rating": ss.RatingOf(id),
	})
}

// HandleScheduleInterview records an interview date for a candidate.
func (h *Handler) HandleScheduleInterview(c echo.Context) error {
	id, err := h.candidateID(c)
	if err != nil {
		return err
	}
	var req struct {
		Date string `json:"date"`
	}
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid request body", err)
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return NewValidationError("date")
	}
	ss := h.session.Status()
	ss.ScheduleInterview(id, date)
	interview, _ := ss.InterviewDateOf(id)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":            id,
		"interviewDate": interview,
	})
}

// HandleCancelInterview removes a candidate's scheduled interview.
func (h *Handler) HandleCancelInterview(c echo.Context) error {
	id, err := h.candidateID(c)
	if err != nil {
		return err
	}
	h.session.Status().CancelInterview(id)
	return c.NoContent(http.StatusNoContent)
}

// HandleListRemarks returns a candidate's remarks in the order they were
// added.
func (h *Handler) HandleListRemarks(c echo.Context) error {
	id, err := h.candidateID(c)
	if err != nil {
		return err
	}
	remarks := h.session.Status().RemarksOf(id)
	if remarks == nil {
		remarks = []models.Remark{}
	}
	return c.JSON(http.StatusOK, remarks)
}

// HandleAddRemark appends a timestamped remark to a candidate.
func (h *Handler) HandleAddRemark(c echo.Context) error {
	id, err := h.candidateID(c)
	if err != nil {
		return err
	}
	var req struct {
		Text string `json:"text"`
	}
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid request body", err)
	}
	ss := h.session.Status()
	if err := ss.AddRemark(id, req.Text); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, ss.RemarksOf(id))
}

// HandleResetSelections clears every disposition while keeping contact
// statuses, ratings, interviews and remarks.
func (h *Handler) HandleResetSelections(c echo.Context) error {
	if _, _, err := h.requireDataset(); err != nil {
		return err
	}
	h.session.Status().ResetAll()
	return c.NoContent(http.StatusNoContent)
}

// HandleGetProgress returns a snapshot of all selection state, suitable
// for saving and restoring later.
func (h *Handler) HandleGetProgress(c echo.Context) error {
	if _, _, err := h.requireDataset(); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.session.Status().Snapshot())
}

// HandleRestoreProgress replaces all selection state with a previously
// saved snapshot.
func (h *Handler) HandleRestoreProgress(c echo.Context) error {
	var snap status.Snapshot
	if err := c.Bind(&snap); err != nil {
		return NewBadRequestError("invalid snapshot body", err)
	}
	if err := h.session.RestoreProgress(snap); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
