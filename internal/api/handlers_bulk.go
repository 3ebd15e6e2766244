// handlers_bulk.go - Bulk operations over the filtered candidate subset
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/internboard/backend/internal/bulk"
	"github.com/internboard/backend/internal/models"
)

// bulkRequest names the subset a bulk operation targets plus any
// operation-specific fields.
type bulkRequest struct {
	Filter        filterSpecBody `json:"filter"`
	Rule          string         `json:"rule,omitempty"`
	ContactStatus string         `json:"contactStatus,omitempty"`
}

func bulkResponse(c echo.Context, affected int) error {
	return c.JSON(http.StatusOK, map[string]int{"affected": affected})
}

// HandleBulkShortlistByRule shortlists every candidate in the filtered
// subset that satisfies the named rule.
func (h *Handler) HandleBulkShortlistByRule(c echo.Context) error {
	var req bulkRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid request body", err)
	}
	rule, err := bulk.ParseRule(req.Rule)
	if err != nil {
		return NewValidationError("rule")
	}
	subset, ss, err := h.filteredSubset(req.Filter.toSpec())
	if err != nil {
		return err
	}
	affected, err := bulk.ShortlistByRule(subset, ss, rule)
	if err != nil {
		return err
	}
	return bulkResponse(c, affected)
}

// HandleBulkShortlist shortlists the entire filtered subset.
func (h *Handler) HandleBulkShortlist(c echo.Context) error {
	var req bulkRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid request body", err)
	}
	subset, ss, err := h.filteredSubset(req.Filter.toSpec())
	if err != nil {
		return err
	}
	return bulkResponse(c, bulk.ShortlistAll(subset, ss))
}

// HandleBulkReject rejects the entire filtered subset.
func (h *Handler) HandleBulkReject(c echo.Context) error {
	var req bulkRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid request body", err)
	}
	subset, ss, err := h.filteredSubset(req.Filter.toSpec())
	if err != nil {
		return err
	}
	return bulkResponse(c, bulk.RejectAll(subset, ss))
}

// HandleBulkReset returns the entire filtered subset to pending.
func (h *Handler) HandleBulkReset(c echo.Context) error {
	var req bulkRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid request body", err)
	}
	subset, ss, err := h.filteredSubset(req.Filter.toSpec())
	if err != nil {
		return err
	}
	return bulkResponse(c, bulk.ResetToPending(subset, ss))
}

// HandleBulkSetContactStatus applies one contact status to the entire
// filtered subset.
func (h *Handler) HandleBulkSetContactStatus(c echo.Context) error {
	var req bulkRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid request body", err)
	}
	subset, ss, err := h.filteredSubset(req.Filter.toSpec())
	if err != nil {
		return err
	}
	affected, err := bulk.SetContactStatusAll(subset, ss, models.ContactStatus(req.ContactStatus))
	if err != nil {
		return err
	}
	return bulkResponse(c, affected)
}

// HandleBulkAutoRate assigns qualification-based ratings across the
// filtered subset.
func (h *Handler) HandleBulkAutoRate(c echo.Context) error {
	var req bulkRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid request body", err)
	}
	subset, ss, err := h.filteredSubset(req.Filter.toSpec())
	if err != nil {
		return err
	}
	return bulkResponse(c, bulk.AutoRate(subset, ss, h.qualRatings))
}
