// handlers_export.go - CSV, JSON and workbook downloads
package api

import (
	"bytes"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/internboard/backend/internal/export"
	"github.com/internboard/backend/internal/models"
	"github.com/internboard/backend/internal/query"
	"github.com/internboard/backend/internal/report"
)

func csvAttachment(c echo.Context, filename string, body []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", body)
}

// HandleExportFullReport downloads every candidate with the derived
// status columns appended.
func (h *Handler) HandleExportFullReport(c echo.Context) error {
	ds, ss, err := h.requireDataset()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := export.WriteFullReport(&buf, ds, ss); err != nil {
		return NewInternalError("failed to build report", err)
	}
	return csvAttachment(c, "full_report.csv", buf.Bytes())
}

// HandleExportShortlisted downloads the shortlisted candidates with their
// original columns.
func (h *Handler) HandleExportShortlisted(c echo.Context) error {
	ds, ss, err := h.requireDataset()
	if err != nil {
		return err
	}
	var records []models.CandidateRecord
	for _, id := range ss.ShortlistedIDs() {
		if rec, ok := ds.Get(id); ok {
			records = append(records, rec)
		}
	}
	var buf bytes.Buffer
	if err := export.WriteRecords(&buf, ds.Headers(), records); err != nil {
		return NewInternalError("failed to build export", err)
	}
	return csvAttachment(c, "shortlisted_candidates.csv", buf.Bytes())
}

// HandleExportInterviews downloads the interview schedule.
func (h *Handler) HandleExportInterviews(c echo.Context) error {
	ds, ss, err := h.requireDataset()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := export.WriteInterviewSchedule(&buf, ds, ss); err != nil {
		return NewInternalError("failed to build export", err)
	}
	return csvAttachment(c, "interview_schedule.csv", buf.Bytes())
}

// HandleExportOfferData downloads the shortlisted candidates formatted
// for offer preparation.
func (h *Handler) HandleExportOfferData(c echo.Context) error {
	ds, ss, err := h.requireDataset()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := export.WriteOfferData(&buf, ds, ss, time.Now()); err != nil {
		return NewInternalError("failed to build export", err)
	}
	return csvAttachment(c, "offer_data.csv", buf.Bytes())
}

// HandleExportPhones downloads a phone call sheet.
func (h *Handler) HandleExportPhones(c echo.Context) error {
	ds, _, err := h.requireDataset()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := export.WriteFieldList(&buf, ds, models.FieldName, models.FieldPhone); err != nil {
		return NewInternalError("failed to build export", err)
	}
	return csvAttachment(c, "phone_list.csv", buf.Bytes())
}

// HandleExportEmails downloads an email list.
func (h *Handler) HandleExportEmails(c echo.Context) error {
	ds, _, err := h.requireDataset()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := export.WriteFieldList(&buf, ds, models.FieldName, models.FieldEmail); err != nil {
		return NewInternalError("failed to build export", err)
	}
	return csvAttachment(c, "email_list.csv", buf.Bytes())
}

// HandleExportWorkbook downloads the multi-sheet Excel workbook.
func (h *Handler) HandleExportWorkbook(c echo.Context) error {
	ds, ss, err := h.requireDataset()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := export.WriteWorkbook(&buf, ds, ss, time.Now()); err != nil {
		return NewInternalError("failed to build workbook", err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="recruitment_report.xlsx"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// HandleExportPackage downloads one candidate's onboarding package.
func (h *Handler) HandleExportPackage(c echo.Context) error {
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
	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="onboarding_package.json"`)
	return c.JSON(http.StatusOK, pkg)
}

// HandleExportPackages downloads onboarding packages for every candidate
// who is shortlisted and confirmed interested.
func (h *Handler) HandleExportPackages(c echo.Context) error {
	ds, ss, err := h.requireDataset()
	if err != nil {
		return err
	}
	ids := report.OnboardingReadyIDs(ss)
	pkgs, err := export.BuildPackages(ds, ss, ids, time.Now())
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="onboarding_packages.json"`)
	return c.JSON(http.StatusOK, pkgs)
}

// HandleExportFiltered downloads the current filtered view with original
// columns, mirroring what the list endpoints show.
func (h *Handler) HandleExportFiltered(c echo.Context) error {
	ds, ss, err := h.requireDataset()
	if err != nil {
		return err
	}
	matched := query.Filter(ds, ss, filterSpecFromQuery(c), time.Now())
	matched = query.Sort(matched, ss, query.ParseSortKey(c.QueryParam("sort")))
	var buf bytes.Buffer
	if err := export.WriteRecords(&buf, ds.Headers(), matched); err != nil {
		return NewInternalError("failed to build export", err)
	}
	return csvAttachment(c, "filtered_candidates.csv", buf.Bytes())
}
