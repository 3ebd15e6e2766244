// handlers_dataset.go - Applications file upload and dataset lifecycle
package api

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/internboard/backend/internal/models"
)

// HandleUploadDataset accepts a multipart CSV upload, stores the raw file
// and installs it as the session dataset. Replacing the dataset wipes all
// selection state; a failed parse leaves the previous dataset untouched.
func (h *Handler) HandleUploadDataset(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return NewBadRequestError("file is required", err)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return NewInternalError("failed to read upload", err)
	}
	defer src.Close()

	info, err := h.store.Save(fileHeader.Filename, src)
	if err != nil {
		return NewInternalError("failed to save file", err)
	}

	path, err := h.store.GetFilePath(info.ID)
	if err != nil {
		return NewInternalError("failed to locate saved file", err)
	}
	f, err := os.Open(path)
	if err != nil {
		return NewInternalError("failed to open saved file", err)
	}
	defer f.Close()

	sessInfo, err := h.session.LoadDataset(info.Name, f)
	if err != nil {
		h.store.SetStatus(info.ID, "error")
		return err
	}
	h.store.SetStatus(info.ID, "loaded")

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"file":    info,
		"session": sessInfo,
	})
}

// HandleLoadStoredDataset installs a previously uploaded file as the
// session dataset.
func (h *Handler) HandleLoadStoredDataset(c echo.Context) error {
	var req struct {
		FileID string `json:"fileId"`
	}
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid request body", err)
	}
	if req.FileID == "" {
		return NewValidationError("fileId")
	}

	info, err := h.store.Get(req.FileID)
	if err != nil {
		return NewNotFoundError("file", req.FileID)
	}
	path, err := h.store.GetFilePath(req.FileID)
	if err != nil {
		return NewNotFoundError("file", req.FileID)
	}
	f, err := os.Open(path)
	if err != nil {
		return NewInternalError("failed to open stored file", err)
	}
	defer f.Close()

	sessInfo, err := h.session.LoadDataset(info.Name, f)
	if err != nil {
		h.store.SetStatus(info.ID, "error")
		return err
	}
	h.store.SetStatus(info.ID, "loaded")

	return c.JSON(http.StatusOK, sessInfo)
}

// HandleRecentFiles returns recently uploaded applications files.
func (h *Handler) HandleRecentFiles(c echo.Context) error {
	files, err := h.store.List(20)
	if err != nil {
		return NewInternalError("failed to list files", err)
	}
	if files == nil {
		files = []*models.FileInfo{}
	}
	return c.JSON(http.StatusOK, files)
}

// HandleDeleteFile removes a stored applications file.
func (h *Handler) HandleDeleteFile(c echo.Context) error {
	id := c.Param("id")
	if err := h.store.Delete(id); err != nil {
		return NewNotFoundError("file", id)
	}
	return c.NoContent(http.StatusNoContent)
}

// HandleDatasetInfo returns metadata about the loaded dataset.
func (h *Handler) HandleDatasetInfo(c echo.Context) error {
	info, ok := h.session.Info()
	if !ok {
		return NewNotFoundError("dataset", "none loaded")
	}
	return c.JSON(http.StatusOK, info)
}

// HandleResetSession discards the dataset and every piece of selection
// state, backing the "upload new file" action.
func (h *Handler) HandleResetSession(c echo.Context) error {
	h.session.Reset()
	return c.NoContent(http.StatusNoContent)
}

// optionFields maps filter-option keys to record fields.
var optionFields = map[string]models.Field{
	"gender":         models.FieldGender,
	"qualification":  models.FieldQualification,
	"internshipType": models.FieldInternshipType,
	"district":       models.FieldDistrict,
	"availability":   models.FieldAvailability,
}

// HandleFilterOptions returns the distinct values of the categorical
// filter columns, for populating the sidebar dropdowns.
func (h *Handler) HandleFilterOptions(c echo.Context) error {
	ds, _, err := h.requireDataset()
	if err != nil {
		return err
	}
	out := make(map[string][]string, len(optionFields))
	for key, f := range optionFields {
		out[key] = ds.Values(f)
	}
	out["contactStatuses"] = contactStatusStrings()
	return c.JSON(http.StatusOK, out)
}

func contactStatusStrings() []string {
	out := make([]string, len(models.ContactStatuses))
	for i, st := range models.ContactStatuses {
		out[i] = string(st)
	}
	return out
}
