// routes.go - Route registration and middleware setup
package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/internboard/backend/internal/config"
	"github.com/internboard/backend/internal/session"
	"github.com/internboard/backend/internal/storage"
)

// Dependencies holds everything the handler needs.
type Dependencies struct {
	Store      storage.Store
	SessionMgr *session.Manager
	Config     *config.AppConfig
}

// NewHandlerFromDeps wires a Handler from a Dependencies bundle.
func NewHandlerFromDeps(deps *Dependencies) *Handler {
	return NewHandler(deps.Store, deps.SessionMgr, deps.Config)
}

// RegisterRoutes registers all API routes with the Echo instance.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/health", h.HandleHealth)

	// Applications file management
	filesGroup := e.Group("/api/files")
	filesGroup.POST("/upload", h.HandleUploadDataset)
	filesGroup.GET("/recent", h.HandleRecentFiles)
	filesGroup.DELETE("/:id", h.HandleDeleteFile)

	// Dataset lifecycle
	datasetGroup := e.Group("/api/dataset")
	datasetGroup.POST("/load", h.HandleLoadStoredDataset)
	datasetGroup.GET("", h.HandleDatasetInfo)
	datasetGroup.DELETE("", h.HandleResetSession)
	datasetGroup.GET("/options", h.HandleFilterOptions)

	// Candidate listing and per-candidate state
	candGroup := e.Group("/api/candidates")
	candGroup.GET("", h.HandleListCandidates)
	candGroup.GET("/msgpack", h.HandleListCandidatesMsgpack)
	candGroup.GET("/:id", h.HandleGetCandidate)
	candGroup.POST("/:id/shortlist", h.HandleShortlist)
	candGroup.POST("/:id/reject", h.HandleReject)
	candGroup.POST("/:id/reset", h.HandleResetDisposition)
	candGroup.PUT("/:id/contact", h.HandleSetContactStatus)
	candGroup.PUT("/:id/rating", h.HandleSetRating)
	candGroup.PUT("/:id/interview", h.HandleScheduleInterview)
	candGroup.DELETE("/:id/interview", h.HandleCancelInterview)
	candGroup.GET("/:id/remarks", h.HandleListRemarks)
	candGroup.POST("/:id/remarks", h.HandleAddRemark)

	// Bulk operations over the filtered subset
	bulkGroup := e.Group("/api/bulk")
	bulkGroup.POST("/shortlist-by-rule", h.HandleBulkShortlistByRule)
	bulkGroup.POST("/shortlist", h.HandleBulkShortlist)
	bulkGroup.POST("/reject", h.HandleBulkReject)
	bulkGroup.POST("/reset", h.HandleBulkReset)
	bulkGroup.POST("/contact", h.HandleBulkSetContactStatus)
	bulkGroup.POST("/auto-rate", h.HandleBulkAutoRate)

	// Selection lifecycle and progress persistence
	e.POST("/api/selections/reset", h.HandleResetSelections)
	e.GET("/api/progress", h.HandleGetProgress)
	e.POST("/api/progress", h.HandleRestoreProgress)

	// Reports
	reportsGroup := e.Group("/api/reports")
	reportsGroup.GET("/overview", h.HandleOverview)
	reportsGroup.GET("/distribution/:field", h.HandleDistribution)
	reportsGroup.GET("/funnel", h.HandleFunnel)
	reportsGroup.GET("/contacts", h.HandleContactBreakdown)
	reportsGroup.GET("/follow-ups", h.HandleFollowUps)
	reportsGroup.GET("/interested", h.HandleInterested)
	reportsGroup.GET("/ratings", h.HandleRatingsHistogram)
	reportsGroup.GET("/top-rated", h.HandleTopRated)
	reportsGroup.GET("/summary", h.HandleSummaryReport)

	// Downloads
	exportGroup := e.Group("/api/export")
	exportGroup.GET("/full-report", h.HandleExportFullReport)
	exportGroup.GET("/shortlisted", h.HandleExportShortlisted)
	exportGroup.GET("/filtered", h.HandleExportFiltered)
	exportGroup.GET("/interviews", h.HandleExportInterviews)
	exportGroup.GET("/offer-data", h.HandleExportOfferData)
	exportGroup.GET("/phones", h.HandleExportPhones)
	exportGroup.GET("/emails", h.HandleExportEmails)
	exportGroup.GET("/workbook", h.HandleExportWorkbook)
	exportGroup.GET("/package/:id", h.HandleExportPackage)
	exportGroup.GET("/packages", h.HandleExportPackages)
}

// SetupMiddleware configures common middleware for the server.
func SetupMiddleware(e *echo.Echo, cfg *config.AppConfig) {
	e.HTTPErrorHandler = ErrorHandler

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			if !cfg.Advanced.EnableRequestLogging {
				return true
			}
			return c.Request().URL.Path == "/health"
		},
	}))

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 1024 * 4,
	}))

	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	if cfg.Server.EnableCORS {
		origins := strings.Split(cfg.Server.AllowOrigins, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		if len(origins) == 0 || (len(origins) == 1 && origins[0] == "") {
			origins = []string{"*"}
		}
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: origins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		}))
	}
}
