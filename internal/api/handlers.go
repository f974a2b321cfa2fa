package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sono-report-server/internal/domain"
)

// respondError maps a service/domain error to an HTTP status and the
// standardized error body. Persistence failures surface immediately; there
// is no retry.
func (s *Server) respondError(c *gin.Context, err error) {
	requestID := c.GetString("request_id")

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, domain.NewAPIError(
			domain.ErrCodeNotFound, "not found", err.Error(), requestID))
	case errors.Is(err, domain.ErrMissingPatientName),
		errors.Is(err, domain.ErrMissingExamType):
		c.JSON(http.StatusUnprocessableEntity, domain.NewAPIError(
			domain.ErrCodePrecondition, "operation refused", err.Error(), requestID))
	case errors.Is(err, domain.ErrRRNTooShort),
		errors.Is(err, domain.ErrRRNCenturyDigit),
		errors.Is(err, domain.ErrRRNDateRange),
		errors.Is(err, domain.ErrUnknownFinding):
		c.JSON(http.StatusBadRequest, domain.NewAPIError(
			domain.ErrCodeInvalidInput, "invalid input", err.Error(), requestID))
	default:
		s.log.WithField("request_id", requestID).WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, domain.NewAPIError(
			domain.ErrCodeStorage, "operation failed", err.Error(), requestID))
	}
}

func (s *Server) badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, domain.NewAPIError(
		domain.ErrCodeInvalidInput, "invalid request body", err.Error(), c.GetString("request_id")))
}

// parseRRNRequest is the body of POST /api/v1/rrn/parse. The reference date
// is optional; it defaults to today.
type parseRRNRequest struct {
	RRN           string `json:"rrn" binding:"required"`
	ReferenceDate string `json:"reference_date"`
}

// handleParseRRN derives demographic fields from an RRN. A failed parse is
// a 400: the caller leaves its current demographic fields untouched.
func (s *Server) handleParseRRN(c *gin.Context) {
	var req parseRRNRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	ref := domain.DateOf(time.Now())
	if req.ReferenceDate != "" {
		parsed, err := domain.ParseDate(req.ReferenceDate)
		if err != nil {
			s.badRequest(c, err)
			return
		}
		ref = parsed
	}

	info, err := domain.ParseRRN(req.RRN, ref)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sex":        info.Sex,
		"birth_date": info.BirthDate,
		"age":        info.AgeLabel,
		"formatted":  domain.FormatRRN(req.RRN),
	})
}

// templateSummary is one row of the template listing.
type templateSummary struct {
	Code        string `json:"code"`
	DisplayName string `json:"display_name"`
}

// handleListTemplates lists exam-type codes and names in catalog order.
func (s *Server) handleListTemplates(c *gin.Context) {
	cat := s.reports.Catalog()

	summaries := make([]templateSummary, 0, cat.Len())
	for _, code := range cat.Codes() {
		t, err := cat.Get(code)
		if err != nil {
			s.respondError(c, err)
			return
		}
		summaries = append(summaries, templateSummary{Code: t.Code, DisplayName: t.DisplayName})
	}

	c.JSON(http.StatusOK, gin.H{"templates": summaries})
}

// handleGetTemplate returns one full template.
func (s *Server) handleGetTemplate(c *gin.Context) {
	t, err := s.reports.Catalog().Get(c.Param("code"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// composeImpressionRequest is the body of POST /api/v1/impression.
type composeImpressionRequest struct {
	ExamCode string   `json:"exam_code" binding:"required"`
	Findings []string `json:"findings"`
}

// handleComposeImpression composes the impression for a selection, in the
// order supplied.
func (s *Server) handleComposeImpression(c *gin.Context) {
	var req composeImpressionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	impression, err := s.reports.ComposeImpression(req.ExamCode, req.Findings)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"impression": impression})
}

// saveReportRequest is the body of POST /api/v1/reports. With an id the
// matching record is updated in place; without one a new record is created.
type saveReportRequest struct {
	ID    string             `json:"id"`
	Draft domain.ReportDraft `json:"draft"`
}

// handleSaveReport saves a draft as a snapshot (save-or-update).
func (s *Server) handleSaveReport(c *gin.Context) {
	var req saveReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	report, err := s.reports.Save(c.Request.Context(), &req.Draft, req.ID)
	if err != nil {
		s.respondError(c, err)
		return
	}

	status := http.StatusCreated
	if req.ID == report.ID {
		status = http.StatusOK
	}
	c.JSON(status, report)
}

// handleListReports lists saved reports newest-first.
func (s *Server) handleListReports(c *gin.Context) {
	reports, err := s.reports.List(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	if reports == nil {
		reports = []*domain.SavedReport{}
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports, "count": len(reports)})
}

// handleGetReport returns one saved snapshot, suitable for reloading into a
// draft editor.
func (s *Server) handleGetReport(c *gin.Context) {
	report, err := s.reports.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// handleGetDocument renders the final document of a saved report as plain
// text. When the filename preconditions hold, a Content-Disposition header
// offers it as a download.
func (s *Server) handleGetDocument(c *gin.Context) {
	text, filename, err := s.reports.Document(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	if filename != "" {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}

// handleDeleteReport removes a saved report.
func (s *Server) handleDeleteReport(c *gin.Context) {
	if err := s.reports.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// previewRequest is the body of POST /api/v1/reports/preview.
type previewRequest struct {
	Draft domain.ReportDraft `json:"draft"`
}

// handlePreviewReport renders a draft without saving it; used for the
// clipboard and download flows. The filename is empty when the patient name
// or exam type is missing.
func (s *Server) handlePreviewReport(c *gin.Context) {
	var req previewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	text, filename := s.reports.Preview(&req.Draft)
	c.JSON(http.StatusOK, gin.H{"document": text, "filename": filename})
}

// handleExportReports streams the whole collection as JSON.
func (s *Server) handleExportReports(c *gin.Context) {
	c.Header("Content-Type", "application/json; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="reports-export.json"`)
	if err := s.reports.Export(c.Request.Context(), c.Writer); err != nil {
		s.respondError(c, err)
		return
	}
}

// handleImportReports imports a collection export, skipping ids that
// already exist.
func (s *Server) handleImportReports(c *gin.Context) {
	imported, skipped, err := s.reports.Import(c.Request.Context(), c.Request.Body)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": imported, "skipped": skipped})
}
