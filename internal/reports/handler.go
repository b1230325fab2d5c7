package reports

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-match/internal/extract"
	"resume-match/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the reports service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses", h.analyze)
	rg.GET("/analyses", h.list)
	rg.GET("/analyses/:id", h.get)
}

type analyzeRequest struct {
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription"`
	ResumeName     string `json:"resumeName"`
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	contentType := c.GetHeader("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		var ok bool
		req, ok = h.bindMultipart(c)
		if !ok {
			return
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return
		}
	}

	if strings.TrimSpace(req.JobDescription) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "jobDescription is required", nil)
		return
	}

	report, err := h.Svc.Analyze(c.Request.Context(), req.ResumeText, req.JobDescription, req.ResumeName)
	if err != nil {
		switch {
		case errors.Is(err, ErrTextTooShort):
			respond.Error(c, http.StatusUnprocessableEntity, "text_too_short", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze resume", nil)
		}
		return
	}

	c.Set("reportId", report.ID)
	respond.Created(c, toResponse(report))
}

// bindMultipart reads an uploaded resume file plus a jobDescription form
// field, extracting the resume text. It writes the error response itself
// and reports success via the bool.
func (h *Handler) bindMultipart(c *gin.Context) (analyzeRequest, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return analyzeRequest{}, false
	}
	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return analyzeRequest{}, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return analyzeRequest{}, false
	}

	text, err := extract.Text(data, fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedType) {
			respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_type", "only PDF, DOCX, and plain-text resumes are supported", nil)
		} else {
			respond.Error(c, http.StatusUnprocessableEntity, "extraction_failed", "could not extract text from the uploaded file", nil)
		}
		return analyzeRequest{}, false
	}

	return analyzeRequest{
		ResumeText:     text,
		JobDescription: c.PostForm("jobDescription"),
		ResumeName:     fileHeader.Filename,
	}, true
}

func (h *Handler) get(c *gin.Context) {
	reportID := c.Param("id")
	if reportID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "report id is required", nil)
		return
	}

	report, err := h.Svc.Get(c.Request.Context(), reportID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "report not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch report", nil)
		}
		return
	}

	respond.OK(c, toResponse(report))
}

func (h *Handler) list(c *gin.Context) {
	limit := 20
	offset := 0

	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	// Zero and negative limits fall back to the default page size so every
	// repo backend sees the same request.
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}

	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	all, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list reports", nil)
		return
	}

	resp := make([]gin.H, 0, len(all))
	for _, report := range all {
		resp = append(resp, gin.H{
			"id":         report.ID,
			"resumeName": report.ResumeName,
			"totalScore": report.TotalScore,
			"degraded":   report.Degraded,
			"createdAt":  report.CreatedAt,
		})
	}
	respond.OK(c, resp)
}

func toResponse(report Report) gin.H {
	resp := gin.H{
		"id":          report.ID,
		"totalScore":  report.TotalScore,
		"breakdown":   report.Breakdown,
		"strengths":   report.Strengths,
		"weaknesses":  report.Weaknesses,
		"suggestions": report.Suggestions,
		"createdAt":   report.CreatedAt,
	}
	if report.ResumeName != "" {
		resp["resumeName"] = report.ResumeName
	}
	if report.Degraded {
		// Clients should render this as "analysis unavailable", not as a
		// resume that scored zero.
		resp["analysisUnavailable"] = true
	}
	return resp
}
