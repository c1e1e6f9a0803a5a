package analyses

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"cvscore-backend/internal/documents"
	"cvscore-backend/internal/engine"
	"cvscore-backend/internal/extract"
	"cvscore-backend/internal/shared/server/middleware"
	"cvscore-backend/internal/shared/server/respond"
	"cvscore-backend/internal/usage"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses", h.analyzeText)
	rg.POST("/documents/:id/analyze", h.analyzeDocument)
	rg.GET("/analyses", h.list)
	rg.GET("/analyses/:id", h.get)
}

func (h *Handler) analyzeText(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req AnalyzeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "text is required", nil)
		return
	}

	analysis, err := h.Svc.AnalyzeText(c.Request.Context(), userID, req.Text, req.JobDescription)
	if err != nil {
		h.respondAnalyzeError(c, err)
		return
	}

	c.Set("analysisId", analysis.ID)
	respond.JSON(c, http.StatusCreated, toResponse(analysis))
}

func (h *Handler) analyzeDocument(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	documentID := c.Param("id")
	if documentID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "document id is required", nil)
		return
	}

	var req AnalyzeDocumentRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return
		}
	}

	analysis, err := h.Svc.AnalyzeDocument(c.Request.Context(), userID, documentID, req.JobDescription)
	if err != nil {
		h.respondAnalyzeError(c, err)
		return
	}

	c.Set("documentId", documentID)
	c.Set("analysisId", analysis.ID)
	respond.JSON(c, http.StatusCreated, toResponse(analysis))
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	analysisID := c.Param("id")

	analysis, err := h.Svc.Get(c.Request.Context(), userID, analysisID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch analysis", nil)
		}
		return
	}

	c.Set("analysisId", analysis.ID)
	respond.JSON(c, http.StatusOK, toResponse(analysis))
}

func (h *Handler) list(c *gin.Context) {
	if middleware.IsGuestFromContext(c) {
		respond.Error(c, http.StatusUnauthorized, "login_required", "Login required to view history", nil)
		return
	}

	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
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

	list, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list analyses", nil)
		return
	}

	resp := make([]AnalysisResponse, 0, len(list))
	for _, analysis := range list {
		resp = append(resp, toResponse(analysis))
	}

	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) respondAnalyzeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, engine.ErrEmptyText):
		respond.Error(c, http.StatusBadRequest, "validation_error", "cv text is empty", nil)
	case errors.Is(err, extract.ErrUnsupportedType):
		respond.Error(c, http.StatusBadRequest, "unsupported_type", "file type is not supported for analysis", nil)
	case errors.Is(err, usage.ErrLimitReached):
		respond.Error(c, http.StatusTooManyRequests, "limit_reached", "usage limit reached", nil)
	case errors.Is(err, documents.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to run analysis", nil)
	}
}
