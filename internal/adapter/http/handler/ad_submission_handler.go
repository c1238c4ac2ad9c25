package handler

import (
	"time"

	"oyunfor-gateway/internal/adapter/http/dto"
	"oyunfor-gateway/internal/adapter/http/middleware"
	"oyunfor-gateway/internal/core/domain"
	"oyunfor-gateway/internal/core/ports"
	"oyunfor-gateway/pkg/apperror"
	"oyunfor-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const csvContentType = "text/csv; charset=utf-8"

// AdSubmissionHandler handles the public ad form and the staff review endpoints.
type AdSubmissionHandler struct {
	ads ports.AdSubmissionService
}

// NewAdSubmissionHandler creates a new AdSubmissionHandler.
func NewAdSubmissionHandler(ads ports.AdSubmissionService) *AdSubmissionHandler {
	return &AdSubmissionHandler{ads: ads}
}

// Create handles POST /api/v1/ad-submissions.
func (h *AdSubmissionHandler) Create(c *gin.Context) {
	var req dto.CreateAdSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.TrimStrings(&req)

	in := ports.CreateAdSubmissionInput{
		AdName:            req.AdName,
		AdDescription:     req.AdDescription,
		MaximumIssuance:   req.MaximumIssuance,
		AccessibleFrom:    req.AccessibleFrom,
		AccessibleUntil:   req.AccessibleUntil,
		ContactEmail:      req.ContactEmail,
		ContactPersonName: req.ContactPersonName,
	}
	if v, ok := c.Get(middleware.CtxAdminID); ok {
		if id, ok := v.(uuid.UUID); ok {
			in.CreatedByID = &id
		}
	}

	sub, err := h.ads.Create(c.Request.Context(), in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toAdSubmissionResponse(sub))
}

// List handles GET /api/v1/admin/ad-submissions.
func (h *AdSubmissionHandler) List(c *gin.Context) {
	subs, err := h.ads.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.AdSubmissionResponse, 0, len(subs))
	for i := range subs {
		items = append(items, toAdSubmissionResponse(&subs[i]))
	}
	response.OK(c, dto.AdSubmissionListResponse{Items: items, Total: len(items)})
}

// Get handles GET /api/v1/admin/ad-submissions/:id.
func (h *AdSubmissionHandler) Get(c *gin.Context) {
	id, ok := parseAdID(c)
	if !ok {
		return
	}

	sub, err := h.ads.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toAdSubmissionResponse(sub))
}

// UpdateStatus handles PATCH /api/v1/admin/ad-submissions/:id/status.
func (h *AdSubmissionHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseAdID(c)
	if !ok {
		return
	}

	var req dto.UpdateAdStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	sub, err := h.ads.UpdateStatus(c.Request.Context(), id, domain.AdSubmissionStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toAdSubmissionResponse(sub))
}

// Delete handles DELETE /api/v1/admin/ad-submissions/:id.
func (h *AdSubmissionHandler) Delete(c *gin.Context) {
	id, ok := parseAdID(c)
	if !ok {
		return
	}

	if err := h.ads.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Stats handles GET /api/v1/admin/ad-submissions/stats.
func (h *AdSubmissionHandler) Stats(c *gin.Context) {
	stats, err := h.ads.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, stats)
}

// Export handles GET /api/v1/admin/ad-submissions/export.
func (h *AdSubmissionHandler) Export(c *gin.Context) {
	name, body, err := h.ads.ExportCSV(c.Request.Context(), time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, name, csvContentType, body)
}

func parseAdID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("Invalid ad submission ID"))
		return uuid.Nil, false
	}
	return id, true
}

func toAdSubmissionResponse(s *domain.AdSubmission) dto.AdSubmissionResponse {
	return dto.AdSubmissionResponse{
		ID:                s.ID.String(),
		AdName:            s.AdName,
		AdDescription:     s.AdDescription,
		MaximumIssuance:   s.MaximumIssuance,
		AccessibleFrom:    s.AccessibleFrom.Format(time.RFC3339),
		AccessibleUntil:   s.AccessibleUntil.Format(time.RFC3339),
		ContactEmail:      s.ContactEmail,
		ContactPersonName: s.ContactPersonName,
		Status:            string(s.Status),
		CreatedBy:         s.CreatedByUsername,
		CreatedAt:         s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         s.UpdatedAt.Format(time.RFC3339),
	}
}
