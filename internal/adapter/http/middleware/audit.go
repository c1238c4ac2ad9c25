package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"oyunfor-gateway/internal/core/domain"
	"oyunfor-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog creates an audit middleware that logs successful write operations.
// Actions are mapped from the matched route; a handler may override the
// action with CtxAuditAction.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only audit successful write operations (status 2xx)
		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return
		}

		action, resourceType := mapRouteToAction(c.FullPath(), c.Request.Method)
		if action == "" {
			return
		}
		if override, ok := c.Get(CtxAuditAction); ok {
			if a, ok := override.(domain.AuditAction); ok {
				action = a
			}
		}

		var adminID *uuid.UUID
		if v, exists := c.Get(CtxAdminID); exists {
			if id, ok := v.(uuid.UUID); ok {
				adminID = &id
			}
		}

		resourceID := c.Param("id")
		if resourceID == "" {
			resourceID = c.Param("identityId")
		}
		if v := c.GetString(CtxAuditResource); v != "" {
			resourceID = v
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"request_id": c.GetString(CtxRequestID),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			AdminID:      adminID,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   resourceID,
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now(),
		})
	}
}

func mapRouteToAction(route, method string) (domain.AuditAction, string) {
	switch {
	case route == "/api/v1/flows/issuance" && method == http.MethodPost,
		route == "/api/v1/flows/verification" && method == http.MethodPost:
		return domain.AuditActionFlowMount, "flow"
	case route == "/api/v1/flows/issuance/:id" && method == http.MethodDelete,
		route == "/api/v1/flows/verification/:id" && method == http.MethodDelete:
		return domain.AuditActionFlowTeardown, "flow"
	case route == "/api/v1/flows/issuance/:id/issue" && method == http.MethodPost,
		route == "/api/v1/flows/issuance/:id/login" && method == http.MethodPost,
		route == "/api/v1/flows/verification/:id/verify" && method == http.MethodPost:
		return domain.AuditActionFlowAction, "flow"
	case route == "/api/v1/ad-submissions" && method == http.MethodPost:
		return domain.AuditActionAdSubmitted, "ad_submission"
	case route == "/api/v1/admin/ad-submissions/:id/status" && method == http.MethodPatch:
		return domain.AuditActionAdStatusChanged, "ad_submission"
	case route == "/api/v1/admin/ad-submissions/:id" && method == http.MethodDelete:
		return domain.AuditActionAdDeleted, "ad_submission"
	case route == "/api/v1/admin/users/:identityId/verification" && method == http.MethodPut:
		return domain.AuditActionUserVerification, "user"
	}
	return "", ""
}
