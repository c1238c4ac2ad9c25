package handler

import (
	"oyunfor-gateway/internal/adapter/http/dto"
	"oyunfor-gateway/internal/core/ports"
	"oyunfor-gateway/pkg/apperror"
	"oyunfor-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler handles staff lookups of identity users.
type UserHandler struct {
	users ports.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Status handles GET /api/v1/admin/users/:identityId/status.
func (h *UserHandler) Status(c *gin.Context) {
	status, err := h.users.CheckStatus(c.Request.Context(), c.Param("identityId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, status)
}

// UpdateVerification handles PUT /api/v1/admin/users/:identityId/verification.
func (h *UserHandler) UpdateVerification(c *gin.Context) {
	var req dto.UpdateVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	user, err := h.users.UpdateVerification(c.Request.Context(), c.Param("identityId"), *req.IsVerified)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}
