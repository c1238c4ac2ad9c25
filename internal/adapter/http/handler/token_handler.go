package handler

import (
	"net/http"

	"oyunfor-gateway/internal/adapter/http/dto"
	"oyunfor-gateway/internal/core/domain"
	"oyunfor-gateway/internal/core/ports"
	"oyunfor-gateway/pkg/apperror"
	"oyunfor-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// jwksCacheControl lets partners cache the key set for an hour.
const jwksCacheControl = "public, max-age=3600"

// TokenHandler serves partner authorization tokens and the verifier link builder.
type TokenHandler struct {
	tokens ports.PartnerTokenService
}

// NewTokenHandler creates a new TokenHandler.
func NewTokenHandler(tokens ports.PartnerTokenService) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

// AuthToken handles GET /api/auth-token.
func (h *TokenHandler) AuthToken(c *gin.Context) {
	h.sign(c, domain.ScopeVerify)
}

// IssueToken handles GET /api/issue-token.
func (h *TokenHandler) IssueToken(c *gin.Context) {
	h.sign(c, domain.ScopeIssue)
}

// sign writes the token as a bare {authToken} object, the body identity
// service clients read. Failures keep the error envelope.
func (h *TokenHandler) sign(c *gin.Context, scope domain.TokenScope) {
	token, err := h.tokens.Sign(c.Request.Context(), scope)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AuthTokenResponse{AuthToken: token})
}

// JWKS handles GET /api/.well-known/jwks. The key set is written as-is so
// that standard JWKS clients can consume it.
func (h *TokenHandler) JWKS(c *gin.Context) {
	body, err := h.tokens.JWKS()
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Cache-Control", jwksCacheControl)
	c.Data(http.StatusOK, "application/json", body)
}

// VerifierURL handles GET /api/v1/verifier-url.
func (h *TokenHandler) VerifierURL(c *gin.Context) {
	var q dto.VerifierParamsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	response.OK(c, dto.VerifierURLResponse{
		URL: domain.BuildVerifierURL(q.Params()),
	})
}
