package handler

import (
	"context"
	"errors"

	"oyunfor-gateway/internal/adapter/http/dto"
	"oyunfor-gateway/internal/adapter/http/middleware"
	"oyunfor-gateway/internal/adapter/wallet"
	"oyunfor-gateway/internal/core/domain"
	"oyunfor-gateway/internal/service"
	"oyunfor-gateway/pkg/apperror"
	"oyunfor-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// FlowHost hosts issuance and verification flows on behalf of browser tabs.
type FlowHost interface {
	MountIssuance(ctx context.Context, identityHandle string) (*service.IssuanceSessionView, error)
	IssuanceView(id string) (*service.IssuanceSessionView, error)
	RunIssuance(ctx context.Context, id, action string) (*service.IssuanceSessionView, error)
	ReportWalletAddress(id, address string) (*service.IssuanceSessionView, error)
	SubmitSignature(id, signature string) (*service.IssuanceSessionView, error)

	MountVerification(params domain.VerifierParams, identityHandle string) *service.VerificationSessionView
	VerificationView(id string) (*service.VerificationSessionView, error)
	RunVerification(ctx context.Context, id, action string) (*service.VerificationSessionView, error)

	Teardown(id, kind string) error
}

// FlowHandler exposes the hosted flows over HTTP. Collaborator failures
// inside a flow are part of the returned view, not HTTP errors.
type FlowHandler struct {
	flows FlowHost
}

// NewFlowHandler creates a new FlowHandler.
func NewFlowHandler(flows FlowHost) *FlowHandler {
	return &FlowHandler{flows: flows}
}

// MountIssuance handles POST /api/v1/flows/issuance.
func (h *FlowHandler) MountIssuance(c *gin.Context) {
	var q dto.FlowMountQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	view, err := h.flows.MountIssuance(c.Request.Context(), q.IdentitySession)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, view)
}

// GetIssuance handles GET /api/v1/flows/issuance/:id.
func (h *FlowHandler) GetIssuance(c *gin.Context) {
	view, err := h.flows.IssuanceView(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, view)
}

// TeardownIssuance handles DELETE /api/v1/flows/issuance/:id.
func (h *FlowHandler) TeardownIssuance(c *gin.Context) {
	h.teardown(c, service.FlowIssuance)
}

// Login handles POST /api/v1/flows/issuance/:id/login.
func (h *FlowHandler) Login(c *gin.Context) {
	h.runIssuance(c, service.ActionLogin)
}

// ConnectWallet handles POST /api/v1/flows/issuance/:id/wallet/connect.
func (h *FlowHandler) ConnectWallet(c *gin.Context) {
	h.runIssuance(c, service.ActionConnectWallet)
}

// RefreshBalance handles POST /api/v1/flows/issuance/:id/balance/refresh.
func (h *FlowHandler) RefreshBalance(c *gin.Context) {
	h.runIssuance(c, service.ActionRefreshBalance)
}

// DisconnectWallet handles POST /api/v1/flows/issuance/:id/wallet/disconnect.
func (h *FlowHandler) DisconnectWallet(c *gin.Context) {
	h.runIssuance(c, service.ActionDisconnectWallet)
}

// SwitchWallet handles POST /api/v1/flows/issuance/:id/wallet/switch.
func (h *FlowHandler) SwitchWallet(c *gin.Context) {
	h.runIssuance(c, service.ActionSwitchWallet)
}

// Issue handles POST /api/v1/flows/issuance/:id/issue. A completed issuance
// is audited as such, keyed by the shortened wallet address.
func (h *FlowHandler) Issue(c *gin.Context) {
	view, ok := h.runIssuance(c, service.ActionIssue)
	if ok && view.Step == int(domain.StepIssued) {
		c.Set(middleware.CtxAuditAction, domain.AuditActionCredentialIssued)
		c.Set(middleware.CtxAuditResource, domain.FormatAddress(view.WalletAddress))
	}
}

func (h *FlowHandler) runIssuance(c *gin.Context, action string) (*service.IssuanceSessionView, bool) {
	view, err := h.flows.RunIssuance(c.Request.Context(), c.Param("id"), action)
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	response.OK(c, view)
	return view, true
}

// ReportWallet handles PUT /api/v1/flows/issuance/:id/wallet.
func (h *FlowHandler) ReportWallet(c *gin.Context) {
	var req dto.WalletAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	view, err := h.flows.ReportWalletAddress(c.Param("id"), req.Address)
	if err != nil {
		response.Error(c, walletError(err))
		return
	}
	response.OK(c, view)
}

// SubmitSignature handles POST /api/v1/flows/issuance/:id/wallet/signature.
func (h *FlowHandler) SubmitSignature(c *gin.Context) {
	var req dto.WalletSignatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	view, err := h.flows.SubmitSignature(c.Param("id"), req.Signature)
	if err != nil {
		response.Error(c, walletError(err))
		return
	}
	response.OK(c, view)
}

// MountVerification handles POST /api/v1/flows/verification.
func (h *FlowHandler) MountVerification(c *gin.Context) {
	var q dto.VerifierParamsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	var mount dto.FlowMountQuery
	if err := c.ShouldBindQuery(&mount); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	response.Created(c, h.flows.MountVerification(q.Params(), mount.IdentitySession))
}

// GetVerification handles GET /api/v1/flows/verification/:id.
func (h *FlowHandler) GetVerification(c *gin.Context) {
	view, err := h.flows.VerificationView(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, view)
}

// TeardownVerification handles DELETE /api/v1/flows/verification/:id.
func (h *FlowHandler) TeardownVerification(c *gin.Context) {
	h.teardown(c, service.FlowVerification)
}

// Verify handles POST /api/v1/flows/verification/:id/verify.
func (h *FlowHandler) Verify(c *gin.Context) {
	h.runVerification(c, service.ActionVerify)
}

// Retry handles POST /api/v1/flows/verification/:id/retry.
func (h *FlowHandler) Retry(c *gin.Context) {
	h.runVerification(c, service.ActionRetry)
}

func (h *FlowHandler) runVerification(c *gin.Context, action string) {
	view, err := h.flows.RunVerification(c.Request.Context(), c.Param("id"), action)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, view)
}

func (h *FlowHandler) teardown(c *gin.Context, kind string) {
	if err := h.flows.Teardown(c.Param("id"), kind); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// walletError maps wallet bridge failures onto client errors.
func walletError(err error) error {
	var appErr *apperror.AppError
	switch {
	case errors.As(err, &appErr):
		return err
	case errors.Is(err, wallet.ErrNoPendingSignature):
		return apperror.ErrNoPendingSignature()
	default:
		return apperror.Validation(err.Error())
	}
}
