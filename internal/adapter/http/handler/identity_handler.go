package handler

import (
	"pst-registry/internal/adapter/http/dto"
	"pst-registry/internal/core/domain"
	"pst-registry/internal/core/ports"
	"pst-registry/pkg/apperror"
	"pst-registry/pkg/response"

	"github.com/gin-gonic/gin"
)

// IdentityHandler handles identity and authentication endpoints.
type IdentityHandler struct {
	identities ports.IdentityDirectory
}

// NewIdentityHandler creates a new IdentityHandler.
func NewIdentityHandler(identities ports.IdentityDirectory) *IdentityHandler {
	return &IdentityHandler{identities: identities}
}

// RegisterAccount handles POST /api/v1/identities.
func (h *IdentityHandler) RegisterAccount(c *gin.Context) {
	var req dto.RegisterAccountRequest
	if !bindJSON(c, &req) {
		return
	}
	account, err := domain.ParseAddress(req.Account)
	if err != nil {
		response.Error(c, apperror.InvalidArgument(err))
		return
	}

	ein, err := h.identities.RegisterAccount(c.Request.Context(), account, req.Passphrase)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.IdentityResponse{Account: account.Hex(), EIN: uint64(ein)})
}

// GetIdentity handles GET /api/v1/identities/:account.
func (h *IdentityHandler) GetIdentity(c *gin.Context) {
	account, ok := addressParam(c, "account")
	if !ok {
		return
	}

	ein, err := h.identities.GetIdentity(c.Request.Context(), account)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.IdentityResponse{Account: account.Hex(), EIN: uint64(ein)})
}

// Login handles POST /api/v1/auth/token.
func (h *IdentityHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	account, err := domain.ParseAddress(req.Account)
	if err != nil {
		response.Error(c, apperror.InvalidArgument(err))
		return
	}

	token, expiry, err := h.identities.Login(c.Request.Context(), account, req.Passphrase)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.LoginResponse{
		Token:  token,
		Expiry: expiry.Unix(),
	})
}
