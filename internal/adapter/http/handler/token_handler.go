package handler

import (
	"pst-registry/internal/adapter/http/dto"
	"pst-registry/internal/core/domain"
	"pst-registry/internal/core/ports"
	"pst-registry/pkg/apperror"
	"pst-registry/pkg/response"

	"github.com/gin-gonic/gin"
)

// TokenHandler handles token directory endpoints.
type TokenHandler struct {
	tokens ports.TokenDirectory
}

// NewTokenHandler creates a new TokenHandler.
func NewTokenHandler(tokens ports.TokenDirectory) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

// AppointToken handles POST /api/v1/tokens.
func (h *TokenHandler) AppointToken(c *gin.Context) {
	caller, ok := callerEIN(c)
	if !ok {
		return
	}
	var req dto.AppointTokenRequest
	if !bindJSON(c, &req) {
		return
	}
	addr, err := domain.ParseAddress(req.Address)
	if err != nil {
		response.Error(c, apperror.InvalidArgument(err))
		return
	}

	record, err := h.tokens.AppointToken(c.Request.Context(), ports.AppointTokenRequest{
		Address:     addr,
		Symbol:      req.Symbol,
		Name:        req.Name,
		Description: req.Description,
		Decimals:    *req.Decimals,
		CallerEIN:   caller,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTokenResponse(record))
}

// GetToken handles GET /api/v1/tokens/:address.
func (h *TokenHandler) GetToken(c *gin.Context) {
	addr, ok := addressParam(c, "address")
	if !ok {
		return
	}

	record, err := h.tokens.GetToken(c.Request.Context(), addr)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toTokenResponse(record))
}

func toTokenResponse(t *domain.TokenRecord) dto.TokenResponse {
	return dto.TokenResponse{
		Address:     t.Address.Hex(),
		Symbol:      t.Symbol,
		Name:        t.Name,
		Description: t.Description,
		Decimals:    t.Decimals,
		OwnerEIN:    uint64(t.OwnerEIN),
		CreatedAt:   formatTime(t.CreatedAt),
	}
}
