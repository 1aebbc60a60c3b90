package handler

import (
	"pst-registry/internal/adapter/http/dto"
	"pst-registry/internal/core/domain"
	"pst-registry/internal/core/ports"
	"pst-registry/pkg/apperror"
	"pst-registry/pkg/response"

	"github.com/gin-gonic/gin"
)

// BuyerHandler handles buyer ledger endpoints.
type BuyerHandler struct {
	ledger ports.BuyerLedger
}

// NewBuyerHandler creates a new BuyerHandler.
func NewBuyerHandler(ledger ports.BuyerLedger) *BuyerHandler {
	return &BuyerHandler{ledger: ledger}
}

// AddBuyer handles POST /api/v1/buyers.
func (h *BuyerHandler) AddBuyer(c *gin.Context) {
	caller, ok := callerEIN(c)
	if !ok {
		return
	}
	var req dto.AddBuyerRequest
	if !bindJSON(c, &req) {
		return
	}
	country, err := domain.ParseTag(req.Country)
	if err != nil {
		response.Error(c, apperror.InvalidArgument(err))
		return
	}

	buyer, err := h.ledger.AddBuyer(c.Request.Context(), ports.BuyerInput{
		EIN:        domain.EIN(req.EIN),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Country:    country,
		BirthYear:  req.BirthYear,
		BirthMonth: req.BirthMonth,
		BirthDay:   req.BirthDay,
		NetWorth:   *req.NetWorth,
		Salary:     *req.Salary,
	}, caller)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toBuyerResponse(buyer))
}

// GetBuyer handles GET /api/v1/buyers/:ein.
func (h *BuyerHandler) GetBuyer(c *gin.Context) {
	ein, ok := einParam(c)
	if !ok {
		return
	}

	buyer, err := h.ledger.GetBuyer(c.Request.Context(), ein)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toBuyerResponse(buyer))
}

// SetInvestorStatus handles PUT /api/v1/buyers/:ein/investor-status.
func (h *BuyerHandler) SetInvestorStatus(c *gin.Context) {
	caller, ok := callerEIN(c)
	if !ok {
		return
	}
	ein, ok := einParam(c)
	if !ok {
		return
	}
	var req dto.InvestorStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	if err := h.ledger.SetBuyerInvestorStatus(ctx, ein, *req.Status, caller); err != nil {
		response.Error(c, err)
		return
	}

	buyer, err := h.ledger.GetBuyer(ctx, ein)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toBuyerResponse(buyer))
}

// AttachCompliance handles POST /api/v1/buyers/:ein/compliance/:kind.
// kind is kyc, aml or cft.
func (h *BuyerHandler) AttachCompliance(c *gin.Context) {
	caller, ok := callerEIN(c)
	if !ok {
		return
	}
	ein, ok := einParam(c)
	if !ok {
		return
	}
	kind, ok := domain.ParseComplianceKind(c.Param("kind"))
	if !ok {
		response.Error(c, apperror.Validation("compliance kind must be kyc, aml or cft"))
		return
	}
	var req dto.AttachComplianceRequest
	if !bindJSON(c, &req) {
		return
	}
	token, err := domain.ParseAddress(req.Token)
	if err != nil {
		response.Error(c, apperror.InvalidArgument(err))
		return
	}

	ctx := c.Request.Context()
	id := domain.ServiceID(*req.ServiceID)
	if err := h.ledger.AttachCompliance(ctx, kind, ein, token, id, caller); err != nil {
		response.Error(c, err)
		return
	}

	buyer, err := h.ledger.GetBuyer(ctx, ein)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toBuyerResponse(buyer))
}

func toBuyerResponse(b *domain.Buyer) dto.BuyerResponse {
	return dto.BuyerResponse{
		EIN:            uint64(b.EIN),
		FirstName:      b.FirstName,
		LastName:       b.LastName,
		Country:        b.Country.String(),
		BirthTimestamp: b.BirthTimestamp(),
		NetWorth:       b.NetWorth,
		Salary:         b.Salary,
		InvestorStatus: b.InvestorStatus,
		KYCStatus:      b.KYCStatus,
		AMLStatus:      b.AMLStatus,
		CFTStatus:      b.CFTStatus,
		RegistrarEIN:   uint64(b.RegistrarEIN),
	}
}
