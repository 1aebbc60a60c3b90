package handler

import (
	"pst-registry/internal/adapter/http/dto"
	"pst-registry/internal/core/domain"
	"pst-registry/internal/core/ports"
	"pst-registry/pkg/response"

	"github.com/gin-gonic/gin"
)

// EligibilityHandler handles suitability rules, country bans and evaluation.
type EligibilityHandler struct {
	engine    ports.EligibilityEngine
	evaluator ports.EligibilityEvaluator
}

// NewEligibilityHandler creates a new EligibilityHandler.
func NewEligibilityHandler(engine ports.EligibilityEngine, evaluator ports.EligibilityEvaluator) *EligibilityHandler {
	return &EligibilityHandler{engine: engine, evaluator: evaluator}
}

// GetRule handles GET /api/v1/tokens/:address/rules.
func (h *EligibilityHandler) GetRule(c *gin.Context) {
	token, ok := addressParam(c, "address")
	if !ok {
		return
	}

	rule, err := h.engine.GetRule(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toRuleResponse(rule))
}

// AssignRule handles PUT /api/v1/tokens/:address/rules.
func (h *EligibilityHandler) AssignRule(c *gin.Context) {
	caller, ok := callerEIN(c)
	if !ok {
		return
	}
	token, ok := addressParam(c, "address")
	if !ok {
		return
	}
	var req dto.RuleRequest
	if !bindJSON(c, &req) {
		return
	}

	rule := domain.SuitabilityRule{
		Token:              token,
		MinimumAge:         *req.MinimumAge,
		MinimumNetWorth:    *req.MinimumNetWorth,
		MinimumSalary:      *req.MinimumSalary,
		AccreditedRequired: req.AccreditedRequired,
		AMLRequired:        req.AMLRequired,
		CFTRequired:        req.CFTRequired,
	}
	if err := h.engine.AssignTokenValues(c.Request.Context(), rule, caller); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toRuleResponse(&rule))
}

// GetCountryBan handles GET /api/v1/tokens/:address/bans/:country.
func (h *EligibilityHandler) GetCountryBan(c *gin.Context) {
	token, ok := addressParam(c, "address")
	if !ok {
		return
	}
	country, ok := tagParam(c, "country")
	if !ok {
		return
	}

	banned, err := h.engine.GetCountryBan(c.Request.Context(), token, country)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.CountryBanResponse{Country: country.String(), Banned: banned})
}

// AddCountryBan handles PUT /api/v1/tokens/:address/bans/:country.
func (h *EligibilityHandler) AddCountryBan(c *gin.Context) {
	h.setCountryBan(c, true)
}

// LiftCountryBan handles DELETE /api/v1/tokens/:address/bans/:country.
func (h *EligibilityHandler) LiftCountryBan(c *gin.Context) {
	h.setCountryBan(c, false)
}

func (h *EligibilityHandler) setCountryBan(c *gin.Context, banned bool) {
	caller, ok := callerEIN(c)
	if !ok {
		return
	}
	token, ok := addressParam(c, "address")
	if !ok {
		return
	}
	country, ok := tagParam(c, "country")
	if !ok {
		return
	}

	var err error
	if banned {
		err = h.engine.AddCountryBan(c.Request.Context(), token, country, caller)
	} else {
		err = h.engine.LiftCountryBan(c.Request.Context(), token, country, caller)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.CountryBanResponse{Country: country.String(), Banned: banned})
}

// Evaluate handles GET /api/v1/tokens/:address/eligibility/:ein.
func (h *EligibilityHandler) Evaluate(c *gin.Context) {
	token, ok := addressParam(c, "address")
	if !ok {
		return
	}
	ein, ok := einParam(c)
	if !ok {
		return
	}

	verdict, err := h.evaluator.Evaluate(c.Request.Context(), token, ein)
	if err != nil {
		response.Error(c, err)
		return
	}

	reasons := make([]string, 0, len(verdict.Reasons))
	for _, r := range verdict.Reasons {
		reasons = append(reasons, string(r))
	}
	response.OK(c, dto.VerdictResponse{
		Token:       verdict.Token.Hex(),
		BuyerEIN:    uint64(verdict.BuyerEIN),
		Eligible:    verdict.Eligible,
		Reasons:     reasons,
		Age:         verdict.Age,
		EvaluatedAt: formatTime(verdict.EvaluatedAt),
	})
}

func toRuleResponse(r *domain.SuitabilityRule) dto.RuleResponse {
	return dto.RuleResponse{
		Token:              r.Token.Hex(),
		MinimumAge:         r.MinimumAge,
		MinimumNetWorth:    r.MinimumNetWorth,
		MinimumSalary:      r.MinimumSalary,
		AccreditedRequired: r.AccreditedRequired,
		AMLRequired:        r.AMLRequired,
		CFTRequired:        r.CFTRequired,
	}
}
