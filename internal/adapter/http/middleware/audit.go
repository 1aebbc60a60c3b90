package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"pst-registry/internal/core/domain"
	"pst-registry/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type auditRoute struct {
	action       domain.AuditAction
	resourceType string
	resourceKey  string // path param naming the resource
}

// AuditLog records successful write operations after the handler ran.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return
		}

		route, ok := mapRouteToAction(c.Request.Method, c.FullPath())
		if !ok {
			return
		}

		var caller *domain.EIN
		if ein, ok := CallerEIN(c); ok {
			caller = &ein
		}

		var resourceID string
		if route.resourceKey != "" {
			resourceID = c.Param(route.resourceKey)
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": status,
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			CallerEIN:    caller,
			Action:       route.action,
			ResourceType: route.resourceType,
			ResourceID:   resourceID,
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now().UTC(),
		})
	}
}

func mapRouteToAction(method, fullPath string) (auditRoute, bool) {
	switch method + " " + fullPath {
	case "POST /api/v1/identities":
		return auditRoute{domain.AuditActionRegisterAccount, "identity", ""}, true
	case "POST /api/v1/tokens":
		return auditRoute{domain.AuditActionAppointToken, "token", ""}, true
	case "PUT /api/v1/tokens/:address/categories/:tag":
		return auditRoute{domain.AuditActionAddCategory, "category", "address"}, true
	case "PUT /api/v1/tokens/:address/services/:service_id":
		return auditRoute{domain.AuditActionAddService, "service", "address"}, true
	case "DELETE /api/v1/tokens/:address/services/:service_id":
		return auditRoute{domain.AuditActionRemoveService, "service", "address"}, true
	case "PUT /api/v1/tokens/:address/rules":
		return auditRoute{domain.AuditActionAssignRule, "rule", "address"}, true
	case "PUT /api/v1/tokens/:address/bans/:country":
		return auditRoute{domain.AuditActionAddCountryBan, "country_ban", "address"}, true
	case "DELETE /api/v1/tokens/:address/bans/:country":
		return auditRoute{domain.AuditActionLiftCountryBan, "country_ban", "address"}, true
	case "POST /api/v1/buyers":
		return auditRoute{domain.AuditActionAddBuyer, "buyer", ""}, true
	case "PUT /api/v1/buyers/:ein/investor-status":
		return auditRoute{domain.AuditActionSetInvestor, "buyer", "ein"}, true
	case "POST /api/v1/buyers/:ein/compliance/:kind":
		return auditRoute{domain.AuditActionAttachCompliance, "buyer", "ein"}, true
	}
	return auditRoute{}, false
}
