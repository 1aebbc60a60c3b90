package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionRegisterAccount  AuditAction = "REGISTER_ACCOUNT"
	AuditActionAppointToken     AuditAction = "APPOINT_TOKEN"
	AuditActionAddCategory      AuditAction = "ADD_CATEGORY"
	AuditActionAddService       AuditAction = "ADD_SERVICE"
	AuditActionRemoveService    AuditAction = "REMOVE_SERVICE"
	AuditActionAssignRule       AuditAction = "ASSIGN_RULE"
	AuditActionAddCountryBan    AuditAction = "ADD_COUNTRY_BAN"
	AuditActionLiftCountryBan   AuditAction = "LIFT_COUNTRY_BAN"
	AuditActionAddBuyer         AuditAction = "ADD_BUYER"
	AuditActionSetInvestor      AuditAction = "SET_INVESTOR_STATUS"
	AuditActionAttachCompliance AuditAction = "ATTACH_COMPLIANCE"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	CallerEIN    *EIN        `json:"caller_ein,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
