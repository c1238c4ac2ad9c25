package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionFlowMount        AuditAction = "FLOW_MOUNT"
	AuditActionFlowTeardown     AuditAction = "FLOW_TEARDOWN"
	AuditActionFlowAction       AuditAction = "FLOW_ACTION"
	AuditActionCredentialIssued AuditAction = "CREDENTIAL_ISSUED"
	AuditActionAdSubmitted      AuditAction = "AD_SUBMITTED"
	AuditActionAdStatusChanged  AuditAction = "AD_STATUS_CHANGED"
	AuditActionAdDeleted        AuditAction = "AD_DELETED"
	AuditActionUserVerification AuditAction = "USER_VERIFICATION"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	AdminID      *uuid.UUID  `json:"admin_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
