package models

import (
	"time"

	"github.com/lib/pq"
)

// AuditLog records every mutation applied through the coordinator,
// including the fields the mutation touched.
// Table: audit_log
type AuditLog struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	EntityKind    string         `gorm:"size:20;not null;index:idx_audit_entity_kind" json:"entity_kind"`
	EntityID      *uint          `gorm:"index:idx_audit_entity_id" json:"entity_id,omitempty"`
	Action        string         `gorm:"size:40;not null;index:idx_audit_action" json:"action"`
	Description   *string        `gorm:"type:text" json:"description,omitempty"`
	ChangedFields pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"changed_fields"`
	IPAddress     *string        `gorm:"size:64;index:idx_audit_ip_address" json:"ip_address,omitempty"`
	UserAgent     *string        `gorm:"type:text" json:"user_agent,omitempty"`
	RequestID     *string        `gorm:"size:255;index:idx_audit_request_id" json:"request_id,omitempty"`
	Success       *bool          `gorm:"default:true;index:idx_audit_success" json:"success"`
	ErrorMessage  *string        `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt     time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP;index:idx_audit_created_at" json:"created_at"`
}

func (AuditLog) TableName() string { return "audit_log" }

// Entity kind constants
const (
	EntityKindVenue  = "venue"
	EntityKindArtist = "artist"
	EntityKindShow   = "show"
)

// Audit action constants
const (
	AuditActionVenueCreated  = "venue_created"
	AuditActionVenueUpdated  = "venue_updated"
	AuditActionVenueDeleted  = "venue_deleted"
	AuditActionArtistCreated = "artist_created"
	AuditActionArtistUpdated = "artist_updated"
	AuditActionShowCreated   = "show_created"
)

// AuditLogFilter represents filter criteria for audit log queries
type AuditLogFilter struct {
	ID            *uint
	EntityKind    *string
	EntityID      *uint
	Action        *string
	Success       *bool
	RequestID     *string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}

func (a *AuditLog) IsFailed() bool {
	return a.Success != nil && !*a.Success
}
