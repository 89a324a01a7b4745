package channel

import (
	"fmt"

	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InstanceStatus represents the connection state of a WhatsApp instance
type InstanceStatus string

const (
	InstancePending      InstanceStatus = "pending"
	InstanceConnected    InstanceStatus = "connected"
	InstanceDisconnected InstanceStatus = "disconnected"
)

// IsValid checks if the instance status is valid
func (s InstanceStatus) IsValid() bool {
	switch s {
	case InstancePending, InstanceConnected, InstanceDisconnected:
		return true
	}
	return false
}

// Instance is a tenant's WhatsApp connection at the messaging provider.
// Each tenant holds at most one; the unique index on user_id is the
// arbiter under concurrent connects.
type Instance struct {
	shared.BaseEntity
	UserID       uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	InstanceName string         `gorm:"type:varchar(100);not null;uniqueIndex" json:"instance_name"`
	APIKey       *string        `gorm:"type:varchar(255)" json:"-"`
	Status       InstanceStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
}

// TableName returns the table name for GORM
func (Instance) TableName() string {
	return "whatsapp_instances"
}

// InstanceNameFor derives the provider-side instance name for a tenant
func InstanceNameFor(userID uuid.UUID) string {
	hex := fmt.Sprintf("%x", userID[:])
	return "user_" + hex[:8]
}

// NewInstance records a freshly provisioned instance in pending state
func NewInstance(userID uuid.UUID, apiKey *string) *Instance {
	return &Instance{
		BaseEntity:   shared.NewBaseEntity(),
		UserID:       userID,
		InstanceName: InstanceNameFor(userID),
		APIKey:       apiKey,
		Status:       InstancePending,
	}
}

// MarkConnected reconciles the local record with an open provider session
func (i *Instance) MarkConnected() {
	i.Status = InstanceConnected
	i.Touch()
}

// MarkDisconnected reconciles the local record with a closed provider session
func (i *Instance) MarkDisconnected() {
	i.Status = InstanceDisconnected
	i.Touch()
}
