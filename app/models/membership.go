package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	MembershipStatusActive   = "active"
	MembershipStatusInvited  = "invited"
	MembershipStatusDisabled = "disabled"
)

// Membership is one user seat inside a tenant. Only active memberships
// count against the plan's seat limit; invited and disabled seats do not.
type Membership struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	TenantID  uint           `gorm:"not null;uniqueIndex:idx_tenant_user,composite:tenant_id,user_id;index" json:"tenant_id"`
	UserID    uint           `gorm:"not null;uniqueIndex:idx_tenant_user,composite:tenant_id,user_id" json:"user_id"`
	Role      string         `gorm:"type:varchar(50);default:'member'" json:"role" validate:"oneof=owner admin member"`
	Status    string         `gorm:"type:varchar(50);default:'invited'" json:"status" validate:"oneof=active invited disabled"`
	InvitedAt *time.Time     `gorm:"type:timestamp;default:null" json:"invited_at"`
	JoinedAt  *time.Time     `gorm:"type:timestamp;default:null" json:"joined_at"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsActive reports whether this seat counts against the limit.
func (m *Membership) IsActive() bool {
	return m.Status == MembershipStatusActive
}

// Accept marks an invited membership as active.
func (m *Membership) Accept() {
	m.Status = MembershipStatusActive
	now := time.Now()
	m.JoinedAt = &now
}

// CountActiveMemberships counts the seats currently consumed by a tenant.
func CountActiveMemberships(db *gorm.DB, tenantID uint) (int64, error) {
	var count int64
	err := db.Model(&Membership{}).
		Where("tenant_id = ? AND status = ?", tenantID, MembershipStatusActive).
		Count(&count).Error
	return count, err
}
